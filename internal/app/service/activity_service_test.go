package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/islamdev99/GameDevTask/internal/core/domain"
)

func TestActivityService_QueryFiltersAndLimit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	project := env.mustCreateProject(t, "Demo")
	task := env.mustCreateTask(t, &project.ID, "A")
	other := env.mustCreateTask(t, nil, "B")

	_, err := env.taskService.CompleteTask(ctx, task.ID)
	require.NoError(t, err)
	_, err = env.taskService.CompleteTask(ctx, other.ID)
	require.NoError(t, err)

	byTask, err := env.activityService.QueryActivity(ctx, domain.ActivityFilter{TaskID: &task.ID})
	require.NoError(t, err)
	require.Len(t, byTask, 2)
	// Newest first.
	assert.Equal(t, domain.ActionComplete, byTask[0].Action)
	assert.Equal(t, domain.ActionCreate, byTask[1].Action)

	byProject, err := env.activityService.QueryActivity(ctx, domain.ActivityFilter{ProjectID: &project.ID})
	require.NoError(t, err)
	require.Len(t, byProject, 3)

	limited, err := env.activityService.QueryActivity(ctx, domain.ActivityFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestSyncQueueService_MarkSyncedRemovesFromPending(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.mustCreateTask(t, nil, "A")

	pending, err := env.syncService.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	require.NoError(t, env.syncService.MarkSynced(ctx, pending[0].ID))

	pending, err = env.syncService.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestSyncQueueService_MarkSynced_NotFound(t *testing.T) {
	env := newTestEnv(t)
	err := env.syncService.MarkSynced(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrSyncEntryNotFound)
}

func TestSyncQueueService_PruneSynced_KeepsPendingAndRecent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.mustCreateTask(t, nil, "A")
	env.mustCreateTask(t, nil, "B")

	pending, err := env.syncService.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)

	// First entry: synced and aged past the retention window.
	require.NoError(t, env.syncService.MarkSynced(ctx, pending[0].ID))
	old := time.Now().UTC().AddDate(0, 0, -45)
	_, err = env.db.Exec(`UPDATE sync_log SET created_at = ? WHERE id = ?`, old, pending[0].ID)
	require.NoError(t, err)

	pruned, err := env.syncService.PruneSynced(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pruned)

	// The unsynced entry survives no matter its age.
	_, err = env.db.Exec(`UPDATE sync_log SET created_at = ? WHERE id = ?`, old, pending[1].ID)
	require.NoError(t, err)
	pruned, err = env.syncService.PruneSynced(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), pruned)

	remaining, err := env.syncService.ListPending(ctx)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestMutationFanOut_RollsBackTogether(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Break the sync queue so the enqueue leg of the fan-out fails.
	_, err := env.db.Exec(`ALTER TABLE sync_log RENAME TO sync_log_broken`)
	require.NoError(t, err)

	_, err = env.taskService.CreateTask(ctx, domain.CreateTaskInput{Title: "should not persist"})
	require.Error(t, err)

	// Primary write and activity entry rolled back with it.
	assert.Equal(t, 0, env.countRows(t, "tasks"))
	assert.Equal(t, 0, env.countRows(t, "activity_log"))
}
