package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/islamdev99/GameDevTask/internal/core/domain"
)

func TestTaskService_CreateTask_AppliesDefaults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	task, err := env.taskService.CreateTask(ctx, domain.CreateTaskInput{Title: "Prototype level"})
	require.NoError(t, err)

	assert.Equal(t, domain.TaskStatusNotStarted, task.Status)
	assert.Equal(t, domain.TaskPriorityMedium, task.Priority)
	assert.Equal(t, domain.TaskCategoryOther, task.Category)
	assert.Nil(t, task.CompletedAt)
	assert.False(t, task.CreatedAt.IsZero())
}

func TestTaskService_CreateTask_FansOutActivityAndSync(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	task := env.mustCreateTask(t, nil, "Prototype level")

	entries, err := env.activityService.QueryActivity(ctx, domain.ActivityFilter{TaskID: &task.ID})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.ActionCreate, entries[0].Action)
	assert.Contains(t, entries[0].Details, "Prototype level")

	pending, err := env.syncService.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, domain.SyncEntityTask, pending[0].EntityType)
	assert.Equal(t, "1", pending[0].EntityID)
	assert.NotEmpty(t, pending[0].Data)
}

func TestTaskService_CompleteThenReopen_CompletedAtInvariant(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	task := env.mustCreateTask(t, nil, "Ship demo build")

	completed, err := env.taskService.CompleteTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)

	reopened, err := env.taskService.ReopenTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusInProgress, reopened.Status)
	assert.Nil(t, reopened.CompletedAt)
}

func TestTaskService_UpdateTask_StatusChangeDoesNotTouchCompletedAt(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	task := env.mustCreateTask(t, nil, "Ship demo build")
	_, err := env.taskService.CompleteTask(ctx, task.ID)
	require.NoError(t, err)

	// A plain update may flip status but never clears or sets the
	// completion timestamp.
	status := domain.TaskStatusInProgress
	updated, err := env.taskService.UpdateTask(ctx, task.ID, domain.UpdateTaskInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusInProgress, updated.Status)
	assert.NotNil(t, updated.CompletedAt)
}

func TestTaskService_UpdateTask_ExplicitNullClearsDeadline(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	task := env.mustCreateTask(t, nil, "Ship demo build")
	title := "Ship vertical slice"
	updated, err := env.taskService.UpdateTask(ctx, task.ID, domain.UpdateTaskInput{
		Title:       &title,
		DeadlineSet: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ship vertical slice", updated.Title)
	assert.Nil(t, updated.Deadline)
}

func TestTaskService_UpdateTask_NotFound(t *testing.T) {
	env := newTestEnv(t)

	title := "anything"
	_, err := env.taskService.UpdateTask(context.Background(), 404, domain.UpdateTaskInput{Title: &title})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestTaskService_MoveTask_AssignsBlockAndOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	block, err := env.blockService.CreateBlock(ctx, domain.CreateBlockInput{Name: "In review", Color: "#f59e0b"})
	require.NoError(t, err)
	task := env.mustCreateTask(t, nil, "Polish UI")

	moved, err := env.taskService.MoveTask(ctx, task.ID, &block.ID, 2)
	require.NoError(t, err)
	require.NotNil(t, moved.BlockID)
	assert.Equal(t, block.ID, *moved.BlockID)
	assert.Equal(t, 2, moved.Order)

	entries, err := env.activityService.QueryActivity(ctx, domain.ActivityFilter{TaskID: &task.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.ActionMove, entries[0].Action)
}

func TestTaskService_DeleteTask_CascadesExactly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	doomed := env.mustCreateTask(t, nil, "Doomed task")
	witness := env.mustCreateTask(t, nil, "Witness task")

	env.mustCreateSubtask(t, doomed.ID, "doomed child")
	kept := env.mustCreateSubtask(t, witness.ID, "kept child")

	_, err := env.commentService.CreateComment(ctx, domain.CreateCommentInput{TaskID: doomed.ID, Body: "obsolete"})
	require.NoError(t, err)
	_, err = env.timeLogService.StartTimer(ctx, doomed.ID, nil)
	require.NoError(t, err)

	require.NoError(t, env.taskService.DeleteTask(ctx, doomed.ID))

	_, err = env.taskService.GetTask(ctx, doomed.ID)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	// Only the doomed task's children go with it.
	assert.Equal(t, 0, env.countRows(t, "comments"))
	assert.Equal(t, 0, env.countRows(t, "time_logs"))
	subtasks, err := env.subtaskService.ListSubtasks(ctx, witness.ID)
	require.NoError(t, err)
	require.Len(t, subtasks, 1)
	assert.Equal(t, kept.ID, subtasks[0].ID)

	// Activity entries survive with the task reference nulled.
	var orphaned int
	require.NoError(t, env.db.Get(&orphaned, `SELECT COUNT(*) FROM activity_log WHERE task_id IS NULL`))
	assert.Greater(t, orphaned, 0)
}

func TestTaskService_DeleteTask_NotFound(t *testing.T) {
	env := newTestEnv(t)
	err := env.taskService.DeleteTask(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
