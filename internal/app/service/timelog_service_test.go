package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/islamdev99/GameDevTask/internal/core/domain"
)

func TestTimeLogService_StartTimer_SecondStartConflicts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	task := env.mustCreateTask(t, nil, "Record foley")

	log, err := env.timeLogService.StartTimer(ctx, task.ID, nil)
	require.NoError(t, err)
	assert.True(t, log.Running())

	_, err = env.timeLogService.StartTimer(ctx, task.ID, nil)
	assert.ErrorIs(t, err, domain.ErrTimerRunning)
}

func TestTimeLogService_StartTimer_TaskNotFound(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.timeLogService.StartTimer(context.Background(), 404, nil)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestTimeLogService_StopTimer_FlooredDuration(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	task := env.mustCreateTask(t, nil, "Record foley")

	started := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	env.timeLogService.now = func() time.Time { return started }
	log, err := env.timeLogService.StartTimer(ctx, task.ID, nil)
	require.NoError(t, err)

	// 1h 02m 03.9s elapsed rounds down to whole seconds.
	env.timeLogService.now = func() time.Time { return started.Add(1*time.Hour + 2*time.Minute + 3*time.Second + 900*time.Millisecond) }
	stopped, err := env.timeLogService.StopTimer(ctx, log.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(3723), stopped.DurationSeconds)
	assert.False(t, stopped.Running())

	entries, err := env.activityService.QueryActivity(ctx, domain.ActivityFilter{TaskID: &task.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.ActionTimeStop, entries[0].Action)
	assert.Contains(t, entries[0].Details, "1h 02m 03s")
}

func TestTimeLogService_StopTimer_NeverNegative(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	task := env.mustCreateTask(t, nil, "Record foley")

	started := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	env.timeLogService.now = func() time.Time { return started }
	log, err := env.timeLogService.StartTimer(ctx, task.ID, nil)
	require.NoError(t, err)

	// Clock skew pushing end before start still yields zero.
	env.timeLogService.now = func() time.Time { return started.Add(-time.Minute) }
	stopped, err := env.timeLogService.StopTimer(ctx, log.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stopped.DurationSeconds)
}

func TestTimeLogService_StopTimer_AlreadyStopped(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	task := env.mustCreateTask(t, nil, "Record foley")
	log, err := env.timeLogService.StartTimer(ctx, task.ID, nil)
	require.NoError(t, err)

	_, err = env.timeLogService.StopTimer(ctx, log.ID)
	require.NoError(t, err)

	_, err = env.timeLogService.StopTimer(ctx, log.ID)
	assert.ErrorIs(t, err, domain.ErrTimerStopped)
}

func TestTimeLogService_StartAfterStop_Allowed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	task := env.mustCreateTask(t, nil, "Record foley")
	log, err := env.timeLogService.StartTimer(ctx, task.ID, nil)
	require.NoError(t, err)
	_, err = env.timeLogService.StopTimer(ctx, log.ID)
	require.NoError(t, err)

	_, err = env.timeLogService.StartTimer(ctx, task.ID, nil)
	require.NoError(t, err)

	logs, err := env.timeLogService.ListTaskTimeLogs(ctx, task.ID)
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}
