package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/islamdev99/GameDevTask/internal/core/domain"
)

func TestStatsService_ExampleScenario(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	project := env.mustCreateProject(t, "Demo")
	task, err := env.taskService.CreateTask(ctx, domain.CreateTaskInput{
		ProjectID: &project.ID,
		Title:     "A",
		Priority:  domain.TaskPriorityHigh,
		Category:  domain.TaskCategoryProgramming,
	})
	require.NoError(t, err)

	_, err = env.taskService.CompleteTask(ctx, task.ID)
	require.NoError(t, err)

	stats, err := env.statsService.ComputeStatistics(ctx, 7)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TotalProjects)
	assert.Equal(t, 1, stats.TotalTasks)
	assert.Equal(t, 1, stats.CompletedTasks)
	assert.Equal(t, 0, stats.InProgressTasks)
	assert.Equal(t, 0, stats.NotStartedTasks)
	assert.Equal(t, 1, stats.TasksByCategory[domain.TaskCategoryProgramming])

	today := time.Now().UTC().Format("2006-01-02")
	assert.Equal(t, 1, stats.CompletedByDay[today])
}

func TestStatsService_OpenLogsExcludedFromTrackedSeconds(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	task := env.mustCreateTask(t, nil, "Mix audio")

	started := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	env.timeLogService.now = func() time.Time { return started }
	log, err := env.timeLogService.StartTimer(ctx, task.ID, nil)
	require.NoError(t, err)
	env.timeLogService.now = func() time.Time { return started.Add(90 * time.Second) }
	_, err = env.timeLogService.StopTimer(ctx, log.ID)
	require.NoError(t, err)

	// Second log left running.
	_, err = env.timeLogService.StartTimer(ctx, task.ID, nil)
	require.NoError(t, err)

	stats, err := env.statsService.ComputeStatistics(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(90), stats.TotalTrackedSeconds)
}
