package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/islamdev99/GameDevTask/internal/core/domain"
)

func TestComputeStatistics_Empty(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	stats := domain.ComputeStatistics(nil, nil, nil, nil, 7, now)

	assert.Equal(t, 0, stats.TotalProjects)
	assert.Equal(t, 0, stats.TotalTasks)
	assert.Equal(t, int64(0), stats.TotalTrackedSeconds)
	assert.Equal(t, 0.0, stats.AvgCompletionHours)
	// The window is zero-filled even with no completions.
	assert.Len(t, stats.CompletedByDay, 7)
	for day, count := range stats.CompletedByDay {
		assert.Equal(t, 0, count, day)
	}
	assert.Contains(t, stats.CompletedByDay, "2026-09-01")
	assert.Contains(t, stats.CompletedByDay, "2026-08-26")
}

func TestComputeStatistics_CountsAndWindow(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	inWindow := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	outOfWindow := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	tasks := []domain.Task{
		{
			ID:          1,
			Status:      domain.TaskStatusCompleted,
			Category:    domain.TaskCategoryProgramming,
			CreatedAt:   inWindow.Add(-48 * time.Hour),
			CompletedAt: &inWindow,
		},
		{
			ID:          2,
			Status:      domain.TaskStatusCompleted,
			Category:    domain.TaskCategoryProgramming,
			CreatedAt:   outOfWindow.Add(-24 * time.Hour),
			CompletedAt: &outOfWindow,
		},
		{ID: 3, Status: domain.TaskStatusInProgress, Category: domain.TaskCategoryAudio},
		{ID: 4, Status: domain.TaskStatusNotStarted, Category: domain.TaskCategoryAudio},
	}
	subtasks := []domain.Subtask{
		{ID: 1, TaskID: 1, IsCompleted: true},
		{ID: 2, TaskID: 1},
	}

	stats := domain.ComputeStatistics([]domain.Project{{ID: 1}}, tasks, subtasks, nil, 7, now)

	assert.Equal(t, 1, stats.TotalProjects)
	assert.Equal(t, 4, stats.TotalTasks)
	assert.Equal(t, 2, stats.CompletedTasks)
	assert.Equal(t, 1, stats.InProgressTasks)
	assert.Equal(t, 1, stats.NotStartedTasks)
	assert.Equal(t, 2, stats.TasksByCategory[domain.TaskCategoryProgramming])
	assert.Equal(t, 2, stats.TasksByCategory[domain.TaskCategoryAudio])

	// Only the completion inside the window lands on its day; the older
	// one still feeds the average.
	assert.Equal(t, 1, stats.CompletedByDay["2026-08-30"])
	assert.Len(t, stats.CompletedByDay, 7)
	assert.Equal(t, 36.0, stats.AvgCompletionHours)

	assert.Equal(t, 2, stats.TotalSubtasks)
	assert.Equal(t, 1, stats.CompletedSubtasks)
}

func TestComputeStatistics_OpenLogsExcluded(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	ended := now.Add(-time.Hour)

	logs := []domain.TimeLog{
		{ID: 1, TaskID: 1, StartedAt: now.Add(-2 * time.Hour), EndedAt: &ended, DurationSeconds: 3600},
		{ID: 2, TaskID: 1, StartedAt: now.Add(-30 * time.Minute)},
	}

	stats := domain.ComputeStatistics(nil, nil, nil, logs, 7, now)
	assert.Equal(t, int64(3600), stats.TotalTrackedSeconds)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0h 00m 00s", domain.FormatDuration(0))
	assert.Equal(t, "0h 00m 00s", domain.FormatDuration(-5))
	assert.Equal(t, "0h 01m 30s", domain.FormatDuration(90))
	assert.Equal(t, "1h 02m 03s", domain.FormatDuration(3723))
	assert.Equal(t, "27h 46m 39s", domain.FormatDuration(99999))
}
