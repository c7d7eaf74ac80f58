package domain

import "time"

// Statistics is a chart-agnostic summary recomputed from full table
// scans on every call; nothing here is cached or maintained
// incrementally.
type Statistics struct {
	TotalProjects       int
	TotalTasks          int
	CompletedTasks      int
	InProgressTasks     int
	NotStartedTasks     int
	TasksByCategory     map[TaskCategory]int
	CompletedByDay      map[string]int
	TotalTrackedSeconds int64
	AvgCompletionHours  float64
	TotalSubtasks       int
	CompletedSubtasks   int
}

// ComputeStatistics aggregates the loaded rows. CompletedByDay keys are
// ISO dates (UTC) and cover the windowDays days ending at now, zero
// counts included. Open time logs do not contribute to
// TotalTrackedSeconds.
func ComputeStatistics(projects []Project, tasks []Task, subtasks []Subtask, timeLogs []TimeLog, windowDays int, now time.Time) Statistics {
	stats := Statistics{
		TotalProjects:   len(projects),
		TotalTasks:      len(tasks),
		TasksByCategory: make(map[TaskCategory]int),
		CompletedByDay:  make(map[string]int),
	}

	if windowDays <= 0 {
		windowDays = 7
	}
	windowStart := now.UTC().Truncate(24 * time.Hour).AddDate(0, 0, -(windowDays - 1))
	for i := 0; i < windowDays; i++ {
		day := windowStart.AddDate(0, 0, i)
		stats.CompletedByDay[day.Format("2006-01-02")] = 0
	}

	completionHours := 0.0
	completedWithTimestamp := 0
	for _, task := range tasks {
		switch task.Status {
		case TaskStatusCompleted:
			stats.CompletedTasks++
		case TaskStatusInProgress:
			stats.InProgressTasks++
		default:
			stats.NotStartedTasks++
		}

		stats.TasksByCategory[task.Category]++

		if task.CompletedAt == nil {
			continue
		}
		day := task.CompletedAt.UTC().Format("2006-01-02")
		if _, inWindow := stats.CompletedByDay[day]; inWindow {
			stats.CompletedByDay[day]++
		}
		completionHours += task.CompletedAt.Sub(task.CreatedAt).Hours()
		completedWithTimestamp++
	}

	if completedWithTimestamp > 0 {
		stats.AvgCompletionHours = completionHours / float64(completedWithTimestamp)
	}

	for _, log := range timeLogs {
		if log.Running() {
			continue
		}
		stats.TotalTrackedSeconds += log.DurationSeconds
	}

	stats.TotalSubtasks = len(subtasks)
	for _, subtask := range subtasks {
		if subtask.IsCompleted {
			stats.CompletedSubtasks++
		}
	}

	return stats
}
