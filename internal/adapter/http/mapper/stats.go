package mapper

import (
	"github.com/islamdev99/GameDevTask/internal/adapter/http/dto"
	"github.com/islamdev99/GameDevTask/internal/core/domain"
)

func ToStatistics(stats domain.Statistics) dto.Statistics {
	byCategory := make(map[string]int, len(stats.TasksByCategory))
	for category, count := range stats.TasksByCategory {
		byCategory[string(category)] = count
	}
	return dto.Statistics{
		TotalProjects:       stats.TotalProjects,
		TotalTasks:          stats.TotalTasks,
		CompletedTasks:      stats.CompletedTasks,
		InProgressTasks:     stats.InProgressTasks,
		NotStartedTasks:     stats.NotStartedTasks,
		TasksByCategory:     byCategory,
		CompletedByDay:      stats.CompletedByDay,
		TotalTrackedSeconds: stats.TotalTrackedSeconds,
		AvgCompletionHours:  stats.AvgCompletionHours,
		TotalSubtasks:       stats.TotalSubtasks,
		CompletedSubtasks:   stats.CompletedSubtasks,
	}
}
