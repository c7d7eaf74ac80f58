package dto

type Statistics struct {
	TotalProjects       int            `json:"total_projects"`
	TotalTasks          int            `json:"total_tasks"`
	CompletedTasks      int            `json:"completed_tasks"`
	InProgressTasks     int            `json:"in_progress_tasks"`
	NotStartedTasks     int            `json:"not_started_tasks"`
	TasksByCategory     map[string]int `json:"tasks_by_category"`
	CompletedByDay      map[string]int `json:"completed_by_day"`
	TotalTrackedSeconds int64          `json:"total_tracked_seconds"`
	AvgCompletionHours  float64        `json:"avg_completion_hours"`
	TotalSubtasks       int            `json:"total_subtasks"`
	CompletedSubtasks   int            `json:"completed_subtasks"`
}
