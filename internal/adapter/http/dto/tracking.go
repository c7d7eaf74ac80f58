package dto

type TimeLogItem struct {
	ID              int64   `json:"id"`
	TaskID          int64   `json:"task_id"`
	StartedAt       string  `json:"started_at"`
	EndedAt         *string `json:"ended_at,omitempty"`
	DurationSeconds int64   `json:"duration_seconds"`
	Description     *string `json:"description,omitempty"`
}

type StartTimerRequest struct {
	Description *string `json:"description" binding:"omitempty,max=65535"`
}

type ActivityItem struct {
	ID        int64   `json:"id"`
	TaskID    *int64  `json:"task_id,omitempty"`
	ProjectID *int64  `json:"project_id,omitempty"`
	Action    string  `json:"action"`
	UserID    *string `json:"user_id,omitempty"`
	Details   string  `json:"details"`
	CreatedAt string  `json:"created_at"`
}

type SyncItem struct {
	ID         int64       `json:"id"`
	EntityType string      `json:"entity_type"`
	EntityID   string      `json:"entity_id"`
	Action     string      `json:"action"`
	Synced     bool        `json:"synced"`
	Data       interface{} `json:"data"`
	CreatedAt  string      `json:"created_at"`
}

type PruneResult struct {
	Pruned int64 `json:"pruned"`
}
