package domain

import "time"

type ActivityAction string

const (
	ActionCreate    ActivityAction = "create"
	ActionUpdate    ActivityAction = "update"
	ActionDelete    ActivityAction = "delete"
	ActionComplete  ActivityAction = "complete"
	ActionReorder   ActivityAction = "reorder"
	ActionMove      ActivityAction = "move"
	ActionComment   ActivityAction = "comment"
	ActionTimeStart ActivityAction = "time-start"
	ActionTimeStop  ActivityAction = "time-stop"
)

// ActivityEntry is one row of the append-only audit trail. Entries are
// never updated or deleted; cascades only null the task/project
// references when the entity they point at goes away.
type ActivityEntry struct {
	ID        int64
	TaskID    *int64
	ProjectID *int64
	Action    ActivityAction
	UserID    *string
	Details   string
	CreatedAt time.Time
}

// ActivityFilter narrows an activity query. Zero values mean "no filter";
// Limit <= 0 means unbounded.
type ActivityFilter struct {
	ProjectID *int64
	TaskID    *int64
	Limit     int
}
