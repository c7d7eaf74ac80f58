package domain

import (
	"encoding/json"
	"time"
)

type SyncEntityType string

const (
	SyncEntityProject      SyncEntityType = "project"
	SyncEntityTask         SyncEntityType = "task"
	SyncEntitySubtask      SyncEntityType = "subtask"
	SyncEntityBlock        SyncEntityType = "block"
	SyncEntityComment      SyncEntityType = "comment"
	SyncEntityTimeLog      SyncEntityType = "timeLog"
	SyncEntitySettings     SyncEntityType = "settings"
	SyncEntityUser         SyncEntityType = "user"
	SyncEntityNotification SyncEntityType = "notification"
)

// SyncEntry is a pending local mutation awaiting remote synchronization.
// Data holds the full post-mutation snapshot, or nil for deletes.
type SyncEntry struct {
	ID         int64
	EntityType SyncEntityType
	EntityID   string
	Action     ActivityAction
	Synced     bool
	Data       json.RawMessage
	CreatedAt  time.Time
}
