package ports

import (
	"context"
	"time"

	"github.com/islamdev99/GameDevTask/internal/core/domain"
)

type ActivityRepository interface {
	Record(ctx context.Context, entry domain.ActivityEntry) (domain.ActivityEntry, error)
	Query(ctx context.Context, filter domain.ActivityFilter) ([]domain.ActivityEntry, error)
	// DetachTasks and DetachProject null the back-references of entries
	// pointing at removed entities; the entries themselves survive.
	DetachTasks(ctx context.Context, taskIDs []int64) error
	DetachProject(ctx context.Context, projectID int64) error
	ReplaceAll(ctx context.Context, entries []domain.ActivityEntry) error
}

type SyncRepository interface {
	Enqueue(ctx context.Context, entry domain.SyncEntry) (domain.SyncEntry, error)
	ListUnsynced(ctx context.Context) ([]domain.SyncEntry, error)
	MarkSynced(ctx context.Context, id int64) error
	// PruneSynced deletes synced entries created before cutoff and
	// returns how many were removed. Unsynced entries are never pruned.
	PruneSynced(ctx context.Context, cutoff time.Time) (int64, error)
}

type ActivityService interface {
	QueryActivity(ctx context.Context, filter domain.ActivityFilter) ([]domain.ActivityEntry, error)
}

type SyncService interface {
	ListPending(ctx context.Context) ([]domain.SyncEntry, error)
	MarkSynced(ctx context.Context, id int64) error
	PruneSynced(ctx context.Context) (int64, error)
}
