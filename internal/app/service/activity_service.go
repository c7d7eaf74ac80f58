package service

import (
	"context"
	"time"

	"github.com/islamdev99/GameDevTask/internal/core/domain"
	"github.com/islamdev99/GameDevTask/internal/core/ports"
)

type ActivityService struct {
	activity ports.ActivityRepository
}

var _ ports.ActivityService = (*ActivityService)(nil)

func NewActivityService(activity ports.ActivityRepository) *ActivityService {
	return &ActivityService{activity: activity}
}

func (s *ActivityService) QueryActivity(ctx context.Context, filter domain.ActivityFilter) ([]domain.ActivityEntry, error) {
	return s.activity.Query(ctx, filter)
}

type SyncQueueService struct {
	syncLog       ports.SyncRepository
	retentionDays int
}

var _ ports.SyncService = (*SyncQueueService)(nil)

func NewSyncQueueService(syncLog ports.SyncRepository, retentionDays int) *SyncQueueService {
	if retentionDays <= 0 {
		retentionDays = 30
	}
	return &SyncQueueService{syncLog: syncLog, retentionDays: retentionDays}
}

func (s *SyncQueueService) ListPending(ctx context.Context) ([]domain.SyncEntry, error) {
	return s.syncLog.ListUnsynced(ctx)
}

func (s *SyncQueueService) MarkSynced(ctx context.Context, id int64) error {
	return s.syncLog.MarkSynced(ctx, id)
}

// PruneSynced bounds queue growth: synced entries older than the
// retention window are dropped, pending ones are always kept.
func (s *SyncQueueService) PruneSynced(ctx context.Context) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -s.retentionDays)
	return s.syncLog.PruneSynced(ctx, cutoff)
}
