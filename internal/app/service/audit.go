package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/islamdev99/GameDevTask/internal/core/domain"
	"github.com/islamdev99/GameDevTask/internal/core/ports"
)

// auditor bundles the two appends every mutation fans out to: the
// activity log row and the offline sync-queue entry. Callers invoke it
// inside the same transaction as the primary write so all three commit
// or roll back together.
type auditor struct {
	activity ports.ActivityRepository
	syncLog  ports.SyncRepository
}

func (a auditor) log(ctx context.Context, action domain.ActivityAction, taskID, projectID *int64, details string) error {
	_, err := a.activity.Record(ctx, domain.ActivityEntry{
		TaskID:    taskID,
		ProjectID: projectID,
		Action:    action,
		Details:   details,
	})
	return err
}

// enqueue captures the full post-mutation snapshot; pass a nil snapshot
// for deletes.
func (a auditor) enqueue(ctx context.Context, entityType domain.SyncEntityType, entityID string, action domain.ActivityAction, snapshot interface{}) error {
	var data json.RawMessage
	if snapshot != nil {
		raw, err := json.Marshal(snapshot)
		if err != nil {
			return fmt.Errorf("marshal sync snapshot: %w", err)
		}
		data = raw
	}

	_, err := a.syncLog.Enqueue(ctx, domain.SyncEntry{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		Data:       data,
	})
	return err
}

func int64ID(id int64) string {
	return strconv.FormatInt(id, 10)
}
