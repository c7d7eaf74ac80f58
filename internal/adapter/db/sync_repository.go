package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/islamdev99/GameDevTask/internal/core/domain"
	"github.com/islamdev99/GameDevTask/internal/core/ports"
)

type SyncRepository struct {
	store *Store
}

var _ ports.SyncRepository = (*SyncRepository)(nil)

func NewSyncRepository(store *Store) *SyncRepository {
	return &SyncRepository{store: store}
}

type syncRow struct {
	ID         int64          `db:"id"`
	EntityType string         `db:"entity_type"`
	EntityID   string         `db:"entity_id"`
	Action     string         `db:"action"`
	Synced     bool           `db:"synced"`
	Data       sql.NullString `db:"data"`
	CreatedAt  time.Time      `db:"created_at"`
}

func (r *SyncRepository) Enqueue(ctx context.Context, entry domain.SyncEntry) (domain.SyncEntry, error) {
	createdAt := time.Now().UTC()

	data := sql.NullString{}
	if entry.Data != nil {
		data = sql.NullString{String: string(entry.Data), Valid: true}
	}

	res, err := r.store.q(ctx).ExecContext(ctx,
		`INSERT INTO sync_log (entity_type, entity_id, action, synced, data, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		string(entry.EntityType),
		entry.EntityID,
		string(entry.Action),
		false,
		data,
		createdAt,
	)
	if err != nil {
		return domain.SyncEntry{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.SyncEntry{}, err
	}

	entry.ID = id
	entry.Synced = false
	entry.CreatedAt = createdAt
	return entry, nil
}

func (r *SyncRepository) ListUnsynced(ctx context.Context) ([]domain.SyncEntry, error) {
	var rows []syncRow
	err := r.store.q(ctx).SelectContext(ctx, &rows,
		`SELECT * FROM sync_log WHERE synced = ? ORDER BY id`, false)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.SyncEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, mapSyncRow(row))
	}
	return entries, nil
}

func (r *SyncRepository) MarkSynced(ctx context.Context, id int64) error {
	res, err := r.store.q(ctx).ExecContext(ctx,
		`UPDATE sync_log SET synced = ? WHERE id = ?`, true, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrSyncEntryNotFound
	}
	return nil
}

func (r *SyncRepository) PruneSynced(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.store.q(ctx).ExecContext(ctx,
		`DELETE FROM sync_log WHERE synced = ? AND created_at < ?`, true, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func mapSyncRow(row syncRow) domain.SyncEntry {
	entry := domain.SyncEntry{
		ID:         row.ID,
		EntityType: domain.SyncEntityType(row.EntityType),
		EntityID:   row.EntityID,
		Action:     domain.ActivityAction(row.Action),
		Synced:     row.Synced,
		CreatedAt:  row.CreatedAt,
	}
	if row.Data.Valid {
		entry.Data = json.RawMessage(row.Data.String)
	}
	return entry
}
