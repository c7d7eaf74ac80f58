package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/islamdev99/GameDevTask/internal/core/domain"
	"github.com/islamdev99/GameDevTask/internal/core/ports"
)

type TimeLogRepository struct {
	store *Store
}

var _ ports.TimeLogRepository = (*TimeLogRepository)(nil)

func NewTimeLogRepository(store *Store) *TimeLogRepository {
	return &TimeLogRepository{store: store}
}

type timeLogRow struct {
	ID              int64          `db:"id"`
	TaskID          int64          `db:"task_id"`
	StartedAt       time.Time      `db:"started_at"`
	EndedAt         sql.NullTime   `db:"ended_at"`
	DurationSeconds int64          `db:"duration_seconds"`
	Description     sql.NullString `db:"description"`
}

func (r *TimeLogRepository) List(ctx context.Context) ([]domain.TimeLog, error) {
	return r.selectLogs(ctx, `SELECT * FROM time_logs ORDER BY id`)
}

func (r *TimeLogRepository) ListByTask(ctx context.Context, taskID int64) ([]domain.TimeLog, error) {
	return r.selectLogs(ctx, `SELECT * FROM time_logs WHERE task_id = ? ORDER BY id`, taskID)
}

func (r *TimeLogRepository) selectLogs(ctx context.Context, query string, args ...interface{}) ([]domain.TimeLog, error) {
	var rows []timeLogRow
	if err := r.store.q(ctx).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	logs := make([]domain.TimeLog, 0, len(rows))
	for _, row := range rows {
		logs = append(logs, mapTimeLogRow(row))
	}
	return logs, nil
}

func (r *TimeLogRepository) GetByID(ctx context.Context, id int64) (domain.TimeLog, error) {
	var row timeLogRow
	err := r.store.q(ctx).GetContext(ctx, &row, `SELECT * FROM time_logs WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.TimeLog{}, domain.ErrTimeLogNotFound
	}
	if err != nil {
		return domain.TimeLog{}, err
	}
	return mapTimeLogRow(row), nil
}

func (r *TimeLogRepository) OpenByTask(ctx context.Context, taskID int64) (domain.TimeLog, error) {
	var row timeLogRow
	err := r.store.q(ctx).GetContext(ctx, &row,
		`SELECT * FROM time_logs WHERE task_id = ? AND ended_at IS NULL ORDER BY id DESC LIMIT 1`, taskID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.TimeLog{}, domain.ErrTimeLogNotFound
	}
	if err != nil {
		return domain.TimeLog{}, err
	}
	return mapTimeLogRow(row), nil
}

func (r *TimeLogRepository) Create(ctx context.Context, taskID int64, startedAt time.Time, description *string) (domain.TimeLog, error) {
	res, err := r.store.q(ctx).ExecContext(ctx,
		`INSERT INTO time_logs (task_id, started_at, ended_at, duration_seconds, description)
		 VALUES (?, ?, NULL, 0, ?)`,
		taskID, startedAt, toNullString(description),
	)
	if err != nil {
		return domain.TimeLog{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.TimeLog{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *TimeLogRepository) Stop(ctx context.Context, id int64, endedAt time.Time, durationSeconds int64) (domain.TimeLog, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return domain.TimeLog{}, err
	}

	_, err := r.store.q(ctx).ExecContext(ctx,
		`UPDATE time_logs SET ended_at = ?, duration_seconds = ? WHERE id = ?`,
		endedAt, durationSeconds, id,
	)
	if err != nil {
		return domain.TimeLog{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *TimeLogRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.store.q(ctx).ExecContext(ctx, `DELETE FROM time_logs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTimeLogNotFound
	}
	return nil
}

func (r *TimeLogRepository) DeleteByTasks(ctx context.Context, taskIDs []int64) error {
	if len(taskIDs) == 0 {
		return nil
	}
	query, args, err := sqlx.In(`DELETE FROM time_logs WHERE task_id IN (?)`, taskIDs)
	if err != nil {
		return err
	}
	_, err = r.store.q(ctx).ExecContext(ctx, r.store.q(ctx).Rebind(query), args...)
	return err
}

func (r *TimeLogRepository) ReplaceAll(ctx context.Context, logs []domain.TimeLog) error {
	if _, err := r.store.q(ctx).ExecContext(ctx, `DELETE FROM time_logs`); err != nil {
		return err
	}
	for _, l := range logs {
		_, err := r.store.q(ctx).ExecContext(ctx,
			`INSERT INTO time_logs (id, task_id, started_at, ended_at, duration_seconds, description)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			l.ID, l.TaskID, l.StartedAt, toNullTime(l.EndedAt), l.DurationSeconds, toNullString(l.Description),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func mapTimeLogRow(row timeLogRow) domain.TimeLog {
	return domain.TimeLog{
		ID:              row.ID,
		TaskID:          row.TaskID,
		StartedAt:       row.StartedAt,
		EndedAt:         ptrTime(row.EndedAt),
		DurationSeconds: row.DurationSeconds,
		Description:     ptrString(row.Description),
	}
}
