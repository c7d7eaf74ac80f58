package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/islamdev99/GameDevTask/internal/core/domain"
	"github.com/islamdev99/GameDevTask/internal/core/ports"
)

type ActivityRepository struct {
	store *Store
}

var _ ports.ActivityRepository = (*ActivityRepository)(nil)

func NewActivityRepository(store *Store) *ActivityRepository {
	return &ActivityRepository{store: store}
}

type activityRow struct {
	ID        int64          `db:"id"`
	TaskID    sql.NullInt64  `db:"task_id"`
	ProjectID sql.NullInt64  `db:"project_id"`
	Action    string         `db:"action"`
	UserID    sql.NullString `db:"user_id"`
	Details   string         `db:"details"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r *ActivityRepository) Record(ctx context.Context, entry domain.ActivityEntry) (domain.ActivityEntry, error) {
	createdAt := time.Now().UTC()
	res, err := r.store.q(ctx).ExecContext(ctx,
		`INSERT INTO activity_log (task_id, project_id, action, user_id, details, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		toNullInt64(entry.TaskID),
		toNullInt64(entry.ProjectID),
		string(entry.Action),
		toNullString(entry.UserID),
		entry.Details,
		createdAt,
	)
	if err != nil {
		return domain.ActivityEntry{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.ActivityEntry{}, err
	}

	entry.ID = id
	entry.CreatedAt = createdAt
	return entry, nil
}

func (r *ActivityRepository) Query(ctx context.Context, filter domain.ActivityFilter) ([]domain.ActivityEntry, error) {
	conds := make([]string, 0, 2)
	args := make([]interface{}, 0, 3)
	if filter.ProjectID != nil {
		conds = append(conds, "project_id = ?")
		args = append(args, *filter.ProjectID)
	}
	if filter.TaskID != nil {
		conds = append(conds, "task_id = ?")
		args = append(args, *filter.TaskID)
	}

	query := `SELECT * FROM activity_log`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	var rows []activityRow
	if err := r.store.q(ctx).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	entries := make([]domain.ActivityEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, mapActivityRow(row))
	}
	return entries, nil
}

func (r *ActivityRepository) DetachTasks(ctx context.Context, taskIDs []int64) error {
	if len(taskIDs) == 0 {
		return nil
	}
	query, args, err := sqlx.In(`UPDATE activity_log SET task_id = NULL WHERE task_id IN (?)`, taskIDs)
	if err != nil {
		return err
	}
	_, err = r.store.q(ctx).ExecContext(ctx, r.store.q(ctx).Rebind(query), args...)
	return err
}

func (r *ActivityRepository) DetachProject(ctx context.Context, projectID int64) error {
	_, err := r.store.q(ctx).ExecContext(ctx,
		`UPDATE activity_log SET project_id = NULL WHERE project_id = ?`, projectID)
	return err
}

func (r *ActivityRepository) ReplaceAll(ctx context.Context, entries []domain.ActivityEntry) error {
	if _, err := r.store.q(ctx).ExecContext(ctx, `DELETE FROM activity_log`); err != nil {
		return err
	}
	for _, e := range entries {
		_, err := r.store.q(ctx).ExecContext(ctx,
			`INSERT INTO activity_log (id, task_id, project_id, action, user_id, details, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			e.ID, toNullInt64(e.TaskID), toNullInt64(e.ProjectID), string(e.Action), toNullString(e.UserID), e.Details, e.CreatedAt,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func mapActivityRow(row activityRow) domain.ActivityEntry {
	return domain.ActivityEntry{
		ID:        row.ID,
		TaskID:    ptrInt64(row.TaskID),
		ProjectID: ptrInt64(row.ProjectID),
		Action:    domain.ActivityAction(row.Action),
		UserID:    ptrString(row.UserID),
		Details:   row.Details,
		CreatedAt: row.CreatedAt,
	}
}
