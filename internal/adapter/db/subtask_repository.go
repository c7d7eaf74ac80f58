package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/islamdev99/GameDevTask/internal/core/domain"
	"github.com/islamdev99/GameDevTask/internal/core/ports"
)

type SubtaskRepository struct {
	store *Store
}

var _ ports.SubtaskRepository = (*SubtaskRepository)(nil)

func NewSubtaskRepository(store *Store) *SubtaskRepository {
	return &SubtaskRepository{store: store}
}

type subtaskRow struct {
	ID          int64  `db:"id"`
	TaskID      int64  `db:"task_id"`
	Title       string `db:"title"`
	IsCompleted bool   `db:"is_completed"`
	Ord         int    `db:"ord"`
}

func (r *SubtaskRepository) List(ctx context.Context) ([]domain.Subtask, error) {
	return r.selectSubtasks(ctx, `SELECT * FROM subtasks ORDER BY task_id, ord`)
}

func (r *SubtaskRepository) ListByTask(ctx context.Context, taskID int64) ([]domain.Subtask, error) {
	return r.selectSubtasks(ctx, `SELECT * FROM subtasks WHERE task_id = ? ORDER BY ord`, taskID)
}

func (r *SubtaskRepository) selectSubtasks(ctx context.Context, query string, args ...interface{}) ([]domain.Subtask, error) {
	var rows []subtaskRow
	if err := r.store.q(ctx).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	subtasks := make([]domain.Subtask, 0, len(rows))
	for _, row := range rows {
		subtasks = append(subtasks, mapSubtaskRow(row))
	}
	return subtasks, nil
}

func (r *SubtaskRepository) GetByID(ctx context.Context, id int64) (domain.Subtask, error) {
	var row subtaskRow
	err := r.store.q(ctx).GetContext(ctx, &row, `SELECT * FROM subtasks WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Subtask{}, domain.ErrSubtaskNotFound
	}
	if err != nil {
		return domain.Subtask{}, err
	}
	return mapSubtaskRow(row), nil
}

func (r *SubtaskRepository) Create(ctx context.Context, input domain.CreateSubtaskInput, order int) (domain.Subtask, error) {
	res, err := r.store.q(ctx).ExecContext(ctx,
		`INSERT INTO subtasks (task_id, title, is_completed, ord) VALUES (?, ?, ?, ?)`,
		input.TaskID, input.Title, false, order,
	)
	if err != nil {
		return domain.Subtask{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Subtask{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *SubtaskRepository) Update(ctx context.Context, id int64, input domain.UpdateSubtaskInput) (domain.Subtask, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return domain.Subtask{}, err
	}

	title := current.Title
	if input.Title != nil {
		title = *input.Title
	}
	isCompleted := current.IsCompleted
	if input.IsCompleted != nil {
		isCompleted = *input.IsCompleted
	}

	_, err = r.store.q(ctx).ExecContext(ctx,
		`UPDATE subtasks SET title = ?, is_completed = ? WHERE id = ?`,
		title, isCompleted, id,
	)
	if err != nil {
		return domain.Subtask{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *SubtaskRepository) SetOrder(ctx context.Context, id int64, order int) error {
	res, err := r.store.q(ctx).ExecContext(ctx, `UPDATE subtasks SET ord = ? WHERE id = ?`, order, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrSubtaskNotFound
	}
	return nil
}

func (r *SubtaskRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.store.q(ctx).ExecContext(ctx, `DELETE FROM subtasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrSubtaskNotFound
	}
	return nil
}

func (r *SubtaskRepository) DeleteByTasks(ctx context.Context, taskIDs []int64) error {
	if len(taskIDs) == 0 {
		return nil
	}
	query, args, err := sqlx.In(`DELETE FROM subtasks WHERE task_id IN (?)`, taskIDs)
	if err != nil {
		return err
	}
	_, err = r.store.q(ctx).ExecContext(ctx, r.store.q(ctx).Rebind(query), args...)
	return err
}

func (r *SubtaskRepository) ReplaceAll(ctx context.Context, subtasks []domain.Subtask) error {
	if _, err := r.store.q(ctx).ExecContext(ctx, `DELETE FROM subtasks`); err != nil {
		return err
	}
	for _, s := range subtasks {
		_, err := r.store.q(ctx).ExecContext(ctx,
			`INSERT INTO subtasks (id, task_id, title, is_completed, ord) VALUES (?, ?, ?, ?, ?)`,
			s.ID, s.TaskID, s.Title, s.IsCompleted, s.Order,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func mapSubtaskRow(row subtaskRow) domain.Subtask {
	return domain.Subtask{
		ID:          row.ID,
		TaskID:      row.TaskID,
		Title:       row.Title,
		IsCompleted: row.IsCompleted,
		Order:       row.Ord,
	}
}
