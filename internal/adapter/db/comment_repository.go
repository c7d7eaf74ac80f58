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

type CommentRepository struct {
	store *Store
}

var _ ports.CommentRepository = (*CommentRepository)(nil)

func NewCommentRepository(store *Store) *CommentRepository {
	return &CommentRepository{store: store}
}

type commentRow struct {
	ID        int64          `db:"id"`
	TaskID    int64          `db:"task_id"`
	AuthorID  sql.NullString `db:"author_id"`
	Body      string         `db:"body"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r *CommentRepository) List(ctx context.Context) ([]domain.Comment, error) {
	return r.selectComments(ctx, `SELECT * FROM comments ORDER BY id`)
}

func (r *CommentRepository) ListByTask(ctx context.Context, taskID int64) ([]domain.Comment, error) {
	return r.selectComments(ctx, `SELECT * FROM comments WHERE task_id = ? ORDER BY id`, taskID)
}

func (r *CommentRepository) selectComments(ctx context.Context, query string, args ...interface{}) ([]domain.Comment, error) {
	var rows []commentRow
	if err := r.store.q(ctx).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	comments := make([]domain.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, mapCommentRow(row))
	}
	return comments, nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	var row commentRow
	err := r.store.q(ctx).GetContext(ctx, &row, `SELECT * FROM comments WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Comment{}, domain.ErrCommentNotFound
	}
	if err != nil {
		return domain.Comment{}, err
	}
	return mapCommentRow(row), nil
}

func (r *CommentRepository) Create(ctx context.Context, input domain.CreateCommentInput) (domain.Comment, error) {
	res, err := r.store.q(ctx).ExecContext(ctx,
		`INSERT INTO comments (task_id, author_id, body, created_at) VALUES (?, ?, ?, ?)`,
		input.TaskID, toNullString(input.AuthorID), input.Body, time.Now().UTC(),
	)
	if err != nil {
		return domain.Comment{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Comment{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.store.q(ctx).ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (r *CommentRepository) DeleteByTasks(ctx context.Context, taskIDs []int64) error {
	if len(taskIDs) == 0 {
		return nil
	}
	query, args, err := sqlx.In(`DELETE FROM comments WHERE task_id IN (?)`, taskIDs)
	if err != nil {
		return err
	}
	_, err = r.store.q(ctx).ExecContext(ctx, r.store.q(ctx).Rebind(query), args...)
	return err
}

func (r *CommentRepository) ReplaceAll(ctx context.Context, comments []domain.Comment) error {
	if _, err := r.store.q(ctx).ExecContext(ctx, `DELETE FROM comments`); err != nil {
		return err
	}
	for _, c := range comments {
		_, err := r.store.q(ctx).ExecContext(ctx,
			`INSERT INTO comments (id, task_id, author_id, body, created_at) VALUES (?, ?, ?, ?, ?)`,
			c.ID, c.TaskID, toNullString(c.AuthorID), c.Body, c.CreatedAt,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func mapCommentRow(row commentRow) domain.Comment {
	return domain.Comment{
		ID:        row.ID,
		TaskID:    row.TaskID,
		AuthorID:  ptrString(row.AuthorID),
		Body:      row.Body,
		CreatedAt: row.CreatedAt,
	}
}
