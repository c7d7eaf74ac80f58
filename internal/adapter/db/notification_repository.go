package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/islamdev99/GameDevTask/internal/core/domain"
	"github.com/islamdev99/GameDevTask/internal/core/ports"
)

type NotificationRepository struct {
	store *Store
}

var _ ports.NotificationRepository = (*NotificationRepository)(nil)

func NewNotificationRepository(store *Store) *NotificationRepository {
	return &NotificationRepository{store: store}
}

type notificationRow struct {
	ID        int64         `db:"id"`
	Title     string        `db:"title"`
	Body      string        `db:"body"`
	TaskID    sql.NullInt64 `db:"task_id"`
	IsRead    bool          `db:"is_read"`
	CreatedAt time.Time     `db:"created_at"`
}

func (r *NotificationRepository) List(ctx context.Context) ([]domain.Notification, error) {
	var rows []notificationRow
	err := r.store.q(ctx).SelectContext(ctx, &rows, `SELECT * FROM notifications ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}

	notifications := make([]domain.Notification, 0, len(rows))
	for _, row := range rows {
		notifications = append(notifications, mapNotificationRow(row))
	}
	return notifications, nil
}

func (r *NotificationRepository) Create(ctx context.Context, input domain.CreateNotificationInput) (domain.Notification, error) {
	createdAt := time.Now().UTC()
	res, err := r.store.q(ctx).ExecContext(ctx,
		`INSERT INTO notifications (title, body, task_id, is_read, created_at) VALUES (?, ?, ?, ?, ?)`,
		input.Title, input.Body, toNullInt64(input.TaskID), false, createdAt,
	)
	if err != nil {
		return domain.Notification{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Notification{}, err
	}

	return domain.Notification{
		ID:        id,
		Title:     input.Title,
		Body:      input.Body,
		TaskID:    input.TaskID,
		Read:      false,
		CreatedAt: createdAt,
	}, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id int64) error {
	res, err := r.store.q(ctx).ExecContext(ctx, `UPDATE notifications SET is_read = ? WHERE id = ?`, true, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.store.q(ctx).ExecContext(ctx, `DELETE FROM notifications WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepository) ReplaceAll(ctx context.Context, notifications []domain.Notification) error {
	if _, err := r.store.q(ctx).ExecContext(ctx, `DELETE FROM notifications`); err != nil {
		return err
	}
	for _, n := range notifications {
		_, err := r.store.q(ctx).ExecContext(ctx,
			`INSERT INTO notifications (id, title, body, task_id, is_read, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
			n.ID, n.Title, n.Body, toNullInt64(n.TaskID), n.Read, n.CreatedAt,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func mapNotificationRow(row notificationRow) domain.Notification {
	return domain.Notification{
		ID:        row.ID,
		Title:     row.Title,
		Body:      row.Body,
		TaskID:    ptrInt64(row.TaskID),
		Read:      row.IsRead,
		CreatedAt: row.CreatedAt,
	}
}
