package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/islamdev99/GameDevTask/internal/core/domain"
	"github.com/islamdev99/GameDevTask/internal/core/ports"
)

type UserRepository struct {
	store *Store
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

type userRow struct {
	ID     string         `db:"id"`
	Name   string         `db:"name"`
	Email  sql.NullString `db:"email"`
	Avatar sql.NullString `db:"avatar"`
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var rows []userRow
	if err := r.store.q(ctx).SelectContext(ctx, &rows, `SELECT * FROM users ORDER BY id`); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUserRow(row))
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	var row userRow
	err := r.store.q(ctx).GetContext(ctx, &row, `SELECT * FROM users WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return mapUserRow(row), nil
}

func (r *UserRepository) Create(ctx context.Context, input domain.CreateUserInput) (domain.User, error) {
	id := input.ID
	if id == "" {
		id = uuid.NewString()
	}

	_, err := r.store.q(ctx).ExecContext(ctx,
		`INSERT INTO users (id, name, email, avatar) VALUES (?, ?, ?, ?)`,
		id, input.Name, toNullString(input.Email), toNullString(input.Avatar),
	)
	if err != nil {
		return domain.User{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *UserRepository) ReplaceAll(ctx context.Context, users []domain.User) error {
	if _, err := r.store.q(ctx).ExecContext(ctx, `DELETE FROM users`); err != nil {
		return err
	}
	for _, u := range users {
		_, err := r.store.q(ctx).ExecContext(ctx,
			`INSERT INTO users (id, name, email, avatar) VALUES (?, ?, ?, ?)`,
			u.ID, u.Name, toNullString(u.Email), toNullString(u.Avatar),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func mapUserRow(row userRow) domain.User {
	return domain.User{
		ID:     row.ID,
		Name:   row.Name,
		Email:  ptrString(row.Email),
		Avatar: ptrString(row.Avatar),
	}
}
