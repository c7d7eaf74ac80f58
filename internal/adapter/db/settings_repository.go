package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/islamdev99/GameDevTask/internal/core/domain"
	"github.com/islamdev99/GameDevTask/internal/core/ports"
)

type SettingsRepository struct {
	store *Store
}

var _ ports.SettingsRepository = (*SettingsRepository)(nil)

func NewSettingsRepository(store *Store) *SettingsRepository {
	return &SettingsRepository{store: store}
}

type settingsRow struct {
	ID            int64  `db:"id"`
	Theme         string `db:"theme"`
	Language      string `db:"language"`
	PrimaryColor  string `db:"primary_color"`
	Notifications string `db:"notifications"`
	Pomodoro      string `db:"pomodoro"`
}

func (r *SettingsRepository) Get(ctx context.Context) (domain.Settings, error) {
	var row settingsRow
	err := r.store.q(ctx).GetContext(ctx, &row, `SELECT * FROM settings WHERE id = ?`, domain.SettingsID)
	if errors.Is(err, sql.ErrNoRows) {
		return r.insert(ctx, domain.DefaultSettings())
	}
	if err != nil {
		return domain.Settings{}, err
	}
	return mapSettingsRow(row)
}

func (r *SettingsRepository) Save(ctx context.Context, settings domain.Settings) (domain.Settings, error) {
	settings.ID = domain.SettingsID
	if _, err := r.Get(ctx); err != nil {
		return domain.Settings{}, err
	}

	notifications, pomodoro, err := marshalSettings(settings)
	if err != nil {
		return domain.Settings{}, err
	}

	_, err = r.store.q(ctx).ExecContext(ctx,
		`UPDATE settings SET theme = ?, language = ?, primary_color = ?, notifications = ?, pomodoro = ? WHERE id = ?`,
		settings.Theme, settings.Language, settings.PrimaryColor, notifications, pomodoro, domain.SettingsID,
	)
	if err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}

func (r *SettingsRepository) insert(ctx context.Context, settings domain.Settings) (domain.Settings, error) {
	notifications, pomodoro, err := marshalSettings(settings)
	if err != nil {
		return domain.Settings{}, err
	}

	_, err = r.store.q(ctx).ExecContext(ctx,
		`INSERT INTO settings (id, theme, language, primary_color, notifications, pomodoro)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		domain.SettingsID, settings.Theme, settings.Language, settings.PrimaryColor, notifications, pomodoro,
	)
	if err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}

// ReplaceWith overwrites the singleton during a backup restore.
func (r *SettingsRepository) ReplaceWith(ctx context.Context, settings domain.Settings) error {
	if _, err := r.store.q(ctx).ExecContext(ctx, `DELETE FROM settings`); err != nil {
		return err
	}
	_, err := r.insert(ctx, settings)
	return err
}

func marshalSettings(settings domain.Settings) (string, string, error) {
	notifications, err := json.Marshal(settings.Notifications)
	if err != nil {
		return "", "", fmt.Errorf("marshal notification settings: %w", err)
	}
	pomodoro, err := json.Marshal(settings.Pomodoro)
	if err != nil {
		return "", "", fmt.Errorf("marshal pomodoro settings: %w", err)
	}
	return string(notifications), string(pomodoro), nil
}

func mapSettingsRow(row settingsRow) (domain.Settings, error) {
	settings := domain.Settings{
		ID:           row.ID,
		Theme:        row.Theme,
		Language:     row.Language,
		PrimaryColor: row.PrimaryColor,
	}
	if err := json.Unmarshal([]byte(row.Notifications), &settings.Notifications); err != nil {
		return domain.Settings{}, fmt.Errorf("unmarshal notification settings: %w", err)
	}
	if err := json.Unmarshal([]byte(row.Pomodoro), &settings.Pomodoro); err != nil {
		return domain.Settings{}, fmt.Errorf("unmarshal pomodoro settings: %w", err)
	}
	return settings, nil
}
