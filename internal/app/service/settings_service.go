package service

import (
	"context"
	"strconv"

	"github.com/islamdev99/GameDevTask/internal/core/domain"
	"github.com/islamdev99/GameDevTask/internal/core/ports"
)

type SettingsService struct {
	tx       ports.Transactor
	settings ports.SettingsRepository
	audit    auditor
}

var _ ports.SettingsService = (*SettingsService)(nil)

func NewSettingsService(tx ports.Transactor, settings ports.SettingsRepository, activity ports.ActivityRepository, syncLog ports.SyncRepository) *SettingsService {
	return &SettingsService{
		tx:       tx,
		settings: settings,
		audit:    auditor{activity: activity, syncLog: syncLog},
	}
}

func (s *SettingsService) GetSettings(ctx context.Context) (domain.Settings, error) {
	return s.settings.Get(ctx)
}

func (s *SettingsService) UpdateSettings(ctx context.Context, input domain.UpdateSettingsInput) (domain.Settings, error) {
	var settings domain.Settings
	err := s.tx.Transact(ctx, func(ctx context.Context) error {
		current, err := s.settings.Get(ctx)
		if err != nil {
			return err
		}

		if input.Theme != nil {
			current.Theme = *input.Theme
		}
		if input.Language != nil {
			current.Language = *input.Language
		}
		if input.PrimaryColor != nil {
			current.PrimaryColor = *input.PrimaryColor
		}
		if input.Notifications != nil {
			current.Notifications = *input.Notifications
		}
		if input.Pomodoro != nil {
			current.Pomodoro = *input.Pomodoro
		}

		settings, err = s.settings.Save(ctx, current)
		if err != nil {
			return err
		}
		if err := s.audit.log(ctx, domain.ActionUpdate, nil, nil, "updated settings"); err != nil {
			return err
		}
		return s.audit.enqueue(ctx, domain.SyncEntitySettings, strconv.Itoa(domain.SettingsID), domain.ActionUpdate, settings)
	})
	return settings, err
}
