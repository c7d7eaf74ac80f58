package ports

import (
	"context"

	"github.com/islamdev99/GameDevTask/internal/core/domain"
)

type SettingsRepository interface {
	// Get returns the singleton row, creating it with defaults when the
	// table is empty.
	Get(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, settings domain.Settings) (domain.Settings, error)
	// ReplaceWith overwrites the singleton during a backup restore.
	ReplaceWith(ctx context.Context, settings domain.Settings) error
}

type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	Create(ctx context.Context, input domain.CreateUserInput) (domain.User, error)
	ReplaceAll(ctx context.Context, users []domain.User) error
}

type NotificationRepository interface {
	List(ctx context.Context) ([]domain.Notification, error)
	Create(ctx context.Context, input domain.CreateNotificationInput) (domain.Notification, error)
	MarkRead(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	ReplaceAll(ctx context.Context, notifications []domain.Notification) error
}

type SettingsService interface {
	GetSettings(ctx context.Context) (domain.Settings, error)
	UpdateSettings(ctx context.Context, input domain.UpdateSettingsInput) (domain.Settings, error)
}

type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (domain.User, error)
	CreateUser(ctx context.Context, input domain.CreateUserInput) (domain.User, error)
}

type NotificationService interface {
	ListNotifications(ctx context.Context) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, id int64) error
	DeleteNotification(ctx context.Context, id int64) error
}
