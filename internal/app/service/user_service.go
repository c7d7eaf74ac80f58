package service

import (
	"context"
	"fmt"

	"github.com/islamdev99/GameDevTask/internal/core/domain"
	"github.com/islamdev99/GameDevTask/internal/core/ports"
)

type UserService struct {
	tx    ports.Transactor
	users ports.UserRepository
	audit auditor
}

var _ ports.UserService = (*UserService)(nil)

func NewUserService(tx ports.Transactor, users ports.UserRepository, activity ports.ActivityRepository, syncLog ports.SyncRepository) *UserService {
	return &UserService{
		tx:    tx,
		users: users,
		audit: auditor{activity: activity, syncLog: syncLog},
	}
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id string) (domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) CreateUser(ctx context.Context, input domain.CreateUserInput) (domain.User, error) {
	var user domain.User
	err := s.tx.Transact(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.users.Create(ctx, input)
		if err != nil {
			return err
		}

		entry := domain.ActivityEntry{
			Action:  domain.ActionCreate,
			UserID:  &user.ID,
			Details: fmt.Sprintf("registered user %q", user.Name),
		}
		if _, err := s.audit.activity.Record(ctx, entry); err != nil {
			return err
		}
		return s.audit.enqueue(ctx, domain.SyncEntityUser, user.ID, domain.ActionCreate, user)
	})
	return user, err
}

type NotificationService struct {
	tx            ports.Transactor
	notifications ports.NotificationRepository
	audit         auditor
}

var _ ports.NotificationService = (*NotificationService)(nil)

func NewNotificationService(tx ports.Transactor, notifications ports.NotificationRepository, activity ports.ActivityRepository, syncLog ports.SyncRepository) *NotificationService {
	return &NotificationService{
		tx:            tx,
		notifications: notifications,
		audit:         auditor{activity: activity, syncLog: syncLog},
	}
}

func (s *NotificationService) ListNotifications(ctx context.Context) ([]domain.Notification, error) {
	return s.notifications.List(ctx)
}

func (s *NotificationService) MarkNotificationRead(ctx context.Context, id int64) error {
	return s.tx.Transact(ctx, func(ctx context.Context) error {
		if err := s.notifications.MarkRead(ctx, id); err != nil {
			return err
		}
		return s.audit.enqueue(ctx, domain.SyncEntityNotification, int64ID(id), domain.ActionUpdate, map[string]bool{"read": true})
	})
}

func (s *NotificationService) DeleteNotification(ctx context.Context, id int64) error {
	return s.tx.Transact(ctx, func(ctx context.Context) error {
		if err := s.notifications.Delete(ctx, id); err != nil {
			return err
		}
		return s.audit.enqueue(ctx, domain.SyncEntityNotification, int64ID(id), domain.ActionDelete, nil)
	})
}
