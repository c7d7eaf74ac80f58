package service

import (
	"context"
	"time"

	"github.com/islamdev99/GameDevTask/internal/core/domain"
	"github.com/islamdev99/GameDevTask/internal/core/ports"
)

type BackupService struct {
	tx            ports.Transactor
	projects      ports.ProjectRepository
	tasks         ports.TaskRepository
	subtasks      ports.SubtaskRepository
	blocks        ports.BlockRepository
	comments      ports.CommentRepository
	timeLogs      ports.TimeLogRepository
	activity      ports.ActivityRepository
	notifications ports.NotificationRepository
	users         ports.UserRepository
	settings      ports.SettingsRepository
}

var _ ports.BackupService = (*BackupService)(nil)

func NewBackupService(
	tx ports.Transactor,
	projects ports.ProjectRepository,
	tasks ports.TaskRepository,
	subtasks ports.SubtaskRepository,
	blocks ports.BlockRepository,
	comments ports.CommentRepository,
	timeLogs ports.TimeLogRepository,
	activity ports.ActivityRepository,
	notifications ports.NotificationRepository,
	users ports.UserRepository,
	settings ports.SettingsRepository,
) *BackupService {
	return &BackupService{
		tx:            tx,
		projects:      projects,
		tasks:         tasks,
		subtasks:      subtasks,
		blocks:        blocks,
		comments:      comments,
		timeLogs:      timeLogs,
		activity:      activity,
		notifications: notifications,
		users:         users,
		settings:      settings,
	}
}

func (s *BackupService) Export(ctx context.Context) (domain.Backup, error) {
	backup := domain.Backup{Date: time.Now().UTC()}

	var err error
	if backup.Projects, err = s.projects.List(ctx); err != nil {
		return domain.Backup{}, err
	}
	if backup.Tasks, err = s.tasks.List(ctx); err != nil {
		return domain.Backup{}, err
	}
	if backup.Subtasks, err = s.subtasks.List(ctx); err != nil {
		return domain.Backup{}, err
	}
	if backup.Blocks, err = s.blocks.List(ctx); err != nil {
		return domain.Backup{}, err
	}
	if backup.Comments, err = s.comments.List(ctx); err != nil {
		return domain.Backup{}, err
	}
	if backup.TimeLogs, err = s.timeLogs.List(ctx); err != nil {
		return domain.Backup{}, err
	}
	if backup.Activity, err = s.activity.Query(ctx, domain.ActivityFilter{}); err != nil {
		return domain.Backup{}, err
	}
	if backup.Notifications, err = s.notifications.List(ctx); err != nil {
		return domain.Backup{}, err
	}
	if backup.Users, err = s.users.List(ctx); err != nil {
		return domain.Backup{}, err
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return domain.Backup{}, err
	}
	backup.Settings = &settings

	return backup, nil
}

// Import clears every table and bulk-inserts the backup's rows in a
// single transaction. Any failure rolls the whole restore back.
func (s *BackupService) Import(ctx context.Context, backup domain.Backup) error {
	return s.tx.Transact(ctx, func(ctx context.Context) error {
		if err := s.projects.ReplaceAll(ctx, backup.Projects); err != nil {
			return err
		}
		if err := s.tasks.ReplaceAll(ctx, backup.Tasks); err != nil {
			return err
		}
		if err := s.subtasks.ReplaceAll(ctx, backup.Subtasks); err != nil {
			return err
		}
		if err := s.blocks.ReplaceAll(ctx, backup.Blocks); err != nil {
			return err
		}
		if err := s.comments.ReplaceAll(ctx, backup.Comments); err != nil {
			return err
		}
		if err := s.timeLogs.ReplaceAll(ctx, backup.TimeLogs); err != nil {
			return err
		}
		if err := s.activity.ReplaceAll(ctx, backup.Activity); err != nil {
			return err
		}
		if err := s.notifications.ReplaceAll(ctx, backup.Notifications); err != nil {
			return err
		}
		if err := s.users.ReplaceAll(ctx, backup.Users); err != nil {
			return err
		}

		settings := domain.DefaultSettings()
		if backup.Settings != nil {
			settings = *backup.Settings
		}
		return s.settings.ReplaceWith(ctx, settings)
	})
}
