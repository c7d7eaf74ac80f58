package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/islamdev99/GameDevTask/internal/core/domain"
	"github.com/islamdev99/GameDevTask/internal/core/ports"
)

type TimeLogService struct {
	tx       ports.Transactor
	tasks    ports.TaskRepository
	timeLogs ports.TimeLogRepository
	audit    auditor
	// now is swapped in tests to pin wall-clock reads.
	now func() time.Time
}

var _ ports.TimeLogService = (*TimeLogService)(nil)

func NewTimeLogService(tx ports.Transactor, tasks ports.TaskRepository, timeLogs ports.TimeLogRepository, activity ports.ActivityRepository, syncLog ports.SyncRepository) *TimeLogService {
	return &TimeLogService{
		tx:       tx,
		tasks:    tasks,
		timeLogs: timeLogs,
		audit:    auditor{activity: activity, syncLog: syncLog},
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *TimeLogService) ListTaskTimeLogs(ctx context.Context, taskID int64) ([]domain.TimeLog, error) {
	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return nil, err
	}
	return s.timeLogs.ListByTask(ctx, taskID)
}

// StartTimer opens a time log for the task. A task can have at most one
// running log; starting a second returns ErrTimerRunning.
func (s *TimeLogService) StartTimer(ctx context.Context, taskID int64, description *string) (domain.TimeLog, error) {
	var log domain.TimeLog
	err := s.tx.Transact(ctx, func(ctx context.Context) error {
		task, err := s.tasks.GetByID(ctx, taskID)
		if err != nil {
			return err
		}

		_, err = s.timeLogs.OpenByTask(ctx, taskID)
		if err == nil {
			return domain.ErrTimerRunning
		}
		if !errors.Is(err, domain.ErrTimeLogNotFound) {
			return err
		}

		log, err = s.timeLogs.Create(ctx, taskID, s.now(), description)
		if err != nil {
			return err
		}
		if err := s.audit.log(ctx, domain.ActionTimeStart, &task.ID, task.ProjectID, fmt.Sprintf("started timer on %q", task.Title)); err != nil {
			return err
		}
		return s.audit.enqueue(ctx, domain.SyncEntityTimeLog, int64ID(log.ID), domain.ActionTimeStart, log)
	})
	return log, err
}

// StopTimer closes the log and records the elapsed whole seconds,
// floored and never negative.
func (s *TimeLogService) StopTimer(ctx context.Context, id int64) (domain.TimeLog, error) {
	var log domain.TimeLog
	err := s.tx.Transact(ctx, func(ctx context.Context) error {
		current, err := s.timeLogs.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !current.Running() {
			return domain.ErrTimerStopped
		}

		endedAt := s.now()
		duration := int64(endedAt.Sub(current.StartedAt).Seconds())
		if duration < 0 {
			duration = 0
		}

		log, err = s.timeLogs.Stop(ctx, id, endedAt, duration)
		if err != nil {
			return err
		}

		task, err := s.tasks.GetByID(ctx, current.TaskID)
		if err != nil {
			return err
		}
		details := fmt.Sprintf("tracked %s on %q", domain.FormatDuration(duration), task.Title)
		if err := s.audit.log(ctx, domain.ActionTimeStop, &task.ID, task.ProjectID, details); err != nil {
			return err
		}
		return s.audit.enqueue(ctx, domain.SyncEntityTimeLog, int64ID(id), domain.ActionTimeStop, log)
	})
	return log, err
}
