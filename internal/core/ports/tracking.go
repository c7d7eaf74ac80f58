package ports

import (
	"context"
	"time"

	"github.com/islamdev99/GameDevTask/internal/core/domain"
)

type TimeLogRepository interface {
	List(ctx context.Context) ([]domain.TimeLog, error)
	ListByTask(ctx context.Context, taskID int64) ([]domain.TimeLog, error)
	GetByID(ctx context.Context, id int64) (domain.TimeLog, error)
	// OpenByTask returns the task's running log, or ErrTimeLogNotFound
	// when none is open.
	OpenByTask(ctx context.Context, taskID int64) (domain.TimeLog, error)
	Create(ctx context.Context, taskID int64, startedAt time.Time, description *string) (domain.TimeLog, error)
	Stop(ctx context.Context, id int64, endedAt time.Time, durationSeconds int64) (domain.TimeLog, error)
	Delete(ctx context.Context, id int64) error
	DeleteByTasks(ctx context.Context, taskIDs []int64) error
	ReplaceAll(ctx context.Context, logs []domain.TimeLog) error
}

type TimeLogService interface {
	ListTaskTimeLogs(ctx context.Context, taskID int64) ([]domain.TimeLog, error)
	StartTimer(ctx context.Context, taskID int64, description *string) (domain.TimeLog, error)
	StopTimer(ctx context.Context, id int64) (domain.TimeLog, error)
}
