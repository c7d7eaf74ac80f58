package ports

import (
	"context"

	"github.com/islamdev99/GameDevTask/internal/core/domain"
)

type StatsService interface {
	ComputeStatistics(ctx context.Context, windowDays int) (domain.Statistics, error)
}

type BackupService interface {
	Export(ctx context.Context) (domain.Backup, error)
	// Import clears every table and bulk-inserts the backup's rows in a
	// single transaction; any failure leaves the store untouched.
	Import(ctx context.Context, backup domain.Backup) error
}
