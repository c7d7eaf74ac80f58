package domain

import (
	"fmt"
	"time"
)

type TimeLog struct {
	ID              int64
	TaskID          int64
	StartedAt       time.Time
	EndedAt         *time.Time
	DurationSeconds int64
	Description     *string
}

// Running reports whether the log has been started but not stopped.
func (l TimeLog) Running() bool {
	return l.EndedAt == nil
}

// FormatDuration renders a second count as "1h 02m 03s", the shape used
// in activity details for stopped timers.
func FormatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%dh %02dm %02ds", h, m, s)
}
