package domain

import "errors"

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrSubtaskNotFound      = errors.New("subtask not found")
	ErrBlockNotFound        = errors.New("block not found")
	ErrCommentNotFound      = errors.New("comment not found")
	ErrTimeLogNotFound      = errors.New("time log not found")
	ErrSyncEntryNotFound    = errors.New("sync entry not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrUserNotFound         = errors.New("user not found")

	// ErrTimerRunning is returned by Start when the task already has an
	// open time log.
	ErrTimerRunning = errors.New("time log already running for task")
	// ErrTimerStopped is returned by Stop on a log that already has an
	// end time.
	ErrTimerStopped = errors.New("time log already stopped")

	// ErrSubtaskOrderMismatch is returned by ReorderSubtasks when the
	// submitted id set is not exactly the task's subtasks.
	ErrSubtaskOrderMismatch = errors.New("subtask order mismatch")
)
