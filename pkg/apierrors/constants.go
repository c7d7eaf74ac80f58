package apierrors

const (
	MsgInvalidID      = "invalidID"
	MsgInvalidPayload = "invalidPayload"
	MsgInvalidBackup  = "invalidBackup"
	MsgInternal       = "internalError"

	MsgProjectNotFound      = "projectNotFound"
	MsgTaskNotFound         = "taskNotFound"
	MsgSubtaskNotFound      = "subtaskNotFound"
	MsgBlockNotFound        = "blockNotFound"
	MsgCommentNotFound      = "commentNotFound"
	MsgTimeLogNotFound      = "timeLogNotFound"
	MsgSyncEntryNotFound    = "syncEntryNotFound"
	MsgNotificationNotFound = "notificationNotFound"
	MsgUserNotFound         = "userNotFound"

	MsgTimerRunning         = "timerRunning"
	MsgTimerStopped         = "timerStopped"
	MsgSubtaskOrderMismatch = "subtaskOrderMismatch"
)
