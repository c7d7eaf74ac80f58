package domain

import "time"

// Backup is a full snapshot of every table. Import replaces table
// contents wholesale; it never merges.
type Backup struct {
	Date          time.Time
	Projects      []Project
	Tasks         []Task
	Subtasks      []Subtask
	Blocks        []Block
	Comments      []Comment
	TimeLogs      []TimeLog
	Activity      []ActivityEntry
	Notifications []Notification
	Users         []User
	Settings      *Settings
}
