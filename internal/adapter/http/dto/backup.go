package dto

// Backup is the export/import document. Dates are ISO-8601 strings;
// the importer parses them back to native times and rejects the whole
// document on any parse failure.
type Backup struct {
	Date          string             `json:"date"`
	Projects      []ProjectItem      `json:"projects"`
	Tasks         []TaskItem         `json:"tasks"`
	Subtasks      []SubtaskItem      `json:"subtasks,omitempty"`
	Blocks        []BlockItem        `json:"blocks,omitempty"`
	Comments      []CommentItem      `json:"comments,omitempty"`
	TimeLogs      []TimeLogItem      `json:"timeLogs,omitempty"`
	ActivityLog   []ActivityItem     `json:"activityLog,omitempty"`
	Notifications []NotificationItem `json:"notifications,omitempty"`
	Users         []UserItem         `json:"users,omitempty"`
	Settings      *SettingsItem      `json:"settings,omitempty"`
}
