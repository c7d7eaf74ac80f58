package dto

type PomodoroSettings struct {
	FocusMinutes      int `json:"focus_minutes"`
	ShortBreakMinutes int `json:"short_break_minutes"`
	LongBreakMinutes  int `json:"long_break_minutes"`
	LongBreakInterval int `json:"long_break_interval"`
}

type NotificationSettings struct {
	Enabled           bool `json:"enabled"`
	DeadlineReminders bool `json:"deadline_reminders"`
	Sound             bool `json:"sound"`
}

type SettingsItem struct {
	Theme         string               `json:"theme"`
	Language      string               `json:"language"`
	PrimaryColor  string               `json:"primary_color"`
	Notifications NotificationSettings `json:"notifications"`
	Pomodoro      PomodoroSettings     `json:"pomodoro"`
}

type UpdateSettingsRequest struct {
	Theme         *string               `json:"theme" binding:"omitempty,oneof=dark light"`
	Language      *string               `json:"language" binding:"omitempty,max=8"`
	PrimaryColor  *string               `json:"primary_color" binding:"omitempty,max=32"`
	Notifications *NotificationSettings `json:"notifications"`
	Pomodoro      *PomodoroSettings     `json:"pomodoro"`
}

type UserItem struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Email  *string `json:"email,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

type CreateUserRequest struct {
	ID     *string `json:"id" binding:"omitempty,max=64"`
	Name   string  `json:"name" binding:"required,max=255"`
	Email  *string `json:"email" binding:"omitempty,email,max=255"`
	Avatar *string `json:"avatar" binding:"omitempty,max=512"`
}

type NotificationItem struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	TaskID    *int64 `json:"task_id,omitempty"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}
