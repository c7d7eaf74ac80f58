package domain

// SettingsID is the fixed primary key of the singleton settings row.
const SettingsID = 1

type PomodoroSettings struct {
	FocusMinutes      int `json:"focusMinutes"`
	ShortBreakMinutes int `json:"shortBreakMinutes"`
	LongBreakMinutes  int `json:"longBreakMinutes"`
	LongBreakInterval int `json:"longBreakInterval"`
}

type NotificationSettings struct {
	Enabled           bool `json:"enabled"`
	DeadlineReminders bool `json:"deadlineReminders"`
	Sound             bool `json:"sound"`
}

type Settings struct {
	ID            int64
	Theme         string
	Language      string
	PrimaryColor  string
	Notifications NotificationSettings
	Pomodoro      PomodoroSettings
}

func DefaultSettings() Settings {
	return Settings{
		ID:           SettingsID,
		Theme:        "dark",
		Language:     "en",
		PrimaryColor: "#7c3aed",
		Notifications: NotificationSettings{
			Enabled:           true,
			DeadlineReminders: true,
			Sound:             true,
		},
		Pomodoro: PomodoroSettings{
			FocusMinutes:      25,
			ShortBreakMinutes: 5,
			LongBreakMinutes:  15,
			LongBreakInterval: 4,
		},
	}
}

type UpdateSettingsInput struct {
	Theme         *string
	Language      *string
	PrimaryColor  *string
	Notifications *NotificationSettings
	Pomodoro      *PomodoroSettings
}
