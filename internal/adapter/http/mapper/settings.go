package mapper

import (
	"time"

	"github.com/islamdev99/GameDevTask/internal/adapter/http/dto"
	"github.com/islamdev99/GameDevTask/internal/core/domain"
)

func ToSettingsItem(settings domain.Settings) dto.SettingsItem {
	return dto.SettingsItem{
		Theme:        settings.Theme,
		Language:     settings.Language,
		PrimaryColor: settings.PrimaryColor,
		Notifications: dto.NotificationSettings{
			Enabled:           settings.Notifications.Enabled,
			DeadlineReminders: settings.Notifications.DeadlineReminders,
			Sound:             settings.Notifications.Sound,
		},
		Pomodoro: dto.PomodoroSettings{
			FocusMinutes:      settings.Pomodoro.FocusMinutes,
			ShortBreakMinutes: settings.Pomodoro.ShortBreakMinutes,
			LongBreakMinutes:  settings.Pomodoro.LongBreakMinutes,
			LongBreakInterval: settings.Pomodoro.LongBreakInterval,
		},
	}
}

func ToUpdateSettingsInput(req dto.UpdateSettingsRequest) domain.UpdateSettingsInput {
	input := domain.UpdateSettingsInput{
		Theme:        req.Theme,
		Language:     req.Language,
		PrimaryColor: req.PrimaryColor,
	}
	if req.Notifications != nil {
		input.Notifications = &domain.NotificationSettings{
			Enabled:           req.Notifications.Enabled,
			DeadlineReminders: req.Notifications.DeadlineReminders,
			Sound:             req.Notifications.Sound,
		}
	}
	if req.Pomodoro != nil {
		input.Pomodoro = &domain.PomodoroSettings{
			FocusMinutes:      req.Pomodoro.FocusMinutes,
			ShortBreakMinutes: req.Pomodoro.ShortBreakMinutes,
			LongBreakMinutes:  req.Pomodoro.LongBreakMinutes,
			LongBreakInterval: req.Pomodoro.LongBreakInterval,
		}
	}
	return input
}

func ToUserItems(users []domain.User) []dto.UserItem {
	items := make([]dto.UserItem, 0, len(users))
	for _, user := range users {
		items = append(items, ToUserItem(user))
	}
	return items
}

func ToUserItem(user domain.User) dto.UserItem {
	item := dto.UserItem{
		ID:   user.ID,
		Name: user.Name,
	}
	if user.Email != nil {
		value := *user.Email
		item.Email = &value
	}
	if user.Avatar != nil {
		value := *user.Avatar
		item.Avatar = &value
	}
	return item
}

func ToNotificationItems(notifications []domain.Notification) []dto.NotificationItem {
	items := make([]dto.NotificationItem, 0, len(notifications))
	for _, notification := range notifications {
		items = append(items, ToNotificationItem(notification))
	}
	return items
}

func ToNotificationItem(notification domain.Notification) dto.NotificationItem {
	item := dto.NotificationItem{
		ID:        notification.ID,
		Title:     notification.Title,
		Body:      notification.Body,
		Read:      notification.Read,
		CreatedAt: notification.CreatedAt.Format(time.RFC3339),
	}
	if notification.TaskID != nil {
		value := *notification.TaskID
		item.TaskID = &value
	}
	return item
}
