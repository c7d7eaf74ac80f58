package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/islamdev99/GameDevTask/internal/core/domain"
)

func TestSettingsService_GetSettings_CreatesDefaults(t *testing.T) {
	env := newTestEnv(t)

	settings, err := env.settingsService.GetSettings(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "dark", settings.Theme)
	assert.Equal(t, "en", settings.Language)
	assert.Equal(t, "#7c3aed", settings.PrimaryColor)
	assert.True(t, settings.Notifications.Enabled)
	assert.Equal(t, 25, settings.Pomodoro.FocusMinutes)
	assert.Equal(t, 5, settings.Pomodoro.ShortBreakMinutes)
	assert.Equal(t, 15, settings.Pomodoro.LongBreakMinutes)
	assert.Equal(t, 4, settings.Pomodoro.LongBreakInterval)
}

func TestSettingsService_UpdateSettings_MergesPartial(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	theme := "light"
	pomodoro := domain.PomodoroSettings{FocusMinutes: 50, ShortBreakMinutes: 10, LongBreakMinutes: 30, LongBreakInterval: 2}
	updated, err := env.settingsService.UpdateSettings(ctx, domain.UpdateSettingsInput{
		Theme:    &theme,
		Pomodoro: &pomodoro,
	})
	require.NoError(t, err)

	assert.Equal(t, "light", updated.Theme)
	assert.Equal(t, 50, updated.Pomodoro.FocusMinutes)
	// Untouched fields keep their defaults.
	assert.Equal(t, "en", updated.Language)
	assert.True(t, updated.Notifications.Enabled)

	reloaded, err := env.settingsService.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, reloaded)
}

func TestUserService_CreateUser_AssignsUUIDWhenMissing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.userService.CreateUser(ctx, domain.CreateUserInput{Name: "Rana"})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)

	fetched, err := env.userService.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rana", fetched.Name)
}

func TestUserService_CreateUser_KeepsCallerID(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.userService.CreateUser(context.Background(), domain.CreateUserInput{
		ID:   "external-42",
		Name: "Sam",
	})
	require.NoError(t, err)
	assert.Equal(t, "external-42", user.ID)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.userService.GetUser(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestNotificationService_MarkReadAndDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.notifications.Create(ctx, domain.CreateNotificationInput{
		Title: "Deadline soon",
		Body:  "Ship demo build is due tomorrow",
	})
	require.NoError(t, err)
	assert.False(t, created.Read)

	require.NoError(t, env.notifService.MarkNotificationRead(ctx, created.ID))

	list, err := env.notifService.ListNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Read)

	require.NoError(t, env.notifService.DeleteNotification(ctx, created.ID))
	list, err = env.notifService.ListNotifications(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	env := newTestEnv(t)
	err := env.notifService.MarkNotificationRead(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotificationNotFound)
}
