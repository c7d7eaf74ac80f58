package mapper

import (
	"fmt"
	"time"

	"github.com/islamdev99/GameDevTask/internal/adapter/http/dto"
	"github.com/islamdev99/GameDevTask/internal/core/domain"
)

func ToBackup(backup domain.Backup) dto.Backup {
	doc := dto.Backup{
		Date:          backup.Date.Format(time.RFC3339),
		Projects:      ToProjectItems(backup.Projects),
		Tasks:         ToTaskItems(backup.Tasks),
		Subtasks:      ToSubtaskItems(backup.Subtasks),
		Blocks:        ToBlockItems(backup.Blocks),
		Comments:      ToCommentItems(backup.Comments),
		TimeLogs:      ToTimeLogItems(backup.TimeLogs),
		ActivityLog:   ToActivityItems(backup.Activity),
		Notifications: ToNotificationItems(backup.Notifications),
		Users:         ToUserItems(backup.Users),
	}
	if backup.Settings != nil {
		settings := ToSettingsItem(*backup.Settings)
		doc.Settings = &settings
	}
	return doc
}

// FromBackup converts an import document back to domain types. Any
// malformed date anywhere fails the whole document.
func FromBackup(doc dto.Backup) (domain.Backup, error) {
	backup := domain.Backup{Date: time.Now().UTC()}
	if doc.Date != "" {
		date, err := time.Parse(time.RFC3339, doc.Date)
		if err != nil {
			return domain.Backup{}, fmt.Errorf("backup date: %w", err)
		}
		backup.Date = date
	}

	for _, item := range doc.Projects {
		project, err := fromProjectItem(item)
		if err != nil {
			return domain.Backup{}, err
		}
		backup.Projects = append(backup.Projects, project)
	}

	for _, item := range doc.Tasks {
		task, err := fromTaskItem(item)
		if err != nil {
			return domain.Backup{}, err
		}
		backup.Tasks = append(backup.Tasks, task)
	}

	for _, item := range doc.Subtasks {
		backup.Subtasks = append(backup.Subtasks, domain.Subtask{
			ID:          item.ID,
			TaskID:      item.TaskID,
			Title:       item.Title,
			IsCompleted: item.IsCompleted,
			Order:       item.Order,
		})
	}

	for _, item := range doc.Blocks {
		backup.Blocks = append(backup.Blocks, domain.Block{
			ID:    item.ID,
			Name:  item.Name,
			Color: item.Color,
			Order: item.Order,
		})
	}

	for _, item := range doc.Comments {
		createdAt, err := parseTimestamp("comment", item.ID, item.CreatedAt)
		if err != nil {
			return domain.Backup{}, err
		}
		backup.Comments = append(backup.Comments, domain.Comment{
			ID:        item.ID,
			TaskID:    item.TaskID,
			AuthorID:  item.AuthorID,
			Body:      item.Body,
			CreatedAt: createdAt,
		})
	}

	for _, item := range doc.TimeLogs {
		log, err := fromTimeLogItem(item)
		if err != nil {
			return domain.Backup{}, err
		}
		backup.TimeLogs = append(backup.TimeLogs, log)
	}

	for _, item := range doc.ActivityLog {
		createdAt, err := parseTimestamp("activity entry", item.ID, item.CreatedAt)
		if err != nil {
			return domain.Backup{}, err
		}
		backup.Activity = append(backup.Activity, domain.ActivityEntry{
			ID:        item.ID,
			TaskID:    item.TaskID,
			ProjectID: item.ProjectID,
			Action:    domain.ActivityAction(item.Action),
			UserID:    item.UserID,
			Details:   item.Details,
			CreatedAt: createdAt,
		})
	}

	for _, item := range doc.Notifications {
		createdAt, err := parseTimestamp("notification", item.ID, item.CreatedAt)
		if err != nil {
			return domain.Backup{}, err
		}
		backup.Notifications = append(backup.Notifications, domain.Notification{
			ID:        item.ID,
			Title:     item.Title,
			Body:      item.Body,
			TaskID:    item.TaskID,
			Read:      item.Read,
			CreatedAt: createdAt,
		})
	}

	for _, item := range doc.Users {
		backup.Users = append(backup.Users, domain.User{
			ID:     item.ID,
			Name:   item.Name,
			Email:  item.Email,
			Avatar: item.Avatar,
		})
	}

	if doc.Settings != nil {
		settings := fromSettingsItem(*doc.Settings)
		backup.Settings = &settings
	}

	return backup, nil
}

func fromProjectItem(item dto.ProjectItem) (domain.Project, error) {
	createdAt, err := parseTimestamp("project", item.ID, item.CreatedAt)
	if err != nil {
		return domain.Project{}, err
	}
	project := domain.Project{
		ID:               item.ID,
		Name:             item.Name,
		Description:      item.Description,
		Phase:            domain.ProjectPhase(item.Phase),
		Color:            item.Color,
		Progress:         item.Progress,
		GameEngine:       item.GameEngine,
		DevelopmentTools: item.DevelopmentTools,
		CreatedAt:        createdAt,
	}
	if item.Deadline != nil {
		deadline, err := parseDate("project", item.ID, *item.Deadline)
		if err != nil {
			return domain.Project{}, err
		}
		project.Deadline = &deadline
	}
	return project, nil
}

func fromTaskItem(item dto.TaskItem) (domain.Task, error) {
	createdAt, err := parseTimestamp("task", item.ID, item.CreatedAt)
	if err != nil {
		return domain.Task{}, err
	}
	task := domain.Task{
		ID:          item.ID,
		ProjectID:   item.ProjectID,
		Title:       item.Title,
		Description: item.Description,
		Status:      domain.TaskStatus(item.Status),
		Priority:    domain.TaskPriority(item.Priority),
		Category:    domain.TaskCategory(item.Category),
		CreatedAt:   createdAt,
		Order:       item.Order,
		BlockID:     item.BlockID,
		AssignedTo:  item.AssignedTo,
	}
	if item.Deadline != nil {
		deadline, err := parseDate("task", item.ID, *item.Deadline)
		if err != nil {
			return domain.Task{}, err
		}
		task.Deadline = &deadline
	}
	if item.CompletedAt != nil {
		completedAt, err := time.Parse(time.RFC3339, *item.CompletedAt)
		if err != nil {
			return domain.Task{}, fmt.Errorf("task %d completed_at: %w", item.ID, err)
		}
		task.CompletedAt = &completedAt
	}
	return task, nil
}

func fromTimeLogItem(item dto.TimeLogItem) (domain.TimeLog, error) {
	startedAt, err := time.Parse(time.RFC3339, item.StartedAt)
	if err != nil {
		return domain.TimeLog{}, fmt.Errorf("time log %d started_at: %w", item.ID, err)
	}
	log := domain.TimeLog{
		ID:              item.ID,
		TaskID:          item.TaskID,
		StartedAt:       startedAt,
		DurationSeconds: item.DurationSeconds,
		Description:     item.Description,
	}
	if item.EndedAt != nil {
		endedAt, err := time.Parse(time.RFC3339, *item.EndedAt)
		if err != nil {
			return domain.TimeLog{}, fmt.Errorf("time log %d ended_at: %w", item.ID, err)
		}
		log.EndedAt = &endedAt
	}
	return log, nil
}

func fromSettingsItem(item dto.SettingsItem) domain.Settings {
	return domain.Settings{
		ID:           domain.SettingsID,
		Theme:        item.Theme,
		Language:     item.Language,
		PrimaryColor: item.PrimaryColor,
		Notifications: domain.NotificationSettings{
			Enabled:           item.Notifications.Enabled,
			DeadlineReminders: item.Notifications.DeadlineReminders,
			Sound:             item.Notifications.Sound,
		},
		Pomodoro: domain.PomodoroSettings{
			FocusMinutes:      item.Pomodoro.FocusMinutes,
			ShortBreakMinutes: item.Pomodoro.ShortBreakMinutes,
			LongBreakMinutes:  item.Pomodoro.LongBreakMinutes,
			LongBreakInterval: item.Pomodoro.LongBreakInterval,
		},
	}
}

func parseTimestamp(entity string, id int64, raw string) (time.Time, error) {
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s %d created_at: %w", entity, id, err)
	}
	return ts, nil
}

func parseDate(entity string, id int64, raw string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s %d deadline: %w", entity, id, err)
	}
	return date, nil
}
