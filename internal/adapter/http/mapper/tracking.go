package mapper

import (
	"encoding/json"
	"time"

	"github.com/islamdev99/GameDevTask/internal/adapter/http/dto"
	"github.com/islamdev99/GameDevTask/internal/core/domain"
)

func ToTimeLogItems(logs []domain.TimeLog) []dto.TimeLogItem {
	items := make([]dto.TimeLogItem, 0, len(logs))
	for _, log := range logs {
		items = append(items, ToTimeLogItem(log))
	}
	return items
}

func ToTimeLogItem(log domain.TimeLog) dto.TimeLogItem {
	item := dto.TimeLogItem{
		ID:              log.ID,
		TaskID:          log.TaskID,
		StartedAt:       log.StartedAt.Format(time.RFC3339),
		DurationSeconds: log.DurationSeconds,
	}
	if log.EndedAt != nil {
		value := log.EndedAt.Format(time.RFC3339)
		item.EndedAt = &value
	}
	if log.Description != nil {
		value := *log.Description
		item.Description = &value
	}
	return item
}

func ToActivityItems(entries []domain.ActivityEntry) []dto.ActivityItem {
	items := make([]dto.ActivityItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, ToActivityItem(entry))
	}
	return items
}

func ToActivityItem(entry domain.ActivityEntry) dto.ActivityItem {
	item := dto.ActivityItem{
		ID:        entry.ID,
		Action:    string(entry.Action),
		Details:   entry.Details,
		CreatedAt: entry.CreatedAt.Format(time.RFC3339),
	}
	if entry.TaskID != nil {
		value := *entry.TaskID
		item.TaskID = &value
	}
	if entry.ProjectID != nil {
		value := *entry.ProjectID
		item.ProjectID = &value
	}
	if entry.UserID != nil {
		value := *entry.UserID
		item.UserID = &value
	}
	return item
}

func ToSyncItems(entries []domain.SyncEntry) []dto.SyncItem {
	items := make([]dto.SyncItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, ToSyncItem(entry))
	}
	return items
}

func ToSyncItem(entry domain.SyncEntry) dto.SyncItem {
	item := dto.SyncItem{
		ID:         entry.ID,
		EntityType: string(entry.EntityType),
		EntityID:   entry.EntityID,
		Action:     string(entry.Action),
		Synced:     entry.Synced,
		CreatedAt:  entry.CreatedAt.Format(time.RFC3339),
	}
	if len(entry.Data) > 0 {
		item.Data = json.RawMessage(entry.Data)
	}
	return item
}
