package mapper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/islamdev99/GameDevTask/internal/adapter/http/dto"
	"github.com/islamdev99/GameDevTask/internal/adapter/http/mapper"
	"github.com/islamdev99/GameDevTask/internal/core/domain"
)

func TestBackupRoundTrip(t *testing.T) {
	deadline := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 9, 1, 8, 30, 0, 0, time.UTC)
	completedAt := time.Date(2026, 9, 2, 17, 0, 0, 0, time.UTC)
	projectID := int64(1)
	settings := domain.DefaultSettings()

	original := domain.Backup{
		Date: createdAt,
		Projects: []domain.Project{{
			ID:               1,
			Name:             "Demo",
			Phase:            domain.PhaseProduction,
			Color:            "#22c55e",
			Deadline:         &deadline,
			DevelopmentTools: []string{"Godot"},
			CreatedAt:        createdAt,
		}},
		Tasks: []domain.Task{{
			ID:          2,
			ProjectID:   &projectID,
			Title:       "A",
			Status:      domain.TaskStatusCompleted,
			Priority:    domain.TaskPriorityHigh,
			Category:    domain.TaskCategoryProgramming,
			CreatedAt:   createdAt,
			CompletedAt: &completedAt,
		}},
		Subtasks: []domain.Subtask{{ID: 3, TaskID: 2, Title: "child", IsCompleted: true}},
		Settings: &settings,
	}

	doc := mapper.ToBackup(original)
	assert.Equal(t, "2026-10-01", *doc.Projects[0].Deadline)
	assert.Equal(t, "2026-09-02T17:00:00Z", *doc.Tasks[0].CompletedAt)

	restored, err := mapper.FromBackup(doc)
	require.NoError(t, err)

	assert.Equal(t, original.Projects, restored.Projects)
	assert.Equal(t, original.Tasks, restored.Tasks)
	assert.Equal(t, original.Subtasks, restored.Subtasks)
	require.NotNil(t, restored.Settings)
	assert.Equal(t, settings, *restored.Settings)
}

func TestFromBackup_RejectsMalformedDates(t *testing.T) {
	_, err := mapper.FromBackup(dto.Backup{
		Projects: []dto.ProjectItem{{ID: 1, Name: "Demo", CreatedAt: "yesterday"}},
	})
	assert.Error(t, err)

	badDeadline := "01/10/2026"
	_, err = mapper.FromBackup(dto.Backup{
		Tasks: []dto.TaskItem{{ID: 1, Title: "A", CreatedAt: "2026-09-01T08:30:00Z", Deadline: &badDeadline}},
	})
	assert.Error(t, err)

	_, err = mapper.FromBackup(dto.Backup{Date: "not-a-date"})
	assert.Error(t, err)
}
