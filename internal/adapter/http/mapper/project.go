package mapper

import (
	"time"

	"github.com/islamdev99/GameDevTask/internal/adapter/http/dto"
	"github.com/islamdev99/GameDevTask/internal/core/domain"
)

func ToProjectItems(projects []domain.Project) []dto.ProjectItem {
	items := make([]dto.ProjectItem, 0, len(projects))
	for _, project := range projects {
		items = append(items, ToProjectItem(project))
	}
	return items
}

func ToProjectItem(project domain.Project) dto.ProjectItem {
	item := dto.ProjectItem{
		ID:               project.ID,
		Name:             project.Name,
		Phase:            string(project.Phase),
		Color:            project.Color,
		Progress:         project.Progress,
		DevelopmentTools: project.DevelopmentTools,
		CreatedAt:        project.CreatedAt.Format(time.RFC3339),
	}
	if item.DevelopmentTools == nil {
		item.DevelopmentTools = []string{}
	}

	if project.Description != nil {
		value := *project.Description
		item.Description = &value
	}

	if project.Deadline != nil {
		value := project.Deadline.Format("2006-01-02")
		item.Deadline = &value
	}

	if project.GameEngine != nil {
		value := *project.GameEngine
		item.GameEngine = &value
	}

	return item
}
