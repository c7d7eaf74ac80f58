package validation

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/islamdev99/GameDevTask/internal/adapter/http/dto"
	"github.com/islamdev99/GameDevTask/internal/core/domain"
)

func BuildCreateProjectInput(req dto.CreateProjectRequest, raw map[string]json.RawMessage) (domain.CreateProjectInput, error) {
	if hasJSONField(raw, "phase") && req.Phase == nil {
		return domain.CreateProjectInput{}, ErrInvalidPayload
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CreateProjectInput{}, ErrInvalidPayload
	}

	phase := domain.PhasePreProduction
	if req.Phase != nil {
		phase = domain.ProjectPhase(*req.Phase)
	}

	color := "#7c3aed"
	if req.Color != nil {
		color = *req.Color
	}

	var deadline *time.Time
	if req.Deadline != nil {
		parsed, err := time.Parse("2006-01-02", *req.Deadline)
		if err != nil {
			return domain.CreateProjectInput{}, ErrInvalidPayload
		}
		deadline = &parsed
	}

	return domain.CreateProjectInput{
		Name:             name,
		Description:      req.Description,
		Phase:            phase,
		Color:            color,
		Deadline:         deadline,
		GameEngine:       req.GameEngine,
		DevelopmentTools: req.DevelopmentTools,
	}, nil
}

func BuildUpdateProjectInput(req dto.UpdateProjectRequest, raw map[string]json.RawMessage) (domain.UpdateProjectInput, error) {
	if !hasProjectUpdateFields(raw) {
		return domain.UpdateProjectInput{}, ErrInvalidPayload
	}

	var name *string
	if hasJSONField(raw, "name") && req.Name == nil {
		return domain.UpdateProjectInput{}, ErrInvalidPayload
	}
	if req.Name != nil {
		value := strings.TrimSpace(*req.Name)
		if value == "" {
			return domain.UpdateProjectInput{}, ErrInvalidPayload
		}
		name = &value
	}

	var phase *domain.ProjectPhase
	if hasJSONField(raw, "phase") && req.Phase == nil {
		return domain.UpdateProjectInput{}, ErrInvalidPayload
	}
	if req.Phase != nil {
		value := domain.ProjectPhase(*req.Phase)
		phase = &value
	}

	descriptionSet := hasJSONField(raw, "description")
	if descriptionSet && !isJSONNull(raw["description"]) && req.Description == nil {
		return domain.UpdateProjectInput{}, ErrInvalidPayload
	}

	var deadline *time.Time
	deadlineSet := hasJSONField(raw, "deadline")
	if deadlineSet && !isJSONNull(raw["deadline"]) {
		if req.Deadline == nil {
			return domain.UpdateProjectInput{}, ErrInvalidPayload
		}
		parsed, err := time.Parse("2006-01-02", *req.Deadline)
		if err != nil {
			return domain.UpdateProjectInput{}, ErrInvalidPayload
		}
		deadline = &parsed
	}

	gameEngineSet := hasJSONField(raw, "game_engine")
	if gameEngineSet && !isJSONNull(raw["game_engine"]) && req.GameEngine == nil {
		return domain.UpdateProjectInput{}, ErrInvalidPayload
	}

	developmentToolsSet := hasJSONField(raw, "development_tools")

	return domain.UpdateProjectInput{
		Name:                name,
		Description:         req.Description,
		DescriptionSet:      descriptionSet,
		Phase:               phase,
		Color:               req.Color,
		Deadline:            deadline,
		DeadlineSet:         deadlineSet,
		Progress:            req.Progress,
		GameEngine:          req.GameEngine,
		GameEngineSet:       gameEngineSet,
		DevelopmentTools:    req.DevelopmentTools,
		DevelopmentToolsSet: developmentToolsSet,
	}, nil
}

func hasProjectUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "name") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "phase") ||
		hasJSONField(raw, "color") ||
		hasJSONField(raw, "deadline") ||
		hasJSONField(raw, "progress") ||
		hasJSONField(raw, "game_engine") ||
		hasJSONField(raw, "development_tools")
}
