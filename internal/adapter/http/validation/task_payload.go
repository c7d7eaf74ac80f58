package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/islamdev99/GameDevTask/internal/adapter/http/dto"
	"github.com/islamdev99/GameDevTask/internal/core/domain"
)

var ErrInvalidPayload = errors.New("invalid payload")

func BuildCreateTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	if hasJSONField(raw, "status") && req.Status == nil {
		return domain.CreateTaskInput{}, ErrInvalidPayload
	}
	if hasJSONField(raw, "priority") && req.Priority == nil {
		return domain.CreateTaskInput{}, ErrInvalidPayload
	}
	if hasJSONField(raw, "category") && req.Category == nil {
		return domain.CreateTaskInput{}, ErrInvalidPayload
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidPayload
	}

	status := domain.TaskStatusNotStarted
	if req.Status != nil {
		status = domain.TaskStatus(*req.Status)
	}

	priority := domain.TaskPriorityMedium
	if req.Priority != nil {
		priority = domain.TaskPriority(*req.Priority)
	}

	category := domain.TaskCategoryOther
	if req.Category != nil {
		category = domain.TaskCategory(*req.Category)
	}

	var deadline *time.Time
	if req.Deadline != nil {
		parsed, err := time.Parse("2006-01-02", *req.Deadline)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidPayload
		}
		deadline = &parsed
	}

	order := 0
	if req.Order != nil {
		order = *req.Order
	}

	return domain.CreateTaskInput{
		ProjectID:   req.ProjectID,
		Title:       title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		Category:    category,
		Deadline:    deadline,
		Order:       order,
		BlockID:     req.BlockID,
		AssignedTo:  req.AssignedTo,
	}, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	var title *string
	if hasJSONField(raw, "title") && req.Title == nil {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidPayload
		}
		title = &value
	}

	var status *domain.TaskStatus
	if hasJSONField(raw, "status") && req.Status == nil {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}
	if req.Status != nil {
		value := domain.TaskStatus(*req.Status)
		status = &value
	}

	var priority *domain.TaskPriority
	if hasJSONField(raw, "priority") && req.Priority == nil {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}
	if req.Priority != nil {
		value := domain.TaskPriority(*req.Priority)
		priority = &value
	}

	var category *domain.TaskCategory
	if hasJSONField(raw, "category") && req.Category == nil {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}
	if req.Category != nil {
		value := domain.TaskCategory(*req.Category)
		category = &value
	}

	descriptionSet := hasJSONField(raw, "description")
	if descriptionSet && !isJSONNull(raw["description"]) && req.Description == nil {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	var deadline *time.Time
	deadlineSet := hasJSONField(raw, "deadline")
	if deadlineSet && !isJSONNull(raw["deadline"]) {
		if req.Deadline == nil {
			return domain.UpdateTaskInput{}, ErrInvalidPayload
		}
		parsed, err := time.Parse("2006-01-02", *req.Deadline)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidPayload
		}
		deadline = &parsed
	}

	projectIDSet := hasJSONField(raw, "project_id")
	if projectIDSet && !isJSONNull(raw["project_id"]) && req.ProjectID == nil {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	blockIDSet := hasJSONField(raw, "block_id")
	if blockIDSet && !isJSONNull(raw["block_id"]) && req.BlockID == nil {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	assignedToSet := hasJSONField(raw, "assigned_to")
	if assignedToSet && !isJSONNull(raw["assigned_to"]) && req.AssignedTo == nil {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	return domain.UpdateTaskInput{
		ProjectID:      req.ProjectID,
		ProjectIDSet:   projectIDSet,
		Title:          title,
		Description:    req.Description,
		DescriptionSet: descriptionSet,
		Status:         status,
		Priority:       priority,
		Category:       category,
		Deadline:       deadline,
		DeadlineSet:    deadlineSet,
		Order:          req.Order,
		BlockID:        req.BlockID,
		BlockIDSet:     blockIDSet,
		AssignedTo:     req.AssignedTo,
		AssignedToSet:  assignedToSet,
	}, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "status") ||
		hasJSONField(raw, "priority") ||
		hasJSONField(raw, "category") ||
		hasJSONField(raw, "deadline") ||
		hasJSONField(raw, "project_id") ||
		hasJSONField(raw, "order") ||
		hasJSONField(raw, "block_id") ||
		hasJSONField(raw, "assigned_to")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
