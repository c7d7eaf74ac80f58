package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/islamdev99/GameDevTask/internal/adapter/http/dto"
	"github.com/islamdev99/GameDevTask/internal/adapter/http/mapper"
	"github.com/islamdev99/GameDevTask/internal/adapter/http/validation"
	"github.com/islamdev99/GameDevTask/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

type ProjectHandler struct {
	projectService ports.ProjectService
	taskService    ports.TaskService
}

func NewProjectHandler(projectService ports.ProjectService, taskService ports.TaskService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, taskService: taskService}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list projects")
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItems(projects))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to get project", zap.Int64("project_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) ListProjectTasks(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tasks, err := h.taskService.ListProjectTasks(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to list project tasks", zap.Int64("project_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	req, raw, ok := bindWithRaw[dto.CreateProjectRequest](c)
	if !ok {
		return
	}

	input, err := validation.BuildCreateProjectInput(req, raw)
	if err != nil {
		respondInvalidPayload(c)
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "failed to create project")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	req, raw, ok := bindWithRaw[dto.UpdateProjectRequest](c)
	if !ok {
		return
	}

	input, err := validation.BuildUpdateProjectInput(req, raw)
	if err != nil {
		respondInvalidPayload(c)
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err, "failed to update project", zap.Int64("project_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), id); err != nil {
		respondError(c, err, "failed to delete project", zap.Int64("project_id", id))
		return
	}

	c.Status(http.StatusNoContent)
}

// bindWithRaw decodes the body twice, once into the typed request and
// once into a raw field map so validation can tell absent fields from
// explicit nulls.
func bindWithRaw[T any](c *gin.Context) (T, map[string]json.RawMessage, bool) {
	var req T

	body, err := c.GetRawData()
	if err != nil {
		respondInvalidPayload(c)
		return req, nil, false
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		respondInvalidPayload(c)
		return req, nil, false
	}

	if err := json.Unmarshal(body, &req); err != nil {
		respondInvalidPayload(c)
		return req, nil, false
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		respondInvalidPayload(c)
		return req, nil, false
	}

	return req, raw, true
}
