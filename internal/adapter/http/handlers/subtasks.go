package handlers

import (
	"net/http"

	"github.com/islamdev99/GameDevTask/internal/adapter/http/dto"
	"github.com/islamdev99/GameDevTask/internal/adapter/http/mapper"
	"github.com/islamdev99/GameDevTask/internal/core/domain"
	"github.com/islamdev99/GameDevTask/internal/core/ports"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SubtaskHandler struct {
	subtaskService ports.SubtaskService
}

func NewSubtaskHandler(subtaskService ports.SubtaskService) *SubtaskHandler {
	return &SubtaskHandler{subtaskService: subtaskService}
}

func (h *SubtaskHandler) ListSubtasks(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	subtasks, err := h.subtaskService.ListSubtasks(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, err, "failed to list subtasks", zap.Int64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToSubtaskItems(subtasks))
}

func (h *SubtaskHandler) CreateSubtask(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	subtask, err := h.subtaskService.CreateSubtask(c.Request.Context(), domain.CreateSubtaskInput{
		TaskID: taskID,
		Title:  req.Title,
	})
	if err != nil {
		respondError(c, err, "failed to create subtask", zap.Int64("task_id", taskID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToSubtaskItem(subtask))
}

func (h *SubtaskHandler) UpdateSubtask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}
	if req.Title == nil && req.IsCompleted == nil {
		respondInvalidPayload(c)
		return
	}

	subtask, err := h.subtaskService.UpdateSubtask(c.Request.Context(), id, domain.UpdateSubtaskInput{
		Title:       req.Title,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		respondError(c, err, "failed to update subtask", zap.Int64("subtask_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToSubtaskItem(subtask))
}

func (h *SubtaskHandler) ToggleSubtask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	subtask, err := h.subtaskService.ToggleSubtask(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to toggle subtask", zap.Int64("subtask_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToSubtaskItem(subtask))
}

func (h *SubtaskHandler) ReorderSubtasks(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.ReorderSubtasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	subtasks, err := h.subtaskService.ReorderSubtasks(c.Request.Context(), taskID, req.OrderedIDs)
	if err != nil {
		respondError(c, err, "failed to reorder subtasks", zap.Int64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToSubtaskItems(subtasks))
}

func (h *SubtaskHandler) DeleteSubtask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.subtaskService.DeleteSubtask(c.Request.Context(), id); err != nil {
		respondError(c, err, "failed to delete subtask", zap.Int64("subtask_id", id))
		return
	}

	c.Status(http.StatusNoContent)
}
