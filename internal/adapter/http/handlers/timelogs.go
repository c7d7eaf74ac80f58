package handlers

import (
	"net/http"

	"github.com/islamdev99/GameDevTask/internal/adapter/http/dto"
	"github.com/islamdev99/GameDevTask/internal/adapter/http/mapper"
	"github.com/islamdev99/GameDevTask/internal/core/ports"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TimeLogHandler struct {
	timeLogService ports.TimeLogService
}

func NewTimeLogHandler(timeLogService ports.TimeLogService) *TimeLogHandler {
	return &TimeLogHandler{timeLogService: timeLogService}
}

func (h *TimeLogHandler) ListTaskTimeLogs(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	logs, err := h.timeLogService.ListTaskTimeLogs(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, err, "failed to list time logs", zap.Int64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTimeLogItems(logs))
}

func (h *TimeLogHandler) StartTimer(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.StartTimerRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondInvalidPayload(c)
			return
		}
	}

	log, err := h.timeLogService.StartTimer(c.Request.Context(), taskID, req.Description)
	if err != nil {
		respondError(c, err, "failed to start timer", zap.Int64("task_id", taskID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTimeLogItem(log))
}

func (h *TimeLogHandler) StopTimer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	log, err := h.timeLogService.StopTimer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to stop timer", zap.Int64("time_log_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTimeLogItem(log))
}
