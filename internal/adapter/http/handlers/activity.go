package handlers

import (
	"net/http"
	"strconv"

	"github.com/islamdev99/GameDevTask/internal/adapter/http/dto"
	"github.com/islamdev99/GameDevTask/internal/adapter/http/mapper"
	"github.com/islamdev99/GameDevTask/internal/core/domain"
	"github.com/islamdev99/GameDevTask/internal/core/ports"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultActivityLimit = 100

type ActivityHandler struct {
	activityService ports.ActivityService
}

func NewActivityHandler(activityService ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

func (h *ActivityHandler) ListActivity(c *gin.Context) {
	filter := domain.ActivityFilter{Limit: defaultActivityLimit}

	if raw := c.Query("project_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			respondInvalidPayload(c)
			return
		}
		filter.ProjectID = &id
	}

	if raw := c.Query("task_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			respondInvalidPayload(c)
			return
		}
		filter.TaskID = &id
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			respondInvalidPayload(c)
			return
		}
		filter.Limit = limit
	}

	entries, err := h.activityService.QueryActivity(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "failed to query activity log")
		return
	}

	c.JSON(http.StatusOK, mapper.ToActivityItems(entries))
}

type SyncHandler struct {
	syncService ports.SyncService
}

func NewSyncHandler(syncService ports.SyncService) *SyncHandler {
	return &SyncHandler{syncService: syncService}
}

func (h *SyncHandler) ListPending(c *gin.Context) {
	entries, err := h.syncService.ListPending(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list pending sync entries")
		return
	}

	c.JSON(http.StatusOK, mapper.ToSyncItems(entries))
}

func (h *SyncHandler) MarkSynced(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.syncService.MarkSynced(c.Request.Context(), id); err != nil {
		respondError(c, err, "failed to mark sync entry", zap.Int64("sync_id", id))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *SyncHandler) PruneSynced(c *gin.Context) {
	pruned, err := h.syncService.PruneSynced(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to prune sync queue")
		return
	}

	c.JSON(http.StatusOK, dto.PruneResult{Pruned: pruned})
}
