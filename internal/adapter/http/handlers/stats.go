package handlers

import (
	"net/http"
	"strconv"

	"github.com/islamdev99/GameDevTask/internal/adapter/http/mapper"
	"github.com/islamdev99/GameDevTask/internal/core/ports"

	"github.com/gin-gonic/gin"
)

const defaultStatsWindowDays = 7

type StatsHandler struct {
	statsService ports.StatsService
}

func NewStatsHandler(statsService ports.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

func (h *StatsHandler) GetStatistics(c *gin.Context) {
	windowDays := defaultStatsWindowDays
	if raw := c.Query("window"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 365 {
			respondInvalidPayload(c)
			return
		}
		windowDays = parsed
	}

	stats, err := h.statsService.ComputeStatistics(c.Request.Context(), windowDays)
	if err != nil {
		respondError(c, err, "failed to compute statistics")
		return
	}

	c.JSON(http.StatusOK, mapper.ToStatistics(stats))
}
