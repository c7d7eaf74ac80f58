package handlers

import (
	"net/http"

	"github.com/islamdev99/GameDevTask/internal/adapter/http/dto"
	"github.com/islamdev99/GameDevTask/internal/adapter/http/mapper"
	"github.com/islamdev99/GameDevTask/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsService ports.SettingsService
}

func NewSettingsHandler(settingsService ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to get settings")
		return
	}

	c.JSON(http.StatusOK, mapper.ToSettingsItem(settings))
}

func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}
	if req.Theme == nil && req.Language == nil && req.PrimaryColor == nil &&
		req.Notifications == nil && req.Pomodoro == nil {
		respondInvalidPayload(c)
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), mapper.ToUpdateSettingsInput(req))
	if err != nil {
		respondError(c, err, "failed to update settings")
		return
	}

	c.JSON(http.StatusOK, mapper.ToSettingsItem(settings))
}
