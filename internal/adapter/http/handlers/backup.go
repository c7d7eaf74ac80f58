package handlers

import (
	"net/http"

	"github.com/islamdev99/GameDevTask/internal/adapter/http/dto"
	"github.com/islamdev99/GameDevTask/internal/adapter/http/mapper"
	"github.com/islamdev99/GameDevTask/internal/adapter/http/middleware"
	"github.com/islamdev99/GameDevTask/internal/core/ports"
	"github.com/islamdev99/GameDevTask/pkg/apierrors"

	"github.com/gin-gonic/gin"
)

type BackupHandler struct {
	backupService ports.BackupService
}

func NewBackupHandler(backupService ports.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

func (h *BackupHandler) ExportBackup(c *gin.Context) {
	backup, err := h.backupService.Export(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to export backup")
		return
	}

	c.JSON(http.StatusOK, mapper.ToBackup(backup))
}

// ImportBackup rejects the document outright on any decode or date
// parse failure; nothing is written unless the whole payload is valid.
func (h *BackupHandler) ImportBackup(c *gin.Context) {
	lang := middleware.GetLang(c)

	var doc dto.Backup
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidBackup, lang),
		)
		return
	}

	backup, err := mapper.FromBackup(doc)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidBackup, lang),
		)
		return
	}

	if err := h.backupService.Import(c.Request.Context(), backup); err != nil {
		respondError(c, err, "failed to import backup")
		return
	}

	c.Status(http.StatusNoContent)
}
