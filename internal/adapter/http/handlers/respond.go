package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/islamdev99/GameDevTask/internal/adapter/http/middleware"
	"github.com/islamdev99/GameDevTask/internal/core/domain"
	"github.com/islamdev99/GameDevTask/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// parseIDParam reads a positive int64 path parameter, answering 400 on
// anything else.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		lang := middleware.GetLang(c)
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
		)
		return 0, false
	}
	return id, true
}

func respondInvalidPayload(c *gin.Context) {
	lang := middleware.GetLang(c)
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
	)
}

var domainErrorStatus = map[error]struct {
	status int
	msg    string
}{
	domain.ErrProjectNotFound:      {http.StatusNotFound, apierrors.MsgProjectNotFound},
	domain.ErrTaskNotFound:         {http.StatusNotFound, apierrors.MsgTaskNotFound},
	domain.ErrSubtaskNotFound:      {http.StatusNotFound, apierrors.MsgSubtaskNotFound},
	domain.ErrBlockNotFound:        {http.StatusNotFound, apierrors.MsgBlockNotFound},
	domain.ErrCommentNotFound:      {http.StatusNotFound, apierrors.MsgCommentNotFound},
	domain.ErrTimeLogNotFound:      {http.StatusNotFound, apierrors.MsgTimeLogNotFound},
	domain.ErrSyncEntryNotFound:    {http.StatusNotFound, apierrors.MsgSyncEntryNotFound},
	domain.ErrNotificationNotFound: {http.StatusNotFound, apierrors.MsgNotificationNotFound},
	domain.ErrUserNotFound:         {http.StatusNotFound, apierrors.MsgUserNotFound},
	domain.ErrTimerRunning:         {http.StatusConflict, apierrors.MsgTimerRunning},
	domain.ErrTimerStopped:         {http.StatusConflict, apierrors.MsgTimerStopped},
	domain.ErrSubtaskOrderMismatch: {http.StatusBadRequest, apierrors.MsgSubtaskOrderMismatch},
}

// respondError translates service errors. Known domain errors keep
// their mapped status; everything else is logged and becomes a 500.
func respondError(c *gin.Context, err error, logMsg string, fields ...zap.Field) {
	lang := middleware.GetLang(c)
	for domainErr, mapping := range domainErrorStatus {
		if errors.Is(err, domainErr) {
			c.JSON(mapping.status, apierrors.CreateError(mapping.status, mapping.msg, lang))
			return
		}
	}

	zap.L().Error(logMsg, append(fields, zap.Error(err))...)
	c.JSON(
		http.StatusInternalServerError,
		apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternal, lang),
	)
}
