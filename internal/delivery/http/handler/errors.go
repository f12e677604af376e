package handler

import (
	"errors"
	"net/http"

	"bioacoustic-monitor/internal/logger"
	"bioacoustic-monitor/internal/middleware"
	appErrors "bioacoustic-monitor/pkg/errors"
	"bioacoustic-monitor/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StatusFor maps an error onto the HTTP status of its kind.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, appErrors.ErrAuthenticationRequired):
		return http.StatusUnauthorized
	case errors.Is(err, appErrors.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, appErrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, appErrors.ErrDuplicateKey):
		return http.StatusConflict
	case errors.Is(err, appErrors.ErrValidationFailed):
		return http.StatusBadRequest
	case errors.Is(err, appErrors.ErrTransientIO):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondWithError(c *gin.Context, err error) {
	status := StatusFor(err)
	message := err.Error()

	switch status {
	case http.StatusServiceUnavailable:
		message = "service temporarily unavailable"
	case http.StatusForbidden:
		message = "forbidden"
	case http.StatusInternalServerError:
		var appErr *appErrors.AppError
		if !errors.As(err, &appErr) {
			message = "internal server error"
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}
	_ = c.Error(err)
	utils.ErrorResponse(c, status, message)
}

func parseID(c *gin.Context, param, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid "+label+" ID")
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
