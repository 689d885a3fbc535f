// Package handlers provides HTTP request handlers for the presentation layer.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/AtRiskMedia/glowyn-go/internal/application/services"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/analysis"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/media"
	"github.com/gin-gonic/gin"
)

// statusFor maps service errors onto HTTP statuses; anything unrecognised
// gets fallback.
func statusFor(err error, fallback int) int {
	switch {
	case errors.Is(err, services.ErrPostNotFound),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrUnknownAccount):
		return http.StatusNotFound
	case errors.Is(err, services.ErrEmptyComment),
		errors.Is(err, media.ErrInvalidImage),
		errors.Is(err, analysis.ErrUnknownAnalysisType):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNoActiveUser):
		return http.StatusUnauthorized
	case errors.Is(err, media.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return fallback
}

func respondError(c *gin.Context, err error, fallback int) {
	c.JSON(statusFor(err, fallback), gin.H{"error": err.Error()})
}
