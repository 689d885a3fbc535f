package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/AtRiskMedia/glowyn-go/internal/application/services"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/observability/performance"
	"github.com/gin-gonic/gin"
)

// StateHandlers contains persisted-state maintenance and diagnostics handlers
type StateHandlers struct {
	stateService *services.StateService
	logger       *logging.ChanneledLogger
	perfTracker  *performance.Tracker
}

// NewStateHandlers creates state handlers with injected dependencies
func NewStateHandlers(stateService *services.StateService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *StateHandlers {
	return &StateHandlers{
		stateService: stateService,
		logger:       logger,
		perfTracker:  perfTracker,
	}
}

// GetState handles GET /api/v1/state
func (h *StateHandlers) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"dirty": h.stateService.Dirty(),
		"state": h.stateService.Dump(),
	})
}

// PostReset handles POST /api/v1/state/reset
func (h *StateHandlers) PostReset(c *gin.Context) {
	start := time.Now()
	marker := h.perfTracker.StartOperation("reset_state_request")
	defer marker.Complete()

	if err := h.stateService.Reset(c.Request.Context()); err != nil {
		marker.SetError(err)
		// The in-memory reset already happened; only the write is pending.
		h.logger.Persistence().Error("Reset flush failed", "error", err)
		c.JSON(http.StatusAccepted, gin.H{"status": "reset", "persisted": false})
		return
	}

	marker.SetSuccess(true)
	h.logger.System().Info("State reset to fixtures", "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{"status": "reset", "persisted": true})
}

// PostFlush handles POST /api/v1/state/flush
func (h *StateHandlers) PostFlush(c *gin.Context) {
	marker := h.perfTracker.StartOperation("flush_state_request")
	defer marker.Complete()

	if err := h.stateService.Flush(c.Request.Context()); err != nil {
		marker.SetError(err)
		h.logger.Persistence().Error("Flush failed", "error", err)
		c.JSON(http.StatusAccepted, gin.H{"status": "pending", "dirty": true})
		return
	}
	marker.SetSuccess(true)
	c.JSON(http.StatusOK, gin.H{"status": "flushed", "dirty": false})
}

// GetPerformance handles GET /api/v1/state/performance
func (h *StateHandlers) GetPerformance(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"uptime":     h.perfTracker.Uptime().String(),
		"operations": h.perfTracker.Stats(),
		"recent":     h.perfTracker.Recent(),
	})
}

// GetLogLevels handles GET /api/v1/state/logs/levels
func (h *StateHandlers) GetLogLevels(c *gin.Context) {
	c.JSON(http.StatusOK, h.logger.GetChannelLevels())
}

// SetLogLevel handles POST /api/v1/state/logs/levels
func (h *StateHandlers) SetLogLevel(c *gin.Context) {
	var req struct {
		Channel string `json:"channel" binding:"required"`
		Level   string `json:"level" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	var level slog.Level
	switch strings.ToUpper(req.Level) {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid log level specified"})
		return
	}

	if err := h.logger.SetChannelLevel(logging.Channel(req.Channel), level); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to set log level", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": fmt.Sprintf("Log level for channel '%s' set to '%s'", req.Channel, level)})
}
