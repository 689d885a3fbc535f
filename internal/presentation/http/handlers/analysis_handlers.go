package handlers

import (
	"net/http"
	"time"

	"github.com/AtRiskMedia/glowyn-go/internal/application/services"
	"github.com/AtRiskMedia/glowyn-go/internal/domain/entities"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/media"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/observability/performance"
	"github.com/gin-gonic/gin"
)

// AnalysisHandlers contains photo intake and analysis handlers
type AnalysisHandlers struct {
	analysisService *services.AnalysisService
	logger          *logging.ChanneledLogger
	perfTracker     *performance.Tracker
}

// NewAnalysisHandlers creates analysis handlers with injected dependencies
func NewAnalysisHandlers(analysisService *services.AnalysisService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *AnalysisHandlers {
	return &AnalysisHandlers{
		analysisService: analysisService,
		logger:          logger,
		perfTracker:     perfTracker,
	}
}

// CaptureRequest carries a base64 image (data URI or bare) from the device.
// Empty data means the user cancelled.
type CaptureRequest struct {
	Source string `json:"source" binding:"required"`
	Data   string `json:"data"`
}

// RunRequest starts an analysis of a previously captured image.
type RunRequest struct {
	ImageURI string `json:"imageUri"`
	Type     string `json:"type" binding:"required"`
}

// GetTypes handles GET /api/v1/analysis/types
func (h *AnalysisHandlers) GetTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"types": h.analysisService.Types()})
}

// GetColorSeasons handles GET /api/v1/analysis/color-seasons
func (h *AnalysisHandlers) GetColorSeasons(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"seasons": h.analysisService.ColorSeasons()})
}

// GetResults handles GET /api/v1/analysis/results
func (h *AnalysisHandlers) GetResults(c *gin.Context) {
	results := h.analysisService.Results()
	c.JSON(http.StatusOK, gin.H{"results": results, "count": len(results)})
}

// GetRecent handles GET /api/v1/analysis/recent
func (h *AnalysisHandlers) GetRecent(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"results": h.analysisService.Recent()})
}

// GetResultByID handles GET /api/v1/analysis/results/:id
func (h *AnalysisHandlers) GetResultByID(c *gin.Context) {
	id := c.Param("id")
	result, ok := h.analysisService.ByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found: " + id})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetLatestByType handles GET /api/v1/analysis/type/:type
func (h *AnalysisHandlers) GetLatestByType(c *gin.Context) {
	t, err := entities.ParseAnalysisType(c.Param("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, ok := h.analysisService.LatestByType(t)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no " + string(t) + " analysis yet"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// PostPhoto handles POST /api/v1/analysis/photos
func (h *AnalysisHandlers) PostPhoto(c *gin.Context) {
	start := time.Now()
	marker := h.perfTracker.StartOperation("capture_photo_request")
	defer marker.Complete()

	var req CaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		marker.SetError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	source, ok := media.ParseSource(req.Source)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "source must be camera or gallery"})
		return
	}

	uri, err := h.analysisService.Capture(c.Request.Context(), source, req.Data)
	if err != nil {
		marker.SetError(err)
		h.logger.Media().Warn("Photo capture failed", "source", source, "error", err)
		respondError(c, err, http.StatusInternalServerError)
		return
	}

	marker.SetSuccess(true)
	marker.AddMetadata("source", string(source))
	h.logger.HTTP().Debug("Photo captured", "source", source, "cancelled", uri == "", "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{"uri": uri, "cancelled": uri == ""})
}

// PostRun handles POST /api/v1/analysis/run
func (h *AnalysisHandlers) PostRun(c *gin.Context) {
	marker := h.perfTracker.StartOperation("run_analysis_request")
	defer marker.Complete()

	var req RunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		marker.SetError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	t, err := entities.ParseAnalysisType(req.Type)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.analysisService.Run(c.Request.Context(), req.ImageURI, t)
	if err != nil {
		marker.SetError(err)
		h.logger.Analysis().Error("Analysis failed", "type", t, "error", err)
		respondError(c, err, http.StatusBadGateway)
		return
	}

	marker.SetSuccess(true)
	marker.AddMetadata("type", string(t))
	c.JSON(http.StatusCreated, result)
}
