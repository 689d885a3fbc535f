package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/AtRiskMedia/glowyn-go/internal/application/services"
	"github.com/AtRiskMedia/glowyn-go/internal/domain/entities"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/observability/performance"
	"github.com/gin-gonic/gin"
)

// SessionHandlers contains the login flow and profile handlers
type SessionHandlers struct {
	sessionService *services.SessionService
	logger         *logging.ChanneledLogger
	perfTracker    *performance.Tracker
}

// NewSessionHandlers creates session handlers with injected dependencies
func NewSessionHandlers(sessionService *services.SessionService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *SessionHandlers {
	return &SessionHandlers{
		sessionService: sessionService,
		logger:         logger,
		perfTracker:    perfTracker,
	}
}

// SetUserRequest either selects a known account by id or replaces the
// profile outright. "user": null clears it.
type SetUserRequest struct {
	UserID string          `json:"userId"`
	User   json.RawMessage `json:"user"`
}

// GetSession handles GET /api/v1/session
func (h *SessionHandlers) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, h.sessionService.Session())
}

// PostLogin handles POST /api/v1/session/login
func (h *SessionHandlers) PostLogin(c *gin.Context) {
	marker := h.perfTracker.StartOperation("login_request")
	defer marker.Complete()

	view := h.sessionService.Login()
	marker.SetSuccess(true)
	c.JSON(http.StatusOK, view)
}

// PostLogout handles POST /api/v1/session/logout
func (h *SessionHandlers) PostLogout(c *gin.Context) {
	marker := h.perfTracker.StartOperation("logout_request")
	defer marker.Complete()

	view := h.sessionService.Logout()
	marker.SetSuccess(true)
	c.JSON(http.StatusOK, view)
}

// GetAccounts handles GET /api/v1/session/accounts
func (h *SessionHandlers) GetAccounts(c *gin.Context) {
	accounts := h.sessionService.Accounts()
	c.JSON(http.StatusOK, gin.H{"accounts": accounts, "count": len(accounts)})
}

// PutUser handles PUT /api/v1/session/user
func (h *SessionHandlers) PutUser(c *gin.Context) {
	start := time.Now()
	marker := h.perfTracker.StartOperation("set_user_request")
	defer marker.Complete()

	var req SetUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		marker.SetError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	switch {
	case req.UserID != "":
		view, err := h.sessionService.SelectAccount(req.UserID)
		if err != nil {
			marker.SetError(err)
			respondError(c, err, http.StatusInternalServerError)
			return
		}
		marker.SetSuccess(true)
		c.JSON(http.StatusOK, view)
	case len(req.User) > 0:
		var user *entities.UserProfile
		if err := json.Unmarshal(req.User, &user); err != nil {
			marker.SetError(err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user", "details": err.Error()})
			return
		}
		view := h.sessionService.SetUser(user)
		marker.SetSuccess(true)
		h.logger.HTTP().Debug("Session user replaced", "cleared", user == nil, "duration", time.Since(start))
		c.JSON(http.StatusOK, view)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId or user is required"})
	}
}

// GetProfile handles GET /api/v1/profile
func (h *SessionHandlers) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, h.sessionService.Profile())
}
