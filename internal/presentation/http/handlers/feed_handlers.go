package handlers

import (
	"net/http"
	"strings"

	"github.com/AtRiskMedia/glowyn-go/internal/application/services"
	"github.com/AtRiskMedia/glowyn-go/internal/domain/entities"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/observability/performance"
	"github.com/gin-gonic/gin"
)

// FeedHandlers contains style feed and post detail handlers
type FeedHandlers struct {
	feedService *services.FeedService
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewFeedHandlers creates feed handlers with injected dependencies
func NewFeedHandlers(feedService *services.FeedService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *FeedHandlers {
	return &FeedHandlers{
		feedService: feedService,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// CommentRequest is the comment box submission.
type CommentRequest struct {
	Text string `json:"text"`
}

// GetFeed handles GET /api/v1/feed
func (h *FeedHandlers) GetFeed(c *gin.Context) {
	posts := h.feedService.Posts()
	c.JSON(http.StatusOK, gin.H{"posts": posts, "count": len(posts)})
}

// GetSaved handles GET /api/v1/feed/saved
func (h *FeedHandlers) GetSaved(c *gin.Context) {
	posts := h.feedService.Saved()
	c.JSON(http.StatusOK, gin.H{"posts": posts, "count": len(posts)})
}

// SearchFeed handles GET /api/v1/feed/search?q=
func (h *FeedHandlers) SearchFeed(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	posts := h.feedService.Search(query)
	c.JSON(http.StatusOK, gin.H{"query": query, "posts": posts, "count": len(posts)})
}

// GetPost handles GET /api/v1/feed/:id
func (h *FeedHandlers) GetPost(c *gin.Context) {
	detail, err := h.feedService.Post(c.Param("id"))
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GetComments handles GET /api/v1/feed/:id/comments
func (h *FeedHandlers) GetComments(c *gin.Context) {
	comments, err := h.feedService.Comments(c.Param("id"))
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments, "count": len(comments)})
}

// PostLike handles POST /api/v1/feed/:id/like
func (h *FeedHandlers) PostLike(c *gin.Context) {
	h.toggle(c, "like_post_request", h.feedService.Like)
}

// DeleteLike handles DELETE /api/v1/feed/:id/like
func (h *FeedHandlers) DeleteLike(c *gin.Context) {
	h.toggle(c, "unlike_post_request", h.feedService.Unlike)
}

// PostSave handles POST /api/v1/feed/:id/save
func (h *FeedHandlers) PostSave(c *gin.Context) {
	h.toggle(c, "save_post_request", h.feedService.Save)
}

// DeleteSave handles DELETE /api/v1/feed/:id/save
func (h *FeedHandlers) DeleteSave(c *gin.Context) {
	h.toggle(c, "unsave_post_request", h.feedService.Unsave)
}

func (h *FeedHandlers) toggle(c *gin.Context, operation string, apply func(string) (entities.FeedPost, error)) {
	marker := h.perfTracker.StartOperation(operation)
	defer marker.Complete()

	post, err := apply(c.Param("id"))
	if err != nil {
		marker.SetError(err)
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	marker.SetSuccess(true)
	c.JSON(http.StatusOK, post)
}

// PostComment handles POST /api/v1/feed/:id/comments
func (h *FeedHandlers) PostComment(c *gin.Context) {
	marker := h.perfTracker.StartOperation("add_comment_request")
	defer marker.Complete()

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		marker.SetError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	comment, err := h.feedService.Comment(c.Param("id"), req.Text)
	if err != nil {
		marker.SetError(err)
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	marker.SetSuccess(true)
	c.JSON(http.StatusCreated, comment)
}
