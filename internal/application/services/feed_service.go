package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/AtRiskMedia/glowyn-go/internal/domain/entities"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/caching/interfaces"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/security"
)

// FeedService drives the style feed and post detail screens
type FeedService struct {
	users  interfaces.UserCache
	feed   interfaces.FeedCache
	logger *logging.ChanneledLogger
}

func NewFeedService(users interfaces.UserCache, feed interfaces.FeedCache, logger *logging.ChanneledLogger) *FeedService {
	return &FeedService{users: users, feed: feed, logger: logger}
}

// PostDetail is a post with its downloaded comments.
type PostDetail struct {
	Post     entities.FeedPost  `json:"post"`
	Comments []entities.Comment `json:"comments"`
}

func (s *FeedService) Posts() []entities.FeedPost { return s.feed.Posts() }

func (s *FeedService) Saved() []entities.FeedPost { return s.feed.SavedPosts() }

func (s *FeedService) Search(query string) []entities.FeedPost { return s.feed.SearchPosts(query) }

func (s *FeedService) Post(postID string) (PostDetail, error) {
	post, ok := s.feed.PostByID(postID)
	if !ok {
		return PostDetail{}, fmt.Errorf("%w: %s", ErrPostNotFound, postID)
	}
	return PostDetail{Post: post, Comments: s.feed.CommentsByPostID(postID)}, nil
}

func (s *FeedService) Comments(postID string) ([]entities.Comment, error) {
	if _, ok := s.feed.PostByID(postID); !ok {
		return nil, fmt.Errorf("%w: %s", ErrPostNotFound, postID)
	}
	return s.feed.CommentsByPostID(postID), nil
}

// Like, Unlike, Save and Unsave return the post after the change. Repeating
// a call is harmless.
func (s *FeedService) Like(postID string) (entities.FeedPost, error) {
	return s.apply(postID, s.feed.LikePost)
}

func (s *FeedService) Unlike(postID string) (entities.FeedPost, error) {
	return s.apply(postID, s.feed.UnlikePost)
}

func (s *FeedService) Save(postID string) (entities.FeedPost, error) {
	return s.apply(postID, s.feed.SavePost)
}

func (s *FeedService) Unsave(postID string) (entities.FeedPost, error) {
	return s.apply(postID, s.feed.UnsavePost)
}

func (s *FeedService) apply(postID string, mutate func(string) bool) (entities.FeedPost, error) {
	if _, ok := s.feed.PostByID(postID); !ok {
		return entities.FeedPost{}, fmt.Errorf("%w: %s", ErrPostNotFound, postID)
	}
	mutate(postID)
	post, _ := s.feed.PostByID(postID)
	return post, nil
}

// Comment posts text as the session user.
func (s *FeedService) Comment(postID, text string) (entities.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.Comment{}, ErrEmptyComment
	}
	user := s.users.User()
	if user == nil {
		return entities.Comment{}, ErrNoActiveUser
	}
	if _, ok := s.feed.PostByID(postID); !ok {
		return entities.Comment{}, fmt.Errorf("%w: %s", ErrPostNotFound, postID)
	}

	comment := entities.Comment{
		ID:    security.GeneratePrefixedID("comment"),
		User:  *user,
		Text:  text,
		Date:  time.Now().UTC().Format(time.RFC3339),
		Likes: 0,
	}
	s.feed.AddComment(postID, comment)
	s.logger.Store().Debug("Comment added", "postId", postID, "commentId", comment.ID)
	return comment, nil
}
