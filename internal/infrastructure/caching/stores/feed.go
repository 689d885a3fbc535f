package stores

import (
	"strings"

	"github.com/AtRiskMedia/glowyn-go/internal/domain/entities"
	"github.com/AtRiskMedia/glowyn-go/internal/domain/fixtures"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/caching/types"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/persistence/kv"
)

func InitialFeedState() types.FeedState {
	return types.FeedState{
		Posts:    fixtures.FeedPosts(),
		Comments: fixtures.PostComments(),
	}
}

// FeedStore implements feed interactions. Likes move with IsLiked: the
// counter changes only when the flag actually flips.
type FeedStore struct {
	*PersistentStore[types.FeedState]
}

func NewFeedStore(storage kv.Storage, logger *logging.ChanneledLogger, opts PersistOptions) *FeedStore {
	return &FeedStore{
		PersistentStore: NewPersistentStore(types.FeedStorageKey, InitialFeedState(), storage, logger, opts),
	}
}

func (fs *FeedStore) ResetToInitial() {
	fs.Reset(InitialFeedState())
}

// updatePost applies fn to the post with the given id.
func (fs *FeedStore) updatePost(postID string, fn func(p *entities.FeedPost) bool) bool {
	return fs.Update(func(s *types.FeedState) bool {
		for i := range s.Posts {
			if s.Posts[i].ID == postID {
				return fn(&s.Posts[i])
			}
		}
		return false
	})
}

func (fs *FeedStore) LikePost(postID string) bool {
	return fs.updatePost(postID, func(p *entities.FeedPost) bool {
		if p.IsLiked {
			return false
		}
		p.IsLiked = true
		p.Likes++
		return true
	})
}

func (fs *FeedStore) UnlikePost(postID string) bool {
	return fs.updatePost(postID, func(p *entities.FeedPost) bool {
		if !p.IsLiked {
			return false
		}
		p.IsLiked = false
		p.Likes--
		return true
	})
}

func (fs *FeedStore) SavePost(postID string) bool {
	return fs.updatePost(postID, func(p *entities.FeedPost) bool {
		if p.IsSaved {
			return false
		}
		p.IsSaved = true
		return true
	})
}

func (fs *FeedStore) UnsavePost(postID string) bool {
	return fs.updatePost(postID, func(p *entities.FeedPost) bool {
		if !p.IsSaved {
			return false
		}
		p.IsSaved = false
		return true
	})
}

// AddComment prepends comment and bumps the post's counter by one. The text
// is stored as given. An unknown post id changes nothing.
func (fs *FeedStore) AddComment(postID string, comment entities.Comment) bool {
	return fs.Update(func(s *types.FeedState) bool {
		i := indexOfPost(s.Posts, postID)
		if i < 0 {
			return false
		}
		if s.Comments == nil {
			s.Comments = make(map[string][]entities.Comment)
		}
		s.Comments[postID] = append([]entities.Comment{comment.Clone()}, s.Comments[postID]...)
		s.Posts[i].Comments++
		return true
	})
}

func (fs *FeedStore) Posts() []entities.FeedPost {
	var out []entities.FeedPost
	fs.Read(func(s *types.FeedState) { out = clonePosts(s.Posts, nil) })
	return out
}

func (fs *FeedStore) PostByID(postID string) (entities.FeedPost, bool) {
	var out entities.FeedPost
	var found bool
	fs.Read(func(s *types.FeedState) {
		if i := indexOfPost(s.Posts, postID); i >= 0 {
			out, found = s.Posts[i].Clone(), true
		}
	})
	return out, found
}

// CommentsByPostID is empty, never nil, when the post has no comments.
func (fs *FeedStore) CommentsByPostID(postID string) []entities.Comment {
	out := []entities.Comment{}
	fs.Read(func(s *types.FeedState) {
		for _, c := range s.Comments[postID] {
			out = append(out, c.Clone())
		}
	})
	return out
}

// SavedPosts returns saved posts in storage order.
func (fs *FeedStore) SavedPosts() []entities.FeedPost {
	var out []entities.FeedPost
	fs.Read(func(s *types.FeedState) {
		out = clonePosts(s.Posts, func(p *entities.FeedPost) bool { return p.IsSaved })
	})
	return out
}

func (fs *FeedStore) PostsByUser(userID string) []entities.FeedPost {
	var out []entities.FeedPost
	fs.Read(func(s *types.FeedState) {
		out = clonePosts(s.Posts, func(p *entities.FeedPost) bool { return p.User.ID == userID })
	})
	return out
}

// SearchPosts matches caption or any tag case-insensitively.
func (fs *FeedStore) SearchPosts(query string) []entities.FeedPost {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []entities.FeedPost
	fs.Read(func(s *types.FeedState) {
		out = clonePosts(s.Posts, func(p *entities.FeedPost) bool {
			if q == "" || strings.Contains(strings.ToLower(p.Caption), q) {
				return true
			}
			for _, tag := range p.Tags {
				if strings.Contains(strings.ToLower(tag), q) {
					return true
				}
			}
			return false
		})
	})
	return out
}

func indexOfPost(posts []entities.FeedPost, id string) int {
	for i := range posts {
		if posts[i].ID == id {
			return i
		}
	}
	return -1
}

func clonePosts(posts []entities.FeedPost, keep func(p *entities.FeedPost) bool) []entities.FeedPost {
	out := []entities.FeedPost{}
	for i := range posts {
		if keep == nil || keep(&posts[i]) {
			out = append(out, posts[i].Clone())
		}
	}
	return out
}
