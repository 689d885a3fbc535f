package stores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtRiskMedia/glowyn-go/internal/domain/entities"
	"github.com/AtRiskMedia/glowyn-go/internal/domain/fixtures"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/persistence/kv"
)

func newFeedStore(t *testing.T) *FeedStore {
	t.Helper()
	fs := NewFeedStore(kv.NewMemoryStorage(), nil, fastOpts())
	t.Cleanup(fs.Close)
	return fs
}

func mustPost(t *testing.T, fs *FeedStore, id string) entities.FeedPost {
	t.Helper()
	p, ok := fs.PostByID(id)
	require.True(t, ok, id)
	return p
}

func TestUnlikeLikedPost(t *testing.T) {
	fs := newFeedStore(t)
	require.True(t, mustPost(t, fs, "post-1").IsLiked)
	require.Equal(t, 1243, mustPost(t, fs, "post-1").Likes)

	assert.True(t, fs.UnlikePost("post-1"))
	p := mustPost(t, fs, "post-1")
	assert.False(t, p.IsLiked)
	assert.Equal(t, 1242, p.Likes)

	assert.False(t, fs.UnlikePost("post-1"))
	assert.Equal(t, 1242, mustPost(t, fs, "post-1").Likes)
}

func TestLikeUnlikeRoundTrip(t *testing.T) {
	fs := newFeedStore(t)
	before := mustPost(t, fs, "post-2")
	require.False(t, before.IsLiked)

	assert.True(t, fs.LikePost("post-2"))
	assert.False(t, fs.LikePost("post-2"))
	assert.Equal(t, before.Likes+1, mustPost(t, fs, "post-2").Likes)

	fs.UnlikePost("post-2")
	after := mustPost(t, fs, "post-2")
	assert.Equal(t, before.Likes, after.Likes)
	assert.Equal(t, before.IsLiked, after.IsLiked)
}

func TestLikeUnknownPost(t *testing.T) {
	fs := newFeedStore(t)
	assert.False(t, fs.LikePost("post-404"))
	assert.False(t, fs.Dirty())
}

func TestSaveAndUnsave(t *testing.T) {
	fs := newFeedStore(t)

	assert.Equal(t, []string{"post-2"}, postIDs(fs.SavedPosts()))
	fs.SavePost("post-3")
	assert.Equal(t, []string{"post-2", "post-3"}, postIDs(fs.SavedPosts()))
	fs.UnsavePost("post-2")
	assert.Equal(t, []string{"post-3"}, postIDs(fs.SavedPosts()))
}

func TestAddCommentPrependsAndCounts(t *testing.T) {
	fs := newFeedStore(t)
	before := mustPost(t, fs, "post-1")
	c := entities.Comment{ID: "comment-new", User: fixtures.CurrentUser(), Text: "Cantik!", Date: "2025-06-03"}

	assert.True(t, fs.AddComment("post-1", c))

	comments := fs.CommentsByPostID("post-1")
	require.NotEmpty(t, comments)
	assert.Equal(t, "comment-new", comments[0].ID)
	assert.Equal(t, before.Comments+1, mustPost(t, fs, "post-1").Comments)
}

func TestCommentsDoNotAliasState(t *testing.T) {
	fs := newFeedStore(t)
	author := fixtures.CurrentUser()
	require.NotNil(t, author.Bio)
	bio := *author.Bio
	c := entities.Comment{ID: "comment-bio", User: author, Text: "Suka!", Date: "2025-06-03"}
	require.True(t, fs.AddComment("post-1", c))

	*c.User.Bio = "changed by caller"
	comments := fs.CommentsByPostID("post-1")
	require.Equal(t, "comment-bio", comments[0].ID)
	require.NotNil(t, comments[0].User.Bio)
	assert.Equal(t, bio, *comments[0].User.Bio)

	*comments[0].User.Bio = "changed by reader"
	again := fs.CommentsByPostID("post-1")
	assert.Equal(t, bio, *again[0].User.Bio)
	assert.Equal(t, bio, *fs.State().Comments["post-1"][0].User.Bio)
}

func TestAddCommentToPostWithoutComments(t *testing.T) {
	fs := newFeedStore(t)
	assert.Empty(t, fs.CommentsByPostID("post-3"))
	assert.NotNil(t, fs.CommentsByPostID("post-3"))

	fs.AddComment("post-3", entities.Comment{ID: "c", Text: ""})
	assert.Len(t, fs.CommentsByPostID("post-3"), 1)
}

func TestAddCommentUnknownPostIsNoop(t *testing.T) {
	fs := newFeedStore(t)
	assert.False(t, fs.AddComment("post-404", entities.Comment{ID: "c"}))
	assert.Empty(t, fs.CommentsByPostID("post-404"))
}

func TestPostsByUserAndSearch(t *testing.T) {
	fs := newFeedStore(t)

	assert.Equal(t, []string{"post-4"}, postIDs(fs.PostsByUser(fixtures.CurrentUser().ID)))
	assert.Equal(t, []string{"post-3"}, postIDs(fs.SearchPosts("skincare")))
	assert.Equal(t, []string{"post-2"}, postIDs(fs.SearchPosts("heart-shaped")))
	assert.Len(t, fs.SearchPosts(""), len(fs.Posts()))
}

func TestFeedResetToInitial(t *testing.T) {
	fs := newFeedStore(t)
	fs.UnlikePost("post-1")
	fs.ResetToInitial()
	assert.True(t, mustPost(t, fs, "post-1").IsLiked)
}

func postIDs(posts []entities.FeedPost) []string {
	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	return ids
}
