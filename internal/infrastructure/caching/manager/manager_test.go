package manager

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/caching/stores"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/persistence/kv"
)

func testOpts() stores.PersistOptions {
	return stores.PersistOptions{MaxRetries: 1, RetryInterval: time.Millisecond, WriteTimeout: time.Second}
}

func newTestManager(t *testing.T, storage kv.Storage) *Manager {
	t.Helper()
	m := NewManager(storage, nil, testOpts())
	t.Cleanup(m.Close)
	return m
}

func TestOnChangeReportsStoreAndVersion(t *testing.T) {
	m := newTestManager(t, kv.NewMemoryStorage())

	var mu sync.Mutex
	var changes []Change
	unsubscribe := m.OnChange(func(c Change) {
		mu.Lock()
		changes = append(changes, c)
		mu.Unlock()
	})

	m.Feed.LikePost("post-2")
	m.User.Logout()
	unsubscribe()
	m.Catalog.RemoveFromWishlist("product-1")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []Change{{Store: StoreFeed, Version: 1}, {Store: StoreUser, Version: 1}}, changes)
}

func TestFlushAllPersistsEveryStore(t *testing.T) {
	storage := kv.NewMemoryStorage()
	m := newTestManager(t, storage)

	m.User.Login()
	m.Catalog.RemoveFromWishlist("product-1")
	m.Feed.SavePost("post-1")
	assert.True(t, m.Dirty())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, m.FlushAll(ctx))
	assert.False(t, m.Dirty())

	keys, err := storage.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"glowyn-feed-storage", "glowyn-product-storage", "glowyn-user-storage"}, keys)
}

func TestHydrateAllRestoresAcrossManagers(t *testing.T) {
	storage := kv.NewMemoryStorage()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	first := NewManager(storage, nil, testOpts())
	first.User.Login()
	first.Feed.UnlikePost("post-1")
	require.NoError(t, first.FlushAll(ctx))
	first.Close()

	second := newTestManager(t, storage)
	second.HydrateAll(ctx)

	assert.True(t, second.User.IsLoggedIn())
	post, ok := second.Feed.PostByID("post-1")
	require.True(t, ok)
	assert.False(t, post.IsLiked)
	assert.Equal(t, 1242, post.Likes)
}

func TestResetAll(t *testing.T) {
	m := newTestManager(t, kv.NewMemoryStorage())
	m.User.Login()
	m.Feed.SavePost("post-1")

	m.ResetAll()

	dump := m.Dump()
	assert.False(t, dump.User.IsLoggedIn)
	assert.False(t, dump.Feed.Posts[0].IsSaved)
	assert.Len(t, dump.Product.Wishlist, 2)
}
