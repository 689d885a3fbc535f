package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtRiskMedia/glowyn-go/internal/domain/entities"
	"github.com/AtRiskMedia/glowyn-go/internal/domain/fixtures"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/analysis"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/caching/manager"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/caching/stores"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/media"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/persistence/kv"
)

type fakePhotos struct {
	uri string
	err error
}

func (f *fakePhotos) Capture(_ context.Context, _ media.Source, data string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if data == "" {
		return "", nil
	}
	return f.uri, nil
}

type fixture struct {
	stores   *manager.Manager
	analyzer *analysis.MockAnalyzer
	session  *SessionService
	analysis *AnalysisService
	catalog  *CatalogService
	feed     *FeedService
	state    *StateService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := logging.NewNopLogger()
	m := manager.NewManager(kv.NewMemoryStorage(), logger, stores.PersistOptions{
		MaxRetries: 1, RetryInterval: time.Millisecond, WriteTimeout: time.Second,
	})
	t.Cleanup(m.Close)

	analyzer := analysis.NewMockAnalyzer(analysis.Options{}, logger)
	return &fixture{
		stores:   m,
		analyzer: analyzer,
		session:  NewSessionService(m.User, m.Catalog, m.Feed, logger),
		analysis: NewAnalysisService(m.User, &fakePhotos{uri: "/media/photos/test.webp"}, analyzer, logger),
		catalog:  NewCatalogService(m.User, m.Catalog, m.Feed, logger),
		feed:     NewFeedService(m.User, m.Feed, logger),
		state:    NewStateService(m, logger),
	}
}

func TestLoginAndLogout(t *testing.T) {
	f := newFixture(t)

	view := f.session.Login()
	assert.True(t, view.IsLoggedIn)
	assert.Equal(t, "user-1", view.User.ID)

	view = f.session.Logout()
	assert.False(t, view.IsLoggedIn)
	assert.NotNil(t, view.User)
}

func TestSelectAccount(t *testing.T) {
	f := newFixture(t)
	other := fixtures.PopularUsers()[1]

	view, err := f.session.SelectAccount(other.ID)
	require.NoError(t, err)
	assert.Equal(t, other.ID, view.User.ID)
	assert.False(t, view.IsLoggedIn)

	_, err = f.session.SelectAccount("user-404")
	assert.ErrorIs(t, err, ErrUnknownAccount)
}

func TestAccountsListsDefaultFirst(t *testing.T) {
	f := newFixture(t)
	accounts := f.session.Accounts()
	require.Len(t, accounts, 1+len(fixtures.PopularUsers()))
	assert.Equal(t, fixtures.CurrentUser().ID, accounts[0].ID)
}

func TestProfileComposesStores(t *testing.T) {
	f := newFixture(t)

	profile := f.session.Profile()
	assert.Len(t, profile.Wishlist, 2)
	assert.Equal(t, "post-2", profile.SavedPosts[0].ID)
	require.Len(t, profile.Posts, 1)
	assert.Equal(t, "post-4", profile.Posts[0].ID)

	f.session.SetUser(nil)
	assert.Empty(t, f.session.Profile().Posts)
}

func TestRunAnalysisRecordsResult(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	uri, err := f.analysis.Capture(ctx, media.SourceCamera, "data:image/png;base64,AAAA")
	require.NoError(t, err)

	result, err := f.analysis.Run(ctx, uri, entities.AnalysisColor)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.ID, "analysis-"))
	assert.Equal(t, "Analisis Warna", result.Title)
	require.NotNil(t, result.ImageURL)
	assert.Equal(t, "/media/photos/test.webp", *result.ImageURL)
	assert.Len(t, result.RecommendedProducts, 3)
	_, err = time.Parse(time.RFC3339, result.Date)
	assert.NoError(t, err)

	latest, ok := f.analysis.LatestByType(entities.AnalysisColor)
	require.True(t, ok)
	assert.Equal(t, result.ID, latest.ID)
	assert.Equal(t, result.ID, f.analysis.Recent()[0].ID)
}

func TestRunAnalysisFailureLeavesHistoryIntact(t *testing.T) {
	f := newFixture(t)
	before := f.analysis.Results()

	f.analyzer.SetFailure(errors.New("service unavailable"))
	_, err := f.analysis.Run(context.Background(), "/media/photos/x.webp", entities.AnalysisFace)
	assert.ErrorContains(t, err, "service unavailable")

	f.analyzer.SetFailure(nil)
	_, err = f.analysis.Run(context.Background(), "/media/photos/x.webp", entities.AnalysisOutfit)
	assert.ErrorIs(t, err, analysis.ErrUnknownAnalysisType)

	assert.Equal(t, before, f.analysis.Results())
}

func TestRunAnalysisCancelled(t *testing.T) {
	f := newFixture(t)
	slow := analysis.NewMockAnalyzer(analysis.Options{AnalysisDelay: time.Minute}, nil)
	svc := NewAnalysisService(f.stores.User, &fakePhotos{}, slow, logging.NewNopLogger())
	before := len(f.analysis.Results())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.Run(ctx, "x", entities.AnalysisColor)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, f.analysis.Results(), before)
}

func TestCaptureCancelledReturnsEmpty(t *testing.T) {
	f := newFixture(t)
	uri, err := f.analysis.Capture(context.Background(), media.SourceGallery, "")
	require.NoError(t, err)
	assert.Empty(t, uri)
}

func TestToggleWishlist(t *testing.T) {
	f := newFixture(t)

	on, err := f.catalog.ToggleWishlist("product-2")
	require.NoError(t, err)
	assert.True(t, on)

	detail, err := f.catalog.Product("product-2")
	require.NoError(t, err)
	assert.True(t, detail.IsWishlisted)
	assert.Len(t, detail.Related, 3)

	on, err = f.catalog.ToggleWishlist("product-2")
	require.NoError(t, err)
	assert.False(t, on)

	_, err = f.catalog.ToggleWishlist("product-404")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestWishlistRecommendedProduct(t *testing.T) {
	f := newFixture(t)
	_, err := f.analysis.Run(context.Background(), "", entities.AnalysisSkin)
	require.NoError(t, err)

	added, err := f.catalog.AddToWishlist("rec-product-2")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = f.catalog.AddToWishlist("rec-product-2")
	require.NoError(t, err)
	assert.False(t, added)
}

func TestHomeAndShopViews(t *testing.T) {
	f := newFixture(t)

	home := f.catalog.Home()
	assert.Len(t, home.FeaturedProducts, 4)
	assert.Len(t, home.RecentAnalyses, 3)
	assert.Len(t, home.AnalysisTypes, 4)

	shop := f.catalog.Shop()
	assert.Len(t, shop.Categories, 4)
	assert.Len(t, shop.Collections, 3)
}

func TestCommentTrimsAndAttributes(t *testing.T) {
	f := newFixture(t)
	before, err := f.feed.Post("post-1")
	require.NoError(t, err)

	c, err := f.feed.Comment("post-1", "   Cantik sekali!  ")
	require.NoError(t, err)
	assert.Equal(t, "Cantik sekali!", c.Text)
	assert.Equal(t, "user-1", c.User.ID)
	assert.True(t, strings.HasPrefix(c.ID, "comment-"))
	assert.Equal(t, 0, c.Likes)

	after, err := f.feed.Post("post-1")
	require.NoError(t, err)
	assert.Equal(t, before.Post.Comments+1, after.Post.Comments)
	assert.Equal(t, c.ID, after.Comments[0].ID)
}

func TestCommentValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.feed.Comment("post-1", "   ")
	assert.ErrorIs(t, err, ErrEmptyComment)

	_, err = f.feed.Comment("post-404", "hi")
	assert.ErrorIs(t, err, ErrPostNotFound)

	f.session.SetUser(nil)
	_, err = f.feed.Comment("post-1", "hi")
	assert.ErrorIs(t, err, ErrNoActiveUser)
}

func TestLikeIsIdempotent(t *testing.T) {
	f := newFixture(t)

	p, err := f.feed.Like("post-2")
	require.NoError(t, err)
	likes := p.Likes

	p, err = f.feed.Like("post-2")
	require.NoError(t, err)
	assert.Equal(t, likes, p.Likes)

	_, err = f.feed.Unlike("post-404")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestStateResetAndFlush(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	f.session.Login()
	_, err := f.feed.Save("post-3")
	require.NoError(t, err)
	assert.True(t, f.state.Dirty())

	require.NoError(t, f.state.Flush(ctx))
	assert.False(t, f.state.Dirty())

	require.NoError(t, f.state.Reset(ctx))
	dump := f.state.Dump()
	assert.False(t, dump.User.IsLoggedIn)
	assert.False(t, f.state.Dirty())
}
