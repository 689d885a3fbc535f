package stores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtRiskMedia/glowyn-go/internal/domain/entities"
	"github.com/AtRiskMedia/glowyn-go/internal/domain/fixtures"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/caching/types"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/persistence/kv"
)

func newUserStore(t *testing.T) *UserStore {
	t.Helper()
	us := NewUserStore(kv.NewMemoryStorage(), nil, fastOpts())
	t.Cleanup(us.Close)
	return us
}

func TestUserStoreInitialState(t *testing.T) {
	us := newUserStore(t)

	assert.False(t, us.IsLoggedIn())
	require.NotNil(t, us.User())
	assert.Equal(t, "user-1", us.User().ID)
	assert.Len(t, us.AnalysisResults(), 3)
}

func TestLoginResetsProfileToDefault(t *testing.T) {
	us := newUserStore(t)
	other := fixtures.PopularUsers()[0]
	us.SetUser(&other)

	us.Login()

	assert.True(t, us.IsLoggedIn())
	assert.Equal(t, fixtures.CurrentUser().ID, us.User().ID)
}

func TestLogoutKeepsProfileAndHistory(t *testing.T) {
	us := newUserStore(t)
	us.Login()
	before := us.AnalysisResults()

	us.Logout()

	assert.False(t, us.IsLoggedIn())
	assert.NotNil(t, us.User())
	assert.Equal(t, before, us.AnalysisResults())
}

func TestSetUserAcceptsNil(t *testing.T) {
	us := newUserStore(t)
	us.SetUser(nil)
	assert.Nil(t, us.User())
}

func TestAddAnalysisResultPrependsAndWinsByType(t *testing.T) {
	us := newUserStore(t)
	fresh := entities.AnalysisResult{
		ID:     "analysis-new",
		Type:   entities.AnalysisColor,
		Title:  "Analisis Warna",
		Result: fixtures.ColorResult(),
	}

	us.AddAnalysisResult(fresh)

	results := us.AnalysisResults()
	require.Len(t, results, 4)
	assert.Equal(t, "analysis-new", results[0].ID)

	got, ok := us.AnalysisByType(entities.AnalysisColor)
	require.True(t, ok)
	assert.Equal(t, "analysis-new", got.ID)
}

func TestAddAnalysisResultKeepsDuplicates(t *testing.T) {
	us := newUserStore(t)
	r := fixtures.RecentAnalyses()[0]

	us.AddAnalysisResult(r)

	results := us.AnalysisResults()
	assert.Equal(t, results[0].ID, results[1].ID)
}

func TestRecentAnalysesIsAtMostThree(t *testing.T) {
	us := newUserStore(t)
	for i := 0; i < 3; i++ {
		us.AddAnalysisResult(entities.AnalysisResult{ID: "x", Type: entities.AnalysisStyle})
	}
	recent := us.RecentAnalyses()
	assert.Len(t, recent, 3)
	assert.Equal(t, us.AnalysisResults()[:3], recent)
}

func TestAnalysisByTypeMissing(t *testing.T) {
	us := newUserStore(t)
	_, ok := us.AnalysisByType(entities.AnalysisOutfit)
	assert.False(t, ok)
}

func TestAnalysisByID(t *testing.T) {
	us := newUserStore(t)
	got, ok := us.AnalysisByID("analysis-2")
	require.True(t, ok)
	assert.Equal(t, entities.AnalysisFace, got.Type)

	_, ok = us.AnalysisByID("nope")
	assert.False(t, ok)
}

func TestUserStoreRoundTripsThroughStorage(t *testing.T) {
	storage := kv.NewMemoryStorage()
	us := NewUserStore(storage, nil, fastOpts())
	us.Login()
	us.AddAnalysisResult(entities.AnalysisResult{ID: "analysis-z", Type: entities.AnalysisStyle, Result: fixtures.StyleResult()})
	require.NoError(t, us.Flush(flushCtx(t)))
	us.Close()

	restored := NewUserStore(storage, nil, fastOpts())
	t.Cleanup(restored.Close)
	require.True(t, restored.Hydrate(flushCtx(t)))

	assert.True(t, restored.IsLoggedIn())
	got, ok := restored.AnalysisByType(entities.AnalysisStyle)
	require.True(t, ok)
	assert.Equal(t, "analysis-z", got.ID)
	assert.IsType(t, &entities.StylePayload{}, got.Result)
}

func TestUserStoreHydratesPartialSnapshot(t *testing.T) {
	storage := kv.NewMemoryStorage()
	require.NoError(t, storage.Set(flushCtx(t), types.UserStorageKey, []byte(`{"state":{"isLoggedIn":true}}`)))
	us := NewUserStore(storage, nil, fastOpts())
	t.Cleanup(us.Close)

	require.True(t, us.Hydrate(flushCtx(t)))

	assert.True(t, us.IsLoggedIn())
	require.NotNil(t, us.User(), "profile absent from the snapshot keeps its current value")
	assert.Equal(t, "user-1", us.User().ID)
	assert.Len(t, us.AnalysisResults(), 3)
}
