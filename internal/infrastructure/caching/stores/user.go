package stores

import (
	"github.com/AtRiskMedia/glowyn-go/internal/domain/entities"
	"github.com/AtRiskMedia/glowyn-go/internal/domain/fixtures"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/caching/types"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/persistence/kv"
)

const recentAnalysesLimit = 3

// InitialUserState is the first-run session: the default profile, logged
// out, with the seed analysis history.
func InitialUserState() types.UserState {
	u := fixtures.CurrentUser()
	return types.UserState{
		User:            &u,
		IsLoggedIn:      false,
		AnalysisResults: fixtures.RecentAnalyses(),
	}
}

// UserStore implements the user session operations
type UserStore struct {
	*PersistentStore[types.UserState]
}

// NewUserStore creates a session store seeded from fixtures
func NewUserStore(storage kv.Storage, logger *logging.ChanneledLogger, opts PersistOptions) *UserStore {
	return &UserStore{
		PersistentStore: NewPersistentStore(types.UserStorageKey, InitialUserState(), storage, logger, opts),
	}
}

// ResetToInitial restores the fixture state.
func (us *UserStore) ResetToInitial() {
	us.Reset(InitialUserState())
}

// SetUser replaces the profile wholesale. nil is allowed.
func (us *UserStore) SetUser(user *entities.UserProfile) {
	u := user.Clone()
	us.Update(func(s *types.UserState) bool {
		s.User = u
		return true
	})
}

// Login marks the session as logged in and resets the profile to the default
// account, whatever profile was set before.
func (us *UserStore) Login() {
	u := fixtures.CurrentUser()
	us.Update(func(s *types.UserState) bool {
		s.IsLoggedIn = true
		s.User = &u
		return true
	})
}

// Logout clears the flag only; profile and history survive.
func (us *UserStore) Logout() {
	us.Update(func(s *types.UserState) bool {
		s.IsLoggedIn = false
		return true
	})
}

// AddAnalysisResult prepends a result. Duplicates are kept.
func (us *UserStore) AddAnalysisResult(result entities.AnalysisResult) {
	r := result.Clone()
	us.Update(func(s *types.UserState) bool {
		s.AnalysisResults = append([]entities.AnalysisResult{r}, s.AnalysisResults...)
		return true
	})
}

func (us *UserStore) User() *entities.UserProfile {
	var u *entities.UserProfile
	us.Read(func(s *types.UserState) { u = s.User.Clone() })
	return u
}

func (us *UserStore) IsLoggedIn() bool {
	var in bool
	us.Read(func(s *types.UserState) { in = s.IsLoggedIn })
	return in
}

// AnalysisResults returns the full history, newest first.
func (us *UserStore) AnalysisResults() []entities.AnalysisResult {
	var out []entities.AnalysisResult
	us.Read(func(s *types.UserState) { out = cloneResults(s.AnalysisResults) })
	return out
}

// AnalysisByType returns the first result of type t in list order, i.e. the newest.
func (us *UserStore) AnalysisByType(t entities.AnalysisType) (entities.AnalysisResult, bool) {
	var out entities.AnalysisResult
	var found bool
	us.Read(func(s *types.UserState) {
		for _, r := range s.AnalysisResults {
			if r.Type == t {
				out, found = r.Clone(), true
				return
			}
		}
	})
	return out, found
}

func (us *UserStore) AnalysisByID(id string) (entities.AnalysisResult, bool) {
	var out entities.AnalysisResult
	var found bool
	us.Read(func(s *types.UserState) {
		for _, r := range s.AnalysisResults {
			if r.ID == id {
				out, found = r.Clone(), true
				return
			}
		}
	})
	return out, found
}

// RecentAnalyses returns at most the first three results.
func (us *UserStore) RecentAnalyses() []entities.AnalysisResult {
	var out []entities.AnalysisResult
	us.Read(func(s *types.UserState) {
		n := len(s.AnalysisResults)
		if n > recentAnalysesLimit {
			n = recentAnalysesLimit
		}
		out = cloneResults(s.AnalysisResults[:n])
	})
	return out
}

func cloneResults(in []entities.AnalysisResult) []entities.AnalysisResult {
	out := make([]entities.AnalysisResult, len(in))
	for i, r := range in {
		out[i] = r.Clone()
	}
	return out
}
