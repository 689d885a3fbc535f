// Package services provides application-level services that compose the
// stores into the views and flows the app's screens need. Stores never call
// each other; every cross-store read happens here.
package services

import (
	"fmt"

	"github.com/AtRiskMedia/glowyn-go/internal/domain/entities"
	"github.com/AtRiskMedia/glowyn-go/internal/domain/fixtures"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/caching/interfaces"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/observability/logging"
)

// SessionService handles the mock login flow and the profile view
type SessionService struct {
	users   interfaces.UserCache
	catalog interfaces.CatalogCache
	feed    interfaces.FeedCache
	logger  *logging.ChanneledLogger
}

// NewSessionService creates a new session service
func NewSessionService(users interfaces.UserCache, catalog interfaces.CatalogCache, feed interfaces.FeedCache, logger *logging.ChanneledLogger) *SessionService {
	return &SessionService{users: users, catalog: catalog, feed: feed, logger: logger}
}

// SessionView is the login state as the app shell sees it.
type SessionView struct {
	User       *entities.UserProfile `json:"user"`
	IsLoggedIn bool                  `json:"isLoggedIn"`
}

// ProfileView composes the profile tab.
type ProfileView struct {
	User            *entities.UserProfile     `json:"user"`
	IsLoggedIn      bool                      `json:"isLoggedIn"`
	AnalysisResults []entities.AnalysisResult `json:"analysisResults"`
	Wishlist        []entities.Product        `json:"wishlist"`
	SavedPosts      []entities.FeedPost       `json:"savedPosts"`
	Posts           []entities.FeedPost       `json:"posts"`
}

func (s *SessionService) Session() SessionView {
	return SessionView{User: s.users.User(), IsLoggedIn: s.users.IsLoggedIn()}
}

// Login always lands on the default account.
func (s *SessionService) Login() SessionView {
	s.users.Login()
	s.logger.Store().Info("User logged in", "userId", fixtures.CurrentUser().ID)
	return s.Session()
}

func (s *SessionService) Logout() SessionView {
	s.users.Logout()
	s.logger.Store().Info("User logged out")
	return s.Session()
}

// Accounts lists the profiles the login modal offers: the default account
// first, then the popular users.
func (s *SessionService) Accounts() []entities.UserProfile {
	return append([]entities.UserProfile{fixtures.CurrentUser()}, fixtures.PopularUsers()...)
}

// SelectAccount switches the active profile without touching the login flag.
func (s *SessionService) SelectAccount(userID string) (SessionView, error) {
	for _, account := range s.Accounts() {
		if account.ID == userID {
			s.users.SetUser(&account)
			return s.Session(), nil
		}
	}
	return SessionView{}, fmt.Errorf("%w: %s", ErrUnknownAccount, userID)
}

// SetUser replaces the profile as given; nil clears it.
func (s *SessionService) SetUser(user *entities.UserProfile) SessionView {
	s.users.SetUser(user)
	return s.Session()
}

func (s *SessionService) Profile() ProfileView {
	view := ProfileView{
		User:            s.users.User(),
		IsLoggedIn:      s.users.IsLoggedIn(),
		AnalysisResults: s.users.AnalysisResults(),
		Wishlist:        s.catalog.Wishlist(),
		SavedPosts:      s.feed.SavedPosts(),
		Posts:           []entities.FeedPost{},
	}
	if view.User != nil {
		view.Posts = s.feed.PostsByUser(view.User.ID)
	}
	return view
}
