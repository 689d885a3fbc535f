// Package types defines the state shapes held by the persistent stores.
package types

import "github.com/AtRiskMedia/glowyn-go/internal/domain/entities"

// Storage keys, one per store.
const (
	UserStorageKey    = "glowyn-user-storage"
	ProductStorageKey = "glowyn-product-storage"
	FeedStorageKey    = "glowyn-feed-storage"
)

// Snapshot is the persisted envelope around a store's state.
type Snapshot[S any] struct {
	State   S   `json:"state"`
	Version int `json:"version"`
}

// UserState is the session store's state.
type UserState struct {
	User            *entities.UserProfile     `json:"user"`
	IsLoggedIn      bool                      `json:"isLoggedIn"`
	AnalysisResults []entities.AnalysisResult `json:"analysisResults"`
}

func (s UserState) Clone() UserState {
	out := UserState{User: s.User.Clone(), IsLoggedIn: s.IsLoggedIn}
	if s.AnalysisResults != nil {
		out.AnalysisResults = make([]entities.AnalysisResult, len(s.AnalysisResults))
		for i, r := range s.AnalysisResults {
			out.AnalysisResults[i] = r.Clone()
		}
	}
	return out
}

// CatalogState is the product store's state. Wishlist is authoritative for
// wishlist membership; the IsWishlisted flags stored in Products are ignored.
type CatalogState struct {
	Products    []entities.Product    `json:"products"`
	Categories  []entities.Category   `json:"categories"`
	Collections []entities.Collection `json:"collections"`
	Wishlist    []entities.Product    `json:"wishlist"`
}

func (s CatalogState) Clone() CatalogState {
	out := CatalogState{
		Products: entities.CloneProducts(s.Products),
		Wishlist: entities.CloneProducts(s.Wishlist),
	}
	if s.Categories != nil {
		out.Categories = make([]entities.Category, len(s.Categories))
		for i, c := range s.Categories {
			if c.ImageURL != nil {
				u := *c.ImageURL
				c.ImageURL = &u
			}
			out.Categories[i] = c
		}
	}
	if s.Collections != nil {
		out.Collections = make([]entities.Collection, len(s.Collections))
		for i, c := range s.Collections {
			out.Collections[i] = c.Clone()
		}
	}
	return out
}

// FeedState is the feed store's state. Comments is keyed by post id, newest first.
type FeedState struct {
	Posts    []entities.FeedPost           `json:"posts"`
	Comments map[string][]entities.Comment `json:"comments"`
}

func (s FeedState) Clone() FeedState {
	out := FeedState{}
	if s.Posts != nil {
		out.Posts = make([]entities.FeedPost, len(s.Posts))
		for i, p := range s.Posts {
			out.Posts[i] = p.Clone()
		}
	}
	if s.Comments != nil {
		out.Comments = make(map[string][]entities.Comment, len(s.Comments))
		for id, cs := range s.Comments {
			out.Comments[id] = entities.CloneComments(cs)
		}
	}
	return out
}
