// Package interfaces defines the store contracts the application layer depends on.
package interfaces

import (
	"context"

	"github.com/AtRiskMedia/glowyn-go/internal/domain/entities"
)

// Persistent is the lifecycle every persistent store shares.
type Persistent interface {
	Key() string
	Version() uint64
	Hydrate(ctx context.Context) bool
	Dirty() bool
	Flush(ctx context.Context) error
	ResetToInitial()
	Close()
}

// UserCache is the user session store.
type UserCache interface {
	Persistent
	SetUser(user *entities.UserProfile)
	Login()
	Logout()
	AddAnalysisResult(result entities.AnalysisResult)
	User() *entities.UserProfile
	IsLoggedIn() bool
	AnalysisResults() []entities.AnalysisResult
	AnalysisByType(t entities.AnalysisType) (entities.AnalysisResult, bool)
	AnalysisByID(id string) (entities.AnalysisResult, bool)
	RecentAnalyses() []entities.AnalysisResult
}

// CatalogCache is the product catalog and wishlist store.
type CatalogCache interface {
	Persistent
	AddToWishlist(product entities.Product) bool
	RemoveFromWishlist(productID string) bool
	IsWishlisted(productID string) bool
	Wishlist() []entities.Product
	Products() []entities.Product
	ProductByID(id string) (entities.Product, bool)
	ProductsByCategory(categoryID string) []entities.Product
	ProductsByCollection(collectionID string) []entities.Product
	FeaturedProducts() []entities.Product
	Categories() []entities.Category
	Collections() []entities.Collection
	SearchProducts(query string) []entities.Product
}

// FeedCache is the social feed store.
type FeedCache interface {
	Persistent
	LikePost(postID string) bool
	UnlikePost(postID string) bool
	SavePost(postID string) bool
	UnsavePost(postID string) bool
	AddComment(postID string, comment entities.Comment) bool
	Posts() []entities.FeedPost
	PostByID(postID string) (entities.FeedPost, bool)
	CommentsByPostID(postID string) []entities.Comment
	SavedPosts() []entities.FeedPost
	PostsByUser(userID string) []entities.FeedPost
	SearchPosts(query string) []entities.FeedPost
}
