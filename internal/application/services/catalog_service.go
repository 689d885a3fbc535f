package services

import (
	"fmt"

	"github.com/AtRiskMedia/glowyn-go/internal/domain/entities"
	"github.com/AtRiskMedia/glowyn-go/internal/domain/fixtures"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/caching/interfaces"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/observability/logging"
)

// CatalogService composes the home and shop screens and the wishlist toggles
type CatalogService struct {
	users   interfaces.UserCache
	catalog interfaces.CatalogCache
	feed    interfaces.FeedCache
	logger  *logging.ChanneledLogger
}

func NewCatalogService(users interfaces.UserCache, catalog interfaces.CatalogCache, feed interfaces.FeedCache, logger *logging.ChanneledLogger) *CatalogService {
	return &CatalogService{users: users, catalog: catalog, feed: feed, logger: logger}
}

// HomeView is everything the home tab renders.
type HomeView struct {
	User             *entities.UserProfile     `json:"user"`
	AnalysisTypes    []fixtures.AnalysisKind   `json:"analysisTypes"`
	RecentAnalyses   []entities.AnalysisResult `json:"recentAnalyses"`
	FeaturedProducts []entities.Product        `json:"featuredProducts"`
	Posts            []entities.FeedPost       `json:"posts"`
	PopularUsers     []entities.UserProfile    `json:"popularUsers"`
}

// ShopView is the shop tab.
type ShopView struct {
	Categories       []entities.Category   `json:"categories"`
	Collections      []entities.Collection `json:"collections"`
	FeaturedProducts []entities.Product    `json:"featuredProducts"`
	Wishlist         []entities.Product    `json:"wishlist"`
}

// ProductDetail is the product screen: the product and the other featured items.
type ProductDetail struct {
	Product      entities.Product   `json:"product"`
	IsWishlisted bool               `json:"isWishlisted"`
	Related      []entities.Product `json:"related"`
}

func (s *CatalogService) Home() HomeView {
	return HomeView{
		User:             s.users.User(),
		AnalysisTypes:    fixtures.AnalysisKinds(),
		RecentAnalyses:   s.users.RecentAnalyses(),
		FeaturedProducts: s.catalog.FeaturedProducts(),
		Posts:            s.feed.Posts(),
		PopularUsers:     fixtures.PopularUsers(),
	}
}

func (s *CatalogService) Shop() ShopView {
	return ShopView{
		Categories:       s.catalog.Categories(),
		Collections:      s.catalog.Collections(),
		FeaturedProducts: s.catalog.FeaturedProducts(),
		Wishlist:         s.catalog.Wishlist(),
	}
}

func (s *CatalogService) Products() []entities.Product { return s.catalog.Products() }

func (s *CatalogService) Featured() []entities.Product { return s.catalog.FeaturedProducts() }

func (s *CatalogService) Search(query string) []entities.Product {
	return s.catalog.SearchProducts(query)
}

func (s *CatalogService) Categories() []entities.Category { return s.catalog.Categories() }

func (s *CatalogService) Collections() []entities.Collection { return s.catalog.Collections() }

func (s *CatalogService) ProductsByCategory(categoryID string) []entities.Product {
	return s.catalog.ProductsByCategory(categoryID)
}

func (s *CatalogService) ProductsByCollection(collectionID string) []entities.Product {
	return s.catalog.ProductsByCollection(collectionID)
}

func (s *CatalogService) Product(id string) (ProductDetail, error) {
	product, ok := s.catalog.ProductByID(id)
	if !ok {
		return ProductDetail{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	related := []entities.Product{}
	for _, p := range s.catalog.FeaturedProducts() {
		if p.ID != id {
			related = append(related, p)
		}
	}
	return ProductDetail{Product: product, IsWishlisted: product.IsWishlisted, Related: related}, nil
}

func (s *CatalogService) Wishlist() []entities.Product { return s.catalog.Wishlist() }

// AddToWishlist resolves productID against the catalog, then against the
// recommendations attached to the session's analyses.
func (s *CatalogService) AddToWishlist(productID string) (bool, error) {
	if p, ok := s.catalog.ProductByID(productID); ok {
		return s.catalog.AddToWishlist(p), nil
	}
	for _, r := range s.users.AnalysisResults() {
		for _, p := range r.RecommendedProducts {
			if p.ID == productID {
				return s.catalog.AddToWishlist(p), nil
			}
		}
	}
	return false, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
}

// AddSnapshotToWishlist stores the product exactly as given.
func (s *CatalogService) AddSnapshotToWishlist(product entities.Product) bool {
	return s.catalog.AddToWishlist(product)
}

func (s *CatalogService) RemoveFromWishlist(productID string) bool {
	return s.catalog.RemoveFromWishlist(productID)
}

// ToggleWishlist is the heart button: it returns the new membership.
func (s *CatalogService) ToggleWishlist(productID string) (bool, error) {
	if s.catalog.IsWishlisted(productID) {
		s.catalog.RemoveFromWishlist(productID)
		return false, nil
	}
	if _, err := s.AddToWishlist(productID); err != nil {
		return false, err
	}
	return true, nil
}
