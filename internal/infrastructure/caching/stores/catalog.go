package stores

import (
	"strings"

	"github.com/AtRiskMedia/glowyn-go/internal/domain/entities"
	"github.com/AtRiskMedia/glowyn-go/internal/domain/fixtures"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/caching/types"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/persistence/kv"
)

const featuredLimit = 4

// InitialCatalogState seeds the catalog; fixture products flagged as
// wishlisted form the initial wishlist.
func InitialCatalogState() types.CatalogState {
	products := fixtures.FeaturedProducts()
	var wishlist []entities.Product
	for _, p := range products {
		if p.IsWishlisted {
			wishlist = append(wishlist, p.Clone())
		}
	}
	return types.CatalogState{
		Products:    products,
		Categories:  fixtures.Categories(),
		Collections: fixtures.Collections(),
		Wishlist:    wishlist,
	}
}

// CatalogStore implements product catalog and wishlist operations. Every
// product it hands out has IsWishlisted computed from the wishlist.
type CatalogStore struct {
	*PersistentStore[types.CatalogState]
}

func NewCatalogStore(storage kv.Storage, logger *logging.ChanneledLogger, opts PersistOptions) *CatalogStore {
	return &CatalogStore{
		PersistentStore: NewPersistentStore(types.ProductStorageKey, InitialCatalogState(), storage, logger, opts),
	}
}

func (cs *CatalogStore) ResetToInitial() {
	cs.Reset(InitialCatalogState())
}

// AddToWishlist appends a snapshot of product. Adding an id that is already
// wishlisted is a no-op and returns false.
func (cs *CatalogStore) AddToWishlist(product entities.Product) bool {
	p := product.Clone()
	p.IsWishlisted = true
	return cs.Update(func(s *types.CatalogState) bool {
		if indexOfProduct(s.Wishlist, p.ID) >= 0 {
			return false
		}
		s.Wishlist = append(s.Wishlist, p)
		return true
	})
}

// RemoveFromWishlist drops every entry with the id, including duplicates
// carried in from a stored snapshot. It reports whether any were wishlisted.
func (cs *CatalogStore) RemoveFromWishlist(productID string) bool {
	return cs.Update(func(s *types.CatalogState) bool {
		kept := make([]entities.Product, 0, len(s.Wishlist))
		for _, p := range s.Wishlist {
			if p.ID != productID {
				kept = append(kept, p)
			}
		}
		if len(kept) == len(s.Wishlist) {
			return false
		}
		s.Wishlist = kept
		return true
	})
}

func (cs *CatalogStore) IsWishlisted(productID string) bool {
	var in bool
	cs.Read(func(s *types.CatalogState) { in = indexOfProduct(s.Wishlist, productID) >= 0 })
	return in
}

// Wishlist returns the wishlist in insertion order.
func (cs *CatalogStore) Wishlist() []entities.Product {
	var out []entities.Product
	cs.Read(func(s *types.CatalogState) {
		out = make([]entities.Product, len(s.Wishlist))
		for i, p := range s.Wishlist {
			out[i] = p.Clone()
			out[i].IsWishlisted = true
		}
	})
	return out
}

func (cs *CatalogStore) Products() []entities.Product {
	var out []entities.Product
	cs.Read(func(s *types.CatalogState) { out = decorate(s, s.Products) })
	return out
}

func (cs *CatalogStore) ProductByID(id string) (entities.Product, bool) {
	var out entities.Product
	var found bool
	cs.Read(func(s *types.CatalogState) {
		if i := indexOfProduct(s.Products, id); i >= 0 {
			out, found = decorateOne(s, s.Products[i]), true
		}
	})
	return out, found
}

// ProductsByCategory resolves the category id to its name and matches
// products on that name. An unknown id yields an empty list.
func (cs *CatalogStore) ProductsByCategory(categoryID string) []entities.Product {
	out := []entities.Product{}
	cs.Read(func(s *types.CatalogState) {
		name := ""
		for _, c := range s.Categories {
			if c.ID == categoryID {
				name = c.Name
				break
			}
		}
		if name == "" {
			return
		}
		for _, p := range s.Products {
			if p.Category == name {
				out = append(out, decorateOne(s, p))
			}
		}
	})
	return out
}

// ProductsByCollection returns the collection's embedded snapshots.
func (cs *CatalogStore) ProductsByCollection(collectionID string) []entities.Product {
	out := []entities.Product{}
	cs.Read(func(s *types.CatalogState) {
		for _, c := range s.Collections {
			if c.ID == collectionID {
				out = decorate(s, c.Products)
				return
			}
		}
	})
	return out
}

// FeaturedProducts returns the first four products in storage order.
func (cs *CatalogStore) FeaturedProducts() []entities.Product {
	var out []entities.Product
	cs.Read(func(s *types.CatalogState) {
		n := len(s.Products)
		if n > featuredLimit {
			n = featuredLimit
		}
		out = decorate(s, s.Products[:n])
	})
	return out
}

func (cs *CatalogStore) Categories() []entities.Category {
	var out []entities.Category
	cs.Read(func(s *types.CatalogState) {
		out = types.CatalogState{Categories: s.Categories}.Clone().Categories
	})
	if out == nil {
		out = []entities.Category{}
	}
	return out
}

func (cs *CatalogStore) Collections() []entities.Collection {
	var out []entities.Collection
	cs.Read(func(s *types.CatalogState) {
		out = make([]entities.Collection, len(s.Collections))
		for i, c := range s.Collections {
			c = c.Clone()
			c.Products = decorate(s, c.Products)
			out[i] = c
		}
	})
	return out
}

// SearchProducts matches name, brand or category case-insensitively. An
// empty query returns every product.
func (cs *CatalogStore) SearchProducts(query string) []entities.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []entities.Product{}
	cs.Read(func(s *types.CatalogState) {
		for _, p := range s.Products {
			if q == "" ||
				strings.Contains(strings.ToLower(p.Name), q) ||
				strings.Contains(strings.ToLower(p.Brand), q) ||
				strings.Contains(strings.ToLower(p.Category), q) {
				out = append(out, decorateOne(s, p))
			}
		}
	})
	return out
}

func indexOfProduct(products []entities.Product, id string) int {
	for i, p := range products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func decorateOne(s *types.CatalogState, p entities.Product) entities.Product {
	p = p.Clone()
	p.IsWishlisted = indexOfProduct(s.Wishlist, p.ID) >= 0
	return p
}

func decorate(s *types.CatalogState, products []entities.Product) []entities.Product {
	out := make([]entities.Product, len(products))
	for i, p := range products {
		out[i] = decorateOne(s, p)
	}
	return out
}
