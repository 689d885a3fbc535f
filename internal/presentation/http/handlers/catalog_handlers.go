package handlers

import (
	"net/http"
	"strings"

	"github.com/AtRiskMedia/glowyn-go/internal/application/services"
	"github.com/AtRiskMedia/glowyn-go/internal/domain/entities"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/observability/performance"
	"github.com/gin-gonic/gin"
)

// CatalogHandlers contains home, shop, product and wishlist handlers
type CatalogHandlers struct {
	catalogService *services.CatalogService
	logger         *logging.ChanneledLogger
	perfTracker    *performance.Tracker
}

// NewCatalogHandlers creates catalog handlers with injected dependencies
func NewCatalogHandlers(catalogService *services.CatalogService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *CatalogHandlers {
	return &CatalogHandlers{
		catalogService: catalogService,
		logger:         logger,
		perfTracker:    perfTracker,
	}
}

// WishlistRequest adds by catalog id, or stores a product snapshot as given.
type WishlistRequest struct {
	ProductID string            `json:"productId"`
	Product   *entities.Product `json:"product"`
}

// GetHome handles GET /api/v1/home
func (h *CatalogHandlers) GetHome(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.Home())
}

// GetShop handles GET /api/v1/shop
func (h *CatalogHandlers) GetShop(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.Shop())
}

// GetProducts handles GET /api/v1/products
func (h *CatalogHandlers) GetProducts(c *gin.Context) {
	products := h.catalogService.Products()
	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}

// GetFeatured handles GET /api/v1/products/featured
func (h *CatalogHandlers) GetFeatured(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": h.catalogService.Featured()})
}

// SearchProducts handles GET /api/v1/products/search?q=
func (h *CatalogHandlers) SearchProducts(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	products := h.catalogService.Search(query)
	c.JSON(http.StatusOK, gin.H{"query": query, "products": products, "count": len(products)})
}

// GetProduct handles GET /api/v1/products/:id
func (h *CatalogHandlers) GetProduct(c *gin.Context) {
	detail, err := h.catalogService.Product(c.Param("id"))
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GetCategories handles GET /api/v1/categories
func (h *CatalogHandlers) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.catalogService.Categories()})
}

// GetCategoryProducts handles GET /api/v1/categories/:id/products
func (h *CatalogHandlers) GetCategoryProducts(c *gin.Context) {
	products := h.catalogService.ProductsByCategory(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}

// GetCollections handles GET /api/v1/collections
func (h *CatalogHandlers) GetCollections(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"collections": h.catalogService.Collections()})
}

// GetCollectionProducts handles GET /api/v1/collections/:id/products
func (h *CatalogHandlers) GetCollectionProducts(c *gin.Context) {
	products := h.catalogService.ProductsByCollection(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}

// GetWishlist handles GET /api/v1/wishlist
func (h *CatalogHandlers) GetWishlist(c *gin.Context) {
	products := h.catalogService.Wishlist()
	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}

// PostWishlist handles POST /api/v1/wishlist
func (h *CatalogHandlers) PostWishlist(c *gin.Context) {
	marker := h.perfTracker.StartOperation("add_wishlist_request")
	defer marker.Complete()

	var req WishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		marker.SetError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	var added bool
	switch {
	case req.Product != nil && req.Product.ID != "":
		added = h.catalogService.AddSnapshotToWishlist(*req.Product)
	case req.ProductID != "":
		var err error
		added, err = h.catalogService.AddToWishlist(req.ProductID)
		if err != nil {
			marker.SetError(err)
			respondError(c, err, http.StatusInternalServerError)
			return
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId or product is required"})
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, gin.H{"added": added, "wishlist": h.catalogService.Wishlist()})
}

// DeleteWishlist handles DELETE /api/v1/wishlist/:id
func (h *CatalogHandlers) DeleteWishlist(c *gin.Context) {
	marker := h.perfTracker.StartOperation("remove_wishlist_request")
	defer marker.Complete()

	removed := h.catalogService.RemoveFromWishlist(c.Param("id"))
	marker.SetSuccess(true)
	c.JSON(http.StatusOK, gin.H{"removed": removed, "wishlist": h.catalogService.Wishlist()})
}

// PostToggleWishlist handles POST /api/v1/wishlist/:id/toggle
func (h *CatalogHandlers) PostToggleWishlist(c *gin.Context) {
	marker := h.perfTracker.StartOperation("toggle_wishlist_request")
	defer marker.Complete()

	wishlisted, err := h.catalogService.ToggleWishlist(c.Param("id"))
	if err != nil {
		marker.SetError(err)
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	marker.SetSuccess(true)
	c.JSON(http.StatusOK, gin.H{"productId": c.Param("id"), "isWishlisted": wishlisted})
}
