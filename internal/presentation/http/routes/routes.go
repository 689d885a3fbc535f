// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"net/http"

	"github.com/AtRiskMedia/glowyn-go/internal/application/container"
	"github.com/AtRiskMedia/glowyn-go/internal/presentation/http/handlers"
	"github.com/AtRiskMedia/glowyn-go/internal/presentation/http/middleware"
	"github.com/AtRiskMedia/glowyn-go/pkg/config"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(container.Logger))
	r.Use(middleware.CORSMiddleware())

	// Locally stored photos.
	if container.MediaDir != "" {
		r.Static("/media", container.MediaDir)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dirty": container.StateService.Dirty()})
	})

	// Initialize handlers
	sessionHandlers := handlers.NewSessionHandlers(container.SessionService, container.Logger, container.PerfTracker)
	analysisHandlers := handlers.NewAnalysisHandlers(container.AnalysisService, container.Logger, container.PerfTracker)
	catalogHandlers := handlers.NewCatalogHandlers(container.CatalogService, container.Logger, container.PerfTracker)
	feedHandlers := handlers.NewFeedHandlers(container.FeedService, container.Logger, container.PerfTracker)
	stateHandlers := handlers.NewStateHandlers(container.StateService, container.Logger, container.PerfTracker)
	streamHandlers := handlers.NewStreamHandlers(container.Broadcaster, container.Stores, container.Logger, config.StreamHeartbeatInterval)

	api := r.Group("/api/v1")
	{
		// Session and profile
		session := api.Group("/session")
		{
			session.GET("", sessionHandlers.GetSession)
			session.POST("/login", sessionHandlers.PostLogin)
			session.POST("/logout", sessionHandlers.PostLogout)
			session.GET("/accounts", sessionHandlers.GetAccounts)
			session.PUT("/user", sessionHandlers.PutUser)
		}
		api.GET("/profile", sessionHandlers.GetProfile)

		// Photo intake and analysis
		analysisGroup := api.Group("/analysis")
		{
			analysisGroup.GET("/types", analysisHandlers.GetTypes)
			analysisGroup.GET("/color-seasons", analysisHandlers.GetColorSeasons)
			analysisGroup.GET("/results", analysisHandlers.GetResults)
			analysisGroup.GET("/recent", analysisHandlers.GetRecent)
			analysisGroup.GET("/results/:id", analysisHandlers.GetResultByID)
			analysisGroup.GET("/type/:type", analysisHandlers.GetLatestByType)
			analysisGroup.POST("/photos", analysisHandlers.PostPhoto)
			analysisGroup.POST("/run", analysisHandlers.PostRun)
		}

		// Catalog
		api.GET("/home", catalogHandlers.GetHome)
		api.GET("/shop", catalogHandlers.GetShop)
		products := api.Group("/products")
		{
			products.GET("", catalogHandlers.GetProducts)
			products.GET("/featured", catalogHandlers.GetFeatured)
			products.GET("/search", catalogHandlers.SearchProducts)
			products.GET("/:id", catalogHandlers.GetProduct)
		}
		api.GET("/categories", catalogHandlers.GetCategories)
		api.GET("/categories/:id/products", catalogHandlers.GetCategoryProducts)
		api.GET("/collections", catalogHandlers.GetCollections)
		api.GET("/collections/:id/products", catalogHandlers.GetCollectionProducts)
		wishlist := api.Group("/wishlist")
		{
			wishlist.GET("", catalogHandlers.GetWishlist)
			wishlist.POST("", catalogHandlers.PostWishlist)
			wishlist.DELETE("/:id", catalogHandlers.DeleteWishlist)
			wishlist.POST("/:id/toggle", catalogHandlers.PostToggleWishlist)
		}

		// Style feed
		feed := api.Group("/feed")
		{
			feed.GET("", feedHandlers.GetFeed)
			feed.GET("/saved", feedHandlers.GetSaved)
			feed.GET("/search", feedHandlers.SearchFeed)
			feed.GET("/:id", feedHandlers.GetPost)
			feed.GET("/:id/comments", feedHandlers.GetComments)
			feed.POST("/:id/comments", feedHandlers.PostComment)
			feed.POST("/:id/like", feedHandlers.PostLike)
			feed.DELETE("/:id/like", feedHandlers.DeleteLike)
			feed.POST("/:id/save", feedHandlers.PostSave)
			feed.DELETE("/:id/save", feedHandlers.DeleteSave)
		}

		// Persisted state maintenance
		state := api.Group("/state")
		{
			state.GET("", stateHandlers.GetState)
			state.POST("/reset", stateHandlers.PostReset)
			state.POST("/flush", stateHandlers.PostFlush)
			state.GET("/performance", stateHandlers.GetPerformance)
			state.GET("/logs/levels", stateHandlers.GetLogLevels)
			state.POST("/logs/levels", stateHandlers.SetLogLevel)
		}

		api.GET("/stream", streamHandlers.GetStream)
	}

	return r
}
