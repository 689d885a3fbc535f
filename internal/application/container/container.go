// Package container provides dependency injection for all singleton services
package container

import (
	"github.com/AtRiskMedia/glowyn-go/internal/application/services"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/analysis"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/caching/manager"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/messaging"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/observability/performance"
)

// Container holds all singleton services and infrastructure dependencies
type Container struct {
	// Screen services
	SessionService  *services.SessionService
	AnalysisService *services.AnalysisService
	CatalogService  *services.CatalogService
	FeedService     *services.FeedService
	StateService    *services.StateService

	// Infrastructure Dependencies
	Stores      *manager.Manager
	Broadcaster messaging.Broadcaster
	Logger      *logging.ChanneledLogger
	PerfTracker *performance.Tracker

	// MediaDir is served under /media when photos are stored locally.
	MediaDir string
}

// NewContainer creates and wires all singleton services
func NewContainer(
	stores *manager.Manager,
	photos services.PhotoCapturer,
	analyzer analysis.Analyzer,
	broadcaster messaging.Broadcaster,
	logger *logging.ChanneledLogger,
	perfTracker *performance.Tracker,
	mediaDir string,
) *Container {
	return &Container{
		SessionService:  services.NewSessionService(stores.User, stores.Catalog, stores.Feed, logger),
		AnalysisService: services.NewAnalysisService(stores.User, photos, analyzer, logger),
		CatalogService:  services.NewCatalogService(stores.User, stores.Catalog, stores.Feed, logger),
		FeedService:     services.NewFeedService(stores.User, stores.Feed, logger),
		StateService:    services.NewStateService(stores, logger),

		Stores:      stores,
		Broadcaster: broadcaster,
		Logger:      logger,
		PerfTracker: perfTracker,
		MediaDir:    mediaDir,
	}
}
