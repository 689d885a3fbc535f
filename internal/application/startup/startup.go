// Package startup prepares the application server
package startup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/AtRiskMedia/glowyn-go/internal/application/container"
	"github.com/AtRiskMedia/glowyn-go/internal/application/services"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/analysis"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/caching/manager"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/caching/stores"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/media"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/messaging"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/observability/performance"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/persistence/kv"
	"github.com/AtRiskMedia/glowyn-go/internal/presentation/http/server"
	"github.com/AtRiskMedia/glowyn-go/pkg/config"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 30 * time.Second

// Initialize performs the complete startup sequence and blocks until a
// shutdown signal arrives.
func Initialize() error {
	setupLogging()

	start := time.Now().UTC()

	log.Println("\033[32m" + `
   ▄▄▄▄ ▄▄     ▄▄▄  ▄▄   ▄▄ ▄▄ ▄▄ ▄▄  ▄▄
  ██ ▄▄ ██    ██ ██ ██ ▄ ██ ▀███▀ ███▄██
  ▀███▀ ██▄▄▄ ▀███▀  ▀█▀█▀    █   ██ ▀██
` + "\033[97m" + `
  made by At Risk Media
` + "\033[0m")

	// Step 1: Logger
	phaseStart := time.Now()
	logger, err := NewLogger()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Close()
	logger.LogStartupPhase("logger", time.Since(phaseStart), true, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Step 2: Durable storage
	phaseStart = time.Now()
	opts := kv.OptionsFromConfig()
	storage, err := kv.Open(ctx, opts)
	if err != nil {
		logger.LogStartupPhase("storage", time.Since(phaseStart), false, err)
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer storage.Close()
	logger.LogStartupPhase("storage", time.Since(phaseStart), true, nil)
	if info, ok := storage.(interface{ ConnectionInfo() string }); ok {
		logger.Startup().Info("Storage backend ready", "driver", opts.Driver, "connection", info.ConnectionInfo())
	} else {
		logger.Startup().Info("Storage backend ready", "driver", opts.Driver)
	}

	// Step 3: Stores, hydrated from the last snapshots
	phaseStart = time.Now()
	storeManager := manager.NewManager(storage, logger, PersistOptionsFromConfig())
	storeManager.HydrateAll(ctx)
	logger.LogStartupPhase("hydrate", time.Since(phaseStart), true, nil)

	// Step 4: Change stream
	broadcaster := messaging.NewChangeBroadcaster(config.StreamBufferSize, logger)
	unsubscribe := storeManager.OnChange(func(ch manager.Change) {
		broadcaster.Broadcast(ch.Store, ch.Version)
	})

	// Step 5: Photo intake and analysis
	phaseStart = time.Now()
	photos, mediaDir, err := newPhotoService(ctx, logger)
	if err != nil {
		logger.LogStartupPhase("media", time.Since(phaseStart), false, err)
		return err
	}
	analyzer := analysis.NewMockAnalyzer(analysis.Options{
		AnalysisDelay:       config.AnalysisDelay,
		RecommendationDelay: config.RecommendationDelay,
	}, logger)
	logger.LogStartupPhase("media", time.Since(phaseStart), true, nil)

	// Step 6: Dependency injection container
	appContainer := container.NewContainer(
		storeManager, photos, analyzer, broadcaster,
		logger, performance.NewTracker(200), mediaDir,
	)
	logger.Startup().Info("Dependency injection container created with singleton services")

	// Step 7: HTTP server
	httpServer := server.New(config.Port, appContainer)

	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- httpServer.Start()
	}()

	logger.Startup().Info("Application startup complete",
		"totalDuration", time.Since(start),
		"addr", httpServer.Addr())

	// Wait for shutdown signal or a server failure
	select {
	case <-gracefulShutdown:
		logger.Shutdown().Info("Shutdown signal received, starting graceful shutdown...")
	case err := <-serverErr:
		if err != nil {
			logger.System().Error("HTTP server failed", "error", err.Error())
		}
	}

	shutdownStart := time.Now()
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Shutdown().Error("Error during server shutdown", "error", err.Error())
	} else {
		logger.Shutdown().Info("HTTP server stopped successfully")
	}

	unsubscribe()
	broadcaster.CloseAll()

	// Pending snapshots are written before the stores go away.
	if err := storeManager.FlushAll(shutdownCtx); err != nil {
		logger.Shutdown().Error("Final flush incomplete", "error", err.Error())
	} else {
		logger.Shutdown().Info("Stores flushed")
	}
	storeManager.Close()

	logger.Shutdown().Info("Application shutdown complete",
		"totalUptime", time.Since(start),
		"shutdownDuration", time.Since(shutdownStart))

	return nil
}

// ResetState rewrites every persisted snapshot with the fixture state.
func ResetState(ctx context.Context) error {
	logger, err := NewLogger()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Close()

	storage, err := kv.Open(ctx, kv.OptionsFromConfig())
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer storage.Close()

	storeManager := manager.NewManager(storage, logger, PersistOptionsFromConfig())
	defer storeManager.Close()

	if err := services.NewStateService(storeManager, logger).Reset(ctx); err != nil {
		return fmt.Errorf("failed to persist reset state: %w", err)
	}
	return nil
}

// DumpState writes every persisted snapshot to w as one JSON object keyed by
// storage key.
func DumpState(ctx context.Context, w io.Writer) error {
	storage, err := kv.Open(ctx, kv.OptionsFromConfig())
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer storage.Close()

	keys, err := storage.Keys(ctx)
	if err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}
	sort.Strings(keys)

	out := make(map[string]json.RawMessage, len(keys))
	for _, key := range keys {
		raw, err := storage.Get(ctx, key)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", key, err)
		}
		if !json.Valid(raw) {
			return fmt.Errorf("snapshot %s is not valid JSON", key)
		}
		out[key] = raw
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// NewLogger builds the channeled logger from pkg/config.
func NewLogger() (*logging.ChanneledLogger, error) {
	cfg := logging.DefaultLoggerConfig()
	cfg.JSONFormat = config.LogJSON
	cfg.OutputToFile = config.LogToFile
	cfg.LogDirectory = config.LogDirectory
	cfg.DefaultLevel = parseLevel(config.LogLevel)
	return logging.NewChanneledLogger(cfg)
}

// PersistOptionsFromConfig reads the writer tuning from pkg/config.
func PersistOptionsFromConfig() stores.PersistOptions {
	return stores.PersistOptions{
		MaxRetries:    config.PersistMaxRetries,
		RetryInterval: config.PersistRetryInterval,
		WriteTimeout:  config.PersistWriteTimeout,
	}
}

// newPhotoService stores photos in S3 when a bucket is configured and on local
// disk otherwise. The returned directory is empty for S3.
func newPhotoService(ctx context.Context, logger *logging.ChanneledLogger) (*media.PhotoService, string, error) {
	processor := media.NewImageProcessor(config.PhotoSize, config.PhotoQuality)
	perms := media.Permissions{Camera: config.CameraEnabled, Gallery: config.GalleryEnabled}

	if config.S3BucketName != "" {
		store, err := media.NewS3MediaStoreFromEnv(ctx, config.S3BucketName, config.AWSRegion)
		if err != nil {
			return nil, "", fmt.Errorf("failed to initialize S3 media store: %w", err)
		}
		logger.Startup().Info("Photos stored in S3", "bucket", config.S3BucketName)
		return media.NewPhotoService(processor, store, perms, logger), "", nil
	}

	logger.Startup().Info("Photos stored locally", "dir", config.MediaDir)
	return media.NewPhotoService(processor, media.NewLocalMediaStore(config.MediaDir), perms, logger), config.MediaDir, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// setupLogging configures application logging
func setupLogging() {
	if config.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}
