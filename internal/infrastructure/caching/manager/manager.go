// Package manager owns the three persistent stores and their shared lifecycle.
package manager

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/caching/interfaces"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/caching/stores"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/caching/types"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/persistence/kv"
)

// Interface assertions to ensure the stores satisfy the application contracts.
var (
	_ interfaces.UserCache    = (*stores.UserStore)(nil)
	_ interfaces.CatalogCache = (*stores.CatalogStore)(nil)
	_ interfaces.FeedCache    = (*stores.FeedStore)(nil)
)

// Store names used in change notifications.
const (
	StoreUser    = "user"
	StoreProduct = "product"
	StoreFeed    = "feed"
)

// Change announces that a store moved to a new version.
type Change struct {
	Store   string `json:"store"`
	Version uint64 `json:"version"`
}

// Dump is a point-in-time copy of every store's state.
type Dump struct {
	User    types.UserState    `json:"user"`
	Product types.CatalogState `json:"product"`
	Feed    types.FeedState    `json:"feed"`
}

// Manager provides centralized store lifecycle operations by delegating to the stores.
type Manager struct {
	User    *stores.UserStore
	Catalog *stores.CatalogStore
	Feed    *stores.FeedStore

	storage kv.Storage
	logger  *logging.ChanneledLogger

	mu        sync.Mutex
	listeners map[int]func(Change)
	nextID    int
	unsubs    []func()
}

func NewManager(storage kv.Storage, logger *logging.ChanneledLogger, opts stores.PersistOptions) *Manager {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	logger.Store().Info("Initializing store manager", "stores", []string{StoreUser, StoreProduct, StoreFeed})

	m := &Manager{
		User:      stores.NewUserStore(storage, logger, opts),
		Catalog:   stores.NewCatalogStore(storage, logger, opts),
		Feed:      stores.NewFeedStore(storage, logger, opts),
		storage:   storage,
		logger:    logger,
		listeners: make(map[int]func(Change)),
	}

	m.unsubs = append(m.unsubs,
		m.User.Subscribe(func(types.UserState) { m.emit(StoreUser, m.User.Version()) }),
		m.Catalog.Subscribe(func(types.CatalogState) { m.emit(StoreProduct, m.Catalog.Version()) }),
		m.Feed.Subscribe(func(types.FeedState) { m.emit(StoreFeed, m.Feed.Version()) }),
	)
	return m
}

func (m *Manager) all() []interfaces.Persistent {
	return []interfaces.Persistent{m.User, m.Catalog, m.Feed}
}

// OnChange registers fn for every store change.
func (m *Manager) OnChange(fn func(Change)) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.listeners, id)
		m.mu.Unlock()
	}
}

func (m *Manager) emit(store string, version uint64) {
	m.mu.Lock()
	fns := make([]func(Change), 0, len(m.listeners))
	for _, fn := range m.listeners {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	change := Change{Store: store, Version: version}
	for _, fn := range fns {
		fn(change)
	}
}

// HydrateAll rehydrates every store from storage.
func (m *Manager) HydrateAll(ctx context.Context) {
	start := time.Now()
	hydrated := 0
	for _, s := range m.all() {
		if s.Hydrate(ctx) {
			hydrated++
		}
	}
	m.logger.Store().Info("Stores hydrated", "restored", hydrated, "total", len(m.all()), "duration", time.Since(start))
}

// FlushAll waits for every store to be written.
func (m *Manager) FlushAll(ctx context.Context) error {
	var errs []error
	for _, s := range m.all() {
		if err := s.Flush(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Key(), err))
		}
	}
	return errors.Join(errs...)
}

// Dirty reports whether any store has unwritten changes.
func (m *Manager) Dirty() bool {
	for _, s := range m.all() {
		if s.Dirty() {
			return true
		}
	}
	return false
}

// ResetAll reinitialises every store from fixtures.
func (m *Manager) ResetAll() {
	for _, s := range m.all() {
		s.ResetToInitial()
	}
	m.logger.Store().Info("Stores reset to initial state")
}

func (m *Manager) Dump() Dump {
	return Dump{
		User:    m.User.State(),
		Product: m.Catalog.State(),
		Feed:    m.Feed.State(),
	}
}

// Close stops the writers. It does not flush.
func (m *Manager) Close() {
	for _, unsub := range m.unsubs {
		unsub()
	}
	for _, s := range m.all() {
		s.Close()
	}
}
