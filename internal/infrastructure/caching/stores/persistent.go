// Package stores provides the persistent in-memory state stores
package stores

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/caching/types"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/persistence/kv"
)

// State is any store state that can deep-copy itself.
type State[S any] interface {
	Clone() S
}

// PersistOptions tune the background writer.
type PersistOptions struct {
	MaxRetries    int
	RetryInterval time.Duration
	WriteTimeout  time.Duration
}

// DefaultPersistOptions matches the pkg/config defaults.
func DefaultPersistOptions() PersistOptions {
	return PersistOptions{
		MaxRetries:    3,
		RetryInterval: 200 * time.Millisecond,
		WriteTimeout:  5 * time.Second,
	}
}

// PersistentStore holds one named state value in memory and mirrors it to a
// kv.Storage through a background writer. Reads and mutations are synchronous
// and never wait on storage.
type PersistentStore[S State[S]] struct {
	key     string
	storage kv.Storage
	logger  *logging.ChanneledLogger

	mu        sync.RWMutex
	state     S
	version   uint64
	persisted uint64

	subMu   sync.Mutex
	subs    map[uint64]func(S)
	nextSub uint64

	writer *writer[S]
}

// NewPersistentStore starts the store's writer. Close stops it.
func NewPersistentStore[S State[S]](key string, initial S, storage kv.Storage, logger *logging.ChanneledLogger, opts PersistOptions) *PersistentStore[S] {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	ps := &PersistentStore[S]{
		key:     key,
		storage: storage,
		logger:  logger,
		state:   initial.Clone(),
		subs:    make(map[uint64]func(S)),
	}
	ps.writer = newWriter(ps, opts)
	ps.writer.start()
	return ps
}

// Key is the storage key of the store's snapshot.
func (ps *PersistentStore[S]) Key() string { return ps.key }

// State returns a deep copy of the current state.
func (ps *PersistentStore[S]) State() S {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return ps.state.Clone()
}

// Read runs fn against the live state under the read lock. fn must not retain
// or mutate anything it is handed.
func (ps *PersistentStore[S]) Read(fn func(s *S)) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	fn(&ps.state)
}

// Version counts applied changes since the process started.
func (ps *PersistentStore[S]) Version() uint64 {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return ps.version
}

// Update applies fn under the write lock. When fn reports a change the store
// notifies subscribers and schedules a snapshot write.
func (ps *PersistentStore[S]) Update(fn func(s *S) bool) bool {
	ps.mu.Lock()
	if !fn(&ps.state) {
		ps.mu.Unlock()
		return false
	}
	ps.version++
	snapshot := ps.state.Clone()
	ps.mu.Unlock()

	ps.notify(snapshot)
	ps.writer.signal()
	return true
}

// Reset replaces the whole state.
func (ps *PersistentStore[S]) Reset(initial S) {
	ps.Update(func(s *S) bool {
		*s = initial.Clone()
		return true
	})
}

// Subscribe registers fn for every subsequent change. fn runs on the mutating
// goroutine after the lock is released.
func (ps *PersistentStore[S]) Subscribe(fn func(S)) (unsubscribe func()) {
	ps.subMu.Lock()
	id := ps.nextSub
	ps.nextSub++
	ps.subs[id] = fn
	ps.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			ps.subMu.Lock()
			delete(ps.subs, id)
			ps.subMu.Unlock()
		})
	}
}

func (ps *PersistentStore[S]) notify(snapshot S) {
	ps.subMu.Lock()
	fns := make([]func(S), 0, len(ps.subs))
	for _, fn := range ps.subs {
		fns = append(fns, fn)
	}
	ps.subMu.Unlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}

// Hydrate loads the persisted snapshot and merges it onto the in-memory state.
// The merge is shallow: top-level fields present in the snapshot replace the
// current ones, absent fields keep their current values. A missing or
// unreadable snapshot leaves the state untouched.
func (ps *PersistentStore[S]) Hydrate(ctx context.Context) bool {
	log := ps.logger.WithStore(logging.ChannelPersistence, ps.key)

	raw, err := ps.storage.Get(ctx, ps.key)
	if errors.Is(err, kv.ErrNotFound) {
		log.Info("No snapshot found, keeping initial state")
		return false
	}
	if err != nil {
		log.Error("Snapshot read failed, keeping initial state", "error", err)
		return false
	}

	var snap types.Snapshot[map[string]json.RawMessage]
	if err := json.Unmarshal(raw, &snap); err != nil {
		log.Error("Snapshot unreadable, keeping initial state", "error", err, "bytes", len(raw))
		return false
	}

	ps.mu.Lock()
	merged, err := mergeState(ps.state, snap.State)
	if err != nil {
		ps.mu.Unlock()
		log.Error("Snapshot unreadable, keeping initial state", "error", err, "bytes", len(raw))
		return false
	}
	ps.state = merged
	ps.version++
	// Storage needs no rewrite until the next change.
	ps.persisted = ps.version
	snapshot := ps.state.Clone()
	ps.mu.Unlock()

	ps.notify(snapshot)
	log.Info("Snapshot hydrated", "bytes", len(raw))
	return true
}

// mergeState overlays the stored top-level fields onto current. Decoding into a
// fresh value keeps stale slice elements from leaking into the result.
func mergeState[S any](current S, stored map[string]json.RawMessage) (S, error) {
	var merged S
	base, err := json.Marshal(current)
	if err != nil {
		return merged, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(base, &fields); err != nil {
		return merged, err
	}
	for k, v := range stored {
		fields[k] = v
	}
	combined, err := json.Marshal(fields)
	if err != nil {
		return merged, err
	}
	if err := json.Unmarshal(combined, &merged); err != nil {
		return merged, err
	}
	return merged, nil
}

// Dirty reports whether the in-memory state has changes not yet stored.
func (ps *PersistentStore[S]) Dirty() bool {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return ps.version != ps.persisted
}

// Flush blocks until the current state is stored, a write fails, or ctx ends.
func (ps *PersistentStore[S]) Flush(ctx context.Context) error {
	return ps.writer.flush(ctx)
}

// Close stops the writer. Pending changes are not written; call Flush first.
func (ps *PersistentStore[S]) Close() {
	ps.writer.stop()
}

// marshal captures the current state and its version.
func (ps *PersistentStore[S]) marshal() ([]byte, uint64, error) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	data, err := json.Marshal(types.Snapshot[S]{State: ps.state, Version: 0})
	return data, ps.version, err
}

func (ps *PersistentStore[S]) markPersisted(version uint64) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if version > ps.persisted {
		ps.persisted = version
	}
}
