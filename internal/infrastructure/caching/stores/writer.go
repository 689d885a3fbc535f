package stores

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/observability/logging"
)

// writer is the single goroutine that serialises snapshot writes for one
// store. Signals coalesce: any number of mutations between two writes
// produce one write of the latest state.
type writer[S State[S]] struct {
	store *PersistentStore[S]
	opts  PersistOptions

	wake chan struct{}

	mu       sync.Mutex
	attempt  chan struct{} // closed after every write attempt
	lastErr  error
	stopped  bool
	cancel   context.CancelFunc
	baseCtx  context.Context
	finished chan struct{}
}

func newWriter[S State[S]](store *PersistentStore[S], opts PersistOptions) *writer[S] {
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	if opts.RetryInterval <= 0 {
		opts.RetryInterval = DefaultPersistOptions().RetryInterval
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = DefaultPersistOptions().WriteTimeout
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &writer[S]{
		store:    store,
		opts:     opts,
		wake:     make(chan struct{}, 1),
		attempt:  make(chan struct{}),
		baseCtx:  ctx,
		cancel:   cancel,
		finished: make(chan struct{}),
	}
}

func (w *writer[S]) start() {
	go w.run()
}

func (w *writer[S]) run() {
	defer close(w.finished)
	for {
		select {
		case <-w.baseCtx.Done():
			return
		case <-w.wake:
			w.persist(w.baseCtx)
		}
	}
}

func (w *writer[S]) signal() {
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// persist writes the latest state once, retrying with exponential backoff.
func (w *writer[S]) persist(ctx context.Context) error {
	ps := w.store
	log := ps.logger.WithStore(logging.ChannelPersistence, ps.key)

	var err error
	if ps.Dirty() {
		var data []byte
		var version uint64
		data, version, err = ps.marshal()
		if err != nil {
			err = fmt.Errorf("failed to marshal snapshot: %w", err)
		} else {
			err = w.write(ctx, data)
		}
		if err == nil {
			ps.markPersisted(version)
			log.Debug("Snapshot written", "version", version, "bytes", len(data))
		} else {
			log.Error("Snapshot write failed", "version", version, "error", err)
		}
	}

	w.mu.Lock()
	w.lastErr = err
	close(w.attempt)
	w.attempt = make(chan struct{})
	w.mu.Unlock()
	return err
}

func (w *writer[S]) write(ctx context.Context, data []byte) error {
	ps := w.store
	attempts := 0
	operation := func() error {
		attempts++
		writeCtx, cancel := context.WithTimeout(ctx, w.opts.WriteTimeout)
		defer cancel()
		return ps.storage.Set(writeCtx, ps.key, data)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = w.opts.RetryInterval
	b.MaxInterval = 10 * w.opts.RetryInterval
	b.MaxElapsedTime = 0

	notify := func(err error, next time.Duration) {
		ps.logger.WithStore(logging.ChannelPersistence, ps.key).
			Warn("Snapshot write retry", "attempt", attempts, "next", next, "error", err)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(w.opts.MaxRetries)), ctx)
	return backoff.RetryNotify(operation, policy, notify)
}

// flush waits for writes until the store is clean.
func (w *writer[S]) flush(ctx context.Context) error {
	for {
		if !w.store.Dirty() {
			return nil
		}

		w.mu.Lock()
		if w.stopped {
			w.mu.Unlock()
			return w.persist(ctx)
		}
		attempt := w.attempt
		w.mu.Unlock()

		w.signal()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.finished:
			continue
		case <-attempt:
		}

		w.mu.Lock()
		err := w.lastErr
		w.mu.Unlock()
		if err != nil && w.store.Dirty() {
			return err
		}
	}
}

func (w *writer[S]) stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	w.mu.Unlock()

	w.cancel()
	<-w.finished
}
