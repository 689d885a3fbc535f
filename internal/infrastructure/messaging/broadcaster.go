// Package messaging provides the store change broadcaster behind the websocket stream.
package messaging

import (
	"sync"

	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/security"
)

// StoreEvent tells a consumer that a store changed and should be re-read.
type StoreEvent struct {
	Store   string `json:"store"`
	Version uint64 `json:"version"`
}

// ChangeBroadcaster fans store events out to per-client buffered channels.
// Slow clients lose events rather than blocking mutations.
type ChangeBroadcaster struct {
	clients    map[string]chan StoreEvent
	mu         sync.Mutex
	bufferSize int
	logger     *logging.ChanneledLogger
}

var _ Broadcaster = (*ChangeBroadcaster)(nil)

func NewChangeBroadcaster(bufferSize int, logger *logging.ChanneledLogger) *ChangeBroadcaster {
	if bufferSize <= 0 {
		bufferSize = 16
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &ChangeBroadcaster{
		clients:    make(map[string]chan StoreEvent),
		bufferSize: bufferSize,
		logger:     logger,
	}
}

// AddClient registers a new stream client.
func (b *ChangeBroadcaster) AddClient() (string, <-chan StoreEvent) {
	id := security.GenerateClientID()
	ch := make(chan StoreEvent, b.bufferSize)

	b.mu.Lock()
	b.clients[id] = ch
	count := len(b.clients)
	b.mu.Unlock()

	b.logger.Stream().Debug("Stream client registered", "clientId", id, "clients", count)
	return id, ch
}

// RemoveClient unregisters the client and closes its channel.
func (b *ChangeBroadcaster) RemoveClient(clientID string) {
	b.mu.Lock()
	ch, ok := b.clients[clientID]
	if ok {
		delete(b.clients, clientID)
		close(ch)
	}
	b.mu.Unlock()

	if ok {
		b.logger.Stream().Debug("Stream client unregistered", "clientId", clientID)
	}
}

func (b *ChangeBroadcaster) ClientCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.clients)
}

// Broadcast never blocks.
func (b *ChangeBroadcaster) Broadcast(store string, version uint64) {
	event := StoreEvent{Store: store, Version: version}

	b.mu.Lock()
	defer b.mu.Unlock()
	for id, ch := range b.clients {
		select {
		case ch <- event:
		default:
			b.logger.Stream().Warn("Stream channel full, event dropped", "clientId", id, "store", store)
		}
	}
}

// CloseAll disconnects every client, used on shutdown.
func (b *ChangeBroadcaster) CloseAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, ch := range b.clients {
		close(ch)
		delete(b.clients, id)
	}
}
