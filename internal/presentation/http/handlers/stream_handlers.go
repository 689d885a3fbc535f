package handlers

import (
	"net/http"
	"time"

	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/caching/manager"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/messaging"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/observability/logging"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const streamWriteWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// StreamHandlers pushes store change notifications over a websocket
type StreamHandlers struct {
	broadcaster messaging.Broadcaster
	stores      *manager.Manager
	logger      *logging.ChanneledLogger
	heartbeat   time.Duration
}

// NewStreamHandlers creates the change stream handler
func NewStreamHandlers(broadcaster messaging.Broadcaster, stores *manager.Manager, logger *logging.ChanneledLogger, heartbeat time.Duration) *StreamHandlers {
	if heartbeat <= 0 {
		heartbeat = 30 * time.Second
	}
	return &StreamHandlers{
		broadcaster: broadcaster,
		stores:      stores,
		logger:      logger,
		heartbeat:   heartbeat,
	}
}

// GetStream handles GET /api/v1/stream
func (h *StreamHandlers) GetStream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Stream().Warn("Websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	clientID, events := h.broadcaster.AddClient()
	defer h.broadcaster.RemoveClient(clientID)
	h.logger.Stream().Info("Stream client connected", "clientId", clientID, "clients", h.broadcaster.ClientCount())

	// Current versions first so a fresh client knows where it stands.
	for _, ev := range h.currentVersions() {
		if err := h.write(conn, ev); err != nil {
			return
		}
	}

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
					time.Now().Add(streamWriteWait))
				return
			}
			if err := h.write(conn, ev); err != nil {
				h.logger.Stream().Debug("Stream write failed", "clientId", clientID, "error", err)
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(streamWriteWait)); err != nil {
				return
			}
		case <-closed:
			h.logger.Stream().Info("Stream client disconnected", "clientId", clientID)
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}

func (h *StreamHandlers) write(conn *websocket.Conn, ev messaging.StoreEvent) error {
	if err := conn.SetWriteDeadline(time.Now().Add(streamWriteWait)); err != nil {
		return err
	}
	return conn.WriteJSON(ev)
}

func (h *StreamHandlers) currentVersions() []messaging.StoreEvent {
	return []messaging.StoreEvent{
		{Store: manager.StoreUser, Version: h.stores.User.Version()},
		{Store: manager.StoreProduct, Version: h.stores.Catalog.Version()},
		{Store: manager.StoreFeed, Version: h.stores.Feed.Version()},
	}
}
