package ws

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/diskwise/backend/internal/infrastructure/logging"
	"github.com/diskwise/backend/internal/infrastructure/monitoring"
	"github.com/diskwise/backend/internal/service"
	"github.com/diskwise/backend/internal/shared/types"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// The backend binds to loopback for the desktop shell.
		return true
	},
}

// client is a connected peer with serialized writes.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) send(msg types.WSMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(msg)
}

// Hub manages WebSocket connections and fan-out of server events.
type Hub struct {
	registry *service.Registry
	log      *logging.Logger
	metrics  *monitoring.Metrics

	mu      sync.RWMutex
	clients map[*client]struct{}
}

// NewHub creates a new WebSocket hub.
func NewHub(registry *service.Registry, log *logging.Logger, metrics *monitoring.Metrics) *Hub {
	return &Hub{
		registry: registry,
		log:      log,
		metrics:  metrics,
		clients:  make(map[*client]struct{}),
	}
}

// Broadcast sends a message to every connected client. Clients whose
// connection has gone away are dropped.
func (h *Hub) Broadcast(msg types.WSMessage) {
	h.mu.RLock()
	peers := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		peers = append(peers, c)
	}
	h.mu.RUnlock()

	for _, c := range peers {
		if err := c.send(msg); err != nil {
			h.remove(c)
		}
	}
	if h.metrics != nil && len(peers) > 0 {
		h.metrics.RecordWSMessage("out", msg.Type)
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	if h.metrics != nil {
		h.metrics.WSConnections.Inc()
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	_, present := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()
	if present {
		c.conn.Close()
		if h.metrics != nil {
			h.metrics.WSConnections.Dec()
		}
	}
}

// HandleConnection upgrades the HTTP request and serves the socket until
// the client disconnects.
func (h *Hub) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	peer := &client{conn: conn}
	h.add(peer)
	defer h.remove(peer)

	peer.send(types.WSMessage{
		Type:    "system",
		Message: "Connected to DiskWise backend",
	})

	reqCtx := c.Request.Context()

	for {
		var msg types.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Debug("websocket read error", zap.Error(err))
			}
			return
		}
		if h.metrics != nil {
			h.metrics.RecordWSMessage("in", msg.Type)
		}

		switch msg.Type {
		case "ping":
			peer.send(types.WSMessage{Type: "pong"})
		case "execute":
			h.handleExecute(reqCtx, peer, msg)
		default:
			h.sendError(peer, "unknown message type")
		}
	}
}

func (h *Hub) handleExecute(ctx context.Context, peer *client, msg types.WSMessage) {
	toolID, _ := msg.Data["tool_id"].(string)
	if toolID == "" {
		h.sendError(peer, "execute requires tool_id")
		return
	}
	params, _ := msg.Data["params"].(map[string]interface{})

	result, err := h.registry.Execute(ctx, toolID, params, nil)
	if err != nil {
		h.log.Debug("tool execution failed",
			zap.String("tool_id", toolID),
			zap.Error(err))
	}
	if result == nil {
		h.sendError(peer, "execution failed")
		return
	}

	data := map[string]interface{}{
		"tool_id": toolID,
		"success": result.Success,
	}
	if result.Data != nil {
		data["data"] = result.Data
	}
	if result.Error != nil {
		data["error"] = *result.Error
	}
	peer.send(types.WSMessage{Type: "result", Data: data})
}

func (h *Hub) sendError(peer *client, message string) {
	peer.send(types.WSMessage{Type: "error", Message: message})
}
