package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"merchant-dashboard-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Channel carrying navigation events between instances.
const navigationChannel = "navigation_events"

// NavigationEvent is the payload pushed to the dashboard shell when the
// assistant stages changes: the shell switches to the target page and shows
// the review prompt.
type NavigationEvent struct {
	TargetPage string `json:"target_page"`
	Message    string `json:"message"`
}

// Hub fans navigation events out to the dashboard shells connected for a
// merchant. A merchant can have several open tabs; each gets the event.
type Hub struct {
	// MerchantID -> connected shells (multi-tab)
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Redis connection for cross-instance delivery; nil in single-instance
	// deployments, where only local clients are reachable.
	rdb *redis.Client

	// instanceID tags cluster publishes so the subscriber can skip the
	// events this instance already delivered locally.
	instanceID string

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		instanceID: uuid.NewString(),
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.MerchantID] = append(h.clients[client.MerchantID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Shell connected", map[string]interface{}{"merchant_id": client.MerchantID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.MerchantID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.MerchantID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.MerchantID]) == 0 {
					delete(h.clients, client.MerchantID)
					h.logger.Info("Hub", "Last shell disconnected", map[string]interface{}{"merchant_id": client.MerchantID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// PushNavigation delivers a navigation event to every shell the merchant has
// open, locally and via Redis on other instances.
func (h *Hub) PushNavigation(merchantID uuid.UUID, targetPage, message string) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "navigation",
		"data": NavigationEvent{TargetPage: targetPage, Message: message},
	})

	h.deliverLocal(merchantID, data)

	if h.rdb != nil {
		payload, _ := json.Marshal(map[string]interface{}{
			"origin":             h.instanceID,
			"target_merchant_id": merchantID.String(),
			"message":            json.RawMessage(data),
		})
		if err := h.rdb.Publish(context.Background(), navigationChannel, payload).Err(); err != nil {
			h.logger.Warn("Hub", "Redis publish failed", map[string]interface{}{
				"error": err, "merchant_id": merchantID,
			})
		}
	}
}

func (h *Hub) deliverLocal(merchantID uuid.UUID, data []byte) {
	h.mu.RLock()
	clients, found := h.clients[merchantID]
	h.mu.RUnlock()
	if !found {
		return
	}

	for _, client := range clients {
		select {
		case client.Send <- data:
		default:
			// Slow shell: queue it for removal. The unregister branch owns
			// closing the Send channel.
			h.logger.Warn("Hub", "Shell send buffer full, dropping connection", map[string]interface{}{"merchant_id": merchantID})
			h.unregister <- client
		}
	}
}

// subscribeToRedis receives navigation events published by other instances
// and forwards them to any matching local shells.
func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, navigationChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		h.handleClusterEvent([]byte(msg.Payload))
	}
}

func (h *Hub) handleClusterEvent(raw []byte) {
	var payload struct {
		Origin           string          `json:"origin"`
		TargetMerchantID string          `json:"target_merchant_id"`
		Message          json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		h.logger.Warn("Hub", "Malformed cluster event", map[string]interface{}{"error": err})
		return
	}
	// PushNavigation already delivered this one locally.
	if payload.Origin == h.instanceID {
		return
	}

	merchantID, err := uuid.Parse(payload.TargetMerchantID)
	if err != nil {
		return
	}
	h.deliverLocal(merchantID, payload.Message)
}
