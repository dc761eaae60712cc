package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	OwnerUID string
	Conn     *websocket.Conn
}

// RealtimeHub fans statistic updates out to a user's connected clients.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[string]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[string]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.OwnerUID] == nil {
		h.clients[c.OwnerUID] = make(map[*WSClient]struct{})
	}
	h.clients[c.OwnerUID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.OwnerUID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.OwnerUID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *RealtimeHub) BroadcastStatistic(ownerUID string, payload any) {
	msg, _ := json.Marshal(map[string]any{
		"kind":      "statistic.updated",
		"statistic": payload,
	})
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[ownerUID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
