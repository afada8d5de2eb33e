// Package event fans catalog change notifications out to the
// rendering layer. Subscribers re-render from current state whenever
// any event arrives; the event itself carries only the transient
// notification text, never catalog data.
package event

import (
	"sync"

	"github.com/google/uuid"
)

// Catalog change actions.
const (
	ActionProductAdded     = "product_added"
	ActionProductUpdated   = "product_updated"
	ActionProductDeleted   = "product_deleted"
	ActionProductsImported = "products_imported"
)

type Event struct {
	Action  string `json:"action"`
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}

// Subscription is one listener's handle. Events are delivered on C;
// the ID is the token for Unsubscribe.
type Subscription struct {
	ID uuid.UUID
	C  <-chan Event
}

type Hub struct {
	mu      sync.Mutex
	clients map[uuid.UUID]chan Event
}

func NewHub() *Hub {
	return &Hub{clients: make(map[uuid.UUID]chan Event)}
}

// Subscribe registers a listener. The channel is buffered; a listener
// that stops draining loses events rather than blocking mutations.
func (h *Hub) Subscribe() *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := uuid.New()
	ch := make(chan Event, 16)
	h.clients[id] = ch
	return &Subscription{ID: id, C: ch}
}

func (h *Hub) Unsubscribe(id uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.clients[id]; ok {
		delete(h.clients, id)
		close(ch)
	}
}

// Broadcast delivers the event to every subscriber without blocking.
func (h *Hub) Broadcast(evt Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.clients {
		select {
		case ch <- evt:
		default:
		}
	}
}
