package sse

import (
	"sync"
)

const (
	EventClock        = "clock"
	EventStateChanged = "state_changed"
)

// Event is one server-sent event broadcast to every dashboard subscriber
type Event struct {
	Event string
	Data  interface{}
}

// Hub fans events out to connected dashboards
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan Event]struct{}
	buffer      int
}

// NewHub creates a hub whose subscriber channels hold up to buffer events
func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = 10
	}
	return &Hub{
		subscribers: make(map[chan Event]struct{}),
		buffer:      buffer,
	}
}

// Subscribe registers a new subscriber and returns its channel and cleanup function
func (h *Hub) Subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, h.buffer)
	h.subscribers[ch] = struct{}{}

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subscribers, ch)
			close(ch)
		})
	}

	return ch, cleanup
}

// Publish sends an event to all subscribers, dropping it for any whose buffer is full
func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers {
		select {
		case ch <- event:
		default:
			// slow consumer, skip
		}
	}
}

// SubscriberCount returns the number of active subscribers
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
