package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/attendance-dashboard/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-dashboard/internal/pkg/sse"
	"github.com/cmlabs-hris/attendance-dashboard/internal/store"
)

// StateChange is the payload of a state_changed event. Dashboards refetch
// what they display when they receive it.
type StateChange struct {
	Action            store.ActionType `json:"action"`
	Employees         int              `json:"employees"`
	AttendanceRecords int              `json:"attendance_records"`
	Loading           bool             `json:"loading"`
	Error             string           `json:"error,omitempty"`
}

// PublishStateChanges returns a store listener that forwards every dispatch to
// the hub.
func PublishStateChanges(hub *sse.Hub) store.Listener {
	return func(a store.Action, next store.State) {
		hub.Publish(sse.Event{
			Event: sse.EventStateChanged,
			Data: StateChange{
				Action:            a.Type(),
				Employees:         len(next.Employees),
				AttendanceRecords: len(next.AttendanceRecords),
				Loading:           next.Loading,
				Error:             next.Error,
			},
		})
	}
}

type EventsHandler interface {
	// Stream keeps a server-sent events connection open for the dashboard
	Stream(w http.ResponseWriter, r *http.Request)
}

type eventsHandlerImpl struct {
	hub       *sse.Hub
	clock     clock.Clock
	keepalive time.Duration
}

func NewEventsHandler(hub *sse.Hub, clk clock.Clock, keepalive time.Duration) EventsHandler {
	if keepalive <= 0 {
		keepalive = 30 * time.Second
	}
	return &eventsHandlerImpl{
		hub:       hub,
		clock:     clk,
		keepalive: keepalive,
	}
}

// Stream handles GET /events
func (h *eventsHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	// Check if streaming is supported
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe()
	defer cleanup()

	// Send initial connection event with the current clock
	fmt.Fprintf(w, "event: connected\ndata: {\"date\":%q,\"time\":%q}\n\n",
		clock.Today(h.clock), clock.TimeOfDay(h.clock))
	flusher.Flush()

	keepalive := time.NewTicker(h.keepalive)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				slog.Warn("Failed to encode event", "event", event.Event, "error", err)
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", h.clock.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
