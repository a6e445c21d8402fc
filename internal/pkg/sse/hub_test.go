package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesAllSubscribers(t *testing.T) {
	h := NewHub(4)
	a, cleanupA := h.Subscribe()
	defer cleanupA()
	b, cleanupB := h.Subscribe()
	defer cleanupB()

	h.Publish(Event{Event: EventStateChanged, Data: "ADD_EMPLOYEE"})

	require.Len(t, a, 1)
	require.Len(t, b, 1)
	assert.Equal(t, "ADD_EMPLOYEE", (<-a).Data)
	assert.Equal(t, EventStateChanged, (<-b).Event)
}

func TestHub_CleanupRemovesAndClosesOnce(t *testing.T) {
	h := NewHub(1)
	ch, cleanup := h.Subscribe()
	assert.Equal(t, 1, h.SubscriberCount())

	cleanup()
	cleanup()

	assert.Equal(t, 0, h.SubscriberCount())
	_, open := <-ch
	assert.False(t, open)
}

func TestHub_FullBufferDropsEvent(t *testing.T) {
	h := NewHub(1)
	ch, cleanup := h.Subscribe()
	defer cleanup()

	h.Publish(Event{Event: EventClock, Data: 1})
	h.Publish(Event{Event: EventClock, Data: 2})

	require.Len(t, ch, 1)
	assert.Equal(t, 1, (<-ch).Data)
}
