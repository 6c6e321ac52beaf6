package sse

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub() *Hub {
	return NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHub_PublishReachesTopicOnly(t *testing.T) {
	h := newTestHub()
	a, cleanupA := h.Subscribe("user-a")
	defer cleanupA()
	b, cleanupB := h.Subscribe("user-b")
	defer cleanupB()

	h.Publish("user-a", Event{Event: "notification", Data: []byte(`{"id":"1"}`)})

	got := <-a
	assert.Equal(t, "user-a", got.Topic)
	assert.Equal(t, "notification", got.Event)
	assert.Empty(t, b)
}

func TestHub_CleanupIsIdempotent(t *testing.T) {
	h := newTestHub()
	ch, cleanup := h.Subscribe("user-a")
	assert.Equal(t, 1, h.SubscriberCount("user-a"))

	cleanup()
	cleanup()
	assert.Zero(t, h.TotalSubscribers())

	_, open := <-ch
	assert.False(t, open)
}

func TestHub_DropsWhenFull(t *testing.T) {
	h := newTestHub()
	_, cleanup := h.Subscribe("user-a")
	defer cleanup()

	for i := 0; i < 20; i++ {
		h.Publish("user-a", Event{Event: "notification"})
	}
	assert.Equal(t, uint64(4), h.Dropped())
}

func TestHub_CloseThenCleanup(t *testing.T) {
	h := newTestHub()
	ch, cleanup := h.Subscribe("user-a")
	h.Close()

	_, open := <-ch
	assert.False(t, open)
	assert.NotPanics(t, cleanup)
}

func TestEvent_WriteTo(t *testing.T) {
	var buf bytes.Buffer
	_, err := Event{ID: "7", Event: "notification", Data: []byte(`{"ok":true}`)}.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "id: 7\nevent: notification\ndata: {\"ok\":true}\n\n", buf.String())
}
