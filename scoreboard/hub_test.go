package scoreboard

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dmateos23/tennis-tour-system/metrics"
	"github.com/dmateos23/tennis-tour-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func register(t *testing.T, hub *Hub, room string) *Client {
	t.Helper()
	client := NewClient(hub, nil, room, testLogger())
	hub.Register <- client

	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return hub.rooms[room][client]
	}, time.Second, 5*time.Millisecond)
	return client
}

func receive(t *testing.T, client *Client) Event {
	t.Helper()
	select {
	case message := <-client.send:
		var event Event
		require.NoError(t, json.Unmarshal(message, &event))
		return event
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
		return Event{}
	}
}

func TestHubRoomsRouting(t *testing.T) {
	hub := NewHub(testLogger(), metrics.NewMock())
	go hub.Run()

	tourClient := register(t, hub, TourRoom)
	t1Client := register(t, hub, TournamentRoom("t1"))
	t2Client := register(t, hub, TournamentRoom("t2"))

	hub.Publish(Event{
		Type:    EventMatchCreated,
		Payload: models.Match{ID: "m1", TournamentID: "t1"},
		Room:    TournamentRoom("t1"),
	})

	tourEvent := receive(t, tourClient)
	assert.Equal(t, EventMatchCreated, tourEvent.Type)

	t1Event := receive(t, t1Client)
	assert.Equal(t, EventMatchCreated, t1Event.Type)

	select {
	case <-t2Client.send:
		t.Fatal("event leaked into an unrelated tournament room")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubUnregisterClosesClient(t *testing.T) {
	hub := NewHub(testLogger(), metrics.NewMock())
	go hub.Run()

	client := register(t, hub, TourRoom)
	require.Equal(t, 1, hub.ClientCount())

	hub.Unregister <- client
	require.Eventually(t, func() bool {
		return hub.ClientCount() == 0
	}, time.Second, 5*time.Millisecond)

	_, open := <-client.send
	assert.False(t, open, "send channel must be closed on unregister")
}

func TestHubUpdatesClientGauge(t *testing.T) {
	m := metrics.NewMock()
	hub := NewHub(testLogger(), m)
	go hub.Run()

	first := register(t, hub, TourRoom)
	require.Eventually(t, func() bool {
		return m.ScoreboardClients() == 1
	}, time.Second, 5*time.Millisecond)

	second := register(t, hub, TournamentRoom("t1"))
	require.Eventually(t, func() bool {
		return m.ScoreboardClients() == 2
	}, time.Second, 5*time.Millisecond)

	hub.Unregister <- first
	hub.Unregister <- second
	require.Eventually(t, func() bool {
		return m.ScoreboardClients() == 0
	}, time.Second, 5*time.Millisecond)
}

func TestHubSkipsSlowClient(t *testing.T) {
	hub := NewHub(testLogger(), metrics.NewMock())
	go hub.Run()

	client := register(t, hub, TourRoom)
	for i := 0; i < sendBufferSize; i++ {
		require.True(t, client.trySend([]byte("backlog")))
	}

	// Буфер полон: публикация не должна заблокироваться.
	done := make(chan struct{})
	go func() {
		hub.Publish(Event{Type: EventRankingChanged})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow client")
	}
}
