package realtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func recvEvent(t *testing.T, ch chan []byte) ChangeEvent {
	t.Helper()
	select {
	case payload := <-ch:
		var evt ChangeEvent
		assert.NoError(t, json.Unmarshal(payload, &evt))
		return evt
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return ChangeEvent{}
	}
}

func TestHubDeliversOnlySubscribedTables(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{ID: "c1", Tables: map[string]bool{}, Send: make(chan []byte, 8)}
	client.Subscribe([]string{"bookings"})
	hub.RegisterClient(client)

	hub.Notify(ChangeEvent{Table: "photos", Action: "update"})
	hub.Notify(ChangeEvent{Table: "bookings", Action: "insert"})

	evt := recvEvent(t, client.Send)
	assert.Equal(t, "bookings", evt.Table)
	assert.Equal(t, "insert", evt.Action)

	select {
	case extra := <-client.Send:
		t.Fatalf("unexpected event: %s", extra)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubResubscribeSwitchesTables(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{ID: "c1", Tables: map[string]bool{}, Send: make(chan []byte, 8)}
	client.Subscribe([]string{"bookings"})
	hub.RegisterClient(client)

	client.Subscribe([]string{"testimonials"})
	hub.Notify(ChangeEvent{Table: "bookings", Action: "delete"})
	hub.Notify(ChangeEvent{Table: "testimonials", Action: "insert"})

	evt := recvEvent(t, client.Send)
	assert.Equal(t, "testimonials", evt.Table)
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{ID: "c1", Tables: map[string]bool{}, Send: make(chan []byte, 8)}
	hub.RegisterClient(client)
	hub.UnregisterClient(client)

	select {
	case _, open := <-client.Send:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("send channel not closed")
	}
}

func TestPublisherWithoutRedisNotifiesHub(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{ID: "c1", Tables: map[string]bool{}, Send: make(chan []byte, 8)}
	client.Subscribe([]string{"photos"})
	hub.RegisterClient(client)

	pub := &Publisher{Hub: hub}
	pub.Changed("photos", "update")

	evt := recvEvent(t, client.Send)
	assert.Equal(t, "photos", evt.Table)
	assert.Equal(t, "update", evt.Action)
}
