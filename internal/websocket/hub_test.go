package websocket

import (
	"encoding/json"
	"log/slog"
	"testing"
)

// mockClient creates a Client with a send channel but no real connection.
func mockClient(hub *Hub, userID string) *Client {
	return &Client{
		hub:    hub,
		conn:   nil,
		userID: userID,
		send:   make(chan []byte, sendBufferSize),
	}
}

func TestRegisterUnregister(t *testing.T) {
	hub := NewHub(slog.Default())

	c1 := mockClient(hub, "user-a")
	c2 := mockClient(hub, "user-a")
	c3 := mockClient(hub, "user-b")

	hub.Register(c1)
	hub.Register(c2)
	hub.Register(c3)

	if got := hub.ClientCount(); got != 3 {
		t.Fatalf("expected 3 clients, got %d", got)
	}

	hub.Unregister(c1)

	if got := hub.ClientCount(); got != 2 {
		t.Fatalf("expected 2 clients after unregister, got %d", got)
	}

	hub.Unregister(c2)
	hub.Unregister(c3)

	if got := hub.ClientCount(); got != 0 {
		t.Fatalf("expected 0 clients, got %d", got)
	}
}

func TestDoubleUnregister(t *testing.T) {
	hub := NewHub(slog.Default())
	c := mockClient(hub, "user-a")
	hub.Register(c)
	hub.Unregister(c)
	// Should not panic
	hub.Unregister(c)

	if got := hub.ClientCount(); got != 0 {
		t.Fatalf("expected 0 clients, got %d", got)
	}
}

func TestBroadcastScopedToUser(t *testing.T) {
	hub := NewHub(slog.Default())

	alice := mockClient(hub, "user-a")
	aliceTablet := mockClient(hub, "user-a")
	bob := mockClient(hub, "user-b")
	hub.Register(alice)
	hub.Register(aliceTablet)
	hub.Register(bob)

	msg := NewMessage("pantry_item", "created", "item-42")
	hub.Broadcast("user-a", msg)

	// Both of alice's clients receive the event.
	for _, c := range []*Client{alice, aliceTablet} {
		select {
		case data := <-c.send:
			var got Message
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.Type != "pantry_item_created" {
				t.Errorf("expected type pantry_item_created, got %s", got.Type)
			}
			if got.ID != "item-42" {
				t.Errorf("expected id item-42, got %s", got.ID)
			}
		default:
			t.Fatal("expected message in client send channel")
		}
	}

	// Bob must not.
	select {
	case <-bob.send:
		t.Fatal("bob received another user's event")
	default:
	}
}

func TestBroadcastNoClients(t *testing.T) {
	hub := NewHub(slog.Default())
	// No registered clients for this user. Should not panic or block.
	hub.Broadcast("user-a", NewMessage("pantry_item", "deleted", "item-1"))
}

func TestBroadcastFullBufferDropsMessage(t *testing.T) {
	hub := NewHub(slog.Default())
	c := mockClient(hub, "user-a")
	hub.Register(c)

	// Fill the buffer, then one more. Broadcast must not block.
	for i := 0; i < sendBufferSize+1; i++ {
		hub.Broadcast("user-a", NewMessage("pantry_item", "updated", "item-1"))
	}

	if got := len(c.send); got != sendBufferSize {
		t.Errorf("expected %d buffered messages, got %d", sendBufferSize, got)
	}
}
