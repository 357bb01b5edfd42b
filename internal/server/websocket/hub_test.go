package websocket

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// TestHub_NewHub tests hub creation.
func TestHub_NewHub(t *testing.T) {
	logger := zerolog.Nop()
	hub := NewHub(&logger)

	if hub == nil {
		t.Fatal("NewHub returned nil")
	}
	if hub.clients == nil {
		t.Error("clients map not initialized")
	}
	if hub.broadcast == nil {
		t.Error("broadcast channel not initialized")
	}
	if hub.register == nil {
		t.Error("register channel not initialized")
	}
	if hub.unregister == nil {
		t.Error("unregister channel not initialized")
	}
}

// TestHub_RegisterAndBroadcast tests registration and message delivery.
func TestHub_RegisterAndBroadcast(t *testing.T) {
	logger := zerolog.Nop()
	hub := NewHub(&logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	go hub.Run(ctx)

	// Give hub time to start
	time.Sleep(10 * time.Millisecond)

	client := NewClient("test-1", hub, nil)
	client.Register()

	time.Sleep(10 * time.Millisecond)

	if count := hub.ClientCount(); count != 1 {
		t.Fatalf("expected 1 client, got %d", count)
	}

	hub.Broadcast(Message{Type: TypeReload, Timestamp: time.Now()})

	select {
	case msg := <-client.send:
		if msg.Type != TypeReload {
			t.Errorf("expected %q message, got %q", TypeReload, msg.Type)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast")
	}
}

// TestHub_Unregister tests client removal.
func TestHub_Unregister(t *testing.T) {
	logger := zerolog.Nop()
	hub := NewHub(&logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	go hub.Run(ctx)
	time.Sleep(10 * time.Millisecond)

	client := NewClient("test-1", hub, nil)
	client.Register()
	time.Sleep(10 * time.Millisecond)

	hub.unregister <- client
	time.Sleep(10 * time.Millisecond)

	if count := hub.ClientCount(); count != 0 {
		t.Errorf("expected 0 clients, got %d", count)
	}

	// Send channel should be closed after unregister
	select {
	case _, ok := <-client.send:
		if ok {
			t.Error("expected send channel to be closed")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}

// TestHub_ContextCancelDisconnectsClients tests shutdown behavior.
func TestHub_ContextCancelDisconnectsClients(t *testing.T) {
	logger := zerolog.Nop()
	hub := NewHub(&logger)

	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	time.Sleep(10 * time.Millisecond)

	client := NewClient("test-1", hub, nil)
	client.Register()
	time.Sleep(10 * time.Millisecond)

	cancel()
	time.Sleep(10 * time.Millisecond)

	if count := hub.ClientCount(); count != 0 {
		t.Errorf("expected 0 clients after shutdown, got %d", count)
	}
}
