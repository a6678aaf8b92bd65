// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

package websocket

import (
	"context"
	"testing"
	"time"

	"github.com/humdov/postfeed/internal/events"
)

func startHub(t *testing.T) (*Hub, context.CancelFunc, chan error) {
	t.Helper()

	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- hub.Run(ctx) }()
	return hub, cancel, done
}

func newTestClient(hub *Hub) *Client {
	return &Client{
		id:   clientIDCounter.Add(1),
		hub:  hub,
		send: make(chan Message, 4),
	}
}

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("ClientCount = %d, want %d", hub.ClientCount(), want)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHubRegisterUnregister(t *testing.T) {
	hub, cancel, done := startHub(t)
	defer cancel()

	client := newTestClient(hub)
	hub.Register <- client
	waitForClients(t, hub, 1)

	hub.Unregister <- client
	waitForClients(t, hub, 0)

	// The hub closes the send channel on unregister.
	select {
	case _, ok := <-client.send:
		if ok {
			t.Error("expected closed send channel")
		}
	case <-time.After(time.Second):
		t.Error("send channel not closed")
	}

	cancel()
	<-done
}

func TestHubBroadcastEvent(t *testing.T) {
	hub, cancel, done := startHub(t)
	defer cancel()

	a := newTestClient(hub)
	b := newTestClient(hub)
	hub.Register <- a
	hub.Register <- b
	waitForClients(t, hub, 2)

	event := events.New(events.TypePostLiked, 1, 42)
	hub.BroadcastEvent(event)

	for _, client := range []*Client{a, b} {
		select {
		case msg := <-client.send:
			if msg.Type != MessageTypeActivity {
				t.Errorf("message type = %q, want activity", msg.Type)
			}
			got, ok := msg.Data.(events.Event)
			if !ok {
				t.Fatalf("data type = %T", msg.Data)
			}
			if got.PostID != 42 {
				t.Errorf("PostID = %d, want 42", got.PostID)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("client did not receive broadcast")
		}
	}

	cancel()
	<-done
}

func TestHubDropsSlowClient(t *testing.T) {
	hub, cancel, done := startHub(t)
	defer cancel()

	slow := newTestClient(hub)
	hub.Register <- slow
	waitForClients(t, hub, 1)

	// Fill the client's buffer; the next fan-out must drop it.
	for i := 0; i < cap(slow.send); i++ {
		slow.send <- Message{Type: MessageTypePong}
	}
	hub.BroadcastEvent(events.New(events.TypePostCreated, 1, 1))
	waitForClients(t, hub, 0)

	cancel()
	<-done
}

func TestHubShutdownClosesClients(t *testing.T) {
	hub, cancel, done := startHub(t)

	client := newTestClient(hub)
	hub.Register <- client
	waitForClients(t, hub, 1)

	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Run returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("hub did not stop")
	}

	// Drain any queued messages until close.
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-client.send:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("send channel not closed on shutdown")
		}
	}
}
