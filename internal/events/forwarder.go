// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

package events

import (
	"context"

	"github.com/humdov/postfeed/internal/logging"
)

// Broadcaster receives decoded events for fan-out to connected
// clients. The WebSocket hub implements it.
type Broadcaster interface {
	BroadcastEvent(event Event)
}

// Forwarder drains the bus and hands each event to the broadcaster.
type Forwarder struct {
	bus       *Bus
	broadcast Broadcaster
}

// NewForwarder wires the bus to a broadcaster.
func NewForwarder(bus *Bus, broadcast Broadcaster) *Forwarder {
	return &Forwarder{bus: bus, broadcast: broadcast}
}

// Run consumes events until ctx is cancelled or the bus closes.
// Malformed payloads are acked and dropped; they cannot be retried
// into validity.
func (f *Forwarder) Run(ctx context.Context) error {
	msgs, err := f.bus.Subscribe(ctx)
	if err != nil {
		return err
	}

	logging.Info().Msg("Event forwarder started")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-msgs:
			if !ok {
				logging.Info().Msg("Event forwarder stopped, bus closed")
				return nil
			}

			event, err := Unmarshal(msg.Payload)
			if err != nil {
				logging.Warn().Err(err).Str("message_id", msg.UUID).Msg("Dropping malformed event")
				msg.Ack()
				continue
			}

			f.broadcast.BroadcastEvent(event)
			msg.Ack()
		}
	}
}
