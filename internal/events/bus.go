// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

package events

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/humdov/postfeed/internal/logging"
	"github.com/humdov/postfeed/internal/metrics"
)

// Bus is the in-process interaction event channel. Messages published
// while no subscriber is attached are dropped, which is the intended
// semantics for activity notifications.
type Bus struct {
	channel *gochannel.GoChannel
}

// NewBus creates the pub/sub channel.
func NewBus() *Bus {
	return &Bus{
		channel: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: 256},
			NewLoggerAdapter(),
		),
	}
}

// Publish sends the event to all subscribers. Failures are logged and
// counted, not returned: interaction writes must not fail because the
// notification channel does.
func (b *Bus) Publish(ctx context.Context, event Event) {
	data, err := event.Marshal()
	if err != nil {
		metrics.EventsDropped.Inc()
		logging.Ctx(ctx).Error().Err(err).Str("type", string(event.Type)).Msg("Failed to marshal event")
		return
	}

	msg := message.NewMessage(event.ID, data)
	msg.SetContext(ctx)

	if err := b.channel.Publish(Topic, msg); err != nil {
		metrics.EventsDropped.Inc()
		logging.Ctx(ctx).Error().Err(err).Str("type", string(event.Type)).Msg("Failed to publish event")
		return
	}

	metrics.RecordEventPublished(string(event.Type))
}

// Subscribe returns the message stream for the interaction topic. The
// stream closes when ctx is cancelled or the bus is closed.
func (b *Bus) Subscribe(ctx context.Context) (<-chan *message.Message, error) {
	msgs, err := b.channel.Subscribe(ctx, Topic)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", Topic, err)
	}
	return msgs, nil
}

// Close shuts the channel down and closes all subscriber streams.
func (b *Bus) Close() error {
	return b.channel.Close()
}
