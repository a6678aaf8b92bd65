// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

// Package events publishes interaction events (posts created, likes,
// comments) on an in-process Watermill pub/sub channel. Subscribers
// receive them asynchronously; the activity WebSocket forwarder is the
// main consumer. Publishing is fire-and-forget: a failed publish is
// counted and logged, never surfaced to the API caller.
package events
