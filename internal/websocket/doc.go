// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

// Package websocket maintains the set of connected activity-stream
// clients and fans interaction events out to them. Slow clients whose
// send buffer fills are disconnected rather than allowed to stall the
// hub.
package websocket
