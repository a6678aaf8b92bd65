// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

// Package supervisor provides Suture-based process supervision.
//
// The tree has two layers:
//   - messaging: WebSocket hub and the event forwarder
//   - api: HTTP server
//
// The split isolates failures. A crash in the messaging layer restarts
// the hub and forwarder without interrupting in-flight HTTP requests.
package supervisor
