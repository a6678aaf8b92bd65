// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

// Package api exposes the HTTP surface: user, post and interaction
// CRUD, the personalized feed, analytics, health and the activity
// WebSocket. Every endpoint responds with the models.APIResponse
// envelope.
package api
