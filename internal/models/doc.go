// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

// Package models defines the domain entities (users, posts, tags, likes,
// comments), the request DTOs with validation tags, and the standardized
// API response envelope shared by all HTTP endpoints.
package models
