// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

// Package database provides SQLite persistence for users, posts, tags
// and interactions, and implements the feed.Repository interface the
// ranker reads from.
//
// The lifecycle is explicit: Open connects, Setup creates the schema
// and runs pending migrations. Setup is invoked once by the process
// owner, never implicitly on open, so tests and tools control when
// schema changes happen.
package database
