// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

// Package middleware provides the HTTP middleware used by the API
// router: request ID propagation and Prometheus instrumentation.
// Rate limiting, CORS and panic recovery come from the chi ecosystem
// and are wired directly in the router.
package middleware
