// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

package feed

import "errors"

var (
	// ErrInvalidLimit is returned when the requested feed size is not
	// positive. It is raised before any repository call.
	ErrInvalidLimit = errors.New("feed: limit must be positive")

	// ErrUserNotFound is returned by Repository implementations when
	// the user identifier cannot be resolved. The ranker propagates it
	// unchanged.
	ErrUserNotFound = errors.New("feed: user not found")
)
