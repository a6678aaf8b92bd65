// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

package feed

// Config contains the ranking parameters.
type Config struct {
	// LikeWeight is the profile weight each tag of a liked post accumulates.
	LikeWeight float64

	// CommentWeight is the profile weight each tag of a commented post
	// accumulates. A post both liked and commented on contributes both.
	CommentWeight float64

	// DecayRate controls the recency boost exp(-DecayRate * age_days).
	// At the default 0.01 a brand-new post gets 1.0, a 69-day-old post
	// roughly 0.5.
	DecayRate float64

	// DefaultLimit is the feed size used when the caller does not ask
	// for a specific one.
	DefaultLimit int

	// MaxCandidates caps how many recent candidate posts the repository
	// is asked for per request.
	MaxCandidates int
}

// DefaultConfig returns the canonical ranking parameters.
func DefaultConfig() Config {
	return Config{
		LikeWeight:    1.0,
		CommentWeight: 0.5,
		DecayRate:     0.01,
		DefaultLimit:  20,
		MaxCandidates: 100,
	}
}
