// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

package feed

import (
	"math"
	"time"

	"github.com/humdov/postfeed/internal/models"
)

const hoursPerDay = 24.0

// Score returns the relevance of post for profile at evaluation time
// now. The score is the tag-match component (sum of profile weights
// over the post's tags) plus a recency boost exp(-DecayRate * age in
// days). The boost alone gives a brand-new post with no tag overlap a
// nonzero score, so fresh content can still surface.
//
// The function is pure and total: any well-formed input yields a
// non-negative score.
func Score(profile Profile, post models.Post, now time.Time, cfg Config) float64 {
	var match float64
	for _, tag := range post.Tags {
		match += profile.Weight(tag)
	}

	return match + recencyBoost(post.CreatedAt, now, cfg.DecayRate)
}

// recencyBoost computes exp(-rate * ageDays). Posts dated in the
// future are clamped to age 0 and receive the full boost.
func recencyBoost(createdAt, now time.Time, rate float64) float64 {
	ageDays := now.Sub(createdAt).Hours() / hoursPerDay
	if ageDays < 0 {
		ageDays = 0
	}
	return math.Exp(-rate * ageDays)
}
