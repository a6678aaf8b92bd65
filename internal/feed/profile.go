// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

package feed

import "github.com/humdov/postfeed/internal/models"

// Profile is a user's normalized tag preference distribution. Weights
// sum to 1.0; an empty profile means the user has no tag signal and the
// feed falls back to recency ordering.
type Profile map[string]float64

// IsEmpty reports whether the profile carries no tag signal.
func (p Profile) IsEmpty() bool {
	return len(p) == 0
}

// Weight returns the profile weight for tag, 0 if absent.
func (p Profile) Weight(tag string) float64 {
	return p[tag]
}

// BuildProfile accumulates tag weights from a user's liked and
// commented posts and normalizes them into a distribution. Each tag of
// a liked post adds LikeWeight, each tag of a commented post adds
// CommentWeight; a post in both sets contributes both. Posts without
// tags contribute nothing. If nothing accumulates, the result is empty.
func BuildProfile(liked, commented []models.Post, cfg Config) Profile {
	acc := make(map[string]float64)

	for _, post := range liked {
		for _, tag := range post.Tags {
			acc[tag] += cfg.LikeWeight
		}
	}
	for _, post := range commented {
		for _, tag := range post.Tags {
			acc[tag] += cfg.CommentWeight
		}
	}

	return normalize(acc)
}

// normalize scales weights so they sum to 1. A zero or negative total
// yields an empty profile.
func normalize(acc map[string]float64) Profile {
	var total float64
	for _, w := range acc {
		total += w
	}
	if total <= 0 {
		return Profile{}
	}

	p := make(Profile, len(acc))
	for tag, w := range acc {
		p[tag] = w / total
	}
	return p
}
