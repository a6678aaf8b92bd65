// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

package feed

import (
	"context"

	"github.com/humdov/postfeed/internal/models"
)

// Repository supplies the interaction history and candidate posts the
// ranker reads. Implementations must return ErrUserNotFound for an
// unknown user; any other failure is surfaced to the caller unmodified.
//
// Consistency with concurrent writes is the implementation's concern.
// The ranker only requires a valid snapshot per call.
type Repository interface {
	// LikedPosts returns the posts the user has liked, with tags.
	LikedPosts(ctx context.Context, userID int64) ([]models.Post, error)

	// CommentedPosts returns the posts the user has commented on, with
	// tags. A post may appear in both LikedPosts and CommentedPosts.
	CommentedPosts(ctx context.Context, userID int64) ([]models.Post, error)

	// CandidatePosts returns up to max posts the user has neither liked
	// nor commented on, most recent first.
	CandidatePosts(ctx context.Context, userID int64, max int) ([]models.Post, error)
}
