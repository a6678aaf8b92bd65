// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/humdov/postfeed/internal/feed"
	"github.com/humdov/postfeed/internal/metrics"
	"github.com/humdov/postfeed/internal/models"
)

// The DB is the feed.Repository the ranker reads from. Each method
// resolves the user first so an unknown ID surfaces as
// feed.ErrUserNotFound before any interaction query runs.
var _ feed.Repository = (*DB)(nil)

// LikedPosts returns the posts the user has liked, with tags.
func (db *DB) LikedPosts(ctx context.Context, userID int64) ([]models.Post, error) {
	if err := db.resolveUser(ctx, userID); err != nil {
		return nil, err
	}

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx,
		`SELECT p.id, p.title, p.content, p.creator_id, p.created_at
		 FROM posts p JOIN likes l ON l.post_id = p.id
		 WHERE l.user_id = ?
		 ORDER BY p.id`, userID)
	metrics.RecordDBQuery("SELECT", "likes", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query liked posts: %w", err)
	}
	defer rows.Close()

	posts, err := scanPosts(rows)
	if err != nil {
		return nil, err
	}
	return db.withTags(ctx, posts)
}

// CommentedPosts returns the posts the user has commented on, with
// tags. A post with several comments by the user appears once.
func (db *DB) CommentedPosts(ctx context.Context, userID int64) ([]models.Post, error) {
	if err := db.resolveUser(ctx, userID); err != nil {
		return nil, err
	}

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx,
		`SELECT DISTINCT p.id, p.title, p.content, p.creator_id, p.created_at
		 FROM posts p JOIN comments c ON c.post_id = p.id
		 WHERE c.user_id = ?
		 ORDER BY p.id`, userID)
	metrics.RecordDBQuery("SELECT", "comments", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query commented posts: %w", err)
	}
	defer rows.Close()

	posts, err := scanPosts(rows)
	if err != nil {
		return nil, err
	}
	return db.withTags(ctx, posts)
}

// CandidatePosts returns up to max posts the user has neither liked
// nor commented on, most recent first with post ID breaking timestamp
// ties.
func (db *DB) CandidatePosts(ctx context.Context, userID int64, max int) ([]models.Post, error) {
	if err := db.resolveUser(ctx, userID); err != nil {
		return nil, err
	}

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx,
		`SELECT p.id, p.title, p.content, p.creator_id, p.created_at
		 FROM posts p
		 WHERE NOT EXISTS (SELECT 1 FROM likes l WHERE l.post_id = p.id AND l.user_id = ?)
		   AND NOT EXISTS (SELECT 1 FROM comments c WHERE c.post_id = p.id AND c.user_id = ?)
		 ORDER BY p.created_at DESC, p.id ASC
		 LIMIT ?`, userID, userID, max)
	metrics.RecordDBQuery("SELECT", "posts", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidate posts: %w", err)
	}
	defer rows.Close()

	posts, err := scanPosts(rows)
	if err != nil {
		return nil, err
	}
	return db.withTags(ctx, posts)
}

// resolveUser maps a missing user to feed.ErrUserNotFound.
func (db *DB) resolveUser(ctx context.Context, userID int64) error {
	exists, err := db.userExists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("user %d: %w", userID, feed.ErrUserNotFound)
	}
	return nil
}
