// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/humdov/postfeed/internal/metrics"
	"github.com/humdov/postfeed/internal/models"
)

// Stats returns corpus totals for the dashboard endpoint.
func (db *DB) Stats(ctx context.Context) (*models.Stats, error) {
	start := time.Now()
	var s models.Stats
	err := db.conn.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM posts),
			(SELECT COUNT(*) FROM likes),
			(SELECT COUNT(*) FROM comments),
			(SELECT COUNT(*) FROM tags)
	`).Scan(&s.TotalUsers, &s.TotalPosts, &s.TotalLikes, &s.TotalComments, &s.TotalTags)
	metrics.RecordDBQuery("SELECT", "stats", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}
	return &s, nil
}

// PopularTags returns the most interacted-with tags. Weight applies
// the same like/comment weighting the ranker uses, so the analytics
// view matches what drives the feed.
func (db *DB) PopularTags(ctx context.Context, limit int, likeWeight, commentWeight float64) ([]models.TagActivity, error) {
	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, `
		SELECT t.name,
			COUNT(DISTINCT l.user_id || ':' || l.post_id) AS likes,
			COUNT(DISTINCT c.id) AS comments
		FROM tags t
		JOIN post_tags pt ON pt.tag_id = t.id
		LEFT JOIN likes l ON l.post_id = pt.post_id
		LEFT JOIN comments c ON c.post_id = pt.post_id
		GROUP BY t.id
		ORDER BY likes * ? + comments * ? DESC, t.name ASC
		LIMIT ?`, likeWeight, commentWeight, limit)
	metrics.RecordDBQuery("SELECT", "tags", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query popular tags: %w", err)
	}
	defer rows.Close()

	activity := []models.TagActivity{}
	for rows.Next() {
		var ta models.TagActivity
		if err := rows.Scan(&ta.Tag, &ta.Likes, &ta.Comments); err != nil {
			return nil, err
		}
		ta.Weight = float64(ta.Likes)*likeWeight + float64(ta.Comments)*commentWeight
		activity = append(activity, ta)
	}
	return activity, rows.Err()
}

// TopPosts returns the posts with the most likes, comments breaking
// ties.
func (db *DB) TopPosts(ctx context.Context, limit int) ([]models.PostEngagement, error) {
	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, `
		SELECT p.id, p.title,
			(SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id) AS likes,
			(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comments
		FROM posts p
		ORDER BY likes DESC, comments DESC, p.id ASC
		LIMIT ?`, limit)
	metrics.RecordDBQuery("SELECT", "posts", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query top posts: %w", err)
	}
	defer rows.Close()

	posts := []models.PostEngagement{}
	for rows.Next() {
		var pe models.PostEngagement
		if err := rows.Scan(&pe.PostID, &pe.Title, &pe.Likes, &pe.Comments); err != nil {
			return nil, err
		}
		posts = append(posts, pe)
	}
	return posts, rows.Err()
}

// Engagement summarizes interaction activity across the corpus.
func (db *DB) Engagement(ctx context.Context) (*models.EngagementStats, error) {
	start := time.Now()
	var es models.EngagementStats
	var users, likes, comments int64
	err := db.conn.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM likes),
			(SELECT COUNT(*) FROM comments),
			(SELECT COUNT(DISTINCT user_id) FROM (
				SELECT user_id FROM likes UNION SELECT user_id FROM comments
			)),
			(SELECT COUNT(*) FROM posts p WHERE NOT EXISTS (
				SELECT 1 FROM post_tags pt WHERE pt.post_id = p.id
			))
	`).Scan(&users, &likes, &comments, &es.ActiveUsers, &es.PostsWithoutTags)
	metrics.RecordDBQuery("SELECT", "engagement", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query engagement: %w", err)
	}

	if users > 0 {
		es.LikesPerUser = float64(likes) / float64(users)
		es.CommentsPerUser = float64(comments) / float64(users)
	}
	return &es, nil
}
