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

// CreateLike records that a user liked a post. Liking the same post
// twice fails with ErrDuplicate; a missing user or post fails with
// ErrNotFound.
func (db *DB) CreateLike(ctx context.Context, userID, postID int64) (*models.Like, error) {
	start := time.Now()
	createdAt := time.Now().UTC()

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO likes (user_id, post_id, created_at) VALUES (?, ?, ?)`,
		userID, postID, createdAt.UnixNano(),
	)
	metrics.RecordDBQuery("INSERT", "likes", time.Since(start), err)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("like user=%d post=%d: %w", userID, postID, ErrDuplicate)
		}
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("like user=%d post=%d: %w", userID, postID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to insert like: %w", err)
	}

	return &models.Like{UserID: userID, PostID: postID, Timestamp: createdAt}, nil
}

// DeleteLike removes a like, ErrNotFound when it does not exist.
func (db *DB) DeleteLike(ctx context.Context, userID, postID int64) error {
	start := time.Now()
	res, err := db.conn.ExecContext(ctx,
		`DELETE FROM likes WHERE user_id = ? AND post_id = ?`, userID, postID)
	metrics.RecordDBQuery("DELETE", "likes", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("like user=%d post=%d: %w", userID, postID, ErrNotFound)
	}
	return nil
}

// LikesByUser returns the user's likes, most recent first.
func (db *DB) LikesByUser(ctx context.Context, userID int64) ([]models.Like, error) {
	start := time.Now()
	rows, err := db.conn.QueryContext(ctx,
		`SELECT user_id, post_id, created_at FROM likes
		 WHERE user_id = ? ORDER BY created_at DESC`, userID)
	metrics.RecordDBQuery("SELECT", "likes", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query likes: %w", err)
	}
	defer rows.Close()

	likes := []models.Like{}
	for rows.Next() {
		var l models.Like
		var createdAt int64
		if err := rows.Scan(&l.UserID, &l.PostID, &createdAt); err != nil {
			return nil, err
		}
		l.Timestamp = time.Unix(0, createdAt).UTC()
		likes = append(likes, l)
	}
	return likes, rows.Err()
}

// CreateComment records a comment on a post. A missing user or post
// fails with ErrNotFound.
func (db *DB) CreateComment(ctx context.Context, userID, postID int64, content string) (*models.Comment, error) {
	start := time.Now()
	createdAt := time.Now().UTC()

	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO comments (user_id, post_id, content, created_at) VALUES (?, ?, ?, ?)`,
		userID, postID, content, createdAt.UnixNano(),
	)
	metrics.RecordDBQuery("INSERT", "comments", time.Since(start), err)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("comment user=%d post=%d: %w", userID, postID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read comment id: %w", err)
	}

	return &models.Comment{
		ID:        id,
		UserID:    userID,
		PostID:    postID,
		Content:   content,
		Timestamp: createdAt,
	}, nil
}

// CommentsByPost returns a post's comments in posting order.
func (db *DB) CommentsByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	start := time.Now()
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, user_id, post_id, content, created_at FROM comments
		 WHERE post_id = ? ORDER BY created_at ASC, id ASC`, postID)
	metrics.RecordDBQuery("SELECT", "comments", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		var createdAt int64
		if err := rows.Scan(&c.ID, &c.UserID, &c.PostID, &c.Content, &createdAt); err != nil {
			return nil, err
		}
		c.Timestamp = time.Unix(0, createdAt).UTC()
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
