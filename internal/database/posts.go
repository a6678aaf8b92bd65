// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/humdov/postfeed/internal/metrics"
	"github.com/humdov/postfeed/internal/models"
)

// CreatePost inserts a post with its tags in one transaction. Unknown
// tags are created on the fly; duplicate tags in the request are
// dropped. The creator must exist or the insert fails with ErrNotFound.
func (db *DB) CreatePost(ctx context.Context, title, content string, creatorID int64, tags []string) (*models.Post, error) {
	tags = models.DedupeTags(tags)
	createdAt := time.Now().UTC()
	start := time.Now()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO posts (title, content, creator_id, created_at) VALUES (?, ?, ?, ?)`,
		title, content, creatorID, createdAt.UnixNano(),
	)
	if err != nil {
		metrics.RecordDBQuery("INSERT", "posts", time.Since(start), err)
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("creator %d: %w", creatorID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	postID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read post id: %w", err)
	}

	for _, tag := range tags {
		if err := attachTag(ctx, tx, postID, tag); err != nil {
			metrics.RecordDBQuery("INSERT", "post_tags", time.Since(start), err)
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit post: %w", err)
	}
	metrics.RecordDBQuery("INSERT", "posts", time.Since(start), nil)

	return &models.Post{
		ID:        postID,
		Title:     title,
		Content:   content,
		CreatorID: creatorID,
		CreatedAt: createdAt,
		Tags:      tags,
	}, nil
}

// attachTag upserts the tag name and links it to the post.
func attachTag(ctx context.Context, tx *sql.Tx, postID int64, tag string) error {
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO tags (name) VALUES (?) ON CONFLICT(name) DO NOTHING`, tag); err != nil {
		return fmt.Errorf("failed to upsert tag %q: %w", tag, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO post_tags (post_id, tag_id) SELECT ?, id FROM tags WHERE name = ?`,
		postID, tag); err != nil {
		return fmt.Errorf("failed to link tag %q: %w", tag, err)
	}
	return nil
}

// GetPost returns the post with its tags, ErrNotFound if absent.
func (db *DB) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	start := time.Now()
	var p models.Post
	var createdAt int64
	err := db.conn.QueryRowContext(ctx,
		`SELECT id, title, content, creator_id, created_at FROM posts WHERE id = ?`, id,
	).Scan(&p.ID, &p.Title, &p.Content, &p.CreatorID, &createdAt)
	metrics.RecordDBQuery("SELECT", "posts", time.Since(start), err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("post %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query post: %w", err)
	}
	p.CreatedAt = time.Unix(0, createdAt).UTC()

	tagsByPost, err := db.loadTags(ctx, []int64{p.ID})
	if err != nil {
		return nil, err
	}
	p.Tags = tagsByPost[p.ID]
	return &p, nil
}

// ListPosts returns posts most recent first, with tags, paginated by
// limit and offset.
func (db *DB) ListPosts(ctx context.Context, limit, offset int) ([]models.Post, error) {
	start := time.Now()
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, title, content, creator_id, created_at
		 FROM posts ORDER BY created_at DESC, id ASC LIMIT ? OFFSET ?`,
		limit, offset)
	metrics.RecordDBQuery("SELECT", "posts", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts, err := scanPosts(rows)
	if err != nil {
		return nil, err
	}
	return db.withTags(ctx, posts)
}

// scanPosts reads post rows without tags.
func scanPosts(rows *sql.Rows) ([]models.Post, error) {
	posts := []models.Post{}
	for rows.Next() {
		var p models.Post
		var createdAt int64
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.CreatorID, &createdAt); err != nil {
			return nil, err
		}
		p.CreatedAt = time.Unix(0, createdAt).UTC()
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// withTags attaches tags to every post in one batched query.
func (db *DB) withTags(ctx context.Context, posts []models.Post) ([]models.Post, error) {
	if len(posts) == 0 {
		return posts, nil
	}

	ids := make([]int64, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}

	tagsByPost, err := db.loadTags(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].Tags = tagsByPost[posts[i].ID]
	}
	return posts, nil
}

// loadTags returns the tag names for each post ID, in insertion order.
func (db *DB) loadTags(ctx context.Context, postIDs []int64) (map[int64][]string, error) {
	if len(postIDs) == 0 {
		return map[int64][]string{}, nil
	}

	placeholders := strings.Repeat("?,", len(postIDs))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]interface{}, len(postIDs))
	for i, id := range postIDs {
		args[i] = id
	}

	start := time.Now()
	query := fmt.Sprintf(
		`SELECT pt.post_id, t.name FROM post_tags pt
		 JOIN tags t ON t.id = pt.tag_id
		 WHERE pt.post_id IN (%s)
		 ORDER BY pt.post_id, t.id`, placeholders)
	rows, err := db.conn.QueryContext(ctx, query, args...)
	metrics.RecordDBQuery("SELECT", "post_tags", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	tagsByPost := make(map[int64][]string, len(postIDs))
	for rows.Next() {
		var postID int64
		var name string
		if err := rows.Scan(&postID, &name); err != nil {
			return nil, err
		}
		tagsByPost[postID] = append(tagsByPost[postID], name)
	}
	return tagsByPost, rows.Err()
}
