// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

package models

import (
	"sort"
	"time"
)

// User represents an application user.
type User struct {
	// ID is the internal user identifier.
	ID int64 `json:"id"`

	// Username is unique across all users.
	Username string `json:"username"`

	// CreatedAt is when the user joined.
	CreatedAt time.Time `json:"created_at"`
}

// Post represents a piece of content with its tag set.
// Posts are immutable once created: the identifier, creator, creation
// timestamp and tags never change afterwards.
type Post struct {
	// ID is the unique post identifier.
	ID int64 `json:"id"`

	// Title is the post headline.
	Title string `json:"title"`

	// Content is the post body. May be empty.
	Content string `json:"content,omitempty"`

	// CreatorID is the authoring user's identifier.
	CreatorID int64 `json:"creator_id"`

	// CreatedAt is the creation timestamp, immutable once set.
	CreatedAt time.Time `json:"created_at"`

	// Tags holds the post's tag names with duplicates collapsed.
	// Tags are compared by exact string equality, as stored.
	Tags []string `json:"tags"`
}

// Like records that a user liked a post. Existence only - a user can
// like a post at most once.
type Like struct {
	UserID    int64     `json:"user_id"`
	PostID    int64     `json:"post_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Comment records a user's comment on a post. Unlike likes, a user may
// comment on the same post any number of times.
type Comment struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	PostID    int64     `json:"post_id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// FeedPost is a post annotated with its personalization score. It exists
// only for the duration of one feed response.
type FeedPost struct {
	Post

	// Score is the relevance score assigned by the ranker.
	// Zero for cold-start results.
	Score float64 `json:"score"`
}

// DedupeTags returns the tag list with duplicates collapsed and empty
// entries removed, preserving first-seen order.
func DedupeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// SortedTags returns a sorted copy of the tag list. Used where a
// deterministic order matters (responses, tests).
func SortedTags(tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	sort.Strings(out)
	return out
}
