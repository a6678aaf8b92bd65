// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

package database

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/humdov/postfeed/internal/logging"
)

// seedTags is the demo tag vocabulary.
var seedTags = []string{
	"technology", "sports", "food", "travel", "news",
	"health", "science", "art", "music", "gaming",
}

var seedUsernames = []string{
	"alice", "bob", "carol", "dave", "erin",
	"frank", "grace", "heidi", "ivan", "judy",
	"mallory", "niaj", "olivia", "peggy", "quentin",
	"rupert", "sybil", "trent", "ursula", "victor",
}

// Seed populates an empty database with demo content: 20 users, 100
// posts spread over the past 60 days, and a few hundred interactions
// clustered around per-user tag interests so personalized feeds are
// visibly different from cold-start feeds. A database that already has
// users is left untouched.
//
// The random source is fixed so repeated seeds of a fresh database
// produce identical data.
func (db *DB) Seed(ctx context.Context) error {
	stats, err := db.Stats(ctx)
	if err != nil {
		return err
	}
	if stats.TotalUsers > 0 {
		logging.Info().Msg("Database not empty, skipping demo seed")
		return nil
	}

	rng := rand.New(rand.NewSource(42))
	now := time.Now().UTC()

	userIDs := make([]int64, 0, len(seedUsernames))
	for _, name := range seedUsernames {
		u, err := db.CreateUser(ctx, name)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", name, err)
		}
		userIDs = append(userIDs, u.ID)
	}

	// Each user prefers two or three tags; likes and comments cluster
	// around those so profiles have real signal.
	interests := make(map[int64][]string, len(userIDs))
	for _, id := range userIDs {
		n := 2 + rng.Intn(2)
		perm := rng.Perm(len(seedTags))
		tags := make([]string, n)
		for i := 0; i < n; i++ {
			tags[i] = seedTags[perm[i]]
		}
		interests[id] = tags
	}

	postIDs := make([]int64, 0, 100)
	postTags := make(map[int64][]string, 100)
	for i := 0; i < 100; i++ {
		creator := userIDs[rng.Intn(len(userIDs))]
		tags := []string{seedTags[rng.Intn(len(seedTags))]}
		if rng.Float64() < 0.4 {
			second := seedTags[rng.Intn(len(seedTags))]
			if second != tags[0] {
				tags = append(tags, second)
			}
		}

		ageHours := rng.Intn(60 * 24)
		createdAt := now.Add(-time.Duration(ageHours) * time.Hour)
		title := fmt.Sprintf("Notes on %s #%d", tags[0], i+1)
		content := fmt.Sprintf("Post %d in the %s demo corpus.", i+1, tags[0])

		p, err := db.createPostAt(ctx, title, content, creator, tags, createdAt)
		if err != nil {
			return fmt.Errorf("seed post %d: %w", i+1, err)
		}
		postIDs = append(postIDs, p)
		postTags[p] = tags
	}

	likes, comments := 0, 0
	for likes < 250 {
		userID := userIDs[rng.Intn(len(userIDs))]
		postID := pickPostFor(rng, userID, postIDs, postTags, interests)
		if _, err := db.CreateLike(ctx, userID, postID); err != nil {
			continue // duplicate pair, try again
		}
		likes++
	}
	for comments < 120 {
		userID := userIDs[rng.Intn(len(userIDs))]
		postID := pickPostFor(rng, userID, postIDs, postTags, interests)
		if _, err := db.CreateComment(ctx, userID, postID, "Interesting, thanks for sharing."); err != nil {
			return fmt.Errorf("seed comment: %w", err)
		}
		comments++
	}

	logging.Info().
		Int("users", len(userIDs)).
		Int("posts", len(postIDs)).
		Int("likes", likes).
		Int("comments", comments).
		Msg("Demo data seeded")
	return nil
}

// pickPostFor mostly picks posts matching the user's interests, with a
// 30% chance of a random post so profiles are not perfectly clean.
func pickPostFor(rng *rand.Rand, userID int64, postIDs []int64, postTags map[int64][]string, interests map[int64][]string) int64 {
	if rng.Float64() < 0.3 {
		return postIDs[rng.Intn(len(postIDs))]
	}

	liked := interests[userID]
	for attempt := 0; attempt < 20; attempt++ {
		postID := postIDs[rng.Intn(len(postIDs))]
		for _, tag := range postTags[postID] {
			for _, want := range liked {
				if tag == want {
					return postID
				}
			}
		}
	}
	return postIDs[rng.Intn(len(postIDs))]
}

// createPostAt is Seed's internal variant of CreatePost with an
// explicit creation time.
func (db *DB) createPostAt(ctx context.Context, title, content string, creatorID int64, tags []string, createdAt time.Time) (int64, error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO posts (title, content, creator_id, created_at) VALUES (?, ?, ?, ?)`,
		title, content, creatorID, createdAt.UnixNano())
	if err != nil {
		return 0, err
	}
	postID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, tag := range tags {
		if err := attachTag(ctx, tx, postID, tag); err != nil {
			return 0, err
		}
	}
	return postID, tx.Commit()
}
