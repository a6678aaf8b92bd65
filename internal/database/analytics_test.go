// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

package database

import (
	"context"
	"testing"
)

func TestStatsAndAnalytics(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	alice, _ := db.CreateUser(ctx, "alice")
	bob, _ := db.CreateUser(ctx, "bob")

	tech, err := db.CreatePost(ctx, "tech post", "", alice.ID, []string{"technology"})
	if err != nil {
		t.Fatal(err)
	}
	food, err := db.CreatePost(ctx, "food post", "", alice.ID, []string{"food"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.CreatePost(ctx, "untagged", "", bob.ID, nil); err != nil {
		t.Fatal(err)
	}

	if _, err := db.CreateLike(ctx, bob.ID, tech.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := db.CreateLike(ctx, alice.ID, tech.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := db.CreateComment(ctx, bob.ID, food.ID, "yum"); err != nil {
		t.Fatal(err)
	}

	stats, err := db.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalUsers != 2 || stats.TotalPosts != 3 || stats.TotalLikes != 2 ||
		stats.TotalComments != 1 || stats.TotalTags != 2 {
		t.Errorf("stats = %+v", stats)
	}

	tags, err := db.PopularTags(ctx, 10, 1.0, 0.5)
	if err != nil {
		t.Fatalf("PopularTags: %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("len(tags) = %d, want 2", len(tags))
	}
	// technology: 2 likes = weight 2.0; food: 1 comment = weight 0.5.
	if tags[0].Tag != "technology" || tags[0].Weight != 2.0 {
		t.Errorf("top tag = %+v, want technology weight 2.0", tags[0])
	}
	if tags[1].Tag != "food" || tags[1].Weight != 0.5 {
		t.Errorf("second tag = %+v, want food weight 0.5", tags[1])
	}

	top, err := db.TopPosts(ctx, 2)
	if err != nil {
		t.Fatalf("TopPosts: %v", err)
	}
	if len(top) != 2 || top[0].PostID != tech.ID || top[0].Likes != 2 {
		t.Errorf("top posts = %+v", top)
	}

	eng, err := db.Engagement(ctx)
	if err != nil {
		t.Fatalf("Engagement: %v", err)
	}
	if eng.ActiveUsers != 2 {
		t.Errorf("ActiveUsers = %d, want 2", eng.ActiveUsers)
	}
	if eng.LikesPerUser != 1.0 {
		t.Errorf("LikesPerUser = %g, want 1.0", eng.LikesPerUser)
	}
	if eng.PostsWithoutTags != 1 {
		t.Errorf("PostsWithoutTags = %d, want 1", eng.PostsWithoutTags)
	}
}

func TestSeed(t *testing.T) {
	if testing.Short() {
		t.Skip("seeding inserts several hundred rows")
	}

	db := newTestDB(t)
	ctx := context.Background()

	if err := db.Seed(ctx); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	stats, err := db.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalUsers != 20 {
		t.Errorf("TotalUsers = %d, want 20", stats.TotalUsers)
	}
	if stats.TotalPosts != 100 {
		t.Errorf("TotalPosts = %d, want 100", stats.TotalPosts)
	}
	if stats.TotalLikes != 250 {
		t.Errorf("TotalLikes = %d, want 250", stats.TotalLikes)
	}
	if stats.TotalComments != 120 {
		t.Errorf("TotalComments = %d, want 120", stats.TotalComments)
	}

	// Seeding again must be a no-op.
	if err := db.Seed(ctx); err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	again, err := db.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if again.TotalPosts != 100 {
		t.Errorf("second seed changed post count to %d", again.TotalPosts)
	}
}
