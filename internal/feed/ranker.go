// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

package feed

import (
	"context"
	"sort"
	"time"

	"github.com/humdov/postfeed/internal/models"
)

// Ranker produces personalized feeds. It is stateless between calls
// and safe for concurrent use; each Rank call reads its own snapshot
// through the Repository.
type Ranker struct {
	repo Repository
	cfg  Config
	now  func() time.Time
}

// Option configures a Ranker.
type Option func(*Ranker)

// WithClock replaces the evaluation clock. Used in tests to make
// recency boosts reproducible.
func WithClock(now func() time.Time) Option {
	return func(r *Ranker) {
		r.now = now
	}
}

// NewRanker creates a Ranker reading from repo with the given
// parameters.
func NewRanker(repo Repository, cfg Config, opts ...Option) *Ranker {
	r := &Ranker{
		repo: repo,
		cfg:  cfg,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Result is the outcome of one ranking call.
type Result struct {
	// Posts is the ranked feed, most relevant first, at most limit
	// entries.
	Posts []models.FeedPost

	// ColdStart is true when the user had no tag signal and the feed
	// was ordered purely by recency.
	ColdStart bool

	// CandidateCount is how many posts were considered.
	CandidateCount int

	// ProfileTags is the number of distinct tags in the preference
	// profile. Zero on cold start.
	ProfileTags int
}

// Rank builds the user's preference profile, scores the candidate
// posts and returns them ordered by relevance. A non-positive limit
// fails with ErrInvalidLimit before any repository call. Repository
// errors, including ErrUserNotFound, are propagated unchanged.
//
// Ties are broken by creation time descending, then post ID ascending,
// so identical inputs always produce identical output.
func (r *Ranker) Rank(ctx context.Context, userID int64, limit int) (*Result, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	liked, err := r.repo.LikedPosts(ctx, userID)
	if err != nil {
		return nil, err
	}
	commented, err := r.repo.CommentedPosts(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile := BuildProfile(liked, commented, r.cfg)

	candidates, err := r.repo.CandidatePosts(ctx, userID, r.cfg.MaxCandidates)
	if err != nil {
		return nil, err
	}

	res := &Result{
		CandidateCount: len(candidates),
		ProfileTags:    len(profile),
	}

	if profile.IsEmpty() {
		res.ColdStart = true
		res.Posts = rankByRecency(candidates, limit)
		return res, nil
	}

	now := r.now()
	scored := make([]models.FeedPost, len(candidates))
	for i, post := range candidates {
		scored[i] = models.FeedPost{
			Post:  post,
			Score: Score(profile, post, now, r.cfg),
		}
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return newerFirst(scored[i].Post, scored[j].Post)
	})

	res.Posts = truncate(scored, limit)
	return res, nil
}

// rankByRecency is the cold-start path: most recent first, no scoring.
func rankByRecency(candidates []models.Post, limit int) []models.FeedPost {
	posts := make([]models.FeedPost, len(candidates))
	for i, post := range candidates {
		posts[i] = models.FeedPost{Post: post}
	}

	sort.Slice(posts, func(i, j int) bool {
		return newerFirst(posts[i].Post, posts[j].Post)
	})

	return truncate(posts, limit)
}

// newerFirst orders posts by creation time descending, post ID
// ascending on exact timestamp ties.
func newerFirst(a, b models.Post) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID < b.ID
}

func truncate(posts []models.FeedPost, limit int) []models.FeedPost {
	if len(posts) > limit {
		return posts[:limit]
	}
	return posts
}
