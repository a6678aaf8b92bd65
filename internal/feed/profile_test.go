// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

package feed

import (
	"math"
	"testing"
	"time"

	"github.com/humdov/postfeed/internal/models"
)

func tagged(id int64, tags ...string) models.Post {
	return models.Post{ID: id, Tags: tags, CreatedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)}
}

func TestBuildProfile(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name      string
		liked     []models.Post
		commented []models.Post
		want      map[string]float64
	}{
		{
			name: "no interactions yields empty profile",
			want: map[string]float64{},
		},
		{
			name:  "single like single tag",
			liked: []models.Post{tagged(1, "tech")},
			want:  map[string]float64{"tech": 1.0},
		},
		{
			name:  "like weights split across tags",
			liked: []models.Post{tagged(1, "tech", "science")},
			want:  map[string]float64{"tech": 0.5, "science": 0.5},
		},
		{
			name:      "comment weighs half a like",
			liked:     []models.Post{tagged(1, "tech")},
			commented: []models.Post{tagged(2, "sports")},
			want:      map[string]float64{"tech": 1.0 / 1.5, "sports": 0.5 / 1.5},
		},
		{
			name:      "liked and commented post contributes both weights",
			liked:     []models.Post{tagged(1, "x")},
			commented: []models.Post{tagged(1, "x")},
			want:      map[string]float64{"x": 1.0},
		},
		{
			name:  "tag accumulates across posts",
			liked: []models.Post{tagged(1, "tech"), tagged(2, "tech"), tagged(3, "food")},
			want:  map[string]float64{"tech": 2.0 / 3.0, "food": 1.0 / 3.0},
		},
		{
			name:      "untagged interactions yield empty profile",
			liked:     []models.Post{tagged(1)},
			commented: []models.Post{tagged(2)},
			want:      map[string]float64{},
		},
		{
			name:  "untagged post contributes nothing alongside tagged",
			liked: []models.Post{tagged(1, "tech"), tagged(2)},
			want:  map[string]float64{"tech": 1.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildProfile(tt.liked, tt.commented, cfg)
			if len(got) != len(tt.want) {
				t.Fatalf("profile has %d tags, want %d: %v", len(got), len(tt.want), got)
			}
			for tag, want := range tt.want {
				if math.Abs(got.Weight(tag)-want) > 1e-9 {
					t.Errorf("weight[%s] = %g, want %g", tag, got.Weight(tag), want)
				}
			}
		})
	}
}

func TestBuildProfileNormalization(t *testing.T) {
	liked := []models.Post{
		tagged(1, "tech", "science"),
		tagged(2, "tech"),
		tagged(3, "food", "travel", "health"),
	}
	commented := []models.Post{
		tagged(4, "tech", "gaming"),
		tagged(5, "music"),
	}

	profile := BuildProfile(liked, commented, DefaultConfig())
	if profile.IsEmpty() {
		t.Fatal("expected non-empty profile")
	}

	var sum float64
	for _, w := range profile {
		if w < 0 || w > 1 {
			t.Errorf("weight %g outside [0,1]", w)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("weights sum to %g, want 1.0", sum)
	}
}

func TestBuildProfileAccumulatedWeight(t *testing.T) {
	// A like and a comment on tag "x" accumulate 1.5 before
	// normalization. With a second tag "y" liked once, the normalized
	// split must be 1.5/2.5 vs 1.0/2.5.
	liked := []models.Post{tagged(1, "x"), tagged(3, "y")}
	commented := []models.Post{tagged(2, "x")}

	profile := BuildProfile(liked, commented, DefaultConfig())
	if got, want := profile.Weight("x"), 1.5/2.5; math.Abs(got-want) > 1e-9 {
		t.Errorf("weight[x] = %g, want %g", got, want)
	}
	if got, want := profile.Weight("y"), 1.0/2.5; math.Abs(got-want) > 1e-9 {
		t.Errorf("weight[y] = %g, want %g", got, want)
	}
}

func TestProfileWeightMissingTag(t *testing.T) {
	profile := BuildProfile([]models.Post{tagged(1, "tech")}, nil, DefaultConfig())
	if got := profile.Weight("sports"); got != 0 {
		t.Errorf("weight for absent tag = %g, want 0", got)
	}
}
