// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

package events

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Topic is the single pub/sub topic interaction events flow on.
const Topic = "postfeed.interactions"

// Type identifies what happened.
type Type string

const (
	TypePostCreated   Type = "post.created"
	TypePostLiked     Type = "post.liked"
	TypePostUnliked   Type = "post.unliked"
	TypePostCommented Type = "post.commented"
)

// Event is one interaction, as broadcast to activity subscribers.
type Event struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	UserID    int64     `json:"user_id"`
	PostID    int64     `json:"post_id"`
	Timestamp time.Time `json:"timestamp"`
}

// New builds an event with a fresh ID and the current time.
func New(t Type, userID, postID int64) Event {
	return Event{
		ID:        uuid.New().String(),
		Type:      t,
		UserID:    userID,
		PostID:    postID,
		Timestamp: time.Now().UTC(),
	}
}

// Marshal encodes the event for the wire.
func (e Event) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

// Unmarshal decodes an event payload.
func Unmarshal(data []byte) (Event, error) {
	var e Event
	err := json.Unmarshal(data, &e)
	return e, err
}
