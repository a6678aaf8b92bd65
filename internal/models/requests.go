// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

package models

// CreateUserRequest is the body of POST /api/v1/users.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=1,max=64,username"`
}

// CreatePostRequest is the body of POST /api/v1/posts.
// Tags are optional; unknown tags are created on the fly.
type CreatePostRequest struct {
	Title     string   `json:"title" validate:"required,min=1,max=256"`
	Content   string   `json:"content" validate:"max=65536"`
	CreatorID int64    `json:"creator_id" validate:"required,gt=0"`
	Tags      []string `json:"tags" validate:"max=16,dive,min=1,max=64"`
}

// LikeRequest is the body of POST /api/v1/likes and DELETE /api/v1/likes.
type LikeRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
	PostID int64 `json:"post_id" validate:"required,gt=0"`
}

// CreateCommentRequest is the body of POST /api/v1/comments.
type CreateCommentRequest struct {
	UserID  int64  `json:"user_id" validate:"required,gt=0"`
	PostID  int64  `json:"post_id" validate:"required,gt=0"`
	Content string `json:"content" validate:"required,min=1,max=8192"`
}
