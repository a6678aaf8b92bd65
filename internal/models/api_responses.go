// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

package models

import (
	"time"
)

// APIResponse is the standardized response wrapper used by all HTTP
// endpoints. It provides a consistent structure for both successful and
// error responses, with metadata for observability.
//
// Status field values:
//   - "success": Request completed, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": [{"id": 3, "title": "...", "score": 1.87}],
//	  "metadata": {"timestamp": "2026-08-29T12:00:00Z", "query_time_ms": 4}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {"code": "USER_NOT_FOUND", "message": "User not found"},
//	  "metadata": {"timestamp": "2026-08-29T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
// QueryTimeMS is the storage query time in milliseconds, omitted when no
// query was executed.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError represents structured error details in an error response.
//
// Common error codes:
//   - VALIDATION_ERROR: Invalid input parameters
//   - INVALID_LIMIT: Non-positive feed limit
//   - NOT_FOUND / USER_NOT_FOUND / POST_NOT_FOUND: Resource doesn't exist
//   - DUPLICATE: Uniqueness constraint violated (username, like)
//   - DATABASE_ERROR: Storage failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// MessageResponse is the minimal acknowledgement body used by the like
// endpoints ("liked" / "unliked").
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the health check response body.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// Stats summarizes corpus totals for the dashboard endpoint.
type Stats struct {
	TotalUsers    int64 `json:"total_users"`
	TotalPosts    int64 `json:"total_posts"`
	TotalLikes    int64 `json:"total_likes"`
	TotalComments int64 `json:"total_comments"`
	TotalTags     int64 `json:"total_tags"`
}

// TagActivity is one row of the popular-tags analytics response.
// Weight is the like/comment weighted interaction count for the tag.
type TagActivity struct {
	Tag      string  `json:"tag"`
	Likes    int64   `json:"likes"`
	Comments int64   `json:"comments"`
	Weight   float64 `json:"weight"`
}

// PostEngagement is one row of the top-posts analytics response.
type PostEngagement struct {
	PostID   int64  `json:"post_id"`
	Title    string `json:"title"`
	Likes    int64  `json:"likes"`
	Comments int64  `json:"comments"`
}

// EngagementStats summarizes interaction activity across the corpus.
type EngagementStats struct {
	ActiveUsers      int64   `json:"active_users"`
	LikesPerUser     float64 `json:"likes_per_user"`
	CommentsPerUser  float64 `json:"comments_per_user"`
	PostsWithoutTags int64   `json:"posts_without_tags"`
}
