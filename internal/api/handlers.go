// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/humdov/postfeed/internal/config"
	"github.com/humdov/postfeed/internal/database"
	"github.com/humdov/postfeed/internal/events"
	"github.com/humdov/postfeed/internal/feed"
	"github.com/humdov/postfeed/internal/logging"
	"github.com/humdov/postfeed/internal/metrics"
	"github.com/humdov/postfeed/internal/models"
	"github.com/humdov/postfeed/internal/websocket"
)

// Handler carries the collaborators the endpoints need.
type Handler struct {
	db      *database.DB
	ranker  *feed.Ranker
	bus     *events.Bus
	hub     *websocket.Hub
	cfg     *config.Config
	version string
}

// NewHandler wires the endpoint handlers.
func NewHandler(db *database.DB, ranker *feed.Ranker, bus *events.Bus, hub *websocket.Hub, cfg *config.Config, version string) *Handler {
	return &Handler{
		db:      db,
		ranker:  ranker,
		bus:     bus,
		hub:     hub,
		cfg:     cfg,
		version: version,
	}
}

// Health reports liveness and the database connection state.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		respondError(w, http.StatusServiceUnavailable, CodeDatabaseError, "Database unreachable", err)
		return
	}
	respondSuccess(w, http.StatusOK, models.HealthResponse{Status: "ok", Version: h.version}, 0)
}

// HealthLive answers liveness probes: the process is up.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, models.HealthResponse{Status: "alive"}, 0)
}

// HealthReady answers readiness probes: the database is reachable.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		respondError(w, http.StatusServiceUnavailable, CodeDatabaseError, "Database unreachable", err)
		return
	}
	respondSuccess(w, http.StatusOK, models.HealthResponse{Status: "ready"}, 0)
}

// Stats returns corpus totals.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	stats, err := h.db.Stats(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, stats, time.Since(start))
}

// CreateUser handles POST /api/v1/users.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := decodeBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, CodeValidation, "Invalid JSON body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	start := time.Now()
	user, err := h.db.CreateUser(r.Context(), req.Username)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, user, time.Since(start))
}

// ListUsers handles GET /api/v1/users.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	users, err := h.db.ListUsers(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, users, time.Since(start))
}

// GetUser handles GET /api/v1/users/{userID}.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := urlID(r, "userID")
	if err != nil {
		respondError(w, http.StatusBadRequest, CodeValidation, "Invalid user ID", nil)
		return
	}

	start := time.Now()
	user, err := h.db.GetUser(r.Context(), userID)
	if errors.Is(err, database.ErrNotFound) {
		respondError(w, http.StatusNotFound, CodeUserNotFound, "User not found", nil)
		return
	}
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, user, time.Since(start))
}

// CreatePost handles POST /api/v1/posts.
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePostRequest
	if err := decodeBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, CodeValidation, "Invalid JSON body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	start := time.Now()
	post, err := h.db.CreatePost(r.Context(), req.Title, req.Content, req.CreatorID, req.Tags)
	if errors.Is(err, database.ErrNotFound) {
		respondError(w, http.StatusNotFound, CodeUserNotFound, "Creator not found", nil)
		return
	}
	if err != nil {
		respondDomainError(w, err)
		return
	}

	h.bus.Publish(r.Context(), events.New(events.TypePostCreated, post.CreatorID, post.ID))
	respondSuccess(w, http.StatusCreated, post, time.Since(start))
}

// ListPosts handles GET /api/v1/posts with limit/offset pagination.
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	limit := getIntParam(r, "limit", h.cfg.API.DefaultPageSize)
	offset := getIntParam(r, "offset", 0)
	if limit < 1 || limit > h.cfg.API.MaxPageSize || offset < 0 {
		respondError(w, http.StatusBadRequest, CodeValidation, "Invalid pagination parameters", nil)
		return
	}

	start := time.Now()
	posts, err := h.db.ListPosts(r.Context(), limit, offset)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, posts, time.Since(start))
}

// GetPost handles GET /api/v1/posts/{postID}.
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, err := urlID(r, "postID")
	if err != nil {
		respondError(w, http.StatusBadRequest, CodeValidation, "Invalid post ID", nil)
		return
	}

	start := time.Now()
	post, err := h.db.GetPost(r.Context(), postID)
	if errors.Is(err, database.ErrNotFound) {
		respondError(w, http.StatusNotFound, CodePostNotFound, "Post not found", nil)
		return
	}
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, post, time.Since(start))
}

// PostComments handles GET /api/v1/posts/{postID}/comments.
func (h *Handler) PostComments(w http.ResponseWriter, r *http.Request) {
	postID, err := urlID(r, "postID")
	if err != nil {
		respondError(w, http.StatusBadRequest, CodeValidation, "Invalid post ID", nil)
		return
	}

	start := time.Now()
	if _, err := h.db.GetPost(r.Context(), postID); errors.Is(err, database.ErrNotFound) {
		respondError(w, http.StatusNotFound, CodePostNotFound, "Post not found", nil)
		return
	} else if err != nil {
		respondDomainError(w, err)
		return
	}

	comments, err := h.db.CommentsByPost(r.Context(), postID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, comments, time.Since(start))
}

// CreateLike handles POST /api/v1/likes.
func (h *Handler) CreateLike(w http.ResponseWriter, r *http.Request) {
	var req models.LikeRequest
	if err := decodeBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, CodeValidation, "Invalid JSON body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	start := time.Now()
	if _, err := h.db.CreateLike(r.Context(), req.UserID, req.PostID); err != nil {
		respondDomainError(w, err)
		return
	}

	h.bus.Publish(r.Context(), events.New(events.TypePostLiked, req.UserID, req.PostID))
	respondSuccess(w, http.StatusCreated, models.MessageResponse{Message: "liked"}, time.Since(start))
}

// DeleteLike handles DELETE /api/v1/likes.
func (h *Handler) DeleteLike(w http.ResponseWriter, r *http.Request) {
	var req models.LikeRequest
	if err := decodeBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, CodeValidation, "Invalid JSON body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	start := time.Now()
	if err := h.db.DeleteLike(r.Context(), req.UserID, req.PostID); err != nil {
		respondDomainError(w, err)
		return
	}

	h.bus.Publish(r.Context(), events.New(events.TypePostUnliked, req.UserID, req.PostID))
	respondSuccess(w, http.StatusOK, models.MessageResponse{Message: "unliked"}, time.Since(start))
}

// UserLikes handles GET /api/v1/users/{userID}/likes.
func (h *Handler) UserLikes(w http.ResponseWriter, r *http.Request) {
	userID, err := urlID(r, "userID")
	if err != nil {
		respondError(w, http.StatusBadRequest, CodeValidation, "Invalid user ID", nil)
		return
	}

	start := time.Now()
	if _, err := h.db.GetUser(r.Context(), userID); errors.Is(err, database.ErrNotFound) {
		respondError(w, http.StatusNotFound, CodeUserNotFound, "User not found", nil)
		return
	} else if err != nil {
		respondDomainError(w, err)
		return
	}

	likes, err := h.db.LikesByUser(r.Context(), userID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, likes, time.Since(start))
}

// CreateComment handles POST /api/v1/comments.
func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCommentRequest
	if err := decodeBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, CodeValidation, "Invalid JSON body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	start := time.Now()
	comment, err := h.db.CreateComment(r.Context(), req.UserID, req.PostID, req.Content)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	h.bus.Publish(r.Context(), events.New(events.TypePostCommented, req.UserID, req.PostID))
	respondSuccess(w, http.StatusCreated, comment, time.Since(start))
}

// Feed handles GET /api/v1/feed/{userID}. The limit query parameter
// defaults to the configured feed size; an explicit non-positive value
// is rejected rather than silently defaulted.
func (h *Handler) Feed(w http.ResponseWriter, r *http.Request) {
	userID, err := urlID(r, "userID")
	if err != nil {
		respondError(w, http.StatusBadRequest, CodeValidation, "Invalid user ID", nil)
		return
	}

	limit := h.cfg.Feed.DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit = getIntParam(r, "limit", -1)
	}

	start := time.Now()
	result, err := h.ranker.Rank(r.Context(), userID, limit)
	if err != nil {
		metrics.RecordFeedRequest("error", 0, 0, 0)
		respondDomainError(w, err)
		return
	}
	elapsed := time.Since(start)

	outcome := "personalized"
	if result.ColdStart {
		outcome = "cold_start"
	}
	metrics.RecordFeedRequest(outcome, elapsed, result.CandidateCount, result.ProfileTags)

	logging.Ctx(r.Context()).Debug().
		Int64("user_id", userID).
		Str("outcome", outcome).
		Int("posts", len(result.Posts)).
		Dur("elapsed", elapsed).
		Msg("Feed ranked")

	respondSuccess(w, http.StatusOK, result.Posts, elapsed)
}

// AnalyticsPopularTags handles GET /api/v1/analytics/popular-tags.
func (h *Handler) AnalyticsPopularTags(w http.ResponseWriter, r *http.Request) {
	limit := getIntParam(r, "limit", 10)
	if limit < 1 || limit > h.cfg.API.MaxPageSize {
		respondError(w, http.StatusBadRequest, CodeValidation, "Invalid limit", nil)
		return
	}

	start := time.Now()
	tags, err := h.db.PopularTags(r.Context(), limit, h.cfg.Feed.LikeWeight, h.cfg.Feed.CommentWeight)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, tags, time.Since(start))
}

// AnalyticsTopPosts handles GET /api/v1/analytics/top-posts.
func (h *Handler) AnalyticsTopPosts(w http.ResponseWriter, r *http.Request) {
	limit := getIntParam(r, "limit", 10)
	if limit < 1 || limit > h.cfg.API.MaxPageSize {
		respondError(w, http.StatusBadRequest, CodeValidation, "Invalid limit", nil)
		return
	}

	start := time.Now()
	posts, err := h.db.TopPosts(r.Context(), limit)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, posts, time.Since(start))
}

// AnalyticsEngagement handles GET /api/v1/analytics/engagement.
func (h *Handler) AnalyticsEngagement(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	stats, err := h.db.Engagement(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, stats, time.Since(start))
}

// WebSocket handles GET /api/v1/ws, the activity stream.
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	websocket.ServeWS(h.hub, w, r)
}
