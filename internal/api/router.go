// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/humdov/postfeed/internal/config"
	"github.com/humdov/postfeed/internal/metrics"
	"github.com/humdov/postfeed/internal/middleware"
)

// NewRouter builds the HTTP routing table.
func NewRouter(h *Handler, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.API.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"ETag", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus scrape endpoint lives outside the versioned API so it
	// is not rate limited or counted in request metrics.
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(httprate.Limit(
			cfg.API.RateLimit,
			cfg.API.RateLimitWindow,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(func(w http.ResponseWriter, req *http.Request) {
				metrics.APIRateLimitHits.WithLabelValues(req.URL.Path).Inc()
				respondError(w, http.StatusTooManyRequests, CodeValidation, "Rate limit exceeded", nil)
			}),
		))
		r.Use(middleware.PrometheusMetrics)

		r.Get("/health", h.Health)
		r.Get("/health/live", h.HealthLive)
		r.Get("/health/ready", h.HealthReady)
		r.Get("/stats", h.Stats)

		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.CreateUser)
			r.Get("/", h.ListUsers)
			r.Get("/{userID}", h.GetUser)
			r.Get("/{userID}/likes", h.UserLikes)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Post("/", h.CreatePost)
			r.Get("/", h.ListPosts)
			r.Get("/{postID}", h.GetPost)
			r.Get("/{postID}/comments", h.PostComments)
		})

		r.Post("/likes", h.CreateLike)
		r.Delete("/likes", h.DeleteLike)
		r.Post("/comments", h.CreateComment)

		r.Get("/feed/{userID}", h.Feed)

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/popular-tags", h.AnalyticsPopularTags)
			r.Get("/top-posts", h.AnalyticsTopPosts)
			r.Get("/engagement", h.AnalyticsEngagement)
		})

		r.Get("/ws", h.WebSocket)
	})

	return r
}
