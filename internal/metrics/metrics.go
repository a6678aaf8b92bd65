// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

// Package metrics defines the Prometheus collectors for the service:
// HTTP request throughput and latency, SQLite query performance, feed
// ranking behaviour, event bus activity and WebSocket connections.
// All collectors are registered with the default registry via promauto
// and exposed on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sqlite_query_duration_seconds",
			Help:    "Duration of SQLite queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sqlite_query_errors_total",
			Help: "Total number of SQLite query errors",
		},
		[]string{"operation", "table"},
	)

	// Feed Ranking Metrics
	FeedRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_requests_total",
			Help: "Total number of feed ranking requests",
		},
		[]string{"outcome"}, // "personalized", "cold_start", "error"
	)

	FeedRankDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "feed_rank_duration_seconds",
			Help:    "Time spent building the profile and ranking candidates",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
	)

	FeedCandidateCount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "feed_candidate_posts",
			Help:    "Number of candidate posts considered per feed request",
			Buckets: []float64{1, 5, 10, 20, 50, 100},
		},
	)

	FeedProfileSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "feed_profile_tags",
			Help:    "Number of distinct tags in the user preference profile",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		},
	)

	// Event Bus Metrics
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_published_total",
			Help: "Total number of interaction events published",
		},
		[]string{"event_type"}, // "post.created", "post.liked", "post.unliked", "post.commented"
	)

	EventsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "events_dropped_total",
			Help: "Total number of events dropped due to publish failures",
		},
	)

	// WebSocket Metrics
	WebSocketConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connections",
			Help: "Current number of connected WebSocket clients",
		},
	)

	WebSocketMessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_messages_sent_total",
			Help: "Total number of messages broadcast to WebSocket clients",
		},
	)

	WebSocketSlowClientDrops = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_slow_client_drops_total",
			Help: "Total number of clients disconnected because their send buffer filled",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordDBQuery records a database query metric
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table).Inc()
	}
}

// RecordFeedRequest records the outcome of one feed ranking request.
// outcome is "personalized", "cold_start" or "error".
func RecordFeedRequest(outcome string, duration time.Duration, candidates, profileTags int) {
	FeedRequestsTotal.WithLabelValues(outcome).Inc()
	if outcome == "error" {
		return
	}
	FeedRankDuration.Observe(duration.Seconds())
	FeedCandidateCount.Observe(float64(candidates))
	FeedProfileSize.Observe(float64(profileTags))
}

// RecordEventPublished records a published interaction event
func RecordEventPublished(eventType string) {
	EventsPublished.WithLabelValues(eventType).Inc()
}
