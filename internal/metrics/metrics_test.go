// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		endpoint   string
		statusCode string
		duration   time.Duration
	}{
		{"feed request", "GET", "/api/v1/feed/1", "200", 12 * time.Millisecond},
		{"create post", "POST", "/api/v1/posts", "201", 8 * time.Millisecond},
		{"validation failure", "POST", "/api/v1/likes", "400", 1 * time.Millisecond},
		{"unknown user", "GET", "/api/v1/feed/999", "404", 3 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues(tt.method, tt.endpoint, tt.statusCode))
			RecordAPIRequest(tt.method, tt.endpoint, tt.statusCode, tt.duration)
			after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues(tt.method, tt.endpoint, tt.statusCode))
			if after != before+1 {
				t.Errorf("counter = %g, want %g", after, before+1)
			}
		})
	}
}

func TestTrackActiveRequest(t *testing.T) {
	start := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != start+2 {
		t.Errorf("active = %g, want %g", got, start+2)
	}

	TrackActiveRequest(false)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != start {
		t.Errorf("active = %g, want %g", got, start)
	}
}

func TestRecordDBQuery(t *testing.T) {
	errBefore := testutil.ToFloat64(DBQueryErrors.WithLabelValues("INSERT", "likes"))

	RecordDBQuery("SELECT", "posts", 2*time.Millisecond, nil)
	RecordDBQuery("INSERT", "likes", 5*time.Millisecond, errors.New("constraint failed"))

	if got := testutil.ToFloat64(DBQueryErrors.WithLabelValues("INSERT", "likes")); got != errBefore+1 {
		t.Errorf("error counter = %g, want %g", got, errBefore+1)
	}
	if got := testutil.ToFloat64(DBQueryErrors.WithLabelValues("SELECT", "posts")); got != 0 {
		t.Errorf("successful query incremented error counter: %g", got)
	}
}

func TestRecordFeedRequest(t *testing.T) {
	personalized := testutil.ToFloat64(FeedRequestsTotal.WithLabelValues("personalized"))
	coldStart := testutil.ToFloat64(FeedRequestsTotal.WithLabelValues("cold_start"))

	RecordFeedRequest("personalized", 3*time.Millisecond, 42, 5)
	RecordFeedRequest("cold_start", 1*time.Millisecond, 42, 0)
	RecordFeedRequest("error", 0, 0, 0)

	if got := testutil.ToFloat64(FeedRequestsTotal.WithLabelValues("personalized")); got != personalized+1 {
		t.Errorf("personalized = %g, want %g", got, personalized+1)
	}
	if got := testutil.ToFloat64(FeedRequestsTotal.WithLabelValues("cold_start")); got != coldStart+1 {
		t.Errorf("cold_start = %g, want %g", got, coldStart+1)
	}
}

func TestRecordEventPublished(t *testing.T) {
	before := testutil.ToFloat64(EventsPublished.WithLabelValues("post.liked"))
	RecordEventPublished("post.liked")
	if got := testutil.ToFloat64(EventsPublished.WithLabelValues("post.liked")); got != before+1 {
		t.Errorf("counter = %g, want %g", got, before+1)
	}
}

// TestMetricGathering verifies the collectors pass the registry linter.
func TestMetricGathering(t *testing.T) {
	RecordAPIRequest("GET", "/api/v1/feed/1", "200", time.Millisecond)
	RecordFeedRequest("personalized", time.Millisecond, 10, 3)

	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Fatalf("GatherAndLint: %v", err)
	}
	for _, p := range problems {
		t.Errorf("lint problem for %s: %s", p.Metric, p.Text)
	}
}
