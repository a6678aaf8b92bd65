// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

// Package feed implements the personalized ranking core. It builds a
// per-user tag preference profile from likes and comments, scores
// candidate posts by tag overlap plus an exponential recency boost,
// and returns a deterministically ordered feed.
//
// The package is pure: it holds no state between calls, performs no
// I/O of its own, and reads everything through the Repository
// interface. The evaluation clock is injectable so rankings are
// reproducible in tests.
package feed
