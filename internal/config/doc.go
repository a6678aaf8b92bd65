// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

// Package config loads application configuration from defaults, an
// optional YAML file, and environment variables, in that order. Later
// layers override earlier ones.
package config
