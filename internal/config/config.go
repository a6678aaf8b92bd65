// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	API      APIConfig      `koanf:"api"`
	Feed     FeedConfig     `koanf:"feed"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// DatabaseConfig holds SQLite settings.
type DatabaseConfig struct {
	Path         string        `koanf:"path"`
	BusyTimeout  time.Duration `koanf:"busy_timeout"`
	MaxOpenConns int           `koanf:"max_open_conns"`
	SeedDemoData bool          `koanf:"seed_demo_data"`
}

// APIConfig holds request handling settings.
type APIConfig struct {
	DefaultPageSize int           `koanf:"default_page_size"`
	MaxPageSize     int           `koanf:"max_page_size"`
	RateLimit       int           `koanf:"rate_limit"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
	CORSOrigins     []string      `koanf:"cors_origins"`
}

// FeedConfig holds the ranking parameters. The defaults are the
// canonical weights; overriding them changes scoring for every user.
type FeedConfig struct {
	LikeWeight    float64 `koanf:"like_weight"`
	CommentWeight float64 `koanf:"comment_weight"`
	DecayRate     float64 `koanf:"decay_rate"`
	DefaultLimit  int     `koanf:"default_limit"`
	MaxCandidates int     `koanf:"max_candidates"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Default returns the built-in configuration used when no file or
// environment overrides are present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Path:         "data/postfeed.db",
			BusyTimeout:  5 * time.Second,
			MaxOpenConns: 1,
			SeedDemoData: false,
		},
		API: APIConfig{
			DefaultPageSize: 50,
			MaxPageSize:     200,
			RateLimit:       100,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Feed: FeedConfig{
			LikeWeight:    1.0,
			CommentWeight: 0.5,
			DecayRate:     0.01,
			DefaultLimit:  20,
			MaxCandidates: 100,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Validate checks the configuration for values that would break the
// service at runtime.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if c.API.DefaultPageSize < 1 {
		return fmt.Errorf("api.default_page_size must be positive, got %d", c.API.DefaultPageSize)
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("api.max_page_size (%d) must be >= api.default_page_size (%d)",
			c.API.MaxPageSize, c.API.DefaultPageSize)
	}
	if c.Feed.LikeWeight <= 0 {
		return fmt.Errorf("feed.like_weight must be positive, got %g", c.Feed.LikeWeight)
	}
	if c.Feed.CommentWeight < 0 {
		return fmt.Errorf("feed.comment_weight must not be negative, got %g", c.Feed.CommentWeight)
	}
	if c.Feed.DecayRate < 0 {
		return fmt.Errorf("feed.decay_rate must not be negative, got %g", c.Feed.DecayRate)
	}
	if c.Feed.DefaultLimit < 1 {
		return fmt.Errorf("feed.default_limit must be positive, got %d", c.Feed.DefaultLimit)
	}
	if c.Feed.MaxCandidates < c.Feed.DefaultLimit {
		return fmt.Errorf("feed.max_candidates (%d) must be >= feed.default_limit (%d)",
			c.Feed.MaxCandidates, c.Feed.DefaultLimit)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

// Addr returns the host:port to bind the HTTP listener on.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
