// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "POSTFEED_"

// Well-known short env names kept for operator convenience. Anything
// else goes through the POSTFEED_SECTION_KEY convention.
var envAliases = map[string]string{
	"HTTP_HOST": "server.host",
	"HTTP_PORT": "server.port",
	"DB_PATH":   "database.path",
	"SEED_DATA": "database.seed_demo_data",
	"LOG_LEVEL": "logging.level",
}

// Load builds the configuration from defaults, then an optional YAML
// file, then environment variables. path may be empty, in which case
// the usual locations are searched; a missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}
	for alias, key := range envAliases {
		if v, ok := os.LookupEnv(alias); ok {
			if err := k.Set(key, v); err != nil {
				return nil, fmt.Errorf("applying %s: %w", alias, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// envTransform maps POSTFEED_SERVER_PORT to server.port. Only the
// first underscore separates the section from the key, so
// POSTFEED_FEED_LIKE_WEIGHT becomes feed.like_weight.
func envTransform(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.Replace(s, "_", ".", 1)
}

// findConfigFile checks the standard locations for a config file and
// returns the first that exists.
func findConfigFile() string {
	for _, p := range []string{"config.yaml", "config.yml", "/etc/postfeed/config.yaml"} {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
