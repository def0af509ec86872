// Package config provides configuration management for the game clock exporter.
//
// This package handles loading configuration from YAML files, applying
// environment variable overrides, setting defaults, and validating the
// configuration.
//
// Configuration sources (in order of precedence):
//  1. Environment variables (highest priority)
//  2. YAML configuration file
//  3. Default values (lowest priority)
//
// Supported environment variables:
//   - GAME_CLOCK_SOURCE: Clock source kind ("local" or "remote")
//   - GAME_CLOCK_TICK_RATE: Ticks per second of game time (default: 60)
//   - GAME_CLOCK_EPOCH: RFC 3339 start time for the local clock
//   - GAME_CLOCK_REMOTE_URL: Game server clock endpoint for the remote source
//   - GAME_CLOCK_REFRESH_INTERVAL: Seconds between clock reads (minimum: 1)
//   - GAME_CLOCK_HTTP_PORT: HTTP server port (1-65535)
//   - GAME_CLOCK_LOG_LEVEL: Log level (debug, info, warn, error)
//   - GAME_CLOCK_LOG_FORMAT: Log output format (json or text)
//   - GAME_CLOCK_READ_TIMEOUT: Remote read timeout in seconds (1-60)
//
// Example configuration file (config.yaml):
//
//	source: remote
//	tick_rate: 60
//
//	remote:
//	  url: "http://gameserver:9090/clock"
//
//	refresh_interval: 5
//	http_port: 8080
//	log_level: "info"
//	log_format: "json"
//	read_timeout: 10
//
// A local clock pinned to a known start time instead:
//
//	source: local
//	local:
//	  epoch: "2026-08-01T12:00:00Z"
//
// Example usage:
//
//	cfg, err := config.Load("config.yaml")
//	if err != nil {
//		log.Fatalf("Failed to load config: %v", err)
//	}
//
//	fmt.Printf("Source: %s\n", cfg.Source)
//	fmt.Printf("Refresh interval: %d seconds\n", cfg.RefreshInterval)
package config
