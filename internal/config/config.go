package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config aggregates application configuration values.
type Config struct {
	Store   StoreConfig
	Graph   GraphConfig
	Query   QueryConfig
	Logging LoggingConfig
}

// StoreConfig points at the SQLite network store.
type StoreConfig struct {
	Path string // empty disables the store
}

// GraphConfig describes connectivity to an optional Neo4j export target.
type GraphConfig struct {
	URI            string // empty disables the export
	Database       string
	Username       string
	Password       string
	MaxConnections int
	Timeout        time.Duration
}

// QueryConfig tunes batch shortest-path queries.
type QueryConfig struct {
	Workers int
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string
	Format        string // text|json
	IncludeCaller bool
}

const (
	defaultLoggingLevel     = "info"
	defaultLoggingFormat    = "text"
	defaultGraphMaxSessions = 10
	defaultGraphTimeout     = 10 * time.Second
	defaultQueryWorkers     = 4
)

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Store: StoreConfig{
			Path: os.Getenv("NETPATH_DB"),
		},
		Graph: GraphConfig{
			URI:            os.Getenv("NETPATH_NEO4J_URI"),
			Database:       valueOrDefault("NETPATH_NEO4J_DATABASE", ""),
			Username:       os.Getenv("NETPATH_NEO4J_USERNAME"),
			Password:       os.Getenv("NETPATH_NEO4J_PASSWORD"),
			MaxConnections: parseIntWithDefault("NETPATH_NEO4J_MAX_CONNECTIONS", defaultGraphMaxSessions),
			Timeout:        defaultGraphTimeout,
		},
		Query: QueryConfig{
			Workers: parseIntWithDefault("NETPATH_WORKERS", defaultQueryWorkers),
		},
		Logging: LoggingConfig{
			Level:         valueOrDefault("NETPATH_LOG_LEVEL", defaultLoggingLevel),
			Format:        valueOrDefault("NETPATH_LOG_FORMAT", defaultLoggingFormat),
			IncludeCaller: parseBoolWithDefault("NETPATH_LOG_INCLUDE_CALLER", false),
		},
	}

	if v := os.Getenv("NETPATH_NEO4J_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Graph.Timeout = d
		} else {
			return Config{}, fmt.Errorf("invalid NETPATH_NEO4J_TIMEOUT: %w", err)
		}
	}

	if cfg.Query.Workers <= 0 {
		return Config{}, fmt.Errorf("NETPATH_WORKERS must be positive, got %d", cfg.Query.Workers)
	}

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}

func parseIntWithDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			return val
		}
	}
	return fallback
}
