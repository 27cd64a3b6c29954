package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the demo binary's runtime configuration.
type Config struct {
	LogLevel             string
	ScriptPath           string
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
}

const (
	defaultLogLevel        = "info"
	defaultCacheMaxEntries = 2
	defaultCleanupInterval = 100 * time.Millisecond
)

// Load reads envFile (if it exists) into the process environment and then
// builds a Config from LLIST_* variables. Variables already set in the
// environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		LogLevel:   os.Getenv("LLIST_LOG_LEVEL"),
		ScriptPath: os.Getenv("LLIST_SCRIPT"),
	}

	if v := os.Getenv("LLIST_CACHE_MAX_ENTRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LLIST_CACHE_MAX_ENTRIES %q: %w", v, err)
		}
		cfg.CacheMaxEntries = n
	}
	if v := os.Getenv("LLIST_CACHE_CLEANUP_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LLIST_CACHE_CLEANUP_INTERVAL %q: %w", v, err)
		}
		cfg.CacheCleanupInterval = d
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.CacheMaxEntries == 0 {
		cfg.CacheMaxEntries = defaultCacheMaxEntries
	}
	if cfg.CacheCleanupInterval == 0 {
		cfg.CacheCleanupInterval = defaultCleanupInterval
	}
}
