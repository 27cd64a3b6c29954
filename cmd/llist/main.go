package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"llist/internal/cache"
	"llist/internal/config"
	"llist/internal/logger"
	"llist/internal/script"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log := logger.NewConsole(cfg.LogLevel)

	log.Info().
		Str("script", cfg.ScriptPath).
		Int("cacheMaxEntries", cfg.CacheMaxEntries).
		Dur("cacheCleanupEvery", cfg.CacheCleanupInterval).
		Msg("llist demo starting")

	// 1) List operations, from a YAML script or the built-in scenario.
	s := script.Scenario()
	if cfg.ScriptPath != "" {
		s, err = script.Load(cfg.ScriptPath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load script")
		}
	}

	res, err := script.NewRunner(&log).Run(s)
	if err != nil {
		log.Fatal().Err(err).Ints("contents", res.Values).Msg("Script failed")
	}
	log.Info().Ints("contents", res.Values).Msg("script result")

	// 2) The same list driving an LRU cache with TTL.
	c := cache.New[string, string](cache.Config{
		MaxEntries:      cfg.CacheMaxEntries,
		CleanupInterval: cfg.CacheCleanupInterval,
		Logger:          &log,
	})
	defer func() {
		if err := c.Close(); err != nil {
			log.Error().Err(err).Msg("cache close")
		}
	}()

	_ = c.Set("a", "A", 0)
	_ = c.Set("b", "B", 0)

	// Touch "a" so "b" becomes least recently used.
	if v, ok := c.Get("a"); ok {
		log.Info().Str("value", v).Msg("GET a (moves a to the front)")
	}

	_ = c.Set("c", "C", 0)
	if _, ok := c.Get("b"); !ok {
		log.Info().Msg("GET b: missing (evicted as LRU)")
	}
	log.Info().Strs("keys", c.Keys()).Msg("keys after eviction (MRU->LRU)")

	// Never read "ttl" again; the maintenance loop should sweep it.
	_ = c.Set("ttl", "short", 200*time.Millisecond)
	log.Info().Strs("keys", c.Keys()).Msg("keys after ttl set")

	wait := time.NewTimer(2*cfg.CacheCleanupInterval + 300*time.Millisecond)
	defer wait.Stop()

	select {
	case <-ctx.Done():
		log.Info().Msg("received shutdown signal")
		return
	case <-wait.C:
	}

	log.Info().Strs("keys", c.Keys()).Msg("keys after ttl + cleanup")
	if _, ok := c.Get("ttl"); !ok {
		log.Info().Msg("GET ttl: missing (expired and removed)")
	}

	fmt.Println("Done.")
}
