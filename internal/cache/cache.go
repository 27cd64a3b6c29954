package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"llist/internal/list"
)

// Config controls cache capacity and maintenance behavior.
//
//   - MaxEntries <= 0 means "unbounded" (no LRU eviction)
//   - CleanupInterval <= 0 disables background cleanup (lazy expiration still works)
//   - a nil Logger means zerolog.Nop()
type Config struct {
	MaxEntries      int
	CleanupInterval time.Duration
	Logger          *zerolog.Logger
}

// Cache is a concurrency-safe in-memory cache with TTL and LRU eviction.
//
// A map gives O(1) key lookup to an iterator into order; order keeps recency
// with the most recently used entry at the front.
type Cache[K comparable, V any] struct {
	mu sync.RWMutex

	maxEntries int
	items      map[K]list.Iterator[*entry[K, V]]
	order      *list.List[*entry[K, V]]

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	cleanupEvery time.Duration
	closed       bool
	log          zerolog.Logger
}

// entry keeps its key because eviction starts from the back of the list.
type entry[K comparable, V any] struct {
	key       K
	value     V
	expiresAt time.Time
	hasExpiry bool
}

func (e *entry[K, V]) expired(now time.Time) bool {
	return e.hasExpiry && !e.expiresAt.After(now)
}

var ErrClosed = errors.New("cache is closed")

// New constructs a cache and starts background maintenance (if enabled).
func New[K comparable, V any](cfg Config) *Cache[K, V] {
	ctx, cancel := context.WithCancel(context.Background())

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = cfg.Logger.With().Str("component", "cache").Logger()
	}

	c := &Cache[K, V]{
		maxEntries:   cfg.MaxEntries,
		items:        make(map[K]list.Iterator[*entry[K, V]]),
		order:        list.New[*entry[K, V]](),
		ctx:          ctx,
		cancel:       cancel,
		cleanupEvery: cfg.CleanupInterval,
		log:          logger,
	}

	if c.cleanupEvery > 0 {
		c.wg.Add(1)
		go c.expiryLoop()
	}

	return c
}

// Close stops the maintenance goroutine, releases the recency list and
// prevents further mutation. Close is safe to call multiple times.
func (c *Cache[K, V]) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	cancel := c.cancel
	c.mu.Unlock()

	// Cancel outside the lock so the loop can finish a pending sweep.
	cancel()
	c.wg.Wait()

	c.mu.Lock()
	c.order.Release()
	clear(c.items)
	c.mu.Unlock()
	return nil
}

// Set writes or overwrites key. ttl <= 0 means no expiration.
func (c *Cache[K, V]) Set(key K, value V, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}

	now := time.Now()

	var expiresAt time.Time
	hasExpiry := ttl > 0
	if hasExpiry {
		expiresAt = now.Add(ttl)
	}

	if it, ok := c.items[key]; ok {
		e := it.Value()
		e.value = value
		e.hasExpiry = hasExpiry
		e.expiresAt = expiresAt

		// Updating counts as use.
		c.order.MoveToFront(it)
		c.evictIfNeededLocked(now)
		return nil
	}

	c.items[key] = c.order.PushFront(&entry[K, V]{
		key:       key,
		value:     value,
		hasExpiry: hasExpiry,
		expiresAt: expiresAt,
	})

	c.evictIfNeededLocked(now)
	return nil
}

// Get reads key, removing it instead if it has expired.
//
// The lookup runs under RLock; a hit then upgrades to the write lock to move
// the entry to the front, re-checking because the key may have gone in between.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	var zero V
	now := time.Now()

	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		return zero, false
	}
	_, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return zero, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	it, ok := c.items[key]
	if !ok {
		return zero, false
	}
	e := it.Value()
	if e.expired(now) {
		c.deleteLocked(key)
		return zero, false
	}

	c.order.MoveToFront(it)
	return e.value, true
}

// Delete removes key if present.
func (c *Cache[K, V]) Delete(key K) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}

	c.deleteLocked(key)
	return nil
}

// Len returns the number of stored entries, including expired ones not yet swept.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.order.Len()
}

// Keys returns keys from most to least recently used.
func (c *Cache[K, V]) Keys() []K {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]K, 0, c.order.Len())
	for _, e := range c.order.All() {
		out = append(out, e.key)
	}
	return out
}

func (c *Cache[K, V]) evictIfNeededLocked(now time.Time) {
	if c.maxEntries <= 0 {
		return
	}

	// Reclaim expired entries before evicting live ones.
	c.deleteExpiredLocked(now)

	for c.order.Len() > c.maxEntries {
		last := c.order.End()
		last.Prev()
		if last.AtEnd() {
			return
		}
		key := last.Value().key
		c.deleteLocked(key)
		c.log.Debug().Interface("key", key).Msg("evicted least recently used")
	}
}

func (c *Cache[K, V]) deleteLocked(key K) {
	it, ok := c.items[key]
	if !ok {
		return
	}
	delete(c.items, key)
	c.order.Erase(it)
}

// deleteExpiredLocked walks the recency list once, erasing expired entries in place.
func (c *Cache[K, V]) deleteExpiredLocked(now time.Time) int {
	removed := 0
	for it := c.order.Begin(); !it.AtEnd(); {
		e := it.Value()
		if !e.expired(now) {
			it.Next()
			continue
		}
		delete(c.items, e.key)
		it = c.order.Erase(it)
		removed++
	}
	return removed
}
