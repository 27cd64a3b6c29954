package cache

import (
	"errors"
	"slices"
	"testing"
	"time"
)

func TestLRUEviction(t *testing.T) {
	c := New[string, []byte](Config{MaxEntries: 2, CleanupInterval: 0})
	defer c.Close()

	if err := c.Set("a", []byte("A"), 0); err != nil {
		t.Fatalf("set a: %v", err)
	}
	if err := c.Set("b", []byte("B"), 0); err != nil {
		t.Fatalf("set b: %v", err)
	}

	// Touch a so b becomes LRU.
	if _, ok := c.Get("a"); !ok {
		t.Fatalf("expected a to exist")
	}

	if err := c.Set("c", []byte("C"), 0); err != nil {
		t.Fatalf("set c: %v", err)
	}

	if _, ok := c.Get("b"); ok {
		t.Fatalf("expected b to be evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Fatalf("expected a to remain")
	}
	if _, ok := c.Get("c"); !ok {
		t.Fatalf("expected c to exist")
	}
}

func TestKeysFollowRecency(t *testing.T) {
	c := New[int, string](Config{})
	defer c.Close()

	for i := 1; i <= 3; i++ {
		if err := c.Set(i, "v", 0); err != nil {
			t.Fatalf("set %d: %v", i, err)
		}
	}
	if got := c.Keys(); !slices.Equal(got, []int{3, 2, 1}) {
		t.Fatalf("keys: got %v", got)
	}

	// Overwrite counts as use.
	if err := c.Set(1, "w", 0); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if got := c.Keys(); !slices.Equal(got, []int{1, 3, 2}) {
		t.Fatalf("keys after overwrite: got %v", got)
	}
	if v, _ := c.Get(1); v != "w" {
		t.Fatalf("expected overwritten value, got %q", v)
	}

	if err := c.Delete(3); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := c.Keys(); !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("keys after delete: got %v", got)
	}
	if c.Len() != 2 {
		t.Fatalf("len: got %d", c.Len())
	}
}

func TestTTL_LazyExpirationOnGet(t *testing.T) {
	c := New[string, string](Config{MaxEntries: 10, CleanupInterval: 0})
	defer c.Close()

	if err := c.Set("k", "v", 30*time.Millisecond); err != nil {
		t.Fatalf("set: %v", err)
	}

	if _, ok := c.Get("k"); !ok {
		t.Fatalf("expected k to exist before expiry")
	}

	time.Sleep(80 * time.Millisecond)

	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected k to be expired and removed on get")
	}
	if c.Len() != 0 {
		t.Fatalf("expected expired entry to be gone, len=%d", c.Len())
	}
}

func TestTTL_ExpiredEntriesGoBeforeLiveOnes(t *testing.T) {
	c := New[string, int](Config{MaxEntries: 2})
	defer c.Close()

	_ = c.Set("short", 1, 10*time.Millisecond)
	_ = c.Set("long", 2, 0)
	time.Sleep(30 * time.Millisecond)
	_ = c.Set("new", 3, 0)

	if got := c.Keys(); !slices.Equal(got, []string{"new", "long"}) {
		t.Fatalf("keys: got %v", got)
	}
}

func TestTTL_BackgroundCleanupRemovesWithoutGet(t *testing.T) {
	c := New[string, string](Config{MaxEntries: 10, CleanupInterval: 10 * time.Millisecond})
	defer c.Close()

	if err := c.Set("ttl", "v", 20*time.Millisecond); err != nil {
		t.Fatalf("set: %v", err)
	}

	// Poll with a deadline to avoid flakes.
	deadline := time.Now().Add(500 * time.Millisecond)
	for time.Now().Before(deadline) {
		if !slices.Contains(c.Keys(), "ttl") {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}

	if _, ok := c.Get("ttl"); ok {
		t.Fatalf("expected ttl to be expired")
	}
}

func TestClose_IdempotentAndPreventsMutation(t *testing.T) {
	c := New[string, string](Config{MaxEntries: 1, CleanupInterval: 10 * time.Millisecond})
	_ = c.Set("k", "v", 0)

	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("close again: %v", err)
	}

	if err := c.Set("k", "v", 0); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected Set to fail after close, got %v", err)
	}
	if err := c.Delete("k"); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected Delete to fail after close, got %v", err)
	}
	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected Get to miss after close")
	}
	if c.Len() != 0 {
		t.Fatalf("expected released list after close")
	}
}
