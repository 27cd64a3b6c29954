package cache

import "time"

// expiryLoop periodically scans and removes expired entries.
//
// A ticker-driven full scan avoids per-entry timers. The cost is O(n) per tick.
func (c *Cache[K, V]) expiryLoop() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.cleanupEvery)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case now := <-ticker.C:
			c.mu.Lock()
			if n := c.deleteExpiredLocked(now); n > 0 {
				c.log.Debug().Int("removed", n).Int("remaining", c.order.Len()).Msg("expired entries swept")
			}
			c.mu.Unlock()
		}
	}
}
