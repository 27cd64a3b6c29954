// Package cache implements a single-process, in-memory key–value cache on top
// of internal/list.
//
// Goals for this package:
//   - Keep recency order in a list.List and drive it only through Iterator handles
//   - O(1) Set/Get/Delete via a map of iterators + MoveToFront/Erase splices
//   - Be concurrency-safe (RWMutex); the list itself is not, so every list call happens under the lock
//   - Support per-entry TTL with both lazy and active expiration
//   - Own and cleanly stop the maintenance goroutine (no leaks on shutdown)
package cache
