// Package list implements a generic doubly-linked list bounded by two sentinels.
//
// Goals for this package:
//   - Keep the node chain explicit (head sentinel, user nodes, foot sentinel)
//   - O(1) push at either end and O(1) splice once a position is known
//   - Bounds-checked indexed access that reports ErrOutOfRange instead of corrupting state
//   - Bidirectional iterators that clamp at both ends rather than walking off the chain
//
// Indexed access (At, Get, Set, Insert, Remove) walks from the first user node,
// so it costs O(n). That is the price of a linked representation; callers that
// already hold an Iterator should use Erase/MoveToFront instead.
//
// A List is not safe for concurrent use. Any structural mutation (push, insert,
// remove, erase, move, release) invalidates positional assumptions held by
// outstanding Iterators: what Next() yields or which element sits at Begin().
// Using an invalidated iterator, or dereferencing End(), is a caller error and
// is not detected at runtime.
//
// Mutations only relink the neighbors of the node they touch, so an Iterator
// returned by PushFront or PushBack keeps referencing its element until that
// element is removed or the list is released. internal/cache keeps such
// handles in a map.
package list
