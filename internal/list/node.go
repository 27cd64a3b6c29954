package list

// node is one link in the chain. Sentinels are nodes whose value is never read.
type node[T any] struct {
	value T
	next  *node[T]
	prev  *node[T]
}

// link places n between prev and next.
func link[T any](prev, n, next *node[T]) {
	prev.next, n.prev = n, prev
	n.next, next.prev = next, n
}

// unlink joins n's neighbors to each other and clears n's own links so that a
// stale Iterator cannot keep the rest of the chain reachable.
func unlink[T any](n *node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next, n.prev = nil, nil
}
