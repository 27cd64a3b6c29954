package list

// Iterator is a cursor over one node of a List. It does not own anything: it
// remembers the node it points at plus the two sentinels of the list it came
// from, so it can clamp at either end.
//
// An Iterator is invalidated by any structural mutation of its list.
type Iterator[T any] struct {
	node *node[T]
	head *node[T]
	foot *node[T]
}

// Value returns the element under the cursor.
// Calling it on End() is undefined; the result is meaningless.
func (it Iterator[T]) Value() T { return it.node.value }

// Ptr returns a pointer to the element under the cursor for in-place updates.
// The same End() caveat as Value applies.
func (it Iterator[T]) Ptr() *T { return &it.node.value }

// Set overwrites the element under the cursor.
func (it Iterator[T]) Set(v T) { it.node.value = v }

// Next advances the cursor and returns it. At End() it stays put.
func (it *Iterator[T]) Next() *Iterator[T] {
	if it.node != it.foot {
		it.node = it.node.next
	}
	return it
}

// PostNext advances the cursor and returns a copy of where it was before.
func (it *Iterator[T]) PostNext() Iterator[T] {
	old := *it
	it.Next()
	return old
}

// Prev moves the cursor back one element and returns it.
// On the first element it stays put: there is no position before Begin().
func (it *Iterator[T]) Prev() *Iterator[T] {
	if it.node.prev != it.head {
		it.node = it.node.prev
	}
	return it
}

// PostPrev moves the cursor back and returns a copy of where it was before.
func (it *Iterator[T]) PostPrev() Iterator[T] {
	old := *it
	it.Prev()
	return old
}

// Equal reports whether both iterators reference the same node.
// Only node identity is compared, not the list the iterators came from.
func (it Iterator[T]) Equal(other Iterator[T]) bool { return it.node == other.node }

// AtEnd reports whether the cursor is at the foot sentinel.
func (it Iterator[T]) AtEnd() bool { return it.node == it.foot }
