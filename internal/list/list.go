package list

import (
	"fmt"
	"iter"
	"strings"
)

// List is a doubly-linked list of T bounded by a head and a foot sentinel.
//
// The zero value is an empty list ready to use. The sentinels are created on
// first use and stay linked to each other while the list is empty, so
// boundary inserts and removals never need nil checks.
type List[T any] struct {
	head *node[T]
	foot *node[T]
	size int
}

// New returns an empty list.
func New[T any]() *List[T] {
	l := &List[T]{}
	l.lazyInit()
	return l
}

// NewSized returns a list holding n zero values of T.
// A negative n yields an empty list.
func NewSized[T any](n int) *List[T] {
	var zero T
	return NewFilled(n, zero)
}

// NewFilled returns a list holding n copies of v.
func NewFilled[T any](n int, v T) *List[T] {
	l := New[T]()
	prev := l.head
	for i := 0; i < n; i++ {
		nd := &node[T]{value: v}
		prev.next, nd.prev = nd, prev
		prev = nd
	}
	prev.next, l.foot.prev = l.foot, prev
	if n > 0 {
		l.size = n
	}
	return l
}

func (l *List[T]) lazyInit() {
	if l.head != nil {
		return
	}
	l.head, l.foot = &node[T]{}, &node[T]{}
	l.head.next, l.foot.prev = l.foot, l.head
	l.size = 0
}

// Release tears the chain down from head to foot, unlinking every node, and
// returns the list to its zero state. It is safe to call more than once and the
// list may be reused afterwards.
func (l *List[T]) Release() {
	for n := l.head; n != nil; {
		next := n.next
		n.next, n.prev = nil, nil
		n = next
	}
	l.head, l.foot, l.size = nil, nil, 0
}

// Len returns the number of elements. O(1).
func (l *List[T]) Len() int { return l.size }

// IsEmpty reports whether the list holds no elements. O(1).
func (l *List[T]) IsEmpty() bool { return l.size == 0 }

// Front returns a pointer to the first element.
func (l *List[T]) Front() (*T, error) {
	if l.size == 0 {
		return nil, outOfRange("front", -1, 0)
	}
	return &l.head.next.value, nil
}

// Back returns a pointer to the last element.
func (l *List[T]) Back() (*T, error) {
	if l.size == 0 {
		return nil, outOfRange("back", -1, 0)
	}
	return &l.foot.prev.value, nil
}

// At returns a pointer to the element at index i.
//
// Complexity: O(i). The walk always starts at the first element.
func (l *List[T]) At(i int) (*T, error) {
	if i < 0 || i >= l.size {
		return nil, outOfRange("at", i, l.size)
	}
	return &l.nodeAt(i).value, nil
}

// Get returns a copy of the element at index i.
func (l *List[T]) Get(i int) (T, error) {
	p, err := l.At(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Set overwrites the element at index i.
func (l *List[T]) Set(i int, v T) error {
	p, err := l.At(i)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// PushFront inserts v right after the head sentinel and returns an iterator to it.
func (l *List[T]) PushFront(v T) Iterator[T] {
	l.lazyInit()
	return l.insertBefore(l.head.next, v)
}

// PushBack inserts v right before the foot sentinel and returns an iterator to it.
func (l *List[T]) PushBack(v T) Iterator[T] {
	l.lazyInit()
	return l.insertBefore(l.foot, v)
}

// Insert places v so that it ends up at index i, shifting later elements right.
// i == Len() appends.
func (l *List[T]) Insert(i int, v T) error {
	if i < 0 || i > l.size {
		return outOfRange("insert", i, l.size)
	}
	l.lazyInit()
	l.insertBefore(l.nodeAt(i), v)
	return nil
}

// Remove deletes the element at index i, shifting later elements left.
func (l *List[T]) Remove(i int) error {
	if i < 0 || i >= l.size {
		return outOfRange("remove", i, l.size)
	}
	unlink(l.nodeAt(i))
	l.size--
	return nil
}

// Erase deletes the element under it and returns an iterator to its successor.
// Sentinel positions and iterators from another list are left alone and it is
// returned unchanged.
func (l *List[T]) Erase(it Iterator[T]) Iterator[T] {
	if !l.owns(it) {
		return it
	}
	next := it.node.next
	unlink(it.node)
	l.size--
	return l.iter(next)
}

// MoveToFront splices the element under it to the first position.
// Sentinel positions and iterators from another list are ignored.
func (l *List[T]) MoveToFront(it Iterator[T]) {
	if !l.owns(it) || l.head.next == it.node {
		return
	}
	unlink(it.node)
	link(l.head, it.node, l.head.next)
}

// FindFunc returns an iterator to the first element for which match is true,
// or End() when there is none.
func (l *List[T]) FindFunc(match func(T) bool) Iterator[T] {
	for it := l.Begin(); !it.AtEnd(); it.Next() {
		if match(it.Value()) {
			return it
		}
	}
	return l.End()
}

// Find returns an iterator to the first element equal to v, or l.End().
func Find[T comparable](l *List[T], v T) Iterator[T] {
	return l.FindFunc(func(x T) bool { return x == v })
}

// Begin returns an iterator to the first element, or End() if the list is empty.
func (l *List[T]) Begin() Iterator[T] {
	l.lazyInit()
	return l.iter(l.head.next)
}

// End returns the past-the-end iterator. It must not be dereferenced.
func (l *List[T]) End() Iterator[T] {
	l.lazyInit()
	return l.iter(l.foot)
}

// All yields index/value pairs from front to back.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l.head == nil {
			return
		}
		i := 0
		for n := l.head.next; n != l.foot; n = n.next {
			if !yield(i, n.value) {
				return
			}
			i++
		}
	}
}

// Backward yields index/value pairs from back to front.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l.head == nil {
			return
		}
		i := l.size - 1
		for n := l.foot.prev; n != l.head; n = n.prev {
			if !yield(i, n.value) {
				return
			}
			i--
		}
	}
}

// Values returns the elements in order as a new slice.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for _, v := range l.All() {
		out = append(out, v)
	}
	return out
}

func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range l.All() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte(']')
	return b.String()
}

// nodeAt walks i steps from the first user node. i == size yields the foot
// sentinel, which is what Insert needs for appends.
func (l *List[T]) nodeAt(i int) *node[T] {
	n := l.head.next
	for ; i > 0; i-- {
		n = n.next
	}
	return n
}

func (l *List[T]) insertBefore(at *node[T], v T) Iterator[T] {
	n := &node[T]{value: v}
	link(at.prev, n, at)
	l.size++
	return l.iter(n)
}

func (l *List[T]) owns(it Iterator[T]) bool {
	return l.foot != nil && it.foot == l.foot && it.node != nil && it.node != l.foot && it.node != l.head
}

func (l *List[T]) iter(n *node[T]) Iterator[T] {
	return Iterator[T]{node: n, head: l.head, foot: l.foot}
}
