package list

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is the single error kind the list reports. Every bounds
// failure returns a *RangeError that matches it under errors.Is.
var ErrOutOfRange = errors.New("list: out of range")

// RangeError describes which operation was given which index against which size.
// Index is -1 for Front and Back, which have no index argument.
type RangeError struct {
	Op    string
	Index int
	Size  int
}

func (e *RangeError) Error() string {
	switch e.Op {
	case "front", "back":
		return fmt.Sprintf("%s: %s of empty list", ErrOutOfRange, e.Op)
	}
	return fmt.Sprintf("%s: %s index %d with size %d", ErrOutOfRange, e.Op, e.Index, e.Size)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

func outOfRange(op string, index, size int) error {
	return &RangeError{Op: op, Index: index, Size: size}
}
