package position

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is matched by every *RangeError.
var ErrIndexOutOfRange = errors.New("index out of range")

// RangeError reports an index outside its scope.
type RangeError struct {
	// Op is the operation that rejected the index ("reorder", "move").
	Op string

	// Arg names the offending argument ("from", "to", "source").
	Arg string

	Index int
	Len   int
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	if e.Len == 0 {
		return fmt.Sprintf("%s: %s index %d out of range (scope is empty)", e.Op, e.Arg, e.Index)
	}
	return fmt.Sprintf("%s: %s index %d out of range [0, %d]", e.Op, e.Arg, e.Index, e.Len-1)
}

// Unwrap lets errors.Is match ErrIndexOutOfRange.
func (e *RangeError) Unwrap() error {
	return ErrIndexOutOfRange
}

func checkIndex(op, arg string, index, n int) error {
	if index < 0 || index >= n {
		return &RangeError{Op: op, Arg: arg, Index: index, Len: n}
	}
	return nil
}
