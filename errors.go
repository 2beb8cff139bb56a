package richtext

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by all richtext packages. Errors returned by the
// sub-packages wrap one of these, so callers can test them with errors.Is.
var (
	// ErrOutOfRange is returned by index-based lookups when the index is
	// negative or not below the number of elements.
	ErrOutOfRange = errors.New("richtext: index out of range")

	// ErrInvalidArgument is returned when an argument violates a documented
	// constraint, such as a LineInfo that belongs to another stream.
	ErrInvalidArgument = errors.New("richtext: invalid argument")

	// ErrUnregistered is returned when a resource of a kind that was never
	// registered is looked up. It wraps ErrOutOfRange.
	ErrUnregistered = fmt.Errorf("%w: resource kind not registered", ErrOutOfRange)

	// ErrBorrowed is the panic value of a write issued while pointers are acquired.
	ErrBorrowed = errors.New("richtext: stream is borrowed for reading")

	// ErrNotAcquired is returned by raw access outside an acquire/release bracket.
	ErrNotAcquired = errors.New("richtext: pointers not acquired")

	// ErrStaleView is returned when a view outlived a reallocation of its buffer.
	ErrStaleView = errors.New("richtext: stale view")

	// ErrMalformed is returned when a stream does not have the expected structure.
	ErrMalformed = errors.New("richtext: malformed command stream")
)

// RangeError reports an out-of-range index. It unwraps to ErrOutOfRange.
type RangeError struct {
	Op    string
	Index int
	Len   int
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("richtext: %s: index %d out of range [0:%d]", e.Op, e.Index, e.Len)
}

// Unwrap returns ErrOutOfRange.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// CheckIndex returns a *RangeError unless 0 <= index < n.
func CheckIndex(op string, index, n int) error {
	if index < 0 || index >= n {
		return &RangeError{Op: op, Index: index, Len: n}
	}
	return nil
}

// CheckRange returns a *RangeError unless [start, start+count) lies within [0, n).
func CheckRange(op string, start, count, n int) error {
	if start < 0 || start > n {
		return &RangeError{Op: op, Index: start, Len: n}
	}
	if count < 0 || start+count > n {
		return &RangeError{Op: op, Index: start + count, Len: n}
	}
	return nil
}
