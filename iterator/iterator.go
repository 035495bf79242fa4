// Package iterator provides a positional cursor over two-part slice views and
// lazy combinators for iter.Seq.
package iterator

// Iterator represents a cursor over an ordered, positional sequence of values.
// The cursor maintains a current position and can be moved forward or backward.
//
// Usage:
//
//	for it.SeekFirst(); it.Valid(); it.Next() {
//	    pos, val := it.Pos(), it.Val()
//	    // process pos, val
//	}
type Iterator[T any] interface {
	// Valid returns true if positioned at a value.
	Valid() bool

	// Pos returns the current position, counted from the first value.
	// Behavior is undefined if Valid() returns false.
	Pos() int

	// Val returns the value at the current position.
	// Returns the zero value if Valid() returns false.
	Val() T

	// Next advances the cursor to the next value.
	// Returns false if the cursor was not positioned or has moved past the last value.
	Next() bool

	// Prev moves the cursor to the previous value.
	// Returns false if the cursor was not positioned or has moved before the first value.
	Prev() bool

	// SeekFirst positions the cursor at the first value.
	// Returns false if the sequence is empty.
	SeekFirst() bool

	// SeekLast positions the cursor at the last value.
	// Returns false if the sequence is empty.
	SeekLast() bool

	// Seek positions the cursor at the first position >= pos.
	// Returns false if no such position exists.
	Seek(pos int) bool
}
