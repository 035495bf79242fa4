package iterator

// Chain reads two slices as one sequence: every value of head, then every
// value of tail. Neither slice is copied.
//
// The zero value is an empty, unpositioned cursor. Load it before use.
type Chain[T any] struct {
	head, tail []T
	pos        int
	valid      bool
}

// Load initializes the cursor with the given parts, unpositioned.
func (iter *Chain[T]) Load(head, tail []T) {
	iter.head, iter.tail = head, tail
	iter.pos, iter.valid = 0, false
}

var _ Iterator[int] = (*Chain[int])(nil)

// Len returns the total number of values in both parts.
func (iter *Chain[T]) Len() int {
	return len(iter.head) + len(iter.tail)
}

// Valid returns true if the cursor points to a value.
func (iter *Chain[T]) Valid() bool {
	return iter.valid
}

// Pos returns the current position.
func (iter *Chain[T]) Pos() int {
	return iter.pos
}

// Tail returns true if the current value comes from the tail part,
// false if it comes from the head part.
func (iter *Chain[T]) Tail() bool {
	return iter.valid && iter.pos >= len(iter.head)
}

// Val returns the current value.
func (iter *Chain[T]) Val() T {
	if !iter.valid {
		var zero T
		return zero
	}
	if iter.pos < len(iter.head) {
		return iter.head[iter.pos]
	}
	return iter.tail[iter.pos-len(iter.head)]
}

// Next advances to the next value.
func (iter *Chain[T]) Next() bool {
	if !iter.valid {
		return false
	}
	return iter.settle(iter.pos + 1)
}

// Prev moves to the previous value.
func (iter *Chain[T]) Prev() bool {
	if !iter.valid {
		return false
	}
	return iter.settle(iter.pos - 1)
}

// SeekFirst positions at the first value.
func (iter *Chain[T]) SeekFirst() bool {
	return iter.settle(0)
}

// SeekLast positions at the last value.
func (iter *Chain[T]) SeekLast() bool {
	return iter.settle(iter.Len() - 1)
}

// Seek positions at the first position >= pos.
func (iter *Chain[T]) Seek(pos int) bool {
	return iter.settle(max(pos, 0))
}

func (iter *Chain[T]) settle(pos int) bool {
	if pos < 0 || pos >= iter.Len() {
		iter.pos, iter.valid = 0, false
		return false
	}
	iter.pos, iter.valid = pos, true
	return true
}
