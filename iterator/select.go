package iterator

// Select wraps a cursor and skips every value for which keep returns false.
//
// Positions are those of the wrapped cursor, so they are not contiguous.
// Valid, Pos and Val report the wrapped cursor's state.
type Select[T any, It Iterator[T]] struct {
	iter It
	keep func(T) bool
}

// Load initializes the cursor over iter, keeping values for which keep returns true.
func (sel *Select[T, It]) Load(iter It, keep func(T) bool) {
	sel.iter, sel.keep = iter, keep
}

var _ Iterator[int] = (*Select[int, *Chain[int]])(nil)

// Valid returns true if positioned at a kept value.
func (sel *Select[T, It]) Valid() bool {
	return sel.iter.Valid()
}

// Pos returns the wrapped cursor's position.
func (sel *Select[T, It]) Pos() int {
	return sel.iter.Pos()
}

// Val returns the current value.
func (sel *Select[T, It]) Val() T {
	return sel.iter.Val()
}

// Next advances to the next kept value.
func (sel *Select[T, It]) Next() bool {
	for {
		if !sel.iter.Next() {
			return false
		}
		if sel.keep(sel.iter.Val()) {
			return true
		}
	}
}

// Prev moves to the previous kept value.
func (sel *Select[T, It]) Prev() bool {
	for {
		if !sel.iter.Prev() {
			return false
		}
		if sel.keep(sel.iter.Val()) {
			return true
		}
	}
}

// SeekFirst positions at the first kept value.
func (sel *Select[T, It]) SeekFirst() bool {
	if !sel.iter.SeekFirst() {
		return false
	}
	if sel.keep(sel.iter.Val()) {
		return true
	}
	return sel.Next()
}

// SeekLast positions at the last kept value.
func (sel *Select[T, It]) SeekLast() bool {
	if !sel.iter.SeekLast() {
		return false
	}
	if sel.keep(sel.iter.Val()) {
		return true
	}
	return sel.Prev()
}

// Seek positions at the first kept value at a position >= pos.
func (sel *Select[T, It]) Seek(pos int) bool {
	if !sel.iter.Seek(pos) {
		return false
	}
	if sel.keep(sel.iter.Val()) {
		return true
	}
	return sel.Next()
}
