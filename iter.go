package complewise

import "iter"

// Iter is a complement-wise traversal over a slice. Not thread-safe.
//
// States:
//   - not started: Index() == 0, no step taken yet
//   - in progress: 0 < Index() < Len()
//   - exhausted:   Index() == Len(), Next always reports false
//
// The cursor never moves backwards; an Iter cannot be rewound.
type Iter[T any] struct {
	slice []T
	index int
	gen   uint64
}

// Next takes one step.
// It returns a pointer to the element at the cursor and the complement of that
// element, then advances the cursor. Once the slice is exhausted it returns
// ok == false on every call.
//
// Each call invalidates the Complement returned by the previous call.
func (it *Iter[T]) Next() (cur *T, rest Complement[T], ok bool) {
	it.gen++
	i := it.index
	if i >= len(it.slice) {
		return nil, Complement[T]{}, false
	}
	it.index++
	rest = Complement[T]{
		head:  it.slice[:i:i],
		tail:  it.slice[i+1:],
		owner: it,
		gen:   it.gen,
		index: i,
	}
	return &it.slice[i], rest, true
}

// ForEach calls fn for every remaining element, in index order, until the
// traversal is exhausted.
func (it *Iter[T]) ForEach(fn func(cur *T, rest Complement[T])) {
	for cur, rest, ok := it.Next(); ok; cur, rest, ok = it.Next() {
		fn(cur, rest)
	}
}

// ForEachUntil is ForEach with early exit: it stops as soon as fn returns false.
// The cursor is left after the last visited element.
// Returns true if the traversal was exhausted.
func (it *Iter[T]) ForEachUntil(fn func(cur *T, rest Complement[T]) bool) bool {
	for cur, rest, ok := it.Next(); ok; cur, rest, ok = it.Next() {
		if !fn(cur, rest) {
			return false
		}
	}
	return true
}

// All implements iter.Seq2[*T, Complement[T]] over the remaining elements.
// It consumes the Iter. Yielded values are valid only within the yield call.
func (it *Iter[T]) All() iter.Seq2[*T, Complement[T]] {
	return func(yield func(*T, Complement[T]) bool) {
		it.ForEachUntil(yield)
	}
}

// Index returns the cursor: the position the next step will visit.
func (it *Iter[T]) Index() int {
	return it.index
}

// Len returns the length of the slice under traversal.
func (it *Iter[T]) Len() int {
	return len(it.slice)
}

// Remaining returns the number of steps left.
func (it *Iter[T]) Remaining() int {
	return len(it.slice) - it.index
}

// Done reports whether the traversal is exhausted.
func (it *Iter[T]) Done() bool {
	return it.index >= len(it.slice)
}
