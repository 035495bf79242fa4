package complewise

import (
	"fmt"
	"iter"

	"github.com/dacapoday/complewise/iterator"
)

// Complement is the read-only view of every element except the current one:
// the elements before it followed by the elements after it, in index order.
//
// It only hands out copies of the elements, so it cannot alias the pointer
// returned alongside it. The zero value is an empty complement.
type Complement[T any] struct {
	head, tail []T
	owner      *Iter[T]
	gen        uint64
	index      int
}

// check panics if the owning Iter has stepped since c was returned.
func (c Complement[T]) check() {
	if c.owner != nil && c.owner.gen != c.gen {
		panic(ErrStaleComplement)
	}
}

// Len returns the number of elements in the complement.
func (c Complement[T]) Len() int {
	c.check()
	return len(c.head) + len(c.tail)
}

// Index returns the slice position of the excluded element, or -1 for the zero value.
// Like the other accessors it panics once the complement is stale.
func (c Complement[T]) Index() int {
	c.check()
	if c.owner == nil {
		return -1
	}
	return c.index
}

// At returns the i-th element of the complement.
// Panics if i is out of range.
func (c Complement[T]) At(i int) T {
	c.check()
	if i < 0 || i >= len(c.head)+len(c.tail) {
		panic(fmt.Errorf("%w: %d of %d", ErrOutOfRange, i, len(c.head)+len(c.tail)))
	}
	if i < len(c.head) {
		return c.head[i]
	}
	return c.tail[i-len(c.head)]
}

// All implements iter.Seq[T], iterating the complement in index order.
// It may be ranged over any number of times until the next step.
func (c Complement[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		c.check()
		for _, v := range c.head {
			if !yield(v) {
				return
			}
		}
		for _, v := range c.tail {
			if !yield(v) {
				return
			}
		}
	}
}

// Indexed implements iter.Seq2[int, T], yielding each element with its
// position in the original slice.
func (c Complement[T]) Indexed() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		c.check()
		for i, v := range c.head {
			if !yield(i, v) {
				return
			}
		}
		for i, v := range c.tail {
			if !yield(c.index+1+i, v) {
				return
			}
		}
	}
}

// AppendTo appends the complement to dst and returns the extended slice.
func (c Complement[T]) AppendTo(dst []T) []T {
	c.check()
	dst = append(dst, c.head...)
	return append(dst, c.tail...)
}

// Cursor returns a bidirectional cursor over the complement, unpositioned.
// Call SeekFirst, SeekLast, or Seek before use.
// The cursor reads the caller's slice directly and must not outlive the step.
func (c Complement[T]) Cursor() *iterator.Chain[T] {
	c.check()
	var chain iterator.Chain[T]
	chain.Load(c.head, c.tail)
	return &chain
}
