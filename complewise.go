// Package complewise provides a complement-wise traversal over a slice.
//
// Each step yields a pointer to the element at the cursor together with a
// read-only Complement: every other element of the slice, in original order,
// with the current one left out. The current element may be mutated in place;
// later steps observe the mutation through their complements.
//
// Example usage:
//
//	items := []int{1, 2, 3, 4, 5}
//	it := complewise.Of(items)
//	for cur, rest, ok := it.Next(); ok; cur, rest, ok = it.Next() {
//		for v := range rest.All() {
//			*cur += v
//		}
//	}
//	// items == [15 29 56 109 214]
//
// A Complement is two sub-slices of the caller's slice, never a copy.
// It is valid only until the next call to Next on the same Iter; using it
// afterwards panics with ErrStaleComplement.
package complewise

// Of begins a traversal over s.
// The caller must not read or write s except through the values returned by
// the traversal until it is done or abandoned.
func Of[T any](s []T) *Iter[T] {
	return &Iter[T]{slice: s}
}

// ForEach visits every element of s with its complement, in index order.
func ForEach[T any](s []T, fn func(cur *T, rest Complement[T])) {
	Of(s).ForEach(fn)
}
