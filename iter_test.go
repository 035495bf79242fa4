package complewise

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIterSumCompounding(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	it := Of(items)
	for cur, rest, ok := it.Next(); ok; cur, rest, ok = it.Next() {
		for v := range rest.All() {
			*cur += v
		}
	}
	require.Equal(t, []int{15, 29, 56, 109, 214}, items)
}

// nestedSum is the plain index-loop rendition of TestIterSumCompounding.
func nestedSum(items []int) {
	for i := range items {
		for j := range items {
			if i != j {
				items[i] += items[j]
			}
		}
	}
}

func TestIterMatchesNestedLoop(t *testing.T) {
	for n := range 12 {
		a := make([]int, n)
		for i := range a {
			a[i] = i*7 - 3
		}
		b := slices.Clone(a)

		ForEach(a, func(cur *int, rest Complement[int]) {
			for v := range rest.All() {
				*cur += v
			}
		})
		nestedSum(b)
		require.Equal(t, b, a, "n=%d", n)
	}
}

func TestIterComplementOrder(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	it := Of(items)

	for i := range items {
		require.Equal(t, i, it.Index())
		cur, rest, ok := it.Next()
		require.True(t, ok)
		require.Equal(t, items[i], *cur)
		require.Same(t, &items[i], cur)

		want := append(slices.Clone(items[:i]), items[i+1:]...)
		require.Equal(t, want, slices.Collect(rest.All()))
		require.Equal(t, want, rest.AppendTo(nil))
		require.Equal(t, len(items)-1, rest.Len())
		require.Equal(t, i, rest.Index())
		for j, v := range want {
			require.Equal(t, v, rest.At(j))
		}
	}
}

func TestIterExhaustion(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5, 64} {
		items := make([]int, n)
		it := Of(items)
		require.Equal(t, n, it.Len())

		steps := 0
		for _, _, ok := it.Next(); ok; _, _, ok = it.Next() {
			steps++
		}
		require.Equal(t, n, steps)
		require.True(t, it.Done())
		require.Equal(t, 0, it.Remaining())
		require.Equal(t, n, it.Index())

		for range 3 {
			cur, rest, ok := it.Next()
			require.False(t, ok)
			require.Nil(t, cur)
			require.Zero(t, rest.Len())
			require.Equal(t, -1, rest.Index())
			require.Equal(t, n, it.Index())
		}
	}
}

func TestIterEmpty(t *testing.T) {
	var items []int
	it := Of(items)
	require.True(t, it.Done())

	calls := 0
	it.ForEach(func(*int, Complement[int]) { calls++ })
	require.Zero(t, calls)
}

func TestIterSingle(t *testing.T) {
	items := []int{42}
	it := Of(items)

	cur, rest, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, 42, *cur)
	require.Zero(t, rest.Len())
	require.Empty(t, slices.Collect(rest.All()))

	_, _, ok = it.Next()
	require.False(t, ok)
}

func TestIterForEachNoop(t *testing.T) {
	items := []int{3, 1, 4, 1, 5, 9, 2, 6}
	orig := slices.Clone(items)

	calls := 0
	Of(items).ForEach(func(*int, Complement[int]) { calls++ })
	require.Equal(t, len(items), calls)
	require.Equal(t, orig, items)
}

func TestIterForEachUntil(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	it := Of(items)

	var seen []int
	done := it.ForEachUntil(func(cur *int, rest Complement[int]) bool {
		seen = append(seen, *cur)
		return *cur < 3
	})
	require.False(t, done)
	require.Equal(t, []int{1, 2, 3}, seen)
	require.Equal(t, 3, it.Index())

	// resumes where it stopped
	done = it.ForEachUntil(func(cur *int, rest Complement[int]) bool {
		seen = append(seen, *cur)
		return true
	})
	require.True(t, done)
	require.Equal(t, []int{1, 2, 3, 4, 5}, seen)
}

func TestIterAll(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	for cur, rest := range Of(items).All() {
		for v := range rest.All() {
			*cur += v
		}
	}
	require.Equal(t, []int{15, 29, 56, 109, 214}, items)

	items = []int{1, 2, 3, 4, 5}
	it := Of(items)
	for cur := range it.All() {
		if *cur == 2 {
			break
		}
	}
	require.Equal(t, 2, it.Index())
}

func TestIterMutationVisible(t *testing.T) {
	items := []int{0, 0, 0}
	it := Of(items)

	cur, _, _ := it.Next()
	*cur = 10

	_, rest, _ := it.Next()
	require.Equal(t, []int{10, 0}, slices.Collect(rest.All()))
}

func TestIterStructElements(t *testing.T) {
	type body struct {
		mass  float64
		force float64
	}
	bodies := []body{{mass: 1}, {mass: 2}, {mass: 3}}
	ForEach(bodies, func(cur *body, rest Complement[body]) {
		for other := range rest.All() {
			cur.force += other.mass
		}
	})
	require.Equal(t, []float64{5, 4, 3}, []float64{bodies[0].force, bodies[1].force, bodies[2].force})
}

func BenchmarkIter(b *testing.B) {
	items := make([]int, 20)
	for b.Loop() {
		for i := range items {
			items[i] = i + 1
		}
		it := Of(items)
		for cur, rest, ok := it.Next(); ok; cur, rest, ok = it.Next() {
			for v := range rest.All() {
				*cur += v
			}
		}
	}
}

func BenchmarkNestedLoop(b *testing.B) {
	items := make([]int, 20)
	for b.Loop() {
		for i := range items {
			items[i] = i + 1
		}
		nestedSum(items)
	}
}
