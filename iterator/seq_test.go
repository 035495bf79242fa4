package iterator

import (
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeqMap(t *testing.T) {
	got := slices.Collect(Map(slices.Values([]int{1, 2, 3}), strconv.Itoa))
	require.Equal(t, []string{"1", "2", "3"}, got)

	for v := range Map(slices.Values([]int{1, 2, 3}), func(v int) int { return v * 2 }) {
		require.Equal(t, 2, v)
		break
	}
}

func TestSeqFilter(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }
	got := slices.Collect(Filter(slices.Values([]int{1, 2, 3, 4, 5, 6}), even))
	require.Equal(t, []int{2, 4, 6}, got)

	require.Empty(t, slices.Collect(Filter(slices.Values([]int{1, 3}), even)))

	var first []int
	for v := range Filter(slices.Values([]int{1, 2, 3, 4}), even) {
		first = append(first, v)
		break
	}
	require.Equal(t, []int{2}, first)
}

func TestSeqFold(t *testing.T) {
	concat := Fold(slices.Values([]string{"a", "b", "c"}), "", func(acc, v string) string {
		return acc + v
	})
	require.Equal(t, "abc", concat)

	require.Equal(t, 7, Fold(slices.Values([]int(nil)), 7, func(acc, v int) int { return acc + v }))
}

func TestSeqSum(t *testing.T) {
	require.Equal(t, 15, Sum(slices.Values([]int{1, 2, 3, 4, 5})))
	require.Equal(t, 0.75, Sum(slices.Values([]float64{0.5, 0.25})))
	require.Zero(t, Sum(slices.Values([]uint8(nil))))

	type meters float32
	require.Equal(t, meters(3), Sum(slices.Values([]meters{1, 2})))
}

func TestSeqCount(t *testing.T) {
	require.Equal(t, 3, Count(slices.Values([]string{"a", "b", "c"})))
	require.Zero(t, Count(slices.Values([]int(nil))))
	require.Equal(t, 2, Count(Filter(slices.Values([]int{1, 2, 3, 4}), func(v int) bool { return v > 2 })))
}
