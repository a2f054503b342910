package batch

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name      string
		batchSize int
		items     []string
		want      [][]string
	}{
		{
			name:      "uneven tail",
			batchSize: 2,
			items:     []string{"a", "b", "c", "d", "e"},
			want:      [][]string{{"a", "b"}, {"c", "d"}, {"e"}},
		},
		{
			name:      "exact multiple",
			batchSize: 2,
			items:     []string{"a", "b", "c", "d"},
			want:      [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:      "batch larger than input",
			batchSize: 500,
			items:     []string{"a", "b"},
			want:      [][]string{{"a", "b"}},
		},
		{
			name:      "size one",
			batchSize: 1,
			items:     []string{"a", "b", "c"},
			want:      [][]string{{"a"}, {"b"}, {"c"}},
		},
		{
			name:      "empty input",
			batchSize: 3,
			items:     nil,
			want:      [][]string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Split(tc.batchSize, tc.items)
			require.NotNil(t, got)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestSplit_Properties(t *testing.T) {
	for n := 0; n <= 1200; n += 37 {
		items := make([]int, n)
		for i := range items {
			items[i] = i
		}

		for _, size := range []int{1, 7, 100, MaxWriteBatch} {
			chunks := Split(size, items)

			require.Len(t, chunks, (n+size-1)/size, "n=%d size=%d", n, size)

			var flat []int
			for i, chunk := range chunks {
				require.NotEmpty(t, chunk)
				require.LessOrEqual(t, len(chunk), size)
				if i < len(chunks)-1 {
					require.Len(t, chunk, size)
				}
				flat = append(flat, chunk...)
			}
			require.True(t, slices.Equal(items, flat), "n=%d size=%d", n, size)
		}
	}
}

func TestSplit_ChunksDoNotClobberNeighbours(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	chunks := Split(2, items)

	chunks[0] = append(chunks[0], 99)

	assert.Equal(t, []int{3, 4}, chunks[1])
	assert.Equal(t, []int{1, 2, 3, 4, 5}, items)
}

func TestReduce(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	sums := Reduce(3, items, func(acc []int, chunk []int) []int {
		total := 0
		for _, v := range chunk {
			total += v
		}
		return append(acc, total)
	}, []int(nil))

	require.Equal(t, []int{6, 15, 7}, sums)
}

func TestReduce_EmptyInputReturnsInitial(t *testing.T) {
	calls := 0
	got := Reduce(10, []string{}, func(acc int, _ []string) int {
		calls++
		return acc + 1
	}, 42)

	require.Equal(t, 42, got)
	require.Zero(t, calls)
}

func TestReduce_MatchesSplit(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f", "g"}

	viaReduce := Reduce(3, items, func(acc [][]string, chunk []string) [][]string {
		return append(acc, chunk)
	}, [][]string{})

	require.Equal(t, Split(3, items), viaReduce)
}

func TestInvalidBatchSizePanics(t *testing.T) {
	for _, size := range []int{0, -1} {
		require.Panics(t, func() { Split(size, []int{1}) })
		require.Panics(t, func() { Reduce(size, []int{1}, func(acc int, _ []int) int { return acc }, 0) })
	}
}
