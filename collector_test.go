package fluent_test

import (
	"errors"
	"maps"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fluent "github.com/probablyarth/fluent-go"
)

func sumCollector() fluent.Collector[int, int, int] {
	return fluent.CollectorOf[int, int, int](
		func() int { return 0 },
		func(acc, el int) (int, error) { return acc + el, nil },
		func(left, right int) (int, error) { return left + right, nil },
		nil,
	)
}

func TestCollectorOfIdentityFinish(t *testing.T) {
	sum, err := fluent.CollectSlice([]int{1, 2, 3, 4}, sumCollector())
	require.NoError(t, err)
	assert.Equal(t, 10, sum)
}

func TestCollectorOfNilStepPanics(t *testing.T) {
	assert.Panics(t, func() {
		fluent.CollectorOf[int, int, int](nil, nil, nil, nil)
	})
}

func TestCollectFromSeq(t *testing.T) {
	seq := maps.Keys(map[string]bool{"a": true, "bc": true})
	index, err := fluent.Collect(seq, fluent.IndexingUniquelyBy(length))
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: "a", 2: "bc"}, index)
}

func TestCollectStopsAtFirstError(t *testing.T) {
	errStop := errors.New("stop")
	var seen []int
	c := fluent.CollectorOf[int, []int, []int](
		func() []int { return nil },
		func(acc []int, el int) ([]int, error) {
			seen = append(seen, el)
			if el == 2 {
				return acc, errStop
			}
			return append(acc, el), nil
		},
		func(left, right []int) ([]int, error) { return append(left, right...), nil },
		nil,
	)

	_, err := fluent.CollectSlice([]int{1, 2, 3}, c)
	assert.Equal(t, errStop, err)
	assert.Equal(t, []int{1, 2}, seen)
}

func TestCollectParallel(t *testing.T) {
	items := make([]int, 1000)
	for i := range items {
		items[i] = i + 1
	}

	for _, workers := range []int{0, 1, 2, 3, 7, 16, 2000} {
		t.Run(strconv.Itoa(workers), func(t *testing.T) {
			sum, err := fluent.CollectParallel(items, sumCollector(), workers)
			require.NoError(t, err)
			assert.Equal(t, 500500, sum)

			list, err := fluent.CollectParallel(items, fluent.ToImmutableList[int](), workers)
			require.NoError(t, err)
			assert.Equal(t, items, list.Slice())
		})
	}
}

func TestCollectParallelUniqueIndex(t *testing.T) {
	index, err := fluent.CollectParallel([]string{"a", "bc", "def"}, fluent.IndexingUniquelyBy(length), 3)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: "a", 2: "bc", 3: "def"}, index)
}

func TestCollectParallelDuplicateAcrossChunks(t *testing.T) {
	// Chunks are ["a", "bc"] and ["def", "gh"]: the clash only shows up on combine.
	_, err := fluent.CollectParallel([]string{"a", "bc", "def", "gh"}, fluent.IndexingUniquelyBy(length), 2)

	var dup *fluent.DuplicateKeyError[int]
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, 2, dup.Key)
}

func TestCollectParallelFirstChunkErrorWins(t *testing.T) {
	a, b, c := "a", "bb", "ccc"
	items := []*string{&a, &a, &b, nil, &c, &c}

	for range 20 {
		// Chunk 0 has a duplicate, chunk 1 a nil element, chunk 2 another
		// duplicate. Chunk 0 is always reported.
		_, err := fluent.CollectParallel(items, fluent.IndexingUniquelyBy(func(s *string) string {
			return *s
		}), 3)

		var dup *fluent.DuplicateKeyError[string]
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "a", dup.Key)
	}
}

func TestCollectParallelMultiIndexKeepsOrder(t *testing.T) {
	items := []string{"a", "bc", "de", "f", "gh", "ij", "k"}
	want := map[int][]string{1: {"a", "f", "k"}, 2: {"bc", "de", "gh", "ij"}}

	for workers := 1; workers <= len(items); workers++ {
		index, err := fluent.CollectParallel(slices.Clone(items), fluent.IndexingBy(length), workers)
		require.NoError(t, err)
		assert.Equal(t, want, index, "workers=%d", workers)
	}
}
