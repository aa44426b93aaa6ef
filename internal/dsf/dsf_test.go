package dsf

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func members(d *DSF, i int) []int {
	var ms []int
	for j := range d.Component(i) {
		ms = append(ms, j)
	}
	slices.Sort(ms)
	return ms
}

func TestSingletons(t *testing.T) {
	d := New(5)
	for i := range 5 {
		assert.Equal(t, i, d.Canonify(i))
		assert.Equal(t, 1, d.Size(i))
		assert.Equal(t, []int{i}, members(d, i))
	}
}

func TestMerge(t *testing.T) {
	d := New(6)
	d.Merge(0, 1)
	d.Merge(2, 3)
	d.Merge(1, 3)

	assert.Equal(t, 4, d.Size(0))
	assert.True(t, d.Joined(0, 2))
	assert.False(t, d.Joined(0, 4))
	assert.Equal(t, []int{0, 1, 2, 3}, members(d, 2))
	assert.Equal(t, []int{4}, members(d, 4))
}

func TestMergeNoOp(t *testing.T) {
	d := New(4)
	d.Merge(0, 1)
	d.Merge(1, 0) // already joined
	assert.Equal(t, 2, d.Size(0))
	assert.Equal(t, []int{0, 1}, members(d, 1))
}

func TestReset(t *testing.T) {
	d := New(4)
	d.Merge(0, 1)
	d.Merge(2, 3)
	d.Reset()
	for i := range 4 {
		assert.Equal(t, 1, d.Size(i))
		assert.Equal(t, []int{i}, members(d, i))
	}
}

// The ring of any class must be a single simple cycle visiting exactly
// the class's members, at all times, no matter the merge order.
func TestRingMatchesPartition(t *testing.T) {
	const n = 64
	r := rand.New(rand.NewPCG(1, 2))
	d := New(n)

	check := func() {
		byRoot := make(map[int][]int)
		for i := range n {
			byRoot[d.Canonify(i)] = append(byRoot[d.Canonify(i)], i)
		}
		for root, want := range byRoot {
			require.Equal(t, len(want), d.Size(root))
			require.True(t, d.OnRing(root))
			got := members(d, root)
			require.Equal(t, want, got, "ring of %d diverged from partition", root)
		}
	}

	check()
	for range 100 {
		d.Merge(r.IntN(n), r.IntN(n))
		check()
	}
}

func TestComponentStartsAnywhere(t *testing.T) {
	d := New(8)
	d.Merge(1, 5)
	d.Merge(5, 7)
	for _, start := range []int{1, 5, 7} {
		assert.Equal(t, []int{1, 5, 7}, members(d, start))
	}
}
