package filling

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeBoard(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	t.Parallel()

	tests := []struct {
		name   string
		params GameParams
	}{
		{"1x1", GameParams{1, 1}},
		{"3x1", GameParams{3, 1}},
		{"1x7", GameParams{1, 7}},
		{"2x2", GameParams{2, 2}},
		{"5x5", GameParams{5, 5}},
		{"7x7", GameParams{7, 7}},
		{"9x9", GameParams{9, 9}},
		{"13x9", GameParams{13, 9}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			p := test.params
			r := rand.New(rand.NewPCG(1, 2))
			for range 20 {
				board := MakeBoard(p, r)
				require.Len(t, board, p.Size())
				for i, v := range board {
					require.GreaterOrEqual(t, v, 1, "cell %d", i)
					require.LessOrEqual(t, v, p.MaxValue(), "cell %d", i)
				}
				// every cell's value is its region's size and no two
				// equal-sized regions touch (they would have fused
				// into one oversized region otherwise)
				require.True(t, IsCompleted(p, board),
					"invalid board:\n%s", FormatBoard(p, board))
			}
		})
	}
}

// Every valid 2x2 board is a tromino plus a single cell, so the value
// 3 always appears even though max(w, h) is only 2.
func TestMakeBoardTwoByTwo(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 20 {
		board := MakeBoard(GameParams{2, 2}, r)
		assert.Contains(t, board, 3)
	}
}

// Retries draw from the same stream, so generation is a pure function
// of the seed.
func TestMakeBoardDeterministic(t *testing.T) {
	p := GameParams{7, 7}
	a := MakeBoard(p, rand.New(rand.NewPCG(42, 43)))
	b := MakeBoard(p, rand.New(rand.NewPCG(42, 43)))
	assert.Equal(t, a, b)
}
