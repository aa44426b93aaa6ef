package filling

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameDesc(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	t.Parallel()

	tests := []struct {
		name   string
		params GameParams
	}{
		{"3x1", GameParams{3, 1}},
		{"2x2", GameParams{2, 2}},
		{"3x3", GameParams{3, 3}},
		{"5x5", GameParams{5, 5}},
		{"7x7", GameParams{7, 7}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			p := test.params
			r := rand.New(rand.NewPCG(1, 2))
			for range 5 {
				desc, board := NewGameDesc(p, r)

				require.NoError(t, p.ValidateDesc(desc))

				// the stripped clue set must re-solve to the exact
				// board it was derived from
				clues := boardFromDigits(t, p, desc)
				solved, ok := Solve(p, clues)
				require.True(t, ok, "clue set not solvable: %s", desc)
				require.Equal(t, board, solved)
			}
		})
	}
}

func TestNewGameDescRemovesClues(t *testing.T) {
	p := GameParams{5, 5}
	r := rand.New(rand.NewPCG(1, 2))
	desc, _ := NewGameDesc(p, r)
	assert.Contains(t, desc, "0", "no clue was redundant in %s", desc)
}

func TestDescRoundTrip(t *testing.T) {
	p := GameParams{7, 7}
	r := rand.New(rand.NewPCG(1, 2))
	desc, _ := NewGameDesc(p, r)

	state, err := NewGameFromDesc(p, desc)
	require.NoError(t, err)
	assert.Equal(t, desc, state.Desc())
}

func TestNewGameDescSingleCell(t *testing.T) {
	// a lone empty cell can only be a 1; the clue is always redundant
	p := GameParams{1, 1}
	desc, board := NewGameDesc(p, rand.New(rand.NewPCG(1, 2)))
	assert.Equal(t, "0", desc)
	assert.Equal(t, []int{1}, board)
}
