package filling

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameFromDesc(t *testing.T) {
	p := GameParams{3, 1}
	state, err := NewGameFromDesc(p, "002")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 2}, state.Clues)
	assert.Equal(t, []int{0, 0, 2}, state.Board)
	assert.False(t, state.Completed)
	assert.False(t, state.Cheated)
}

func TestNewGameFromDescRejects(t *testing.T) {
	p := GameParams{3, 1}
	for _, desc := range []string{"", "00", "0022", "0a2", "005"} {
		t.Run(desc, func(t *testing.T) {
			_, err := NewGameFromDesc(p, desc)
			assert.Error(t, err)
		})
	}
}

func TestApplyMove(t *testing.T) {
	p := GameParams{3, 1}
	state, err := NewGameFromDesc(p, "002")
	require.NoError(t, err)

	require.NoError(t, state.ApplyMove("0_1"))
	assert.Equal(t, []int{1, 0, 2}, state.Board)
	assert.False(t, state.Completed)

	require.NoError(t, state.ApplyMove("1_2"))
	assert.Equal(t, []int{1, 2, 2}, state.Board)
	assert.True(t, state.Completed)
	assert.False(t, state.Cheated)
}

func TestApplyMoveClear(t *testing.T) {
	p := GameParams{3, 1}
	state, err := NewGameFromDesc(p, "002")
	require.NoError(t, err)

	require.NoError(t, state.ApplyMove("0_1"))
	require.NoError(t, state.ApplyMove("0_0"))
	assert.Equal(t, []int{0, 0, 2}, state.Board)
}

func TestApplyMoveRejects(t *testing.T) {
	p := GameParams{3, 1}
	state, err := NewGameFromDesc(p, "002")
	require.NoError(t, err)

	tests := []struct {
		name, move string
	}{
		{"missing separator", "12"},
		{"bad index", "x_1"},
		{"empty index", "_1"},
		{"bad value", "1_x"},
		{"empty value", "1_"},
		{"trailing garbage", "1_2x"},
		{"index out of range", "3_1"},
		{"negative index", "-1_1"},
		{"value too large", "0_4"},
		{"clue cell", "2_1"},
		{"solution too short", "s12"},
		{"solution too long", "s1222"},
		{"solution non-digit", "s1a2"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := state.ApplyMove(test.move)
			assert.ErrorIs(t, err, ErrBadMove)
			assert.Equal(t, []int{0, 0, 2}, state.Board, "state mutated")
			assert.False(t, state.Cheated)
		})
	}
}

func TestApplySolutionMove(t *testing.T) {
	p := GameParams{3, 1}
	state, err := NewGameFromDesc(p, "002")
	require.NoError(t, err)

	require.NoError(t, state.ApplyMove("s122"))
	assert.Equal(t, []int{1, 2, 2}, state.Board)
	assert.True(t, state.Completed)
	assert.True(t, state.Cheated)
}

func TestSolution(t *testing.T) {
	p := GameParams{3, 1}
	state, err := NewGameFromDesc(p, "002")
	require.NoError(t, err)

	move, err := state.Solution()
	require.NoError(t, err)
	assert.Equal(t, "s122", move)

	// an ambiguous position is beyond this engine's deduction rules
	ambiguous, err := NewGameFromDesc(GameParams{3, 1}, "020")
	require.NoError(t, err)
	_, err = ambiguous.Solution()
	assert.Error(t, err)
}

func TestDupSharesCluesOnly(t *testing.T) {
	p := GameParams{3, 1}
	state, err := NewGameFromDesc(p, "002")
	require.NoError(t, err)

	dup := state.Dup()
	assert.Same(t, &state.Clues[0], &dup.Clues[0], "clues must be shared")

	require.NoError(t, dup.ApplyMove("0_1"))
	assert.Equal(t, []int{0, 0, 2}, state.Board, "boards must be independent")
	assert.Equal(t, []int{1, 0, 2}, dup.Board)
}

func TestGameStateBytesRoundTrip(t *testing.T) {
	p := GameParams{5, 5}
	state, err := NewGame(p, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	buf, err := state.Bytes()
	require.NoError(t, err)
	parsed, err := ParseGameStateFromBytes(buf)
	require.NoError(t, err)
	assert.Equal(t, state, parsed)
}
