package filling

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolveForcedExpansion(t *testing.T) {
	// the size-2 region at cell 1 has exactly one empty neighbor left
	p := GameParams{3, 1}
	solved, ok := Solve(p, []int{1, 2, Empty})
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2, 2}, solved)
}

func TestSolveForcedJoin(t *testing.T) {
	// the 3 at cell 2 cannot reach size 3 without every cell in the row
	p := GameParams{3, 1}
	solved, ok := Solve(p, []int{Empty, Empty, 3})
	assert.True(t, ok)
	assert.Equal(t, []int{3, 3, 3}, solved)
}

func TestSolveDropsInAOne(t *testing.T) {
	// expanding the completed 2-omino into cell 2 would overshoot, so
	// cell 2 can only hold a fresh 1
	p := GameParams{3, 1}
	solved, ok := Solve(p, []int{2, 2, Empty})
	assert.True(t, ok)
	assert.Equal(t, []int{2, 2, 1}, solved)
}

func TestSolveIdempotentOnCompleteBoard(t *testing.T) {
	p := GameParams{7, 7}
	board := boardFromDigits(t, p,
		"6662232336663232331311235422255544325413434443313")
	orig := slices.Clone(board)

	solved, ok := Solve(p, board)
	assert.True(t, ok)
	assert.Equal(t, orig, solved)
	assert.Equal(t, orig, board, "input board must not be modified")
}

func TestSolveAmbiguousReportsFailure(t *testing.T) {
	// the 2 at cell 1 can grow either way; no local rule decides
	p := GameParams{3, 1}
	_, ok := Solve(p, []int{Empty, 2, Empty})
	assert.False(t, ok)
}

func TestSolveEmptyBoardReportsFailure(t *testing.T) {
	p := GameParams{2, 2}
	_, ok := Solve(p, []int{Empty, Empty, Empty, Empty})
	assert.False(t, ok)
}

func TestSolutionMove(t *testing.T) {
	p := GameParams{3, 1}

	move, ok := SolutionMove(p, []int{1, 2, Empty})
	assert.True(t, ok)
	assert.Equal(t, "s122", move)

	_, ok = SolutionMove(p, []int{Empty, 2, Empty})
	assert.False(t, ok)
}
