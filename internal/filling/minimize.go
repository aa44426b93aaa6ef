// source: https://git.tartarus.org/simon/puzzles.git/filling.c

package filling

import (
	"math/rand/v2"
	"slices"
	"sort"
)

// NewGameDesc generates a puzzle: a complete board and a minimized
// clue description that the solver can expand back to exactly that
// board. The description holds one digit per cell, '0' for blanks.
//
// Clues are tested for removal in descending value order, largest
// numbers first, ties broken by cell index. Since extra clues only
// ever help the solver, one pass suffices: a clue removable while
// later-priority clues are still present stays removable after those
// are themselves removed, so no kept clue would need re-testing.
func NewGameDesc(p GameParams, r *rand.Rand) (string, []int) {
	sz := p.Size()

	board := MakeBoard(p, r)
	clues := slices.Clone(board)

	order := make([]int, sz)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return board[order[a]] > board[order[b]]
	})

	for _, i := range order {
		clues[i] = Empty
		if _, ok := Solve(p, clues); !ok {
			clues[i] = board[i]
		}
	}

	desc := make([]byte, sz)
	for i, v := range clues {
		if v < 0 || v > 9 {
			panic(AssertionError{"clue out of digit range"})
		}
		desc[i] = byte('0' + v)
	}
	return string(desc), board
}
