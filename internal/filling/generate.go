// source: https://git.tartarus.org/simon/puzzles.git/filling.c

package filling

import (
	"log/slog"
	"math/rand/v2"

	"github.com/vancomm/filling-server/internal/dsf"
)

var Log *slog.Logger = slog.Default()

// findConflict scans the cells in the given order and returns the
// first pair of orthogonally adjacent cells whose classes are distinct
// but equally sized - the configuration the final board must not
// contain. a and b are the canonical representatives of that pair; c
// is a neighboring class of the conflict cell whose size differs from
// a's, or -1 when the conflict cell has no such neighbor.
func findConflict(d *dsf.DSF, p GameParams, order []int) (a, b, c int, found bool) {
	a, b, c = -1, -1, -1
	for _, i := range order {
		aa := d.Canonify(i)
		cc := -1
		for k := range 4 {
			idx, ok := p.neighbor(i, k)
			if !ok {
				continue
			}
			bb := d.Canonify(idx)
			if aa == bb {
				continue
			}
			if d.Size(aa) == d.Size(bb) {
				a, b, c = aa, bb, cc
				found = true
			} else if cc == -1 {
				cc = bb
				c = cc
			}
		}
		if found {
			return
		}
	}
	return
}

// MakeBoard generates a complete valid board: every cell holds the
// size of its region and no two equal-sized regions touch.
//
// All cells start as singleton regions, which trivially violates the
// adjacency rule all over the grid. Each repair step picks the first
// conflict in a shuffled scan order and grows one of the two regions.
// Growing prefers a third, different-sized neighbor over the conflict
// partner itself - directly fusing two equal regions doubles them and
// tends to overshoot. A region outgrowing MaxValue makes the attempt
// unrepairable: the tracker resets to singletons and the scan order is
// reshuffled, consuming the same random stream.
func MakeBoard(p GameParams, r *rand.Rand) []int {
	sz := p.Size()
	maxsize := p.MaxValue()

	d := dsf.New(sz)
	board := make([]int, sz)
	order := make([]int, sz)
	for i := range order {
		order[i] = i
	}

	attempt := 0
	for {
		attempt++
		r.Shuffle(sz, func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
		for {
			a, b, c, found := findConflict(d, p, order)
			if !found {
				for i := range board {
					board[i] = d.Size(i)
				}
				if attempt > 1 {
					Log.Debug("board generated", "params", p.Encode(), "attempts", attempt)
				}
				return board
			}
			if c != -1 {
				d.Merge(a, c)
			} else {
				d.Merge(a, b)
			}
			if d.Size(a) > maxsize {
				break
			}
		}
		d.Reset()
	}
}
