// source: https://git.tartarus.org/simon/puzzles.git/filling.c

package filling

import (
	"slices"
	"strings"

	"github.com/vancomm/filling-server/internal/dsf"
)

/* Solving techniques:
 *
 * CONNECTED COMPONENT FORCED EXPANSION (too big):
 * When a region can only be expanded in one direction, because all the
 * other ones would make it too big.
 *  +---+---+---+---+---+
 *  | 2 | 2 |   | 2 | _ |
 *  +---+---+---+---+---+
 *
 * CONNECTED COMPONENT FORCED EXPANSION (too small):
 * When a region must include a particular cell, because otherwise
 * there would not be enough room to complete it.
 *  +---+---+
 *  | 2 | _ |
 *  +---+---+
 *
 * DROPPING IN A ONE:
 * When an empty cell has no neighbouring empty cells and only a 1 will
 * go into the cell (any other region would become too big).
 *  +---+---+---+
 *  | 2 | 2 | _ |
 *  +---+---+---+
 *
 * No case-splitting, no backtracking: a puzzle that requires guessing
 * reaches a fixed point with empty cells left over and Solve reports
 * failure, even when a solution exists.
 */

type solver struct {
	p      GameParams
	board  []int
	d      *dsf.DSF
	nempty int

	// flood-fill scratch, reused across calls
	visited []bool
	stack   []int
	marked  []int
}

func newSolver(p GameParams, orig []int) *solver {
	sz := p.Size()
	s := &solver{
		p:       p,
		board:   slices.Clone(orig),
		d:       dsf.New(sz),
		visited: make([]bool, sz),
		stack:   make([]int, 0, sz),
		marked:  make([]int, 0, sz),
	}
	for i, v := range s.board {
		if v == Empty {
			s.nempty++
			continue
		}
		for k := range 4 {
			if idx, ok := p.neighbor(i, k); ok && s.board[idx] == v {
				s.d.Merge(i, idx)
			}
		}
	}
	return s
}

// expand assigns src's value to the empty cell dst and joins dst with
// every equal-valued neighbor.
func (s *solver) expand(dst, src int) {
	if s.board[dst] != Empty {
		panic(AssertionError{"expand target is not empty"})
	}
	if s.board[src] == Empty {
		panic(AssertionError{"expand source is empty"})
	}
	s.board[dst] = s.board[src]
	for k := range 4 {
		if idx, ok := s.p.neighbor(dst, k); ok && s.board[idx] == s.board[dst] {
			s.d.Merge(dst, idx)
		}
	}
	s.nempty--
}

// expandSize returns the size cell i's region would have if i held the
// value n: one for i itself plus every distinct neighboring class of
// value n. A cell has at most 4 neighbors, so a fixed-size seen list
// suffices for deduplication.
func (s *solver) expandSize(i, n int) int {
	size := 1
	var hits [4]int
	nhits := 0
	for k := range 4 {
		idx, ok := s.p.neighbor(i, k)
		if !ok || s.board[idx] != n {
			continue
		}
		root := s.d.Canonify(idx)
		seen := false
		for m := range nhits {
			if hits[m] == root {
				seen = true
				break
			}
		}
		if seen {
			continue
		}
		size += s.d.Size(root)
		hits[nhits] = root
		nhits++
	}
	return size
}

// reachable counts the cells reachable from `from` walking only cells
// valued board[from] or empty, with `wall` treated as impassable.
// `from` itself is included in the count. The walk keeps an explicit
// stack; grid sizes are caller-controlled and a recursive walk could
// exhaust the call stack.
func (s *solver) reachable(from, wall int) int {
	n := s.board[from]
	count := 0

	s.visited[wall] = true
	s.marked = append(s.marked[:0], wall)
	s.stack = append(s.stack[:0], from)

	for len(s.stack) > 0 {
		i := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		if s.visited[i] {
			continue
		}
		if s.board[i] != Empty && s.board[i] != n {
			continue
		}
		s.visited[i] = true
		s.marked = append(s.marked, i)
		count++
		for k := range 4 {
			if idx, ok := s.p.neighbor(i, k); ok && !s.visited[idx] {
				s.stack = append(s.stack, idx)
			}
		}
	}

	for _, i := range s.marked {
		s.visited[i] = false
	}
	return count
}

// emptyCellRule tries to fill the empty cell i. A numbered neighbor
// whose region cannot reach its target size without i forces i to join
// that region. Failing that, if no neighbor is empty and every
// numbered neighbor either is a 1 or would overshoot its target by
// absorbing i, the only value left for i is a fresh 1.
func (s *solver) emptyCellRule(i int) bool {
	one := true
	for k := range 4 {
		idx, ok := s.p.neighbor(i, k)
		if !ok {
			continue
		}
		if s.board[idx] == Empty {
			one = false
			continue
		}
		if one && (s.board[idx] == 1 ||
			s.board[idx] >= s.expandSize(i, s.board[idx])) {
			one = false
		}
		if s.reachable(idx, i) >= s.board[idx] {
			continue
		}
		s.expand(i, idx)
		return true
	}
	if one {
		s.board[i] = 1
		s.nempty--
		return true
	}
	return false
}

// regionRule tries to grow the incomplete region rooted at i. Every
// adjacent empty cell that would not push the region past its target
// is a candidate; the expansion is forced only when exactly one
// candidate exists. Two or more candidates leave the region ambiguous
// for this pass.
func (s *solver) regionRule(i int) bool {
	target := s.board[i]
	exp := -1
	for j := range s.d.Component(i) {
		for k := range 4 {
			idx, ok := s.p.neighbor(j, k)
			if !ok || s.board[idx] != Empty || idx == exp {
				continue
			}
			if s.expandSize(idx, target) > target {
				continue
			}
			if exp != -1 {
				return false
			}
			exp = idx
		}
	}
	if exp == -1 {
		return false
	}
	s.expand(exp, i)
	return true
}

// run repeats full deduction passes until a pass learns nothing or the
// board is full. Every deduction fills exactly one cell, so the number
// of passes is bounded by the grid size.
func (s *solver) run() bool {
	for {
		learn := false
		for i := range s.board {
			if s.board[i] == Empty {
				if s.emptyCellRule(i) {
					learn = true
				}
				continue
			}
			j := s.d.Canonify(i)
			if i != j {
				continue
			}
			if s.d.Size(j) == s.board[j] {
				continue
			}
			if s.regionRule(i) {
				learn = true
			}
		}
		if !learn || s.nempty == 0 {
			break
		}
	}
	return s.nempty == 0
}

// Solve applies local deduction rules to a partially filled board
// until a fixed point. It returns the resulting board and whether
// every cell was resolved. The input board is never modified. A false
// result means this engine found no solution, not that none exists.
func Solve(p GameParams, board []int) ([]int, bool) {
	s := newSolver(p, board)
	ok := s.run()
	return s.board, ok
}

// SolutionMove solves the board and encodes the result as a move
// string: the tag 's' followed by one digit per cell.
func SolutionMove(p GameParams, board []int) (string, bool) {
	solved, ok := Solve(p, board)
	if !ok {
		return "", false
	}
	var b strings.Builder
	b.WriteByte('s')
	for _, v := range solved {
		b.WriteByte(byte('0' + v))
	}
	return b.String(), true
}
