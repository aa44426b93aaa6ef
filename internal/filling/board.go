// source: https://git.tartarus.org/simon/puzzles.git/filling.c

package filling

import (
	"strings"

	"github.com/vancomm/filling-server/internal/dsf"
)

// Empty marks a cell with no value yet. Filled cells hold 1..MaxValue.
const Empty = 0

// Orthogonal neighbor offsets, in the order the solver scans them:
// left, right, up, down.
var (
	dx = [4]int{-1, 1, 0, 0}
	dy = [4]int{0, 0, -1, 1}
)

// neighbor returns the index of cell i's k-th orthogonal neighbor, or
// ok=false when it falls off the grid.
func (p GameParams) neighbor(i, k int) (idx int, ok bool) {
	x := i%p.Width + dx[k]
	y := i/p.Width + dy[k]
	if !p.InBounds(x, y) {
		return 0, false
	}
	return y*p.Width + x, true
}

// Regions builds a tracker whose classes are the maximal connected
// groups of equal-valued cells. Empty cells group with adjacent empty
// cells, which is fine for the completion check: an empty cell can
// never satisfy value == size.
func Regions(p GameParams, board []int) *dsf.DSF {
	d := dsf.New(p.Size())
	for i := range board {
		for k := range 4 {
			if idx, ok := p.neighbor(i, k); ok && board[i] == board[idx] {
				d.Merge(i, idx)
			}
		}
	}
	return d
}

// IsCompleted reports whether every cell's value equals the size of
// its region. This is the sole winning condition: it implies the board
// is fully partitioned into correctly sized ominoes, and two adjacent
// equal-sized regions would have merged into one oversized class.
func IsCompleted(p GameParams, board []int) bool {
	d := Regions(p, board)
	for i := range board {
		if board[i] != d.Size(i) {
			return false
		}
	}
	return true
}

/* Example of the plaintext rendering:
 *  +---+---+---+
 *  | 1 | 2 |   |
 *  +---+---+---+
 * Blank cells render as spaces; each column is 4 characters wide plus
 * the closing border, each row is one cell line between border lines.
 */

// FormatBoard renders a board as fixed-width ASCII box art.
func FormatBoard(p GameParams, board []int) string {
	var b strings.Builder

	fence := strings.Repeat("+---", p.Width) + "+\n"

	for y := range p.Height {
		b.WriteString(fence)
		for x := range p.Width {
			b.WriteString("| ")
			if v := board[y*p.Width+x]; v == Empty {
				b.WriteByte(' ')
			} else {
				b.WriteByte(byte('0' + v))
			}
			b.WriteByte(' ')
		}
		b.WriteString("|\n")
	}
	b.WriteString(fence)

	return b.String()
}
