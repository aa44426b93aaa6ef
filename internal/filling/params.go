// source: https://git.tartarus.org/simon/puzzles.git/filling.c

package filling

import (
	"fmt"
	"strconv"
	"strings"
)

type GameParams struct {
	Width, Height int
}

func (p GameParams) Encode() string {
	return fmt.Sprintf("%dx%d", p.Width, p.Height)
}

func (p GameParams) Size() int {
	return p.Width * p.Height
}

// MaxValue is the largest region size (and board digit) permitted for
// this grid. Normally max(w, h) with a floor of 3, capped at 9 so that
// every value encodes as a single ASCII digit. The floor of 3 exists
// for the 2x2 grid, which cannot satisfy the no-equal-adjacent-sizes
// rule with values <= 2; grids with a side of 1 are unaffected since a
// region can never outgrow the longer side there.
func (p GameParams) MaxValue() int {
	m := max(p.Width, p.Height, 3)
	return min(m, 9)
}

// ParseParams decodes "7" or "7x7" style parameter strings.
func ParseParams(s string) (GameParams, error) {
	var p GameParams
	ws, hs, found := strings.Cut(s, "x")
	if !found {
		hs = ws
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return p, fmt.Errorf("invalid game params %q: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return p, fmt.Errorf("invalid game params %q: %w", s, err)
	}
	p = GameParams{Width: w, Height: h}
	return p, p.Validate()
}

func (p GameParams) Validate() error {
	if p.Width < 1 {
		return fmt.Errorf("width must be at least one")
	}
	if p.Height < 1 {
		return fmt.Errorf("height must be at least one")
	}
	return nil
}

// ValidateDesc checks a puzzle description: exactly w*h ASCII digits,
// row-major, '0' for a blank, no digit above MaxValue.
func (p GameParams) ValidateDesc(desc string) error {
	sz := p.Size()
	m := byte('0' + p.MaxValue())
	for i := 0; i < len(desc) && i < sz; i++ {
		if desc[i] < '0' || desc[i] > '9' {
			return fmt.Errorf("non-digit in string")
		}
		if desc[i] > m {
			return fmt.Errorf("too large digit in string")
		}
	}
	if len(desc) > sz {
		return fmt.Errorf("string too long")
	}
	if len(desc) < sz {
		return fmt.Errorf("string too short")
	}
	return nil
}

func (p GameParams) InBounds(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}
