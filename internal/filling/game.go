// source: https://git.tartarus.org/simon/puzzles.git/filling.c

package filling

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
)

// GameState is one play session. Clues is the immutable given subset
// of the solved board, shared between duplicated states; only Board is
// private to a session and safe to mutate.
type GameState struct {
	GameParams
	Clues     []int
	Board     []int
	Completed bool
	Cheated   bool
}

// NewGame generates a fresh puzzle with a minimized clue set.
func NewGame(p GameParams, r *rand.Rand) (state *GameState, err error) {
	defer func() {
		var ae AssertionError
		if rec := recover(); rec != nil {
			if e, ok := rec.(error); ok && errors.As(e, &ae) {
				state, err = nil, ae
				return
			}
			panic(rec)
		}
	}()

	if err := p.Validate(); err != nil {
		return nil, err
	}
	desc, _ := NewGameDesc(p, r)
	return NewGameFromDesc(p, desc)
}

// NewGameFromDesc builds a play state from a puzzle description
// string, validating it first.
func NewGameFromDesc(p GameParams, desc string) (*GameState, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := p.ValidateDesc(desc); err != nil {
		return nil, err
	}
	clues := make([]int, p.Size())
	for i := range clues {
		clues[i] = int(desc[i] - '0')
	}
	state := &GameState{
		GameParams: p,
		Clues:      clues,
		Board:      slices.Clone(clues),
	}
	state.Completed = IsCompleted(p, state.Board)
	return state, nil
}

// Dup copies the play state. The clue array is shared read-only; the
// board is private to each copy.
func (s *GameState) Dup() *GameState {
	return &GameState{
		GameParams: s.GameParams,
		Clues:      s.Clues,
		Board:      slices.Clone(s.Board),
		Completed:  s.Completed,
		Cheated:    s.Cheated,
	}
}

// Desc re-encodes the clue set as a description string.
func (s *GameState) Desc() string {
	var b strings.Builder
	for _, v := range s.Clues {
		b.WriteByte(byte('0' + v))
	}
	return b.String()
}

var ErrBadMove = errors.New("malformed move")

// ApplyMove executes an encoded move: either "s" followed by one digit
// per cell (a full solution, marking the state cheated), or
// "<index>_<value>" for a single cell edit. Malformed encodings,
// out-of-range indices or values, and edits to clue cells are rejected
// without touching the state.
func (s *GameState) ApplyMove(move string) error {
	sz := s.Size()

	if strings.HasPrefix(move, "s") {
		rest := move[1:]
		if len(rest) != sz {
			return fmt.Errorf("%w: solution length %d, want %d", ErrBadMove, len(rest), sz)
		}
		board := make([]int, sz)
		for i := range rest {
			if rest[i] < '0' || rest[i] > '9' {
				return fmt.Errorf("%w: non-digit in solution", ErrBadMove)
			}
			board[i] = int(rest[i] - '0')
		}
		s.Board = board
		s.Cheated = true
		s.checkCompleted()
		return nil
	}

	is, vs, found := strings.Cut(move, "_")
	if !found {
		return fmt.Errorf("%w: missing separator", ErrBadMove)
	}
	i, err := strconv.Atoi(is)
	if err != nil {
		return fmt.Errorf("%w: bad cell index: %s", ErrBadMove, is)
	}
	v, err := strconv.Atoi(vs)
	if err != nil {
		return fmt.Errorf("%w: bad cell value: %s", ErrBadMove, vs)
	}
	if i < 0 || i >= sz {
		return fmt.Errorf("%w: cell index out of range", ErrBadMove)
	}
	if v < 0 || v > s.MaxValue() {
		return fmt.Errorf("%w: cell value out of range", ErrBadMove)
	}
	if s.Clues[i] != Empty {
		return fmt.Errorf("%w: cell %d is a clue", ErrBadMove, i)
	}
	s.Board[i] = v
	s.checkCompleted()
	return nil
}

// Solution runs the solver over the current board and returns the
// solved board as an applicable move string.
func (s *GameState) Solution() (string, error) {
	move, ok := SolutionMove(s.GameParams, s.Board)
	if !ok {
		return "", errors.New("no solution found")
	}
	return move, nil
}

func (s *GameState) checkCompleted() {
	if !s.Completed {
		s.Completed = IsCompleted(s.GameParams, s.Board)
	}
}

func ParseGameStateFromBytes(buf []byte) (*GameState, error) {
	var state GameState
	err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&state)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s GameState) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(s)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
