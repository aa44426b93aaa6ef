package filling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardFromDigits(t *testing.T, p GameParams, digits string) []int {
	t.Helper()
	require.Len(t, digits, p.Size())
	board := make([]int, p.Size())
	for i := range digits {
		board[i] = int(digits[i] - '0')
	}
	return board
}

func TestIsCompleted(t *testing.T) {
	tests := []struct {
		name   string
		params GameParams
		digits string
		want   bool
	}{
		{
			// {0} is a 1-omino, {1,2} a 2-omino; adjacent sizes differ
			name:   "1x3 valid",
			params: GameParams{3, 1},
			digits: "122",
			want:   true,
		},
		{
			// cells 0 and 1 cannot be two size-1 regions: they touch
			name:   "1x3 adjacent ones",
			params: GameParams{3, 1},
			digits: "112",
			want:   false,
		},
		{
			name:   "1x3 unfinished",
			params: GameParams{3, 1},
			digits: "120",
			want:   false,
		},
		{
			// nikoli 7x7 instance, solved
			name:   "7x7 solved",
			params: GameParams{7, 7},
			digits: "6662232336663232331311235422255544325413434443313",
			want:   true,
		},
		{
			// same instance, clues only
			name:   "7x7 clues only",
			params: GameParams{7, 7},
			digits: "6002002030603030000010230420200000305010404003003",
			want:   false,
		},
		{
			name:   "2x2 with a three",
			params: GameParams{2, 2},
			digits: "3331",
			want:   true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			board := boardFromDigits(t, test.params, test.digits)
			assert.Equal(t, test.want, IsCompleted(test.params, board))
		})
	}
}

func TestFormatBoard(t *testing.T) {
	p := GameParams{3, 1}
	got := FormatBoard(p, []int{1, 2, Empty})
	want := "+---+---+---+\n" +
		"| 1 | 2 |   |\n" +
		"+---+---+---+\n"
	assert.Equal(t, want, got)
}

func TestFormatBoardSquare(t *testing.T) {
	p := GameParams{2, 2}
	got := FormatBoard(p, []int{3, 3, 3, 1})
	want := "+---+---+\n" +
		"| 3 | 3 |\n" +
		"+---+---+\n" +
		"| 3 | 1 |\n" +
		"+---+---+\n"
	assert.Equal(t, want, got)
}
