package filling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseParams(t *testing.T) {
	tests := []struct {
		in   string
		want GameParams
	}{
		{"7x7", GameParams{7, 7}},
		{"7", GameParams{7, 7}},
		{"13x9", GameParams{13, 9}},
		{"1x1", GameParams{1, 1}},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			p, err := ParseParams(test.in)
			assert.NoError(t, err)
			assert.Equal(t, test.want, p)
			assert.Equal(t, test.want.Encode(), p.Encode())
		})
	}
}

func TestParseParamsRejects(t *testing.T) {
	for _, in := range []string{"", "x", "x3", "3x", "0x5", "5x0", "-1x4", "axb"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseParams(in)
			assert.Error(t, err)
		})
	}
}

func TestMaxValue(t *testing.T) {
	tests := []struct {
		params GameParams
		want   int
	}{
		{GameParams{7, 7}, 7},
		{GameParams{5, 3}, 5},
		{GameParams{13, 9}, 9},
		{GameParams{3, 1}, 3},
		{GameParams{1, 1}, 3},
		// a 2x2 grid needs regions of size 3 even though max(w,h) is 2
		{GameParams{2, 2}, 3},
	}
	for _, test := range tests {
		t.Run(test.params.Encode(), func(t *testing.T) {
			assert.Equal(t, test.want, test.params.MaxValue())
		})
	}
}

func TestValidateDesc(t *testing.T) {
	p := GameParams{7, 7}
	assert.NoError(t, p.ValidateDesc("6002002030603030000010230420200000305010404003003"))

	tests := []struct {
		name    string
		params  GameParams
		desc    string
		wantErr string
	}{
		{"non-digit", GameParams{3, 1}, "1a2", "non-digit in string"},
		{"too large digit", GameParams{5, 5}, "8000000000000000000000000", "too large digit in string"},
		{"too long", GameParams{3, 1}, "1220", "string too long"},
		{"too short", GameParams{3, 1}, "12", "string too short"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.params.ValidateDesc(test.desc)
			assert.EqualError(t, err, test.wantErr)
		})
	}
}

// digit '3' is legal on a 2x2 grid despite exceeding max(w, h)
func TestValidateDescTwoByTwo(t *testing.T) {
	p := GameParams{2, 2}
	assert.NoError(t, p.ValidateDesc("3331"))
	assert.EqualError(t, p.ValidateDesc("4331"), "too large digit in string")
}
