package aips_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jive-vlbi/ptboot/pkg/aips"
)

func TestEhex(t *testing.T) {
	tests := []struct {
		name     string
		num      int
		width    int
		padding  string
		expected string
	}{
		{
			name:     "one_hundred",
			num:      100,
			expected: "2S",
		},
		{
			name:     "one_hundred_padded",
			num:      100,
			width:    4,
			padding:  "0",
			expected: "002S",
		},
		{
			name:     "single_digit",
			num:      1,
			width:    2,
			padding:  "0",
			expected: "01",
		},
		{
			name:     "alphabetic_digit",
			num:      35,
			expected: "Z",
		},
		{
			name:     "rollover",
			num:      36,
			expected: "10",
		},
		{
			name:     "zero_without_padding",
			num:      0,
			expected: "",
		},
		{
			name:     "zero_with_padding",
			num:      0,
			width:    2,
			padding:  "0",
			expected: "00",
		},
		{
			name:     "width_smaller_than_result",
			num:      100,
			width:    1,
			padding:  "0",
			expected: "2S",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, aips.Ehex(tt.num, tt.width, tt.padding))
		})
	}
}
