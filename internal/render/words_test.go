package render

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestToWords(t *testing.T) {
	tests := []struct {
		number   int
		expected string
	}{
		{0, "zero"},
		{1, "one"},
		{12, "twelve"},
		{19, "nineteen"},
		{20, "twenty"},
		{42, "forty_two"},
		{100, "one_hundred"},
		{112, "one_hundred_twelve"},
		{255, "two_hundred_fifty_five"},
		{1000, "one_thousand"},
		{1001, "one_thousand_one"},
		{2340, "two_thousand_three_hundred_forty"},
		{9999, "nine_thousand_nine_hundred_ninety_nine"},
	}

	for _, tt := range tests {
		words, ok := ToWords(tt.number)
		assert.True(t, ok)
		assert.Equal(t, tt.expected, words)
	}
}

func TestToWordsOutOfRange(t *testing.T) {
	for _, n := range []int{-1, MaxWords + 1, 1 << 20} {
		words, ok := ToWords(n)
		assert.False(t, ok)
		assert.Equal(t, "", words)
	}
}
