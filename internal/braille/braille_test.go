package braille

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabet(t *testing.T) {
	t.Run("every letter has a valid non-empty dot set", func(t *testing.T) {
		require.Len(t, Alphabet, 26)
		for letter := 'A'; letter <= 'Z'; letter++ {
			dots, ok := Alphabet[string(letter)]
			require.True(t, ok, "missing letter %c", letter)
			require.NotEmpty(t, dots, "empty dots for %c", letter)

			seen := map[int]bool{}
			for _, d := range dots {
				assert.GreaterOrEqual(t, d, 1, "dot below range for %c", letter)
				assert.LessOrEqual(t, d, 6, "dot above range for %c", letter)
				assert.False(t, seen[d], "duplicate dot %d for %c", d, letter)
				seen[d] = true
			}
		}
	})

	t.Run("dot labels cover all six positions", func(t *testing.T) {
		require.Len(t, DotLabels, 6)
		for d := 1; d <= 6; d++ {
			assert.NotEmpty(t, DotLabels[d])
		}
	})
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		letter string
		want   []int
	}{
		{
			name:   "uppercase letter",
			letter: "A",
			want:   []int{1},
		},
		{
			name:   "lowercase letter is normalized",
			letter: "z",
			want:   []int{1, 3, 5, 6},
		},
		{
			name:   "surrounding whitespace is trimmed",
			letter: " w ",
			want:   []int{2, 4, 5, 6},
		},
		{
			name:   "empty string returns the default",
			letter: "",
			want:   []int{1},
		},
		{
			name:   "multi-letter word returns the default",
			letter: "CAT",
			want:   []int{1},
		},
		{
			name:   "non-letter returns the default",
			letter: "7",
			want:   []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lookup(tt.letter))
		})
	}
}

func TestCells(t *testing.T) {
	tests := []struct {
		name string
		word string
		want []Cell
	}{
		{
			name: "word expands letter by letter",
			word: "cat",
			want: []Cell{
				{Letter: "C", Dots: []int{1, 4}},
				{Letter: "A", Dots: []int{1}},
				{Letter: "T", Dots: []int{2, 3, 4, 5}},
			},
		},
		{
			name: "unknown characters use the default cell",
			word: "A1",
			want: []Cell{
				{Letter: "A", Dots: []int{1}},
				{Letter: "1", Dots: []int{1}},
			},
		},
		{
			name: "empty word yields no cells",
			word: "",
			want: []Cell{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Cells(tt.word))
		})
	}
}

func TestPattern(t *testing.T) {
	tests := []struct {
		name string
		dots []int
		want rune
	}{
		{
			name: "dot 1 only",
			dots: []int{1},
			want: '⠁',
		},
		{
			name: "full cell",
			dots: []int{1, 2, 3, 4, 5, 6},
			want: '⠿',
		},
		{
			name: "out of range dots are ignored",
			dots: []int{1, 7, 0},
			want: '⠁',
		},
		{
			name: "no dots is the blank pattern",
			dots: nil,
			want: '⠀',
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pattern(tt.dots))
		})
	}
}

func TestLetters(t *testing.T) {
	letters := Letters()
	require.Len(t, letters, 26)
	assert.Equal(t, "A", letters[0])
	assert.Equal(t, "Z", letters[25])
	assert.IsIncreasing(t, letters)
}
