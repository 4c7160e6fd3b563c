// Package braille provides the 6-dot Braille alphabet table and dot
// position descriptions used by the tutoring prompt, the fallback
// renderer and the CLI.
package braille

import (
	"sort"
	"strings"
)

// Alphabet maps each uppercase letter to the raised dot positions of its
// Braille cell, using standard 6-dot numbering (1 top-left, 2 mid-left,
// 3 bottom-left, 4 top-right, 5 mid-right, 6 bottom-right). Read-only
// after package init.
var Alphabet = map[string][]int{
	"A": {1}, "B": {1, 2}, "C": {1, 4}, "D": {1, 4, 5}, "E": {1, 5},
	"F": {1, 2, 4}, "G": {1, 2, 4, 5}, "H": {1, 2, 5}, "I": {2, 4},
	"J": {2, 4, 5}, "K": {1, 3}, "L": {1, 2, 3}, "M": {1, 3, 4},
	"N": {1, 3, 4, 5}, "O": {1, 3, 5}, "P": {1, 2, 3, 4}, "Q": {1, 2, 3, 4, 5},
	"R": {1, 2, 3, 5}, "S": {2, 3, 4}, "T": {2, 3, 4, 5}, "U": {1, 3, 6},
	"V": {1, 2, 3, 6}, "W": {2, 4, 5, 6}, "X": {1, 3, 4, 6},
	"Y": {1, 3, 4, 5, 6}, "Z": {1, 3, 5, 6},
}

// DotLabels maps a dot position to its spatial description within a cell.
var DotLabels = map[int]string{
	1: "top left first dot",
	2: "middle left second dot",
	3: "bottom left third dot",
	4: "top right fourth dot",
	5: "middle right fifth dot",
	6: "bottom right sixth dot",
}

// DefaultDots is returned by Lookup for any input that is not a single
// letter A-Z. Unknown input is never an error.
var DefaultDots = []int{1}

// Cell is one letter together with its raised dot positions.
type Cell struct {
	Letter string `json:"letter" yaml:"letter"`
	Dots   []int  `json:"dots" yaml:"dots"`
}

// Lookup returns the dot positions for a single letter, case-insensitive.
// Empty strings, words and non-letters return DefaultDots.
func Lookup(letter string) []int {
	dots, ok := Alphabet[strings.ToUpper(strings.TrimSpace(letter))]
	if !ok {
		return DefaultDots
	}
	return dots
}

// Cells expands a word into one cell per letter, in order. Characters
// outside A-Z get the default cell.
func Cells(word string) []Cell {
	word = strings.ToUpper(strings.TrimSpace(word))
	cells := make([]Cell, 0, len(word))
	for _, r := range word {
		cells = append(cells, Cell{
			Letter: string(r),
			Dots:   Lookup(string(r)),
		})
	}
	return cells
}

// Pattern returns the Unicode braille pattern for the given dot positions.
// The U+2800 block encodes dots 1-6 as the low six bits.
func Pattern(dots []int) rune {
	var bits rune
	for _, d := range dots {
		if d < 1 || d > 6 {
			continue
		}
		bits |= 1 << (d - 1)
	}
	return '⠀' + bits
}

// Letters returns the alphabet keys in order. The map iteration order is
// unstable, so prompt construction and the CLI sort once here.
func Letters() []string {
	letters := make([]string, 0, len(Alphabet))
	for letter := range Alphabet {
		letters = append(letters, letter)
	}
	sort.Strings(letters)
	return letters
}
