package tutor

import (
	"fmt"
	"strings"

	"github.com/y-okubo/dotcell/internal/braille"
)

// buildPrompt assembles the single user-role prompt for one query. The
// full alphabet and the dot position labels are embedded so the model
// never has to guess a cell.
func buildPrompt(query Query) string {
	var b strings.Builder

	b.WriteString("You are a patient, friendly Braille tutor for blind users. ")
	b.WriteString("The Braille alphabet is: ")
	b.WriteString(alphabetText())
	b.WriteString(". Dot positions in a cell are: ")
	b.WriteString(dotLabelsText())
	b.WriteString(". ")

	fmt.Fprintf(&b, "User asked: %q. ", query.Input)
	fmt.Fprintf(&b, "Target letter or word: %q. ", query.TargetLetter)

	b.WriteString("Generate a concise, conversational response in simple language. ")
	b.WriteString("For a single letter (e.g., 'A'), describe its dots using the positions above. ")
	b.WriteString("Example: 'For A, press the top left first dot.' ")
	b.WriteString("For a word (e.g., 'CAT'), describe each letter's dots, e.g., ")
	b.WriteString("'C is top left first dot and top right fourth dot, A is top left first dot, ")
	b.WriteString("T is middle left second dot, bottom left third dot, and middle right fifth dot.' ")
	b.WriteString("For 'What is the 6-dot cell?', say: 'The 6-dot Braille cell has: ")
	b.WriteString("Dot 1 is top left, Dot 2 is middle left, Dot 3 is bottom left, ")
	b.WriteString("Dot 4 is top right, Dot 5 is middle right, Dot 6 is bottom right.' ")
	b.WriteString("Vary the phrasing to sound natural and engaging. Keep it under 100 words.")

	return b.String()
}

func alphabetText() string {
	entries := make([]string, 0, 26)
	for _, letter := range braille.Letters() {
		dots := braille.Alphabet[letter]
		parts := make([]string, 0, len(dots))
		for _, d := range dots {
			parts = append(parts, fmt.Sprintf("%d", d))
		}
		entries = append(entries, fmt.Sprintf("%s=[%s]", letter, strings.Join(parts, ",")))
	}
	return strings.Join(entries, " ")
}

func dotLabelsText() string {
	entries := make([]string, 0, 6)
	for d := 1; d <= 6; d++ {
		entries = append(entries, fmt.Sprintf("%d=%s", d, braille.DotLabels[d]))
	}
	return strings.Join(entries, ", ")
}
