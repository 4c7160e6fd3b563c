package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/y-okubo/dotcell/internal/braille"
	"github.com/y-okubo/dotcell/internal/lesson"
)

// PracticeCLI walks through a lesson's words cell by cell.
type PracticeCLI struct {
	lesson      lesson.Lesson
	stdinReader *bufio.Reader
	out         io.Writer

	bold *color.Color
	dim  *color.Color
}

// NewPracticeCLI creates a practice session for one lesson.
func NewPracticeCLI(l lesson.Lesson, in io.Reader, out io.Writer) *PracticeCLI {
	return &PracticeCLI{
		lesson:      l,
		stdinReader: bufio.NewReader(in),
		out:         out,
		bold:        color.New(color.Bold),
		dim:         color.New(color.Faint),
	}
}

// Run shows each word of the lesson, waiting for Enter between words.
// Typing 'quit' ends the session early.
func (c *PracticeCLI) Run(ctx context.Context) error {
	c.bold.Fprintf(c.out, "Lesson: %s\n", c.lesson.Name)
	if c.lesson.Description != "" {
		fmt.Fprintln(c.out, c.lesson.Description)
	}
	fmt.Fprintln(c.out)

	for i, word := range c.lesson.Words {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.bold.Fprintf(c.out, "%d/%d  %s\n", i+1, len(c.lesson.Words), strings.ToUpper(word))
		for _, cell := range braille.Cells(word) {
			labels := make([]string, 0, len(cell.Dots))
			for _, d := range cell.Dots {
				labels = append(labels, braille.DotLabels[d])
			}
			c.dim.Fprintf(c.out, "  %s %c  %s\n",
				cell.Letter, braille.Pattern(cell.Dots), strings.Join(labels, ", "))
		}

		if i == len(c.lesson.Words)-1 {
			break
		}
		fmt.Fprint(c.out, "Press Enter for the next word (or 'quit'): ")
		input, err := c.stdinReader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				break
			}
			return err
		}
		if answer := strings.TrimSpace(input); answer == "quit" || answer == "exit" {
			break
		}
		fmt.Fprintln(c.out)
	}

	fmt.Fprintln(c.out, "Practice session ended.")
	return nil
}
