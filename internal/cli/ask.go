// Package cli provides the interactive terminal sessions for tutoring
// and lesson practice.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/y-okubo/dotcell/internal/braille"
	"github.com/y-okubo/dotcell/internal/tutor"
)

// AskCLI manages an interactive tutoring session.
type AskCLI struct {
	composer    *tutor.Composer
	stdinReader *bufio.Reader
	out         io.Writer

	bold    *color.Color
	dim     *color.Color
	warning *color.Color
}

// NewAskCLI creates a new interactive tutoring session.
func NewAskCLI(composer *tutor.Composer, in io.Reader, out io.Writer) *AskCLI {
	return &AskCLI{
		composer:    composer,
		stdinReader: bufio.NewReader(in),
		out:         out,
		bold:        color.New(color.Bold),
		dim:         color.New(color.Faint),
		warning:     color.New(color.FgYellow),
	}
}

// Run loops tutoring sessions until the user quits or input ends.
func (c *AskCLI) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "Braille tutoring session started!")
	fmt.Fprintln(c.out, "Ask about letters, words, or the 6-dot cell. Type 'quit' to exit.")
	fmt.Fprintln(c.out)

	for {
		done, err := c.session(ctx)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if done {
			return nil
		}
	}
}

func (c *AskCLI) session(ctx context.Context) (bool, error) {
	fmt.Fprint(c.out, "Question: ")
	questionInput, err := c.stdinReader.ReadString('\n')
	if err != nil {
		return false, err
	}
	question := strings.TrimSpace(questionInput)

	if question == "quit" || question == "exit" {
		fmt.Fprintln(c.out, "Tutoring session ended.")
		return true, nil
	}
	if question == "" {
		return false, nil
	}

	fmt.Fprint(c.out, "Target letter or word (optional): ")
	targetInput, err := c.stdinReader.ReadString('\n')
	if err != nil {
		return false, err
	}
	target := strings.TrimSpace(targetInput)

	response := c.composer.Compose(ctx, tutor.Query{
		Input:        question,
		TargetLetter: target,
	})

	fmt.Fprintln(c.out)
	c.bold.Fprintln(c.out, response.Response)
	if response.Error != "" {
		c.warning.Fprintf(c.out, "(answered without the tutor model: %s)\n", response.Error)
	}
	if target != "" {
		c.printCells(target)
	}
	fmt.Fprintln(c.out)

	return false, nil
}

// printCells renders the target's braille patterns and dot lists.
func (c *AskCLI) printCells(target string) {
	for _, cell := range braille.Cells(target) {
		parts := make([]string, 0, len(cell.Dots))
		for _, d := range cell.Dots {
			parts = append(parts, fmt.Sprintf("%d", d))
		}
		c.dim.Fprintf(c.out, "  %s %c  dots %s\n",
			cell.Letter, braille.Pattern(cell.Dots), strings.Join(parts, ", "))
	}
}
