// Package tutor composes tutoring responses about the Braille alphabet,
// preferring an inference client and downgrading to a deterministic dot
// lookup when the client is absent or fails.
package tutor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/y-okubo/dotcell/internal/braille"
	"github.com/y-okubo/dotcell/internal/inference"
)

// Source identifies which path produced a response.
type Source string

const (
	SourceLLM      Source = "llm"
	SourceFallback Source = "fallback"
)

// Query is one tutoring request. TargetLetter may be a single letter, a
// word, or empty.
type Query struct {
	Input        string `json:"input"`
	TargetLetter string `json:"targetLetter,omitempty"`
}

// Response is the composed answer. Error is advisory only: it is set when
// the inference path failed and the fallback text was used instead.
type Response struct {
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
	Source   Source `json:"-"`
}

// Composer produces tutoring responses. The inference client is captured
// once at construction; a nil client means fallback-only mode.
type Composer struct {
	client inference.Client
	logger *slog.Logger
}

// NewComposer creates a Composer. client may be nil when no credential is
// configured.
func NewComposer(client inference.Client, logger *slog.Logger) *Composer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Composer{
		client: client,
		logger: logger,
	}
}

// Compose answers a tutoring query. It never returns an error: any
// inference failure downgrades to the deterministic fallback text with
// the cause attached to the Error field.
func (c *Composer) Compose(ctx context.Context, query Query) Response {
	if c.client == nil {
		return Response{
			Response: fallbackText(query.TargetLetter),
			Source:   SourceFallback,
		}
	}

	answer, err := c.client.AnswerQuestion(ctx, inference.AnswerQuestionRequest{
		Prompt: buildPrompt(query),
	})
	if err != nil {
		c.logger.Warn("inference failed, using fallback response",
			"target", query.TargetLetter,
			"error", err,
		)
		return Response{
			Response: fallbackText(query.TargetLetter),
			Error:    fmt.Sprintf("answer question: %v", err),
			Source:   SourceFallback,
		}
	}

	return Response{
		Response: answer.Text,
		Source:   SourceLLM,
	}
}

// fallbackText renders the deterministic dot list for the target. A word
// or unrecognized target falls through to the default dot-1 cell, same as
// any other unknown single letter.
func fallbackText(target string) string {
	dots := braille.Lookup(target)
	parts := make([]string, 0, len(dots))
	for _, d := range dots {
		parts = append(parts, fmt.Sprintf("dot %d", d))
	}
	if target == "" {
		target = "unknown"
	}
	return fmt.Sprintf("For %s, press %s.", target, strings.Join(parts, ", "))
}
