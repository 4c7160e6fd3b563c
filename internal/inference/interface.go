package inference

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client interface defines the methods for AI inference operations
type Client interface {
	AnswerQuestion(ctx context.Context, params AnswerQuestionRequest) (AnswerQuestionResponse, error)
}

// AnswerQuestionRequest holds the tutoring prompt for one completion call
type AnswerQuestionRequest struct {
	Prompt string `json:"prompt"`
}

// AnswerQuestionResponse holds the trimmed text of the first returned choice
type AnswerQuestionResponse struct {
	Text string `json:"text"`
}

const (
	DefaultMaxRetryAttempts = 2
)
