package tutor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/y-okubo/dotcell/internal/braille"
	"github.com/y-okubo/dotcell/internal/inference"
	mock_inference "github.com/y-okubo/dotcell/internal/mocks/inference"
)

func TestComposer_Compose_Fallback(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  Response
	}{
		{
			name:  "single dot letter",
			query: Query{Input: "tell me about A", TargetLetter: "A"},
			want: Response{
				Response: "For A, press dot 1.",
				Source:   SourceFallback,
			},
		},
		{
			name:  "multi dot letter",
			query: Query{Input: "tell me about CAT", TargetLetter: "Z"},
			want: Response{
				Response: "For Z, press dot 1, dot 3, dot 5, dot 6.",
				Source:   SourceFallback,
			},
		},
		{
			name:  "absent target defaults to unknown",
			query: Query{Input: "hello"},
			want: Response{
				Response: "For unknown, press dot 1.",
				Source:   SourceFallback,
			},
		},
		{
			name:  "word target falls through to the default cell",
			query: Query{Input: "tell me about CAT", TargetLetter: "CAT"},
			want: Response{
				Response: "For CAT, press dot 1.",
				Source:   SourceFallback,
			},
		},
		{
			name:  "lowercase target keeps its casing in the text",
			query: Query{Input: "what about b", TargetLetter: "b"},
			want: Response{
				Response: "For b, press dot 1, dot 2.",
				Source:   SourceFallback,
			},
		},
		{
			name:  "empty input still yields a response",
			query: Query{},
			want: Response{
				Response: "For unknown, press dot 1.",
				Source:   SourceFallback,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			composer := NewComposer(nil, nil)
			got := composer.Compose(context.Background(), tt.query)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComposer_Compose_LLM(t *testing.T) {
	t.Run("returns the client answer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockClient := mock_inference.NewMockClient(ctrl)
		mockClient.EXPECT().
			AnswerQuestion(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params inference.AnswerQuestionRequest) (inference.AnswerQuestionResponse, error) {
				assert.Contains(t, params.Prompt, `User asked: "tell me about A"`)
				assert.Contains(t, params.Prompt, `Target letter or word: "A"`)
				assert.Contains(t, params.Prompt, "A=[1]")
				assert.Contains(t, params.Prompt, "Z=[1,3,5,6]")
				assert.Contains(t, params.Prompt, "top left first dot")
				return inference.AnswerQuestionResponse{
					Text: "For A, press just the top left first dot!",
				}, nil
			})

		composer := NewComposer(mockClient, nil)
		got := composer.Compose(context.Background(), Query{Input: "tell me about A", TargetLetter: "A"})

		assert.Equal(t, Response{
			Response: "For A, press just the top left first dot!",
			Source:   SourceLLM,
		}, got)
	})

	t.Run("upstream failure downgrades to the fallback text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockClient := mock_inference.NewMockClient(ctrl)
		mockClient.EXPECT().
			AnswerQuestion(gomock.Any(), gomock.Any()).
			Return(inference.AnswerQuestionResponse{}, errors.New("response error 500: upstream exploded"))

		composer := NewComposer(mockClient, nil)
		got := composer.Compose(context.Background(), Query{Input: "tell me about Z", TargetLetter: "Z"})

		assert.Equal(t, "For Z, press dot 1, dot 3, dot 5, dot 6.", got.Response)
		assert.Equal(t, SourceFallback, got.Source)
		require.NotEmpty(t, got.Error)
		assert.Contains(t, got.Error, "upstream exploded")
	})

	t.Run("failure text matches the no-credential fallback for the same target", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockClient := mock_inference.NewMockClient(ctrl)
		mockClient.EXPECT().
			AnswerQuestion(gomock.Any(), gomock.Any()).
			Return(inference.AnswerQuestionResponse{}, errors.New("i/o timeout"))

		withClient := NewComposer(mockClient, nil)
		withoutClient := NewComposer(nil, nil)
		query := Query{Input: "tell me about W", TargetLetter: "W"}

		gotFailure := withClient.Compose(context.Background(), query)
		gotNoClient := withoutClient.Compose(context.Background(), query)

		assert.Equal(t, gotNoClient.Response, gotFailure.Response)
		assert.Empty(t, gotNoClient.Error)
		assert.NotEmpty(t, gotFailure.Error)
	})
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt(Query{Input: "what is the 6-dot cell?", TargetLetter: ""})

	// Every letter and every dot label must be embedded.
	for letter := 'A'; letter <= 'Z'; letter++ {
		assert.Contains(t, prompt, string(letter)+"=[")
	}
	for _, label := range braille.DotLabels {
		assert.Contains(t, prompt, label)
	}
	assert.Contains(t, prompt, "Keep it under 100 words.")
}
