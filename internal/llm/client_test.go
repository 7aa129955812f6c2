package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplete_EmptyPrompt(t *testing.T) {
	c := &GeminiClient{model: "gemini-1.5-flash"}

	tests := []struct {
		name   string
		prompt string
	}{
		{"empty string", ""},
		{"whitespace only", "   \n\t "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Complete(context.Background(), tt.prompt)
			require.Error(t, err)

			var emptyPrompt *ErrEmptyPrompt
			assert.True(t, errors.As(err, &emptyPrompt))
		})
	}
}

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", "gemini-1.5-flash")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestGenerationError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := &GenerationError{Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection reset")
}
