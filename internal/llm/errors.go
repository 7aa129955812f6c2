package llm

import "fmt"

// ErrEmptyPrompt indicates a blank prompt was handed to the client.
type ErrEmptyPrompt struct{}

func (e *ErrEmptyPrompt) Error() string {
	return "empty prompt provided"
}

// ErrEmptyResponse indicates the model returned no usable text.
type ErrEmptyResponse struct{}

func (e *ErrEmptyResponse) Error() string {
	return "empty response from model"
}

// GenerationError wraps any transport, auth or timeout failure from the
// hosted model into a single error carrying the underlying cause.
type GenerationError struct {
	Cause error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation failed: %v", e.Cause)
	}
	return "generation failed"
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
