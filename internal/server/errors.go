// Package server provides the HTTP JSON API for the interview prep service.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jordan/interview-ace/internal/extract"
	"github.com/jordan/interview-ace/internal/llm"
)

// ErrEmailAlreadyExists indicates the email is already registered.
// Note: its distinct message leaks email existence that login's generic
// message hides; kept deliberately, matching the product behavior.
type ErrEmailAlreadyExists struct{}

func (e *ErrEmailAlreadyExists) Error() string {
	return "Email already registered"
}

// ErrInvalidCredentials indicates a failed login. The message never
// distinguishes unknown email from wrong password.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "Invalid email or password"
}

// ErrValidation indicates a bad or missing request field.
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Message
}

// ErrNoQuestions indicates the bank holds no questions for a (role, level).
type ErrNoQuestions struct {
	Role  string
	Level string
}

func (e *ErrNoQuestions) Error() string {
	return fmt.Sprintf("No questions found for %s (%s)", e.Role, e.Level)
}

// HTTPStatus maps an error to the response status code.
func HTTPStatus(err error) int {
	var (
		emailExists *ErrEmailAlreadyExists
		badCreds    *ErrInvalidCredentials
		validation  *ErrValidation
		noQuestions *ErrNoQuestions
		unreadable  *extract.UnreadableDocumentError
		emptyDoc    *extract.EmptyDocumentError
		emptyPrompt *llm.ErrEmptyPrompt
		emptyResp   *llm.ErrEmptyResponse
		generation  *llm.GenerationError
	)

	switch {
	case errors.As(err, &emailExists),
		errors.As(err, &badCreds),
		errors.As(err, &validation),
		errors.As(err, &noQuestions),
		errors.As(err, &unreadable),
		errors.As(err, &emptyDoc):
		return http.StatusBadRequest
	case errors.As(err, &emptyPrompt),
		errors.As(err, &emptyResp),
		errors.As(err, &generation):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
