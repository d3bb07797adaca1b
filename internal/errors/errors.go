// Package errors provides domain-specific error types and sentinel errors
// for improved error handling across the application.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common scenarios.
// Use errors.Is() to check these errors in your code.
var (
	// ErrNotFound indicates a requested resource was not found.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput indicates user provided invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownAction indicates an action type the dialog engine does not recognize.
	ErrUnknownAction = errors.New("unknown action")

	// ErrUnknownDomain indicates a domain identifier outside the closed enumeration.
	ErrUnknownDomain = errors.New("unknown domain")

	// ErrSessionNotFound indicates no dialog state is registered under the session key.
	ErrSessionNotFound = errors.New("session not found")

	// ErrEmptyKnowledgeBase indicates the knowledge base yielded no usable entries.
	ErrEmptyKnowledgeBase = errors.New("knowledge base is empty")

	// ErrContextCanceled indicates context was canceled.
	ErrContextCanceled = errors.New("context canceled")
)

// ValidationError represents input validation failures.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// LoadError represents knowledge-base loading failures with source context.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("knowledge base load error (source=%s): %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new knowledge-base load error.
func NewLoadError(source string, err error) *LoadError {
	return &LoadError{
		Source: source,
		Err:    err,
	}
}
