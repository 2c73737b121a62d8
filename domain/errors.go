package domain

import "fmt"

// ErrorCategory classifies recoverable failures. Nothing in the core is
// fatal to the process; every category degrades to fewer diagnostics.
type ErrorCategory string

const (
	ErrorCategoryConfig ErrorCategory = "config"
	ErrorCategoryParse  ErrorCategory = "parse"
	ErrorCategoryIO     ErrorCategory = "io"
)

// DomainError wraps an underlying error with a category.
type DomainError struct {
	Category ErrorCategory
	Message  string
	Err      error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Category, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// Unwrap returns the underlying error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a configuration error
func NewConfigError(message string, err error) *DomainError {
	return &DomainError{Category: ErrorCategoryConfig, Message: message, Err: err}
}

// NewIOError creates a file access error
func NewIOError(message string, err error) *DomainError {
	return &DomainError{Category: ErrorCategoryIO, Message: message, Err: err}
}
