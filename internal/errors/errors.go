// Package errors provides a lightweight structured error type (WikiBuilderError)
// for category-based classification in the CLI and the prepare pipeline.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of a WikiBuilder error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// External system integration errors
	CategoryGit ErrorCategory = "git"

	// Preparation and processing errors
	CategoryTransform  ErrorCategory = "transform"
	CategoryFileSystem ErrorCategory = "filesystem"

	// Runtime and infrastructure errors
	CategoryRuntime  ErrorCategory = "runtime"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
	SeverityInfo    ErrorSeverity = "info"    // Informational, no impact
)

// WikiBuilderError is a structured error with category, severity, and context
type WikiBuilderError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for WikiBuilderError
type ContextFields map[string]any

// Error implements the error interface
func (e *WikiBuilderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *WikiBuilderError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *WikiBuilderError) WithContext(key string, value any) *WikiBuilderError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new WikiBuilderError
func New(category ErrorCategory, severity ErrorSeverity, message string) *WikiBuilderError {
	return &WikiBuilderError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new WikiBuilderError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *WikiBuilderError {
	return &WikiBuilderError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if wbe, ok := err.(*WikiBuilderError); ok {
		return wbe.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a WikiBuilderError
func GetCategory(err error) ErrorCategory {
	if wbe, ok := err.(*WikiBuilderError); ok {
		return wbe.Category
	}
	return CategoryInternal
}
