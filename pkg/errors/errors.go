package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures showcase configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SyncError represents a failure while synchronizing the content repository.
type SyncError struct {
	Repo string
	Err  error
}

// NewSyncError constructs a SyncError for the given repository URL.
func NewSyncError(repo string, err error) error {
	return &SyncError{Repo: repo, Err: err}
}

func (e *SyncError) Error() string {
	if e == nil {
		return ""
	}
	if e.Repo != "" {
		return fmt.Sprintf("sync error [%s]: %v", e.Repo, e.Err)
	}
	return fmt.Sprintf("sync error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *SyncError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
