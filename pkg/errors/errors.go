package errors

import (
	"fmt"
)

// ParseError represents a manifest document that could not be read or decoded,
// with optional line metadata.
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

	if e.Path == "" {
		if e.Line > 0 {
			return fmt.Sprintf("parse error: line %d: %s", e.Line, e.Message)
		}
		return fmt.Sprintf("parse error: %s", e.Message)
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

// ReadErrorKind classifies why a manifest node could not be read.
type ReadErrorKind string

const (
	KindMissingField ReadErrorKind = "missing_field"
	KindWrongKind    ReadErrorKind = "wrong_kind"
	KindNotObject    ReadErrorKind = "not_object"
	KindNotArray     ReadErrorKind = "not_array"
)

// ReadError reports a manifest node that does not have the expected shape.
// Path locates the node inside the document, e.g. components[0].App.displayName.
type ReadError struct {
	Kind    ReadErrorKind
	Path    string
	Line    int
	Message string
}

// NewReadError constructs a ReadError.
func NewReadError(kind ReadErrorKind, path string, line int, message string) error {
	return &ReadError{Kind: kind, Path: path, Line: line, Message: message}
}

func (e *ReadError) Error() string {
	if e == nil {
		return ""
	}

	location := e.Path
	if location == "" {
		location = "<root>"
	}
	if e.Line > 0 {
		return fmt.Sprintf("read error: %s (line %d): %s", location, e.Line, e.Message)
	}
	return fmt.Sprintf("read error: %s: %s", location, e.Message)
}

// Is matches another ReadError by kind so callers can test for a category
// with errors.Is(err, &ReadError{Kind: KindMissingField}).
func (e *ReadError) Is(target error) bool {
	t, ok := target.(*ReadError)
	if !ok || e == nil || t == nil {
		return false
	}
	return t.Kind == e.Kind
}

// ValidationError captures manifest lint failures.
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
