package project

import "fmt"

// ParseError is a preset or backup file that could not be read or
// decoded. Line is 0 when unknown.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

func newParseError(path string, line int, err error) error {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: msg, Err: err}
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

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError is a decoded preset that violates a constraint. Field
// uses the YAML path, e.g. "sliders[1].maximum".
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func newValidationError(field, message string, err error) error {
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

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
