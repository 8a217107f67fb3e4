package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/twins/internal/model"
)

// ParseError reports a submission whose source could not be parsed. It is
// recoverable: the submission is excluded and the run continues.
type ParseError struct {
	Key    m.SubmissionKey
	Origin m.Path
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s (%s): %v", e.Key, e.Origin, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Diagnostic converts the error into a run-level diagnostic.
func (e *ParseError) Diagnostic() m.Diagnostic {
	msg := ""
	if e.Err != nil {
		msg = e.Err.Error()
	}

	return m.Diagnostic{
		Kind:       m.DiagnosticParseError,
		Student:    e.Key.Student,
		Assignment: e.Key.Assignment,
		Message:    msg,
	}
}

// EmptyGroupWarning reports an assignment with fewer than two comparable
// submissions. Its matrix is empty.
type EmptyGroupWarning struct {
	Assignment m.AssignmentID
	Comparable int
}

func (w *EmptyGroupWarning) Error() string {
	return fmt.Sprintf("assignment %s has %d comparable submission(s), nothing to compare", w.Assignment, w.Comparable)
}

// Diagnostic converts the warning into a run-level diagnostic.
func (w *EmptyGroupWarning) Diagnostic() m.Diagnostic {
	return m.Diagnostic{
		Kind:       m.DiagnosticEmptyGroup,
		Assignment: w.Assignment,
		Message:    w.Error(),
	}
}

// DuplicateSubmission reports a submission replaced by a later one with the same key.
type DuplicateSubmission struct {
	Key        m.SubmissionKey
	Superseded m.Path
	Kept       m.Path
}

func (d *DuplicateSubmission) Error() string {
	return fmt.Sprintf("duplicate submission %s: %s replaced by %s", d.Key, d.Superseded, d.Kept)
}

// Diagnostic converts the duplicate into a run-level diagnostic.
func (d *DuplicateSubmission) Diagnostic() m.Diagnostic {
	return m.Diagnostic{
		Kind:       m.DiagnosticDuplicate,
		Student:    d.Key.Student,
		Assignment: d.Key.Assignment,
		Message:    d.Error(),
	}
}

// ConfigurationError reports an invalid run option. It is fatal and is
// raised before any work starts.
type ConfigurationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// IsConfigurationError reports whether err is, or wraps, a ConfigurationError.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}
