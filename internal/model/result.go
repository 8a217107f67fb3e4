package model

import "time"

// AssignmentGroup is the ordered set of comparable submissions of one assignment.
type AssignmentGroup struct {
	Assignment  AssignmentID
	Submissions []*Submission
}

// Students returns the students of the group in encounter order.
func (g AssignmentGroup) Students() []StudentID {
	students := make([]StudentID, len(g.Submissions))
	for i, s := range g.Submissions {
		students[i] = s.Key.Student
	}

	return students
}

// DiagnosticKind classifies a run-level diagnostic.
type DiagnosticKind string

const (
	// DiagnosticParseError marks a submission excluded because its source did not parse.
	DiagnosticParseError DiagnosticKind = "parse_error"
	// DiagnosticEmptyGroup marks an assignment with fewer than two comparable submissions.
	DiagnosticEmptyGroup DiagnosticKind = "empty_group"
	// DiagnosticDuplicate marks a submission superseded by a later one for the same key.
	DiagnosticDuplicate DiagnosticKind = "duplicate_submission"
)

// Diagnostic is one entry of the run-level diagnostics list.
type Diagnostic struct {
	Kind       DiagnosticKind `yaml:"kind"`
	Student    StudentID      `yaml:"student,omitempty"`
	Assignment AssignmentID   `yaml:"assignment"`
	Message    string         `yaml:"message"`
}

// RunResult is everything one run hands to the report emitters.
type RunResult struct {
	ID          string
	StartedAt   time.Time
	Duration    time.Duration
	Threshold   float64
	Matrices    []SimilarityMatrix // assignment encounter order
	Summary     Summary
	Roster      ExactMatchRoster
	Diagnostics []Diagnostic
}
