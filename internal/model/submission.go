// Package model defines the data structures shared by the similarity engine.
package model

import "fmt"

// Path represents a file system path or an object storage key.
type Path string

// ClassID identifies a class (a group of students) in the corpus.
type ClassID string

// StudentID is the opaque identity of a student, formed as "<class> <student>".
type StudentID string

// AssignmentID identifies an assignment; it is the submission file name without extension.
type AssignmentID string

// NewStudentID builds the student identity used across matrices and summaries.
func NewStudentID(class ClassID, student string) StudentID {
	return StudentID(fmt.Sprintf("%s %s", class, student))
}

// SubmissionKey is the identity of a submission: one student, one assignment.
type SubmissionKey struct {
	Student    StudentID
	Assignment AssignmentID
}

func (k SubmissionKey) String() string {
	return fmt.Sprintf("%s/%s", k.Student, k.Assignment)
}

// Submission is one student's solution to one assignment.
type Submission struct {
	Key    SubmissionKey
	Class  ClassID
	Origin Path   // where the source was read from
	Source []byte // raw source text
	Hash   string // SHA-256 of Source
	// Tokens is filled once by the grouper and never recomputed.
	Tokens TokenSequence
}
