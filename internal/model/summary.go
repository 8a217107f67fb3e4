package model

import (
	"sort"
	"strings"
)

// SummaryEntry maps an assignment to the peers a student matched on it.
type SummaryEntry map[AssignmentID][]StudentID

// Peers returns the comma-joined peer list for an assignment.
func (e SummaryEntry) Peers(assignment AssignmentID) string {
	peers := e[assignment]

	names := make([]string, len(peers))
	for i, p := range peers {
		names[i] = string(p)
	}

	return strings.Join(names, ", ")
}

// Summary holds the flagged students only; a student without any qualifying
// pair is absent.
type Summary map[StudentID]SummaryEntry

// Students returns the flagged students in sorted order.
func (s Summary) Students() []StudentID {
	students := make([]StudentID, 0, len(s))
	for student := range s {
		students = append(students, student)
	}

	sort.Slice(students, func(i, j int) bool { return students[i] < students[j] })

	return students
}

// ExactMatchRoster is the set of students involved in at least one exact match.
type ExactMatchRoster map[StudentID]struct{}

// Add inserts students into the roster.
func (r ExactMatchRoster) Add(students ...StudentID) {
	for _, s := range students {
		r[s] = struct{}{}
	}
}

// Contains reports whether the student is on the roster.
func (r ExactMatchRoster) Contains(student StudentID) bool {
	_, ok := r[student]
	return ok
}

// Sorted returns the roster as a sorted list.
func (r ExactMatchRoster) Sorted() []StudentID {
	students := make([]StudentID, 0, len(r))
	for s := range r {
		students = append(students, s)
	}

	sort.Slice(students, func(i, j int) bool { return students[i] < students[j] })

	return students
}
