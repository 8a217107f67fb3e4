package controller

import (
	"time"

	m "github.com/mouse-blink/twins/internal/model"
)

func sampleGroups() []m.AssignmentGroup {
	return []m.AssignmentGroup{
		{
			Assignment: "q1",
			Submissions: []*m.Submission{
				{Key: m.SubmissionKey{Student: "7A ivan", Assignment: "q1"}, Tokens: m.TokenSequence{m.CategoryFunctionDef, m.CategoryReturn}},
				{Key: m.SubmissionKey{Student: "7A olga", Assignment: "q1"}, Tokens: m.TokenSequence{m.CategoryFunctionDef, m.CategoryReturn, m.CategoryCall}},
			},
		},
		{
			Assignment: "q2",
			Submissions: []*m.Submission{
				{Key: m.SubmissionKey{Student: "7B petr", Assignment: "q2"}, Tokens: m.TokenSequence{m.CategoryFor}},
			},
		},
	}
}

func sampleResult() m.RunResult {
	q1 := m.SimilarityMatrix{
		Assignment: "q1",
		Students:   []m.StudentID{"7A ivan", "7A olga", "7B petr"},
		Scores: map[m.Pair]float64{
			m.NewPair("7A ivan", "7A olga"): 100,
			m.NewPair("7A ivan", "7B petr"): 40,
			m.NewPair("7A olga", "7B petr"): 92.5,
		},
		Exact: []m.Pair{m.NewPair("7A ivan", "7A olga")},
	}

	q2 := m.SimilarityMatrix{
		Assignment: "q2",
		Students:   []m.StudentID{"7B petr"},
		Scores:     map[m.Pair]float64{},
	}

	return m.RunResult{
		ID:        "run-1",
		StartedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Duration:  time.Second,
		Threshold: 90,
		Matrices:  []m.SimilarityMatrix{q1, q2},
		Summary: m.Summary{
			"7A ivan": {"q1": {"7A olga"}},
			"7A olga": {"q1": {"7A ivan", "7B petr"}},
			"7B petr": {"q1": {"7A olga"}},
		},
		Roster: m.ExactMatchRoster{"7A ivan": {}, "7A olga": {}},
		Diagnostics: []m.Diagnostic{
			{Kind: m.DiagnosticEmptyGroup, Assignment: "q2", Message: "assignment q2 has 1 comparable submission(s)"},
		},
	}
}
