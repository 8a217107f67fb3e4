package domain

import (
	m "github.com/mouse-blink/twins/internal/model"
)

// Aggregator folds the matrices of one run into the cross-assignment
// summary and the exact-match roster. It is not safe for concurrent use;
// matrices are added in assignment order.
type Aggregator struct {
	threshold float64
	summary   m.Summary
	roster    m.ExactMatchRoster
}

// NewAggregator creates an Aggregator flagging pairs scoring at least threshold.
func NewAggregator(threshold float64) *Aggregator {
	return &Aggregator{
		threshold: threshold,
		summary:   m.Summary{},
		roster:    m.ExactMatchRoster{},
	}
}

// Add folds one matrix. Pairs are visited row by row in group order, so each
// peer list keeps the order in which the peers were met.
func (a *Aggregator) Add(matrix m.SimilarityMatrix) {
	for i, s1 := range matrix.Students {
		for _, s2 := range matrix.Students[i+1:] {
			score, ok := matrix.Score(s1, s2)
			if !ok || score < a.threshold {
				continue
			}

			a.flag(s1, matrix.Assignment, s2)
			a.flag(s2, matrix.Assignment, s1)
		}
	}

	for _, pair := range matrix.Exact {
		a.roster.Add(pair.A, pair.B)
	}
}

func (a *Aggregator) flag(student m.StudentID, assignment m.AssignmentID, peer m.StudentID) {
	entry, ok := a.summary[student]
	if !ok {
		entry = m.SummaryEntry{}
		a.summary[student] = entry
	}

	entry[assignment] = append(entry[assignment], peer)
}

// Summary returns the flagged students. Students without a qualifying pair are absent.
func (a *Aggregator) Summary() m.Summary {
	return a.summary
}

// Roster returns every student involved in at least one exact match.
func (a *Aggregator) Roster() m.ExactMatchRoster {
	return a.roster
}
