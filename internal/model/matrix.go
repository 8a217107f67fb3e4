package model

import "fmt"

// ExactScore is the score of an exact match.
const ExactScore = 100.0

// Pair is an unordered pair of distinct students, stored with A < B.
type Pair struct {
	A StudentID
	B StudentID
}

// NewPair normalizes the two students so that NewPair(a, b) == NewPair(b, a).
func NewPair(a, b StudentID) Pair {
	if b < a {
		a, b = b, a
	}

	return Pair{A: a, B: b}
}

// FormatScore renders a score as a two-decimal percentage string.
func FormatScore(score float64) string {
	return fmt.Sprintf("%.2f", score)
}

// SimilarityMatrix holds all pairwise scores of one assignment.
type SimilarityMatrix struct {
	Assignment AssignmentID
	Students   []StudentID // group order
	Scores     map[Pair]float64
	Exact      []Pair // pairs scoring exactly ExactScore, row-major order
}

// Score returns the score of the pair (a, b) regardless of argument order.
func (sm SimilarityMatrix) Score(a, b StudentID) (float64, bool) {
	if a == b {
		return 0, false
	}

	score, ok := sm.Scores[NewPair(a, b)]

	return score, ok
}

// IsExact reports whether the pair (a, b) matched exactly.
func (sm SimilarityMatrix) IsExact(a, b StudentID) bool {
	score, ok := sm.Score(a, b)

	return ok && score == ExactScore
}

// PairCount returns the number of scored pairs.
func (sm SimilarityMatrix) PairCount() int {
	return len(sm.Scores)
}

// Table renders the full symmetric N×N table. The first row is the header
// ("" followed by the students); each following row starts with the student.
// Diagonal cells are blank.
func (sm SimilarityMatrix) Table() [][]string {
	table := make([][]string, 0, len(sm.Students)+1)

	header := make([]string, 0, len(sm.Students)+1)
	header = append(header, "")

	for _, s := range sm.Students {
		header = append(header, string(s))
	}

	table = append(table, header)

	for _, row := range sm.Students {
		line := make([]string, 0, len(sm.Students)+1)
		line = append(line, string(row))

		for _, col := range sm.Students {
			score, ok := sm.Score(row, col)
			if !ok {
				line = append(line, "")
				continue
			}

			line = append(line, FormatScore(score))
		}

		table = append(table, line)
	}

	return table
}
