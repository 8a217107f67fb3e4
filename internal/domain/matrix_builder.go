package domain

import (
	"context"

	m "github.com/mouse-blink/twins/internal/model"
	"golang.org/x/sync/errgroup"
)

// MatrixBuilder scores every unordered pair of one assignment group.
type MatrixBuilder interface {
	// Build returns the matrix of the group. A group with fewer than two
	// submissions yields an empty matrix together with *EmptyGroupWarning.
	Build(ctx context.Context, group m.AssignmentGroup) (m.SimilarityMatrix, error)
}

type matrixBuilder struct {
	scorer  Scorer
	workers int
}

// NewMatrixBuilder creates a MatrixBuilder that scores rows on up to workers goroutines.
func NewMatrixBuilder(scorer Scorer, workers int) MatrixBuilder {
	if workers < 1 {
		workers = 1
	}

	return &matrixBuilder{scorer: scorer, workers: workers}
}

func (b *matrixBuilder) Build(ctx context.Context, group m.AssignmentGroup) (m.SimilarityMatrix, error) {
	students := group.Students()
	n := len(students)

	matrix := m.SimilarityMatrix{
		Assignment: group.Assignment,
		Students:   students,
		Scores:     map[m.Pair]float64{},
	}

	if n < 2 {
		return matrix, &EmptyGroupWarning{Assignment: group.Assignment, Comparable: n}
	}

	// Each row task owns slots [pairIndex(n, i, i+1), pairIndex(n, i, n-1)].
	slots := make([]float64, n*(n-1)/2)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(b.workers)

	for i := 0; i < n-1; i++ {
		eg.Go(func() error {
			for j := i + 1; j < n; j++ {
				if err := egCtx.Err(); err != nil {
					return err
				}

				slots[pairIndex(n, i, j)] = b.scorer.Ratio(group.Submissions[i].Tokens, group.Submissions[j].Tokens)
			}

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return m.SimilarityMatrix{}, err
	}

	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			score := slots[pairIndex(n, i, j)]
			pair := m.NewPair(students[i], students[j])

			matrix.Scores[pair] = score
			if score == m.ExactScore {
				matrix.Exact = append(matrix.Exact, pair)
			}
		}
	}

	return matrix, nil
}

// pairIndex maps i < j to a dense index over the upper triangle, row by row.
func pairIndex(n, i, j int) int {
	return i*n - i*(i+1)/2 + (j - i - 1)
}
