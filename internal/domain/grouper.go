package domain

import (
	"context"
	"errors"

	m "github.com/mouse-blink/twins/internal/model"
	"golang.org/x/sync/errgroup"
)

// GroupResult is the outcome of grouping one corpus.
type GroupResult struct {
	Groups      []m.AssignmentGroup // assignment encounter order
	ParseErrors []*ParseError       // corpus order
	Duplicates  []*DuplicateSubmission
}

// Diagnostics returns duplicates followed by parse errors as diagnostics.
func (r GroupResult) Diagnostics() []m.Diagnostic {
	diagnostics := make([]m.Diagnostic, 0, len(r.Duplicates)+len(r.ParseErrors))

	for _, d := range r.Duplicates {
		diagnostics = append(diagnostics, d.Diagnostic())
	}

	for _, p := range r.ParseErrors {
		diagnostics = append(diagnostics, p.Diagnostic())
	}

	return diagnostics
}

// Submissions returns the number of comparable submissions over all groups.
func (r GroupResult) Submissions() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Submissions)
	}

	return n
}

// Grouper partitions submissions by assignment and extracts each one's tokens.
type Grouper interface {
	Group(ctx context.Context, submissions []m.Submission) (GroupResult, error)
}

type grouper struct {
	extractor Extractor
	workers   int
}

// NewGrouper creates a Grouper that extracts with up to workers goroutines.
func NewGrouper(extractor Extractor, workers int) Grouper {
	if workers < 1 {
		workers = 1
	}

	return &grouper{extractor: extractor, workers: workers}
}

// Group keeps the first-seen order of assignments and, within an
// assignment, of students. A later submission with the same key replaces the
// earlier one in place. Every surviving submission is extracted exactly once;
// failures are collected and the submission is left out of its group.
func (g *grouper) Group(ctx context.Context, submissions []m.Submission) (GroupResult, error) {
	unique, duplicates := dedupeSubmissions(submissions)

	failures := make([]*ParseError, len(unique))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)

	for i := range unique {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			tokens, err := g.extractor.Extract(unique[i])
			if err != nil {
				var parseErr *ParseError
				if !errors.As(err, &parseErr) {
					parseErr = &ParseError{Key: unique[i].Key, Origin: unique[i].Origin, Err: err}
				}

				failures[i] = parseErr

				return nil
			}

			unique[i].Tokens = tokens

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return GroupResult{}, err
	}

	result := GroupResult{Duplicates: duplicates}
	positions := make(map[m.AssignmentID]int)

	for i, sub := range unique {
		pos, ok := positions[sub.Key.Assignment]
		if !ok {
			pos = len(result.Groups)
			positions[sub.Key.Assignment] = pos
			result.Groups = append(result.Groups, m.AssignmentGroup{Assignment: sub.Key.Assignment})
		}

		if failures[i] != nil {
			result.ParseErrors = append(result.ParseErrors, failures[i])
			continue
		}

		result.Groups[pos].Submissions = append(result.Groups[pos].Submissions, sub)
	}

	return result, nil
}

// dedupeSubmissions returns one submission per key, in first-seen order,
// holding the content of the last occurrence.
func dedupeSubmissions(submissions []m.Submission) ([]*m.Submission, []*DuplicateSubmission) {
	positions := make(map[m.SubmissionKey]int, len(submissions))
	unique := make([]*m.Submission, 0, len(submissions))

	var duplicates []*DuplicateSubmission

	for i := range submissions {
		sub := submissions[i]

		pos, seen := positions[sub.Key]
		if !seen {
			positions[sub.Key] = len(unique)
			unique = append(unique, &sub)

			continue
		}

		duplicates = append(duplicates, &DuplicateSubmission{
			Key:        sub.Key,
			Superseded: unique[pos].Origin,
			Kept:       sub.Origin,
		})
		unique[pos] = &sub
	}

	return unique, duplicates
}
