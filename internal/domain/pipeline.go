package domain

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	m "github.com/mouse-blink/twins/internal/model"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DefaultThreshold is the default minimum score for the summary, in percent.
const DefaultThreshold = 90.0

// Options configures one pipeline run.
type Options struct {
	Threshold float64
	Workers   int
}

// DefaultOptions returns the default threshold and one worker.
func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold, Workers: 1}
}

// Validate returns *ConfigurationError for a threshold that is NaN or outside
// [0, 100] and for fewer than one worker.
func (o Options) Validate() error {
	if math.IsNaN(o.Threshold) || o.Threshold < 0 || o.Threshold > m.ExactScore {
		return &ConfigurationError{Field: "threshold", Value: o.Threshold, Reason: "must be a percentage in [0, 100]"}
	}

	if o.Workers < 1 {
		return &ConfigurationError{Field: "workers", Value: o.Workers, Reason: "must be at least 1"}
	}

	return nil
}

// Observer is notified while matrices are built. Calls may arrive from
// several goroutines.
type Observer interface {
	AssignmentsPlanned(total int)
	AssignmentStarted(assignment m.AssignmentID, students int)
	AssignmentCompleted(matrix m.SimilarityMatrix)
}

type noopObserver struct{}

func (noopObserver) AssignmentsPlanned(int) {}
func (noopObserver) AssignmentStarted(m.AssignmentID, int) {}
func (noopObserver) AssignmentCompleted(m.SimilarityMatrix) {}

// Pipeline runs the similarity core over one corpus.
type Pipeline interface {
	// Group validates, deduplicates and extracts the corpus without scoring it.
	Group(ctx context.Context, corpus []m.Submission, opts Options) (GroupResult, error)
	// Run groups the corpus, builds every matrix and aggregates the summary.
	Run(ctx context.Context, corpus []m.Submission, opts Options, observer Observer) (m.RunResult, error)
}

type pipeline struct {
	extractor Extractor
	scorer    Scorer
	logger    zerolog.Logger
	now       func() time.Time
	newID     func() string
}

// NewPipeline creates a Pipeline from its extractor and scorer.
func NewPipeline(extractor Extractor, scorer Scorer, logger zerolog.Logger) Pipeline {
	return &pipeline{
		extractor: extractor,
		scorer:    scorer,
		logger:    logger,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

func (p *pipeline) Group(ctx context.Context, corpus []m.Submission, opts Options) (GroupResult, error) {
	if err := opts.Validate(); err != nil {
		return GroupResult{}, err
	}

	grouped, err := NewGrouper(p.extractor, opts.Workers).Group(ctx, corpus)
	if err != nil {
		return GroupResult{}, err
	}

	for _, parseErr := range grouped.ParseErrors {
		p.logger.Warn().
			Str("student", string(parseErr.Key.Student)).
			Str("assignment", string(parseErr.Key.Assignment)).
			Err(parseErr.Err).
			Msg("submission excluded")
	}

	for _, dup := range grouped.Duplicates {
		p.logger.Warn().Str("submission", dup.Key.String()).Str("kept", string(dup.Kept)).Msg("duplicate submission")
	}

	return grouped, nil
}

// Run is deterministic: matrices follow assignment encounter order and the
// summary is folded in that order regardless of completion order. A
// cancelled run returns the context error and no result.
func (p *pipeline) Run(ctx context.Context, corpus []m.Submission, opts Options, observer Observer) (m.RunResult, error) {
	if err := opts.Validate(); err != nil {
		return m.RunResult{}, err
	}

	if observer == nil {
		observer = noopObserver{}
	}

	started := p.now()

	grouped, err := p.Group(ctx, corpus, opts)
	if err != nil {
		return m.RunResult{}, err
	}

	observer.AssignmentsPlanned(len(grouped.Groups))

	matrices := make([]m.SimilarityMatrix, len(grouped.Groups))
	warnings := make([]*EmptyGroupWarning, len(grouped.Groups))

	// Assignments run in parallel; rows of one assignment share the same
	// worker budget inside the builder.
	builder := NewMatrixBuilder(p.scorer, opts.Workers)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(opts.Workers)

	for i, group := range grouped.Groups {
		eg.Go(func() error {
			observer.AssignmentStarted(group.Assignment, len(group.Submissions))

			matrix, err := builder.Build(egCtx, group)

			var warning *EmptyGroupWarning
			if errors.As(err, &warning) {
				warnings[i] = warning
				err = nil
			}

			if err != nil {
				return err
			}

			matrices[i] = matrix
			observer.AssignmentCompleted(matrix)

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return m.RunResult{}, err
	}

	if err := ctx.Err(); err != nil {
		return m.RunResult{}, err
	}

	aggregator := NewAggregator(opts.Threshold)
	diagnostics := grouped.Diagnostics()

	for i, matrix := range matrices {
		if warnings[i] != nil {
			diagnostics = append(diagnostics, warnings[i].Diagnostic())
			p.logger.Info().Str("assignment", string(matrix.Assignment)).Int("submissions", warnings[i].Comparable).Msg("nothing to compare")
		}

		aggregator.Add(matrix)
	}

	result := m.RunResult{
		ID:          p.newID(),
		StartedAt:   started,
		Duration:    p.now().Sub(started),
		Threshold:   opts.Threshold,
		Matrices:    matrices,
		Summary:     aggregator.Summary(),
		Roster:      aggregator.Roster(),
		Diagnostics: diagnostics,
	}

	p.logger.Debug().
		Str("run", result.ID).
		Int("assignments", len(matrices)).
		Int("flagged", len(result.Summary)).
		Int("exact", len(result.Roster)).
		Dur("duration", result.Duration).
		Msg("run completed")

	return result, nil
}
