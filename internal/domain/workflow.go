// Package domain holds the structural similarity core and the use cases built on it.
package domain

import (
	"context"
	"fmt"

	"github.com/mouse-blink/twins/internal/adapter"
	"github.com/mouse-blink/twins/internal/controller"
	m "github.com/mouse-blink/twins/internal/model"
	"github.com/rs/zerolog"
)

// CheckArgs holds the inputs of a full similarity check.
type CheckArgs struct {
	Root    m.Path
	Filter  adapter.CorpusFilter
	Options Options
	Reports m.Path
	Formats []string
}

// ListArgs holds the inputs of a corpus listing.
type ListArgs struct {
	Root    m.Path
	Filter  adapter.CorpusFilter
	Workers int
}

// ViewArgs holds the inputs for redisplaying the last run.
type ViewArgs struct {
	Reports m.Path
}

// Workflow defines the use cases exposed by the CLI.
type Workflow interface {
	Check(ctx context.Context, args CheckArgs) error
	List(ctx context.Context, args ListArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	corpus   adapter.CorpusSource
	store    adapter.ReportStore
	writer   adapter.ReportWriter
	ui       controller.UI
	pipeline Pipeline
	logger   zerolog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	corpus adapter.CorpusSource,
	store adapter.ReportStore,
	writer adapter.ReportWriter,
	ui controller.UI,
	pipeline Pipeline,
	logger zerolog.Logger,
) Workflow {
	return &workflow{
		corpus:   corpus,
		store:    store,
		writer:   writer,
		ui:       ui,
		pipeline: pipeline,
		logger:   logger,
	}
}

// Check loads the corpus, scores it, saves the snapshot and writes the reports.
// Invalid options and formats are rejected before the corpus is read.
func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	if err := args.Options.Validate(); err != nil {
		return err
	}

	if err := adapter.ValidateFormats(args.Formats); err != nil {
		return &ConfigurationError{Field: "format", Value: args.Formats, Reason: err.Error()}
	}

	corpus, err := w.corpus.Load(ctx, args.Root, args.Filter)
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}

	w.logger.Info().Str("root", string(args.Root)).Int("submissions", len(corpus)).Msg("corpus loaded")

	if err := w.ui.Start(controller.WithCheckMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	w.ui.DisplayConcurrencyInfo(args.Options.Workers, len(corpus))

	result, err := w.pipeline.Run(ctx, corpus, args.Options, uiObserver{ui: w.ui})
	if err != nil {
		return fmt.Errorf("run pipeline: %w", err)
	}

	if err := w.store.SaveRun(args.Reports, result); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	artifacts, err := w.writer.Write(args.Reports, result, args.Formats)
	if err != nil {
		return fmt.Errorf("write reports: %w", err)
	}

	w.logger.Info().
		Str("run", result.ID).
		Int("flagged", len(result.Summary)).
		Int("exact", len(result.Roster)).
		Int("artifacts", len(artifacts)).
		Msg("check finished")

	if err := w.ui.DisplayResult(result, artifacts); err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

// List loads and parses the corpus and shows what would be compared.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	opts := Options{Threshold: DefaultThreshold, Workers: args.Workers}
	if err := opts.Validate(); err != nil {
		return err
	}

	corpus, err := w.corpus.Load(ctx, args.Root, args.Filter)
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}

	grouped, err := w.pipeline.Group(ctx, corpus, opts)
	if err != nil {
		return fmt.Errorf("group corpus: %w", err)
	}

	if err := w.ui.Start(controller.WithListMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	if err := w.ui.DisplayCorpus(grouped.Groups, grouped.Diagnostics()); err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

// View shows the snapshot of the last check without recomputing it.
func (w *workflow) View(args ViewArgs) error {
	result, err := w.store.LoadRun(args.Reports)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	if err := w.ui.Start(controller.WithViewMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	if err := w.ui.DisplayResult(result, nil); err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

// uiObserver forwards pipeline progress to the UI.
type uiObserver struct {
	ui controller.UI
}

func (o uiObserver) AssignmentsPlanned(total int) {
	o.ui.DisplayUpcomingAssignments(total)
}

func (o uiObserver) AssignmentStarted(assignment m.AssignmentID, students int) {
	o.ui.DisplayAssignmentStarted(assignment, students)
}

func (o uiObserver) AssignmentCompleted(matrix m.SimilarityMatrix) {
	o.ui.DisplayAssignmentCompleted(matrix)
}
