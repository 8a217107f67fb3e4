// Package controller provides output adapters for displaying similarity results.
package controller

import (
	m "github.com/mouse-blink/twins/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeCheck StartMode = iota
	ModeList
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithCheckMode sets the UI to live check mode.
func WithCheckMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCheck
	}
}

// WithListMode sets the UI to corpus listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithViewMode sets the UI to redisplay a saved run.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeCheck}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying corpus listings and run results.
// Implementations can use different output methods (simple text, TUI, etc).
// Progress methods may be called from several goroutines.
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayConcurrencyInfo(workers int, submissions int)
	DisplayUpcomingAssignments(total int)
	DisplayAssignmentStarted(assignment m.AssignmentID, students int)
	DisplayAssignmentCompleted(matrix m.SimilarityMatrix)
	DisplayCorpus(groups []m.AssignmentGroup, diagnostics []m.Diagnostic) error
	DisplayResult(result m.RunResult, artifacts []m.Path) error
}
