package controller

import (
	"fmt"
	"sync"

	m "github.com/mouse-blink/twins/internal/model"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using plain text written to the command's output.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
}

// Wait returns immediately; plain output needs no user interaction.
func (s *SimpleUI) Wait() {
}

// DisplayConcurrencyInfo shows how the run is parallelized.
func (s *SimpleUI) DisplayConcurrencyInfo(workers int, submissions int) {
	s.printf("Comparing %d submission(s) with %d worker(s)\n", submissions, workers)
}

// DisplayUpcomingAssignments shows how many matrices will be built.
func (s *SimpleUI) DisplayUpcomingAssignments(total int) {
	s.printf("Assignments to compare: %d\n", total)
}

// DisplayAssignmentStarted is silent in plain mode; completion is reported instead.
func (s *SimpleUI) DisplayAssignmentStarted(_ m.AssignmentID, _ int) {
}

// DisplayAssignmentCompleted prints one line per finished matrix.
func (s *SimpleUI) DisplayAssignmentCompleted(matrix m.SimilarityMatrix) {
	stats := statsOf(matrix)
	s.printf("Compared %s: %d student(s), %d pair(s), %d exact\n", matrix.Assignment, stats.students, stats.pairs, stats.exact)
}

// DisplayCorpus prints the assignments that would be compared and the
// submissions that were excluded.
func (s *SimpleUI) DisplayCorpus(groups []m.AssignmentGroup, diagnostics []m.Diagnostic) error {
	if len(groups) == 0 {
		s.printf("No submissions found\n")
	} else {
		s.printf("\n%s", corpusTable(groups))
	}

	if len(diagnostics) > 0 {
		s.printf("\nDiagnostics:\n%s", diagnosticsTable(diagnostics))
	}

	return nil
}

// DisplayResult prints the run summary, flagged students and written files.
func (s *SimpleUI) DisplayResult(result m.RunResult, artifacts []m.Path) error {
	s.printf("\nRun %s (threshold %s%%)\n", result.ID, m.FormatScore(result.Threshold))

	if len(result.Matrices) == 0 {
		s.printf("No assignments compared\n")
	} else {
		s.printf("\n%s", matricesTable(result.Matrices))
	}

	if len(result.Summary) == 0 {
		s.printf("\nNo students at or above the threshold\n")
	} else {
		s.printf("\nFlagged students: %d\n%s", len(result.Summary), flaggedTable(result))
	}

	if len(result.Roster) > 0 {
		s.printf("\nExact matches: %d\n%s\n", len(result.Roster), rosterLines(result.Roster))
	}

	if len(result.Diagnostics) > 0 {
		s.printf("\nDiagnostics:\n%s", diagnosticsTable(result.Diagnostics))
	}

	if len(artifacts) > 0 {
		s.printf("\nReports:\n")

		for _, a := range artifacts {
			s.printf("  %s\n", a)
		}
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
