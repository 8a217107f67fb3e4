package controller

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/twins/internal/model"
	"golang.org/x/term"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	started bool
	mode    StartMode
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output, mode: ModeCheck}
}

// Start initializes the UI. Only check mode runs an interactive program;
// list and view render their output once.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options...)

	t.mu.Lock()
	t.mode = cfg.mode
	t.mu.Unlock()

	if cfg.mode != ModeCheck {
		t.mu.Lock()
		t.started = true
		t.mu.Unlock()

		return nil
	}

	model := newCheckModel()

	if width, ok := t.terminalWidth(); ok {
		model.width = width
		model.progressBar.Width = min(max(width-4, 10), maxProgressWidth)
	}

	return t.startWithModel(model)
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return nil
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithInput(nil))
	done := make(chan struct{})

	go func() {
		defer close(done)

		_, _ = program.Run()
	}()

	t.program = program
	t.done = done
	t.started = true

	return nil
}

func (t *TUI) ensureStarted() {
	t.mu.Lock()
	started := t.started
	t.mu.Unlock()

	if started {
		return
	}

	_ = t.Start()
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(msg)
}

// running reports whether the interactive program is still active.
func (t *TUI) running() bool {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return false
	}

	select {
	case <-done:
		return false
	default:
		return true
	}
}

// Wait blocks until the interactive program exits.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	<-done
}

// Close stops the interactive program and waits for it to restore the terminal.
// It is safe to call more than once.
func (t *TUI) Close() {
	t.mu.Lock()
	program := t.program
	done := t.done
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// DisplayConcurrencyInfo shows how the run is parallelized.
func (t *TUI) DisplayConcurrencyInfo(workers int, submissions int) {
	t.ensureStarted()
	t.send(concurrencyMsg{workers: workers, submissions: submissions})
}

// DisplayUpcomingAssignments sets the progress total.
func (t *TUI) DisplayUpcomingAssignments(total int) {
	t.ensureStarted()
	t.send(upcomingMsg{count: total})
}

// DisplayAssignmentStarted marks an assignment as in progress.
func (t *TUI) DisplayAssignmentStarted(assignment m.AssignmentID, students int) {
	t.ensureStarted()
	t.send(startAssignmentMsg{assignment: string(assignment), students: students})
}

// DisplayAssignmentCompleted moves an assignment to the finished list.
func (t *TUI) DisplayAssignmentCompleted(matrix m.SimilarityMatrix) {
	t.ensureStarted()

	stats := statsOf(matrix)
	t.send(completedAssignmentMsg{
		assignment: string(matrix.Assignment),
		students:   stats.students,
		pairs:      stats.pairs,
		exact:      stats.exact,
		max:        stats.max,
	})
}

// DisplayCorpus renders the grouped corpus.
func (t *TUI) DisplayCorpus(groups []m.AssignmentGroup, diagnostics []m.Diagnostic) error {
	t.ensureStarted()

	return t.print(corpusView(groups, diagnostics))
}

// DisplayResult renders the final report. During a check run the view
// replaces the progress screen and ends the program.
func (t *TUI) DisplayResult(result m.RunResult, artifacts []m.Path) error {
	t.ensureStarted()

	view := resultView(result, artifacts)

	if t.running() {
		t.send(resultMsg{view: view})

		return nil
	}

	return t.print(view)
}

func (t *TUI) print(view string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, err := fmt.Fprint(t.output, view)

	return err
}

func (t *TUI) terminalWidth() (int, bool) {
	f, ok := t.output.(*os.File)
	if !ok {
		return 0, false
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, false
	}

	return width, true
}

func corpusView(groups []m.AssignmentGroup, diagnostics []m.Diagnostic) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Twins Corpus"))
	b.WriteString("\n\n")

	if len(groups) == 0 {
		b.WriteString(mutedStyle.Render("  No submissions found"))
		b.WriteString("\n")
	} else {
		b.WriteString(corpusTable(groups))
	}

	writeDiagnostics(&b, diagnostics)

	return b.String()
}

func resultView(result m.RunResult, artifacts []m.Path) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Twins Similarity Report"))
	b.WriteString("\n")
	b.WriteString(summaryStyle.Render(fmt.Sprintf("Run %s  •  Threshold %s%%",
		accentStyle.Render(result.ID),
		accentStyle.Render(m.FormatScore(result.Threshold)),
	)))
	b.WriteString("\n")

	if len(result.Matrices) == 0 {
		b.WriteString(mutedStyle.Render("  No assignments compared"))
		b.WriteString("\n")
	} else {
		b.WriteString(matricesTable(result.Matrices))
	}

	b.WriteString("\n")

	if len(result.Summary) == 0 {
		b.WriteString(mutedStyle.Render("  No students at or above the threshold"))
		b.WriteString("\n")
	} else {
		fmt.Fprintf(&b, "  Flagged students: %s\n", accentStyle.Render(fmt.Sprintf("%d", len(result.Summary))))
		b.WriteString(flaggedTable(result))
	}

	if len(result.Roster) > 0 {
		fmt.Fprintf(&b, "\n  %s\n", exactStyle.Render(fmt.Sprintf("Exact matches: %d", len(result.Roster))))

		for _, line := range strings.Split(rosterLines(result.Roster), "\n") {
			fmt.Fprintf(&b, "  %s\n", line)
		}
	}

	writeDiagnostics(&b, result.Diagnostics)

	if len(artifacts) > 0 {
		b.WriteString("\n  Reports:\n")

		for _, a := range artifacts {
			fmt.Fprintf(&b, "  %s\n", mutedStyle.Render(string(a)))
		}
	}

	return b.String()
}

func writeDiagnostics(b *strings.Builder, diagnostics []m.Diagnostic) {
	if len(diagnostics) == 0 {
		return
	}

	fmt.Fprintf(b, "\n  %s\n", mutedStyle.Render(fmt.Sprintf("Diagnostics: %d", len(diagnostics))))
	b.WriteString(diagnosticsTable(diagnostics))
}
