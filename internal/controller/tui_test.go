package controller

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/twins/internal/model"
)

type quitModel struct{}

func (m quitModel) Init() tea.Cmd { return tea.Quit }
func (m quitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
func (m quitModel) View() string { return "" }

func waitWithTimeout(t *testing.T, name string, fn func()) {
	t.Helper()

	done := make(chan struct{})
	go func() {
		fn()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("%s timed out", name)
	}
}

func TestTUI_StartWithModel_WaitAndClose(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("startWithModel error = %v", err)
	}

	// send while running should go through program.Send
	tui.send(upcomingMsg{count: 2})

	waitWithTimeout(t, "Wait()", tui.Wait)
	waitWithTimeout(t, "Close()", tui.Close)

	if tui.running() {
		t.Fatal("running() = true after program exit")
	}
}

func TestTUI_Send_And_EnsureStarted_NoPanic(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	// send before start should be no-op
	tui.send(upcomingMsg{count: 1})

	// ensureStarted should not re-start when already started
	tui.started = true
	tui.ensureStarted()

	if tui.program != nil {
		t.Fatal("ensureStarted() started a program although already started")
	}
}

func TestTUI_CheckMode_ResultEndsProgram(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.Start(WithCheckMode()); err != nil {
		t.Fatalf("Start error = %v", err)
	}

	result := sampleResult()

	tui.DisplayConcurrencyInfo(2, 4)
	tui.DisplayUpcomingAssignments(len(result.Matrices))
	tui.DisplayAssignmentStarted("q1", 3)
	tui.DisplayAssignmentCompleted(result.Matrices[0])

	if err := tui.DisplayResult(result, []m.Path{"reports/q1_plagiarism.csv"}); err != nil {
		t.Fatalf("DisplayResult error = %v", err)
	}

	waitWithTimeout(t, "Wait()", tui.Wait)
	tui.Close()
}

func TestTUI_DisplayResult_AfterExitPrints(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("startWithModel error = %v", err)
	}

	waitWithTimeout(t, "Wait()", tui.Wait)

	if err := tui.DisplayResult(sampleResult(), nil); err != nil {
		t.Fatalf("DisplayResult error = %v", err)
	}

	if !strings.Contains(buf.String(), "Twins Similarity Report") {
		t.Fatalf("output missing report title\noutput:\n%s", buf.String())
	}
}

func TestTUI_ListMode_PrintsCorpus(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.Start(WithListMode()); err != nil {
		t.Fatalf("Start error = %v", err)
	}

	if tui.program != nil {
		t.Fatal("list mode must not run an interactive program")
	}

	if err := tui.DisplayCorpus(sampleGroups(), nil); err != nil {
		t.Fatalf("DisplayCorpus error = %v", err)
	}

	tui.Wait()
	tui.Close()

	output := buf.String()
	for _, want := range []string{"Twins Corpus", "q1", "q2", "TOTAL ASSIGNMENTS 2"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestTUI_ViewMode_PrintsResult(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.Start(WithViewMode()); err != nil {
		t.Fatalf("Start error = %v", err)
	}

	if err := tui.DisplayResult(sampleResult(), nil); err != nil {
		t.Fatalf("DisplayResult error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Twins Similarity Report", "run-1", "Flagged students", "Exact matches: 2", "7A olga"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestTUI_MultipleClose(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	tui.Close()
	tui.Close() // Close again should be safe

	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("startWithModel error = %v", err)
	}

	waitWithTimeout(t, "Close()", tui.Close)
	waitWithTimeout(t, "second Close()", tui.Close)
}

func TestTUI_WaitWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	waitWithTimeout(t, "Wait()", tui.Wait)
}
