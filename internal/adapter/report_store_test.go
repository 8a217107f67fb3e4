package adapter

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/twins/internal/model"
)

func sampleRunResult() m.RunResult {
	ivan, olga, petr := m.StudentID("7A ivan"), m.StudentID("7A olga"), m.StudentID("7B petr")

	q1 := m.SimilarityMatrix{
		Assignment: "q1",
		Students:   []m.StudentID{ivan, olga, petr},
		Scores: map[m.Pair]float64{
			m.NewPair(ivan, olga): 100,
			m.NewPair(ivan, petr): 66.66666666666667,
			m.NewPair(olga, petr): 66.66666666666667,
		},
		Exact: []m.Pair{m.NewPair(ivan, olga)},
	}

	q2 := m.SimilarityMatrix{
		Assignment: "q2",
		Students:   []m.StudentID{olga, petr},
		Scores:     map[m.Pair]float64{m.NewPair(olga, petr): 95.5},
	}

	roster := m.ExactMatchRoster{}
	roster.Add(ivan, olga)

	return m.RunResult{
		ID:        "run-1",
		StartedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Duration:  1500 * time.Millisecond,
		Threshold: 90,
		Matrices:  []m.SimilarityMatrix{q1, q2},
		Summary: m.Summary{
			ivan: {"q1": {olga}},
			olga: {"q1": {ivan}, "q2": {petr}},
			petr: {"q2": {olga}},
		},
		Roster: roster,
		Diagnostics: []m.Diagnostic{
			{Kind: m.DiagnosticParseError, Student: "7B anna", Assignment: "q1", Message: "invalid syntax"},
		},
	}
}

func TestLocalReportStore_SaveRun_WritesHashedYAMLPerMatrix(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rs := &LocalReportStore{}
	result := sampleRunResult()

	if err := rs.SaveRun(m.Path(dir), result); err != nil {
		t.Fatalf("SaveRun returned error: %v", err)
	}

	expectedFile := filepath.Join(dir, rs.matrixFileName("q1"))

	matched, err := regexp.MatchString(`^[0-9a-f]{16}\.yaml$`, filepath.Base(expectedFile))
	if err != nil {
		t.Fatalf("regex error: %v", err)
	}
	if !matched {
		t.Fatalf("unexpected filename: %s", filepath.Base(expectedFile))
	}

	data, err := os.ReadFile(expectedFile)
	if err != nil {
		t.Fatalf("expected matrix file %s to exist: %v", expectedFile, err)
	}

	var decoded matrixYAML
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal YAML: %v", err)
	}

	if decoded.Assignment != "q1" {
		t.Fatalf("assignment = %q, want q1", decoded.Assignment)
	}
	if len(decoded.Scores) != 3 {
		t.Fatalf("scores = %d, want 3", len(decoded.Scores))
	}
	if decoded.Scores[0].A != "7A ivan" || decoded.Scores[0].B != "7A olga" || decoded.Scores[0].Score != 100 {
		t.Fatalf("unexpected first score: %+v", decoded.Scores[0])
	}

	if _, err := os.Stat(filepath.Join(dir, indexFileName)); err != nil {
		t.Fatalf("expected %s to exist: %v", indexFileName, err)
	}
}

func TestLocalReportStore_SaveAndLoadRun_RoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rs := &LocalReportStore{}
	want := sampleRunResult()

	if err := rs.SaveRun(m.Path(dir), want); err != nil {
		t.Fatalf("SaveRun returned error: %v", err)
	}

	got, err := rs.LoadRun(m.Path(dir))
	if err != nil {
		t.Fatalf("LoadRun returned error: %v", err)
	}

	if got.ID != want.ID || got.Threshold != want.Threshold || got.Duration != want.Duration {
		t.Fatalf("run metadata mismatch: got %+v", got)
	}
	if !got.StartedAt.Equal(want.StartedAt) {
		t.Fatalf("StartedAt = %v, want %v", got.StartedAt, want.StartedAt)
	}

	if len(got.Matrices) != 2 || got.Matrices[0].Assignment != "q1" || got.Matrices[1].Assignment != "q2" {
		t.Fatalf("matrices out of order: %+v", got.Matrices)
	}

	for i, matrix := range got.Matrices {
		wantMatrix := want.Matrices[i]
		if len(matrix.Scores) != len(wantMatrix.Scores) {
			t.Fatalf("%s: %d scores, want %d", matrix.Assignment, len(matrix.Scores), len(wantMatrix.Scores))
		}

		for pair, score := range wantMatrix.Scores {
			if matrix.Scores[pair] != score {
				t.Fatalf("%s %v = %v, want %v", matrix.Assignment, pair, matrix.Scores[pair], score)
			}
		}
	}

	if !got.Matrices[0].IsExact("7A olga", "7A ivan") {
		t.Fatalf("exact pair not restored")
	}

	if got.Summary["7A olga"].Peers("q2") != "7B petr" {
		t.Fatalf("summary not restored: %+v", got.Summary)
	}
	if len(got.Summary) != 3 {
		t.Fatalf("summary students = %d, want 3", len(got.Summary))
	}

	if !got.Roster.Contains("7A ivan") || !got.Roster.Contains("7A olga") || got.Roster.Contains("7B petr") {
		t.Fatalf("roster not restored: %v", got.Roster.Sorted())
	}

	if len(got.Diagnostics) != 1 || got.Diagnostics[0].Kind != m.DiagnosticParseError {
		t.Fatalf("diagnostics not restored: %+v", got.Diagnostics)
	}
}

func TestLocalReportStore_SaveRun_RemovesStaleSnapshots(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rs := &LocalReportStore{}

	first := sampleRunResult()
	if err := rs.SaveRun(m.Path(dir), first); err != nil {
		t.Fatalf("SaveRun returned error: %v", err)
	}

	keep := filepath.Join(dir, "q1_plagiarism.csv")
	if err := os.WriteFile(keep, []byte("x"), 0o600); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	second := sampleRunResult()
	second.Matrices = second.Matrices[1:]

	if err := rs.SaveRun(m.Path(dir), second); err != nil {
		t.Fatalf("SaveRun returned error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, rs.matrixFileName("q1"))); !os.IsNotExist(err) {
		t.Fatalf("expected stale q1 snapshot to be removed, stat err = %v", err)
	}
	if _, err := os.Stat(keep); err != nil {
		t.Fatalf("expected non-snapshot file to be kept: %v", err)
	}

	got, err := rs.LoadRun(m.Path(dir))
	if err != nil {
		t.Fatalf("LoadRun returned error: %v", err)
	}
	if len(got.Matrices) != 1 {
		t.Fatalf("matrices = %d, want 1", len(got.Matrices))
	}
}

func TestLocalReportStore_LoadRun_NoSnapshot(t *testing.T) {
	t.Parallel()

	rs := &LocalReportStore{}

	_, err := rs.LoadRun(m.Path(t.TempDir()))
	if !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("LoadRun error = %v, want ErrNoSnapshot", err)
	}
}

func TestLocalReportStore_EmptyPath_ReturnsError(t *testing.T) {
	t.Parallel()

	rs := &LocalReportStore{}

	if err := rs.SaveRun("", m.RunResult{}); err == nil {
		t.Fatalf("SaveRun expected error for empty path")
	}

	if _, err := rs.LoadRun(""); err == nil {
		t.Fatalf("LoadRun expected error for empty path")
	}
}

func TestLocalReportStore_LoadRun_CorruptIndex(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, indexFileName), []byte("id: [unterminated"), 0o600); err != nil {
		t.Fatalf("write index: %v", err)
	}

	rs := &LocalReportStore{}
	if _, err := rs.LoadRun(m.Path(dir)); err == nil {
		t.Fatalf("LoadRun expected error for corrupt index")
	}
}
