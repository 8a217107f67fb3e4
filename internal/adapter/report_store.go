package adapter

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	m "github.com/mouse-blink/twins/internal/model"
	"gopkg.in/yaml.v3"
)

const (
	indexFileName = "_index.yaml"
	snapshotExt   = ".yaml"
)

// ErrNoSnapshot is returned by LoadRun when the reports directory holds no run.
var ErrNoSnapshot = errors.New("no saved run found")

// ReportStore persists and retrieves the snapshot of the last run.
type ReportStore interface {
	SaveRun(dir m.Path, result m.RunResult) error
	LoadRun(dir m.Path) (m.RunResult, error)
}

// LocalReportStore keeps one YAML file per assignment matrix, named by a
// hash of the assignment, plus an _index.yaml with the run-level data.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

type indexYAML struct {
	ID          string           `yaml:"id"`
	StartedAt   time.Time        `yaml:"started_at"`
	Duration    time.Duration    `yaml:"duration"`
	Threshold   float64          `yaml:"threshold"`
	Matrices    []indexEntryYAML `yaml:"matrices"`
	Summary     []summaryYAML    `yaml:"summary"`
	Roster      []m.StudentID    `yaml:"roster"`
	Diagnostics []m.Diagnostic   `yaml:"diagnostics"`
}

type indexEntryYAML struct {
	Assignment m.AssignmentID `yaml:"assignment"`
	File       string         `yaml:"file"`
}

type summaryYAML struct {
	Student     m.StudentID `yaml:"student"`
	Assignments []peersYAML `yaml:"assignments"`
}

type peersYAML struct {
	Assignment m.AssignmentID `yaml:"assignment"`
	Peers      []m.StudentID  `yaml:"peers"`
}

type matrixYAML struct {
	Assignment m.AssignmentID `yaml:"assignment"`
	Students   []m.StudentID  `yaml:"students"`
	Scores     []scoreYAML    `yaml:"scores"`
	Exact      []m.Pair       `yaml:"exact"`
}

type scoreYAML struct {
	A     m.StudentID `yaml:"a"`
	B     m.StudentID `yaml:"b"`
	Score float64     `yaml:"score"`
}

// SaveRun replaces any previous snapshot in dir with result.
func (rs *LocalReportStore) SaveRun(dir m.Path, result m.RunResult) error {
	if dir == "" {
		return fmt.Errorf("reports directory is empty")
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create reports directory: %w", err)
	}

	if err := rs.cleanSnapshots(dir); err != nil {
		return err
	}

	index := indexYAML{
		ID:          result.ID,
		StartedAt:   result.StartedAt,
		Duration:    result.Duration,
		Threshold:   result.Threshold,
		Roster:      result.Roster.Sorted(),
		Diagnostics: result.Diagnostics,
	}

	for _, matrix := range result.Matrices {
		name := rs.matrixFileName(matrix.Assignment)

		if err := writeYAML(filepath.Join(string(dir), name), toMatrixYAML(matrix)); err != nil {
			return err
		}

		index.Matrices = append(index.Matrices, indexEntryYAML{Assignment: matrix.Assignment, File: name})
	}

	for _, student := range result.Summary.Students() {
		entry := summaryYAML{Student: student}

		// Keep assignment order of the run, not map order.
		for _, matrix := range result.Matrices {
			if peers, ok := result.Summary[student][matrix.Assignment]; ok {
				entry.Assignments = append(entry.Assignments, peersYAML{Assignment: matrix.Assignment, Peers: peers})
			}
		}

		index.Summary = append(index.Summary, entry)
	}

	return writeYAML(filepath.Join(string(dir), indexFileName), index)
}

// LoadRun reads the snapshot written by SaveRun.
func (rs *LocalReportStore) LoadRun(dir m.Path) (m.RunResult, error) {
	if dir == "" {
		return m.RunResult{}, fmt.Errorf("reports directory is empty")
	}

	data, err := os.ReadFile(filepath.Join(string(dir), indexFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return m.RunResult{}, fmt.Errorf("%w in %s", ErrNoSnapshot, dir)
		}

		return m.RunResult{}, fmt.Errorf("read index: %w", err)
	}

	var index indexYAML
	if err := yaml.Unmarshal(data, &index); err != nil {
		return m.RunResult{}, fmt.Errorf("unmarshal index: %w", err)
	}

	result := m.RunResult{
		ID:          index.ID,
		StartedAt:   index.StartedAt,
		Duration:    index.Duration,
		Threshold:   index.Threshold,
		Summary:     m.Summary{},
		Roster:      m.ExactMatchRoster{},
		Diagnostics: index.Diagnostics,
	}

	for _, entry := range index.Matrices {
		matrix, err := rs.loadMatrix(filepath.Join(string(dir), entry.File))
		if err != nil {
			return m.RunResult{}, err
		}

		result.Matrices = append(result.Matrices, matrix)
	}

	for _, entry := range index.Summary {
		assignments := m.SummaryEntry{}
		for _, a := range entry.Assignments {
			assignments[a.Assignment] = a.Peers
		}

		result.Summary[entry.Student] = assignments
	}

	result.Roster.Add(index.Roster...)

	return result, nil
}

func (rs *LocalReportStore) loadMatrix(path string) (m.SimilarityMatrix, error) {
	// #nosec G304 - path is listed in our own index
	data, err := os.ReadFile(path)
	if err != nil {
		return m.SimilarityMatrix{}, fmt.Errorf("read matrix: %w", err)
	}

	var decoded matrixYAML
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		return m.SimilarityMatrix{}, fmt.Errorf("unmarshal matrix %s: %w", filepath.Base(path), err)
	}

	matrix := m.SimilarityMatrix{
		Assignment: decoded.Assignment,
		Students:   decoded.Students,
		Scores:     make(map[m.Pair]float64, len(decoded.Scores)),
		Exact:      decoded.Exact,
	}

	for _, s := range decoded.Scores {
		matrix.Scores[m.NewPair(s.A, s.B)] = s.Score
	}

	return matrix, nil
}

// matrixFileName returns a stable file name for the assignment. Assignment
// names come from user files and may not be valid file names.
func (rs *LocalReportStore) matrixFileName(assignment m.AssignmentID) string {
	sum := sha256.Sum256([]byte(assignment))

	return fmt.Sprintf("%x", sum[:8]) + snapshotExt
}

// cleanSnapshots removes the YAML files of a previous run. Other files,
// such as CSV or XLSX reports, are left alone.
func (rs *LocalReportStore) cleanSnapshots(dir m.Path) error {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return fmt.Errorf("read reports directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), snapshotExt) {
			continue
		}

		if err := os.Remove(filepath.Join(string(dir), entry.Name())); err != nil {
			return fmt.Errorf("remove stale snapshot: %w", err)
		}
	}

	return nil
}

func toMatrixYAML(matrix m.SimilarityMatrix) matrixYAML {
	out := matrixYAML{
		Assignment: matrix.Assignment,
		Students:   matrix.Students,
		Exact:      matrix.Exact,
	}

	// Row-major, i < j.
	for i, a := range matrix.Students {
		for _, b := range matrix.Students[i+1:] {
			if score, ok := matrix.Score(a, b); ok {
				out.Scores = append(out.Scores, scoreYAML{A: a, B: b, Score: score})
			}
		}
	}

	return out
}

func writeYAML(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}

	return nil
}
