package adapter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/twins/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)

	return rows
}

func TestLocalReportWriter_Write_AllFormats(t *testing.T) {
	dir := t.TempDir()
	writer := NewLocalReportWriter(zerolog.Nop())

	artifacts, err := writer.Write(m.Path(dir), sampleRunResult(), []string{"csv", "xlsx", "txt"})
	require.NoError(t, err)

	want := []m.Path{
		m.Path(filepath.Join(dir, "q1_plagiarism.csv")),
		m.Path(filepath.Join(dir, "q2_plagiarism.csv")),
		m.Path(filepath.Join(dir, summaryFileName)),
		m.Path(filepath.Join(dir, "q1_plagiarism.xlsx")),
		m.Path(filepath.Join(dir, "q2_plagiarism.xlsx")),
		m.Path(filepath.Join(dir, rosterFileName)),
	}
	assert.Equal(t, want, artifacts)

	t.Run("assignment csv holds the full symmetric table", func(t *testing.T) {
		rows := readCSV(t, filepath.Join(dir, "q1_plagiarism.csv"))

		assert.Equal(t, [][]string{
			{"", "7A ivan", "7A olga", "7B petr"},
			{"7A ivan", "", "100.00", "66.67"},
			{"7A olga", "100.00", "", "66.67"},
			{"7B petr", "66.67", "66.67", ""},
		}, rows)
	})

	t.Run("summary csv", func(t *testing.T) {
		rows := readCSV(t, filepath.Join(dir, summaryFileName))

		assert.Equal(t, [][]string{
			{"student", "q1", "q2"},
			{"7A ivan", "7A olga", ""},
			{"7A olga", "7A ivan", "7B petr"},
			{"7B petr", "", "7A olga"},
		}, rows)
	})

	t.Run("roster is sorted, one per line", func(t *testing.T) {
		data, err := os.ReadFile(filepath.Join(dir, rosterFileName))
		require.NoError(t, err)
		assert.Equal(t, "7A ivan\n7A olga\n", string(data))
	})

	t.Run("xlsx highlights exact matches", func(t *testing.T) {
		f, err := excelize.OpenFile(filepath.Join(dir, "q1_plagiarism.xlsx"))
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows("q1")
		require.NoError(t, err)
		require.Len(t, rows, 4)
		assert.Equal(t, "100.00", rows[1][2])

		exactStyle, err := f.GetCellStyle("q1", "C2")
		require.NoError(t, err)
		plainStyle, err := f.GetCellStyle("q1", "D2")
		require.NoError(t, err)

		assert.NotEqual(t, plainStyle, exactStyle)
	})
}

func TestLocalReportWriter_Write_EmptyRosterSkipsTxt(t *testing.T) {
	dir := t.TempDir()
	writer := NewLocalReportWriter(zerolog.Nop())

	result := sampleRunResult()
	result.Roster = m.ExactMatchRoster{}

	artifacts, err := writer.Write(m.Path(dir), result, []string{"txt"})
	require.NoError(t, err)
	assert.Empty(t, artifacts)

	_, err = os.Stat(filepath.Join(dir, rosterFileName))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalReportWriter_Write_UnknownFormat(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	writer := NewLocalReportWriter(zerolog.Nop())

	_, err := writer.Write(m.Path(dir), sampleRunResult(), []string{"csv", "pdf"})
	require.Error(t, err)

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr), "nothing should be written for an invalid format list")
}

func TestLocalReportWriter_Write_DuplicateFormats(t *testing.T) {
	dir := t.TempDir()
	writer := NewLocalReportWriter(zerolog.Nop())

	artifacts, err := writer.Write(m.Path(dir), sampleRunResult(), []string{"TXT", "txt"})
	require.NoError(t, err)
	assert.Len(t, artifacts, 1)
}

func TestSheetName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"q1", "q1"},
		{"week1/task[2]", "week1_task_2_"},
		{"'quoted'", "quoted"},
		{"", "Sheet1"},
		{"abcdefghijklmnopqrstuvwxyz0123456789", "abcdefghijklmnopqrstuvwxyz01234"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SheetName(tt.in))
		})
	}
}

func TestSummaryTable_NoFlaggedStudents(t *testing.T) {
	result := m.RunResult{
		Matrices: []m.SimilarityMatrix{{Assignment: "q1"}},
		Summary:  m.Summary{},
	}

	assert.Equal(t, [][]string{{"student", "q1"}}, SummaryTable(result))
}
