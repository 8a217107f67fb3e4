package adapter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	m "github.com/mouse-blink/twins/internal/model"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

// Report formats understood by ReportWriter.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatTxt  = "txt"
)

const (
	summaryFileName = "summary.csv"
	rosterFileName  = "students_with_100.txt"
	exactFillColor  = "FF0000"
	maxSheetName    = 31
)

// ReportWriter renders a finished run into files.
type ReportWriter interface {
	// Write emits every requested format into dir and returns the created files.
	Write(dir m.Path, result m.RunResult, formats []string) ([]m.Path, error)
}

// LocalReportWriter writes reports to the local filesystem.
type LocalReportWriter struct {
	logger zerolog.Logger
}

// NewLocalReportWriter constructs a LocalReportWriter.
func NewLocalReportWriter(logger zerolog.Logger) *LocalReportWriter {
	return &LocalReportWriter{logger: logger}
}

// ValidateFormats rejects unknown report formats.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		switch strings.ToLower(f) {
		case FormatCSV, FormatXLSX, FormatTxt:
		default:
			return fmt.Errorf("unknown report format %q (want %s, %s or %s)", f, FormatCSV, FormatXLSX, FormatTxt)
		}
	}

	return nil
}

// Write implements ReportWriter. Formats are validated before any file is created.
func (w *LocalReportWriter) Write(dir m.Path, result m.RunResult, formats []string) ([]m.Path, error) {
	if err := ValidateFormats(formats); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return nil, fmt.Errorf("create reports directory: %w", err)
	}

	var artifacts []m.Path

	for _, format := range dedupeFormats(formats) {
		var (
			written []m.Path
			err     error
		)

		switch format {
		case FormatCSV:
			written, err = w.writeCSV(dir, result)
		case FormatXLSX:
			written, err = w.writeXLSX(dir, result)
		case FormatTxt:
			written, err = w.writeRoster(dir, result.Roster)
		}

		if err != nil {
			return artifacts, err
		}

		artifacts = append(artifacts, written...)
	}

	return artifacts, nil
}

func dedupeFormats(formats []string) []string {
	seen := make(map[string]struct{}, len(formats))
	out := make([]string, 0, len(formats))

	for _, f := range formats {
		f = strings.ToLower(f)
		if _, ok := seen[f]; ok {
			continue
		}

		seen[f] = struct{}{}
		out = append(out, f)
	}

	return out
}

func (w *LocalReportWriter) writeCSV(dir m.Path, result m.RunResult) ([]m.Path, error) {
	artifacts := make([]m.Path, 0, len(result.Matrices)+1)

	for _, matrix := range result.Matrices {
		path := filepath.Join(string(dir), string(matrix.Assignment)+"_plagiarism.csv")
		if err := writeCSVFile(path, matrix.Table()); err != nil {
			return artifacts, err
		}

		w.logger.Debug().Str("assignment", string(matrix.Assignment)).Str("file", path).Msg("csv report written")
		artifacts = append(artifacts, m.Path(path))
	}

	path := filepath.Join(string(dir), summaryFileName)
	if err := writeCSVFile(path, SummaryTable(result)); err != nil {
		return artifacts, err
	}

	return append(artifacts, m.Path(path)), nil
}

// SummaryTable renders the cross-assignment summary: one row per flagged
// student, one column per assignment in run order holding the peer list.
func SummaryTable(result m.RunResult) [][]string {
	header := make([]string, 0, len(result.Matrices)+1)
	header = append(header, "student")

	for _, matrix := range result.Matrices {
		header = append(header, string(matrix.Assignment))
	}

	table := [][]string{header}

	for _, student := range result.Summary.Students() {
		entry := result.Summary[student]

		row := make([]string, 0, len(header))
		row = append(row, string(student))

		for _, matrix := range result.Matrices {
			row = append(row, entry.Peers(matrix.Assignment))
		}

		table = append(table, row)
	}

	return table
}

func writeCSVFile(path string, rows [][]string) error {
	// #nosec G304 - path is built from the reports directory
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}

	defer func() {
		_ = file.Close()
	}()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}

	return file.Close()
}

func (w *LocalReportWriter) writeXLSX(dir m.Path, result m.RunResult) ([]m.Path, error) {
	artifacts := make([]m.Path, 0, len(result.Matrices))

	for _, matrix := range result.Matrices {
		path := filepath.Join(string(dir), string(matrix.Assignment)+"_plagiarism.xlsx")
		if err := writeWorkbook(path, SheetName(string(matrix.Assignment)), matrix.Table()); err != nil {
			return artifacts, err
		}

		w.logger.Debug().Str("assignment", string(matrix.Assignment)).Str("file", path).Msg("xlsx report written")
		artifacts = append(artifacts, m.Path(path))
	}

	return artifacts, nil
}

func writeWorkbook(path, sheet string, table [][]string) error {
	f := excelize.NewFile()

	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("name sheet %s: %w", sheet, err)
	}

	exactStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{exactFillColor}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	exact := m.FormatScore(m.ExactScore)

	for r, row := range table {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}

		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", r+1, err)
		}

		if r == 0 {
			continue
		}

		for c, value := range row {
			if c == 0 || value != exact {
				continue
			}

			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}

			if err := f.SetCellStyle(sheet, cell, cell, exactStyle); err != nil {
				return fmt.Errorf("style %s: %w", cell, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", filepath.Base(path), err)
	}

	return nil
}

// SheetName makes an assignment id usable as an Excel sheet name.
func SheetName(assignment string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}

		return r
	}, assignment)

	name = strings.Trim(name, "'")

	if utf8.RuneCountInString(name) > maxSheetName {
		name = string([]rune(name)[:maxSheetName])
	}

	if name == "" {
		return "Sheet1"
	}

	return name
}

// writeRoster writes the sorted exact-match roster. Nothing is written for an
// empty roster.
func (w *LocalReportWriter) writeRoster(dir m.Path, roster m.ExactMatchRoster) ([]m.Path, error) {
	if len(roster) == 0 {
		return nil, nil
	}

	var b strings.Builder
	for _, student := range roster.Sorted() {
		b.WriteString(string(student))
		b.WriteString("\n")
	}

	path := filepath.Join(string(dir), rosterFileName)
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		return nil, fmt.Errorf("write %s: %w", rosterFileName, err)
	}

	w.logger.Debug().Int("students", len(roster)).Str("file", path).Msg("exact match roster written")

	return []m.Path{m.Path(path)}, nil
}
