package controller

import (
	"bytes"
	"fmt"
	"strings"

	m "github.com/mouse-blink/twins/internal/model"
	"github.com/olekukonko/tablewriter"
)

func renderTable(header []string, rows [][]string, footer []string, alignment []int) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	if alignment != nil {
		table.SetColumnAlignment(alignment)
	}

	table.AppendBulk(rows)

	if footer != nil {
		table.SetFooter(footer)
	}

	table.Render()

	return tableBuffer.String()
}

func corpusTable(groups []m.AssignmentGroup) string {
	rows := make([][]string, 0, len(groups))
	students, tokens := 0, 0

	for _, group := range groups {
		groupTokens := 0
		for _, sub := range group.Submissions {
			groupTokens += len(sub.Tokens)
		}

		rows = append(rows, []string{
			string(group.Assignment),
			fmt.Sprintf("%d", len(group.Submissions)),
			fmt.Sprintf("%d", groupTokens),
		})

		students += len(group.Submissions)
		tokens += groupTokens
	}

	return renderTable(
		[]string{"Assignment", "Submissions", "Tokens"},
		rows,
		[]string{
			fmt.Sprintf("Total Assignments %d", len(groups)),
			fmt.Sprintf("%d", students),
			fmt.Sprintf("%d", tokens),
		},
		[]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER},
	)
}

func diagnosticsTable(diagnostics []m.Diagnostic) string {
	rows := make([][]string, 0, len(diagnostics))
	for _, d := range diagnostics {
		rows = append(rows, []string{string(d.Kind), string(d.Student), string(d.Assignment), d.Message})
	}

	return renderTable([]string{"Kind", "Student", "Assignment", "Message"}, rows, nil, nil)
}

// assignmentStats summarizes one matrix for display.
type assignmentStats struct {
	students int
	pairs    int
	exact    int
	max      float64
}

func statsOf(matrix m.SimilarityMatrix) assignmentStats {
	stats := assignmentStats{
		students: len(matrix.Students),
		pairs:    matrix.PairCount(),
		exact:    len(matrix.Exact),
	}

	for _, score := range matrix.Scores {
		if score > stats.max {
			stats.max = score
		}
	}

	return stats
}

func matricesTable(matrices []m.SimilarityMatrix) string {
	rows := make([][]string, 0, len(matrices))
	pairs, exact := 0, 0

	for _, matrix := range matrices {
		stats := statsOf(matrix)

		maxScore := "-"
		if stats.pairs > 0 {
			maxScore = m.FormatScore(stats.max)
		}

		rows = append(rows, []string{
			string(matrix.Assignment),
			fmt.Sprintf("%d", stats.students),
			fmt.Sprintf("%d", stats.pairs),
			maxScore,
			fmt.Sprintf("%d", stats.exact),
		})

		pairs += stats.pairs
		exact += stats.exact
	}

	return renderTable(
		[]string{"Assignment", "Students", "Pairs", "Max", "Exact"},
		rows,
		[]string{fmt.Sprintf("Total Assignments %d", len(matrices)), "", fmt.Sprintf("%d", pairs), "", fmt.Sprintf("%d", exact)},
		[]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_CENTER},
	)
}

// flaggedRows lists one row per flagged student and assignment, students
// sorted and assignments in run order.
func flaggedRows(result m.RunResult) [][]string {
	var rows [][]string

	for _, student := range result.Summary.Students() {
		entry := result.Summary[student]

		for _, matrix := range result.Matrices {
			if _, ok := entry[matrix.Assignment]; !ok {
				continue
			}

			rows = append(rows, []string{string(student), string(matrix.Assignment), entry.Peers(matrix.Assignment)})
		}
	}

	return rows
}

func flaggedTable(result m.RunResult) string {
	return renderTable([]string{"Student", "Assignment", "Peers"}, flaggedRows(result), nil, nil)
}

func rosterLines(roster m.ExactMatchRoster) string {
	sorted := roster.Sorted()

	lines := make([]string, len(sorted))
	for i, s := range sorted {
		lines[i] = string(s)
	}

	return strings.Join(lines, "\n")
}
