package controller

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxProgressWidth = 60

var (
	accentColor = lipgloss.Color("6") // Cyan
	exactColor  = lipgloss.Color("1") // Red

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 1, 2)

	accentStyle = lipgloss.NewStyle().Foreground(accentColor)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	exactStyle  = lipgloss.NewStyle().Foreground(exactColor).Bold(true)
)

// finishedAssignment is one line of the completed list.
type finishedAssignment struct {
	assignment string
	students   int
	pairs      int
	exact      int
	max        float64
}

// checkModel handles the TUI display while matrices are built.
type checkModel struct {
	width       int
	spinner     spinner.Model
	progressBar progress.Model
	workers     int
	submissions int
	total       int
	running     map[string]int
	finished    []finishedAssignment
	final       string
	done        bool
}

func newCheckModel() checkModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = accentStyle

	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	return checkModel{
		spinner:     spin,
		progressBar: prog,
		running:     make(map[string]int),
	}
}

func (m checkModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m checkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progressBar.Width = min(max(msg.Width-4, 10), maxProgressWidth)

	case tea.KeyMsg:
		if msg.String() == "q" || msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

	case spinner.TickMsg:
		if m.done {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case concurrencyMsg:
		m.workers = msg.workers
		m.submissions = msg.submissions

	case upcomingMsg:
		m.total = msg.count
		m.finished = nil

	case startAssignmentMsg:
		m.running[msg.assignment] = msg.students

	case completedAssignmentMsg:
		delete(m.running, msg.assignment)
		m.finished = append(m.finished, finishedAssignment(msg))

	case resultMsg:
		m.final = msg.view
		m.done = true

		return m, tea.Quit
	}

	return m, nil
}

func (m checkModel) percent() float64 {
	if m.total == 0 {
		return 0
	}

	return float64(len(m.finished)) / float64(m.total)
}

func (m checkModel) View() string {
	if m.done {
		return m.final
	}

	title := titleStyle.Render("Twins Similarity Check")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Assignments: %s / %s  •  Submissions: %s  •  Workers: %s",
		accentStyle.Render(fmt.Sprintf("%d", len(m.finished))),
		accentStyle.Render(fmt.Sprintf("%d", m.total)),
		accentStyle.Render(fmt.Sprintf("%d", m.submissions)),
		accentStyle.Render(fmt.Sprintf("%d", m.workers)),
	))

	progressView := lipgloss.NewStyle().Padding(0, 2).Render(m.progressBar.ViewAs(m.percent()))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		progressView,
		m.renderRunning(),
		m.renderFinished(),
		mutedStyle.Render("  Press q to quit"),
	)
}

func (m checkModel) renderRunning() string {
	if len(m.running) == 0 {
		return ""
	}

	names := make([]string, 0, len(m.running))
	for name := range m.running {
		names = append(names, name)
	}

	sort.Strings(names)

	var b strings.Builder
	b.WriteString("\n")

	for _, name := range names {
		fmt.Fprintf(&b, "  %s %s %s\n", m.spinner.View(), name, mutedStyle.Render(fmt.Sprintf("(%d students)", m.running[name])))
	}

	return b.String()
}

func (m checkModel) renderFinished() string {
	if len(m.finished) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	for _, f := range m.finished {
		exact := mutedStyle.Render("0 exact")
		if f.exact > 0 {
			exact = exactStyle.Render(fmt.Sprintf("%d exact", f.exact))
		}

		fmt.Fprintf(&b, "  %s %s  %d pairs  max %.2f  %s\n", accentStyle.Render("✓"), f.assignment, f.pairs, f.max, exact)
	}

	return b.String()
}
