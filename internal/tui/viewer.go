// Package tui is an interactive terminal viewer for a built timetable, one
// table per day.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jackzampolin/classgrid/internal/pipeline"
	"github.com/jackzampolin/classgrid/internal/render"
)

const (
	white    = lipgloss.Color("#FFFFFF")
	blue     = lipgloss.Color("#0043a8")
	grey     = lipgloss.Color("#626262")
	red      = lipgloss.Color("#FF5555")
	yellow   = lipgloss.Color("#F1FA8C")
	lavender = lipgloss.Color("#B8B8FF")
)

type viewState int

const (
	loadingView viewState = iota
	scheduleView
	emptyView
	errorView
)

// BuildMsg carries the outcome of a build into the viewer.
type BuildMsg struct {
	Document *render.Document
	Outcome  pipeline.Outcome
	Err      error
}

// BuildFunc produces the document to show. It runs off the UI goroutine.
type BuildFunc func() BuildMsg

// Model is the bubbletea model for the viewer.
type Model struct {
	width, height int
	state         viewState
	build         BuildFunc
	opts          render.Options
	spinner       spinner.Model

	doc     *render.Document
	tables  []table.Model
	current int
	err     error
}

// New returns a viewer that calls build once on start.
func New(build BuildFunc, opts render.Options) Model {
	s := spinner.New()
	s.Style = lipgloss.NewStyle().Foreground(blue)
	s.Spinner = spinner.Points

	return Model{
		state:   loadingView,
		build:   build,
		opts:    opts,
		spinner: s,
	}
}

// Run starts the viewer full screen and blocks until it quits.
func Run(build BuildFunc, opts render.Options) error {
	_, err := tea.NewProgram(New(build, opts), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	build := m.build
	return tea.Batch(m.spinner.Tick, func() tea.Msg { return build() })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case spinner.TickMsg:
		if m.state != loadingView {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case BuildMsg:
		switch {
		case msg.Err != nil:
			m.err = msg.Err
			m.state = errorView
		case msg.Outcome != pipeline.OutcomeScheduled || msg.Document == nil:
			m.state = emptyView
		default:
			m.doc = msg.Document
			m.tables = m.dayTables(msg.Document)
			m.current = 0
			m.state = scheduleView
		}

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}

	return m, nil
}

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	}
	if m.state != scheduleView {
		return m, nil
	}

	switch msg.String() {
	case "left", "h", "shift+tab":
		if m.current > 0 {
			m.current--
		}
	case "right", "l", "tab":
		if m.current < len(m.tables)-1 {
			m.current++
		}
	case "home", "g":
		m.current = 0
	case "end", "G":
		m.current = len(m.tables) - 1
	case "up", "k", "down", "j":
		var cmd tea.Cmd
		m.tables[m.current], cmd = m.tables[m.current].Update(msg)
		return m, cmd
	}
	return m, nil
}

// dayTables builds one table per section, sized to its rows.
func (m Model) dayTables(doc *render.Document) []table.Model {
	headers := render.Columns(m.opts)
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, s := range doc.Sections {
		for _, r := range s.Courses {
			for i, c := range r.Cells(m.opts) {
				widths[i] = max(widths[i], lipgloss.Width(c))
			}
		}
	}
	columns := make([]table.Column, len(headers))
	for i, h := range headers {
		columns[i] = table.Column{Title: h, Width: min(widths[i], 40)}
	}

	tables := make([]table.Model, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		rows := make([]table.Row, len(s.Courses))
		for i, r := range s.Courses {
			rows[i] = table.Row(r.Cells(m.opts))
		}

		tbl := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithHeight(min(max(len(rows)+1, 5), 15)),
			table.WithFocused(true),
		)

		st := table.DefaultStyles()
		st.Header = st.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(blue).
			BorderBottom(true).
			Bold(true)
		st.Selected = st.Selected.
			Foreground(white).
			Background(blue).
			Bold(true)
		tbl.SetStyles(st)

		tables = append(tables, tbl)
	}
	return tables
}

func (m Model) View() string {
	var content string
	switch m.state {
	case loadingView:
		content = fmt.Sprintf("%s Reading timetable and registration...", m.spinner.View())
	case errorView:
		content = lipgloss.JoinVertical(lipgloss.Center,
			lipgloss.NewStyle().Foreground(red).Bold(true).Render("Build failed"),
			lipgloss.NewStyle().Foreground(white).Render(m.err.Error()),
			helpStyle.Render("• Q: Quit"),
		)
	case emptyView:
		content = lipgloss.JoinVertical(lipgloss.Center,
			lipgloss.NewStyle().Foreground(yellow).Render("No matching courses found."),
			helpStyle.Render("• Q: Quit"),
		)
	case scheduleView:
		content = m.renderSchedule()
	}

	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lavender).MarginBottom(1)
	tabStyle   = lipgloss.NewStyle().Foreground(grey).Padding(0, 1)
	activeTab  = lipgloss.NewStyle().Foreground(white).Background(blue).Bold(true).Padding(0, 1)
	helpStyle  = lipgloss.NewStyle().Foreground(grey).MarginTop(1)
)

func (m Model) renderSchedule() string {
	tabs := make([]string, len(m.doc.Sections))
	for i, s := range m.doc.Sections {
		style := tabStyle
		if i == m.current {
			style = activeTab
		}
		tabs[i] = style.Render(fmt.Sprintf("%s (%d)", s.Day.Title(), len(s.Courses)))
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(m.doc.Title),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		"",
		m.tables[m.current].View(),
		helpStyle.Render(strings.Join([]string{
			"← →: Switch days",
			"↑ ↓: Navigate",
			"Q: Quit",
		}, " • ")),
	)
}
