package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/storage"
)

// Runs view layout constants
const (
	maxRuns      = 100 // Max runs to load
	runsChrome   = 8   // Rows used by title, borders and help
	minTableRows = 3
)

// RunLister reads run history. *storage.Store satisfies it.
type RunLister interface {
	TopRuns(limit int) ([]storage.Run, error)
	RecentRuns(limit int) ([]storage.Run, error)
}

// RunOrder selects how the runs view sorts history.
type RunOrder int

const (
	OrderLongest RunOrder = iota
	OrderRecent
)

// String returns the tab label for the order.
func (o RunOrder) String() string {
	if o == OrderRecent {
		return "Recent"
	}
	return "Longest"
}

// RunsKeyMap defines the key bindings for the runs view.
type RunsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Switch, k.Quit}}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "longest/recent"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel is the Bubble Tea model for the run history screen.
type RunsModel struct {
	lister   RunLister
	order    RunOrder
	runs     []storage.Run
	loadErr  error
	table    table.Model
	help     help.Model
	keys     RunsKeyMap
	width    int
	height   int
	quitting bool
}

// NewRunsModel creates a runs view and loads the longest runs.
func NewRunsModel(lister RunLister, width, height int) RunsModel {
	m := RunsModel{
		lister: lister,
		order:  OrderLongest,
		keys:   DefaultRunsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = newRunsTable(width, max(height-runsChrome, minTableRows), true)
	m.load()
	return m
}

func runColumns(width int) []table.Column {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Gens", Width: 8},
		{Title: "Peak", Width: 7},
		{Title: "Final", Width: 7},
		{Title: "Size", Width: 9},
		{Title: "Start", Width: 8},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 12},
	}
	// Widen the date column when there is room
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if spare := width - 4 - used; spare > 0 {
		columns[len(columns)-1].Width += min(spare, 8)
	}
	return columns
}

func newRunsTable(width, height int, focused bool) table.Model {
	t := table.New(
		table.WithColumns(runColumns(width)),
		table.WithFocused(focused),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	if focused {
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
	} else {
		s.Selected = lipgloss.NewStyle()
	}
	t.SetStyles(s)
	return t
}

func runRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Generations),
			fmt.Sprintf("%d", r.PeakPopulation),
			fmt.Sprintf("%d", r.FinalPopulation),
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			r.Strategy,
			formatDuration(r.Duration()),
			r.EndedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// formatDuration renders a run length as "1h02m", "3m05s" or "4.2s".
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Hour:
		return fmt.Sprintf("%dh%02dm", int(d.Hours()), int(d.Minutes())%60)
	case d >= time.Minute:
		return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
	default:
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
}

// RunsTable renders runs as a static table for non-interactive output.
func RunsTable(runs []storage.Run, width int) string {
	// Header and its border take two rows
	t := newRunsTable(width, len(runs)+3, false)
	t.SetRows(runRows(runs))
	return t.View()
}

// load fetches runs in the current order.
func (m *RunsModel) load() {
	m.runs, m.loadErr = nil, nil
	if m.lister != nil {
		if m.order == OrderRecent {
			m.runs, m.loadErr = m.lister.RecentRuns(maxRuns)
		} else {
			m.runs, m.loadErr = m.lister.TopRuns(maxRuns)
		}
	}
	m.table.SetRows(runRows(m.runs))
	m.table.GotoTop()
}

// Init initializes the runs model.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the runs view.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			m.order = 1 - m.order
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = newRunsTable(m.width, max(m.height-runsChrome, minTableRows), true)
		m.table.SetRows(runRows(m.runs))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the runs view.
func (m RunsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("RUN HISTORY"))
	b.WriteString("  ")

	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	for _, o := range []RunOrder{OrderLongest, OrderRecent} {
		if o == m.order {
			b.WriteString(activeTabStyle.Render(o.String()))
		} else {
			b.WriteString(tabStyle.Render(o.String()))
		}
	}
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.tableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// tableContent renders the table, a load error, or an empty message.
func (m RunsModel) tableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)
	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load runs:\n" + m.loadErr.Error())
	case len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nStep a generation and start over to record one!")
	}
	return m.table.View()
}

// Order returns the current sort order.
func (m RunsModel) Order() RunOrder { return m.order }

// Runs returns the loaded runs.
func (m RunsModel) Runs() []storage.Run { return m.runs }

// RunRuns runs the history screen until the user quits.
func RunRuns(lister RunLister, width, height int) error {
	p := tea.NewProgram(
		NewRunsModel(lister, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
