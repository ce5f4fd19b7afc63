package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/session"
)

// helpHeight is the number of rows reserved below the board for the short help bar.
const helpHeight = 1

// Options configures a terminal session.
type Options struct {
	// Session describes the grid. A zero Width or Height sizes the grid
	// to fit the screen.
	Session session.Config

	// Runtime carries the screen size, tick rate and seed.
	Runtime core.RuntimeConfig

	// Colors for the board and status bar. Zero value uses the defaults.
	Colors config.ColorConfig

	// Recorder receives finished runs. May be nil.
	Recorder session.RunRecorder

	// Logger reports recorder failures. May be nil.
	Logger *log.Logger
}

// Model is the Bubble Tea model for a running life session.
type Model struct {
	sess       *session.Session
	screen     *core.Screen
	recorder   session.RunRecorder
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	theme      Theme
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	saved      int
	saveErr    error
	err        error
	quitting   bool
}

// NewModel creates a session sized for the screen in opts.Runtime.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	sc := opts.Session
	if sc.Seed == 0 {
		sc.Seed = cfg.Seed
	}
	sc.Layout = session.TerminalLayout()
	if sc.Width <= 0 || sc.Height <= 0 {
		sc.Width, sc.Height = sc.Layout.GridSize(cfg.ScreenW, cfg.ScreenH-helpHeight)
	}

	sess, err := session.New(sc)
	if err != nil {
		return Model{}, err
	}

	colors := opts.Colors
	if colors == (config.ColorConfig{}) {
		colors = config.DefaultLifeConfig().Display.Colors
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		sess:       sess,
		screen:     core.NewScreen(max(cfg.ScreenW, 1), max(cfg.ScreenH-helpHeight, 1)),
		recorder:   opts.Recorder,
		logger:     opts.Logger,
		keys:       DefaultKeyMap(),
		help:       h,
		theme:      NewTheme(colors),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.inputFrame.Press(msg.X, msg.Y, MapMouse(msg))
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quit()
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleResize keeps the grid and only resizes the screen buffer.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(max(msg.Width, 1), max(msg.Height-helpHeight, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick applies the buffered input and advances the simulation.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res, err := m.sess.Update(m.inputFrame)
	m.inputFrame.Clear()
	if err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	if res.Ended != nil {
		m.save(*res.Ended)
	}

	return m, tickCmd(m.config.TickRate)
}

// quit records the current run before exiting.
func (m *Model) quit() {
	m.quitting = true
	m.save(m.sess.Summary())
}

func (m *Model) save(sum session.RunSummary) {
	if m.recorder == nil {
		return
	}
	id, err := session.Save(m.recorder, sum)
	if err != nil {
		m.saveErr = err
		if m.logger != nil {
			m.logger.Warn("could not save run", "error", err)
		}
		return
	}
	if id != 0 {
		m.saved++
	}
}

// View renders the board, status bar and help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.sess.Render(m.screen)
	board := RenderScreen(m.screen, m.theme)

	helpView := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render(m.help.View(m.keys))

	// Full help takes more rows than reserved; drop board rows from the bottom.
	if extra := lipgloss.Height(helpView) - helpHeight; extra > 0 {
		lines := strings.Split(board, "\n")
		lines = lines[:max(len(lines)-extra, 0)]
		board = strings.Join(lines, "\n")
	}

	return board + "\n" + helpView
}

// Session returns the driven session.
func (m Model) Session() *session.Session { return m.sess }

// Saved returns how many runs were recorded.
func (m Model) Saved() int { return m.saved }

// SaveErr returns the last error from the recorder, if any.
func (m Model) SaveErr() error { return m.saveErr }

// Err returns the error that stopped the session, if any.
func (m Model) Err() error { return m.err }

// Run starts the Bubble Tea program and returns the final model.
func Run(opts Options) (Model, error) {
	model, err := NewModel(opts)
	if err != nil {
		return Model{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Press and drag events for painting
	)

	final, err := p.Run()
	if err != nil {
		return model, err
	}
	if fm, ok := final.(Model); ok {
		return fm, fm.err
	}
	return model, nil
}
