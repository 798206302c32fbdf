package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zerolag/zerolag/pkg/zerolag/collector"
	"github.com/zerolag/zerolag/pkg/zerolag/logging"
	"github.com/zerolag/zerolag/pkg/zerolag/types"
)

var logger = logging.Get("tui")

// AppState represents the current screen.
type AppState int

const (
	// StateScanning shows the spinner while metrics are collected.
	StateScanning AppState = iota
	// StateResults shows the score, breakdown, and recommendations.
	StateResults
)

// Options configures the TUI session.
type Options struct {
	Mode      types.Mode
	OutputDir string
	Collector collector.Options
}

// Model is the top-level Bubble Tea model.
type Model struct {
	state AppState
	opts  Options
	mode  types.Mode

	spinner spinner.Model

	results resultsModel

	exportStatus string
	exportErr    error

	width  int
	height int
}

// NewModel creates the TUI model. A scan starts as soon as the
// program runs.
func NewModel(opts Options) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipglossSpinnerStyle()

	return Model{
		state:   StateScanning,
		opts:    opts,
		mode:    opts.Mode,
		spinner: sp,
	}
}

// Init starts the spinner and kicks off the first scan.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.startScan())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.results.setSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.state != StateScanning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case scanCompleteMsg:
		m.state = StateResults
		m.results = newResultsModel(msg.doc, msg.err, m.width, m.height)
		m.exportStatus = ""
		m.exportErr = nil
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.exportErr = msg.err
			m.exportStatus = ""
		} else {
			m.exportErr = nil
			m.exportStatus = msg.dir
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	}

	if m.state != StateResults {
		return m, nil
	}

	switch msg.String() {
	case "r":
		return m.rescan()
	case "m":
		if m.mode == types.ModeGaming {
			m.mode = types.ModeGeneral
		} else {
			m.mode = types.ModeGaming
		}
		return m.rescan()
	case "e":
		if m.results.doc != nil {
			m.exportStatus = ""
			m.exportErr = nil
			return m, m.exportReports()
		}
	case "up", "k":
		m.results.scroll(-1)
	case "down", "j":
		m.results.scroll(1)
	case "pgup":
		m.results.scroll(-m.results.pageSize())
	case "pgdown":
		m.results.scroll(m.results.pageSize())
	case "g", "home":
		m.results.scrollTop()
	}

	return m, nil
}

func (m Model) rescan() (tea.Model, tea.Cmd) {
	m.state = StateScanning
	m.exportStatus = ""
	m.exportErr = nil
	return m, tea.Batch(m.spinner.Tick, m.startScan())
}

// View renders the current screen.
func (m Model) View() string {
	switch m.state {
	case StateScanning:
		return m.scanningView()
	default:
		return m.results.view(m.mode, m.exportStatus, m.exportErr)
	}
}

// Run starts the TUI and blocks until the user quits.
func Run(opts Options) error {
	logger.Info("starting interactive session", "mode", opts.Mode)

	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// scanContext bounds a single collection pass.
func scanContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}
