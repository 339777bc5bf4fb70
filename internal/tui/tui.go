// Package tui provides a Bubble Tea terminal user interface for covertag.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"

	"github.com/handiism/covertag/internal/config"
	"github.com/handiism/covertag/internal/pipeline"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

const maxLogs = 10

var errCancelled = errors.New("cancelled by user")

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateInitializing
	StateRunning
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   pipeline.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	fs        afero.Fs
	logs      []LogEntry
	summary   *pipeline.Summary
	err       error

	ctx    context.Context
	cancel context.CancelFunc

	manager *pipeline.Manager
	events  chan pipeline.ProgressEvent

	totalFiles     int32
	processedFiles int32

	// Options
	dryRun   bool
	playlist bool
	verbose  bool

	width  int
	height int
}

// NewModel creates a new TUI model. settings are the base settings of
// every run; the options toggled in the UI are applied on top.
func NewModel(settings *config.Settings, fs afero.Fs) Model {
	ti := textinput.New()
	ti.Placeholder = "/path/to/music"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		fs:        fs,
		logs:      make([]LogEntry, 0),
		ctx:       ctx,
		cancel:    cancel,
		dryRun:    settings.DryRun,
		playlist:  settings.CreatePlaylist,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg is sent when a file has been processed.
	ProgressMsg struct {
		Event pipeline.ProgressEvent
	}

	// InitDoneMsg is sent when the manager has been created.
	InitDoneMsg struct {
		Manager *pipeline.Manager
		Events  chan pipeline.ProgressEvent
		Err     error
	}

	// RunDoneMsg is sent when the whole folder has been processed.
	RunDoneMsg struct {
		Summary   *pipeline.Summary
		Processed int32
		Total     int32
		Err       error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(max(msg.Width-20, 20), 80)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateRunning || m.state == StateInitializing {
				m.cancel()
				m.state = StateError
				m.err = errCancelled
			}

		case "enter":
			if m.state == StateInput && strings.TrimSpace(m.textInput.Value()) != "" {
				m.state = StateInitializing
				return m, tea.Batch(m.initializeRun(), m.spinner.Tick)
			}

		case "alt+n":
			if m.state == StateInput {
				m.dryRun = !m.dryRun
			}
			return m, nil

		case "alt+p":
			if m.state == StateInput {
				m.playlist = !m.playlist
			}
			return m, nil

		case "alt+v":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}
			return m, nil

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				m = m.reset()
				return m, textinput.Blink
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		if m.events != nil {
			cmds = append(cmds, waitForEvent(m.events))
		}
		if msg.Event.Level == pipeline.LevelVerbose && !m.verbose {
			break
		}
		m.logs = append(m.logs, LogEntry{
			Message: msg.Event.Message,
			Level:   msg.Event.Level,
		})
		if len(m.logs) > maxLogs {
			m.logs = m.logs[len(m.logs)-maxLogs:]
		}

	case InitDoneMsg:
		if m.state != StateInitializing {
			// Cancelled while the manager was being created.
			break
		}
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
			break
		}
		m.manager = msg.Manager
		m.events = msg.Events
		m.state = StateRunning
		cmds = append(cmds, m.startRun(), waitForEvent(m.events), m.tickProgress())

	case RunDoneMsg:
		m.summary = msg.Summary
		m.processedFiles = msg.Processed
		m.totalFiles = msg.Total
		switch {
		case m.ctx.Err() != nil:
			m.state = StateError
			m.err = errCancelled
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateComplete
		}

	case TickMsg:
		if m.manager != nil && m.state == StateRunning {
			processed, total := m.manager.GetProgress()
			m.processedFiles = processed
			m.totalFiles = total

			var percent float64
			if total > 0 {
				percent = float64(processed) / float64(total)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) reset() Model {
	m.state = StateInput
	m.logs = nil
	m.summary = nil
	m.err = nil
	m.processedFiles = 0
	m.totalFiles = 0
	m.manager = nil
	m.events = nil
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.textInput.SetValue("")
	m.textInput.Focus()
	return m
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// waitForEvent returns a command delivering the next progress event, or
// nothing once the channel is closed.
func waitForEvent(events <-chan pipeline.ProgressEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return ProgressMsg{Event: event}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("covertag"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Tag \"Artist - Title.mp3\" files with cover art"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateInitializing:
		b.WriteString(m.viewInitializing())
	case StateRunning:
		b.WriteString(m.viewRunning())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter music folder:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Dry run (alt+n)\n", checkbox(m.dryRun)))
	b.WriteString(fmt.Sprintf("  %s Create playlist (alt+p)\n", checkbox(m.playlist)))
	b.WriteString(fmt.Sprintf("  %s Verbose output (alt+v)\n", checkbox(m.verbose)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Credentials: %s", m.settings.CredentialsPath)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewInitializing() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Connecting to image search..."))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewRunning() string {
	var b strings.Builder

	var percent float64
	if m.totalFiles > 0 {
		percent = float64(m.processedFiles) / float64(m.totalFiles)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf("Files: %d/%d", m.processedFiles, m.totalFiles)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	s := m.summary
	if s == nil {
		s = &pipeline.Summary{}
	}

	var box string
	if m.dryRun {
		box = fmt.Sprintf(
			"Dry run complete\n\n"+
				"Would tag: %d\n"+
				"Skipped: %d",
			s.Count(pipeline.StatusDryRun),
			s.Count(pipeline.StatusSkippedUnparsable),
		)
	} else {
		box = fmt.Sprintf(
			"Tagging complete\n\n"+
				"Tagged: %d\n"+
				"Without cover: %d\n"+
				"Skipped: %d\n"+
				"Failed: %d",
			s.Count(pipeline.StatusTagged),
			s.Count(pipeline.StatusTaggedWithoutArt),
			s.Count(pipeline.StatusSkippedUnparsable)+s.Count(pipeline.StatusSkippedNoCoverArt),
			s.Count(pipeline.StatusFailed),
		)
	}
	b.WriteString(boxStyle.Render(box))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case pipeline.LevelError:
			style = errorStyle
			prefix = "✗"
		case pipeline.LevelWarning:
			style = warningStyle
			prefix = "!"
		case pipeline.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case pipeline.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: start • alt+n: dry run • alt+p: playlist • alt+v: verbose • esc: quit"
	case StateInitializing, StateRunning:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new folder • q: quit"
	}
	return ""
}

// runSettings returns a copy of the base settings with the UI options applied.
func (m Model) runSettings() *config.Settings {
	settings := *m.settings
	settings.DryRun = m.dryRun
	settings.CreatePlaylist = m.playlist
	return &settings
}

// initializeRun creates the manager for the entered folder.
func (m Model) initializeRun() tea.Cmd {
	settings := m.runSettings()
	ctx := m.ctx
	fs := m.fs

	return func() tea.Msg {
		events := make(chan pipeline.ProgressEvent, 16)

		manager, err := pipeline.NewFromSettings(ctx, settings, fs,
			pipeline.WithLogger(slog.New(slog.DiscardHandler)),
			pipeline.WithProgress(func(event pipeline.ProgressEvent) {
				select {
				case events <- event:
				case <-ctx.Done():
				}
			}),
		)
		if err != nil {
			return InitDoneMsg{Err: err}
		}

		return InitDoneMsg{Manager: manager, Events: events}
	}
}

// startRun processes the folder in the background.
func (m Model) startRun() tea.Cmd {
	manager := m.manager
	events := m.events
	folder := strings.TrimSpace(m.textInput.Value())
	ctx := m.ctx

	return func() tea.Msg {
		defer close(events)

		summary, err := manager.Run(ctx, folder)
		processed, total := manager.GetProgress()

		return RunDoneMsg{
			Summary:   summary,
			Processed: processed,
			Total:     total,
			Err:       err,
		}
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings, fs afero.Fs) error {
	p := tea.NewProgram(NewModel(settings, fs), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
