// Package tui implements the interactive listen view. Speech arrives as
// typed text fed through a ManualEngine, so the full capture state machine
// runs exactly as it would against a live recognizer.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"voxpense/internal/capture"
	"voxpense/internal/cli"
	"voxpense/internal/extract"
	"voxpense/internal/model"
)

// ExpenseSaver persists a parsed expense. Satisfied by storage.SQLiteStorage.
type ExpenseSaver interface {
	SaveExpense(ctx context.Context, expense *model.Expense) error
}

// Config wires the listen view's collaborators.
type Config struct {
	Controller      *capture.Controller
	Engine          *capture.ManualEngine
	Pipeline        *extract.Pipeline
	Saver           ExpenseSaver
	Locale          string
	DefaultCurrency string
}

type captureStateMsg capture.State

type finalTranscriptMsg string

type captureErrMsg struct{ err error }

type savedMsg struct{ err error }

// Model is the bubbletea model for the listen view.
type Model struct {
	cfg      Config
	finalCh  chan string
	errCh    chan error
	spinner  spinner.Model
	input    textinput.Model
	state    capture.State
	expense  *model.Expense
	parseErr error
	saveErr  error
	saved    bool
	quitting bool
}

// New creates the listen view model.
func New(cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = cli.SuccessStyle

	ti := textinput.New()
	ti.Placeholder = "speak here (type what you would say)"
	ti.CharLimit = 500
	ti.Width = 60

	return Model{
		cfg:     cfg,
		finalCh: make(chan string, 1),
		errCh:   make(chan error, 1),
		spinner: sp,
		input:   ti,
		state:   cfg.Controller.Snapshot(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForState())
}

func (m Model) waitForState() tea.Cmd {
	return func() tea.Msg {
		state, ok := <-m.cfg.Controller.States()
		if !ok {
			return nil
		}
		return captureStateMsg(state)
	}
}

func (m Model) waitForFinal() tea.Cmd {
	return func() tea.Msg {
		select {
		case transcript := <-m.finalCh:
			return finalTranscriptMsg(transcript)
		case err := <-m.errCh:
			return captureErrMsg{err: err}
		}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case captureStateMsg:
		m.state = capture.State(msg)
		return m, m.waitForState()

	case finalTranscriptMsg:
		m.input.Blur()
		m.input.SetValue("")
		expense, err := m.cfg.Pipeline.Parse(string(msg), m.cfg.Locale, m.cfg.DefaultCurrency)
		m.expense = expense
		m.parseErr = err
		m.saved = false
		m.saveErr = nil
		return m, nil

	case captureErrMsg:
		m.input.Blur()
		m.input.SetValue("")
		m.parseErr = msg.err
		m.expense = nil
		return m, nil

	case savedMsg:
		m.saveErr = msg.err
		m.saved = msg.err == nil
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.state.Phase == capture.PhaseRecording {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Keys that work regardless of phase.
	switch msg.String() {
	case "ctrl+c":
		m.cfg.Controller.CancelForBackground()
		m.quitting = true
		return m, tea.Quit
	}

	switch m.state.Phase {
	case capture.PhaseRecording:
		switch msg.String() {
		case "enter":
			if text := strings.TrimSpace(m.input.Value()); text != "" {
				m.cfg.Engine.EmitPartial(text)
			}
			return m, nil
		case "esc":
			m.cfg.Controller.CancelForBackground()
			m.input.Blur()
			m.input.SetValue("")
			return m, nil
		case "ctrl+d":
			m.cfg.Controller.Stop()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case capture.PhaseError:
		switch msg.String() {
		case "enter", "esc":
			m.cfg.Controller.Acknowledge()
			return m, nil
		case "q":
			m.quitting = true
			return m, tea.Quit
		}

	case capture.PhaseIdle:
		switch msg.String() {
		case "q":
			m.quitting = true
			return m, tea.Quit
		case "r":
			return m.startRecording()
		case "s":
			if m.expense != nil && m.cfg.Saver != nil && !m.saved {
				return m, m.saveExpense()
			}
		}
	}
	return m, nil
}

func (m Model) startRecording() (tea.Model, tea.Cmd) {
	m.expense = nil
	m.parseErr = nil
	m.saved = false
	m.saveErr = nil

	err := m.cfg.Controller.Start(
		func(transcript string) { m.finalCh <- transcript },
		func(err error) { m.errCh <- err },
	)
	if err != nil {
		m.parseErr = err
		return m, nil
	}
	m.input.SetValue("")
	m.input.Focus()
	return m, m.waitForFinal()
}

func (m Model) saveExpense() tea.Cmd {
	expense := m.expense
	saver := m.cfg.Saver
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return savedMsg{err: saver.SaveExpense(ctx, expense)}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(cli.TitleStyle.Render("voxpense listen"))
	b.WriteString("\n")

	switch m.state.Phase {
	case capture.PhaseRecording:
		b.WriteString(fmt.Sprintf("%s Recording", m.spinner.View()))
		if m.state.HasDetectedSpeech {
			b.WriteString(cli.SubtleStyle.Render(" (speech detected)"))
		}
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.state.Transcript != "" {
			b.WriteString(cli.SubtleStyle.Render("heard: "+m.state.Transcript) + "\n")
		}
		b.WriteString(cli.SubtleStyle.Render("\nenter: send phrase · ctrl+d: stop · esc: cancel"))

	case capture.PhaseFinishing:
		b.WriteString(fmt.Sprintf("%s Finishing...\n", m.spinner.View()))

	case capture.PhaseError:
		b.WriteString(cli.ErrorStyle.Render("✗ "+m.state.Message) + "\n")
		b.WriteString(cli.SubtleStyle.Render("\nenter: dismiss · q: quit"))

	case capture.PhaseIdle:
		if m.parseErr != nil {
			b.WriteString(cli.ErrorStyle.Render("✗ "+m.parseErr.Error()) + "\n")
		}
		if m.expense != nil {
			b.WriteString(cli.RenderExpense(m.expense))
			b.WriteString("\n")
			switch {
			case m.saveErr != nil:
				b.WriteString(cli.ErrorStyle.Render("save failed: "+m.saveErr.Error()) + "\n")
			case m.saved:
				b.WriteString(cli.SuccessStyle.Render("✓ saved") + "\n")
			}
		}
		help := "r: record · q: quit"
		if m.expense != nil && m.cfg.Saver != nil && !m.saved {
			help = "s: save · " + help
		}
		b.WriteString(cli.SubtleStyle.Render("\n" + help))
	}

	b.WriteString("\n")
	return b.String()
}
