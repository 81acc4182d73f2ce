package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Zuo-Peng/roman-calc/internal/repl"
)

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

type model struct {
	ctx        context.Context
	rec        repl.Recorder
	input      textinput.Model
	transcript viewport.Model
	lines      []transcriptLine
	inputs     []string // submitted expressions, oldest first
	recall     int      // index into inputs while browsing, len(inputs) otherwise
	lastResult string
	status     string
	width      int
	height     int
	ready      bool
	quitting   bool
}

func initialModel(ctx context.Context, rec repl.Recorder) model {
	ti := textinput.New()
	ti.Placeholder = "X + V"
	ti.Focus()
	ti.Prompt = repl.InPrompt
	ti.PromptStyle = styleInputPrompt
	ti.TextStyle = styleInput
	ti.CharLimit = 256

	m := model{
		ctx:        ctx,
		rec:        rec,
		input:      ti,
		transcript: viewport.New(80, 20),
		lines:      bannerLines(),
	}
	m.refreshTranscript()
	return m
}

// Run starts the interactive calculator and blocks until the user exits.
// rec may be nil.
func Run(ctx context.Context, rec repl.Recorder) error {
	p := tea.NewProgram(initialModel(ctx, rec), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.transcript.Width = m.panelWidth()
		m.transcript.Height = m.panelHeight()
		m.input.Width = m.panelWidth() - len(repl.InPrompt)
		m.refreshTranscript()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Submit):
			line := m.input.Value()
			if line == "" {
				m.quitting = true
				return m, tea.Quit
			}
			m.submit(line)
			return m, nil

		case key.Matches(msg, keys.Prev):
			if m.recall > 0 {
				m.recall--
				m.input.SetValue(m.inputs[m.recall])
				m.input.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Next):
			if m.recall < len(m.inputs)-1 {
				m.recall++
				m.input.SetValue(m.inputs[m.recall])
				m.input.CursorEnd()
			} else {
				m.recall = len(m.inputs)
				m.input.Reset()
			}
			return m, nil

		case key.Matches(msg, keys.Copy):
			m.copyLastResult()
			return m, nil

		case key.Matches(msg, keys.PageUp):
			m.transcript.LineUp(m.transcript.Height)
			return m, nil

		case key.Matches(msg, keys.PageDown):
			m.transcript.LineDown(m.transcript.Height)
			return m, nil
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.transcript, cmd = m.transcript.Update(msg)
		return m, cmd
	}

	return m, nil
}

// submit evaluates line and appends it with its outcome to the transcript.
func (m *model) submit(line string) {
	m.lines = append(m.lines, transcriptLine{kind: lineEcho, text: repl.InPrompt + line})

	res, err := repl.Eval(m.ctx, line, m.rec)
	if err != nil {
		m.lines = append(m.lines, transcriptLine{kind: lineError, text: err.Error()})
	} else {
		m.lines = append(m.lines, transcriptLine{kind: lineResult, text: repl.OutPrefix + res.Text})
		m.lastResult = res.Text
	}

	m.inputs = append(m.inputs, line)
	m.recall = len(m.inputs)
	m.status = ""
	m.input.Reset()
	m.refreshTranscript()
}

func (m *model) copyLastResult() {
	if m.lastResult == "" {
		m.status = "nothing to copy yet"
		return
	}
	if err := copyToClipboard(m.lastResult); err != nil {
		m.status = "clipboard unavailable: " + err.Error()
		return
	}
	m.status = "copied " + m.lastResult
}

func (m *model) refreshTranscript() {
	m.transcript.SetContent(renderTranscript(m.lines, m.transcript.Width))
	m.transcript.GotoBottom()
}

func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	panel := stylePanelBorder.
		Width(m.panelWidth()).
		Height(m.panelHeight()).
		Render(m.transcript.View())

	return lipgloss.JoinVertical(lipgloss.Left, panel, m.input.View(), m.statusBar())
}

func (m model) panelWidth() int {
	if m.width <= 0 {
		return 80
	}
	// minus border
	w := m.width - 2
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) panelHeight() int {
	if m.height <= 0 {
		return 20
	}
	// Subtract input row (1) + status bar (1) + borders (2)
	h := m.height - 4
	if h < 3 {
		h = 3
	}
	return h
}

func (m model) statusBar() string {
	parts := []string{fmt.Sprintf("%d evaluated", len(m.inputs))}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	parts = append(parts,
		"Enter evaluate",
		"up/dn recall",
		"C-y copy",
		"empty line/Esc quit",
	)
	return styleStatusBar.Render(strings.Join(parts, " | "))
}
