package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/Zuo-Peng/roman-calc/internal/calc"
)

type countingRecorder struct {
	expressions []string
}

func (c *countingRecorder) Record(expression string, _ calc.Result, _ error) error {
	c.expressions = append(c.expressions, expression)
	return nil
}

func submit(t *testing.T, m model, line string) model {
	t.Helper()

	m.input.SetValue(line)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, cmd, "non-empty submit should not quit")
	return next.(model)
}

func lastLines(m model, n int) []transcriptLine {
	return m.lines[len(m.lines)-n:]
}

func TestSubmitAppendsResult(t *testing.T) {
	rec := &countingRecorder{}
	m := initialModel(context.Background(), rec)

	m = submit(t, m, "X + V")
	require.Equal(t, []transcriptLine{
		{kind: lineEcho, text: "In: X + V"},
		{kind: lineResult, text: "Out: XV"},
	}, lastLines(m, 2))
	require.Equal(t, "XV", m.lastResult)
	require.Empty(t, m.input.Value())

	m = submit(t, m, "2 + II")
	require.Equal(t, []transcriptLine{
		{kind: lineEcho, text: "In: 2 + II"},
		{kind: lineError, text: "numbers must be of same number system"},
	}, lastLines(m, 2))
	require.Equal(t, "XV", m.lastResult, "failed evaluation keeps the previous result")

	require.Equal(t, []string{"X + V", "2 + II"}, rec.expressions)
}

func TestEmptySubmitQuits(t *testing.T) {
	m := initialModel(context.Background(), nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.True(t, next.(model).quitting)
	require.Empty(t, next.(model).View())
}

func TestEscQuits(t *testing.T) {
	m := initialModel(context.Background(), nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.True(t, next.(model).quitting)
}

func TestRecallInputs(t *testing.T) {
	m := initialModel(context.Background(), nil)
	m = submit(t, m, "2 + 2")
	m = submit(t, m, "X * X")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(model)
	require.Equal(t, "X * X", m.input.Value())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(model)
	require.Equal(t, "2 + 2", m.input.Value())

	// already at the oldest entry
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(model)
	require.Equal(t, "2 + 2", m.input.Value())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(model)
	require.Equal(t, "X * X", m.input.Value())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(model)
	require.Empty(t, m.input.Value())
}

func TestTypingGoesToInput(t *testing.T) {
	m := initialModel(context.Background(), nil)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("IX")})
	m = next.(model)
	require.Equal(t, "IX", m.input.Value())
}

func TestCopyLastResult(t *testing.T) {
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { copyToClipboard = orig })

	m := initialModel(context.Background(), nil)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	m = next.(model)
	require.Equal(t, "nothing to copy yet", m.status)
	require.Empty(t, copied)

	m = submit(t, m, "X / III")
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	m = next.(model)
	require.Equal(t, "III", copied)
	require.Equal(t, "copied III", m.status)

	copyToClipboard = func(string) error { return errors.New("no xclip") }
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	m = next.(model)
	require.Equal(t, "clipboard unavailable: no xclip", m.status)
}

func TestViewAfterResize(t *testing.T) {
	m := initialModel(context.Background(), nil)
	require.Empty(t, m.View(), "nothing is drawn before the first size message")

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 15})
	m = next.(model)
	m = submit(t, m, "MMM + CMXCIX")

	view := m.View()
	require.Contains(t, view, "Out: MMMCMXCIX")
	require.Contains(t, view, "1 evaluated")
	require.Equal(t, 58, m.transcript.Width)
	require.Equal(t, 11, m.transcript.Height)
}

func TestRenderTranscriptTruncates(t *testing.T) {
	out := renderTranscript([]transcriptLine{{kind: lineBanner, text: strings.Repeat("X", 30)}}, 10)
	require.Contains(t, out, "XXXXXXXXX…")
	require.NotContains(t, out, strings.Repeat("X", 10))
}
