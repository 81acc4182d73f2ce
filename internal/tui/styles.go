package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorPrimary   = lipgloss.Color("12")  // bright blue
	colorSecondary = lipgloss.Color("10")  // bright green
	colorError     = lipgloss.Color("9")   // bright red
	colorDim       = lipgloss.Color("240") // gray
	colorBorder    = lipgloss.Color("238") // dark gray

	// Input area
	styleInput = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	// Transcript lines
	styleEcho = lipgloss.NewStyle().
			Foreground(colorDim)

	styleResult = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleBanner = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	// Panels
	stylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorBorder)

	// Status bar
	styleStatusBar = lipgloss.NewStyle().
			Foreground(colorDim).
			Padding(0, 1)
)
