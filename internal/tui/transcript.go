package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/Zuo-Peng/roman-calc/internal/repl"
)

type lineKind int

const (
	lineBanner lineKind = iota
	lineEcho
	lineResult
	lineError
)

type transcriptLine struct {
	kind lineKind
	text string
}

func bannerLines() []transcriptLine {
	var lines []transcriptLine
	for _, l := range strings.Split(repl.Banner, "\n") {
		lines = append(lines, transcriptLine{kind: lineBanner, text: l})
	}
	return lines
}

// renderTranscript renders the scrollback, cutting each line to width cells.
func renderTranscript(lines []transcriptLine, width int) string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		text := l.text
		if width > 0 && runewidth.StringWidth(text) > width {
			text = runewidth.Truncate(text, width, "…")
		}

		switch l.kind {
		case lineEcho:
			text = styleEcho.Render(text)
		case lineResult:
			text = styleResult.Render(text)
		case lineError:
			text = styleError.Render(text)
		default:
			text = styleBanner.Render(text)
		}
		out = append(out, text)
	}
	return strings.Join(out, "\n")
}
