package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// Theme maps the view palette to terminal styles.
type Theme struct {
	styles map[core.Color]lipgloss.Style
}

// DefaultTheme draws the runner and obstacles in bold so they stand out
// against the dim lane markings.
func DefaultTheme() Theme {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Theme{styles: map[core.Color]lipgloss.Style{
		core.ColorRed:          fg("1").Bold(true),  // obstacles, crash banner
		core.ColorGreen:        fg("2"),             // intro bar
		core.ColorYellow:       fg("3"),             // coins, fading bursts
		core.ColorWhite:        fg("7"),             // track edges, boxes
		core.ColorBrightGreen:  fg("10").Bold(true), // runner, title
		core.ColorBrightYellow: fg("11").Bold(true), // bursts, best score
		core.ColorBrightWhite:  fg("15"),            // HUD score
		core.ColorGray:         fg("245"),           // dividers, shadow, hints
	}}
}

func (t Theme) style(c core.Color) lipgloss.Style {
	if st, ok := t.styles[c]; ok {
		return st
	}
	return lipgloss.NewStyle()
}

// span is a run of adjacent cells sharing one color.
type span struct {
	color core.Color
	text  string
}

// rowSpans splits row y into same-color runs, so each run costs one
// escape sequence instead of one per cell.
func rowSpans(s *core.Screen, y int) []span {
	var (
		spans []span
		sb    strings.Builder
	)
	cur := s.GetCell(0, y).Color
	for x := 0; x < s.Width(); x++ {
		cell := s.GetCell(x, y)
		if cell.Color != cur {
			spans = append(spans, span{color: cur, text: sb.String()})
			sb.Reset()
			cur = cell.Color
		}
		sb.WriteRune(cell.Rune)
	}
	if sb.Len() > 0 {
		spans = append(spans, span{color: cur, text: sb.String()})
	}
	return spans
}

// Render converts the screen buffer to styled terminal text.
func (t Theme) Render(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		var sb strings.Builder
		for _, sp := range rowSpans(s, y) {
			sb.WriteString(t.style(sp.color).Render(sp.text))
		}
		rows[y] = sb.String()
	}
	return strings.Join(rows, "\n")
}
