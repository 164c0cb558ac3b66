package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles are derived from the active theme on every render.
type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	muted   lipgloss.Style
	key     lipgloss.Style
	good    lipgloss.Style
	bad     lipgloss.Style
	panel   lipgloss.Style
	section lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		label: lipgloss.NewStyle().Foreground(t.Muted).Width(7),
		value: lipgloss.NewStyle().Foreground(t.Text).Bold(true).Width(8).Align(lipgloss.Right),
		muted: lipgloss.NewStyle().Foreground(t.Muted),
		key:   lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		good:  lipgloss.NewStyle().Foreground(t.Success).Bold(true),
		bad:   lipgloss.NewStyle().Foreground(t.Error).Bold(true),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		section: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Text).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Muted),
	}
}

// Slider renders the angle as a position on a track of the given width.
func Slider(angle, width int) string {
	if width < 3 {
		width = 3
	}
	inner := width - 2
	pos := angle * (inner - 1) / 360
	if pos < 0 {
		pos = 0
	}
	if pos > inner-1 {
		pos = inner - 1
	}
	return "├" + strings.Repeat("─", pos) + "●" + strings.Repeat("─", inner-1-pos) + "┤"
}

// Separator draws a decorative rule.
func Separator(width int) string {
	mid := width / 2
	if mid < 3 {
		return strings.Repeat("─", width)
	}
	return strings.Repeat("─", mid-3) + " ◆ " + strings.Repeat("─", width-mid-3)
}

func (s styles) hint(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(s.key.Render(pairs[i]) + s.muted.Render(" "+pairs[i+1]))
	}
	return b.String()
}

func (s styles) score(correct, total int) string {
	if total == 0 {
		return s.muted.Render("no answers yet")
	}
	return s.muted.Render(fmt.Sprintf("score %d/%d", correct, total))
}
