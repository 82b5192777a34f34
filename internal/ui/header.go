package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Param is one key/value line in a header. A non-nil Color overrides the
// value's default foreground.
type Param struct {
	Key   string
	Value string
	Color lipgloss.TerminalColor
}

// Header is a boxed banner with a title, the command that produced it and
// an ordered list of parameters.
type Header struct {
	Title   string
	Command string
	Params  []Param
	Width   int
}

// Render returns the boxed header.
func (h *Header) Render(t *Theme) string {
	width := ClampWidth(h.Width)

	top := lipgloss.JoinVertical(lipgloss.Left,
		t.Title.Render(strings.ToUpper(h.Title)),
		t.Command.Render(h.Command),
	)
	content := top

	if len(h.Params) > 0 {
		keyWidth := 0
		for _, p := range h.Params {
			keyWidth = max(keyWidth, lipgloss.Width(p.Key)+1)
		}
		lines := make([]string, 0, len(h.Params))
		for _, p := range h.Params {
			key := t.Key.Width(keyWidth + 1).Render(p.Key + ":")
			value := t.Value
			if p.Color != nil {
				value = value.Foreground(p.Color)
			}
			lines = append(lines, key+" "+value.Render(p.Value))
		}
		divider := t.Border.Render(strings.Repeat("─", max(width-4, 10)))
		content = lipgloss.JoinVertical(lipgloss.Left, top, divider, strings.Join(lines, "\n"))
	}

	return t.Renderer().NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2).
		Render(content)
}
