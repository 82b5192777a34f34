package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/muurk/fyi/internal/ansi"
)

// Color palette, expressed in the same 256-color space as message prefixes.
var (
	PrimaryColor = lipgloss.Color("199") // Task pink - headers, borders
	SuccessColor = lipgloss.Color("10")  // Success green
	WarningColor = lipgloss.Color("11")  // Warning yellow
	MutedColor   = lipgloss.Color("244") // Gray - secondary info
	TextColor    = lipgloss.Color("15")  // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 40  // Narrowest box we draw
	MaxContentWidth  = 100 // Boxes never grow past this
)

// ClampWidth bounds a terminal width to the range boxes are drawn in.
func ClampWidth(width int) int {
	return min(max(width, MinTerminalWidth), MaxContentWidth)
}

// Theme is a set of styles bound to one output and render mode.
type Theme struct {
	r *lipgloss.Renderer

	Title   lipgloss.Style
	Command lipgloss.Style
	Key     lipgloss.Style
	Value   lipgloss.Style
	Border  lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
}

// NewTheme builds styles for w. ansi.ModePlain strips all color.
func NewTheme(w io.Writer, mode ansi.Mode) *Theme {
	r := lipgloss.NewRenderer(w)
	if mode == ansi.ModePlain {
		r.SetColorProfile(termenv.Ascii)
	} else {
		r.SetColorProfile(termenv.ANSI256)
	}

	return &Theme{
		r:       r,
		Title:   r.NewStyle().Foreground(TextColor).Bold(true).PaddingLeft(1),
		Command: r.NewStyle().Foreground(MutedColor).PaddingLeft(1),
		Key:     r.NewStyle().Foreground(MutedColor).PaddingLeft(1),
		Value:   r.NewStyle().Foreground(TextColor),
		Border:  r.NewStyle().Foreground(PrimaryColor),
		Header:  r.NewStyle().Foreground(PrimaryColor).Bold(true).Padding(0, 1),
		Cell:    r.NewStyle().Padding(0, 1),
	}
}

// Renderer returns the lipgloss renderer behind the theme.
func (t *Theme) Renderer() *lipgloss.Renderer {
	return t.r
}
