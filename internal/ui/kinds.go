package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// KindRow describes one message kind for the kinds table.
type KindRow struct {
	Name   string // Subcommand name, e.g. "warning"
	Color  string // Palette index
	Sample string // Rendered example line, already styled for the output
}

// RenderKindsTable lays the kinds out in a bordered table.
func RenderKindsTable(t *Theme, rows []KindRow) string {
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(t.Border).
		Headers("KIND", "COLOR", "SAMPLE").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.Header
			}
			if col == 1 {
				return t.Cell.Foreground(MutedColor)
			}
			return t.Cell
		})

	for _, r := range rows {
		tbl.Row(r.Name, r.Color, r.Sample)
	}
	return tbl.Render()
}
