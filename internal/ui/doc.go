// Package ui renders the few boxed and tabular views fyi has: the kinds
// table printed by "fyi kinds" and the header shown by "fyi config".
//
// Status lines themselves are not drawn here; they are byte-exact output
// produced by package msg. This package is for human-facing overviews where
// lipgloss layout (borders, padding, column alignment) is worth having.
//
// A Theme binds styles to one writer and render mode. In ansi.ModePlain the
// theme uses the ASCII color profile, so borders are still drawn but no
// escape sequences are emitted.
//
//	t := ui.NewTheme(os.Stdout, terminal.ModeFor(os.Stdout.Fd()))
//	fmt.Println(ui.RenderKindsTable(t, rows))
package ui
