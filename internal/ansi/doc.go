// Package ansi is the escape-code table used by every renderer in fyi.
//
// A Style is a 256-color palette index plus SGR attributes; a Span wraps
// text in a style and always closes it again, so a span never leaks open
// formatting into whatever is printed next. Output can be switched to
// ModePlain, in which case spans emit their text only.
//
//	ansi.Styled(ansi.Fg(9).With(ansi.Bold), "Error:").Render(ansi.ModeColor)
//	// "\x1b[1;91mError:\x1b[0m"
package ansi
