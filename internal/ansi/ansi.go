package ansi

import (
	"strconv"
	"strings"
)

// Raw control sequences. These are written verbatim; they are not styles.
const (
	Esc = "\x1b"
	CSI = "\x1b["

	Reset      = "\x1b[0m"
	ClearLine  = "\x1b[2K"
	HideCursor = "\x1b[?25l"
	ShowCursor = "\x1b[?25h"
)

// Mode selects between escape-decorated and plain output.
type Mode int

const (
	// ModeColor emits SGR sequences around styled spans.
	ModeColor Mode = iota
	// ModePlain emits span text only.
	ModePlain
)

// String returns the mode name as used in logs and config dumps.
func (m Mode) String() string {
	if m == ModePlain {
		return "plain"
	}
	return "color"
}

// Attr is a set of SGR text attributes.
type Attr uint8

const (
	Bold Attr = 1 << iota
	Dim
	Italic
	Underline
	Blink
	Reverse
	Strike
)

// attrCodes lists the SGR parameter for each attribute bit, in bit order.
var attrCodes = [...]string{"1", "2", "3", "4", "5", "7", "9"}

// Style is a foreground color (0-255) and an attribute set. The zero value
// is unstyled.
type Style struct {
	Attrs    Attr
	Color    uint8
	HasColor bool
	// Extended forces the 38;5;N form even for the first sixteen colors.
	Extended bool
}

// Fg returns a style with the given palette foreground.
func Fg(color uint8) Style {
	return Style{Color: color, HasColor: true}
}

// Fg256 is Fg with the color always written as 38;5;N.
func Fg256(color uint8) Style {
	return Style{Color: color, HasColor: true, Extended: true}
}

// With returns a copy of s with the attributes added.
func (s Style) With(a Attr) Style {
	s.Attrs |= a
	return s
}

// IsZero reports whether the style sets nothing.
func (s Style) IsZero() bool {
	return s.Attrs == 0 && !s.HasColor
}

// Open returns the SGR sequence that switches the style on. Unless the style
// is Extended, the first sixteen palette entries use the classic 30-37/90-97
// codes and everything else the 38;5;N form.
func (s Style) Open() string {
	if s.IsZero() {
		return ""
	}

	b := make([]byte, 0, 16)
	b = append(b, CSI...)
	first := true
	for i, code := range attrCodes {
		if s.Attrs&(1<<i) == 0 {
			continue
		}
		if !first {
			b = append(b, ';')
		}
		b = append(b, code...)
		first = false
	}
	if s.HasColor {
		if !first {
			b = append(b, ';')
		}
		switch {
		case s.Extended:
			b = append(b, "38;5;"...)
			b = strconv.AppendInt(b, int64(s.Color), 10)
		case s.Color < 8:
			b = strconv.AppendInt(b, int64(30+s.Color), 10)
		case s.Color < 16:
			b = strconv.AppendInt(b, int64(90+s.Color-8), 10)
		default:
			b = append(b, "38;5;"...)
			b = strconv.AppendInt(b, int64(s.Color), 10)
		}
	}
	b = append(b, 'm')
	return string(b)
}

// Close returns the sequence that ends the style.
func (s Style) Close() string {
	if s.IsZero() {
		return ""
	}
	return Reset
}

// Span pairs a style with the literal text it wraps.
type Span struct {
	Style Style
	Text  string
}

// Styled is shorthand for Span{Style: s, Text: text}.
func Styled(s Style, text string) Span {
	return Span{Style: s, Text: text}
}

// AppendTo appends the span's bytes to dst. Empty text renders nothing in
// either mode so no dangling escapes are produced.
func (sp Span) AppendTo(dst []byte, mode Mode) []byte {
	if sp.Text == "" {
		return dst
	}
	if mode == ModePlain || sp.Style.IsZero() {
		return append(dst, sp.Text...)
	}
	dst = append(dst, sp.Style.Open()...)
	dst = append(dst, sp.Text...)
	return append(dst, Reset...)
}

// Render returns the span as a string.
func (sp Span) Render(mode Mode) string {
	return string(sp.AppendTo(nil, mode))
}

// String renders in color mode.
func (sp Span) String() string {
	return sp.Render(ModeColor)
}

// Join renders spans back to back.
func Join(mode Mode, spans ...Span) string {
	var sb strings.Builder
	for _, sp := range spans {
		sb.Write(sp.AppendTo(nil, mode))
	}
	return sb.String()
}
