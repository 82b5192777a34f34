package width

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const esc = 0x1b

// DetectLocale widens East Asian ambiguous-width runes to two columns when
// the process locale asks for it (LC_ALL, LC_CTYPE, LANG). Call it once at
// startup before any width is measured.
func DetectLocale() {
	if runewidth.IsEastAsian() {
		uniseg.EastAsianAmbiguousWidth = 2
	}
}

// escapeLen returns the byte length of the escape sequence starting at
// s[i], which must be ESC. Recognised forms are CSI (ESC [ ... final byte
// 0x40-0x7E), OSC (ESC ] ... BEL or ESC \) and two-byte ESC X. A sequence
// that is never terminated runs to the end of s.
func escapeLen(s string, i int) int {
	if i+1 >= len(s) {
		return len(s) - i
	}
	switch s[i+1] {
	case '[':
		for j := i + 2; j < len(s); j++ {
			if c := s[j]; c >= 0x40 && c <= 0x7e {
				return j - i + 1
			}
		}
		return len(s) - i
	case ']':
		for j := i + 2; j < len(s); j++ {
			if s[j] == 0x07 {
				return j - i + 1
			}
			if s[j] == esc && j+1 < len(s) && s[j+1] == '\\' {
				return j - i + 2
			}
		}
		return len(s) - i
	default:
		return 2
	}
}

// next measures the unit starting at s[i]: an escape sequence, a control
// byte, a single ASCII byte, an invalid byte or a grapheme cluster. It
// returns the unit's byte length and column width and whether it was an
// escape sequence.
func next(s string, i int) (size, cols int, escape bool) {
	c := s[i]
	switch {
	case c == esc:
		return escapeLen(s, i), 0, true
	case c < 0x20 || c == 0x7f:
		return 1, 0, false
	case c < utf8.RuneSelf:
		// A following combining mark belongs to this cluster.
		if i+1 == len(s) || s[i+1] < utf8.RuneSelf {
			return 1, 1, false
		}
	}

	r, rs := utf8.DecodeRuneInString(s[i:])
	if r == utf8.RuneError && rs <= 1 {
		return 1, 1, false
	}
	if r >= 0x80 && r < 0xa0 {
		return rs, 0, false
	}

	cluster, _, w, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
	// Clusters never swallow a following escape or control byte.
	if k := strings.IndexFunc(cluster[rs:], isBoundary); k >= 0 {
		cluster = cluster[:rs+k]
		w = uniseg.StringWidth(cluster)
	}
	return len(cluster), w, false
}

func isBoundary(r rune) bool {
	return r == esc || r < 0x20 || r == 0x7f || (r >= 0x80 && r < 0xa0) || r == utf8.RuneError
}

// Width returns the number of terminal columns s occupies. Escape sequences
// and control characters take no space, combining marks join their base,
// wide characters (CJK, emoji presentation) take two columns and every
// malformed UTF-8 byte takes one.
func Width(s string) int {
	total := 0
	for i := 0; i < len(s); {
		size, cols, _ := next(s, i)
		total += cols
		i += size
	}
	return total
}

// Fit returns the byte length of the longest prefix of s that fits in max
// columns. The prefix never ends inside a code point, grapheme cluster or
// escape sequence. Escape sequences directly at the cut are kept.
func Fit(s string, max int) int {
	if max <= 0 {
		return 0
	}
	used := 0
	for i := 0; i < len(s); {
		size, cols, _ := next(s, i)
		if used+cols > max {
			return i
		}
		used += cols
		i += size
	}
	return len(s)
}

// Truncate returns the longest prefix of s whose Width is at most max.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	return s[:Fit(s, max)]
}

// Strip removes escape sequences and control characters from s, leaving the
// printable text.
func Strip(s string) string {
	if !needsStrip(s) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		size, cols, escape := next(s, i)
		if !escape && (cols > 0 || s[i] >= 0x20 && s[i] != 0x7f && !isC1(s[i:i+size])) {
			sb.WriteString(s[i : i+size])
		}
		i += size
	}
	return sb.String()
}

// HasANSI reports whether s contains an escape byte.
func HasANSI(s string) bool {
	return strings.IndexByte(s, esc) >= 0
}

func needsStrip(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < 0x20 || c == 0x7f || c == 0xc2 {
			return true
		}
	}
	return false
}

func isC1(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r >= 0x80 && r < 0xa0
}
