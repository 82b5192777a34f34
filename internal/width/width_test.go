package width

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestWidth(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"cjk", "日本語", 6},
		{"combining acute", "é", 1},
		{"precomposed", "\u00e9", 1},
		{"emoji", "🚀", 2},
		{"emoji zwj family", "👨‍👩‍👧", 2},
		{"sgr wrapped", "\x1b[1;91mError:\x1b[0m", 6},
		{"osc bel", "\x1b]0;title\x07ok", 2},
		{"osc st", "\x1b]8;;http://x\x1b\\link", 4},
		{"two byte escape", "\x1b7a\x1b8", 1},
		{"unterminated csi", "ab\x1b[31", 2},
		{"controls", "a\tb\r\n", 2},
		{"c1 control", "a\u0085b", 2},
		{"invalid bytes", "a\xff\xfeb", 4},
		{"mixed", "\x1b[2m[12:00:00]\x1b[0m 日本", 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Width(tt.in); got != tt.want {
				t.Errorf("Width(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"zero max", "hello", 0, ""},
		{"negative max", "hello", -3, ""},
		{"fits exactly", "hello", 5, "hello"},
		{"larger max", "hello", 50, "hello"},
		{"ascii cut", "hello", 3, "hel"},
		{"wide boundary", "日本語", 2, "日"},
		{"wide mid cell", "日本語", 3, "日"},
		{"wide too narrow", "日本語", 1, ""},
		{"keeps cluster whole", "aéb", 2, "aé"},
		{"keeps escape before cut", "\x1b[31mabc\x1b[0m", 2, "\x1b[31mab"},
		{"trailing escape kept when everything fits", "ab\x1b[0m", 2, "ab\x1b[0m"},
		{"emoji", "a🚀b", 2, "a"},
		{"invalid bytes", "\xff\xff\xff", 2, "\xff\xff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if tt.max > 0 && Width(got) > tt.max {
				t.Errorf("Truncate(%q, %d) has width %d", tt.in, tt.max, Width(got))
			}
		})
	}
}

func TestTruncateBoundaries(t *testing.T) {
	inputs := []string{
		"plain ascii text",
		"日本語のテキスト",
		"\x1b[1;38;5;199mTask:\x1b[0m build 🚀 done",
		"café au lait",
		"a\xffb\xc3",
	}

	for _, s := range inputs {
		total := Width(s)
		for max := 0; max <= total+1; max++ {
			got := Truncate(s, max)
			if !strings.HasPrefix(s, got) {
				t.Fatalf("Truncate(%q, %d) = %q is not a prefix", s, max, got)
			}
			if w := Width(got); w > max {
				t.Fatalf("Truncate(%q, %d) width %d exceeds bound", s, max, w)
			}
			if utf8.ValidString(s) && !utf8.ValidString(got) {
				t.Fatalf("Truncate(%q, %d) split a code point: %q", s, max, got)
			}
			if again := Truncate(got, max); again != got {
				t.Fatalf("Truncate not idempotent at %d: %q then %q", max, got, again)
			}
		}
		if got := Truncate(s, total); got != s {
			t.Errorf("Truncate(%q, Width) = %q, want input unchanged", s, got)
		}
	}
}

func TestFit(t *testing.T) {
	if got := Fit("日本語", 4); got != 6 {
		t.Errorf("Fit = %d, want 6", got)
	}
	if got := Fit("abc", 0); got != 0 {
		t.Errorf("Fit with zero max = %d, want 0", got)
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"\x1b[1;91mError:\x1b[0m disk", "Error: disk"},
		{"tab\there", "tabhere"},
		{"\x1b]0;t\x07x", "x"},
		{"日本\u0085語", "日本語"},
		{"é", "é"},
	}
	for _, tt := range tests {
		if got := Strip(tt.in); got != tt.want {
			t.Errorf("Strip(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHasANSI(t *testing.T) {
	if HasANSI("plain") {
		t.Error("HasANSI(plain) = true")
	}
	if !HasANSI("\x1b[0m") {
		t.Error("HasANSI(reset) = false")
	}
}
