package ansi

import (
	"strings"
	"testing"
)

func TestStyleOpen(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		want  string
	}{
		{"zero", Style{}, ""},
		{"bold only", Style{Attrs: Bold}, "\x1b[1m"},
		{"dim underline", Style{Attrs: Dim | Underline}, "\x1b[2;4m"},
		{"basic color", Fg(4), "\x1b[34m"},
		{"bright color", Fg(9).With(Bold), "\x1b[1;91m"},
		{"palette color", Fg(199).With(Bold), "\x1b[1;38;5;199m"},
		{"palette zero", Fg(0), "\x1b[30m"},
		{"extended low color", Fg256(10).With(Bold), "\x1b[1;38;5;10m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.style.Open(); got != tt.want {
				t.Errorf("Open() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpanAlwaysCloses(t *testing.T) {
	for color := 0; color < 256; color++ {
		sp := Styled(Fg(uint8(color)).With(Bold), "x")
		got := sp.Render(ModeColor)
		if !strings.HasPrefix(got, CSI) {
			t.Fatalf("color %d: span does not start with an escape: %q", color, got)
		}
		if !strings.HasSuffix(got, Reset) {
			t.Fatalf("color %d: span does not end with a reset: %q", color, got)
		}
	}
}

func TestSpanPlainAndEmpty(t *testing.T) {
	sp := Styled(Fg(2), "ok")
	if got := sp.Render(ModePlain); got != "ok" {
		t.Errorf("plain Render() = %q, want %q", got, "ok")
	}
	if got := Styled(Fg(2), "").Render(ModeColor); got != "" {
		t.Errorf("empty span rendered %q, want nothing", got)
	}
	if got := Styled(Style{}, "raw").Render(ModeColor); got != "raw" {
		t.Errorf("unstyled span rendered %q", got)
	}
}

func TestJoin(t *testing.T) {
	got := Join(ModeColor, Styled(Fg(1), "a"), Span{Text: "-"}, Styled(Style{Attrs: Dim}, "b"))
	want := "\x1b[31ma\x1b[0m-\x1b[2mb\x1b[0m"
	if got != want {
		t.Errorf("Join() = %q, want %q", got, want)
	}
}

func TestModeString(t *testing.T) {
	if ModeColor.String() != "color" || ModePlain.String() != "plain" {
		t.Errorf("unexpected mode names: %s / %s", ModeColor, ModePlain)
	}
}
