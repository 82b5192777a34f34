package terminal

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/muurk/fyi/internal/ansi"
)

// DefaultWidth is used when the terminal size cannot be determined.
const DefaultWidth = 80

// ErrUnavailable is returned when fd is not a terminal or its size cannot
// be read.
var ErrUnavailable = errors.New("terminal size unavailable")

// Width returns the column count of the terminal behind fd.
func Width(fd uintptr) (int, error) {
	w, _, err := term.GetSize(int(fd))
	if err != nil || w <= 0 {
		return 0, ErrUnavailable
	}
	return w, nil
}

// WidthOr returns the terminal width, or fallback when it is unavailable.
// A non-positive fallback means DefaultWidth.
func WidthOr(fd uintptr, fallback int) int {
	if w, err := Width(fd); err == nil {
		return w
	}
	if fallback <= 0 {
		return DefaultWidth
	}
	return fallback
}

// IsTerminal reports whether fd is a terminal, including Cygwin and MSYS
// pseudo terminals on Windows.
func IsTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd)) || isatty.IsCygwinTerminal(fd)
}

// ColorEnabled decides whether output to fd should carry escape sequences.
// NO_COLOR and CLICOLOR=0 turn color off, CLICOLOR_FORCE turns it on even
// when fd is not a terminal.
func ColorEnabled(fd uintptr) bool {
	if termenv.EnvNoColor() {
		return false
	}
	if v := os.Getenv("CLICOLOR_FORCE"); v != "" && v != "0" {
		return true
	}
	return IsTerminal(fd)
}

// ModeFor returns the render mode for output to fd.
func ModeFor(fd uintptr) ansi.Mode {
	if ColorEnabled(fd) {
		return ansi.ModeColor
	}
	return ansi.ModePlain
}
