package main

import (
	"fmt"
	"io"
	"os"

	"github.com/muurk/fyi/internal/ansi"
	"github.com/muurk/fyi/internal/config"
	"github.com/muurk/fyi/internal/logging"
	"github.com/muurk/fyi/internal/msg"
	"github.com/muurk/fyi/internal/terminal"
	"github.com/muurk/fyi/internal/width"
)

// exitError carries a process exit code out of a command without printing
// anything further.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// env is everything a command needs from the outside world. main uses the
// process streams; tests substitute buffers.
type env struct {
	stdout io.Writer
	stderr io.Writer
	stdin  io.Reader

	stdoutMode ansi.Mode
	stderrMode ansi.Mode
	detect     bool // resolve modes from the real terminal in setup

	outWidth func() (int, error)
	errWidth func() (int, error)

	cfg      *config.Config
	cfgPath  string
	cfgFound bool

	logLevel string
}

func systemEnv() *env {
	return &env{
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		stdin:    os.Stdin,
		detect:   true,
		outWidth: func() (int, error) { return terminal.Width(os.Stdout.Fd()) },
		errWidth: func() (int, error) { return terminal.Width(os.Stderr.Fd()) },
	}
}

// setup runs before every command: logging, locale, configuration and
// color decisions, in that order.
func (e *env) setup() error {
	if err := logging.Initialize(e.logLevel); err != nil {
		return err
	}
	width.DetectLocale()

	if e.cfg == nil {
		cfg, path, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config %s: %w", path, err)
		}
		_, statErr := os.Stat(path)
		e.cfg, e.cfgPath, e.cfgFound = cfg, path, statErr == nil
		logging.LogConfig(path, e.cfgFound)
	}

	if e.detect {
		e.stdoutMode = resolveMode("stdout", os.Stdout.Fd())
		e.stderrMode = resolveMode("stderr", os.Stderr.Fd())
	}
	return nil
}

func resolveMode(stream string, fd uintptr) ansi.Mode {
	tty := terminal.IsTerminal(fd)
	mode := terminal.ModeFor(fd)

	reason := "not a terminal"
	if tty {
		reason = "terminal"
	}
	if (mode == ansi.ModeColor) != tty {
		reason = "environment"
	}
	logging.LogRenderMode(stream, mode.String(), reason)
	return mode
}

// printer returns a Printer bound to e. noColor forces plain output on
// both streams.
func (e *env) printer(noColor bool) *msg.Printer {
	p := msg.NewPrinter(e.stdout, e.stderr)
	p.Stdin = e.stdin
	p.StdoutMode, p.StderrMode = e.stdoutMode, e.stderrMode
	if noColor {
		p.StdoutMode, p.StderrMode = ansi.ModePlain, ansi.ModePlain
	}
	p.IndentWidth = e.cfg.Messages.IndentWidth
	return p
}

// columns returns the stdout width, or the configured fallback.
func (e *env) columns() int {
	if e.outWidth != nil {
		if w, err := e.outWidth(); err == nil {
			return w
		}
	}
	return e.cfg.Progress.FallbackWidth
}
