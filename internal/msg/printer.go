package msg

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/muurk/fyi/internal/ansi"
)

// Prompt suffixes. The color form underlines the default answer.
const (
	promptSuffixColor = " \x1b[2m[y/\x1b[4mN\x1b[0;2m]\x1b[0m "
	promptSuffixPlain = " [y/N] "
)

// invalidAnswer is printed to stderr before a prompt is asked again.
var invalidAnswer = Error("Invalid input: enter N or Y.")

// Printer writes messages to a pair of output streams and reads prompt
// answers from an input stream. Each stream has its own render mode so
// that, for example, stdout can be piped as plain text while stderr stays
// colored.
type Printer struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader

	StdoutMode  ansi.Mode
	StderrMode  ansi.Mode
	IndentWidth int

	in *bufio.Reader
}

// NewPrinter creates a Printer in color mode. Nil writers default to
// os.Stdout and os.Stderr; input is read from os.Stdin.
func NewPrinter(stdout, stderr io.Writer) *Printer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Printer{
		Stdout:      stdout,
		Stderr:      stderr,
		Stdin:       os.Stdin,
		IndentWidth: DefaultIndentWidth,
	}
}

func (p *Printer) target(s Stream) (io.Writer, ansi.Mode) {
	if s == Stderr {
		return p.Stderr, p.StderrMode
	}
	return p.Stdout, p.StdoutMode
}

// Render lays out m with the mode of the stream it will be written to.
func (p *Printer) Render(m Message) *Buffer {
	_, mode := p.target(m.stream)
	return Options{Mode: mode, IndentWidth: p.IndentWidth}.Render(m)
}

// Print writes m to its stream in a single Write call.
func (p *Printer) Print(m Message) error {
	w, _ := p.target(m.stream)
	if _, err := w.Write(p.Render(m).Bytes()); err != nil {
		return NewWriteError(m.stream, err)
	}
	return nil
}

// Blank writes n empty lines to s.
func (p *Printer) Blank(s Stream, n int) error {
	if n <= 0 {
		return nil
	}
	w, _ := p.target(s)
	if _, err := io.WriteString(w, strings.Repeat("\n", n)); err != nil {
		return NewWriteError(s, err)
	}
	return nil
}

// Prompt prints m as a question followed by a [y/N] hint and reads the
// answer. An empty answer, "n" or "no" is false; "y" or "yes" is true.
// Anything else prints an error and asks again. End of input counts as no.
func (p *Printer) Prompt(m Message) (bool, error) {
	_, mode := p.target(m.stream)
	suffix := promptSuffixColor
	if mode == ansi.ModePlain {
		suffix = promptSuffixPlain
	}
	q := m.WithSuffix(m.suffix + suffix).WithNewline(false)

	if p.in == nil {
		in := p.Stdin
		if in == nil {
			in = os.Stdin
		}
		p.in = bufio.NewReader(in)
	}

	for {
		if err := p.Print(q); err != nil {
			return false, err
		}

		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, NewReadError(err)
		}
		eof := err != nil

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			if eof {
				// Finish the prompt line so the shell prompt starts clean.
				return false, p.Blank(m.stream, 1)
			}
			return false, nil
		}

		if eof {
			return false, p.Blank(m.stream, 1)
		}
		if err := p.Print(invalidAnswer); err != nil {
			return false, err
		}
	}
}
