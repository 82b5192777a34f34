package msg

import (
	"strings"
	"time"

	"github.com/muurk/fyi/internal/ansi"
)

// DefaultIndentWidth is the number of spaces per indent level.
const DefaultIndentWidth = 4

// Stream is the output a message is written to.
type Stream int

const (
	Stdout Stream = iota
	Stderr
)

func (s Stream) String() string {
	if s == Stderr {
		return "stderr"
	}
	return "stdout"
}

// Message is a single status line. It is a value type: every With method
// returns an updated copy and leaves the receiver untouched.
type Message struct {
	kind      Kind
	body      string
	suffix    string
	indent    int
	timestamp time.Time
	newline   bool
	stream    Stream
}

// New returns a message of the given kind with a trailing newline. Error
// messages default to stderr, everything else to stdout.
func New(kind Kind, body string) Message {
	if kind == nil {
		kind = KindNone
	}
	stream := Stdout
	if kind == KindError {
		stream = Stderr
	}
	return Message{kind: kind, body: body, newline: true, stream: stream}
}

// Build assembles a message from all of its parts at once.
func Build(kind Kind, body string, indent int, timestamp bool, stream Stream) Message {
	return New(kind, body).
		WithIndent(indent).
		WithTimestamp(timestamp).
		WithStream(stream)
}

func Plain(body string) Message    { return New(KindNone, body) }
func Confirm(body string) Message  { return New(KindConfirm, body) }
func Crunched(body string) Message { return New(KindCrunched, body) }
func Debug(body string) Message    { return New(KindDebug, body) }
func Done(body string) Message     { return New(KindDone, body) }
func Error(body string) Message    { return New(KindError, body) }
func Info(body string) Message     { return New(KindInfo, body) }
func Notice(body string) Message   { return New(KindNotice, body) }
func Success(body string) Message  { return New(KindSuccess, body) }
func Task(body string) Message     { return New(KindTask, body) }
func Warning(body string) Message  { return New(KindWarning, body) }

// Custom returns a message with a caller-defined prefix.
func Custom(label string, color int, body string) (Message, error) {
	k, err := NewCustom(label, color)
	if err != nil {
		return Message{}, err
	}
	return New(k, body), nil
}

func (m Message) Kind() Kind           { return m.kind }
func (m Message) Body() string         { return m.body }
func (m Message) Suffix() string       { return m.suffix }
func (m Message) Indent() int          { return m.indent }
func (m Message) Timestamp() time.Time { return m.timestamp }
func (m Message) HasTimestamp() bool   { return !m.timestamp.IsZero() }
func (m Message) Newline() bool        { return m.newline }
func (m Message) Stream() Stream       { return m.stream }

func (m Message) WithBody(body string) Message {
	m.body = body
	return m
}

// WithKind swaps the prefix. The stream is left as it is.
func (m Message) WithKind(kind Kind) Message {
	if kind == nil {
		kind = KindNone
	}
	m.kind = kind
	return m
}

func (m Message) WithSuffix(suffix string) Message {
	m.suffix = suffix
	return m
}

// WithIndent sets the indent level. Negative levels are treated as zero.
func (m Message) WithIndent(level int) Message {
	m.indent = max(level, 0)
	return m
}

// WithTimestamp captures the current wall clock when on is true and clears
// the timestamp otherwise.
func (m Message) WithTimestamp(on bool) Message {
	if on {
		return m.WithTime(time.Now())
	}
	m.timestamp = time.Time{}
	return m
}

// WithTime sets an explicit timestamp.
func (m Message) WithTime(t time.Time) Message {
	m.timestamp = t
	return m
}

func (m Message) WithNewline(on bool) Message {
	m.newline = on
	return m
}

func (m Message) WithStream(s Stream) Message {
	m.stream = s
	return m
}

// Bytes renders the message with the default indent width.
func (m Message) Bytes(mode ansi.Mode) []byte {
	return Render(m, mode).Bytes()
}

// String renders the message in color mode.
func (m Message) String() string {
	return Render(m, ansi.ModeColor).String()
}

// Options control rendering. The zero value renders in color with four
// spaces per indent level.
type Options struct {
	Mode        ansi.Mode
	IndentWidth int
}

// Render lays the message out into a Buffer.
func Render(m Message, mode ansi.Mode) *Buffer {
	return Options{Mode: mode}.Render(m)
}

var timestampStyle = ansi.Style{Attrs: ansi.Dim}

// Render lays the message out into a Buffer. The region order is indent,
// timestamp, prefix (open, label, close), separator, body, suffix, newline.
func (o Options) Render(m Message) *Buffer {
	iw := o.IndentWidth
	if iw <= 0 {
		iw = DefaultIndentWidth
	}

	var parts [regionCount]string
	if m.indent > 0 {
		parts[RegionIndent] = strings.Repeat(" ", m.indent*iw)
	}
	if !m.timestamp.IsZero() {
		stamp := ansi.Styled(timestampStyle, "["+m.timestamp.Format(time.TimeOnly)+"]")
		parts[RegionTimestamp] = stamp.Render(o.Mode) + " "
	}

	if label, style := prefixOf(m.kind); label != "" {
		if o.Mode == ansi.ModeColor {
			parts[RegionPrefixOpen] = style.Open()
			parts[RegionPrefixClose] = ":" + ansi.Reset
		} else {
			parts[RegionPrefixClose] = ":"
		}
		parts[RegionPrefix] = label
		parts[RegionSeparator] = " "
	}

	parts[RegionBody] = m.body
	parts[RegionSuffix] = m.suffix
	if m.newline {
		parts[RegionNewline] = "\n"
	}
	return newBuffer(&parts)
}
