package progress

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/muurk/fyi/internal/ansi"
	"github.com/muurk/fyi/internal/msg"
	"github.com/muurk/fyi/internal/terminal"
	"github.com/muurk/fyi/internal/width"
)

const (
	// DefaultTick is the redraw interval.
	DefaultTick = 100 * time.Millisecond
	MinTick     = 60 * time.Millisecond
	MaxTick     = time.Second

	// DefaultMaxLabels is how many in-flight labels are listed by name.
	DefaultMaxLabels = 3
)

// ClampTick bounds d to [MinTick, MaxTick]; zero means DefaultTick.
func ClampTick(d time.Duration) time.Duration {
	if d == 0 {
		return DefaultTick
	}
	return min(max(d, MinTick), MaxTick)
}

// Option configures a Progress.
type Option func(*Progress)

// WithOutput sets the stream the bar is drawn on. The default is os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(p *Progress) { p.out = w }
}

// WithMode sets color or plain drawing.
func WithMode(m ansi.Mode) Option {
	return func(p *Progress) { p.mode = m; p.modeSet = true }
}

// WithTick sets the redraw interval, clamped by ClampTick.
func WithTick(d time.Duration) Option {
	return func(p *Progress) { p.tick = ClampTick(d) }
}

// WithWidthFunc replaces terminal size detection.
func WithWidthFunc(fn func() (int, error)) Option {
	return func(p *Progress) { p.widthFn = fn }
}

// WithFallbackWidth sets the width used when detection fails.
func WithFallbackWidth(cols int) Option {
	return func(p *Progress) {
		if cols > 0 {
			p.fallback = cols
		}
	}
}

// WithMaxLabels sets how many in-flight labels are listed by name.
func WithMaxLabels(n int) Option {
	return func(p *Progress) { p.maxLabels = max(n, 0) }
}

// WithLogger sets a debug logger for width fallbacks and write failures.
func WithLogger(l *zap.Logger) Option {
	return func(p *Progress) {
		if l != nil {
			p.log = l
		}
	}
}

// WithClock replaces time.Now, for elapsed and ETA computation.
func WithClock(fn func() time.Time) Option {
	return func(p *Progress) { p.clock = fn }
}

// Progress is a progress bar handle. Workers call AddTask, CompleteTask and
// friends from any goroutine; a single driver goroutine owns the output and
// redraws on a ticker until the bar is done or Finish is called.
type Progress struct {
	*State

	out       io.Writer
	mode      ansi.Mode
	modeSet   bool
	tick      time.Duration
	widthFn   func() (int, error)
	fallback  int
	maxLabels int
	log       *zap.Logger
	clock     func() time.Time

	resized     chan struct{}
	interrupted chan struct{}
	stop        chan struct{}
	stopOnce    sync.Once
	exited      chan struct{}

	// Owned by the driver goroutine; read by others only after exited.
	err       error
	last      []byte
	lastWidth int
	frames    int
	finals    int
	hidden    bool
}

// New starts a progress bar for total steps. A zero total starts Idle and
// draws nothing until AddTotal gives it work.
func New(total int, opts ...Option) (*Progress, error) {
	p := &Progress{
		out:         os.Stderr,
		tick:        DefaultTick,
		fallback:    terminal.DefaultWidth,
		maxLabels:   DefaultMaxLabels,
		log:         zap.NewNop(),
		clock:       time.Now,
		resized:     make(chan struct{}, 1),
		interrupted: make(chan struct{}, 1),
		stop:        make(chan struct{}),
		exited:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	if !p.modeSet {
		p.mode = terminal.ModeFor(os.Stderr.Fd())
	}
	if p.widthFn == nil {
		p.widthFn = func() (int, error) { return terminal.Width(os.Stderr.Fd()) }
	}

	st, err := NewState(total, p.clock)
	if err != nil {
		return nil, err
	}
	p.State = st

	go p.run()
	return p, nil
}

// Resized tells the driver the terminal size changed. Repeated calls
// before the driver reacts collapse into one.
func (p *Progress) Resized() {
	select {
	case p.resized <- struct{}{}:
	default:
	}
}

// Interrupt stops drawing immediately: the driver restores the cursor,
// ends the line and exits. Finish then reports ErrInterrupted.
func (p *Progress) Interrupt() {
	select {
	case p.interrupted <- struct{}{}:
	default:
	}
}

// Finish stops the driver after one final redraw and waits for it. It does
// not mark remaining steps as complete. The first write error, or
// ErrInterrupted, is returned.
func (p *Progress) Finish() error {
	p.stopOnce.Do(func() { close(p.stop) })
	<-p.exited
	return p.err
}

// Exited is closed once the driver goroutine has returned.
func (p *Progress) Exited() <-chan struct{} {
	return p.exited
}

// Summary returns a message such as "1,234 files in 2 minutes and 5
// seconds." for the work completed so far.
func (p *Progress) Summary(kind msg.Kind, singular, plural string) msg.Message {
	snap := p.Snapshot()
	noun := plural
	if snap.Completed == 1 {
		noun = singular
	}
	body := fmt.Sprintf("%s %s in %s.",
		humanize.Comma(int64(snap.Completed)), noun, NiceElapsed(snap.Elapsed(p.clock())))
	return msg.New(kind, body)
}

func (p *Progress) run() {
	defer close(p.exited)

	ticker := time.NewTicker(p.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := p.redraw(); err != nil {
				p.fail(err)
				return
			}
		case <-p.resized:
			p.invalidateWidth()
		case <-p.interrupted:
			p.abort()
			return
		case <-p.stop:
			p.finish()
			return
		case <-p.Finished():
			p.finish()
			return
		}
	}
}

// columns returns the cached width, querying the terminal when the cache
// was invalidated.
func (p *Progress) columns(snap Snapshot) int {
	if snap.Width > 0 {
		return snap.Width
	}
	cols, err := p.widthFn()
	if err != nil {
		p.log.Debug("Terminal width unavailable, using fallback",
			zap.Int("fallback", p.fallback),
			zap.Error(err),
		)
		cols = p.fallback
	}
	p.setWidth(cols)
	return cols
}

func (p *Progress) frame(line string) []byte {
	var b bytes.Buffer
	if p.mode == ansi.ModeColor {
		if !p.hidden {
			b.WriteString(ansi.HideCursor)
			p.hidden = true
		}
		b.WriteString("\r")
		b.WriteString(ansi.ClearLine)
		b.WriteString(line)
		return b.Bytes()
	}

	b.WriteString("\r")
	b.WriteString(line)
	w := width.Width(line)
	if pad := p.lastWidth - w; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	p.lastWidth = w
	return b.Bytes()
}

// redraw emits the current line unless it is identical to the last one.
// Idle and Done bars are left alone: the completed bar is drawn only by
// finish. The snapshot is taken once; all I/O happens outside the state
// lock.
func (p *Progress) redraw() error {
	snap := p.Snapshot()
	if snap.Phase != PhaseRunning {
		return nil
	}
	line := renderLine(snap, p.clock(), p.columns(snap), p.mode, p.maxLabels)
	if p.last != nil && line == string(p.last) {
		return nil
	}
	p.last = []byte(line)
	if err := p.write(p.frame(line)); err != nil {
		return err
	}
	p.frames++
	return nil
}

// finish writes the final frame, ends the line and restores the cursor.
// A bar that never left Idle writes nothing.
func (p *Progress) finish() {
	snap := p.Snapshot()
	if snap.Phase == PhaseIdle && p.frames == 0 {
		return
	}

	line := renderLine(snap, p.clock(), p.columns(snap), p.mode, p.maxLabels)
	b := p.frame(line)
	b = append(b, '\n')
	if p.hidden {
		b = append(b, ansi.ShowCursor...)
		p.hidden = false
	}
	if err := p.write(b); err != nil {
		p.fail(err)
		return
	}
	p.frames++
	p.finals++
}

func (p *Progress) abort() {
	p.err = ErrInterrupted
	if p.frames == 0 && !p.hidden {
		return
	}
	b := []byte("\n")
	if p.hidden {
		b = append(b, ansi.ShowCursor...)
		p.hidden = false
	}
	_ = p.write(b)
}

func (p *Progress) write(b []byte) error {
	if _, err := p.out.Write(b); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

func (p *Progress) fail(err error) {
	p.log.Debug("Progress output failed", zap.Error(err))
	if p.err == nil {
		p.err = err
	}
	if p.hidden {
		_, _ = p.out.Write([]byte(ansi.ShowCursor))
		p.hidden = false
	}
}
