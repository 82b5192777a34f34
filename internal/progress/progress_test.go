package progress

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/muurk/fyi/internal/ansi"
	"github.com/muurk/fyi/internal/msg"
)

// syncBuffer is a bytes.Buffer safe for the driver goroutine to write while
// the test polls it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

// fakeClock is a settable clock shared between the test and the driver.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func fixedWidth(cols int) Option {
	return WithWidthFunc(func() (int, error) { return cols, nil })
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func waitExited(t *testing.T, p *Progress) {
	t.Helper()
	select {
	case <-p.Exited():
	case <-time.After(3 * time.Second):
		t.Fatal("driver did not exit")
	}
}

func TestProgressCompletesWithOneFinalRedraw(t *testing.T) {
	out := &syncBuffer{}
	p, err := New(3, WithOutput(out), WithMode(ansi.ModePlain), fixedWidth(80), WithTick(time.Second))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	for _, l := range []string{"a", "b", "c"} {
		if err := p.AddTask(l); err != nil {
			t.Fatalf("AddTask() error = %v", err)
		}
	}

	_ = p.CompleteTask("a")
	_ = p.CompleteTask("b")
	snap := p.Snapshot()
	if snap.Completed != 2 || snap.Total != 3 || snap.Phase != PhaseRunning {
		t.Fatalf("before last task: %+v", snap)
	}

	_ = p.CompleteTask("c")
	if p.Phase() != PhaseDone {
		t.Fatalf("phase = %s, want done", p.Phase())
	}
	waitExited(t, p)

	if err := p.Finish(); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	if p.finals != 1 {
		t.Errorf("final redraws = %d, want 1", p.finals)
	}

	got := out.String()
	if strings.Count(got, "\n") != 1 || !strings.HasSuffix(got, "\n") {
		t.Errorf("output should end with exactly one newline: %q", got)
	}
	if !strings.Contains(got, "3/3  100.00%") {
		t.Errorf("final frame missing completed counter: %q", got)
	}
	if err := p.AddTask("late"); !errors.Is(err, ErrFinished) {
		t.Errorf("AddTask after done error = %v", err)
	}
}

// gateWriter holds its first write until release is closed and records
// every write.
type gateWriter struct {
	entered chan struct{}
	release chan struct{}
	once    sync.Once

	mu     sync.Mutex
	writes []string
}

func newGateWriter() *gateWriter {
	return &gateWriter{entered: make(chan struct{}), release: make(chan struct{})}
}

func (w *gateWriter) Write(b []byte) (int, error) {
	first := false
	w.once.Do(func() { first = true })
	if first {
		close(w.entered)
		<-w.release
	}
	w.mu.Lock()
	w.writes = append(w.writes, string(b))
	w.mu.Unlock()
	return len(b), nil
}

func (w *gateWriter) count(sub string) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	n := 0
	for _, s := range w.writes {
		if strings.Contains(s, sub) {
			n++
		}
	}
	return n
}

// A tick that is already pending when the bar completes must not draw the
// completed bar; only the final frame does.
func TestProgressDoneWithPendingTick(t *testing.T) {
	for run := 0; run < 8; run++ {
		w := newGateWriter()
		p, err := New(1, WithOutput(w), WithMode(ansi.ModePlain), fixedWidth(80), WithTick(MinTick))
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}

		select {
		case <-w.entered:
		case <-time.After(3 * time.Second):
			t.Fatal("driver never drew the running bar")
		}
		if err := p.CompleteTask("only"); err != nil {
			t.Fatalf("CompleteTask() error = %v", err)
		}
		time.Sleep(3 * MinTick)
		close(w.release)

		waitExited(t, p)
		if err := p.Finish(); err != nil {
			t.Fatalf("Finish() error = %v", err)
		}
		if n := w.count("1/1"); n != 1 {
			t.Fatalf("run %d: completed bar drawn %d times, want 1", run, n)
		}
		if p.finals != 1 {
			t.Fatalf("run %d: final redraws = %d, want 1", run, p.finals)
		}
	}
}

func TestProgressColorRestoresCursor(t *testing.T) {
	out := &syncBuffer{}
	p, err := New(2, WithOutput(out), WithMode(ansi.ModeColor), fixedWidth(80), WithTick(MinTick))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	_ = p.Increment()
	waitFor(t, "first frame", func() bool { return out.String() != "" })
	_ = p.Increment()
	waitExited(t, p)
	if err := p.Finish(); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}

	got := out.String()
	if !strings.HasPrefix(got, ansi.HideCursor+"\r"+ansi.ClearLine) {
		t.Errorf("output does not start by hiding the cursor: %q", got)
	}
	if !strings.HasSuffix(got, "\n"+ansi.ShowCursor) {
		t.Errorf("output does not end by showing the cursor: %q", got)
	}
	if n := strings.Count(got, ansi.HideCursor); n != 1 {
		t.Errorf("cursor hidden %d times", n)
	}
}

func TestProgressSkipsIdenticalFrames(t *testing.T) {
	clock := &fakeClock{now: t0}
	out := &syncBuffer{}
	p, err := New(10,
		WithOutput(out), WithMode(ansi.ModePlain), fixedWidth(80),
		WithTick(MinTick), WithClock(clock.Now),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	_ = p.Increment()
	waitFor(t, "first frame", func() bool { return out.String() != "" })
	time.Sleep(5 * MinTick)

	if err := p.Finish(); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	if p.frames != 2 || p.finals != 1 {
		t.Errorf("frames = %d, finals = %d; want 2 and 1", p.frames, p.finals)
	}
	if p.Completed() != 1 {
		t.Errorf("Finish changed completed count to %d", p.Completed())
	}
}

func TestProgressResize(t *testing.T) {
	var cols, calls atomic.Int64
	cols.Store(120)
	widthFn := func() (int, error) {
		calls.Add(1)
		return int(cols.Load()), nil
	}

	out := &syncBuffer{}
	p, err := New(4, WithOutput(out), WithMode(ansi.ModePlain), WithWidthFunc(widthFn), WithTick(MinTick))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	_ = p.Increment()
	waitFor(t, "first width query", func() bool { return calls.Load() == 1 })

	cols.Store(40)
	p.Resized()
	waitFor(t, "width query after resize", func() bool { return calls.Load() >= 2 })

	if err := p.Finish(); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	frames := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\r")
	last := strings.TrimRight(frames[len(frames)-1], " ")
	if len(last) > 39 {
		t.Errorf("final frame not resized (%d cols): %q", len(last), last)
	}
}

func TestProgressWidthFallback(t *testing.T) {
	out := &syncBuffer{}
	p, err := New(1,
		WithOutput(out), WithMode(ansi.ModePlain), WithFallbackWidth(30),
		WithWidthFunc(func() (int, error) { return 0, errors.New("not a tty") }),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := p.Finish(); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	line := strings.TrimSuffix(strings.TrimPrefix(out.String(), "\r"), "\n")
	if len(line) == 0 || len(line) > 29 {
		t.Errorf("fallback line has %d cols: %q", len(line), line)
	}
}

func TestProgressInterrupt(t *testing.T) {
	out := &syncBuffer{}
	p, err := New(5, WithOutput(out), WithMode(ansi.ModeColor), fixedWidth(80), WithTick(MinTick))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	_ = p.Increment()
	waitFor(t, "first frame", func() bool { return out.String() != "" })

	p.Interrupt()
	p.Interrupt()
	waitExited(t, p)

	if err := p.Finish(); !errors.Is(err, ErrInterrupted) {
		t.Fatalf("Finish() error = %v, want ErrInterrupted", err)
	}
	if !strings.HasSuffix(out.String(), "\n"+ansi.ShowCursor) {
		t.Errorf("interrupt did not restore the terminal: %q", out.String())
	}
	if p.finals != 0 {
		t.Errorf("interrupted bar drew %d final frames", p.finals)
	}
}

func TestProgressWriteFailure(t *testing.T) {
	p, err := New(2, WithOutput(failingWriter{}), WithMode(ansi.ModePlain), fixedWidth(80))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	_ = p.Increment()
	if err := p.Finish(); !errors.Is(err, ErrWrite) {
		t.Errorf("Finish() error = %v, want ErrWrite", err)
	}
}

func TestProgressIdleDrawsNothing(t *testing.T) {
	out := &syncBuffer{}
	p, err := New(0, WithOutput(out), WithMode(ansi.ModeColor), fixedWidth(80), WithTick(MinTick))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	time.Sleep(3 * MinTick)
	if err := p.Finish(); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	if out.String() != "" {
		t.Errorf("idle bar wrote %q", out.String())
	}
	if err := p.Finish(); err != nil {
		t.Errorf("second Finish() error = %v", err)
	}
}

func TestNewNegativeTotal(t *testing.T) {
	if _, err := New(-1); !errors.Is(err, ErrNegativeTotal) {
		t.Errorf("New(-1) error = %v", err)
	}
}

func TestSummary(t *testing.T) {
	clock := &fakeClock{now: t0}
	p, err := New(3, WithOutput(&syncBuffer{}), WithMode(ansi.ModePlain), fixedWidth(80), WithClock(clock.Now))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	clock.Advance(61 * time.Second)
	_ = p.SetDone(3)
	waitExited(t, p)
	clock.Advance(time.Hour)

	m := p.Summary(msg.KindCrunched, "file", "files")
	want := "Crunched: 3 files in 1 minute and 1 second.\n"
	if got := msg.Render(m, ansi.ModePlain).String(); got != want {
		t.Errorf("Summary = %q, want %q", got, want)
	}
}

func TestClampTick(t *testing.T) {
	tests := []struct {
		in, want time.Duration
	}{
		{0, DefaultTick},
		{time.Millisecond, MinTick},
		{200 * time.Millisecond, 200 * time.Millisecond},
		{time.Minute, MaxTick},
	}
	for _, tt := range tests {
		if got := ClampTick(tt.in); got != tt.want {
			t.Errorf("ClampTick(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
