package progress

import (
	"errors"
	"slices"
	"sync"
	"time"
)

var (
	// ErrFinished is returned by mutations after the bar reached Done.
	ErrFinished = errors.New("progress already finished")
	// ErrNegativeTotal is returned when a total would drop below zero.
	ErrNegativeTotal = errors.New("progress total cannot be negative")
	// ErrZeroTotal is returned when a running bar would shrink to nothing.
	ErrZeroTotal = errors.New("progress total cannot shrink to zero once running")
	// ErrInterrupted is reported by Finish when the bar was interrupted.
	ErrInterrupted = errors.New("progress interrupted")
	// ErrWrite wraps a failed write to the output stream.
	ErrWrite = errors.New("progress write failed")
)

// Phase is the lifecycle stage of a progress bar.
type Phase int

const (
	// PhaseIdle: total is zero and nothing is drawn.
	PhaseIdle Phase = iota
	// PhaseRunning: 0 <= completed < total.
	PhaseRunning
	// PhaseDone: completed == total. Terminal.
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Snapshot is a consistent copy of the state taken under one lock.
type Snapshot struct {
	Total     int
	Completed int
	Labels    []string
	Started   time.Time
	Ended     time.Time
	Phase     Phase
	Width     int
}

// Elapsed returns the running time at now, or the total time once done.
func (s Snapshot) Elapsed(now time.Time) time.Duration {
	end := now
	if !s.Ended.IsZero() {
		end = s.Ended
	}
	if d := end.Sub(s.Started); d > 0 {
		return d
	}
	return 0
}

// State is the mutex-guarded bookkeeping behind a progress bar. Workers
// mutate it; the driver only ever reads it through Snapshot. Invariant:
// completed <= total at every observable point.
type State struct {
	mu        sync.Mutex
	total     int
	completed int
	labels    []string
	started   time.Time
	ended     time.Time
	width     int
	phase     Phase

	clock    func() time.Time
	finished chan struct{}
}

// NewState creates the state for total steps. A total of zero starts Idle.
func NewState(total int, clock func() time.Time) (*State, error) {
	if total < 0 {
		return nil, ErrNegativeTotal
	}
	if clock == nil {
		clock = time.Now
	}
	s := &State{
		total:    total,
		started:  clock(),
		clock:    clock,
		finished: make(chan struct{}),
	}
	s.settle()
	return s, nil
}

// settle recomputes the phase. Callers hold mu.
func (s *State) settle() {
	switch {
	case s.phase == PhaseDone:
	case s.total == 0:
		s.completed = 0
		s.phase = PhaseIdle
	case s.completed >= s.total:
		s.completed = s.total
		s.phase = PhaseDone
		s.ended = s.clock()
		s.labels = nil
		close(s.finished)
	default:
		s.phase = PhaseRunning
	}
}

// AddTask registers an in-flight label.
func (s *State) AddTask(label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseDone {
		return ErrFinished
	}
	s.labels = append(s.labels, label)
	return nil
}

// CompleteTask removes the first in-flight label equal to label, if any,
// and counts one completed step.
func (s *State) CompleteTask(label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseDone {
		return ErrFinished
	}
	if i := slices.Index(s.labels, label); i >= 0 {
		s.labels = slices.Delete(s.labels, i, i+1)
	}
	s.completed = min(s.completed+1, s.total)
	s.settle()
	return nil
}

// RemoveTask drops a label without counting a step.
func (s *State) RemoveTask(label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseDone {
		return ErrFinished
	}
	if i := slices.Index(s.labels, label); i >= 0 {
		s.labels = slices.Delete(s.labels, i, i+1)
	}
	return nil
}

// Increment counts one completed step.
func (s *State) Increment() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseDone {
		return ErrFinished
	}
	s.completed = min(s.completed+1, s.total)
	s.settle()
	return nil
}

// SetDone sets the completed count, clamped to [0, total].
func (s *State) SetDone(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseDone {
		return ErrFinished
	}
	s.completed = min(max(n, 0), s.total)
	s.settle()
	return nil
}

// AddTotal grows (or with a negative n shrinks) the total. Shrinking below
// the completed count finishes the bar; a running bar never returns to Idle.
func (s *State) AddTotal(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseDone {
		return ErrFinished
	}
	total := s.total + n
	if total < 0 {
		return ErrNegativeTotal
	}
	if total == 0 && s.phase == PhaseRunning {
		return ErrZeroTotal
	}
	s.total = total
	s.completed = min(s.completed, total)
	s.settle()
	return nil
}

// Snapshot copies the state under a single lock acquisition.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Total:     s.total,
		Completed: s.completed,
		Labels:    slices.Clone(s.labels),
		Started:   s.started,
		Ended:     s.ended,
		Phase:     s.phase,
		Width:     s.width,
	}
}

// Phase returns the current phase.
func (s *State) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Completed returns the completed count.
func (s *State) Completed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}

// Total returns the total step count.
func (s *State) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Finished is closed when the state enters PhaseDone.
func (s *State) Finished() <-chan struct{} {
	return s.finished
}

func (s *State) setWidth(w int) {
	s.mu.Lock()
	s.width = w
	s.mu.Unlock()
}

func (s *State) invalidateWidth() {
	s.setWidth(0)
}
