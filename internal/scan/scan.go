// Package scan simulates the exposure scan: a two-state machine whose only
// asynchronous work is one cancellable completion timer.
package scan

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	DefaultDelay    = 3 * time.Second
	DefaultProgress = 47
)

type State int

const (
	Idle State = iota
	Scanning
)

func (s State) String() string {
	if s == Scanning {
		return "scanning"
	}
	return "idle"
}

// DoneMsg is delivered when the scan delay elapses.
type DoneMsg struct {
	Gen uint64
}

// CanceledMsg is delivered instead of DoneMsg when the timer's context ends
// first.
type CanceledMsg struct {
	Gen uint64
	Err error
}

// Machine tracks one simulated scan. The displayed progress is fixed and does
// not follow elapsed time.
type Machine struct {
	state    State
	gen      uint64
	delay    time.Duration
	progress int
	cancel   context.CancelFunc
}

func New(delay time.Duration, progress int) *Machine {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if progress < 0 || progress > 100 {
		progress = DefaultProgress
	}
	return &Machine{delay: delay, progress: progress}
}

func (m *Machine) State() State         { return m.state }
func (m *Machine) Scanning() bool       { return m.state == Scanning }
func (m *Machine) Gen() uint64          { return m.gen }
func (m *Machine) Delay() time.Duration { return m.delay }

// Progress is the fixed percentage shown while scanning, zero when idle.
func (m *Machine) Progress() int {
	if m.state != Scanning {
		return 0
	}
	return m.progress
}

// Start moves idle to scanning and returns the completion command. Starting
// while a scan is running is a no-op and returns false with a nil command.
func (m *Machine) Start(ctx context.Context) (bool, tea.Cmd) {
	if m.state == Scanning {
		return false, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	m.gen++
	m.state = Scanning
	timerCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	return true, Wait(timerCtx, m.delay, m.gen)
}

// Stop abandons a running scan and releases its timer.
func (m *Machine) Stop() bool {
	if m.state != Scanning {
		return false
	}
	m.release()
	m.gen++
	m.state = Idle
	return true
}

// Handle applies a timer message. Messages from an earlier generation are
// ignored. It reports whether the state changed.
func (m *Machine) Handle(msg tea.Msg) bool {
	var gen uint64
	switch msg := msg.(type) {
	case DoneMsg:
		gen = msg.Gen
	case CanceledMsg:
		gen = msg.Gen
	default:
		return false
	}
	if gen != m.gen || m.state != Scanning {
		return false
	}
	m.release()
	m.state = Idle
	return true
}

func (m *Machine) release() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// Wait blocks for delay or until ctx is done, whichever comes first.
func Wait(ctx context.Context, delay time.Duration, gen uint64) tea.Cmd {
	return func() tea.Msg {
		t := time.NewTimer(delay)
		defer t.Stop()
		select {
		case <-t.C:
			return DoneMsg{Gen: gen}
		case <-ctx.Done():
			return CanceledMsg{Gen: gen, Err: ctx.Err()}
		}
	}
}
