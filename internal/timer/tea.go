package timer

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is delivered to the Bubble Tea program once per interval.
type TickMsg struct {
	Generation uint64
}

// TeaScheduler runs a Countdown on a Bubble Tea program. Ticks arrive as
// TickMsg on the Update goroutine, so callbacks run on the same loop as key
// handling.
type TeaScheduler struct {
	Countdown
	interval time.Duration
	pending  []tea.Cmd
}

// NewTeaScheduler returns a scheduler ticking every interval.
func NewTeaScheduler(interval time.Duration) *TeaScheduler {
	if interval <= 0 {
		interval = time.Second
	}
	return &TeaScheduler{interval: interval}
}

// Arm implements Scheduler and queues the first tick.
func (s *TeaScheduler) Arm(seconds int, onTick func(remaining int), onExpire func()) {
	s.Countdown.Arm(seconds, onTick, onExpire)
	s.schedule(s.Generation())
}

// Handle steps the countdown for msg and queues the next tick while armed.
func (s *TeaScheduler) Handle(msg TickMsg) {
	if s.Step(msg.Generation) {
		s.schedule(msg.Generation)
	}
}

// Flush returns the commands queued since the last call.
func (s *TeaScheduler) Flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

func (s *TeaScheduler) schedule(generation uint64) {
	s.pending = append(s.pending, tea.Tick(s.interval, func(time.Time) tea.Msg {
		return TickMsg{Generation: generation}
	}))
}
