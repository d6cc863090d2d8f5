package timer

import (
	"testing"
	"time"
)

func TestCountdownTicksAndExpiresOnce(t *testing.T) {
	var c Countdown
	var ticks []int
	expired := 0
	c.Arm(2, func(r int) { ticks = append(ticks, r) }, func() { expired++ })

	for i := 0; i < 5; i++ {
		c.Tick()
	}
	want := []int{1, 0, -1}
	if len(ticks) != len(want) {
		t.Fatalf("expected ticks %v, got %v", want, ticks)
	}
	for i := range want {
		if ticks[i] != want[i] {
			t.Fatalf("expected ticks %v, got %v", want, ticks)
		}
	}
	if expired != 1 {
		t.Fatalf("expected one expiry, got %d", expired)
	}
	if c.Armed() {
		t.Fatalf("expected countdown to disarm after expiry")
	}
	if c.Remaining() != -1 {
		t.Fatalf("expected remaining -1, got %d", c.Remaining())
	}
}

func TestCountdownDisarmIsIdempotent(t *testing.T) {
	var c Countdown
	c.Disarm()
	c.Arm(3, func(int) { t.Fatalf("tick after disarm") }, func() { t.Fatalf("expire after disarm") })
	c.Disarm()
	c.Disarm()
	if c.Tick() {
		t.Fatalf("expected disarmed countdown not to step")
	}
}

func TestCountdownIgnoresStaleGeneration(t *testing.T) {
	var c Countdown
	c.Arm(5, func(int) {}, func() {})
	stale := c.Generation()

	var ticks []int
	c.Arm(5, func(r int) { ticks = append(ticks, r) }, func() {})
	if c.Step(stale) {
		t.Fatalf("expected stale step to be ignored")
	}
	if len(ticks) != 0 {
		t.Fatalf("stale step delivered ticks: %v", ticks)
	}
	if !c.Step(c.Generation()) || len(ticks) != 1 || ticks[0] != 4 {
		t.Fatalf("expected current step to tick to 4, got %v", ticks)
	}
}

func TestCountdownRearmReplacesCallbacks(t *testing.T) {
	var c Countdown
	first := 0
	c.Arm(1, func(int) { first++ }, func() { first++ })
	second := 0
	c.Arm(1, func(int) { second++ }, func() { second++ })
	c.Tick()
	c.Tick()
	if first != 0 {
		t.Fatalf("previous countdown still fired %d times", first)
	}
	if second != 3 {
		t.Fatalf("expected 2 ticks and 1 expiry, got %d calls", second)
	}
}

func TestCountdownDisarmFromTickStopsExpiry(t *testing.T) {
	var c Countdown
	expired := false
	c.Arm(2, func(int) { c.Disarm() }, func() { expired = true })
	if c.Tick() {
		t.Fatalf("expected step to report disarmed")
	}
	c.Tick()
	c.Tick()
	if expired {
		t.Fatalf("expected no expiry once disarmed during tick")
	}
}

func TestTeaSchedulerQueuesTicks(t *testing.T) {
	s := NewTeaScheduler(time.Millisecond)
	if s.Flush() != nil {
		t.Fatalf("expected no commands before arm")
	}
	var ticks []int
	s.Arm(1, func(r int) { ticks = append(ticks, r) }, func() {})
	if s.Flush() == nil {
		t.Fatalf("expected tick command after arm")
	}

	gen := s.Generation()
	s.Handle(TickMsg{Generation: gen})
	if s.Flush() == nil {
		t.Fatalf("expected next tick to be queued")
	}
	s.Handle(TickMsg{Generation: gen})
	if s.Flush() != nil {
		t.Fatalf("expected no tick after expiry")
	}
	if len(ticks) != 2 || ticks[1] != -1 {
		t.Fatalf("unexpected ticks: %v", ticks)
	}
}

func TestTeaSchedulerDropsTicksAfterDisarm(t *testing.T) {
	s := NewTeaScheduler(time.Millisecond)
	s.Arm(10, func(int) { t.Fatalf("tick after disarm") }, func() {})
	gen := s.Generation()
	s.Flush()
	s.Disarm()
	s.Handle(TickMsg{Generation: gen})
	if s.Flush() != nil {
		t.Fatalf("expected no commands after disarm")
	}
}

func TestTeaSchedulerTickMessage(t *testing.T) {
	s := NewTeaScheduler(time.Millisecond)
	s.Arm(3, func(int) {}, func() {})
	cmd := s.Flush()
	msg := cmd()
	tick, ok := msg.(TickMsg)
	if !ok {
		t.Fatalf("expected TickMsg, got %T", msg)
	}
	if tick.Generation != s.Generation() {
		t.Fatalf("expected generation %d, got %d", s.Generation(), tick.Generation)
	}
}
