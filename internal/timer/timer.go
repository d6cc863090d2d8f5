// Package timer provides the session countdown.
package timer

// Scheduler drives a once-per-second countdown.
//
// Arm starts counting down from seconds. Each step calls onTick with the new
// remaining value; the step that reaches -1 disarms and then calls onExpire.
// Arming an armed scheduler disarms the previous countdown first. Disarm is
// a no-op when nothing is armed, and no tick is delivered after it returns.
type Scheduler interface {
	Arm(seconds int, onTick func(remaining int), onExpire func())
	Disarm()
	Armed() bool
}

// Countdown holds countdown state. Steps are driven by the caller via Step
// or Tick, which makes it usable directly in tests.
type Countdown struct {
	remaining  int
	onTick     func(int)
	onExpire   func()
	armed      bool
	generation uint64
}

// Arm implements Scheduler.
func (c *Countdown) Arm(seconds int, onTick func(remaining int), onExpire func()) {
	c.Disarm()
	c.generation++
	c.remaining = seconds
	c.onTick = onTick
	c.onExpire = onExpire
	c.armed = true
}

// Disarm implements Scheduler.
func (c *Countdown) Disarm() {
	if !c.armed {
		return
	}
	c.armed = false
	c.generation++
	c.onTick = nil
	c.onExpire = nil
}

// Armed implements Scheduler.
func (c *Countdown) Armed() bool {
	return c.armed
}

// Remaining returns the last value passed to onTick, or the armed start.
func (c *Countdown) Remaining() int {
	return c.remaining
}

// Generation identifies the current arm. It changes on every Arm and Disarm.
func (c *Countdown) Generation() uint64 {
	return c.generation
}

// Step advances the countdown armed as generation by one second. Steps for
// other generations are ignored. It reports whether the same countdown is
// still armed afterwards.
func (c *Countdown) Step(generation uint64) bool {
	if !c.armed || generation != c.generation {
		return false
	}
	c.remaining--
	onTick, onExpire := c.onTick, c.onExpire
	expired := c.remaining < 0
	if expired {
		c.remaining = -1
		c.Disarm()
	}
	after := c.generation
	if onTick != nil {
		onTick(c.remaining)
	}
	if expired {
		if onExpire != nil && c.generation == after {
			onExpire()
		}
		return false
	}
	return c.armed && c.generation == generation
}

// Tick steps the current countdown.
func (c *Countdown) Tick() bool {
	return c.Step(c.generation)
}
