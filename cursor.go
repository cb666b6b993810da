package hero

import "math"

// SmoothingFactor is the share of the remaining distance the smoothed cursor
// covers on each tick.
const SmoothingFactor = 0.2

// CursorSmoother eases a displayed point toward the latest pointer sample,
// producing a trailing glow. Only the newest sample is kept.
type CursorSmoother struct {
	current  Vec2
	target   Vec2
	onSample func(x, y float64)

	loop    *FrameLoop
	pointer Subscription
	stopped bool
	started bool
}

// NewCursorSmoother creates an idle smoother at (0, 0).
func NewCursorSmoother(onSample func(x, y float64)) *CursorSmoother {
	return &CursorSmoother{onSample: onSample}
}

// StartCursorSmoother creates a smoother and starts it against clock and env.
func StartCursorSmoother(clock *Clock, env Environment, onSample func(x, y float64)) *CursorSmoother {
	c := NewCursorSmoother(onSample)
	c.Start(clock, env)
	return c
}

// Start subscribes to pointer movement and schedules Step on every frame.
// Calling Start on a running or stopped smoother does nothing.
func (c *CursorSmoother) Start(clock *Clock, env Environment) {
	if c.started || c.stopped {
		return
	}
	c.started = true
	c.pointer = env.OnPointerMove(c.SetTarget)
	c.loop = StartLoop(clock, func(float64) { c.Step() })
}

// SetTarget records the latest raw pointer sample, replacing the previous one.
func (c *CursorSmoother) SetTarget(x, y float64) {
	c.target = Vec2{x, y}
}

// Step moves the current point SmoothingFactor of the way to the target on
// each axis and reports it.
func (c *CursorSmoother) Step() {
	c.current.X += (c.target.X - c.current.X) * SmoothingFactor
	c.current.Y += (c.target.Y - c.current.Y) * SmoothingFactor
	if c.onSample != nil {
		c.onSample(c.current.X, c.current.Y)
	}
}

// Position returns the smoothed point.
func (c *CursorSmoother) Position() Vec2 {
	return c.current
}

// Target returns the latest pointer sample.
func (c *CursorSmoother) Target() Vec2 {
	return c.target
}

// Stop unsubscribes and cancels the frame loop. Safe to call repeatedly and
// before Start.
func (c *CursorSmoother) Stop() {
	if c.stopped {
		return
	}
	c.stopped = true
	c.pointer.Remove()
	c.loop.Stop()
}

// ConvergenceTicks returns the number of ticks after which the remaining
// distance is at most eps times the initial distance. eps must be in (0, 1).
func ConvergenceTicks(eps float64) int {
	if eps <= 0 || eps >= 1 {
		return 0
	}
	return int(math.Ceil(math.Log(eps) / math.Log(1-SmoothingFactor)))
}
