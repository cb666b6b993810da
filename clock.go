package hero

import "time"

// DefaultInterval is used by Every when the requested interval is not positive.
const DefaultInterval = 50 * time.Millisecond

// frameRequest is a one-shot callback scheduled for the next frame.
type frameRequest struct {
	id        uint32
	fn        func(dt float64)
	cancelled bool
	done      bool
}

// Clock is the single timing source every component schedules against. It
// offers a per-frame callback primitive and independent fixed-interval
// timers, and only moves when Advance is called. Clock is not safe for
// concurrent use; all scheduling happens on the goroutine that drives it.
type Clock struct {
	now    time.Duration
	frame  uint64
	frames []*frameRequest
	spare  []*frameRequest // reused batch buffer while frames run
	timers []*Timer
	nextID uint32
}

// NewClock creates a clock at time zero with nothing scheduled.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the elapsed clock time.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Frame returns the number of completed Advance calls.
func (c *Clock) Frame() uint64 {
	return c.frame
}

// Pending reports the number of queued frame callbacks and active timers.
func (c *Clock) Pending() (frames, timers int) {
	return len(c.frames), len(c.timers)
}

// FrameHandle cancels a callback queued with RequestFrame. The zero value is
// valid and Cancel on it is a no-op.
type FrameHandle struct {
	clock *Clock
	req   *frameRequest
}

// Cancel removes the callback if it has not run yet. Safe to call repeatedly.
func (h FrameHandle) Cancel() {
	if h.clock == nil || h.req == nil || h.req.done || h.req.cancelled {
		return
	}
	h.req.cancelled = true
	h.clock.frames = removeFrame(h.clock.frames, h.req)
}

// RequestFrame queues fn to run once on the next Advance. Requests made while
// a frame is running are deferred to the following frame.
func (c *Clock) RequestFrame(fn func(dt float64)) FrameHandle {
	c.nextID++
	req := &frameRequest{id: c.nextID, fn: fn}
	c.frames = append(c.frames, req)
	return FrameHandle{clock: c, req: req}
}

func removeFrame(s []*frameRequest, req *frameRequest) []*frameRequest {
	for i := range s {
		if s[i] == req {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = nil
			return s[:len(s)-1]
		}
	}
	return s
}

// Timer is a fixed-interval timer created by Clock.Every.
type Timer struct {
	clock    *Clock
	id       uint32
	interval time.Duration
	next     time.Duration
	fn       func()
	stopped  bool
}

// Every starts a timer that calls fn each time interval elapses on the clock.
func (c *Clock) Every(interval time.Duration, fn func()) *Timer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	c.nextID++
	t := &Timer{
		clock:    c,
		id:       c.nextID,
		interval: interval,
		next:     c.now + interval,
		fn:       fn,
	}
	c.timers = append(c.timers, t)
	return t
}

// Stop cancels the timer. Safe on a nil timer and safe to call repeatedly,
// including from inside the timer's own callback.
func (t *Timer) Stop() {
	if t == nil || t.stopped {
		return
	}
	t.stopped = true
	s := t.clock.timers
	for i := range s {
		if s[i] == t {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = nil
			t.clock.timers = s[:len(s)-1]
			return
		}
	}
}

// Active reports whether the timer will fire again.
func (t *Timer) Active() bool {
	return t != nil && !t.stopped
}

// Advance moves the clock forward by dt. Due timers fire first, in deadline
// order (a timer fires once per elapsed interval), then every frame callback
// that was queued before this call runs with dt in seconds.
func (c *Clock) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := c.now + dt

	for {
		t := c.nextDue(target)
		if t == nil {
			break
		}
		c.now = t.next
		t.next += t.interval
		t.fn()
	}
	c.now = target
	c.frame++

	batch := c.frames
	c.frames = c.spare[:0]
	secs := dt.Seconds()
	for _, req := range batch {
		if req.cancelled {
			continue
		}
		req.done = true
		req.fn(secs)
	}
	clear(batch)
	c.spare = batch[:0]
}

// nextDue returns the active timer with the earliest deadline not after
// target. Ties go to the timer created first.
func (c *Clock) nextDue(target time.Duration) *Timer {
	var best *Timer
	for _, t := range c.timers {
		if t.next > target {
			continue
		}
		if best == nil || t.next < best.next || (t.next == best.next && t.id < best.id) {
			best = t
		}
	}
	return best
}

// FrameLoop is a self-rescheduling per-frame loop. It holds the handle of its
// next queued frame so Stop can cancel the chain.
type FrameLoop struct {
	clock   *Clock
	step    func(dt float64)
	handle  FrameHandle
	stopped bool
}

// StartLoop schedules step on every frame until the loop is stopped.
func StartLoop(c *Clock, step func(dt float64)) *FrameLoop {
	l := &FrameLoop{clock: c, step: step}
	l.handle = c.RequestFrame(l.run)
	return l
}

func (l *FrameLoop) run(dt float64) {
	if l.stopped {
		return
	}
	l.step(dt)
	if l.stopped {
		return
	}
	l.handle = l.clock.RequestFrame(l.run)
}

// Stop cancels the pending frame. Safe on a nil loop and safe to repeat.
func (l *FrameLoop) Stop() {
	if l == nil || l.stopped {
		return
	}
	l.stopped = true
	l.handle.Cancel()
}

// Running reports whether the loop is still scheduled.
func (l *FrameLoop) Running() bool {
	return l != nil && !l.stopped
}
