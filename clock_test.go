package hero

import (
	"testing"
	"time"
)

func TestRequestFrameRunsOnce(t *testing.T) {
	c := NewClock()
	calls := 0
	var gotDT float64
	c.RequestFrame(func(dt float64) {
		calls++
		gotDT = dt
	})
	c.Advance(frame)
	c.Advance(frame)
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
	assertNear(t, "dt", gotDT, frame.Seconds())
}

func TestFrameHandleCancel(t *testing.T) {
	c := NewClock()
	ran := false
	h := c.RequestFrame(func(float64) { ran = true })
	h.Cancel()
	h.Cancel()
	c.Advance(frame)
	if ran {
		t.Error("cancelled frame ran")
	}
	if f, _ := c.Pending(); f != 0 {
		t.Errorf("pending frames = %d, want 0", f)
	}

	var zero FrameHandle
	zero.Cancel()
}

func TestFrameRequestedDuringFrameRunsNextFrame(t *testing.T) {
	c := NewClock()
	var order []int
	c.RequestFrame(func(float64) {
		order = append(order, 1)
		c.RequestFrame(func(float64) { order = append(order, 2) })
	})
	c.Advance(frame)
	if len(order) != 1 {
		t.Fatalf("after first advance order = %v, want [1]", order)
	}
	c.Advance(frame)
	if len(order) != 2 || order[1] != 2 {
		t.Fatalf("after second advance order = %v, want [1 2]", order)
	}
}

func TestCancelLaterFrameFromEarlierFrame(t *testing.T) {
	c := NewClock()
	ran := false
	var second FrameHandle
	c.RequestFrame(func(float64) { second.Cancel() })
	second = c.RequestFrame(func(float64) { ran = true })
	c.Advance(frame)
	if ran {
		t.Error("frame cancelled by an earlier callback in the same batch still ran")
	}
}

func TestEveryFiresPerInterval(t *testing.T) {
	tests := []struct {
		name     string
		interval time.Duration
		advance  time.Duration
		want     int
	}{
		{"before first deadline", 50 * time.Millisecond, 49 * time.Millisecond, 0},
		{"exact deadline", 50 * time.Millisecond, 50 * time.Millisecond, 1},
		{"several intervals in one advance", 50 * time.Millisecond, 175 * time.Millisecond, 3},
		{"non-positive interval uses default", 0, DefaultInterval * 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClock()
			n := 0
			c.Every(tt.interval, func() { n++ })
			c.Advance(tt.advance)
			if n != tt.want {
				t.Errorf("fired %d times, want %d", n, tt.want)
			}
		})
	}
}

func TestTimerStop(t *testing.T) {
	c := NewClock()
	n := 0
	tm := c.Every(10*time.Millisecond, func() { n++ })
	c.Advance(25 * time.Millisecond)
	tm.Stop()
	tm.Stop()
	c.Advance(100 * time.Millisecond)
	if n != 2 {
		t.Errorf("fired %d times, want 2", n)
	}
	if tm.Active() {
		t.Error("stopped timer reports active")
	}
	if _, timers := c.Pending(); timers != 0 {
		t.Errorf("pending timers = %d, want 0", timers)
	}

	var nilTimer *Timer
	nilTimer.Stop()
}

func TestTimerStopFromOwnCallback(t *testing.T) {
	c := NewClock()
	n := 0
	var tm *Timer
	tm = c.Every(10*time.Millisecond, func() {
		n++
		if n == 2 {
			tm.Stop()
		}
	})
	c.Advance(time.Second)
	if n != 2 {
		t.Errorf("fired %d times, want 2", n)
	}
}

func TestTimersFireInDeadlineOrder(t *testing.T) {
	c := NewClock()
	var order []string
	c.Every(30*time.Millisecond, func() { order = append(order, "slow") })
	c.Every(20*time.Millisecond, func() { order = append(order, "fast") })
	c.Advance(60 * time.Millisecond)
	want := []string{"fast", "slow", "fast", "slow", "fast"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestTimersRunBeforeFrames(t *testing.T) {
	c := NewClock()
	var order []string
	c.RequestFrame(func(float64) { order = append(order, "frame") })
	c.Every(frame, func() { order = append(order, "timer") })
	c.Advance(frame)
	if len(order) != 2 || order[0] != "timer" || order[1] != "frame" {
		t.Errorf("order = %v, want [timer frame]", order)
	}
}

func TestClockNowAndFrame(t *testing.T) {
	c := NewClock()
	c.Advance(frame)
	c.Advance(frame)
	c.Advance(-time.Second)
	if c.Now() != 2*frame {
		t.Errorf("Now = %v, want %v", c.Now(), 2*frame)
	}
	if c.Frame() != 3 {
		t.Errorf("Frame = %d, want 3", c.Frame())
	}
}

func TestFrameLoop(t *testing.T) {
	c := NewClock()
	steps := 0
	l := StartLoop(c, func(float64) { steps++ })
	for i := 0; i < 5; i++ {
		c.Advance(frame)
	}
	if steps != 5 {
		t.Fatalf("steps = %d, want 5", steps)
	}
	if !l.Running() {
		t.Error("loop should be running")
	}
	l.Stop()
	l.Stop()
	c.Advance(frame)
	if steps != 5 {
		t.Errorf("steps after stop = %d, want 5", steps)
	}
	if f, _ := c.Pending(); f != 0 {
		t.Errorf("pending frames = %d, want 0", f)
	}

	var nilLoop *FrameLoop
	nilLoop.Stop()
	if nilLoop.Running() {
		t.Error("nil loop reports running")
	}
}

func TestFrameLoopStopFromStep(t *testing.T) {
	c := NewClock()
	steps := 0
	var l *FrameLoop
	l = StartLoop(c, func(float64) {
		steps++
		l.Stop()
	})
	c.Advance(frame)
	c.Advance(frame)
	if steps != 1 {
		t.Errorf("steps = %d, want 1", steps)
	}
	if f, _ := c.Pending(); f != 0 {
		t.Errorf("pending frames = %d, want 0", f)
	}
}
