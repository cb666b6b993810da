package hero

import "testing"

func TestHostDeliversPointerMoves(t *testing.T) {
	h := NewHost(800, 600, true)
	var got []Vec2
	sub := h.OnPointerMove(func(x, y float64) { got = append(got, Vec2{x, y}) })
	h.MovePointer(10, 20)
	h.MovePointer(30, 40)
	sub.Remove()
	h.MovePointer(50, 60)

	if len(got) != 2 {
		t.Fatalf("deliveries = %d, want 2", len(got))
	}
	if got[1] != (Vec2{30, 40}) {
		t.Errorf("second sample = %v, want {30 40}", got[1])
	}
	if h.Pointer() != (Vec2{50, 60}) {
		t.Errorf("Pointer = %v, want {50 60}", h.Pointer())
	}
	if h.ListenerCount() != 0 {
		t.Errorf("ListenerCount = %d, want 0", h.ListenerCount())
	}
}

func TestSubscriptionRemoveIsIdempotent(t *testing.T) {
	h := NewHost(800, 600, true)
	a := h.OnScroll(func(float64) {})
	h.OnScroll(func(float64) {})
	a.Remove()
	a.Remove()
	if h.ListenerCount() != 1 {
		t.Errorf("ListenerCount = %d, want 1", h.ListenerCount())
	}

	var zero Subscription
	zero.Remove()
}

func TestHostScrollClampsAtZero(t *testing.T) {
	h := NewHost(800, 600, true)
	got := -1.0
	h.OnScroll(func(y float64) { got = y })
	h.Scroll(-25)
	assertNear(t, "scroll", got, 0)
	h.Scroll(120)
	assertNear(t, "scroll", got, 120)
	assertNear(t, "ScrollY", h.ScrollY(), 120)
}

func TestHostResize(t *testing.T) {
	tests := []struct {
		name   string
		w, h   float64
		notify bool
	}{
		{"grow", 1024, 768, true},
		{"same size", 800, 600, false},
		{"zero width", 0, 600, false},
		{"negative height", 800, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHost(800, 600, true)
			called := false
			h.OnResize(func(float64, float64) { called = true })
			h.Resize(tt.w, tt.h)
			if called != tt.notify {
				t.Errorf("notified = %v, want %v", called, tt.notify)
			}
		})
	}
}

func TestHostColorSchemeNotifiesOnChangeOnly(t *testing.T) {
	h := NewHost(800, 600, true)
	var got []bool
	h.OnColorSchemeChange(func(dark bool) { got = append(got, dark) })
	h.SetPrefersDark(true)
	h.SetPrefersDark(false)
	h.SetPrefersDark(false)
	h.SetPrefersDark(true)
	if len(got) != 2 || got[0] || !got[1] {
		t.Errorf("notifications = %v, want [false true]", got)
	}
}

func TestListenerRemovedDuringDispatchIsSkipped(t *testing.T) {
	h := NewHost(800, 600, true)
	var second Subscription
	secondCalls := 0
	h.OnPointerMove(func(float64, float64) { second.Remove() })
	second = h.OnPointerMove(func(float64, float64) { secondCalls++ })
	h.MovePointer(1, 1)
	h.MovePointer(2, 2)
	if secondCalls != 0 {
		t.Errorf("removed listener ran %d times", secondCalls)
	}
}

func TestListenerAddedDuringDispatchWaitsForNextEvent(t *testing.T) {
	h := NewHost(800, 600, true)
	subscribed := false
	lateCalls := 0
	h.OnScroll(func(float64) {
		if !subscribed {
			subscribed = true
			h.OnScroll(func(float64) { lateCalls++ })
		}
	})
	h.Scroll(10)
	if lateCalls != 0 {
		t.Fatalf("late listener calls after first event = %d, want 0", lateCalls)
	}
	h.Scroll(20)
	if lateCalls != 1 {
		t.Errorf("late listener calls after second event = %d, want 1", lateCalls)
	}
}
