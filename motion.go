package hero

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Track animates one value through a list of keyframes. The duration is
// split evenly across the segments between keyframes, each segment driven by
// its own gween tween. A track can wait before starting and can loop.
type Track struct {
	keys     []float32
	segment  float32
	easing   ease.TweenFunc
	delay    float32
	waited   float32
	repeat   bool
	index    int
	tween    *gween.Tween
	value    float64
	finished bool
}

// NewTrack creates a track over the given keyframes lasting duration seconds.
// A nil easing is linear. Fewer than two keyframes gives a constant track
// that is finished from the start.
func NewTrack(duration float64, easing ease.TweenFunc, keyframes ...float64) *Track {
	if easing == nil {
		easing = ease.Linear
	}
	t := &Track{easing: easing}
	for _, k := range keyframes {
		t.keys = append(t.keys, float32(k))
	}
	if len(t.keys) > 0 {
		t.value = float64(t.keys[0])
	}
	if len(t.keys) < 2 {
		t.finished = true
		return t
	}
	if duration <= 0 {
		t.value = float64(t.keys[len(t.keys)-1])
		t.finished = true
		return t
	}
	t.segment = float32(duration) / float32(len(t.keys)-1)
	t.tween = gween.New(t.keys[0], t.keys[1], t.segment, t.easing)
	return t
}

// Delay holds the first keyframe for the given number of seconds.
func (t *Track) Delay(seconds float64) *Track {
	if seconds > 0 {
		t.delay = float32(seconds)
	}
	return t
}

// Loop restarts the track from its first keyframe whenever it ends.
func (t *Track) Loop() *Track {
	if len(t.keys) >= 2 && t.segment > 0 {
		t.repeat = true
		t.finished = false
	}
	return t
}

// Update advances the track by dt seconds and returns the new value.
func (t *Track) Update(dt float64) float64 {
	if t.finished || dt <= 0 {
		return t.value
	}
	step := float32(dt)
	if t.waited < t.delay {
		t.waited += step
		if t.waited < t.delay {
			return t.value
		}
		step = t.waited - t.delay
		t.waited = t.delay
		if step <= 0 {
			return t.value
		}
	}

	v, done := t.tween.Update(step)
	t.value = float64(v)
	if !done {
		return t.value
	}
	t.index++
	if t.index >= len(t.keys)-1 {
		if !t.repeat {
			t.finished = true
			return t.value
		}
		t.index = 0
	}
	t.tween = gween.New(t.keys[t.index], t.keys[t.index+1], t.segment, t.easing)
	return t.value
}

// Value returns the current value.
func (t *Track) Value() float64 {
	return t.value
}

// Done reports whether a non-looping track has reached its last keyframe.
func (t *Track) Done() bool {
	return t.finished
}

// Motion is a set of tracks updated together.
type Motion struct {
	tracks []*Track
}

// Add appends a track and returns it.
func (m *Motion) Add(t *Track) *Track {
	m.tracks = append(m.tracks, t)
	return t
}

// Update advances every track by dt seconds.
func (m *Motion) Update(dt float64) {
	for _, t := range m.tracks {
		t.Update(dt)
	}
}

// Len returns the number of tracks.
func (m *Motion) Len() int {
	return len(m.tracks)
}

// Settled reports whether every non-looping track has finished.
func (m *Motion) Settled() bool {
	for _, t := range m.tracks {
		if !t.repeat && !t.finished {
			return false
		}
	}
	return true
}
