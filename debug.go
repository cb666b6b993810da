package hero

import (
	"fmt"
	"io"
	"os"
)

var (
	debugEnabled bool
	debugOut     io.Writer = os.Stderr
)

// SetDebug turns package diagnostics on stderr on or off.
func SetDebug(on bool) {
	debugEnabled = on
}

// debugf prints a diagnostic line when debug mode is on.
func debugf(format string, args ...any) {
	if !debugEnabled {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[hero] "+format+"\n", args...)
}

// debugStats is a per-frame snapshot of what the banner has scheduled.
type debugStats struct {
	frame     uint64
	particles int
	frames    int
	timers    int
	listeners int
	revealed  int
}

// debugLogEvery is the frame interval between stats lines.
const debugLogEvery = 60

// listenerCounter is implemented by environments that can report their live
// subscriptions, such as Host.
type listenerCounter interface {
	ListenerCount() int
}

func (h *Hero) stats() debugStats {
	s := debugStats{
		frame:     h.clock.Frame(),
		particles: h.field.Count(),
		revealed:  h.typewriter.RevealedCount(),
	}
	s.frames, s.timers = h.clock.Pending()
	s.listeners = -1
	if lc, ok := h.env.(listenerCounter); ok {
		s.listeners = lc.ListenerCount()
	}
	return s
}

// debugLog prints stats to stderr every debugLogEvery frames.
func (h *Hero) debugLog(s debugStats) {
	if !h.debug || s.frame%debugLogEvery != 0 {
		return
	}
	_, _ = fmt.Fprintf(debugOut,
		"[hero] frame: %d | particles: %d | pending frames: %d | timers: %d | listeners: %d | revealed: %d\n",
		s.frame, s.particles, s.frames, s.timers, s.listeners, s.revealed)
}

// debugCheckLeaks warns when an unmounted banner left work scheduled on the
// clock or listeners on the environment.
func (h *Hero) debugCheckLeaks() {
	if !h.debug {
		return
	}
	s := h.stats()
	if s.frames > 0 || s.timers > 0 || s.listeners > 0 {
		_, _ = fmt.Fprintf(debugOut,
			"[hero] warning: after unmount %d frames, %d timers and %d listeners remain\n",
			s.frames, s.timers, s.listeners)
	}
}
