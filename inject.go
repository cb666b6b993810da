package hero

// syntheticKind selects which Host notification a queued event replays.
type syntheticKind uint8

const (
	syntheticMove syntheticKind = iota
	syntheticScroll
	syntheticTheme
	syntheticResize
)

// syntheticEvent is a single injected input event. Coordinates are viewport
// coordinates, identical to real pointer input.
type syntheticEvent struct {
	kind syntheticKind
	x, y float64
	dark bool
}

// InjectMove queues a pointer move to (x, y). Queued events are consumed one
// per frame by ProcessInjected.
func (h *Host) InjectMove(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{kind: syntheticMove, x: x, y: y})
}

// InjectScroll queues a scroll to the given vertical position.
func (h *Host) InjectScroll(scrollY float64) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{kind: syntheticScroll, y: scrollY})
}

// InjectTheme queues a color-scheme preference change.
func (h *Host) InjectTheme(dark bool) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{kind: syntheticTheme, dark: dark})
}

// InjectResize queues a viewport resize.
func (h *Host) InjectResize(width, height float64) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{kind: syntheticResize, x: width, y: height})
}

// InjectSweep queues a pointer sweep from (fromX, fromY) to (toX, toY)
// spread linearly over frames moves. Minimum frames is 1.
func (h *Host) InjectSweep(fromX, fromY, toX, toY float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	for i := 1; i <= frames; i++ {
		t := float64(i) / float64(frames)
		h.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// Injected returns the number of queued synthetic events.
func (h *Host) Injected() int {
	return len(h.injectQueue)
}

// ProcessInjected pops one queued event and delivers it as if it came from
// real input. It returns true when an event was consumed, in which case the
// caller should skip real pointer input for the frame.
func (h *Host) ProcessInjected() bool {
	if len(h.injectQueue) == 0 {
		return false
	}
	evt := h.injectQueue[0]
	copy(h.injectQueue, h.injectQueue[1:])
	h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]

	switch evt.kind {
	case syntheticMove:
		h.MovePointer(evt.x, evt.y)
	case syntheticScroll:
		h.Scroll(evt.y)
	case syntheticTheme:
		h.SetPrefersDark(evt.dark)
	case syntheticResize:
		h.Resize(evt.x, evt.y)
	}
	return true
}
