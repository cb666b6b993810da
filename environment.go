package hero

// Environment is the host the banner runs in: it reports the viewport and
// delivers pointer, scroll, resize and color-scheme notifications. Every
// On* method returns a Subscription that must be removed on teardown.
type Environment interface {
	Viewport() (width, height float64)
	OnPointerMove(fn func(x, y float64)) Subscription
	OnScroll(fn func(scrollY float64)) Subscription
	OnResize(fn func(width, height float64)) Subscription
	PrefersDark() bool
	OnColorSchemeChange(fn func(dark bool)) Subscription
}

// listener is a registered callback. gone is set on removal so a dispatch
// already in progress skips it.
type listener[F any] struct {
	id   uint32
	fn   F
	gone bool
}

func removeListener[F any](s []*listener[F], id uint32) []*listener[F] {
	for i := range s {
		if s[i].id == id {
			s[i].gone = true
			copy(s[i:], s[i+1:])
			s[len(s)-1] = nil
			return s[:len(s)-1]
		}
	}
	return s
}

// Subscription removes a listener installed on an Environment. The zero
// value is valid and Remove on it is a no-op.
type Subscription struct {
	remove func()
}

// NewSubscription wraps a removal function. remove must tolerate repeated
// calls; Environment implementations outside this package use it to build
// their handles.
func NewSubscription(remove func()) Subscription {
	return Subscription{remove: remove}
}

// Remove unregisters the listener so it no longer fires. Safe to repeat.
func (s Subscription) Remove() {
	if s.remove != nil {
		s.remove()
	}
}

// Host is an in-memory Environment. Window and terminal runners translate
// their native input into Host calls; tests drive it directly.
type Host struct {
	width, height float64
	pointer       Vec2
	scrollY       float64
	dark          bool

	pointerMove []*listener[func(x, y float64)]
	scroll      []*listener[func(scrollY float64)]
	resize      []*listener[func(width, height float64)]
	scheme      []*listener[func(dark bool)]
	nextID      uint32

	injectQueue []syntheticEvent
}

// NewHost creates a host with the given viewport and color-scheme preference.
func NewHost(width, height float64, prefersDark bool) *Host {
	return &Host{width: width, height: height, dark: prefersDark}
}

// Viewport returns the current viewport size.
func (h *Host) Viewport() (width, height float64) {
	return h.width, h.height
}

// PrefersDark returns the current color-scheme preference.
func (h *Host) PrefersDark() bool {
	return h.dark
}

// Pointer returns the last pointer position delivered.
func (h *Host) Pointer() Vec2 {
	return h.pointer
}

// ScrollY returns the last scroll position delivered.
func (h *Host) ScrollY() float64 {
	return h.scrollY
}

// ListenerCount returns the number of live subscriptions across all events.
func (h *Host) ListenerCount() int {
	return len(h.pointerMove) + len(h.scroll) + len(h.resize) + len(h.scheme)
}

// OnPointerMove registers a callback for pointer movement.
func (h *Host) OnPointerMove(fn func(x, y float64)) Subscription {
	h.nextID++
	id := h.nextID
	h.pointerMove = append(h.pointerMove, &listener[func(x, y float64)]{id: id, fn: fn})
	return NewSubscription(func() { h.pointerMove = removeListener(h.pointerMove, id) })
}

// OnScroll registers a callback for scroll position changes.
func (h *Host) OnScroll(fn func(scrollY float64)) Subscription {
	h.nextID++
	id := h.nextID
	h.scroll = append(h.scroll, &listener[func(scrollY float64)]{id: id, fn: fn})
	return NewSubscription(func() { h.scroll = removeListener(h.scroll, id) })
}

// OnResize registers a callback for viewport resizes.
func (h *Host) OnResize(fn func(width, height float64)) Subscription {
	h.nextID++
	id := h.nextID
	h.resize = append(h.resize, &listener[func(width, height float64)]{id: id, fn: fn})
	return NewSubscription(func() { h.resize = removeListener(h.resize, id) })
}

// OnColorSchemeChange registers a callback for color-scheme preference changes.
func (h *Host) OnColorSchemeChange(fn func(dark bool)) Subscription {
	h.nextID++
	id := h.nextID
	h.scheme = append(h.scheme, &listener[func(dark bool)]{id: id, fn: fn})
	return NewSubscription(func() { h.scheme = removeListener(h.scheme, id) })
}

// MovePointer records a pointer sample and notifies listeners.
func (h *Host) MovePointer(x, y float64) {
	h.pointer = Vec2{x, y}
	for _, l := range snapshot(h.pointerMove) {
		if !l.gone {
			l.fn(x, y)
		}
	}
}

// Scroll sets the vertical scroll position (clamped at zero) and notifies
// listeners.
func (h *Host) Scroll(scrollY float64) {
	if scrollY < 0 {
		scrollY = 0
	}
	h.scrollY = scrollY
	for _, l := range snapshot(h.scroll) {
		if !l.gone {
			l.fn(scrollY)
		}
	}
}

// Resize changes the viewport and notifies listeners. Non-positive sizes are
// ignored.
func (h *Host) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == h.width && height == h.height {
		return
	}
	h.width, h.height = width, height
	for _, l := range snapshot(h.resize) {
		if !l.gone {
			l.fn(width, height)
		}
	}
}

// SetPrefersDark changes the color-scheme preference. Listeners are notified
// only when the value actually changes.
func (h *Host) SetPrefersDark(dark bool) {
	if dark == h.dark {
		return
	}
	h.dark = dark
	for _, l := range snapshot(h.scheme) {
		if !l.gone {
			l.fn(dark)
		}
	}
}

// snapshot copies a listener list so callbacks may subscribe or unsubscribe
// while it is being dispatched.
func snapshot[F any](s []*listener[F]) []*listener[F] {
	if len(s) == 0 {
		return nil
	}
	out := make([]*listener[F], len(s))
	copy(out, s)
	return out
}
