package hero

// Unsubscribe removes a ThemeSignal subscriber. Safe to call repeatedly.
type Unsubscribe func()

// ThemeSignal is the process-wide dark-mode flag. It samples the
// environment's color-scheme preference once when created and then follows
// the environment's change notifications. Consumers only read it.
type ThemeSignal struct {
	dark   bool
	envSub Subscription
	subs   []*listener[func(dark bool)]
	nextID uint32
	closed bool
}

// NewThemeSignal reads the current preference from env and subscribes to its
// changes.
func NewThemeSignal(env Environment) *ThemeSignal {
	t := &ThemeSignal{dark: env.PrefersDark()}
	t.envSub = env.OnColorSchemeChange(t.set)
	return t
}

// Dark reports whether the dark color scheme is active.
func (t *ThemeSignal) Dark() bool {
	return t.dark
}

// Palette returns the palette for the current scheme.
func (t *ThemeSignal) Palette() Palette {
	return PaletteFor(t.dark)
}

// Subscribe delivers every subsequent value to fn until unsubscribed. A
// closed signal registers nothing.
func (t *ThemeSignal) Subscribe(fn func(dark bool)) Unsubscribe {
	if t.closed {
		return func() {}
	}
	t.nextID++
	id := t.nextID
	t.subs = append(t.subs, &listener[func(dark bool)]{id: id, fn: fn})
	return func() { t.subs = removeListener(t.subs, id) }
}

// SubscriberCount returns the number of live subscribers.
func (t *ThemeSignal) SubscriberCount() int {
	return len(t.subs)
}

func (t *ThemeSignal) set(dark bool) {
	if t.closed || dark == t.dark {
		return
	}
	t.dark = dark
	for _, l := range snapshot(t.subs) {
		if !l.gone {
			l.fn(dark)
		}
	}
}

// Close detaches from the environment and drops every subscriber. The last
// value stays readable. Safe to call repeatedly.
func (t *ThemeSignal) Close() {
	if t.closed {
		return
	}
	t.closed = true
	t.envSub.Remove()
	for _, l := range t.subs {
		l.gone = true
	}
	t.subs = nil
}
