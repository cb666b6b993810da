package hero

import "math"

// Default parallax coefficients for tags that carry no value.
const (
	DefaultDepth = 0.2
	DefaultSpeed = 0.3
)

// parallaxLayer is a registered element with its resolved coefficients.
type parallaxLayer struct {
	el      *Element
	pointer bool
	depth   float64
	scroll  bool
	speed   float64
}

// Parallax shifts tagged elements with the pointer and the scroll position.
//
// Pointer movement translates each pointer layer by its depth times the
// pointer's distance from the viewport center. Scrolling translates each
// scroll layer vertically by its speed times the scroll position. Both
// handlers overwrite the whole translation, so an element tagged for both
// shows whichever event fired last.
type Parallax struct {
	env      Environment
	elements []*Element
	layers   []parallaxLayer

	pointerSub Subscription
	scrollSub  Subscription
	started    bool
	stopped    bool
}

// NewParallax creates a controller reading the viewport from env.
func NewParallax(env Environment) *Parallax {
	return &Parallax{env: env}
}

// Register replaces the layer set with the tagged elements among elements.
// Registration is static: elements created later are not picked up. It
// returns the number of registered layers.
func (p *Parallax) Register(elements []*Element) int {
	p.elements = append(p.elements[:0], elements...)
	p.Refresh()
	return len(p.layers)
}

// Refresh re-reads the tags of the registered elements.
func (p *Parallax) Refresh() {
	p.layers = p.layers[:0]
	for _, el := range p.elements {
		if el == nil || !el.Tag.Tagged() {
			continue
		}
		l := parallaxLayer{el: el, pointer: el.Tag.Pointer, scroll: el.Tag.Scroll}
		if l.pointer {
			l.depth = resolveCoefficient(el.Name, "depth", el.Tag.Depth, DefaultDepth)
		}
		if l.scroll {
			l.speed = resolveCoefficient(el.Name, "speed", el.Tag.Speed, DefaultSpeed)
		}
		p.layers = append(p.layers, l)
	}
}

// resolveCoefficient applies the default to a missing or non-finite value.
func resolveCoefficient(name, kind string, v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		debugf("element %q: invalid %s %v, using %v", name, kind, *v, def)
		return def
	}
	return *v
}

// Layers returns the number of registered layers.
func (p *Parallax) Layers() int {
	return len(p.layers)
}

// PointerMoved applies pointer parallax for a pointer at (x, y).
func (p *Parallax) PointerMoved(x, y float64) {
	w, h := p.env.Viewport()
	dx := x - w/2
	dy := y - h/2
	for _, l := range p.layers {
		if l.pointer {
			l.el.SetTranslate(dx*l.depth, dy*l.depth)
		}
	}
}

// Scrolled applies scroll parallax for a vertical scroll position.
func (p *Parallax) Scrolled(scrollY float64) {
	for _, l := range p.layers {
		if l.scroll {
			l.el.SetTranslate(0, scrollY*l.speed)
		}
	}
}

// Start subscribes to pointer and scroll notifications. Calling Start on a
// running or stopped controller does nothing.
func (p *Parallax) Start() {
	if p.started || p.stopped {
		return
	}
	p.started = true
	p.pointerSub = p.env.OnPointerMove(p.PointerMoved)
	p.scrollSub = p.env.OnScroll(p.Scrolled)
}

// Stop removes both subscriptions. Safe to call repeatedly and before Start.
func (p *Parallax) Stop() {
	if p.stopped {
		return
	}
	p.stopped = true
	p.pointerSub.Remove()
	p.scrollSub.Remove()
}
