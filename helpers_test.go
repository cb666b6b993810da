package hero

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertWithin(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v ± %v", name, got, want, tol)
	}
}

// frame is one simulated 60 Hz frame.
const frame = time.Second / 60

// circle is one FillCircle call recorded by recordCanvas.
type circle struct {
	x, y, r float64
	c       Color
}

// recordCanvas is a Canvas that remembers what was drawn since the last
// Clear.
type recordCanvas struct {
	width, height int
	clears        int
	resizes       int
	circles       []circle
}

func (c *recordCanvas) Clear() {
	c.clears++
	c.circles = c.circles[:0]
}

func (c *recordCanvas) FillCircle(x, y, radius float64, col Color) {
	c.circles = append(c.circles, circle{x, y, radius, col})
}

func (c *recordCanvas) Resize(width, height int) {
	c.resizes++
	c.width, c.height = width, height
}

// recordSurface hands out recordCanvases and can refuse to.
type recordSurface struct {
	unavailable bool
	acquired    []*recordCanvas
}

func (s *recordSurface) Acquire(width, height int) (Canvas, bool) {
	if s.unavailable || width <= 0 || height <= 0 {
		return nil, false
	}
	c := &recordCanvas{width: width, height: height}
	s.acquired = append(s.acquired, c)
	return c, true
}

func (s *recordSurface) last() *recordCanvas {
	if len(s.acquired) == 0 {
		return nil
	}
	return s.acquired[len(s.acquired)-1]
}

func seeded(seed uint64) FieldConfig {
	cfg := DefaultFieldConfig()
	cfg.Rand = rand.New(rand.NewPCG(seed, seed+1))
	return cfg
}
