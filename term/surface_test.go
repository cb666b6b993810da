package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/naveen-enterprises/hero"
)

func newTestScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func TestSurfaceAcquire(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		ok            bool
		cols, rows    int
	}{
		{"full screen", 640, 384, true, 80, 24},
		{"partial cells dropped", 650, 390, true, 81, 24},
		{"narrower than a cell", 7, 384, false, 0, 0},
		{"zero height", 640, 0, false, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSurface(0, 0)
			c, ok := s.Acquire(tt.width, tt.height)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				if c != nil || s.Canvas() != nil {
					t.Error("failed Acquire returned a canvas")
				}
				return
			}
			cols, rows := s.Canvas().Size()
			if cols != tt.cols || rows != tt.rows {
				t.Errorf("Size = %dx%d, want %dx%d", cols, rows, tt.cols, tt.rows)
			}
		})
	}
}

func TestCanvasFillCircle(t *testing.T) {
	s := NewSurface(CellWidth, CellHeight)
	c, _ := s.Acquire(80, 64)
	canvas := s.Canvas()
	dot := hero.Color{R: 1, G: 1, B: 1, A: 0.3}
	big := hero.Color{R: 1, A: 0.3}

	c.FillCircle(12, 20, 1.5, dot)
	if g, col := canvas.Cell(1, 1); g != '·' || col != dot {
		t.Errorf("Cell(1, 1) = %q %v, want '·' %v", g, col, dot)
	}
	c.FillCircle(15, 30, 3.5, big)
	if g, col := canvas.Cell(1, 1); g != '●' || col != big {
		t.Errorf("larger particle should win the cell, got %q %v", g, col)
	}
	c.FillCircle(9, 17, 1, dot)
	if g, _ := canvas.Cell(1, 1); g != '●' {
		t.Errorf("smaller particle replaced the cell with %q", g)
	}

	c.FillCircle(-1, 5, 3, dot)
	c.FillCircle(80, 0, 3, dot)
	c.FillCircle(0, 64, 3, dot)
	filled := 0
	for row := 0; row < 4; row++ {
		for col := 0; col < 10; col++ {
			if g, _ := canvas.Cell(col, row); g != 0 {
				filled++
			}
		}
	}
	if filled != 1 {
		t.Errorf("filled cells = %d, want 1", filled)
	}

	c.Clear()
	if g, _ := canvas.Cell(1, 1); g != 0 {
		t.Errorf("Clear left %q", g)
	}
	if g, _ := canvas.Cell(99, 99); g != 0 {
		t.Errorf("out of range Cell = %q, want 0", g)
	}
}

func TestCanvasResize(t *testing.T) {
	s := NewSurface(CellWidth, CellHeight)
	c, _ := s.Acquire(80, 64)
	c.FillCircle(4, 4, 2, hero.Color{A: 1})
	c.Resize(160, 32)
	cols, rows := s.Canvas().Size()
	if cols != 20 || rows != 2 {
		t.Errorf("Size = %dx%d, want 20x2", cols, rows)
	}
	if g, _ := s.Canvas().Cell(0, 0); g != 0 {
		t.Errorf("Resize kept %q", g)
	}
}

func TestGlyphFor(t *testing.T) {
	tests := []struct {
		radius float64
		want   rune
	}{
		{1, '·'},
		{1.99, '·'},
		{2, '•'},
		{2.5, '•'},
		{3, '●'},
		{4, '●'},
	}
	for _, tt := range tests {
		if got := glyphFor(tt.radius); got != tt.want {
			t.Errorf("glyphFor(%v) = %q, want %q", tt.radius, got, tt.want)
		}
	}
}

func TestBlend(t *testing.T) {
	tests := []struct {
		name  string
		c, bg hero.Color
		want  tcell.Color
	}{
		{"opaque", hero.Color{R: 1, G: 0, B: 0, A: 1}, hero.Color{A: 1}, tcell.NewRGBColor(255, 0, 0)},
		{"half white on black", hero.Color{R: 1, G: 1, B: 1, A: 0.5}, hero.Color{A: 1}, tcell.NewRGBColor(128, 128, 128)},
		{"transparent", hero.Color{R: 1, A: 0}, hero.Color{B: 1, A: 1}, tcell.NewRGBColor(0, 0, 255)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := blend(tt.c, tt.bg); got != tt.want {
				t.Errorf("blend = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanvasDraw(t *testing.T) {
	screen := newTestScreen(t, 10, 4)
	s := NewSurface(CellWidth, CellHeight)
	c, _ := s.Acquire(80, 64)
	c.FillCircle(20, 40, 3, hero.Color{R: 1, G: 1, B: 1, A: 1})
	s.Canvas().draw(screen, hero.Color{A: 1})

	ch, _, style, _ := screen.GetContent(2, 2)
	if ch != '●' {
		t.Fatalf("GetContent(2, 2) = %q, want '●'", ch)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 255, 255) || bg != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("style fg %v bg %v, want white on black", fg, bg)
	}
	if ch, _, _, _ := screen.GetContent(0, 0); ch == '●' {
		t.Error("empty cell was drawn")
	}
}

func TestSurfaceDrivesParticleField(t *testing.T) {
	s := NewSurface(CellWidth, CellHeight)
	f := hero.NewParticleField(s, 640, 384, true, hero.DefaultFieldConfig())
	if !f.Usable() {
		t.Fatal("field should be usable on a terminal surface")
	}
	f.Tick()
	filled := 0
	for row := 0; row < 24; row++ {
		for col := 0; col < 80; col++ {
			if g, _ := s.Canvas().Cell(col, row); g != 0 {
				filled++
			}
		}
	}
	if filled == 0 || filled > f.Count() {
		t.Errorf("filled cells = %d, want between 1 and %d", filled, f.Count())
	}
}
