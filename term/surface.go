// Package term renders the banner in a terminal with tcell. Each terminal
// cell stands for a block of viewport pixels, so the banner logic runs
// unchanged at pixel scale.
package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/naveen-enterprises/hero"
)

// Default pixel size of one terminal cell.
const (
	CellWidth  = 8
	CellHeight = 16
)

// cell is one terminal cell of the particle layer.
type cell struct {
	glyph rune
	color hero.Color
}

// Surface is a hero.Surface backed by a grid of terminal cells.
type Surface struct {
	cellW, cellH float64
	canvas       *Canvas
}

// NewSurface creates a surface whose cells cover cellW x cellH pixels.
// Non-positive sizes use CellWidth and CellHeight.
func NewSurface(cellW, cellH float64) *Surface {
	if cellW <= 0 {
		cellW = CellWidth
	}
	if cellH <= 0 {
		cellH = CellHeight
	}
	return &Surface{cellW: cellW, cellH: cellH}
}

// Acquire returns a canvas covering width x height pixels. A viewport
// smaller than one cell cannot be drawn on.
func (s *Surface) Acquire(width, height int) (hero.Canvas, bool) {
	cols, rows := s.cells(width, height)
	if cols <= 0 || rows <= 0 {
		return nil, false
	}
	s.canvas = &Canvas{surface: s}
	s.canvas.Resize(width, height)
	return s.canvas, true
}

// Canvas returns the last acquired canvas, or nil.
func (s *Surface) Canvas() *Canvas {
	return s.canvas
}

func (s *Surface) cells(width, height int) (cols, rows int) {
	return int(float64(width) / s.cellW), int(float64(height) / s.cellH)
}

// Canvas holds the particle layer as terminal cells.
type Canvas struct {
	surface    *Surface
	cols, rows int
	grid       []cell
}

// Clear empties every cell.
func (c *Canvas) Clear() {
	clear(c.grid)
}

// FillCircle marks the cell under (x, y) with a glyph sized by radius. The
// larger particle wins when two share a cell.
func (c *Canvas) FillCircle(x, y, radius float64, col hero.Color) {
	cx := int(x / c.surface.cellW)
	cy := int(y / c.surface.cellH)
	if x < 0 || y < 0 || cx >= c.cols || cy >= c.rows {
		return
	}
	g := glyphFor(radius)
	i := cy*c.cols + cx
	if glyphRank(c.grid[i].glyph) >= glyphRank(g) {
		return
	}
	c.grid[i] = cell{glyph: g, color: col}
}

// Resize reallocates the grid for a new pixel size, clearing it.
func (c *Canvas) Resize(width, height int) {
	cols, rows := c.surface.cells(width, height)
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c.cols, c.rows = cols, rows
	c.grid = make([]cell, cols*rows)
}

// Size returns the grid size in cells.
func (c *Canvas) Size() (cols, rows int) {
	return c.cols, c.rows
}

// Cell returns the glyph and color at a grid position. Empty cells return 0.
func (c *Canvas) Cell(col, row int) (rune, hero.Color) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return 0, hero.Color{}
	}
	v := c.grid[row*c.cols+col]
	return v.glyph, v.color
}

// draw copies the non-empty cells to screen over background bg.
func (c *Canvas) draw(screen tcell.Screen, bg hero.Color) {
	base := tcell.StyleDefault.Background(tcellColor(bg))
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			v := c.grid[row*c.cols+col]
			if v.glyph == 0 {
				continue
			}
			screen.SetContent(col, row, v.glyph, nil, base.Foreground(blend(v.color, bg)))
		}
	}
}

var glyphs = []rune{'·', '•', '●'}

func glyphFor(radius float64) rune {
	switch {
	case radius < 2:
		return glyphs[0]
	case radius < 3:
		return glyphs[1]
	default:
		return glyphs[2]
	}
}

func glyphRank(g rune) int {
	for i, v := range glyphs {
		if v == g {
			return i + 1
		}
	}
	return 0
}

// blend composites a translucent color over an opaque background.
func blend(c, bg hero.Color) tcell.Color {
	a := c.A
	return tcellColor(hero.Color{
		R: bg.R + (c.R-bg.R)*a,
		G: bg.G + (c.G-bg.G)*a,
		B: bg.B + (c.B-bg.B)*a,
		A: 1,
	})
}

func tcellColor(c hero.Color) tcell.Color {
	return tcell.NewRGBColor(channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int32 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return int32(v*255 + 0.5)
}
