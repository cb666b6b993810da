package hero

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Scene geometry. The decorative overlays are authored on an 800x600 board
// and scaled to fit the viewport.
const (
	boardWidth  = 800
	boardHeight = 600

	gradientAlpha = 0.35
	gradientStrip = 4
	softSteps     = 16

	headingScale = 4
	taglineScale = 2
	labelScale   = 2
	maxContentW  = 896
)

// blobLayout is the resting place of a floating blob: an anchor relative to
// the viewport plus a pixel offset, and its diameter.
type blobLayout struct {
	ax, ay   float64
	dx, dy   float64
	diameter float64
}

var blobLayouts = [5]blobLayout{
	{0, 0, 40 + 48, 40 + 48, 96},
	{1, 1, -40 - 64, -40 - 64, 128},
	{0.5, 0.5, 40, 40, 80},
	{1, 0, -80 - 32, 80 + 32, 64},
	{0, 1, 80 + 40, -80 - 40, 80},
}

// starPath is the brand symbol, a five-pointed star on a 200x200 board.
var starPath = [5][2]float32{{100, 10}, {40, 198}, {190, 78}, {10, 78}, {160, 198}}

// renderer holds the GPU resources used to draw the banner.
type renderer struct {
	face     *text.GoXFace
	white    *ebiten.Image
	heading  *ebiten.Image
	headText string
	headDark bool
	vs       []ebiten.Vertex
	is       []uint16
}

func newRenderer() *renderer {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &renderer{
		face:  text.NewGoXFace(basicfont.Face7x13),
		white: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Draw renders the banner into screen in paint order: background, brand
// symbol, particles, gradient, glow overlays, blobs, content, scroll hint
// and the cursor glow.
func (h *Hero) Draw(screen *ebiten.Image) {
	if h.render == nil {
		h.render = newRenderer()
	}
	r := h.render
	pal := h.Palette()
	w, ht := h.env.Viewport()
	fit := math.Min(w/boardWidth, ht/boardHeight)

	screen.Fill(pal.Background.toRGBA())

	r.drawSymbol(screen, h, pal, w, ht)
	if src, ok := h.surface.(interface{ Image() *ebiten.Image }); ok && h.field.Usable() {
		if img := src.Image(); img != nil {
			screen.DrawImage(img, nil)
		}
	}
	r.drawGradient(screen, pal, h.decor.gradient.Value(), w, ht)

	glow := h.Element(LayerGlow).Translate()
	radius := 250 * fit * h.decor.glowScale.Value()
	drawSoftCircle(screen, w/2+glow.X, ht/2+glow.Y, radius,
		pal.GlowInner, pal.GlowOuter, h.decor.glowOpacity.Value(), 1)

	halo := h.Element(LayerHalo).Translate()
	drawSoftCircle(screen, w/2+halo.X, ht/2+halo.Y, 300*fit,
		pal.HaloInner, pal.HaloOuter, 1, 0.8)

	for i, b := range blobLayouts {
		t := h.Element(BlobLayer(i)).Translate()
		cx := b.ax*w + b.dx + h.decor.blobX[i].Value() + t.X
		cy := b.ay*ht + b.dy + h.decor.blobY[i].Value() + t.Y
		c := pal.Blobs[i]
		drawSoftCircle(screen, cx, cy, b.diameter, c, c.WithAlpha(0), 1, 1)
	}

	r.drawContent(screen, h, pal, w, ht)
	r.drawHint(screen, h, pal, w, ht)

	p := h.cursor.Position()
	drawSoftCircle(screen, p.X, p.Y, 32, pal.Cursor, pal.Cursor.WithAlpha(0), 1, 1)
}

// drawSymbol fills the rotating star centered in the viewport.
func (r *renderer) drawSymbol(dst *ebiten.Image, h *Hero, pal Palette, w, ht float64) {
	t := h.Element(LayerSymbol).Translate()
	angle := h.decor.symbolSpin.Value()
	sin, cos := math.Sincos(angle)
	ox := float32(w/2 + t.X)
	oy := float32(ht/2 + t.Y)

	var path vector.Path
	for i, pt := range starPath {
		x := float64(pt[0]) - 100
		y := float64(pt[1]) - 100
		px := ox + float32(x*cos-y*sin)
		py := oy + float32(x*sin+y*cos)
		if i == 0 {
			path.MoveTo(px, py)
		} else {
			path.LineTo(px, py)
		}
	}
	path.Close()
	r.fillPath(dst, &path, pal.Symbol)
}

func (r *renderer) fillPath(dst *ebiten.Image, path *vector.Path, c Color) {
	r.vs, r.is = path.AppendVerticesAndIndicesForFilling(r.vs[:0], r.is[:0])
	rgba := c.toRGBA()
	for i := range r.vs {
		r.vs[i].SrcX = 1
		r.vs[i].SrcY = 1
		r.vs[i].ColorR = float32(rgba.R) / 255
		r.vs[i].ColorG = float32(rgba.G) / 255
		r.vs[i].ColorB = float32(rgba.B) / 255
		r.vs[i].ColorA = float32(rgba.A) / 255
	}
	op := &ebiten.DrawTrianglesOptions{FillRule: ebiten.FillRuleNonZero, AntiAlias: true}
	dst.DrawTriangles(r.vs, r.is, r.white, op)
}

// drawGradient paints the four-stop gradient, four viewports wide, scrolled
// by pos in [0, 1].
func (r *renderer) drawGradient(dst *ebiten.Image, pal Palette, pos, w, ht float64) {
	for x := 0.0; x < w; x += gradientStrip {
		u := (x/w + pos*3) / 4
		c := gradientAt(pal.Gradient, 1-u).WithAlpha(gradientAlpha)
		vector.DrawFilledRect(dst, float32(x), 0, gradientStrip, float32(ht), c.toRGBA(), false)
	}
}

// gradientAt samples evenly spaced stops at t in [0, 1].
func gradientAt(stops [4]Color, t float64) Color {
	t = clamp01(t) * float64(len(stops)-1)
	i := int(t)
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	return lerpColor(stops[i], stops[i+1], t-float64(i))
}

// drawSoftCircle approximates a radial gradient from inner at the center to
// outer at stop*radius with concentric filled circles.
func drawSoftCircle(dst *ebiten.Image, cx, cy, radius float64, inner, outer Color, opacity, stop float64) {
	if radius <= 0 || opacity <= 0 {
		return
	}
	for i := softSteps; i >= 1; i-- {
		f := float64(i) / softSteps
		c := lerpColor(inner, outer, f)
		c.A = c.A * opacity / softSteps * 2
		rr := radius * stop * f
		vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(rr), c.toRGBA(), true)
	}
}

// drawContent draws the heading, the typed tagline and the call-to-action.
func (r *renderer) drawContent(dst *ebiten.Image, h *Hero, pal Palette, w, ht float64) {
	opacity, offY := h.Entrance()
	if opacity <= 0 {
		return
	}
	contentW := math.Min(w-48, maxContentW)
	y := ht*0.3 + offY

	r.updateHeading(h.opts.Heading, pal)
	if r.heading != nil {
		b := r.heading.Bounds()
		reveal := int(math.Round(float64(b.Dx()) * clamp01(h.HeadingReveal())))
		if reveal > 0 {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate((w-float64(b.Dx()))/2, y)
			op.ColorScale.ScaleAlpha(float32(opacity))
			dst.DrawImage(r.heading.SubImage(image.Rect(0, 0, reveal, b.Dy())).(*ebiten.Image), op)
		}
		y += float64(b.Dy()) + 24
	}

	charW := 7.0 * taglineScale
	lineH := 16.0 * taglineScale
	cols := max(int(contentW/charW), 1)
	fade := h.TaglineOpacity() * opacity
	ty := y + h.decor.taglineRise.Value()
	for _, line := range WrapText(h.typewriter.Revealed(), cols) {
		lw := float64(len([]rune(line))) * charW
		r.drawText(dst, line, (w-lw)/2, ty, taglineScale, pal.Tagline, fade)
		ty += lineH
	}
	y += float64(len(WrapText(h.typewriter.Text(), cols)))*lineH + 48

	label := h.opts.Button
	lw := float64(len([]rune(label))) * 7 * labelScale
	bw, bh := lw+80, 56.0
	bx := (w - bw) / 2
	button := pal.Button.WithAlpha(pal.Button.A * opacity)
	vector.DrawFilledRect(dst, float32(bx+bh/2), float32(y), float32(bw-bh), float32(bh), button.toRGBA(), true)
	vector.DrawFilledCircle(dst, float32(bx+bh/2), float32(y+bh/2), float32(bh/2), button.toRGBA(), true)
	vector.DrawFilledCircle(dst, float32(bx+bw-bh/2), float32(y+bh/2), float32(bh/2), button.toRGBA(), true)
	r.drawText(dst, label, (w-lw)/2, y+(bh-13*labelScale)/2, labelScale, pal.Label, opacity)
}

// updateHeading re-renders the heading image when the text or scheme changes.
// Each character takes its color from the left-to-right heading gradient.
func (r *renderer) updateHeading(heading string, pal Palette) {
	if r.heading != nil && r.headText == heading && r.headDark == pal.Dark {
		return
	}
	r.headText, r.headDark = heading, pal.Dark
	if r.heading != nil {
		r.heading.Deallocate()
		r.heading = nil
	}
	runes := []rune(heading)
	if len(runes) == 0 {
		return
	}
	w := len(runes) * 7 * headingScale
	r.heading = ebiten.NewImage(w, 13*headingScale)
	for i, ch := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := lerpColor(pal.Heading[0], pal.Heading[1], t)
		r.drawText(r.heading, string(ch), float64(i*7*headingScale), 0, headingScale, c, 1)
	}
}

func (r *renderer) drawHint(dst *ebiten.Image, h *Hero, pal Palette, w, ht float64) {
	a := h.HintOpacity()
	if a <= 0 {
		return
	}
	t := h.Element(LayerHint).Translate()
	hint := h.opts.Hint
	lw := float64(len([]rune(hint))) * 7 * labelScale
	r.drawText(dst, hint, (w-lw)/2+t.X, ht-40-13*labelScale+t.Y, labelScale, pal.Hint, a)
}

func (r *renderer) drawText(dst *ebiten.Image, s string, x, y, scale float64, c Color, alpha float64) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.toRGBA())
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(dst, s, r.face, op)
}
