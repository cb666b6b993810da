package hero

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageSurface is a Surface backed by an offscreen ebiten image. The banner
// renderer composites Image() into the frame.
type ImageSurface struct {
	canvas *imageCanvas
}

// NewImageSurface creates a surface with no image allocated yet.
func NewImageSurface() *ImageSurface {
	return &ImageSurface{}
}

// Acquire allocates the offscreen image. Non-positive sizes cannot produce a
// drawing context.
func (s *ImageSurface) Acquire(width, height int) (Canvas, bool) {
	if width <= 0 || height <= 0 {
		return nil, false
	}
	s.Release()
	s.canvas = &imageCanvas{image: ebiten.NewImage(width, height)}
	return s.canvas, true
}

// Image returns the current offscreen image, or nil before Acquire.
func (s *ImageSurface) Image() *ebiten.Image {
	if s.canvas == nil {
		return nil
	}
	return s.canvas.image
}

// Release deallocates the offscreen image. Safe to call repeatedly.
func (s *ImageSurface) Release() {
	if s.canvas != nil && s.canvas.image != nil {
		s.canvas.image.Deallocate()
		s.canvas.image = nil
	}
	s.canvas = nil
}

type imageCanvas struct {
	image *ebiten.Image
}

func (c *imageCanvas) Clear() {
	if c.image != nil {
		c.image.Clear()
	}
}

func (c *imageCanvas) FillCircle(x, y, radius float64, col Color) {
	if c.image == nil {
		return
	}
	vector.DrawFilledCircle(c.image, float32(x), float32(y), float32(radius), col.toRGBA(), true)
}

// Resize reallocates the image, which clears it just like resizing an HTML
// canvas does.
func (c *imageCanvas) Resize(width, height int) {
	if width <= 0 || height <= 0 || c.image == nil {
		return
	}
	b := c.image.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return
	}
	c.image.Deallocate()
	c.image = ebiten.NewImage(width, height)
}
