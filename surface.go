package hero

// Canvas is a 2D drawing context sized to the viewport. Only the particle
// field draws to it.
type Canvas interface {
	// Clear erases the whole canvas.
	Clear()
	// FillCircle draws a filled circle centered at (x, y).
	FillCircle(x, y, radius float64, c Color)
	// Resize changes the logical size. Existing content may be discarded.
	Resize(width, height int)
}

// Surface is the on-screen area a Canvas is acquired from. Acquire reports
// ok=false when no usable drawing context can be produced; callers treat
// that as degraded rendering, not an error.
type Surface interface {
	Acquire(width, height int) (c Canvas, ok bool)
}
