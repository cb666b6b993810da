package hero

// LayerTag marks an element for parallax. A tag present without a
// coefficient takes the default for its kind.
type LayerTag struct {
	// Pointer marks the element for pointer parallax.
	Pointer bool
	// Depth is the pointer coefficient; nil means DefaultDepth.
	Depth *float64
	// Scroll marks the element for scroll parallax.
	Scroll bool
	// Speed is the scroll coefficient; nil means DefaultSpeed.
	Speed *float64
}

// Coefficient returns a pointer to v for use in a LayerTag.
func Coefficient(v float64) *float64 {
	return &v
}

// DepthTag tags an element for pointer parallax with the given depth.
func DepthTag(depth float64) LayerTag {
	return LayerTag{Pointer: true, Depth: Coefficient(depth)}
}

// SpeedTag tags an element for scroll parallax with the given speed.
func SpeedTag(speed float64) LayerTag {
	return LayerTag{Scroll: true, Speed: Coefficient(speed)}
}

// Tagged reports whether the tag marks any kind of parallax.
func (t LayerTag) Tagged() bool {
	return t.Pointer || t.Scroll
}

// Element is one visual layer of the banner section. Parallax writes its
// translation and renderers add it to the element's own position.
type Element struct {
	Name string
	Tag  LayerTag

	translate Vec2
}

// NewElement creates an element with the given parallax tag.
func NewElement(name string, tag LayerTag) *Element {
	return &Element{Name: name, Tag: tag}
}

// Translate returns the current parallax translation.
func (e *Element) Translate() Vec2 {
	return e.translate
}

// SetTranslate replaces the whole translation.
func (e *Element) SetTranslate(x, y float64) {
	e.translate = Vec2{x, y}
}
