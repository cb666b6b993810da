package hero

import (
	"math"
	"time"

	"github.com/tanema/gween/ease"
)

// Banner copy.
const (
	DefaultHeading = "Naveen Enterprises"
	DefaultTagline = "Naveen Enterprises specializes in AI, LLMs, cybersecurity, secure web development, and global software consulting. We also engage in import and export of premium products and tech solutions worldwide."
	DefaultHint    = "Scroll for more..."
	DefaultButton  = "Launch with Us"
)

// Element names of the banner section.
const (
	LayerGlow    = "glow"
	LayerHalo    = "halo"
	LayerSymbol  = "symbol"
	LayerHint    = "hint"
	LayerContent = "content"
)

// BlobLayer returns the element name of the i-th floating blob.
func BlobLayer(i int) string {
	return "blob" + string(rune('0'+i))
}

// Options configures a mounted banner.
type Options struct {
	Heading   string
	Tagline   string
	Hint      string
	Button    string
	TypeSpeed time.Duration
	Field     FieldConfig
	Debug     bool
}

// DefaultOptions returns the banner's stock copy and timing.
func DefaultOptions() Options {
	return Options{
		Heading:   DefaultHeading,
		Tagline:   DefaultTagline,
		Hint:      DefaultHint,
		Button:    DefaultButton,
		TypeSpeed: DefaultTypeSpeed,
		Field:     DefaultFieldConfig(),
	}
}

// blobMotion is the drift of one floating blob: keyframes per axis and the
// loop duration in seconds.
type blobMotion struct {
	depth    float64
	duration float64
	x, y     [3]float64
}

var blobMotions = [5]blobMotion{
	{0.03, 7, [3]float64{0, 60, 0}, [3]float64{0, -60, 0}},
	{0.03, 9, [3]float64{0, -60, 0}, [3]float64{0, 60, 0}},
	{0.04, 8, [3]float64{-30, 30, -30}, [3]float64{30, -30, 30}},
	{0.04, 6, [3]float64{0, 50, 0}, [3]float64{0, 50, 0}},
	{0.04, 10, [3]float64{0, -50, 0}, [3]float64{0, -50, 0}},
}

// decor holds the looping and one-shot tracks of the decorative layers.
type decor struct {
	gradient    *Track // background position, 0..1
	glowScale   *Track
	glowOpacity *Track
	haloSpin    *Track // radians
	symbolSpin  *Track // radians
	blobX       [5]*Track
	blobY       [5]*Track
	reveal      *Track // heading clip, 0..1
	taglineFade *Track
	taglineRise *Track
	hintFade    *Track
	entrance    *Track // section opacity
	entranceY   *Track
}

func newDecor(m *Motion) decor {
	var d decor
	d.gradient = m.Add(NewTrack(30, ease.Linear, 0, 1).Loop())
	d.glowScale = m.Add(NewTrack(5, ease.InOutSine, 1, 1.4, 1).Loop())
	d.glowOpacity = m.Add(NewTrack(5, ease.InOutSine, 0.3, 0.7, 0.3).Loop())
	d.haloSpin = m.Add(NewTrack(20, ease.Linear, 0, 2*math.Pi).Loop())
	d.symbolSpin = m.Add(NewTrack(60, ease.Linear, 0, 2*math.Pi).Loop())
	for i, b := range blobMotions {
		d.blobX[i] = m.Add(NewTrack(b.duration, ease.InOutSine, b.x[:]...).Loop())
		d.blobY[i] = m.Add(NewTrack(b.duration, ease.InOutSine, b.y[:]...).Loop())
	}
	d.reveal = m.Add(NewTrack(2, ease.InOutSine, 0, 1))
	d.taglineFade = m.Add(NewTrack(1.8, ease.OutQuad, 0, 1).Delay(1.2))
	d.taglineRise = m.Add(NewTrack(1.8, ease.OutQuad, 20, 0).Delay(1.2))
	d.hintFade = m.Add(NewTrack(2, ease.OutQuad, 0, 1).Delay(2))
	d.entrance = m.Add(NewTrack(0.6, ease.OutQuad, 0, 1))
	d.entranceY = m.Add(NewTrack(0.6, ease.OutQuad, 30, 0))
	return d
}

// Hero composes the banner: theme signal, particle field, cursor smoother,
// parallax, typewriter and the decorative motion, all scheduled on one clock
// against one environment. Every acquisition made by Mount is released by
// Unmount in reverse order.
type Hero struct {
	clock   *Clock
	env     Environment
	surface Surface
	opts    Options

	theme      *ThemeSignal
	field      *ParticleField
	cursor     *CursorSmoother
	parallax   *Parallax
	typewriter *Typewriter
	motion     *Motion
	decor      decor
	loop       *FrameLoop
	render     *renderer

	elements []*Element
	byName   map[string]*Element

	release []func()
	mounted bool
	debug   bool
	reseeds int
}

// Mount builds and starts the banner. surface may be nil, in which case the
// particle field stays inert and everything else runs.
func Mount(clock *Clock, env Environment, surface Surface, opts Options) *Hero {
	if opts.TypeSpeed <= 0 {
		opts.TypeSpeed = DefaultTypeSpeed
	}
	h := &Hero{
		clock:   clock,
		env:     env,
		surface: surface,
		opts:    opts,
		byName:  make(map[string]*Element),
		mounted: true,
	}
	if opts.Debug {
		h.SetDebugMode(true)
	}

	h.theme = NewThemeSignal(env)
	h.onUnmount(h.theme.Close)

	h.field = h.newField(h.theme.Dark())
	h.onUnmount(func() { h.field.Dispose() })

	h.cursor = StartCursorSmoother(clock, env, nil)
	h.onUnmount(h.cursor.Stop)

	h.buildElements()
	h.parallax = NewParallax(env)
	h.parallax.Register(h.elements)
	h.parallax.Start()
	h.onUnmount(h.parallax.Stop)

	h.typewriter = NewTypewriter(clock)
	h.onUnmount(h.typewriter.Start(opts.Tagline, opts.TypeSpeed))

	h.motion = &Motion{}
	h.decor = newDecor(h.motion)
	h.loop = StartLoop(clock, h.step)
	h.onUnmount(h.loop.Stop)

	h.onUnmount(h.theme.Subscribe(h.themeChanged))

	debugf("mounted: %d particles, %d parallax layers, dark=%v",
		h.field.Count(), h.parallax.Layers(), h.theme.Dark())
	return h
}

func (h *Hero) onUnmount(fn func()) {
	h.release = append(h.release, fn)
}

// Unmount stops every loop and timer and removes every listener. Safe to
// call repeatedly.
func (h *Hero) Unmount() {
	if !h.mounted {
		return
	}
	h.mounted = false
	for i := len(h.release) - 1; i >= 0; i-- {
		h.release[i]()
	}
	h.release = nil
	h.debugCheckLeaks()
	debugf("unmounted")
}

// Mounted reports whether the banner is running.
func (h *Hero) Mounted() bool {
	return h.mounted
}

func (h *Hero) newField(dark bool) *ParticleField {
	w, ht := h.env.Viewport()
	f := NewParticleField(h.surface, w, ht, dark, h.opts.Field)
	f.Start(h.clock, h.env)
	return f
}

// themeChanged rebuilds the particle field with the new palette.
func (h *Hero) themeChanged(dark bool) {
	if !h.mounted {
		return
	}
	h.field.Dispose()
	h.field = h.newField(dark)
	h.reseeds++
	debugf("theme changed: dark=%v, reseeded %d particles", dark, h.field.Count())
}

func (h *Hero) buildElements() {
	add := func(name string, tag LayerTag) {
		el := NewElement(name, tag)
		h.elements = append(h.elements, el)
		h.byName[name] = el
	}
	add(LayerGlow, DepthTag(0.02))
	add(LayerHalo, DepthTag(0.01))
	for i, b := range blobMotions {
		add(BlobLayer(i), DepthTag(b.depth))
	}
	add(LayerSymbol, DepthTag(0.01))
	add(LayerContent, LayerTag{})
	add(LayerHint, SpeedTag(0.2))
}

func (h *Hero) step(dt float64) {
	h.motion.Update(dt)
	if h.debug {
		h.debugLog(h.stats())
	}
}

// SetDebugMode enables or disables debug logging to stderr.
func (h *Hero) SetDebugMode(on bool) {
	h.debug = on
	SetDebug(on)
}

// Dark reports the current color scheme.
func (h *Hero) Dark() bool {
	return h.theme.Dark()
}

// Palette returns the palette for the current color scheme.
func (h *Hero) Palette() Palette {
	return h.theme.Palette()
}

// Theme returns the banner's theme signal.
func (h *Hero) Theme() *ThemeSignal {
	return h.theme
}

// Field returns the current particle field. It is replaced on every theme
// change.
func (h *Hero) Field() *ParticleField {
	return h.field
}

// Reseeds returns the number of times the field was rebuilt for a theme
// change.
func (h *Hero) Reseeds() int {
	return h.reseeds
}

// Cursor returns the cursor smoother.
func (h *Hero) Cursor() *CursorSmoother {
	return h.cursor
}

// Parallax returns the parallax controller.
func (h *Hero) Parallax() *Parallax {
	return h.parallax
}

// Typewriter returns the tagline typewriter.
func (h *Hero) Typewriter() *Typewriter {
	return h.typewriter
}

// Motion returns the decorative motion tracks.
func (h *Hero) Motion() *Motion {
	return h.motion
}

// Elements returns the section's layers in paint order.
func (h *Hero) Elements() []*Element {
	return h.elements
}

// Element returns the layer with the given name, or nil.
func (h *Hero) Element(name string) *Element {
	return h.byName[name]
}

// Options returns the options the banner was mounted with.
func (h *Hero) Options() Options {
	return h.opts
}

// HeadingReveal returns the revealed fraction of the heading, 0..1.
func (h *Hero) HeadingReveal() float64 {
	return h.decor.reveal.Value()
}

// TaglineOpacity returns the tagline fade-in opacity, 0..1.
func (h *Hero) TaglineOpacity() float64 {
	return h.decor.taglineFade.Value()
}

// HintOpacity returns the scroll hint fade-in opacity, 0..1.
func (h *Hero) HintOpacity() float64 {
	return h.decor.hintFade.Value()
}

// Entrance returns the section's entrance opacity and vertical offset.
func (h *Hero) Entrance() (opacity, offsetY float64) {
	return h.decor.entrance.Value(), h.decor.entranceY.Value()
}

// GlowPulse returns the pulsing glow's scale and opacity.
func (h *Hero) GlowPulse() (scale, opacity float64) {
	return h.decor.glowScale.Value(), h.decor.glowOpacity.Value()
}

// Rotations returns the halo and brand symbol angles in radians.
func (h *Hero) Rotations() (halo, symbol float64) {
	return h.decor.haloSpin.Value(), h.decor.symbolSpin.Value()
}

// BlobOffset returns the drift offset of the i-th floating blob.
func (h *Hero) BlobOffset(i int) Vec2 {
	return Vec2{h.decor.blobX[i].Value(), h.decor.blobY[i].Value()}
}
