package hero

import (
	"math"
	"math/rand/v2"
)

// Particle is a point that drifts across the field and bounces off its edges.
// Velocities are in pixels per tick.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// FieldConfig controls how a ParticleField is seeded.
type FieldConfig struct {
	// PixelsPerParticle is the viewport width that adds one particle.
	PixelsPerParticle float64
	// BaseCount is added to the width-derived count.
	BaseCount int
	// Speed is the per-axis velocity range in pixels per tick.
	Speed Range
	// Radius is the particle radius range in pixels.
	Radius Range
	// Rand seeds positions, velocities and radii. Nil uses the global source.
	Rand *rand.Rand
}

// DefaultFieldConfig returns the seeding used by the banner.
func DefaultFieldConfig() FieldConfig {
	return FieldConfig{
		PixelsPerParticle: 10,
		BaseCount:         50,
		Speed:             Range{-0.25, 0.25},
		Radius:            Range{1, 4},
	}
}

func (cfg FieldConfig) withDefaults() FieldConfig {
	def := DefaultFieldConfig()
	if cfg.PixelsPerParticle <= 0 {
		cfg.PixelsPerParticle = def.PixelsPerParticle
	}
	if cfg.BaseCount < 0 {
		cfg.BaseCount = 0
	}
	if cfg.Speed == (Range{}) {
		cfg.Speed = def.Speed
	}
	if cfg.Radius == (Range{}) {
		cfg.Radius = def.Radius
	}
	return cfg
}

// Count returns the number of particles seeded for a viewport width.
func (cfg FieldConfig) Count(viewportWidth float64) int {
	cfg = cfg.withDefaults()
	if viewportWidth < 0 {
		viewportWidth = 0
	}
	return int(math.Floor(viewportWidth/cfg.PixelsPerParticle)) + cfg.BaseCount
}

// ParticleCount returns floor(viewportWidth/10) + 50, the banner's particle
// count for a viewport width.
func ParticleCount(viewportWidth float64) int {
	return DefaultFieldConfig().Count(viewportWidth)
}

// ParticleField owns a fixed set of particles and redraws them onto its
// canvas once per frame. The particle count is fixed at creation; resizing
// only moves the bounds.
type ParticleField struct {
	canvas    Canvas
	particles []Particle
	width     float64
	height    float64
	dark      bool
	color     Color

	loop      *FrameLoop
	resizeSub Subscription
	ticks     uint64
	disposed  bool
}

// NewParticleField acquires a canvas of the viewport size from surface and
// seeds the particles. When no canvas is available the field is created
// empty and inert: it never starts a loop and never draws.
func NewParticleField(surface Surface, width, height float64, dark bool, cfg FieldConfig) *ParticleField {
	f := &ParticleField{
		width:  width,
		height: height,
		dark:   dark,
		color:  ParticleColor(dark),
	}
	if surface == nil {
		return f
	}
	canvas, ok := surface.Acquire(int(width), int(height))
	if !ok || canvas == nil {
		return f
	}
	f.canvas = canvas

	cfg = cfg.withDefaults()
	n := cfg.Count(width)
	f.particles = make([]Particle, n)
	for i := range f.particles {
		p := &f.particles[i]
		p.X = Range{0, width}.Random(cfg.Rand)
		p.Y = Range{0, height}.Random(cfg.Rand)
		p.Radius = cfg.Radius.Random(cfg.Rand)
		p.VX = cfg.Speed.Random(cfg.Rand)
		p.VY = cfg.Speed.Random(cfg.Rand)
	}
	return f
}

// Usable reports whether the field acquired a drawing context.
func (f *ParticleField) Usable() bool {
	return f.canvas != nil
}

// Start draws the first frame immediately, then redraws on every clock frame
// and follows env resizes. It does nothing on an unusable or disposed field.
func (f *ParticleField) Start(clock *Clock, env Environment) {
	if f.canvas == nil || f.disposed || f.loop != nil {
		return
	}
	f.Tick()
	f.loop = StartLoop(clock, func(float64) { f.Tick() })
	if env != nil {
		f.resizeSub = env.OnResize(f.Resize)
	}
}

// Running reports whether the frame loop is active.
func (f *ParticleField) Running() bool {
	return f.loop.Running()
}

// Tick advances every particle by one step and redraws the canvas.
func (f *ParticleField) Tick() {
	if f.canvas == nil || f.disposed {
		return
	}
	f.ticks++
	f.canvas.Clear()
	for i := range f.particles {
		p := &f.particles[i]
		p.X, p.VX = reflectAxis(p.X, p.VX, f.width)
		p.Y, p.VY = reflectAxis(p.Y, p.VY, f.height)
		f.canvas.FillCircle(p.X, p.Y, p.Radius, f.color)
	}
}

// reflectAxis moves pos by vel inside [0, limit). Crossing a bound negates
// the velocity and mirrors the position back inside. A position already
// outside (the bounds shrank) only turns the velocity inward, so the
// particle drifts back on its own.
func reflectAxis(pos, vel, limit float64) (float64, float64) {
	if pos < 0 {
		vel = math.Abs(vel)
		return pos + vel, vel
	}
	if pos >= limit {
		vel = -math.Abs(vel)
		return pos + vel, vel
	}
	next := pos + vel
	if next >= 0 && next < limit {
		return next, vel
	}
	vel = -vel
	if next < 0 {
		next = -next
	} else {
		next = 2*limit - next
	}
	if next < 0 {
		next = 0
	}
	if next >= limit {
		next = math.Nextafter(limit, 0)
	}
	return next, vel
}

// Resize updates the bounds and the canvas size. Particles are not reseeded
// or moved.
func (f *ParticleField) Resize(width, height float64) {
	if f.disposed || width <= 0 || height <= 0 {
		return
	}
	f.width, f.height = width, height
	if f.canvas != nil {
		f.canvas.Resize(int(width), int(height))
	}
}

// Dispose stops the frame loop and removes the resize listener. Safe to call
// repeatedly and on a field that was never started.
func (f *ParticleField) Dispose() {
	if f.disposed {
		return
	}
	f.disposed = true
	f.loop.Stop()
	f.resizeSub.Remove()
}

// Particles returns a copy of the current particle states.
func (f *ParticleField) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Count returns the number of particles.
func (f *ParticleField) Count() int {
	return len(f.particles)
}

// Bounds returns the current logical width and height.
func (f *ParticleField) Bounds() (width, height float64) {
	return f.width, f.height
}

// Dark reports which palette the field was seeded with.
func (f *ParticleField) Dark() bool {
	return f.dark
}

// Ticks returns the number of completed ticks.
func (f *ParticleField) Ticks() uint64 {
	return f.ticks
}
