package hero

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// scrollStep is the scroll distance in pixels of one wheel notch.
const scrollStep = 40

// Game runs a mounted banner in an ebiten window. It translates window input
// into Host notifications and advances the clock once per tick.
type Game struct {
	cfg     *Config
	clock   *Clock
	host    *Host
	surface *ImageSurface
	hero    *Hero
	runner  *TestRunner
	fps     fpsOverlay

	lastCursor      [2]int
	screenshotQueue []string
}

// NewGame mounts a banner sized to cfg's window.
func NewGame(cfg *Config) *Game {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	g := &Game{
		cfg:        cfg,
		clock:      NewClock(),
		host:       NewHost(float64(cfg.Width), float64(cfg.Height), cfg.PrefersDark()),
		surface:    NewImageSurface(),
		lastCursor: [2]int{-1, -1},
	}
	g.hero = Mount(g.clock, g.host, g.surface, cfg.Options())
	return g
}

// SetTestRunner attaches a scripted input runner. The window closes once the
// script is done.
func (g *Game) SetTestRunner(r *TestRunner) {
	g.runner = r
}

// Hero returns the mounted banner.
func (g *Game) Hero() *Hero {
	return g.hero
}

// Host returns the environment fed by the window.
func (g *Game) Host() *Host {
	return g.host
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.host.SetPrefersDark(!g.host.PrefersDark())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.Screenshot("manual")
	}

	if g.runner != nil {
		g.runner.Step(g.host, g)
	}
	if !g.host.ProcessInjected() {
		g.pollInput()
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	g.clock.Advance(dt)
	if g.cfg.ShowFPS {
		g.fps.update(dt.Seconds(), g.hero.Field().Count())
	}

	if g.runner != nil && g.runner.Done() && len(g.screenshotQueue) == 0 {
		return ebiten.Termination
	}
	return nil
}

// pollInput forwards real pointer movement and wheel scrolling to the host.
func (g *Game) pollInput() {
	x, y := ebiten.CursorPosition()
	if x != g.lastCursor[0] || y != g.lastCursor[1] {
		g.lastCursor = [2]int{x, y}
		g.host.MovePointer(float64(x), float64(y))
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.host.Scroll(g.host.ScrollY() - wy*scrollStep)
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.hero.Draw(screen)
	if g.cfg.ShowFPS {
		g.fps.draw(screen)
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The viewport follows the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.host.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Close unmounts the banner and releases the offscreen image.
func (g *Game) Close() {
	g.hero.Unmount()
	g.surface.Release()
}

// Run opens a window and runs the banner until the window is closed.
func Run(cfg *Config) error {
	return RunGame(NewGame(cfg))
}

// RunGame runs an already constructed game.
func RunGame(g *Game) error {
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.cfg.TPS)
	defer g.Close()
	return ebiten.RunGame(g)
}
