package term

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/naveen-enterprises/hero"
)

// frameInterval is the terminal redraw period, about 60 frames per second.
const frameInterval = 16 * time.Millisecond

// scrollStep is the scroll distance in pixels of one wheel notch.
const scrollStep = 40

// Runner drives a mounted banner on a tcell screen.
type Runner struct {
	screen  tcell.Screen
	clock   *hero.Clock
	host    *hero.Host
	surface *Surface
	hero    *hero.Hero
}

// NewRunner mounts a banner sized to screen. The screen must already be
// initialized.
func NewRunner(screen tcell.Screen, cfg *hero.Config) *Runner {
	if cfg == nil {
		cfg = hero.DefaultConfig()
	}
	surface := NewSurface(CellWidth, CellHeight)
	cols, rows := screen.Size()
	r := &Runner{
		screen:  screen,
		clock:   hero.NewClock(),
		host:    hero.NewHost(float64(cols)*surface.cellW, float64(rows)*surface.cellH, cfg.PrefersDark()),
		surface: surface,
	}
	r.hero = hero.Mount(r.clock, r.host, surface, cfg.Options())
	return r
}

// Hero returns the mounted banner.
func (r *Runner) Hero() *hero.Hero {
	return r.hero
}

// Host returns the environment fed by terminal events.
func (r *Runner) Host() *hero.Host {
	return r.host
}

// HandleEvent translates one terminal event. It returns false when the user
// asked to quit.
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 't':
				r.host.SetPrefersDark(!r.host.PrefersDark())
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		r.host.MovePointer((float64(x)+0.5)*r.surface.cellW, (float64(y)+0.5)*r.surface.cellH)
		switch {
		case ev.Buttons()&tcell.WheelUp != 0:
			r.host.Scroll(r.host.ScrollY() - scrollStep)
		case ev.Buttons()&tcell.WheelDown != 0:
			r.host.Scroll(r.host.ScrollY() + scrollStep)
		}
	case *tcell.EventResize:
		cols, rows := ev.Size()
		r.host.Resize(float64(cols)*r.surface.cellW, float64(rows)*r.surface.cellH)
		r.screen.Sync()
	}
	return true
}

// Frame advances the clock by dt and redraws the screen.
func (r *Runner) Frame(dt time.Duration) {
	r.clock.Advance(dt)
	r.Draw()
	r.screen.Show()
}

// Draw paints the particle layer, the text and the cursor glow into the
// screen's back buffer.
func (r *Runner) Draw() {
	pal := r.hero.Palette()
	bg := tcell.StyleDefault.Background(tcellColor(pal.Background)).Foreground(tcellColor(pal.Tagline))
	r.screen.SetStyle(bg)
	r.screen.Clear()

	if c := r.surface.Canvas(); c != nil && r.hero.Field().Usable() {
		c.draw(r.screen, pal.Background)
	}

	cols, rows := r.screen.Size()
	opacity, offY := r.hero.Entrance()
	row := int(float64(rows)*0.3+offY/r.surface.cellH) - 1

	if opacity > 0 {
		heading := []rune(r.hero.Options().Heading)
		shown := int(math.Round(float64(len(heading)) * r.hero.HeadingReveal()))
		x := (cols - len(heading)) / 2
		for i := 0; i < shown; i++ {
			t := 0.0
			if len(heading) > 1 {
				t = float64(i) / float64(len(heading)-1)
			}
			c := lerp(pal.Heading[0], pal.Heading[1], t)
			r.screen.SetContent(x+i, row, heading[i], nil, bg.Foreground(tcellColor(c)).Bold(true))
		}
		row += 2

		width := min(cols-4, 72)
		fade := r.hero.TaglineOpacity() * opacity
		tagline := bg.Foreground(blend(pal.Tagline.WithAlpha(fade), pal.Background))
		for i, line := range hero.WrapText(r.hero.Typewriter().Revealed(), width) {
			r.putString((cols-len([]rune(line)))/2, row+i, line, tagline)
		}
		row += len(hero.WrapText(r.hero.Typewriter().Text(), width)) + 1

		label := fmt.Sprintf("[ %s ]", r.hero.Options().Button)
		button := tcell.StyleDefault.Background(tcellColor(pal.Button)).Foreground(tcellColor(pal.Label)).Bold(true)
		r.putString((cols-len([]rune(label)))/2, row, label, button)
	}

	if a := r.hero.HintOpacity(); a > 0 {
		hint := r.hero.Options().Hint
		t := r.hero.Element(hero.LayerHint).Translate()
		hy := rows - 3 + int(t.Y/r.surface.cellH)
		r.putString((cols-len([]rune(hint)))/2, hy, hint, bg.Foreground(blend(pal.Hint.WithAlpha(pal.Hint.A*a), pal.Background)))
	}

	p := r.hero.Cursor().Position()
	cx, cy := int(p.X/r.surface.cellW), int(p.Y/r.surface.cellH)
	if cx >= 0 && cy >= 0 && cx < cols && cy < rows {
		r.screen.SetContent(cx, cy, '◉', nil, bg.Foreground(blend(pal.Cursor, pal.Background)))
	}
}

func (r *Runner) putString(x, y int, s string, style tcell.Style) {
	_, rows := r.screen.Size()
	if y < 0 || y >= rows {
		return
	}
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// Run polls input on a separate goroutine and redraws on a ticker until the
// user quits or ctx is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(r.screen, events, done)

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !r.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			r.Frame(now.Sub(last))
			last = now
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done is
// closed. It never blocks on a send once done is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// Close unmounts the banner.
func (r *Runner) Close() {
	r.hero.Unmount()
}

// Run opens the terminal, runs the banner until the user quits and restores
// the terminal.
func Run(ctx context.Context, cfg *hero.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	r := NewRunner(screen, cfg)
	defer r.Close()
	return r.Run(ctx)
}

func lerp(a, b hero.Color, t float64) hero.Color {
	return hero.Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}
