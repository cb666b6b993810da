package hero

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often, in seconds, the overlay text is re-rendered.
const fpsRefresh = 0.5

// fpsOverlay displays the current FPS and TPS plus the banner's particle
// count in the top-left corner.
type fpsOverlay struct {
	img     *ebiten.Image
	elapsed float64
}

func (o *fpsOverlay) update(dt float64, particles int) {
	if o.img == nil {
		// 120x48 fits three lines of debug text.
		o.img = ebiten.NewImage(120, 48)
		o.elapsed = fpsRefresh
	}
	o.elapsed += dt
	if o.elapsed < fpsRefresh {
		return
	}
	o.elapsed = 0

	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fpsText(ebiten.ActualFPS(), ebiten.ActualTPS(), particles))
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	if o.img != nil {
		screen.DrawImage(o.img, nil)
	}
}

func fpsText(fps, tps float64, particles int) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nParticles: %d", fps, tps, particles)
}
