package hero

// Palette holds every color the banner draws with for one color scheme.
// Renderers receive a Palette (or the dark flag it was built from) and never
// query the environment themselves.
type Palette struct {
	Dark bool

	Background Color
	Particle   Color

	// Gradient is the drifting four-stop background gradient.
	Gradient [4]Color

	// GlowInner/GlowOuter are the radial stops of the pulsing glow overlay.
	GlowInner, GlowOuter Color
	// HaloInner/HaloOuter are the radial stops of the rotating halo overlay.
	HaloInner, HaloOuter Color

	// Blobs are the five floating blurred circles, in layer order.
	Blobs [5]Color

	Cursor  Color
	Symbol  Color
	Heading [2]Color // left-to-right heading gradient
	Tagline Color
	Hint    Color
	Button  Color
	Label   Color
}

// Tailwind shades used by the banner.
var (
	purple600 = RGB8(0x93, 0x33, 0xea)
	purple300 = RGB8(0xd8, 0xb4, 0xfe)
	purple500 = RGB8(0xa8, 0x55, 0xf7)
	pink600   = RGB8(0xdb, 0x27, 0x77)
	pink300   = RGB8(0xf9, 0xa8, 0xd4)
	cyan500   = RGB8(0x06, 0xb6, 0xd4)
	cyan300   = RGB8(0x67, 0xe8, 0xf9)
	yellow500 = RGB8(0xea, 0xb3, 0x08)
	yellow300 = RGB8(0xfd, 0xe0, 0x47)
	green500  = RGB8(0x22, 0xc5, 0x5e)
	green300  = RGB8(0x86, 0xef, 0xac)
	blue300   = RGB8(0x93, 0xc5, 0xfd)
	indigo300 = RGB8(0xa5, 0xb4, 0xfc)
	gray300   = RGB8(0xd1, 0xd5, 0xdb)
	gray400   = RGB8(0x9c, 0xa3, 0xaf)
	gray700   = RGB8(0x37, 0x41, 0x51)
	gray900   = RGB8(0x11, 0x18, 0x27)
	primary   = RGB8(0x4a, 0x6c, 0xf7)
)

var (
	black = Color{0, 0, 0, 1}
	white = Color{1, 1, 1, 1}
)

var darkPalette = Palette{
	Dark:       true,
	Background: black,
	Particle:   white.WithAlpha(0.3),
	Gradient: [4]Color{
		RGB8(0x1e, 0x3c, 0x72), RGB8(0x2a, 0x52, 0x98),
		RGB8(0x4a, 0x6c, 0xf7), RGB8(0x2a, 0x52, 0x98),
	},
	GlowInner: white.WithAlpha(0.3),
	GlowOuter: black.WithAlpha(0),
	HaloInner: RGB8(0xff, 0x00, 0xff).WithAlpha(0.3),
	HaloOuter: RGB8(0x00, 0x00, 0xff).WithAlpha(0),
	Blobs: [5]Color{
		purple600.WithAlpha(0.4), pink600.WithAlpha(0.4), cyan500.WithAlpha(0.5),
		yellow500.WithAlpha(0.3), green500.WithAlpha(0.3),
	},
	Cursor:  blue300.WithAlpha(0.7),
	Symbol:  white.WithAlpha(0.2),
	Heading: [2]Color{indigo300, purple500},
	Tagline: gray300,
	Hint:    gray400.WithAlpha(0.7),
	Button:  primary,
	Label:   white,
}

var lightPalette = Palette{
	Dark:       false,
	Background: white,
	Particle:   black.WithAlpha(0.3),
	Gradient: [4]Color{
		RGB8(0xff, 0x9a, 0x9e), RGB8(0xfe, 0xcf, 0xef),
		RGB8(0xf6, 0xd3, 0x65), RGB8(0xfd, 0xa0, 0x85),
	},
	GlowInner: black.WithAlpha(0.2),
	GlowOuter: white.WithAlpha(0),
	HaloInner: RGB8(0x44, 0x44, 0x44).WithAlpha(0.2),
	HaloOuter: RGB8(0xcc, 0xcc, 0xcc).WithAlpha(0),
	Blobs: [5]Color{
		purple300.WithAlpha(0.4), pink300.WithAlpha(0.4), cyan300.WithAlpha(0.5),
		yellow300.WithAlpha(0.3), green300.WithAlpha(0.3),
	},
	Cursor:  blue300.WithAlpha(0.7),
	Symbol:  black.WithAlpha(0.2),
	Heading: [2]Color{RGB8(0x37, 0x41, 0x51), gray400},
	Tagline: gray700,
	Hint:    gray400.WithAlpha(0.7),
	Button:  primary,
	Label:   white,
}

// PaletteFor returns the palette for the given color scheme.
func PaletteFor(dark bool) Palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}

// ParticleColor returns the translucent particle fill for a color scheme:
// light particles on a dark background, dark particles on a light one.
func ParticleColor(dark bool) Color {
	return PaletteFor(dark).Particle
}
