// Package hero is the animated hero-banner engine for [Ebitengine].
//
// A banner is a drifting particle field, a glow that trails the pointer, a
// set of layers that shift with the pointer and the scroll position, and a
// tagline revealed one character at a time, all on top of a few looping
// decorative tweens (via [gween]). Everything is scheduled on one [Clock]
// and reads its input from one [Environment].
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	cfg := hero.DefaultConfig()
//	cfg.Theme = hero.ThemeLight
//	if err := hero.Run(cfg); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, drive the pieces yourself. The clock only moves when
// [Clock.Advance] is called, and [Host] turns native input into
// environment notifications:
//
//	clock := hero.NewClock()
//	host := hero.NewHost(1280, 720, true)
//	banner := hero.Mount(clock, host, hero.NewImageSurface(), hero.DefaultOptions())
//	defer banner.Unmount()
//
//	host.MovePointer(300, 200)
//	clock.Advance(time.Second / 60)
//	banner.Draw(screen)
//
// # Teardown
//
// Every loop, timer and listener a component installs is released by its
// Stop, Dispose or Unmount method, and each of those is safe to call more
// than once. After [Hero.Unmount] the clock has nothing pending and the
// host has no listeners left.
//
// # Terminal
//
// The term subpackage renders the same banner with tcell, one terminal cell
// per block of pixels.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package hero
