package hero

import (
	"strings"
	"time"
	"unicode/utf8"
)

// DefaultTypeSpeed is the reveal interval used when none is given.
const DefaultTypeSpeed = 50 * time.Millisecond

// Cancel stops the reveal it was returned for. Safe to call repeatedly, and
// a no-op once a newer Start has replaced that reveal.
type Cancel func()

// Typewriter reveals a string one character at a time on a fixed interval.
// Characters are runes, so multi-byte text reveals cleanly.
type Typewriter struct {
	clock    *Clock
	text     string
	speed    time.Duration
	runes    int // rune count of text
	revealed int // revealed rune count
	offset   int // byte offset of the first unrevealed rune
	timer    *Timer
	run      uint64 // incremented by every Start
	onReveal func(revealed string)
}

// NewTypewriter creates an idle typewriter scheduled on clock.
func NewTypewriter(clock *Clock) *Typewriter {
	return &Typewriter{clock: clock}
}

// OnReveal sets a callback invoked after each revealed character.
func (tw *Typewriter) OnReveal(fn func(revealed string)) {
	tw.onReveal = fn
}

// Start cancels any reveal in progress, resets to nothing revealed and
// reveals text one character every speed. A non-positive speed uses
// DefaultTypeSpeed. Empty text is complete at once and schedules nothing.
func (tw *Typewriter) Start(text string, speed time.Duration) Cancel {
	tw.Stop()
	tw.run++
	run := tw.run
	cancel := func() {
		if tw.run == run {
			tw.Stop()
		}
	}
	if speed <= 0 {
		speed = DefaultTypeSpeed
	}
	tw.text = text
	tw.speed = speed
	tw.runes = utf8.RuneCountInString(text)
	tw.revealed = 0
	tw.offset = 0
	if tw.runes == 0 {
		return cancel
	}
	tw.timer = tw.clock.Every(speed, tw.tick)
	return cancel
}

func (tw *Typewriter) tick() {
	if tw.revealed >= tw.runes {
		tw.Stop()
		return
	}
	_, size := utf8.DecodeRuneInString(tw.text[tw.offset:])
	tw.offset += size
	tw.revealed++
	if tw.revealed == tw.runes {
		tw.Stop()
	}
	if tw.onReveal != nil {
		tw.onReveal(tw.Revealed())
	}
}

// Stop cancels the interval timer. The revealed text is kept.
func (tw *Typewriter) Stop() {
	tw.timer.Stop()
	tw.timer = nil
}

// Revealed returns the text revealed so far.
func (tw *Typewriter) Revealed() string {
	return tw.text[:tw.offset]
}

// RevealedCount returns the number of characters revealed so far.
func (tw *Typewriter) RevealedCount() int {
	return tw.revealed
}

// Text returns the full text being revealed.
func (tw *Typewriter) Text() string {
	return tw.text
}

// Speed returns the reveal interval.
func (tw *Typewriter) Speed() time.Duration {
	return tw.speed
}

// Done reports whether the whole text is revealed.
func (tw *Typewriter) Done() bool {
	return tw.revealed >= tw.runes
}

// Running reports whether a reveal timer is active.
func (tw *Typewriter) Running() bool {
	return tw.timer.Active()
}

// WrapText breaks s into lines of at most cols characters at spaces. Words
// longer than a line are split.
func WrapText(s string, cols int) []string {
	if cols < 1 {
		cols = 1
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		var line []rune
		for _, word := range strings.Fields(para) {
			wr := []rune(word)
			if len(line) > 0 && len(line)+1+len(wr) > cols {
				lines = append(lines, string(line))
				line = line[:0]
			}
			for len(wr) > cols {
				lines = append(lines, string(wr[:cols]))
				wr = wr[cols:]
			}
			if len(line) > 0 {
				line = append(line, ' ')
			}
			line = append(line, wr...)
		}
		if len(line) > 0 {
			lines = append(lines, string(line))
		}
	}
	return lines
}
