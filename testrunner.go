package hero

import (
	"encoding/json"
	"fmt"
)

// testStep is a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Dark   bool    `json:"dark,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// knownActions lists the actions a script may use.
var knownActions = map[string]bool{
	"move": true, "sweep": true, "scroll": true, "theme": true,
	"resize": true, "wait": true, "screenshot": true,
}

// screenshotter receives screenshot requests from a TestRunner.
type screenshotter interface {
	Screenshot(label string)
}

// TestRunner sequences injected input events and screenshots across frames
// for automated visual testing.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether every step has been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame, queueing input on host and
// screenshots on shots. It waits for queued input to drain before moving to
// the next step.
func (r *TestRunner) Step(host *Host, shots screenshotter) {
	if r.done {
		return
	}
	if host.Injected() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		if shots != nil {
			shots.Screenshot(st.Label)
		}
	case "move":
		host.InjectMove(st.X, st.Y)
	case "sweep":
		host.InjectSweep(st.X, st.Y, st.ToX, st.ToY, st.Frames)
	case "scroll":
		host.InjectScroll(st.Y)
	case "theme":
		host.InjectTheme(st.Dark)
	case "resize":
		host.InjectResize(st.Width, st.Height)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && host.Injected() == 0 {
		r.done = true
	}
}
