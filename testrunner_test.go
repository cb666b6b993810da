package hero

import (
	"strings"
	"testing"
)

type shotLog struct {
	labels []string
}

func (s *shotLog) Screenshot(label string) {
	s.labels = append(s.labels, label)
}

func TestLoadTestScriptErrors(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		wantErr string
	}{
		{"bad json", `{"steps": [`, "parse test script"},
		{"no steps", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "jump"}]}`, `unknown action "jump"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTestScript([]byte(tt.script))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestTestRunnerSequence(t *testing.T) {
	script := `{"steps": [
		{"action": "screenshot", "label": "start"},
		{"action": "sweep", "x": 0, "y": 0, "toX": 30, "toY": 0, "frames": 3},
		{"action": "wait", "frames": 2},
		{"action": "theme", "dark": false},
		{"action": "screenshot", "label": "light"}
	]}`
	r, err := LoadTestScript([]byte(script))
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}
	host := NewHost(800, 600, true)
	shots := &shotLog{}

	frames := 0
	for !r.Done() && frames < 100 {
		r.Step(host, shots)
		host.ProcessInjected()
		frames++
	}
	if !r.Done() {
		t.Fatal("runner never finished")
	}
	// screenshot, sweep + 2 draining frames, wait x2, theme, screenshot
	if frames != 8 {
		t.Errorf("frames = %d, want 8", frames)
	}
	if strings.Join(shots.labels, ",") != "start,light" {
		t.Errorf("screenshots = %v, want [start light]", shots.labels)
	}
	if host.Pointer() != (Vec2{30, 0}) {
		t.Errorf("Pointer = %v, want {30 0}", host.Pointer())
	}
	if host.PrefersDark() {
		t.Error("theme step did not switch to light")
	}

	r.Step(host, shots)
	if len(shots.labels) != 2 {
		t.Error("finished runner kept stepping")
	}
}

func TestTestRunnerWaitsForInputToDrain(t *testing.T) {
	r, err := LoadTestScript([]byte(`{"steps": [
		{"action": "sweep", "toX": 10, "frames": 5},
		{"action": "screenshot", "label": "after"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	host := NewHost(800, 600, true)
	shots := &shotLog{}
	r.Step(host, shots)
	for i := 0; i < 3; i++ {
		host.ProcessInjected()
		r.Step(host, shots)
	}
	if len(shots.labels) != 0 {
		t.Error("screenshot taken before the sweep finished")
	}
	for host.ProcessInjected() {
	}
	r.Step(host, shots)
	if len(shots.labels) != 1 || !r.Done() {
		t.Errorf("labels %v done %v, want [after] true", shots.labels, r.Done())
	}
}
