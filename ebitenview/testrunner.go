package ebitenview

import (
	"encoding/json"
	"fmt"

	"github.com/phanxgames/panzoom"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	DX     float64 `json:"dx,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Dir    int     `json:"dir,omitempty"`
	Times  int     `json:"times,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"zoom": true, "pan": true, "click": true, "dblclick": true, "drag": true,
	"reset": true, "wait": true, "screenshot": true,
}

// TestRunner sequences injected input and screenshots across frames for
// automated visual testing. Attach it to a Viewer with SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script:
//
//	{"steps": [
//		{"action": "zoom", "x": 400, "y": 300, "dir": 1, "times": 5},
//		{"action": "pan", "dx": -100, "dy": 0},
//		{"action": "dblclick", "x": 420, "y": 310},
//		{"action": "screenshot", "label": "marker"}
//	]}
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

// SetTestRunner attaches a runner. Its steps are executed from Update before
// input processing, and the game ends once it is done.
func (v *Viewer) SetTestRunner(runner *TestRunner) {
	v.runner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *TestRunner) step(v *Viewer) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(v.injectQueue) > 0 {
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
		v.Screenshot(st.Label)
	case "zoom":
		dir := panzoom.DirPositive
		if st.Dir < 0 {
			dir = panzoom.DirNegative
		}
		for range max(st.Times, 1) {
			v.InjectZoom(st.X, st.Y, dir)
		}
	case "pan":
		v.InjectPan(st.DX, st.DY)
	case "click":
		v.InjectClick(st.X, st.Y)
	case "dblclick":
		v.InjectDoubleClick(st.X, st.Y)
	case "drag":
		v.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "reset":
		v.InjectReset()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(v.injectQueue) == 0 {
		r.done = true
	}
}
