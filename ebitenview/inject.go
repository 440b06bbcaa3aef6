package ebitenview

import "github.com/phanxgames/panzoom"

// Injected input is queued as whole frames and consumed one per Update, in
// place of real input, through the same handlers. Coordinates are screen
// coordinates, matching what a screenshot shows.

func (v *Viewer) inject(f inputFrame) {
	v.injectQueue = append(v.injectQueue, f)
}

// InjectZoom queues one accelerator-wheel notch at (x, y). A positive dir
// zooms in. Consumes one frame.
func (v *Viewer) InjectZoom(x, y float64, dir panzoom.Direction) {
	cursor := panzoom.Vec2{X: x, Y: y}
	v.inject(inputFrame{
		cursor: cursor,
		scroll: panzoom.Vec2{Y: -float64(dir) * v.cfg.WheelPixels},
		mods:   panzoom.ModCtrl,
	})
}

// InjectPan queues a plain scroll of (dx, dy) pixels. Content moves by
// (-dx, -dy). Consumes one frame.
func (v *Viewer) InjectPan(dx, dy float64) {
	v.inject(inputFrame{scroll: panzoom.Vec2{X: dx, Y: dy}})
}

// InjectPress queues a left button press at (x, y).
func (v *Viewer) InjectPress(x, y float64) {
	v.inject(inputFrame{cursor: panzoom.Vec2{X: x, Y: y}, leftDown: true})
}

// InjectMove queues a pointer move to (x, y) with the button held down.
func (v *Viewer) InjectMove(x, y float64) {
	v.inject(inputFrame{cursor: panzoom.Vec2{X: x, Y: y}, leftDown: true})
}

// InjectRelease queues a left button release at (x, y).
func (v *Viewer) InjectRelease(x, y float64) {
	v.inject(inputFrame{cursor: panzoom.Vec2{X: x, Y: y}})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (v *Viewer) InjectClick(x, y float64) {
	v.InjectPress(x, y)
	v.InjectRelease(x, y)
}

// InjectDoubleClick queues two clicks at the same point. Consumes four
// frames.
func (v *Viewer) InjectDoubleClick(x, y float64) {
	v.InjectClick(x, y)
	v.InjectClick(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). Minimum frames is 2 (press + release).
func (v *Viewer) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	v.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		v.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	v.InjectRelease(toX, toY)
}

// InjectReset queues an R key press. Consumes one frame.
func (v *Viewer) InjectReset() {
	v.inject(inputFrame{reset: true})
}

// processInjectedInput pops one queued frame and processes it. Returns true
// if a frame was consumed; real input is skipped for that frame.
func (v *Viewer) processInjectedInput() bool {
	if len(v.injectQueue) == 0 {
		return false
	}
	f := v.injectQueue[0]
	copy(v.injectQueue, v.injectQueue[1:])
	v.injectQueue = v.injectQueue[:len(v.injectQueue)-1]

	v.processFrame(f)
	return true
}
