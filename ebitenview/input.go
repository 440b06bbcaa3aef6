package ebitenview

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/panzoom"
)

// hitCircle is a circular hit area in screen coordinates.
type hitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c hitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// inputFrame is one frame of raw input, either polled from ebiten or
// injected. Scroll is already converted from wheel notches to pixels.
type inputFrame struct {
	cursor   panzoom.Vec2
	scroll   panzoom.Vec2
	mods     panzoom.KeyModifiers
	leftDown bool
	reset    bool
}

// pointerState tracks the left button across frames for drag and click
// detection.
type pointerState struct {
	down     bool
	dragging bool
	start    panzoom.Vec2
	last     panzoom.Vec2

	// Last single click, for double-click detection. lastClickTick == 0
	// means no click is pending.
	lastClickTick uint64
	lastClickPos  panzoom.Vec2
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() panzoom.KeyModifiers {
	var mods panzoom.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= panzoom.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= panzoom.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= panzoom.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= panzoom.ModMeta
	}
	return mods
}

// pollFrame reads this frame's mouse and keyboard state.
func pollFrame(wheelPixels float64) inputFrame {
	mx, my := ebiten.CursorPosition()
	wx, wy := ebiten.Wheel()
	return inputFrame{
		cursor:   panzoom.Vec2{X: float64(mx), Y: float64(my)},
		scroll:   wheelToScroll(wx, wy, wheelPixels),
		mods:     readModifiers(),
		leftDown: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		reset:    inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}

// wheelToScroll converts wheel offsets (positive up/left) into a scroll
// delta in pixels (positive down/right).
func wheelToScroll(wx, wy, wheelPixels float64) panzoom.Vec2 {
	return panzoom.Vec2{X: -wx * wheelPixels, Y: -wy * wheelPixels}
}

// doubleClickTicks converts the double-click window into update ticks.
func doubleClickTicks(d time.Duration) uint64 {
	return uint64(math.Ceil(d.Seconds() * ebiten.DefaultTPS))
}

// processFrame runs one frame of input through the viewport and marker
// handlers.
func (v *Viewer) processFrame(f inputFrame) {
	v.tick++

	if f.reset {
		v.vp.Reset()
		v.log.Debug("view reset")
	}

	if f.scroll != (panzoom.Vec2{}) {
		v.vp.Handle(panzoom.ClassifyWheel(f.mods, f.cursor, f.scroll))
	}

	v.processPointer(f.cursor, f.leftDown)
}

// processPointer runs the left-button state machine: press, drag-to-pan
// once movement exceeds the dead zone, and click on release without drag.
func (v *Viewer) processPointer(cursor panzoom.Vec2, pressed bool) {
	ps := &v.input

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.dragging = false
		ps.start = cursor
		ps.last = cursor

	case pressed && ps.down:
		if !ps.dragging {
			d := cursor.Sub(ps.start)
			if math.Hypot(d.X, d.Y) <= defaultDragDeadZone {
				return
			}
			ps.dragging = true
			ps.last = ps.start
		}
		if cursor != ps.last {
			// Content follows the pointer.
			v.vp.Pan(ps.last.Sub(cursor))
			ps.last = cursor
		}

	case !pressed && ps.down:
		ps.down = false
		if ps.dragging {
			if cursor != ps.last {
				v.vp.Pan(ps.last.Sub(cursor))
			}
			ps.dragging = false
			return
		}
		v.click(cursor)
	}
}

// click handles a completed click. A click on a marker dot removes it; a
// second click close to the first within the double-click window adds a
// marker.
func (v *Viewer) click(cursor panzoom.Vec2) {
	ps := &v.input
	if ps.lastClickTick != 0 && v.tick-ps.lastClickTick <= doubleClickTicks(v.cfg.DoubleClick) {
		d := cursor.Sub(ps.lastClickPos)
		if math.Hypot(d.X, d.Y) <= defaultDragDeadZone {
			ps.lastClickTick = 0
			v.addMarkerAt(cursor)
			return
		}
	}

	if v.removeMarkerAt(cursor) {
		ps.lastClickTick = 0
		return
	}
	ps.lastClickTick = v.tick
	ps.lastClickPos = cursor
}

// addMarkerAt stores a marker for the screen point if it lies on the image.
func (v *Viewer) addMarkerAt(cursor panzoom.Vec2) bool {
	local := cursor.Sub(v.container().Origin())
	p, ok := v.snap.ToSpace(v.markers.Space(), local)
	if !ok {
		v.log.Debug("marker rejected outside image", "x", cursor.X, "y", cursor.Y)
		return false
	}
	v.markers.Add(p)
	v.log.Info("marker added", "space", v.markers.Space(), "x", p.X, "y", p.Y, "count", v.markers.Len())
	return true
}

// removeMarkerAt removes the topmost marker whose dot covers the screen
// point.
func (v *Viewer) removeMarkerAt(cursor panzoom.Vec2) bool {
	origin := v.container().Origin()
	pts := v.markers.Points()
	// Reverse draw order: the last drawn dot is on top.
	for i := len(pts) - 1; i >= 0; i-- {
		c := v.snap.FromSpace(v.markers.Space(), pts[i]).Add(origin)
		hit := hitCircle{CenterX: c.X, CenterY: c.Y, Radius: v.cfg.MarkerRadius}
		if !hit.Contains(cursor.X, cursor.Y) {
			continue
		}
		v.markers.Remove(pts[i])
		v.log.Info("marker removed", "space", v.markers.Space(), "x", pts[i].X, "y", pts[i].Y, "count", v.markers.Len())
		return true
	}
	return false
}
