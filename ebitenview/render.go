package ebitenview

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/panzoom"
)

var (
	markerFill    = color.RGBA{R: 0xe5, G: 0x39, B: 0x35, A: 0xff}
	markerOutline = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Draw renders the image with the committed view transform, then the marker
// dots and the optional debug overlay. The image and markers are clipped to
// the container rect.
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(v.cfg.ClearColor)

	c := v.container()
	target := screen
	if sub, ok := screen.SubImage(image.Rect(
		int(c.X), int(c.Y), int(c.X+c.Width), int(c.Y+c.Height),
	)).(*ebiten.Image); ok {
		target = sub
	}

	if v.image != nil && v.snap.Loaded() {
		op := &ebiten.DrawImageOptions{}
		op.GeoM = imageGeoM(v.snap, c.Origin())
		op.Filter = ebiten.FilterLinear
		target.DrawImage(v.image, op)
	}
	v.drawMarkers(target, c.Origin())

	if v.cfg.ShowDebug {
		ebitenutil.DebugPrintAt(screen, v.debugText(), 4, 4)
	}
	v.flushScreenshots(screen)
}

// imageGeoM builds the natural-image-to-screen matrix from the snapshot's
// affine transform, shifted by the container origin.
func imageGeoM(s panzoom.Snapshot, origin panzoom.Vec2) ebiten.GeoM {
	m := s.Transform()
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4]+origin.X)
	g.SetElement(1, 2, m[5]+origin.Y)
	return g
}

// markerScreenPoints returns the screen position of every stored marker in
// draw order.
func (v *Viewer) markerScreenPoints(origin panzoom.Vec2) []panzoom.Vec2 {
	if !v.snap.Loaded() {
		return nil
	}
	pts := v.markers.Points()
	for i, p := range pts {
		pts[i] = v.snap.FromSpace(v.markers.Space(), p).Add(origin)
	}
	return pts
}

func (v *Viewer) drawMarkers(dst *ebiten.Image, origin panzoom.Vec2) {
	r := float32(v.cfg.MarkerRadius)
	for _, p := range v.markerScreenPoints(origin) {
		x, y := float32(p.X), float32(p.Y)
		vector.DrawFilledCircle(dst, x, y, r, markerFill, true)
		vector.StrokeCircle(dst, x, y, r, 1.5, markerOutline, true)
	}
}

func (v *Viewer) debugText() string {
	s := v.snap
	return fmt.Sprintf("scale %.2f  offset %.1f, %.1f  image %.0fx%.0f\nmarkers %d (%s)  FPS %.1f",
		s.Scale, s.Offset.X, s.Offset.Y, s.Natural.Width, s.Natural.Height,
		v.markers.Len(), v.markers.Space(), ebiten.ActualFPS())
}
