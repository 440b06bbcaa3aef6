package panzoom

import "testing"

func fixedContainer(w, h float64) ContainerFunc {
	return func() Rect { return Rect{Width: w, Height: h} }
}

func newLoadedViewport(natW, natH float64) *Viewport {
	vp := NewViewport(fixedContainer(800, 600), DefaultZoomConfig())
	vp.OnImageLoad(natW, natH)
	return vp
}

func geometryOf(vp *Viewport, container Size) Geometry {
	s := vp.Snapshot()
	return NewGeometry(s.Offset, s.Natural, s.Scale, container)
}

func TestNewViewportDefaults(t *testing.T) {
	vp := NewViewport(fixedContainer(800, 600), DefaultZoomConfig())
	s := vp.Snapshot()
	if s.Scale != 1 || s.Offset != (Vec2{}) || s.Loaded() {
		t.Errorf("initial snapshot = %+v", s)
	}
}

func TestNewViewportInvalidConfigFallsBack(t *testing.T) {
	vp := NewViewport(fixedContainer(800, 600), ZoomConfig{Increment: -1})
	if vp.ZoomConfig() != DefaultZoomConfig() {
		t.Errorf("ZoomConfig() = %+v, want defaults", vp.ZoomConfig())
	}
}

func TestZoomInSmallImageStaysContained(t *testing.T) {
	vp := newLoadedViewport(400, 300)
	cursor := Vec2{400, 300}
	for i := range 5 {
		if !vp.Zoom(cursor, DirPositive) {
			t.Fatalf("zoom %d did not commit", i)
		}
	}
	s := vp.Snapshot()
	assertNear(t, "scale", s.Scale, 1.4)
	assertVec(t, "offset", s.Offset, Vec2{0, 0})
	if !geometryOf(vp, Size{800, 600}).Contained() {
		t.Errorf("image at %v scale %v not contained", s.Offset, s.Scale)
	}
}

func TestZoomToMaxCoversContainer(t *testing.T) {
	vp := newLoadedViewport(400, 300)
	for range 90 {
		vp.Zoom(Vec2{400, 300}, DirPositive)
		g := geometryOf(vp, Size{800, 600})
		if g.Image.Width >= 800 && g.Image.Height >= 600 {
			for e := EdgeLeft; e <= EdgeBottom; e++ {
				if g.Exposed(e) {
					t.Fatalf("scale %v offset %v exposes %s", vp.Snapshot().Scale, g.Offset, e)
				}
			}
		}
	}
	if s := vp.Snapshot().Scale; s != 8 {
		t.Fatalf("scale = %v, want 8", s)
	}
	if vp.Zoom(Vec2{400, 300}, DirPositive) {
		t.Error("zoom past max committed")
	}
}

func TestPanLargeImageClampsAtEdges(t *testing.T) {
	vp := newLoadedViewport(400, 300)
	for range 90 {
		vp.Zoom(Vec2{400, 300}, DirPositive)
	}

	vp.Pan(Vec2{-10000, -10000})
	assertVec(t, "after pan to top-left", vp.Snapshot().Offset, Vec2{0, 0})

	vp.Pan(Vec2{100000, 100000})
	assertVec(t, "after pan to bottom-right", vp.Snapshot().Offset, Vec2{-2400, -1800})

	vp.Pan(Vec2{-100, -50})
	assertVec(t, "after interior pan", vp.Snapshot().Offset, Vec2{-2300, -1750})
}

func TestPanBackFromEdgeIsNotBlocked(t *testing.T) {
	vp := newLoadedViewport(400, 300)
	for range 90 {
		vp.Zoom(Vec2{400, 300}, DirPositive)
	}
	vp.Pan(Vec2{-10000, -10000})

	vp.Pan(Vec2{-50, 0})
	assertVec(t, "pushing into left edge", vp.Snapshot().Offset, Vec2{0, 0})

	vp.Pan(Vec2{50, 0})
	assertVec(t, "pulling away from left edge", vp.Snapshot().Offset, Vec2{-50, 0})
}

func TestPanSmallImageStaysInside(t *testing.T) {
	vp := newLoadedViewport(400, 300)
	steps := []struct {
		delta Vec2
		want  Vec2
	}{
		{Vec2{-100, -50}, Vec2{100, 50}},
		{Vec2{200, 0}, Vec2{0, 50}},
		{Vec2{-1000, 0}, Vec2{400, 50}},
		{Vec2{0, -1000}, Vec2{400, 300}},
	}
	for i, st := range steps {
		vp.Pan(st.delta)
		got := vp.Snapshot().Offset
		if !approxEqual(got.X, st.want.X, epsilon) || !approxEqual(got.Y, st.want.Y, epsilon) {
			t.Fatalf("step %d: Pan(%v) -> %v, want %v", i, st.delta, got, st.want)
		}
	}
}

func TestPanMixedAxes(t *testing.T) {
	vp := newLoadedViewport(1000, 300)
	vp.Pan(Vec2{0, -100})
	assertVec(t, "offset", vp.Snapshot().Offset, Vec2{0, 100})
}

func TestPanRereadsContainer(t *testing.T) {
	size := Size{800, 600}
	vp := NewViewport(func() Rect {
		return Rect{Width: size.Width, Height: size.Height}
	}, DefaultZoomConfig())
	vp.OnImageLoad(400, 300)

	size = Size{200, 150}
	vp.Pan(Vec2{-10, 0})
	if x := vp.Snapshot().Offset.X; x != 0 {
		t.Errorf("offset.X = %v, want 0 after the container shrank", x)
	}
}

func TestGesturesBeforeImageLoadSkipReconciliation(t *testing.T) {
	vp := NewViewport(fixedContainer(800, 600), DefaultZoomConfig())
	vp.Pan(Vec2{-10, -10})
	assertVec(t, "offset", vp.Snapshot().Offset, Vec2{10, 10})

	if !vp.Zoom(Vec2{0, 0}, DirPositive) {
		t.Fatal("zoom without image did not commit")
	}
	s := vp.Snapshot()
	assertNear(t, "scale", s.Scale, 1.08)
	// Anchored at the container origin: 0 - (0-10)/1*1.08.
	assertVec(t, "offset", s.Offset, Vec2{10.8, 10.8})
}

func TestZeroSizedContainerSkipsReconciliation(t *testing.T) {
	vp := NewViewport(fixedContainer(0, 0), DefaultZoomConfig())
	vp.OnImageLoad(400, 300)
	vp.Pan(Vec2{50, 50})
	assertVec(t, "offset", vp.Snapshot().Offset, Vec2{-50, -50})
}

func TestHandleDispatchesGestures(t *testing.T) {
	vp := newLoadedViewport(400, 300)

	if !vp.Handle(ClassifyWheel(ModCtrl, Vec2{400, 300}, Vec2{0, -120})) {
		t.Fatal("zoom gesture not committed")
	}
	assertNear(t, "scale", vp.Snapshot().Scale, 1.08)

	vp.Handle(ClassifyWheel(0, Vec2{}, Vec2{-30, 0}))
	assertVec(t, "offset", vp.Snapshot().Offset, Vec2{30, 0})

	if vp.Handle(Gesture{Kind: GestureZoom, Cursor: Vec2{400, 300}}) {
		t.Error("zoom gesture without vertical delta committed")
	}
}

func TestResetRestoresInitialView(t *testing.T) {
	vp := newLoadedViewport(400, 300)
	vp.Zoom(Vec2{100, 100}, DirPositive)
	vp.Pan(Vec2{-20, -20})
	vp.Reset()
	s := vp.Snapshot()
	if s.Scale != 1 || s.Offset != (Vec2{}) {
		t.Errorf("after Reset: scale %v offset %v", s.Scale, s.Offset)
	}
	if s.Natural != (Size{400, 300}) {
		t.Errorf("Reset dropped natural size: %v", s.Natural)
	}
}

func TestSubscribeReceivesCommits(t *testing.T) {
	vp := NewViewport(fixedContainer(800, 600), DefaultZoomConfig())
	var got []Snapshot
	sub := vp.Subscribe(func(s Snapshot) { got = append(got, s) })

	vp.OnImageLoad(400, 300)
	vp.Pan(Vec2{-10, 0})
	if len(got) != 2 {
		t.Fatalf("received %d snapshots, want 2", len(got))
	}
	if !got[0].Loaded() {
		t.Error("first snapshot should carry the natural size")
	}
	assertVec(t, "second offset", got[1].Offset, Vec2{10, 0})

	sub.Remove()
	vp.Pan(Vec2{-10, 0})
	if len(got) != 2 {
		t.Errorf("removed subscriber still notified (%d snapshots)", len(got))
	}
	sub.Remove()
}

func TestSubscriptionRemoveDuringNotify(t *testing.T) {
	vp := newLoadedViewport(400, 300)
	var a, b int
	var subA Subscription
	subA = vp.Subscribe(func(Snapshot) {
		a++
		subA.Remove()
	})
	vp.Subscribe(func(Snapshot) { b++ })

	vp.Pan(Vec2{-1, 0})
	vp.Pan(Vec2{-1, 0})
	if a != 1 || b != 2 {
		t.Errorf("a = %d, b = %d; want 1 and 2", a, b)
	}
}

func TestZeroSubscriptionRemove(t *testing.T) {
	var s Subscription
	s.Remove()
}

func TestZoomNoOpDoesNotNotify(t *testing.T) {
	vp := newLoadedViewport(400, 300)
	for range 100 {
		vp.Zoom(Vec2{}, DirNegative)
	}
	n := 0
	sub := vp.Subscribe(func(Snapshot) { n++ })
	defer sub.Remove()
	if vp.Zoom(Vec2{}, DirNegative) {
		t.Error("zoom out at min committed")
	}
	if n != 0 {
		t.Errorf("subscriber notified %d times", n)
	}
}
