package panzoom

import "slices"

// ContainerFunc reports the container's current screen rectangle. It is
// called at the start of every gesture so layout changes are always seen.
type ContainerFunc func() Rect

// Viewport owns the view state of one image: scale, offset, and natural
// dimensions. It turns classified gestures into committed states and notifies
// subscribers after each commit. A Viewport is not safe for concurrent use;
// gestures must be delivered one at a time in arrival order.
type Viewport struct {
	zoom      ZoomConfig
	container ContainerFunc

	scale   float64
	offset  Vec2
	natural Size

	subs   []subscriber
	nextID uint32
}

type subscriber struct {
	id uint32
	fn func(Snapshot)
}

// NewViewport creates a viewport at scale 1 and offset (0,0). An invalid cfg
// falls back to DefaultZoomConfig.
func NewViewport(container ContainerFunc, cfg ZoomConfig) *Viewport {
	if cfg.Validate() != nil {
		cfg = DefaultZoomConfig()
	}
	return &Viewport{
		zoom:      cfg,
		container: container,
		scale:     cfg.Clamp(1),
	}
}

// ZoomConfig returns the stepping constants in use.
func (v *Viewport) ZoomConfig() ZoomConfig {
	return v.zoom
}

// Snapshot returns a copy of the current view state.
func (v *Viewport) Snapshot() Snapshot {
	return Snapshot{Scale: v.scale, Offset: v.offset, Natural: v.natural}
}

// OnImageLoad records the image's natural dimensions. Until it is called
// every gesture skips bounds reconciliation.
func (v *Viewport) OnImageLoad(width, height float64) {
	v.natural = Size{Width: width, Height: height}
	v.commit(v.scale, v.offset)
}

// Handle dispatches a classified gesture and reports whether it committed a
// new state.
func (v *Viewport) Handle(g Gesture) bool {
	if g.Kind == GestureZoom {
		return v.Zoom(g.Cursor, g.ZoomDirection())
	}
	return v.Pan(g.Delta)
}

// Zoom steps the scale in dir, keeping the image point under cursor (client
// coordinates) fixed, then snaps the offset if the result is out of place. A
// step that clamps to the current scale is a no-op and returns false.
func (v *Viewport) Zoom(cursor Vec2, dir Direction) bool {
	newScale := v.zoom.Step(v.scale, dir)
	if newScale == v.scale {
		return false
	}
	container := v.container()
	offset := AnchoredOffset(container, v.scale, newScale, cursor, v.offset)

	g := NewGeometry(offset, v.natural, newScale, container.Size())
	if !g.Degenerate() {
		offset = Settle(g, SnapOnZoom)
	}
	v.commit(newScale, offset)
	return true
}

// Pan moves the content by -delta (grab-and-drag semantics) and clamps the
// result so the pan cannot drag the image out of its legal range.
func (v *Viewport) Pan(delta Vec2) bool {
	container := v.container()
	offset := v.offset.Sub(delta)

	g := NewGeometry(offset, v.natural, v.scale, container.Size())
	if !g.Degenerate() {
		dx, dy := DirectionOf(delta.X), DirectionOf(delta.Y)
		var policy Policy
		if g.ImageSmallerThanContainer() {
			policy = func(g Geometry) Correction { return ClampOnPanSmallerImage(g, dx, dy) }
		} else {
			policy = func(g Geometry) Correction { return ClampOnPan(g, dx, dy) }
		}
		offset = Settle(g, policy)
	}
	v.commit(v.scale, offset)
	return true
}

// Reset restores scale 1 and offset (0,0).
func (v *Viewport) Reset() {
	v.commit(v.zoom.Clamp(1), Vec2{})
}

func (v *Viewport) commit(scale float64, offset Vec2) {
	v.scale = scale
	v.offset = offset
	if len(v.subs) == 0 {
		return
	}
	snap := v.Snapshot()
	// Callbacks may Remove themselves while being notified.
	for _, s := range slices.Clone(v.subs) {
		s.fn(snap)
	}
}

// --- Subscriptions ---

// Subscription allows removing a registered commit callback.
type Subscription struct {
	id uint32
	vp *Viewport
}

// Subscribe registers fn to receive a snapshot after every commit. The
// caller must Remove the subscription when it stops observing.
func (v *Viewport) Subscribe(fn func(Snapshot)) Subscription {
	v.nextID++
	v.subs = append(v.subs, subscriber{id: v.nextID, fn: fn})
	return Subscription{id: v.nextID, vp: v}
}

// Remove unregisters the callback. Calling it more than once, or on the zero
// Subscription, is a no-op.
func (s Subscription) Remove() {
	if s.vp == nil {
		return
	}
	subs := s.vp.subs
	for i := range subs {
		if subs[i].id == s.id {
			copy(subs[i:], subs[i+1:])
			subs[len(subs)-1] = subscriber{}
			s.vp.subs = subs[:len(subs)-1]
			return
		}
	}
}
