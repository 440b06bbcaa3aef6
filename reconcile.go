package panzoom

// Correction is the result of a reconciliation policy: either an offset with
// one edge snapped onto its container edge, or Unchanged. A correction
// replaces the candidate offset; it is never added to it.
type Correction struct {
	Edge    Edge
	Offset  Vec2
	changed bool
}

// Unchanged is the "no correction needed" result.
var Unchanged = Correction{}

// Changed reports whether the policy produced a corrected offset.
func (c Correction) Changed() bool { return c.changed }

// Apply returns the corrected offset, or candidate if nothing changed.
func (c Correction) Apply(candidate Vec2) Vec2 {
	if !c.changed {
		return candidate
	}
	return c.Offset
}

// Policy computes a correction for a candidate geometry.
type Policy func(Geometry) Correction

// gapDirection is the pan direction that pulls edge e toward the container's
// interior, opening a gap on that side: a negative X delta moves content
// right, away from the left container edge.
func gapDirection(e Edge) Direction {
	if e == EdgeLeft || e == EdgeTop {
		return DirNegative
	}
	return DirPositive
}

func opposite(e Edge) Edge {
	switch e {
	case EdgeLeft:
		return EdgeRight
	case EdgeRight:
		return EdgeLeft
	case EdgeTop:
		return EdgeBottom
	default:
		return EdgeTop
	}
}

// snap returns g's offset with the axis of e moved to e's snap target.
func (g Geometry) snap(e Edge) Vec2 {
	off := g.Offset
	if e.Axis() == AxisX {
		off.X = g.SnapTarget(e)
	} else {
		off.Y = g.SnapTarget(e)
	}
	return off
}

// firstCorrection checks edges in priority order (left, right, top, bottom)
// and snaps the first one that matches. A match whose snap would not move
// the offset is skipped so an edge already sitting on its boundary does not
// mask a later edge.
func firstCorrection(g Geometry, match func(Edge) bool) Correction {
	if g.Degenerate() {
		return Unchanged
	}
	for e := EdgeLeft; e <= EdgeBottom; e++ {
		if !match(e) {
			continue
		}
		off := g.snap(e)
		if off == g.Offset {
			continue
		}
		return Correction{Edge: e, Offset: off, changed: true}
	}
	return Unchanged
}

// SnapOnZoom snaps one out-of-place edge after a zoom. Along an axis where
// the scaled image is shorter than the container, any edge at or past its
// container edge is pulled back inside. Along an axis where it is at least
// as long, an edge is snapped only when it exposes a blank strip of the
// container, which also covers an image zoomed fully out of view.
func SnapOnZoom(g Geometry) Correction {
	return firstCorrection(g, func(e Edge) bool {
		if g.ShorterThanContainer(e.Axis()) {
			return g.OutOfBound(e)
		}
		return g.Exposed(e)
	})
}

// ClampOnPan pins an edge to its container edge when the pan direction would
// open a gap there. Rules are direction-gated: a pan moving back toward a
// legal position is never corrected. Along an axis where the image is
// shorter than the container the ClampOnPanSmallerImage rules apply instead.
func ClampOnPan(g Geometry, dx, dy Direction) Correction {
	return firstCorrection(g, func(e Edge) bool {
		if g.ShorterThanContainer(e.Axis()) {
			return containRule(g, e, dx, dy)
		}
		dir := dx
		if e.Axis() == AxisY {
			dir = dy
		}
		return g.WithinBound(e) && dir == gapDirection(e)
	})
}

// ClampOnPanSmallerImage keeps an undersized image inside the container: an
// edge that has reached its container edge is pinned there while the pan
// keeps pushing outward.
func ClampOnPanSmallerImage(g Geometry, dx, dy Direction) Correction {
	return firstCorrection(g, func(e Edge) bool {
		return containRule(g, e, dx, dy)
	})
}

func containRule(g Geometry, e Edge, dx, dy Direction) bool {
	dir := dx
	if e.Axis() == AxisY {
		dir = dy
	}
	return g.OutOfBound(e) && g.WithinBound(opposite(e)) && dir == -gapDirection(e)
}

// Settle applies policy until it reports Unchanged, accepting at most one
// correction per axis, and returns the resulting offset. Each policy call
// corrects a single edge pair; settling lets a corner overshoot be resolved
// on both axes within one gesture.
func Settle(g Geometry, policy Policy) Vec2 {
	var done Axis
	for {
		c := policy(g)
		if !c.Changed() || done&c.Edge.Axis() != 0 {
			return g.Offset
		}
		g.Offset = c.Offset
		done |= c.Edge.Axis()
	}
}
