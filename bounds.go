package panzoom

// Geometry is the input to every bounds predicate: the image's screen offset,
// its scaled size, and the container's size. It is built fresh for each
// gesture and never stored.
type Geometry struct {
	Offset    Vec2
	Image     Size // natural size * scale
	Container Size
}

// NewGeometry builds the geometry for a candidate offset at the given scale.
func NewGeometry(offset Vec2, natural Size, scale float64, container Size) Geometry {
	return Geometry{
		Offset:    offset,
		Image:     natural.Scale(scale),
		Container: container,
	}
}

// Degenerate reports whether the image or container has no area yet, in
// which case no reconciliation may be attempted.
func (g Geometry) Degenerate() bool {
	return g.Image.IsZero() || g.Container.IsZero()
}

func (g Geometry) right() float64  { return g.Offset.X + g.Image.Width }
func (g Geometry) bottom() float64 { return g.Offset.Y + g.Image.Height }

// --- "Has crossed": the edge is at or past the container edge ---

// LeftOutOfBound reports whether the image's left edge is at or left of the
// container's left edge.
func (g Geometry) LeftOutOfBound() bool { return g.Offset.X <= 0 }

// RightOutOfBound reports whether the image's right edge is at or right of
// the container's right edge.
func (g Geometry) RightOutOfBound() bool { return g.right() >= g.Container.Width }

// TopOutOfBound reports whether the image's top edge is at or above the
// container's top edge.
func (g Geometry) TopOutOfBound() bool { return g.Offset.Y <= 0 }

// BottomOutOfBound reports whether the image's bottom edge is at or below the
// container's bottom edge.
func (g Geometry) BottomOutOfBound() bool { return g.bottom() >= g.Container.Height }

// --- "Would cross": the edge is at or inside the container edge ---

// LeftWithinBound reports whether the image's left edge is at or right of the
// container's left edge; moving it further right opens a gap.
func (g Geometry) LeftWithinBound() bool { return g.Offset.X >= 0 }

// RightWithinBound reports whether the image's right edge is at or left of
// the container's right edge.
func (g Geometry) RightWithinBound() bool { return g.right() <= g.Container.Width }

// TopWithinBound reports whether the image's top edge is at or below the
// container's top edge.
func (g Geometry) TopWithinBound() bool { return g.Offset.Y >= 0 }

// BottomWithinBound reports whether the image's bottom edge is at or above
// the container's bottom edge.
func (g Geometry) BottomWithinBound() bool { return g.bottom() <= g.Container.Height }

// OutOfBound dispatches to the per-edge "has crossed" predicate.
func (g Geometry) OutOfBound(e Edge) bool {
	switch e {
	case EdgeLeft:
		return g.LeftOutOfBound()
	case EdgeRight:
		return g.RightOutOfBound()
	case EdgeTop:
		return g.TopOutOfBound()
	default:
		return g.BottomOutOfBound()
	}
}

// WithinBound dispatches to the per-edge "would cross" predicate.
func (g Geometry) WithinBound(e Edge) bool {
	switch e {
	case EdgeLeft:
		return g.LeftWithinBound()
	case EdgeRight:
		return g.RightWithinBound()
	case EdgeTop:
		return g.TopWithinBound()
	default:
		return g.BottomWithinBound()
	}
}

// ImageSmallerThanContainer reports whether the scaled image is strictly
// smaller than the container on both axes.
func (g Geometry) ImageSmallerThanContainer() bool {
	return g.Image.Width < g.Container.Width && g.Image.Height < g.Container.Height
}

// ShorterThanContainer reports whether the scaled image is strictly shorter
// than the container along a.
func (g Geometry) ShorterThanContainer(a Axis) bool {
	if a == AxisX {
		return g.Image.Width < g.Container.Width
	}
	return g.Image.Height < g.Container.Height
}

// Contained reports whether the whole image lies inside the container.
// Touching an edge counts as inside.
func (g Geometry) Contained() bool {
	return g.Offset.X >= 0 && g.right() <= g.Container.Width &&
		g.Offset.Y >= 0 && g.bottom() <= g.Container.Height
}

// Exposed reports whether the container edge on side e is not covered by the
// image, leaving a blank strip. Only meaningful along an axis where the image
// is at least as long as the container.
func (g Geometry) Exposed(e Edge) bool {
	switch e {
	case EdgeLeft:
		return g.Offset.X > 0
	case EdgeRight:
		return g.right() < g.Container.Width
	case EdgeTop:
		return g.Offset.Y > 0
	default:
		return g.bottom() < g.Container.Height
	}
}

// FullyOutside reports whether the image does not overlap the container at
// all.
func (g Geometry) FullyOutside() bool {
	return g.right() < 0 || g.Offset.X > g.Container.Width ||
		g.bottom() < 0 || g.Offset.Y > g.Container.Height
}

// SnapTarget returns the offset coordinate that puts edge e exactly on the
// matching container edge.
func (g Geometry) SnapTarget(e Edge) float64 {
	switch e {
	case EdgeRight:
		return g.Container.Width - g.Image.Width
	case EdgeBottom:
		return g.Container.Height - g.Image.Height
	default:
		return 0
	}
}
