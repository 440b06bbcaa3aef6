package panzoom

// Snapshot is an immutable copy of the view state, handed to renderers and
// the marker layer after every commit.
type Snapshot struct {
	Scale   float64
	Offset  Vec2
	Natural Size
}

// Loaded reports whether the natural image dimensions are known.
func (s Snapshot) Loaded() bool {
	return !s.Natural.IsZero()
}

// ScaledSize returns the displayed image size.
func (s Snapshot) ScaledSize() Size {
	return s.Natural.Scale(s.Scale)
}

// ImageRect returns the displayed image bounds in container-local pixels.
func (s Snapshot) ImageRect() Rect {
	sz := s.ScaledSize()
	return Rect{X: s.Offset.X, Y: s.Offset.Y, Width: sz.Width, Height: sz.Height}
}

// Transform returns the affine matrix [a, b, c, d, tx, ty] mapping natural
// image space to container-local space: scale about the image origin, then
// translate by the offset.
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func (s Snapshot) Transform() [6]float64 {
	return [6]float64{s.Scale, 0, 0, s.Scale, s.Offset.X, s.Offset.Y}
}

// ScreenToImage converts a container-local point to natural image pixels.
func (s Snapshot) ScreenToImage(local Vec2) Vec2 {
	return ImagePointAt(local, s.Offset, s.Scale)
}

// ImageToScreen converts natural image pixels to a container-local point.
func (s Snapshot) ImageToScreen(p Vec2) Vec2 {
	return s.Offset.Add(p.Mul(s.Scale))
}

// ScreenToPercent converts a container-local point to percentages (0-100) of
// the rendered image. Callers must check Loaded first.
func (s Snapshot) ScreenToPercent(local Vec2) Vec2 {
	r := s.ImageRect()
	return Vec2{
		X: (local.X - r.X) / r.Width * 100,
		Y: (local.Y - r.Y) / r.Height * 100,
	}
}

// PercentToScreen converts percentages of the rendered image to a
// container-local point.
func (s Snapshot) PercentToScreen(p Vec2) Vec2 {
	r := s.ImageRect()
	return Vec2{
		X: r.X + p.X/100*r.Width,
		Y: r.Y + p.Y/100*r.Height,
	}
}

// ToSpace converts a container-local point into the given marker space. The
// boolean is false when the image is not loaded or the point falls outside
// the image bounds; such points must not be stored.
func (s Snapshot) ToSpace(space Space, local Vec2) (Vec2, bool) {
	if !s.Loaded() || s.Scale <= 0 {
		return Vec2{}, false
	}
	var p Vec2
	var limit Size
	switch space {
	case SpacePercentage:
		p = s.ScreenToPercent(local)
		limit = Size{Width: 100, Height: 100}
	default:
		p = s.ScreenToImage(local)
		limit = s.Natural
	}
	if p.X < 0 || p.Y < 0 || p.X > limit.Width || p.Y > limit.Height {
		return Vec2{}, false
	}
	return p, true
}

// FromSpace converts a stored marker point back to a container-local point
// for overlay rendering.
func (s Snapshot) FromSpace(space Space, p Vec2) Vec2 {
	if space == SpacePercentage {
		return s.PercentToScreen(p)
	}
	return s.ImageToScreen(p)
}
