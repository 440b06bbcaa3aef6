package panzoom

// ImagePointAt inverts the view transform: it returns the natural-image point
// displayed at the container-local position local.
func ImagePointAt(local, offset Vec2, scale float64) Vec2 {
	return Vec2{
		X: (local.X - offset.X) / scale,
		Y: (local.Y - offset.Y) / scale,
	}
}

// AnchoredOffset returns the offset that keeps the image point under the
// cursor fixed in screen space when the scale changes from oldScale to
// newScale. cursor is in client (screen) coordinates; the container origin is
// subtracted first. No bounds reconciliation happens here.
//
// A non-positive oldScale has no inverse and returns oldOffset unchanged.
func AnchoredOffset(container Rect, oldScale, newScale float64, cursor, oldOffset Vec2) Vec2 {
	if oldScale <= 0 {
		return oldOffset
	}
	local := cursor.Sub(container.Origin())
	p := ImagePointAt(local, oldOffset, oldScale)
	return Vec2{
		X: local.X - p.X*newScale,
		Y: local.Y - p.Y*newScale,
	}
}
