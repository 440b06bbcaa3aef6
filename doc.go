// Package panzoom is the geometry core of an interactive image viewport: pan
// and zoom a raster image inside a fixed-size container and keep point
// markers anchored to image coordinates.
//
// The package has no rendering or input dependencies. A collaborator (see
// package [github.com/phanxgames/panzoom/ebitenview]) classifies raw input
// into a [Gesture], hands it to a [Viewport], and draws whatever [Snapshot]
// the viewport commits.
//
// # Quick start
//
//	vp := panzoom.NewViewport(func() panzoom.Rect {
//		return panzoom.Rect{Width: 800, Height: 600}
//	}, panzoom.DefaultZoomConfig())
//	vp.OnImageLoad(400, 300)
//
//	vp.Zoom(panzoom.Vec2{X: 400, Y: 300}, panzoom.DirPositive)
//	vp.Pan(panzoom.Vec2{X: 20, Y: 0})
//
//	snap := vp.Snapshot()
//	// translate by snap.Offset, scale by snap.Scale, origin at (0,0)
//
// # View state
//
// The view is {scale, offset, natural size}. Scale is clamped to
// [ZoomConfig.MinScale, ZoomConfig.MaxScale] and stepped additively by
// ZoomConfig.Increment. Offset is the container-local position of the image's
// natural origin after scaling.
//
// # Zoom
//
// [AnchoredOffset] keeps the image point under the cursor fixed across a
// scale change. The viewport then applies [SnapOnZoom]: along an axis where
// the image is shorter than the container the image is pulled fully inside,
// along an axis where it is at least as long any exposed container edge is
// covered again.
//
// # Pan
//
// A pan moves content by -delta. [ClampOnPan] and [ClampOnPanSmallerImage]
// pin an edge to its container edge only when the pan direction would push it
// further out of place; panning back toward a legal position is never
// blocked.
//
// # Bounds predicates
//
// [Geometry] exposes the atomic facts every policy is built from. "Out of
// bound" predicates use non-strict comparisons (an edge sitting exactly on the
// container edge counts as out). When several edges need correcting they are
// handled in the fixed order left, right, top, bottom, one per policy call;
// [Settle] repeats the call at most once per axis.
//
// # Markers
//
// [MarkerStore] keeps points in one [Space], absolute image pixels or
// percentages of the rendered image. Conversion between screen and store
// space happens at the boundary through [Snapshot.ToSpace] and
// [Snapshot.FromSpace].
package panzoom
