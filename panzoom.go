package panzoom

// Vec2 is a 2D vector used for positions, offsets, and deltas throughout the
// API. Screen-space values are in container-local pixels unless noted.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul returns v scaled by f.
func (v Vec2) Mul(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Size is a width/height pair in pixels.
type Size struct {
	Width, Height float64
}

// Scale returns the size multiplied by f on both axes.
func (s Size) Scale(f float64) Size {
	return Size{Width: s.Width * f, Height: s.Height * f}
}

// IsZero reports whether either dimension is zero or negative. Geometry built
// from such a size is treated as "not yet known".
func (s Size) IsZero() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward. For a container, X and Y are the
// screen position of its top-left corner.
type Rect struct {
	X, Y, Width, Height float64
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Vec2 {
	return Vec2{r.X, r.Y}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Axis is a bitmask of the two screen axes.
type Axis uint8

const (
	AxisX Axis = 1 << iota // horizontal
	AxisY                  // vertical
)

// Edge identifies one side of the scaled image. The declaration order is the
// priority order used when several edges need correcting at once.
type Edge uint8

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

var edgeNames = [...]string{"left", "right", "top", "bottom"}

func (e Edge) String() string {
	if int(e) < len(edgeNames) {
		return edgeNames[e]
	}
	return "unknown"
}

// Axis returns the axis the edge lies across.
func (e Edge) Axis() Axis {
	if e == EdgeLeft || e == EdgeRight {
		return AxisX
	}
	return AxisY
}

// Direction is the sign of a gesture along one axis.
type Direction int8

const (
	DirNegative Direction = -1
	DirNone     Direction = 0
	DirPositive Direction = 1
)

// DirectionOf returns the sign of delta. A zero delta has no direction, so
// direction-gated rules never fire for an axis the gesture did not move on.
func DirectionOf(delta float64) Direction {
	switch {
	case delta > 0:
		return DirPositive
	case delta < 0:
		return DirNegative
	default:
		return DirNone
	}
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Accelerator reports whether the platform zoom modifier is held.
func (m KeyModifiers) Accelerator() bool {
	return m&(ModCtrl|ModMeta) != 0
}
