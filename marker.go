package panzoom

import "slices"

// Space is the coordinate space a MarkerStore keeps its points in. It is
// fixed when the store is created.
type Space uint8

const (
	SpaceAbsolute   Space = iota // natural image pixels
	SpacePercentage              // percent (0-100) of the rendered image
)

func (s Space) String() string {
	if s == SpacePercentage {
		return "percentage"
	}
	return "absolute"
}

// ParseSpace maps "absolute" or "percentage" to a Space.
func ParseSpace(name string) (Space, bool) {
	switch name {
	case "absolute", "":
		return SpaceAbsolute, true
	case "percentage", "percent":
		return SpacePercentage, true
	}
	return SpaceAbsolute, false
}

// MarkerStore is an insertion-ordered list of points. It does not
// deduplicate, validate, or convert; callers translate screen positions into
// the store's Space and reject out-of-image points before calling Add.
type MarkerStore struct {
	space  Space
	points []Vec2
}

// NewMarkerStore creates an empty store for points in space.
func NewMarkerStore(space Space) *MarkerStore {
	return &MarkerStore{space: space}
}

// Space returns the store's coordinate space.
func (s *MarkerStore) Space() Space {
	return s.space
}

// Add appends p.
func (s *MarkerStore) Add(p Vec2) {
	s.points = append(s.points, p)
}

// Remove deletes the first point exactly equal to p and reports whether one
// was found. Equality is exact on both coordinates.
func (s *MarkerStore) Remove(p Vec2) bool {
	i := slices.Index(s.points, p)
	if i < 0 {
		return false
	}
	s.points = slices.Delete(s.points, i, i+1)
	return true
}

// Contains reports whether a point exactly equal to p is stored.
func (s *MarkerStore) Contains(p Vec2) bool {
	return slices.Contains(s.points, p)
}

// Len returns the number of stored points.
func (s *MarkerStore) Len() int {
	return len(s.points)
}

// Points returns a copy of the stored points in insertion order.
func (s *MarkerStore) Points() []Vec2 {
	return slices.Clone(s.points)
}

// Clear removes all points.
func (s *MarkerStore) Clear() {
	s.points = s.points[:0]
}
