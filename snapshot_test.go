package panzoom

import "testing"

func testSnapshot() Snapshot {
	return Snapshot{Scale: 2, Offset: Vec2{10, 20}, Natural: Size{400, 300}}
}

func TestSnapshotImageRect(t *testing.T) {
	r := testSnapshot().ImageRect()
	want := Rect{X: 10, Y: 20, Width: 800, Height: 600}
	if r != want {
		t.Errorf("ImageRect() = %+v, want %+v", r, want)
	}
}

func TestSnapshotTransform(t *testing.T) {
	m := testSnapshot().Transform()
	want := [6]float64{2, 0, 0, 2, 10, 20}
	if m != want {
		t.Errorf("Transform() = %v, want %v", m, want)
	}
}

func TestSnapshotToSpace(t *testing.T) {
	s := testSnapshot()
	tests := []struct {
		name   string
		space  Space
		local  Vec2
		want   Vec2
		wantOK bool
	}{
		{"absolute inside", SpaceAbsolute, Vec2{110, 220}, Vec2{50, 100}, true},
		{"absolute origin", SpaceAbsolute, Vec2{10, 20}, Vec2{0, 0}, true},
		{"absolute far corner", SpaceAbsolute, Vec2{810, 620}, Vec2{400, 300}, true},
		{"absolute outside", SpaceAbsolute, Vec2{5, 5}, Vec2{}, false},
		{"percentage centre", SpacePercentage, Vec2{410, 320}, Vec2{50, 50}, true},
		{"percentage outside", SpacePercentage, Vec2{900, 320}, Vec2{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := s.ToSpace(tt.space, tt.local)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok {
				assertVec(t, "point", got, tt.want)
			}
		})
	}
}

func TestSnapshotToSpaceNotLoaded(t *testing.T) {
	s := Snapshot{Scale: 1}
	if _, ok := s.ToSpace(SpaceAbsolute, Vec2{1, 1}); ok {
		t.Error("ToSpace succeeded without an image")
	}
}

func TestSnapshotSpaceRoundTrip(t *testing.T) {
	s := testSnapshot()
	for _, space := range []Space{SpaceAbsolute, SpacePercentage} {
		local := Vec2{333, 444}
		p, ok := s.ToSpace(space, local)
		if !ok {
			t.Fatalf("%s: point rejected", space)
		}
		assertVec(t, space.String(), s.FromSpace(space, p), local)
	}
}

func TestMarkersFollowView(t *testing.T) {
	// A marker stored in either space must render over the same image pixel
	// after the view changes.
	before := testSnapshot()
	after := Snapshot{Scale: 3.5, Offset: Vec2{-120, 40}, Natural: before.Natural}
	pixel := Vec2{100, 50}

	abs := pixel
	pct := Vec2{pixel.X / 400 * 100, pixel.Y / 300 * 100}

	want := after.ImageToScreen(pixel)
	assertVec(t, "absolute", after.FromSpace(SpaceAbsolute, abs), want)
	assertVec(t, "percentage", after.FromSpace(SpacePercentage, pct), want)
}
