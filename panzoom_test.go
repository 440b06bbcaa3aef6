package panzoom

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec(t *testing.T, name string, got, want Vec2) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon {
		t.Errorf("%s = (%v, %v), want (%v, %v)", name, got.X, got.Y, want.X, want.Y)
	}
}

func TestDirectionOf(t *testing.T) {
	tests := []struct {
		delta float64
		want  Direction
	}{
		{5, DirPositive},
		{0.001, DirPositive},
		{-3, DirNegative},
		{0, DirNone},
	}
	for _, tt := range tests {
		if got := DirectionOf(tt.delta); got != tt.want {
			t.Errorf("DirectionOf(%v) = %d, want %d", tt.delta, got, tt.want)
		}
	}
}

func TestEdgeAxis(t *testing.T) {
	if EdgeLeft.Axis() != AxisX || EdgeRight.Axis() != AxisX {
		t.Error("left/right should lie across the X axis")
	}
	if EdgeTop.Axis() != AxisY || EdgeBottom.Axis() != AxisY {
		t.Error("top/bottom should lie across the Y axis")
	}
	if EdgeBottom.String() != "bottom" {
		t.Errorf("EdgeBottom.String() = %q", EdgeBottom.String())
	}
}

func TestSizeIsZero(t *testing.T) {
	tests := []struct {
		name string
		s    Size
		want bool
	}{
		{"zero", Size{}, true},
		{"zero width", Size{0, 10}, true},
		{"zero height", Size{10, 0}, true},
		{"loaded", Size{400, 300}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.IsZero(); got != tt.want {
				t.Errorf("IsZero() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	if !r.Contains(10, 20) || !r.Contains(110, 70) {
		t.Error("corners should be inside")
	}
	if r.Contains(5, 40) || r.Contains(50, 75) {
		t.Error("points outside reported inside")
	}
}

func TestKeyModifiersAccelerator(t *testing.T) {
	tests := []struct {
		mods KeyModifiers
		want bool
	}{
		{0, false},
		{ModShift, false},
		{ModAlt, false},
		{ModCtrl, true},
		{ModMeta, true},
		{ModShift | ModCtrl, true},
	}
	for _, tt := range tests {
		if got := tt.mods.Accelerator(); got != tt.want {
			t.Errorf("KeyModifiers(%b).Accelerator() = %v, want %v", tt.mods, got, tt.want)
		}
	}
}
