package panzoom

// GestureKind distinguishes the two gestures the viewport understands.
type GestureKind uint8

const (
	GesturePan  GestureKind = iota // translate the image by -Delta
	GestureZoom                    // step the scale around Cursor
)

func (k GestureKind) String() string {
	if k == GestureZoom {
		return "zoom"
	}
	return "pan"
}

// Gesture is an already-classified input gesture.
type Gesture struct {
	Kind GestureKind
	// Cursor is the pointer position in client (screen) coordinates. Only
	// used by zoom gestures.
	Cursor Vec2
	// Delta is the scroll delta, positive right/down. Pan moves content by
	// -Delta; zoom steps in the direction of -Delta.Y.
	Delta Vec2
}

// ZoomDirection returns the scale step direction of a zoom gesture:
// scrolling up (negative Delta.Y) zooms in.
func (g Gesture) ZoomDirection() Direction {
	return DirectionOf(-g.Delta.Y)
}

// ClassifyWheel maps a raw wheel event to a gesture: with the accelerator
// modifier held it is a zoom, otherwise a pan.
func ClassifyWheel(mods KeyModifiers, cursor, delta Vec2) Gesture {
	kind := GesturePan
	if mods.Accelerator() {
		kind = GestureZoom
	}
	return Gesture{Kind: kind, Cursor: cursor, Delta: delta}
}
