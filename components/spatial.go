package components

// Position represents an entity's top-left anchor in world units.
// The collision center is Position + Body.Radius on both axes.
type Position struct {
	X, Y float64
}

// Direction is the heading of an entity. It is either (0,0) or unit length
// after normalization; the magnitude of motion comes from Motion.Speed.
type Direction struct {
	DX, DY float64
}

// Body holds physical properties of an entity.
type Body struct {
	Radius float64
}

// Motion holds the scalar speed applied along Direction each move.
type Motion struct {
	Speed int
}

// Bounds is the area an entity may occupy, refreshed from the viewport each update.
// A zero value means "unset" and movement falls back to the default bounds.
type Bounds struct {
	W, H int
}

// IsSet reports whether both dimensions are positive.
func (b Bounds) IsSet() bool {
	return b.W > 0 && b.H > 0
}
