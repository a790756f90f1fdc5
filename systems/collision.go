package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// contactEpsilon floors the squared center distance so coincident
// creatures never divide by zero.
const contactEpsilon = 1e-6

// ContactInfo describes the geometry of one overlapping pair.
type ContactInfo struct {
	Normal   r2.Vec  // unit vector from b's center toward a's; zero when centers coincide
	Distance float64 // center distance, floored at sqrt(contactEpsilon)
	Overlap  float64 // sum of radii minus distance, never negative
}

// Penetrating reports whether the pair actually overlaps.
func (c ContactInfo) Penetrating() bool {
	return c.Overlap > 0
}

// CheckCollision reports whether the circles of a and b touch or overlap.
// It is symmetric and has no side effects. Invalid actors never collide.
func CheckCollision(a, b Actor) bool {
	if !a.Valid() || !b.Valid() {
		return false
	}
	d := r2.Sub(a.Center(), b.Center())
	sum := a.Body.Radius + b.Body.Radius
	return r2.Norm2(d) <= sum*sum
}

// Contact computes the separation normal, distance and overlap for a pair.
func Contact(a, b Actor) ContactInfo {
	if !a.Valid() || !b.Valid() {
		return ContactInfo{}
	}
	d := r2.Sub(a.Center(), b.Center())
	dist := math.Sqrt(max(contactEpsilon, r2.Norm2(d)))
	sum := a.Body.Radius + b.Body.Radius
	return ContactInfo{
		Normal:   r2.Scale(1/dist, d),
		Distance: dist,
		Overlap:  max(0, sum-dist),
	}
}

// Separate pushes a along the normal by share of the overlap and b the
// other way by the rest, then reflects both headings about the normal.
// It does nothing when the pair is not penetrating.
func Separate(a, b Actor, c ContactInfo, share float64) {
	if !c.Penetrating() || !a.Valid() || !b.Valid() {
		return
	}
	push := r2.Scale(c.Overlap*share, c.Normal)
	Translate(a, push.X, push.Y)
	push = r2.Scale(-c.Overlap*(1-share), c.Normal)
	Translate(b, push.X, push.Y)

	Reflect(a.Dir, c.Normal)
	Reflect(b.Dir, r2.Scale(-1, c.Normal))
}

// Knockback moves a by impulse along the contact normal.
func Knockback(a Actor, c ContactInfo, impulse float64) {
	k := r2.Scale(impulse, c.Normal)
	Translate(a, k.X, k.Y)
}
