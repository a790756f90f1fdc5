// Package systems contains the simulation rules for the aquarium: movement,
// wall bounces, collision math and power-up spawning.
package systems

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
)

// Actor is a pointer view over the kinematic components of one creature.
// The player and ECS-backed NPCs both expose themselves this way so movement
// and collision code has a single shape to work with.
type Actor struct {
	Pos    *components.Position
	Dir    *components.Direction
	Body   *components.Body
	Motion *components.Motion
	Bounds *components.Bounds
}

// Valid reports whether the view carries the components every rule needs.
func (a Actor) Valid() bool {
	return a.Pos != nil && a.Dir != nil && a.Body != nil
}

// Center returns the collision center (anchor offset by the radius on both axes).
func (a Actor) Center() r2.Vec {
	r := a.Body.Radius
	return r2.Vec{X: a.Pos.X + r, Y: a.Pos.Y + r}
}

// speed returns the scalar speed, zero when the view has no Motion.
func (a Actor) speed() float64 {
	if a.Motion == nil {
		return 0
	}
	return float64(a.Motion.Speed)
}

// Hard fallbacks for a zero Walls.
const (
	defaultWallW  = 1280
	defaultWallH  = 720
	defaultExtent = 20.0
)

// Walls supplies the bounds and sprite extent used when an actor's own
// bounds were never set or its radius is zero.
type Walls struct {
	Bounds components.Bounds
	Extent float64
}

// NewWalls takes the screen size and fallback extent from cfg.
func NewWalls(cfg *config.Config) Walls {
	return Walls{
		Bounds: components.Bounds{W: cfg.Screen.Width, H: cfg.Screen.Height},
		Extent: cfg.World.FallbackExtent,
	}
}

// Normalize scales d to unit length. A zero direction stays zero.
func Normalize(d *components.Direction) {
	v := r2.Vec{X: d.DX, Y: d.DY}
	n := r2.Norm(v)
	if n == 0 {
		return
	}
	v = r2.Scale(1/n, v)
	d.DX, d.DY = v.X, v.Y
}

// extentFor returns the sprite extent used for wall clamping.
func (w Walls) extentFor(radius float64) float64 {
	switch {
	case radius > 0:
		return radius * 2
	case w.Extent > 0:
		return w.Extent
	}
	return defaultExtent
}

// limits returns the largest allowed anchor coordinates for an actor.
func (w Walls) limits(a Actor) (maxX, maxY float64) {
	b := w.Bounds
	if a.Bounds != nil && a.Bounds.IsSet() {
		b = *a.Bounds
	} else if !b.IsSet() {
		b = components.Bounds{W: defaultWallW, H: defaultWallH}
	}
	ext := w.extentFor(a.Body.Radius)
	return max(0, float64(b.W)-ext), max(0, float64(b.H)-ext)
}

// Bounce clamps the actor inside its bounds and negates the direction
// component of every axis that was out of range. It reports which axes hit.
func Bounce(a Actor, w Walls) (hitX, hitY bool) {
	if !a.Valid() {
		return false, false
	}
	maxX, maxY := w.limits(a)

	// Horizontal
	if a.Pos.X < 0 {
		a.Pos.X = 0
		a.Dir.DX = -a.Dir.DX
		hitX = true
	} else if a.Pos.X > maxX {
		a.Pos.X = maxX
		a.Dir.DX = -a.Dir.DX
		hitX = true
	}

	// Vertical
	if a.Pos.Y < 0 {
		a.Pos.Y = 0
		a.Dir.DY = -a.Dir.DY
		hitY = true
	} else if a.Pos.Y > maxY {
		a.Pos.Y = maxY
		a.Dir.DY = -a.Dir.DY
		hitY = true
	}

	return hitX, hitY
}

// Step advances the actor along its direction by speed*factor. It does not bounce.
func Step(a Actor, factor float64) {
	s := a.speed() * factor
	a.Pos.X += a.Dir.DX * s
	a.Pos.Y += a.Dir.DY * s
}

// Translate moves the actor by (dx, dy) without touching its direction.
func Translate(a Actor, dx, dy float64) {
	if a.Pos == nil {
		return
	}
	a.Pos.X += dx
	a.Pos.Y += dy
}

// Reflect mirrors d about the line perpendicular to the unit normal n.
func Reflect(d *components.Direction, n r2.Vec) {
	v := r2.Vec{X: d.DX, Y: d.DY}
	v = r2.Sub(v, r2.Scale(2*r2.Dot(v, n), n))
	d.DX, d.DY = v.X, v.Y
}
