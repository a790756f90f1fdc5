package game

import "gonum.org/v1/gonum/spatial/r2"

// fleeRadius is how close a threat must be before the autopilot runs from it.
const fleeRadius = 180.0

// InputSource supplies the player's desired heading each frame.
type InputSource interface {
	Direction() (dx, dy float64)
}

// Autopilot steers the player in headless runs: it swims away from nearby
// creatures it cannot eat and otherwise chases the closest one it can.
type Autopilot struct {
	scene *AquariumScene
}

// NewAutopilot creates an autopilot for a scene.
func NewAutopilot(scene *AquariumScene) *Autopilot {
	return &Autopilot{scene: scene}
}

// Direction returns the steering vector for this frame.
func (a *Autopilot) Direction() (dx, dy float64) {
	if a.scene == nil || a.scene.player == nil || a.scene.world == nil {
		return 0, 0
	}
	p := a.scene.player
	w := a.scene.world
	here := p.Actor().Center()

	var flee r2.Vec
	var chase r2.Vec
	bestChase := -1.0

	for _, e := range w.order {
		c, ok := w.Creature(e)
		if !ok {
			continue
		}
		there := r2.Vec{X: c.X + c.Radius, Y: c.Y + c.Radius}
		d := r2.Sub(there, here)
		dist := r2.Norm(d)
		if dist == 0 {
			continue
		}

		if p.Power() < c.Value {
			if dist < fleeRadius+c.Radius {
				// Closer threats push harder
				flee = r2.Add(flee, r2.Scale(-1/(dist*dist), d))
			}
			continue
		}
		if bestChase < 0 || dist < bestChase {
			bestChase = dist
			chase = d
		}
	}

	v := chase
	if flee != (r2.Vec{}) {
		v = flee
	}
	if v == (r2.Vec{}) {
		return 0, 0
	}
	v = r2.Scale(1/r2.Norm(v), v)
	return v.X, v.Y
}
