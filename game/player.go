package game

import (
	"math"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/systems"
)

// Player is the creature steered by input. It is not an ECS entity; the
// world only ever sees it through Actor().
type Player struct {
	pos    components.Position
	dir    components.Direction
	body   components.Body
	motion components.Motion
	bounds components.Bounds
	walls  systems.Walls
	sprite components.Sprite

	score int
	lives int
	power int

	damageDebounce int // ticks of invulnerability left
	baseSpeed      int
	speedCap       int
	boostTicks     int
	boostMaxTicks  int
	scorePerPower  int
}

// NewPlayer creates a player at (x, y) using the player section of cfg.
func NewPlayer(cfg *config.Config, x, y float64, sprite components.Sprite) *Player {
	pc := cfg.Player
	scorePerPower := pc.ScorePerPower
	if scorePerPower <= 0 {
		scorePerPower = 25
	}
	return &Player{
		pos:           components.Position{X: x, Y: y},
		body:          components.Body{Radius: pc.Radius},
		motion:        components.Motion{Speed: pc.Speed},
		bounds:        components.Bounds{W: cfg.Screen.Width, H: cfg.Screen.Height},
		walls:         systems.NewWalls(cfg),
		sprite:        sprite,
		lives:         pc.Lives,
		power:         pc.Power,
		baseSpeed:     pc.Speed,
		speedCap:      pc.Speed * 2,
		boostMaxTicks: cfg.Derived.BoostMaxTicks,
		scorePerPower: scorePerPower,
	}
}

// Actor returns a mutable view for movement and collision code.
func (p *Player) Actor() systems.Actor {
	return systems.Actor{
		Pos:    &p.pos,
		Dir:    &p.dir,
		Body:   &p.body,
		Motion: &p.motion,
		Bounds: &p.bounds,
	}
}

// SetDirection sets the heading from input. The vector is normalized.
func (p *Player) SetDirection(dx, dy float64) {
	p.dir = components.Direction{DX: dx, DY: dy}
	systems.Normalize(&p.dir)
}

// SetBounds updates the area the player may move in.
func (p *Player) SetBounds(w, h int) {
	p.bounds = components.Bounds{W: w, H: h}
}

// Update runs the per-frame timers and moves the player.
func (p *Player) Update() {
	if p.boostTicks > 0 {
		p.boostTicks--
		if p.boostTicks == 0 {
			p.motion.Speed = p.baseSpeed
		}
	}
	if p.damageDebounce > 0 {
		p.damageDebounce--
	}

	a := p.Actor()
	systems.Step(a, 1)
	systems.Bounce(a, p.walls)

	if p.sprite != nil && p.dir.DX != 0 {
		p.sprite.SetFlipped(systems.FacingLeft(p.dir))
	}
}

// LoseLife removes a life unless the player is still invulnerable from the
// last hit, then arms the debounce. It reports whether a life was taken.
func (p *Player) LoseLife(debounce int) bool {
	if p.damageDebounce > 0 {
		return false
	}
	if p.lives > 0 {
		p.lives--
	}
	p.damageDebounce = debounce
	return true
}

// AddToScore adds amount*weight points and returns how many multiples of
// the score-per-power step the new score crossed.
func (p *Player) AddToScore(amount, weight int) int {
	gain := amount * weight
	if gain <= 0 {
		return 0
	}
	before := p.score
	p.score += gain
	return p.score/p.scorePerPower - before/p.scorePerPower
}

// IncreasePower raises power by n. Power never decreases.
func (p *Player) IncreasePower(n int) {
	if n > 0 {
		p.power += n
	}
}

// ActivateSpeedBoost multiplies the base speed for up to frames ticks.
// Duration is capped at the configured maximum and speed at twice the base.
func (p *Player) ActivateSpeedBoost(multiplier float64, frames int) {
	if p.boostMaxTicks > 0 {
		frames = min(frames, p.boostMaxTicks)
	}
	p.boostTicks = max(0, frames)
	p.speedCap = p.baseSpeed * 2
	target := int(math.Round(float64(p.baseSpeed) * multiplier))
	p.motion.Speed = min(target, p.speedCap)
	if p.boostTicks == 0 {
		p.motion.Speed = p.baseSpeed
	}
}

// Translate moves the player without changing its heading.
func (p *Player) Translate(dx, dy float64) {
	systems.Translate(p.Actor(), dx, dy)
}

// Draw renders the player sprite. It never mutates state.
func (p *Player) Draw() {
	if p.sprite != nil {
		p.sprite.Draw(p.pos.X, p.pos.Y)
	}
}

// Score returns the total score.
func (p *Player) Score() int { return p.score }

// Lives returns the remaining lives.
func (p *Player) Lives() int { return p.lives }

// Power returns the current power.
func (p *Player) Power() int { return p.power }

// Speed returns the current speed including any boost.
func (p *Player) Speed() int { return p.motion.Speed }

// BaseSpeed returns the unboosted speed.
func (p *Player) BaseSpeed() int { return p.baseSpeed }

// BoostTicks returns the ticks of speed boost left.
func (p *Player) BoostTicks() int { return p.boostTicks }

// Invulnerable reports whether a hit would currently be absorbed.
func (p *Player) Invulnerable() bool { return p.damageDebounce > 0 }

// Position returns the player's anchor.
func (p *Player) Position() components.Position { return p.pos }

// Radius returns the collision radius.
func (p *Player) Radius() float64 { return p.body.Radius }
