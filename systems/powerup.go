package systems

import (
	"math/rand"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
)

// PowerUpSpawner decides when and where new pickups appear.
type PowerUpSpawner struct {
	MaxActive int
	Cooldown  int
	Roll      int
	Threshold int
	Margin    int
	Radius    float64

	timer int
}

// NewPowerUpSpawner creates a spawner from config.
func NewPowerUpSpawner(cfg config.PowerUpConfig) *PowerUpSpawner {
	return &PowerUpSpawner{
		MaxActive: cfg.MaxActive,
		Cooldown:  cfg.CooldownTicks,
		Roll:      cfg.Roll,
		Threshold: cfg.Threshold,
		Margin:    cfg.Margin,
		Radius:    cfg.Radius,
	}
}

// Maybe advances the cooldown timer and possibly returns a new speed boost
// placed inside w x h. Nothing happens while active is at the cap.
func (s *PowerUpSpawner) Maybe(active, w, h int, rng *rand.Rand) (components.PowerUp, bool) {
	if active >= s.MaxActive {
		return components.PowerUp{}, false
	}
	s.timer++
	if s.timer < s.Cooldown {
		return components.PowerUp{}, false
	}
	s.timer = 0

	if rng.Intn(max(1, s.Roll)) < s.Threshold {
		return components.PowerUp{}, false
	}

	return components.PowerUp{
		X:      float64(s.Margin + rng.Intn(max(1, w-2*s.Margin))),
		Y:      float64(s.Margin + rng.Intn(max(1, h-2*s.Margin))),
		Radius: s.Radius,
		Type:   components.PowerUpSpeedBoost,
	}, true
}

// Reset clears the cooldown timer.
func (s *PowerUpSpawner) Reset() {
	s.timer = 0
}

// InReach reports whether the actor's circle touches the pickup.
func InReach(a Actor, p components.PowerUp) bool {
	if !a.Valid() {
		return false
	}
	c := a.Center()
	dx, dy := c.X-p.X, c.Y-p.Y
	rr := a.Body.Radius + p.Radius
	return dx*dx+dy*dy <= rr*rr
}
