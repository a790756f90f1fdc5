// Package components defines ECS components for the aquarium.
package components

// Sprite is a drawable handle owned by the renderer. The simulation never
// inspects it; it only forwards position and facing.
type Sprite interface {
	Draw(x, y float64)
	SetFlipped(flipped bool)
}

// PowerUpType enumerates pickup effects.
type PowerUpType uint8

const (
	PowerUpSpeedBoost PowerUpType = iota
)

// String returns the name of the power-up type.
func (t PowerUpType) String() string {
	switch t {
	case PowerUpSpeedBoost:
		return "speed_boost"
	default:
		return "unknown"
	}
}

// PowerUp is a pickable item. X, Y is the item's center.
type PowerUp struct {
	X, Y   float64
	Radius float64
	Type   PowerUpType
	Sprite Sprite
}
