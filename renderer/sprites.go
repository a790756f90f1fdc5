// Package renderer draws the aquarium with raylib. The simulation only sees
// it through the sprite, viewport and input interfaces.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
)

// palette is the body and fin color of one species.
type palette struct {
	body rl.Color
	fin  rl.Color
}

var palettes = map[components.Kind]palette{
	components.KindNPC:         {rl.NewColor(250, 200, 80, 255), rl.NewColor(230, 150, 40, 255)},
	components.KindBiggerFish:  {rl.NewColor(90, 110, 140, 255), rl.NewColor(60, 75, 100, 255)},
	components.KindPufferFish:  {rl.NewColor(220, 210, 120, 255), rl.NewColor(170, 150, 70, 255)},
	components.KindAngelfish:   {rl.NewColor(235, 235, 245, 255), rl.NewColor(40, 40, 60, 255)},
	components.KindSurgeonfish: {rl.NewColor(40, 90, 220, 255), rl.NewColor(250, 210, 40, 255)},
}

var playerPalette = palette{rl.NewColor(255, 120, 40, 255), rl.NewColor(255, 255, 255, 255)}

// fishSprite draws an ellipse body with a tail. It faces right unless flipped.
type fishSprite struct {
	radius  float32
	colors  palette
	flipped bool
}

// Draw renders the fish with its top-left anchor at (x, y).
func (s *fishSprite) Draw(x, y float64) {
	r := s.radius
	cx, cy := float32(x)+r, float32(y)+r

	facing := float32(1)
	tailRotation := float32(0)
	if s.flipped {
		facing = -1
		tailRotation = 180
	}

	tail := rl.Vector2{X: cx - facing*r*0.85, Y: cy}
	rl.DrawPoly(tail, 3, r*0.45, tailRotation, s.colors.fin)
	rl.DrawEllipse(int32(cx), int32(cy), r*0.8, r*0.5, s.colors.body)
	rl.DrawCircle(int32(cx+facing*r*0.45), int32(cy-r*0.12), max(2, r*0.09), rl.Black)
}

// SetFlipped mirrors the fish to face left.
func (s *fishSprite) SetFlipped(flipped bool) { s.flipped = flipped }

// pickupSprite draws a power-up orb. Its anchor is the item's top-left.
type pickupSprite struct {
	radius float32
	color  rl.Color
}

func (s *pickupSprite) Draw(x, y float64) {
	cx, cy := int32(x+float64(s.radius)), int32(y+float64(s.radius))
	rl.DrawCircle(cx, cy, s.radius, rl.Fade(s.color, 0.35))
	rl.DrawCircle(cx, cy, s.radius*0.6, s.color)
	rl.DrawText("S", cx-5, cy-9, 18, rl.Black)
}

func (s *pickupSprite) SetFlipped(bool) {}

// Sheet hands out one sprite per creature, sized from the species config.
type Sheet struct {
	cfg *config.Config
}

// NewSheet creates a sprite sheet for cfg.
func NewSheet(cfg *config.Config) *Sheet {
	return &Sheet{cfg: cfg}
}

// Sprite returns a new sprite for a creature of kind. Each creature gets its
// own instance so facing is tracked per creature.
func (s *Sheet) Sprite(kind components.Kind) components.Sprite {
	sc, _ := s.cfg.SpeciesFor(kind.String())
	colors, ok := palettes[kind]
	if !ok {
		colors = palette{rl.Magenta, rl.Purple}
	}
	return &fishSprite{radius: float32(sc.Radius), colors: colors}
}

// PlayerSprite returns the player's sprite.
func (s *Sheet) PlayerSprite() components.Sprite {
	return &fishSprite{radius: float32(s.cfg.Player.Radius), colors: playerPalette}
}

// PowerUpSprite returns a sprite for a power-up of type t.
func (s *Sheet) PowerUpSprite(t components.PowerUpType) components.Sprite {
	color := rl.SkyBlue
	if t == components.PowerUpSpeedBoost {
		color = rl.Gold
	}
	return &pickupSprite{radius: float32(s.cfg.PowerUp.Radius), color: color}
}
