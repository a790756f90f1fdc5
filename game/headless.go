package game

import "github.com/pthm-cable/aquarium/components"

// FixedViewport is a Viewport of constant size for headless runs and tests.
type FixedViewport struct {
	W, H int
}

// Size returns the fixed dimensions.
func (v FixedViewport) Size() (int, int) {
	return v.W, v.H
}

// nopSprite ignores every call.
type nopSprite struct{}

func (nopSprite) Draw(x, y float64)       {}
func (nopSprite) SetFlipped(flipped bool) {}

// NopSprites is a SpriteProvider whose sprites draw nothing.
type NopSprites struct{}

func (NopSprites) Sprite(components.Kind) components.Sprite               { return nopSprite{} }
func (NopSprites) PlayerSprite() components.Sprite                        { return nopSprite{} }
func (NopSprites) PowerUpSprite(components.PowerUpType) components.Sprite { return nopSprite{} }
