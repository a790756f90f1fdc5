package renderer

import rl "github.com/gen2brain/raylib-go/raylib"

// WindowViewport reports the raylib window size.
type WindowViewport struct{}

// Size returns the current screen dimensions.
func (WindowViewport) Size() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

// KeyboardInput steers the player with the arrow keys or WASD.
type KeyboardInput struct{}

// Direction returns the held direction; the player normalizes it.
func (KeyboardInput) Direction() (dx, dy float64) {
	if rl.IsKeyDown(rl.KeyRight) || rl.IsKeyDown(rl.KeyD) {
		dx++
	}
	if rl.IsKeyDown(rl.KeyLeft) || rl.IsKeyDown(rl.KeyA) {
		dx--
	}
	if rl.IsKeyDown(rl.KeyDown) || rl.IsKeyDown(rl.KeyS) {
		dy++
	}
	if rl.IsKeyDown(rl.KeyUp) || rl.IsKeyDown(rl.KeyW) {
		dy--
	}
	return dx, dy
}
