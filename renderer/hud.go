package renderer

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/game"
)

// HUD renders the score line and the title cards.
type HUD struct{}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the in-game status.
func (h *HUD) Draw(st game.Status) {
	rl.DrawRectangle(0, 0, int32(rl.GetScreenWidth()), 58, rl.Fade(rl.Black, 0.35))

	rl.DrawText(
		fmt.Sprintf("Score: %d | Power: %d | Lives: %d", st.Score, st.Power, st.Lives),
		10, 8, 20, rl.White,
	)
	rl.DrawText(
		fmt.Sprintf("Level %d (%d/%d) | Cleared: %d | Fish: %d | FPS: %d",
			st.Level+1, st.LevelScore, st.LevelTarget, st.LevelsDone, st.Creatures, rl.GetFPS()),
		10, 34, 16, rl.LightGray,
	)

	x := int32(rl.GetScreenWidth()) - 200
	if st.BoostSeconds > 0 {
		rl.DrawText(fmt.Sprintf("Speed boost: %ds", st.BoostSeconds), x, 8, 18, rl.Gold)
	}
	if st.Invulnerable {
		rl.DrawText("Invulnerable", x, 32, 18, rl.Yellow)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(controls string) {
	rl.DrawText(controls, 10, int32(rl.GetScreenHeight())-25, 14, rl.Gray)
}

// DrawBanner renders a centered title card. It is the game's banner drawer.
func (h *HUD) DrawBanner(title, subtitle string) {
	w, ht := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	rl.DrawRectangle(0, 0, w, ht, rl.Fade(rl.Black, 0.5))

	tw := rl.MeasureText(title, 48)
	rl.DrawText(title, (w-tw)/2, ht/2-60, 48, rl.White)
	if subtitle != "" {
		sw := rl.MeasureText(subtitle, 20)
		rl.DrawText(subtitle, (w-sw)/2, ht/2, 20, rl.LightGray)
	}
}

// RestartButton draws the play-again button and reports whether it was clicked.
func (h *HUD) RestartButton() bool {
	w, ht := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	return gui.Button(rl.Rectangle{X: w/2 - 70, Y: ht/2 + 40, Width: 140, Height: 36}, "Play again")
}
