package game

import (
	"math"
	"testing"

	"github.com/pthm-cable/aquarium/components"
)

func TestAutopilotChasesPrey(t *testing.T) {
	s := newTestScene(t, testConfig())
	place(t, s.World(), components.KindNPC, 500, 305)
	// Far away and not edible: ignored
	place(t, s.World(), components.KindBiggerFish, 20, 20)

	dx, dy := NewAutopilot(s).Direction()
	if dx < 0.99 || math.Abs(dy) > 0.05 {
		t.Errorf("direction = (%f, %f), want toward the npc on the right", dx, dy)
	}
}

func TestAutopilotFleesThreats(t *testing.T) {
	s := newTestScene(t, testConfig())
	place(t, s.World(), components.KindNPC, 100, 305)
	// Threat centered 105 to the right of the player
	place(t, s.World(), components.KindBiggerFish, 380, 275)

	dx, dy := NewAutopilot(s).Direction()
	if math.Abs(dx+1) > 1e-9 || math.Abs(dy) > 1e-9 {
		t.Errorf("direction = (%f, %f), want (-1, 0)", dx, dy)
	}
}

func TestAutopilotIdle(t *testing.T) {
	s := newTestScene(t, testConfig())
	if dx, dy := NewAutopilot(s).Direction(); dx != 0 || dy != 0 {
		t.Errorf("direction = (%f, %f) with no creatures, want (0, 0)", dx, dy)
	}
	if dx, dy := NewAutopilot(nil).Direction(); dx != 0 || dy != 0 {
		t.Error("nil scene should not steer")
	}
}
