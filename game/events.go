package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/components"
)

// EventKind tags a game event.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventCollision
	EventCreatureAdded
	EventCreatureRemoved
	EventGameOver
	EventNewLevel
	EventPowerUpSpawned
)

var eventNames = [...]string{
	EventNone:            "none",
	EventCollision:       "collision",
	EventCreatureAdded:   "creature_added",
	EventCreatureRemoved: "creature_removed",
	EventGameOver:        "game_over",
	EventNewLevel:        "new_level",
	EventPowerUpSpawned:  "powerup_spawned",
}

// String returns the event name.
func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event is the outcome of one step. It is returned by value and never kept
// past the frame that produced it. The player is the implicit first party
// of collision and game-over events.
type Event struct {
	Kind    EventKind
	Target  ecs.Entity      // creature involved, zero entity when none
	Species components.Kind // kind of Target
	Value   int             // value of Target

	// EventNewLevel only
	Level       int // index of the level now active
	Counter     int // levels completed so far
	Score       int // score the finished level ended with
	TargetScore int // target the finished level had
}

// IsCollision reports whether the event is a collision with a creature.
func (e Event) IsCollision() bool {
	return e.Kind == EventCollision
}

// IsGameOver reports whether the event ends the game.
func (e Event) IsGameOver() bool {
	return e.Kind == EventGameOver
}
