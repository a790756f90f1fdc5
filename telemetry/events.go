// Package telemetry provides windowed gameplay statistics, performance
// timing and CSV output for aquarium runs.
package telemetry

import "github.com/pthm-cable/aquarium/components"

// EventType identifies telemetry events.
type EventType uint8

const (
	EventEaten EventType = iota
	EventLifeLost
	EventHitAbsorbed // weak collision while the player was invulnerable
	EventSpawn
	EventRemoved
	EventPowerUpSpawned
	EventPowerUpCollected
	EventLevelCompleted
)

// Event represents a single telemetry event.
type Event struct {
	Type   EventType
	Tick   int32
	Kind   components.Kind
	Amount int // creature value for eaten events, completing score for levels
}

// NewEatenEvent creates an event for a creature eaten by the player.
func NewEatenEvent(tick int32, kind components.Kind, value int) Event {
	return Event{Type: EventEaten, Tick: tick, Kind: kind, Amount: value}
}

// NewSpawnEvent creates an event for a creature added to the world.
func NewSpawnEvent(tick int32, kind components.Kind) Event {
	return Event{Type: EventSpawn, Tick: tick, Kind: kind}
}

// NewLevelCompletedEvent creates an event for a finished level.
func NewLevelCompletedEvent(tick int32, score int) Event {
	return Event{Type: EventLevelCompleted, Tick: tick, Amount: score}
}
