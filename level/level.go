// Package level tracks per-level population targets, the running level
// score and the circular progression between levels.
package level

import (
	"fmt"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
)

// PopulationNode is the target and live count of one species in a level.
type PopulationNode struct {
	Kind       components.Kind
	Population int // target
	Current    int // live creatures counted against the target
}

// Level is one stage of the game: population targets plus a score threshold.
type Level struct {
	Number      int
	nodes       []PopulationNode
	score       int
	targetScore int
}

// New creates a level. Nodes are copied and their live counts zeroed.
func New(number, targetScore int, nodes []PopulationNode) *Level {
	l := &Level{
		Number:      number,
		nodes:       make([]PopulationNode, len(nodes)),
		targetScore: targetScore,
	}
	copy(l.nodes, nodes)
	for i := range l.nodes {
		l.nodes[i].Current = 0
	}
	return l
}

// ConsumePopulation records that a creature of kind was eaten. The first
// node matching kind loses one live creature and the level score gains
// value. Nodes already at zero are left alone.
func (l *Level) ConsumePopulation(kind components.Kind, value int) bool {
	for i := range l.nodes {
		n := &l.nodes[i]
		if n.Kind != kind {
			continue
		}
		if n.Current == 0 {
			return false
		}
		n.Current--
		l.score += value
		return true
	}
	return false
}

// Repopulate returns one kind per creature missing from each node and
// marks every node as full. The caller is expected to spawn them.
func (l *Level) Repopulate() []components.Kind {
	var spawns []components.Kind
	for i := range l.nodes {
		n := &l.nodes[i]
		delta := n.Population - n.Current
		if delta <= 0 {
			continue
		}
		for j := 0; j < delta; j++ {
			spawns = append(spawns, n.Kind)
		}
		n.Current = n.Population
	}
	return spawns
}

// IsCompleted reports whether the level score reached the target.
func (l *Level) IsCompleted() bool {
	return l.score >= l.targetScore
}

// Reset zeroes the score and every live count so the next Repopulate restocks fully.
func (l *Level) Reset() {
	l.score = 0
	for i := range l.nodes {
		l.nodes[i].Current = 0
	}
}

// Score returns the running level score.
func (l *Level) Score() int { return l.score }

// TargetScore returns the completion threshold.
func (l *Level) TargetScore() int { return l.targetScore }

// Nodes returns a copy of the population nodes.
func (l *Level) Nodes() []PopulationNode {
	out := make([]PopulationNode, len(l.nodes))
	copy(out, l.nodes)
	return out
}

// Snapshot is a read-only view of a level for HUD and telemetry.
type Snapshot struct {
	Number      int
	Score       int
	TargetScore int
	Completed   bool
	Nodes       []PopulationNode
}

// Snapshot captures the current state of the level.
func (l *Level) Snapshot() Snapshot {
	return Snapshot{
		Number:      l.Number,
		Score:       l.score,
		TargetScore: l.targetScore,
		Completed:   l.IsCompleted(),
		Nodes:       l.Nodes(),
	}
}

// FromConfig builds the level list described by cfg.Levels.
func FromConfig(cfg *config.Config) ([]*Level, error) {
	levels := make([]*Level, 0, len(cfg.Levels))
	for i, lc := range cfg.Levels {
		nodes := make([]PopulationNode, 0, len(lc.Population))
		for j, pc := range lc.Population {
			kind, ok := components.ParseKind(pc.Species)
			if !ok {
				return nil, fmt.Errorf("level %d population %d: unknown species %q", i, j, pc.Species)
			}
			nodes = append(nodes, PopulationNode{Kind: kind, Population: pc.Count})
		}
		levels = append(levels, New(i, lc.TargetScore, nodes))
	}
	return levels, nil
}
