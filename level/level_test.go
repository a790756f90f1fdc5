package level

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
)

func TestConsumePopulation(t *testing.T) {
	l := New(0, 10, []PopulationNode{
		{Kind: components.KindNPC, Population: 2},
		{Kind: components.KindBiggerFish, Population: 1},
	})

	// Nothing live yet: consumption is a no-op
	if l.ConsumePopulation(components.KindNPC, 1) {
		t.Error("consumed from an empty node")
	}
	if l.Score() != 0 {
		t.Errorf("score = %d, want 0", l.Score())
	}

	l.Repopulate()
	if !l.ConsumePopulation(components.KindBiggerFish, 5) {
		t.Fatal("expected consumption")
	}
	if l.Score() != 5 {
		t.Errorf("score = %d, want 5", l.Score())
	}
	if l.ConsumePopulation(components.KindBiggerFish, 5) {
		t.Error("double consumption must be a no-op")
	}
	if l.Score() != 5 {
		t.Errorf("score = %d after no-op, want 5", l.Score())
	}

	// Kind with no node
	if l.ConsumePopulation(components.KindAngelfish, 3) {
		t.Error("consumed a kind the level does not have")
	}
}

func TestRepopulate(t *testing.T) {
	l := New(0, 10, []PopulationNode{
		{Kind: components.KindNPC, Population: 3},
		{Kind: components.KindPufferFish, Population: 1},
		{Kind: components.KindAngelfish, Population: 0},
	})

	spawns := l.Repopulate()
	want := []components.Kind{components.KindNPC, components.KindNPC, components.KindNPC, components.KindPufferFish}
	if len(spawns) != len(want) {
		t.Fatalf("spawns = %v, want %v", spawns, want)
	}
	for i := range want {
		if spawns[i] != want[i] {
			t.Errorf("spawns[%d] = %v, want %v", i, spawns[i], want[i])
		}
	}

	if again := l.Repopulate(); len(again) != 0 {
		t.Errorf("second repopulate = %v, want none", again)
	}

	l.ConsumePopulation(components.KindNPC, 1)
	if again := l.Repopulate(); len(again) != 1 || again[0] != components.KindNPC {
		t.Errorf("after one eaten repopulate = %v, want [npc]", again)
	}
}

func TestPopulationMonotonicity(t *testing.T) {
	kinds := []components.Kind{components.KindNPC, components.KindSurgeonfish}
	l := New(0, 1000, []PopulationNode{
		{Kind: kinds[0], Population: 4},
		{Kind: kinds[1], Population: 2},
	})
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 5000; i++ {
		switch rng.Intn(4) {
		case 0:
			l.Repopulate()
		case 1:
			l.Reset()
		default:
			l.ConsumePopulation(kinds[rng.Intn(2)], 1)
		}
		for _, n := range l.Nodes() {
			if n.Current < 0 || n.Current > n.Population {
				t.Fatalf("step %d: node %v current %d outside [0,%d]", i, n.Kind, n.Current, n.Population)
			}
		}
	}
}

func TestCompletionAndReset(t *testing.T) {
	l := New(0, 6, []PopulationNode{{Kind: components.KindNPC, Population: 5}})
	l.Repopulate()

	for i := 0; i < 2; i++ {
		l.ConsumePopulation(components.KindNPC, 3)
	}
	if !l.IsCompleted() {
		t.Fatalf("score %d target 6: want completed", l.Score())
	}

	l.Reset()
	if l.IsCompleted() {
		t.Error("completed immediately after reset")
	}
	if l.Score() != 0 {
		t.Errorf("score after reset = %d", l.Score())
	}
	for _, n := range l.Nodes() {
		if n.Current != 0 {
			t.Errorf("node %v current = %d after reset, want 0", n.Kind, n.Current)
		}
		if n.Population != 5 {
			t.Errorf("reset changed target to %d", n.Population)
		}
	}
	if got := len(l.Repopulate()); got != 5 {
		t.Errorf("repopulate after reset = %d spawns, want 5", got)
	}
}

func TestLevelScenario(t *testing.T) {
	l := New(0, 10, []PopulationNode{{Kind: components.KindNPC, Population: 3}})

	spawns := l.Repopulate()
	if len(spawns) != 3 {
		t.Fatalf("spawns = %d, want 3", len(spawns))
	}
	if n := l.Nodes()[0]; n.Current != 3 {
		t.Fatalf("current = %d, want 3", n.Current)
	}

	for i := 0; i < 3; i++ {
		l.ConsumePopulation(components.KindNPC, 4)
	}
	if l.Score() != 12 {
		t.Errorf("score = %d, want 12", l.Score())
	}
	if !l.IsCompleted() {
		t.Error("want completed")
	}
}

func TestNewCopiesNodes(t *testing.T) {
	nodes := []PopulationNode{{Kind: components.KindNPC, Population: 2, Current: 7}}
	l := New(0, 1, nodes)
	nodes[0].Population = 99
	if n := l.Nodes()[0]; n.Population != 2 || n.Current != 0 {
		t.Errorf("node = %+v, want population 2 current 0", n)
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	levels, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	if len(levels) != len(cfg.Levels) {
		t.Fatalf("levels = %d, want %d", len(levels), len(cfg.Levels))
	}
	first := levels[0]
	if first.TargetScore() != cfg.Levels[0].TargetScore {
		t.Errorf("target = %d, want %d", first.TargetScore(), cfg.Levels[0].TargetScore)
	}
	total := 0
	for _, pc := range cfg.Levels[0].Population {
		total += pc.Count
	}
	if got := len(first.Repopulate()); got != total {
		t.Errorf("first level spawns %d, want %d", got, total)
	}

	cfg.Levels[1].Population[0].Species = "kraken"
	if _, err := FromConfig(cfg); err == nil {
		t.Error("expected error for unknown species")
	}
}

func TestSnapshot(t *testing.T) {
	l := New(3, 5, []PopulationNode{{Kind: components.KindAngelfish, Population: 2}})
	l.Repopulate()
	l.ConsumePopulation(components.KindAngelfish, 3)

	s := l.Snapshot()
	if s.Number != 3 || s.Score != 3 || s.TargetScore != 5 || s.Completed {
		t.Errorf("snapshot = %+v", s)
	}
	s.Nodes[0].Current = 42
	if l.Nodes()[0].Current == 42 {
		t.Error("snapshot shares node storage")
	}
}
