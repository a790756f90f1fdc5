package level

import (
	"testing"

	"github.com/pthm-cable/aquarium/components"
)

func threeLevels() []*Level {
	return []*Level{
		New(0, 1, []PopulationNode{{Kind: components.KindNPC, Population: 1}}),
		New(1, 2, []PopulationNode{{Kind: components.KindBiggerFish, Population: 1}}),
		New(2, 3, []PopulationNode{{Kind: components.KindPufferFish, Population: 1}}),
	}
}

func TestProgressionCircular(t *testing.T) {
	p := NewProgression(threeLevels())
	want := []int{0, 1, 2, 0, 1, 2}

	for counter, idx := range want {
		if p.Counter() != counter {
			t.Fatalf("counter = %d, want %d", p.Counter(), counter)
		}
		if p.Index() != idx {
			t.Errorf("counter %d: index = %d, want %d", counter, p.Index(), idx)
		}
		l, ok := p.Current()
		if !ok || l.Number != idx {
			t.Errorf("counter %d: current = %v, want level %d", counter, l, idx)
		}
		p.Advance()
	}
}

func TestProgressionEmpty(t *testing.T) {
	p := NewProgression(nil)
	if l, ok := p.Current(); ok || l != nil {
		t.Error("empty progression returned a level")
	}
	if p.Index() != -1 {
		t.Errorf("index = %d, want -1", p.Index())
	}
	p.Advance()
	if _, ok := p.Current(); ok {
		t.Error("empty progression returned a level after advance")
	}
	if len(p.Completed()) != 0 {
		t.Error("empty progression has completion flags")
	}
}

func TestProgressionCompleted(t *testing.T) {
	levels := threeLevels()
	p := NewProgression(levels)
	levels[1].Repopulate()
	levels[1].ConsumePopulation(components.KindBiggerFish, 5)

	flags := p.Completed()
	want := []bool{false, true, false}
	for i := range want {
		if flags[i] != want[i] {
			t.Errorf("flags[%d] = %v, want %v", i, flags[i], want[i])
		}
	}
}
