package level

// Progression walks an ordered list of levels in a loop. The counter is
// never wrapped; the active index is always counter mod len(levels).
type Progression struct {
	levels  []*Level
	counter int
}

// NewProgression creates a progression starting at the first level.
func NewProgression(levels []*Level) *Progression {
	return &Progression{levels: levels}
}

// Len returns the number of levels.
func (p *Progression) Len() int {
	return len(p.levels)
}

// Counter returns how many levels have been completed in total.
func (p *Progression) Counter() int {
	return p.counter
}

// Index returns the active level index, or -1 when there are no levels.
func (p *Progression) Index() int {
	if len(p.levels) == 0 {
		return -1
	}
	return p.counter % len(p.levels)
}

// Current returns the active level.
func (p *Progression) Current() (*Level, bool) {
	i := p.Index()
	if i < 0 {
		return nil, false
	}
	return p.levels[i], true
}

// Advance moves to the next level, wrapping after the last one.
func (p *Progression) Advance() {
	p.counter++
}

// Completed returns the completion flag of every level in order.
func (p *Progression) Completed() []bool {
	flags := make([]bool, len(p.levels))
	for i, l := range p.levels {
		flags[i] = l.IsCompleted()
	}
	return flags
}

// Levels returns the levels in order. The slice is shared.
func (p *Progression) Levels() []*Level {
	return p.levels
}
