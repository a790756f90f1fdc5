package components

// Species identifies an NPC creature and what it is worth when eaten.
type Species struct {
	Kind   Kind
	Value  int    // nutrition awarded and power required to eat it
	Sprite Sprite // shared template clone; may be nil in headless runs
}

// GaitStyle selects the motion algorithm for a creature.
type GaitStyle uint8

const (
	GaitCruise  GaitStyle = iota // straight line, reflect off walls
	GaitPuffer                   // inflate/deflate cycle with lateral wobble
	GaitAngel                    // sine-wave vertical oscillation
	GaitSurgeon                  // seek a wandering target
)

// Gait holds per-creature motion state. Only the fields used by Style are meaningful.
type Gait struct {
	Style       GaitStyle
	SpeedFactor float64 // multiplier on Motion.Speed
	Tick        int     // strokes taken since spawn

	// Puffer
	BaseRadius float64
	Inflated   bool

	// Angel
	Phase float64
	HSign float64
	VSign float64

	// Surgeon
	TargetX, TargetY float64
}
