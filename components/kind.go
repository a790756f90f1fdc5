package components

// Kind identifies an NPC species.
type Kind uint8

const (
	KindNPC Kind = iota
	KindBiggerFish
	KindPufferFish
	KindAngelfish
	KindSurgeonfish

	// KindCount is the number of species; size per-kind arrays with it.
	KindCount
)

var kindNames = [KindCount]string{
	KindNPC:         "npc",
	KindBiggerFish:  "bigger_fish",
	KindPufferFish:  "puffer_fish",
	KindAngelfish:   "angelfish",
	KindSurgeonfish: "surgeonfish",
}

// String returns the config name of the kind.
func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return "unknown"
}

// Valid reports whether k is a defined species.
func (k Kind) Valid() bool {
	return k < KindCount
}

// ParseKind maps a config name back to its Kind.
func ParseKind(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// AllKinds returns every defined species in declaration order.
func AllKinds() []Kind {
	kinds := make([]Kind, 0, KindCount)
	for k := Kind(0); k < KindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}
