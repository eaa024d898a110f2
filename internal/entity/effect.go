package entity

// StatusType names the timed conditions an enemy can carry. Minions
// are never status targets.
type StatusType uint8

const (
	Burn StatusType = iota
	Frozen
)

func (t StatusType) String() string {
	switch t {
	case Burn:
		return "burn"
	case Frozen:
		return "frozen"
	}
	return "unknown"
}

func (t StatusType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// StatusEffect is a timed condition on an enemy. TurnsLeft counts
// whole resolution turns; it decrements once per turn and the effect
// drops at zero.
type StatusEffect struct {
	Type      StatusType
	TurnsLeft int
}

// TerrainEffectType names the timed effects bound to a grid tile.
type TerrainEffectType uint8

const (
	Burning TerrainEffectType = iota
)

func (t TerrainEffectType) String() string {
	switch t {
	case Burning:
		return "burning"
	}
	return "unknown"
}

func (t TerrainEffectType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// TerrainEffect is a timed effect on a tile, keyed by position in the
// state's overlay map.
type TerrainEffect struct {
	Type      TerrainEffectType
	TurnsLeft int
}
