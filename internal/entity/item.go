package entity

// ItemType names the consumable kinds.
type ItemType uint8

const (
	HealthPotion ItemType = iota
	ManaPotion
)

func (t ItemType) String() string {
	switch t {
	case HealthPotion:
		return "health potion"
	case ManaPotion:
		return "mana potion"
	}
	return "unknown"
}

func (t ItemType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Item is a consumable. It lives either in the player's inventory or
// in the grid's item overlay keyed by position, never both.
type Item struct {
	ID   ID
	Type ItemType
}

// Corpse marks the death tile of a defeated enemy, keyed by position
// in the state's overlay map. It inherits the enemy's ID and remembers
// the source type for raising.
type Corpse struct {
	ID         ID
	SourceType EnemyType
}
