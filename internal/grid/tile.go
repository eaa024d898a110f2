package grid

// TileType classifies one cell. Empty, Obstacle, Water and Forest are
// the static terrain laid down at wave start; Corpse and Item mark
// cells that also carry an overlay entry. Whoever writes an overlay
// entry writes the matching tile type, and vice versa.
type TileType uint8

const (
	TileEmpty TileType = iota
	TileObstacle
	TileWater
	TileForest
	TileCorpse
	TileItem
)

func (t TileType) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileObstacle:
		return "obstacle"
	case TileWater:
		return "water"
	case TileForest:
		return "forest"
	case TileCorpse:
		return "corpse"
	case TileItem:
		return "item"
	}
	return "unknown"
}

func (t TileType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
