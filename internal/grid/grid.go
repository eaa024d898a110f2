// Package grid holds the battle grid geometry: coordinates, facings,
// terrain tiles and bounds checks. It stores terrain and answers
// spatial questions; combat rules live with the engine.
package grid

// Size is the side length of the square battle grid.
const Size = 12

// Grid is the static terrain matrix for one run. The zero value is an
// all-empty grid. Grid has value semantics: assignment copies the whole
// matrix, which is what state snapshots rely on.
type Grid struct {
	Tiles [Size][Size]TileType
}

// InBounds reports whether p lies on the grid. The grid is a fixed
// square, so this is a free function; the method form exists for
// callers already holding a grid.
func InBounds(p Position) bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

func (g *Grid) InBounds(p Position) bool {
	return InBounds(p)
}

// At returns the tile type at p. Out-of-bounds positions read as
// obstacles so callers clipping shapes against the edge see the edge
// as solid.
func (g *Grid) At(p Position) TileType {
	if !g.InBounds(p) {
		return TileObstacle
	}
	return g.Tiles[p.Y][p.X]
}

// Set writes the tile type at p. Out-of-bounds writes are dropped.
func (g *Grid) Set(p Position, t TileType) {
	if !g.InBounds(p) {
		return
	}
	g.Tiles[p.Y][p.X] = t
}
