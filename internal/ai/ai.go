// Package ai picks targets and single-step moves for enemies and
// minions. Movement is longest-axis-first with a fallback to the other
// axis, blocked by obstacle tiles and by an occupancy set the caller
// updates as units finish their moves.
package ai

import (
	"gridmage/internal/entity"
	"gridmage/internal/grid"
)

// NearestEnemy returns the roster index of the enemy closest to from
// by Manhattan distance, lowest index on ties. Returns -1 when the
// roster is empty.
func NearestEnemy(from grid.Position, enemies []entity.Enemy) int {
	best := -1
	bestDist := 0
	for i := range enemies {
		d := from.Manhattan(enemies[i].Position)
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// Target is what an enemy pursues this turn: the player, or the
// roster index of a minion that is strictly closer.
type Target struct {
	Pos    grid.Position
	Minion int
}

// PlayerTarget marks a Target as the player rather than a minion.
const PlayerTarget = -1

// SelectTarget picks between the player and the minions. The player
// is the baseline; a minion wins only by being strictly closer, and
// among equally close minions the lowest roster index wins.
func SelectTarget(from, player grid.Position, minions []entity.Minion) Target {
	t := Target{Pos: player, Minion: PlayerTarget}
	bestDist := from.Manhattan(player)
	for i := range minions {
		d := from.Manhattan(minions[i].Position)
		if d < bestDist {
			t = Target{Pos: minions[i].Position, Minion: i}
			bestDist = d
		}
	}
	return t
}

// StepToward returns the tile a unit at from moves to, one step toward
// target. The longer axis goes first, ties prefer horizontal, and a
// blocked primary axis falls back to the other. ok is false when every
// useful step is blocked or from == target.
func StepToward(from, target grid.Position, g *grid.Grid, occupied map[grid.Position]bool) (grid.Position, bool) {
	dx := target.X - from.X
	dy := target.Y - from.Y

	hStep := grid.Position{X: from.X + sign(dx), Y: from.Y}
	vStep := grid.Position{X: from.X, Y: from.Y + sign(dy)}

	first, second := hStep, vStep
	if abs(dy) > abs(dx) {
		first, second = vStep, hStep
	}
	for _, dest := range []grid.Position{first, second} {
		if dest == from {
			continue
		}
		if passable(dest, g, occupied) {
			return dest, true
		}
	}
	return from, false
}

func passable(p grid.Position, g *grid.Grid, occupied map[grid.Position]bool) bool {
	return g.InBounds(p) && g.At(p) != grid.TileObstacle && !occupied[p]
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
