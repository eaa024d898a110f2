package ai

import (
	"testing"

	"gridmage/internal/entity"
	"gridmage/internal/grid"
)

func TestNearestEnemyTiesToLowestIndex(t *testing.T) {
	enemies := []entity.Enemy{
		{ID: 1, Position: grid.Position{X: 5, Y: 0}},
		{ID: 2, Position: grid.Position{X: 0, Y: 5}},
		{ID: 3, Position: grid.Position{X: 2, Y: 0}},
	}
	if got := NearestEnemy(grid.Position{X: 0, Y: 0}, enemies); got != 2 {
		t.Errorf("nearest = %d, want 2", got)
	}
	tied := []entity.Enemy{
		{ID: 1, Position: grid.Position{X: 3, Y: 0}},
		{ID: 2, Position: grid.Position{X: 0, Y: 3}},
	}
	if got := NearestEnemy(grid.Position{X: 0, Y: 0}, tied); got != 0 {
		t.Errorf("tied nearest = %d, want 0", got)
	}
	if got := NearestEnemy(grid.Position{X: 0, Y: 0}, nil); got != -1 {
		t.Errorf("nearest of empty roster = %d, want -1", got)
	}
}

func TestSelectTargetPrefersPlayerOnTie(t *testing.T) {
	player := grid.Position{X: 4, Y: 0}
	minions := []entity.Minion{{ID: 1, Position: grid.Position{X: 0, Y: 4}}}
	got := SelectTarget(grid.Position{X: 0, Y: 0}, player, minions)
	if got.Minion != PlayerTarget {
		t.Errorf("tied target minion index = %d, want player", got.Minion)
	}
}

func TestSelectTargetStrictlyCloserMinion(t *testing.T) {
	player := grid.Position{X: 6, Y: 0}
	minions := []entity.Minion{
		{ID: 1, Position: grid.Position{X: 0, Y: 3}},
		{ID: 2, Position: grid.Position{X: 3, Y: 0}},
	}
	got := SelectTarget(grid.Position{X: 0, Y: 0}, player, minions)
	if got.Minion != 0 {
		t.Errorf("target minion index = %d, want 0 (first of the tied pair)", got.Minion)
	}
	if got.Pos != (grid.Position{X: 0, Y: 3}) {
		t.Errorf("target position = %v, want (0,3)", got.Pos)
	}
}

func TestStepTowardLongestAxisFirst(t *testing.T) {
	var g grid.Grid
	got, ok := StepToward(grid.Position{X: 0, Y: 0}, grid.Position{X: 5, Y: 2}, &g, nil)
	if !ok || got != (grid.Position{X: 1, Y: 0}) {
		t.Errorf("step = %v ok=%v, want (1,0)", got, ok)
	}
	got, ok = StepToward(grid.Position{X: 0, Y: 0}, grid.Position{X: 2, Y: 5}, &g, nil)
	if !ok || got != (grid.Position{X: 0, Y: 1}) {
		t.Errorf("step = %v ok=%v, want (0,1)", got, ok)
	}
}

func TestStepTowardTiePrefersHorizontal(t *testing.T) {
	var g grid.Grid
	got, ok := StepToward(grid.Position{X: 0, Y: 0}, grid.Position{X: 4, Y: 4}, &g, nil)
	if !ok || got != (grid.Position{X: 1, Y: 0}) {
		t.Errorf("tied step = %v ok=%v, want (1,0)", got, ok)
	}
}

func TestStepTowardFallsBackToOtherAxis(t *testing.T) {
	var g grid.Grid
	occupied := map[grid.Position]bool{{X: 1, Y: 0}: true}
	got, ok := StepToward(grid.Position{X: 0, Y: 0}, grid.Position{X: 5, Y: 2}, &g, occupied)
	if !ok || got != (grid.Position{X: 0, Y: 1}) {
		t.Errorf("fallback step = %v ok=%v, want (0,1)", got, ok)
	}
}

func TestStepTowardBlockedBothAxes(t *testing.T) {
	var g grid.Grid
	g.Set(grid.Position{X: 1, Y: 0}, grid.TileObstacle)
	occupied := map[grid.Position]bool{{X: 0, Y: 1}: true}
	got, ok := StepToward(grid.Position{X: 0, Y: 0}, grid.Position{X: 5, Y: 5}, &g, occupied)
	if ok {
		t.Errorf("fully blocked step moved to %v", got)
	}
	if got != (grid.Position{X: 0, Y: 0}) {
		t.Errorf("blocked step position = %v, want unchanged", got)
	}
}

func TestStepTowardAlignedAxisHasNoSidestep(t *testing.T) {
	var g grid.Grid
	g.Set(grid.Position{X: 1, Y: 0}, grid.TileObstacle)
	// Target straight right and the step blocked: dy is zero, so there
	// is no vertical fallback.
	got, ok := StepToward(grid.Position{X: 0, Y: 0}, grid.Position{X: 5, Y: 0}, &g, nil)
	if ok {
		t.Errorf("aligned blocked step moved to %v", got)
	}
}

func TestStepTowardIgnoresCorpseTiles(t *testing.T) {
	var g grid.Grid
	g.Set(grid.Position{X: 1, Y: 0}, grid.TileCorpse)
	got, ok := StepToward(grid.Position{X: 0, Y: 0}, grid.Position{X: 5, Y: 0}, &g, nil)
	if !ok || got != (grid.Position{X: 1, Y: 0}) {
		t.Errorf("step over corpse = %v ok=%v, want (1,0)", got, ok)
	}
}
