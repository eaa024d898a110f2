// Package combat computes damage and displacement. It decides how
// much, never whether: targeting and turn order belong to the engine
// and the AI.
package combat

import (
	"math"

	"gridmage/assets"
	"gridmage/internal/entity"
	"gridmage/internal/grid"
	"gridmage/internal/spell"
)

// SpellDamage is the damage one elemental cast deals to one enemy.
// SpellPower joins the base before the multipliers. Modifier order:
// water affinity (caster on water casting water, x1.25), fire against
// a target on water (x0.75), weakness (x1.5), resistance (x0.5).
func SpellDamage(element spell.Element, spellPower int, casterTile, targetTile grid.TileType, target *entity.Enemy) int {
	dmg := float64(assets.ElementDamage[element] + spellPower)
	if element == spell.Water && casterTile == grid.TileWater {
		dmg *= assets.WaterAffinityBonus
	}
	if element == spell.Fire && targetTile == grid.TileWater {
		dmg *= assets.FireOnWaterPenalty
	}
	if target.Weakness == element {
		dmg *= assets.WeaknessMultiplier
	}
	if target.Resistance == element {
		dmg *= assets.ResistanceMultiplier
	}
	return int(math.Round(dmg))
}

// StatusFor returns the status effect an element inflicts on struck
// enemies. ok is false for elements that inflict none.
func StatusFor(element spell.Element) (entity.StatusEffect, bool) {
	switch element {
	case spell.Fire:
		return entity.StatusEffect{Type: entity.Burn, TurnsLeft: assets.BurnDuration}, true
	case spell.Water:
		return entity.StatusEffect{Type: entity.Frozen, TurnsLeft: assets.FrozenDuration}, true
	}
	return entity.StatusEffect{}, false
}

// SelfHealAmount is the health a self-channel restores before
// clamping.
func SelfHealAmount(element spell.Element, spellPower int) int {
	return assets.ElementDamage[element] + spellPower
}

// PushDestination computes where an enemy at pos lands when pushed one
// tile directly away from the caster along the dominant axis. ok is
// false when the destination is out of bounds, not an empty tile, or
// already occupied.
func PushDestination(caster, pos grid.Position, g *grid.Grid, occupied map[grid.Position]bool) (grid.Position, bool) {
	dest := pos.Step(grid.DirectionToward(caster, pos))
	if !g.InBounds(dest) || g.At(dest) != grid.TileEmpty || occupied[dest] {
		return pos, false
	}
	return dest, true
}

// EnemyAttackDamage is a standard single-target attack's damage: base
// by type, halved for an archer shooting a target on forest, plus the
// goblin swarm bonus per other goblin within the swarm radius.
func EnemyAttackDamage(attacker *entity.Enemy, targetTile grid.TileType, enemies []entity.Enemy) int {
	dmg := float64(assets.EnemySpecs[attacker.Type].Damage)
	if attacker.Type == entity.Archer && targetTile == grid.TileForest {
		dmg /= 2
	}
	if attacker.Type == entity.Goblin {
		dmg += float64(assets.SwarmBonusPerGoblin * nearbyGoblins(attacker, enemies))
	}
	return int(math.Round(dmg))
}

func nearbyGoblins(attacker *entity.Enemy, enemies []entity.Enemy) int {
	n := 0
	for i := range enemies {
		e := &enemies[i]
		if e.ID == attacker.ID || e.Type != entity.Goblin {
			continue
		}
		if attacker.Position.Manhattan(e.Position) <= assets.SwarmRadius {
			n++
		}
	}
	return n
}
