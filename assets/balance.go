// Package assets holds the static balance data for a run: scalar
// combat constants, per-element and per-shape tables, enemy archetype
// stats, wave rosters and the terrain layout.
package assets

import "gridmage/internal/grid"

// Player baseline.
const (
	PlayerMaxHealth = 100
	PlayerMaxMana   = 100
)

// PlayerStart is where the player begins a run and returns at each
// wave transition.
var PlayerStart = grid.Position{X: 0, Y: 0}

// PlayerStartFacing is the initial facing direction.
const PlayerStartFacing = grid.Down

// Dash tuning.
const (
	DashManaCost = 10
	DashDistance = 3
	DashCooldown = 3
)

// Consumables.
const (
	PotionHealAmount = 30
	PotionManaAmount = 30
)

// Mana regeneration during cleanup. Focus turns use the larger value.
const (
	ManaRegen      = 5
	FocusManaRegen = 15
)

// Status effects on enemies.
const (
	BurnDamage     = 5
	BurnDuration   = 3
	FrozenDuration = 2
)

// Burning terrain, left behind when fire hits forest.
const (
	BurningTileDamage   = 5
	BurningTileDuration = 3
)

// Minions.
const (
	SummonedMinionHealth = 30
	RaisedMinionHealth   = 40
	MinionAttackDamage   = 10
)

// Enemy attack tuning.
const (
	SwarmBonusPerGoblin = 2
	SwarmRadius         = 3
	StompDamage         = 15
)

// Loot.
const LootDropChance = 0.25

// Leveling curve and per-level gains.
const (
	XPBase              = 100
	XPGrowth            = 1.5
	LevelHealthGain     = 10
	LevelManaGain       = 5
	LevelSpellPowerGain = 2
)

// Spell damage modifiers.
const (
	WaterAffinityBonus   = 1.25
	FireOnWaterPenalty   = 0.75
	WeaknessMultiplier   = 1.5
	ResistanceMultiplier = 0.5
)
