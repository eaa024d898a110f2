package engine

import (
	"math"

	"gridmage/assets"
)

// grantXP awards experience and loops the level-up while thresholds
// keep being crossed: one large award can carry several levels.
func (e *Engine) grantXP(s *State, xp int) {
	if xp <= 0 {
		return
	}
	p := &s.Player
	p.XP += xp
	s.appendLog("You gain %d experience.", xp)
	for p.XP >= p.XPToNext {
		p.XP -= p.XPToNext
		p.Level++
		p.MaxHealth += assets.LevelHealthGain
		p.MaxMana += assets.LevelManaGain
		p.Health = p.MaxHealth
		p.Mana = p.MaxMana
		p.SpellPower += assets.LevelSpellPowerGain
		if el, ok := assets.ElementUnlocks[p.Level]; ok {
			p.UnlockedElements[el] = true
			s.appendLog("You attune to %s.", el)
		}
		if sh, ok := assets.ShapeUnlocks[p.Level]; ok {
			p.UnlockedShapes[sh] = true
			s.appendLog("You master the %s shape.", sh)
		}
		p.XPToNext = xpForLevel(p.Level)
		s.appendLog("Level %d! You feel the grid hum beneath you.", p.Level)
	}
}

// xpForLevel is the threshold to leave the given level.
func xpForLevel(level int) int {
	return int(math.Round(assets.XPBase * math.Pow(assets.XPGrowth, float64(level-1))))
}
