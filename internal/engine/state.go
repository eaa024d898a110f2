package engine

import (
	"fmt"

	"gridmage/internal/entity"
	"gridmage/internal/grid"
)

// GameStatus is the run's lifecycle value. Victory and GameOver are
// terminal; every action except Restart is a no-op once reached.
type GameStatus uint8

const (
	Playing GameStatus = iota
	Victory
	GameOver
)

func (s GameStatus) String() string {
	switch s {
	case Playing:
		return "playing"
	case Victory:
		return "victory"
	case GameOver:
		return "gameover"
	}
	return "unknown"
}

func (s GameStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// logCap bounds the combat log; older entries fall off the front.
const logCap = 50

// Stats accumulates run statistics across turns and waves.
type Stats struct {
	Turns       int
	Kills       map[entity.EnemyType]int
	DamageDealt int
	DamageTaken int
}

// State is one authoritative snapshot of the run. Engines hand out
// deep copies; callers read them and issue actions, never write.
type State struct {
	Grid           grid.Grid
	Player         entity.Player
	Enemies        []entity.Enemy
	Minions        []entity.Minion
	Items          map[grid.Position]entity.Item
	Corpses        map[grid.Position]entity.Corpse
	TerrainEffects map[grid.Position]entity.TerrainEffect
	Wave           int
	Status         GameStatus
	Log            []string
	Stats          Stats
}

// Clone returns a deep copy sharing nothing with the original.
func (s State) Clone() State {
	c := s
	c.Player = s.Player.Clone()
	c.Enemies = make([]entity.Enemy, len(s.Enemies))
	for i, e := range s.Enemies {
		c.Enemies[i] = e.Clone()
	}
	c.Minions = append([]entity.Minion(nil), s.Minions...)
	c.Items = make(map[grid.Position]entity.Item, len(s.Items))
	for p, it := range s.Items {
		c.Items[p] = it
	}
	c.Corpses = make(map[grid.Position]entity.Corpse, len(s.Corpses))
	for p, co := range s.Corpses {
		c.Corpses[p] = co
	}
	c.TerrainEffects = make(map[grid.Position]entity.TerrainEffect, len(s.TerrainEffects))
	for p, fx := range s.TerrainEffects {
		c.TerrainEffects[p] = fx
	}
	c.Log = append([]string(nil), s.Log...)
	c.Stats.Kills = make(map[entity.EnemyType]int, len(s.Stats.Kills))
	for t, n := range s.Stats.Kills {
		c.Stats.Kills[t] = n
	}
	return c
}

// appendLog records a combat message, dropping the oldest past the cap.
func (s *State) appendLog(format string, args ...any) {
	s.Log = append(s.Log, fmt.Sprintf(format, args...))
	if len(s.Log) > logCap {
		s.Log = s.Log[len(s.Log)-logCap:]
	}
}

// occupiedBy reports whether any combatant stands at p.
func occupiedBy(s *State, p grid.Position) bool {
	if s.Player.Position == p {
		return true
	}
	for i := range s.Enemies {
		if s.Enemies[i].Position == p {
			return true
		}
	}
	for i := range s.Minions {
		if s.Minions[i].Position == p {
			return true
		}
	}
	return false
}

// occupancySet snapshots every combatant's tile. Movement phases claim
// and release entries as units step.
func occupancySet(s *State) map[grid.Position]bool {
	occ := make(map[grid.Position]bool, 1+len(s.Enemies)+len(s.Minions))
	occ[s.Player.Position] = true
	for i := range s.Enemies {
		occ[s.Enemies[i].Position] = true
	}
	for i := range s.Minions {
		occ[s.Minions[i].Position] = true
	}
	return occ
}
