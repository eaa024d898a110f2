package tui

import (
	"github.com/gdamore/tcell/v2"

	"gridmage/internal/grid"
)

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionDashN
	ActionDashS
	ActionDashE
	ActionDashW
	ActionFocus
	ActionDrinkHealth
	ActionDrinkMana
	ActionCycleElement
	ActionCycleShape
	ActionTarget
	ActionRestart
	ActionConfirm
	ActionCancel
	ActionQuit
)

// keyToAction maps a tcell key event to a game action. Shifted
// directions dash, plain ones move.
func keyToAction(ev *tcell.EventKey) Action {
	shifted := ev.Modifiers()&tcell.ModShift != 0

	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		if shifted {
			return ActionDashN
		}
		return ActionMoveN
	case tcell.KeyDown:
		if shifted {
			return ActionDashS
		}
		return ActionMoveS
	case tcell.KeyRight:
		if shifted {
			return ActionDashE
		}
		return ActionMoveE
	case tcell.KeyLeft:
		if shifted {
			return ActionDashW
		}
		return ActionMoveW
	case tcell.KeyEnter:
		return ActionConfirm
	case tcell.KeyEscape:
		return ActionCancel
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k':
		return ActionMoveN
	case 'j':
		return ActionMoveS
	case 'l':
		return ActionMoveE
	case 'h':
		return ActionMoveW
	case 'K':
		return ActionDashN
	case 'J':
		return ActionDashS
	case 'L':
		return ActionDashE
	case 'H':
		return ActionDashW
	case 'f', '.':
		return ActionFocus
	case '1':
		return ActionDrinkHealth
	case '2':
		return ActionDrinkMana
	case 'e':
		return ActionCycleElement
	case 's':
		return ActionCycleShape
	case 'c':
		return ActionTarget
	case 'r':
		return ActionRestart
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// moveDirection converts a move action to a grid direction.
func moveDirection(a Action) (grid.Direction, bool) {
	switch a {
	case ActionMoveN:
		return grid.Up, true
	case ActionMoveS:
		return grid.Down, true
	case ActionMoveE:
		return grid.Right, true
	case ActionMoveW:
		return grid.Left, true
	}
	return 0, false
}

// dashDirection converts a dash action to a grid direction.
func dashDirection(a Action) (grid.Direction, bool) {
	switch a {
	case ActionDashN:
		return grid.Up, true
	case ActionDashS:
		return grid.Down, true
	case ActionDashE:
		return grid.Right, true
	case ActionDashW:
		return grid.Left, true
	}
	return 0, false
}
