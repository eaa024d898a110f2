package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Position is a coordinate on the battle grid. X grows rightward and Y
// grows downward, so row 0 is the top edge. Position is comparable and
// serves as the key type for every positional overlay map.
type Position struct {
	X, Y int
}

// MarshalText encodes the position as "x,y" so overlay maps keyed by
// Position survive JSON encoding.
func (p Position) MarshalText() ([]byte, error) {
	return []byte(strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)), nil
}

// UnmarshalText parses the "x,y" form produced by MarshalText.
func (p *Position) UnmarshalText(text []byte) error {
	xs, ys, ok := strings.Cut(string(text), ",")
	if !ok {
		return fmt.Errorf("position %q: want x,y", text)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return fmt.Errorf("position %q: %w", text, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return fmt.Errorf("position %q: %w", text, err)
	}
	p.X, p.Y = x, y
	return nil
}

// Manhattan returns the Manhattan distance between p and other.
func (p Position) Manhattan(other Position) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

// Step returns the position one tile from p in dir.
func (p Position) Step(dir Direction) Position {
	dx, dy := dir.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Neighbors returns the four orthogonal neighbors of p in Up, Down,
// Left, Right order. Entries may be out of bounds.
func (p Position) Neighbors() [4]Position {
	return [4]Position{
		p.Step(Up),
		p.Step(Down),
		p.Step(Left),
		p.Step(Right),
	}
}

// DirectionToward returns the facing from one position toward another
// along the dominant axis. Ties between |dx| and |dy| resolve to the
// vertical axis. from == to returns Down arbitrarily; callers that care
// check equality first.
func DirectionToward(from, to Position) Direction {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if abs(dx) > abs(dy) {
		if dx > 0 {
			return Right
		}
		return Left
	}
	if dy < 0 {
		return Up
	}
	return Down
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Direction is one of the four orthogonal facings.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Delta returns the unit step for d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ParseDirection is the inverse of Direction.String.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Up, fmt.Errorf("unknown direction %q", s)
}
