package spell

import "fmt"

// Shape is a castable spell shape. Ball, Cone and Wall are elemental
// AOE shapes; Self channels the element inward; Summon and RaiseDead
// create minions and ignore the selected element.
type Shape uint8

const (
	Ball Shape = iota
	Cone
	Wall
	Self
	Summon
	RaiseDead
)

func (s Shape) String() string {
	switch s {
	case Ball:
		return "ball"
	case Cone:
		return "cone"
	case Wall:
		return "wall"
	case Self:
		return "self"
	case Summon:
		return "summon"
	case RaiseDead:
		return "raisedead"
	}
	return "unknown"
}

func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseShape maps a lowercase shape name to its value.
func ParseShape(s string) (Shape, error) {
	switch s {
	case "ball":
		return Ball, nil
	case "cone":
		return Cone, nil
	case "wall":
		return Wall, nil
	case "self":
		return Self, nil
	case "summon":
		return Summon, nil
	case "raisedead":
		return RaiseDead, nil
	}
	return Ball, fmt.Errorf("unknown shape %q", s)
}
