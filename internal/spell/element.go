// Package spell defines the casting loadout (elements and shapes) and
// the pure geometry that maps a cast to the set of affected tiles.
package spell

import "fmt"

// Element is one of the four castable elements. ElementNone is the
// absent value used for enemies without a weakness or resistance.
type Element uint8

const (
	ElementNone Element = iota
	Fire
	Water
	Earth
	Air
)

func (e Element) String() string {
	switch e {
	case Fire:
		return "fire"
	case Water:
		return "water"
	case Earth:
		return "earth"
	case Air:
		return "air"
	}
	return "none"
}

func (e Element) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// ParseElement maps a lowercase element name to its value.
func ParseElement(s string) (Element, error) {
	switch s {
	case "fire":
		return Fire, nil
	case "water":
		return Water, nil
	case "earth":
		return Earth, nil
	case "air":
		return Air, nil
	}
	return ElementNone, fmt.Errorf("unknown element %q", s)
}
