package toast

import (
	"fmt"
	"strings"
)

// Position is a screen anchor for a group of toasts.
type Position string

const (
	TopLeft      Position = "top-left"
	TopRight     Position = "top-right"
	TopCenter    Position = "top-center"
	BottomLeft   Position = "bottom-left"
	BottomRight  Position = "bottom-right"
	BottomCenter Position = "bottom-center"
)

// Positions lists every position in wrapper render order.
var Positions = []Position{
	TopLeft,
	TopRight,
	TopCenter,
	BottomLeft,
	BottomRight,
	BottomCenter,
}

// IsTop reports whether the position is anchored to the top of the screen.
func (p Position) IsTop() bool {
	return strings.Contains(string(p), "top")
}

// Valid reports whether p is one of Positions.
func (p Position) Valid() bool {
	for _, known := range Positions {
		if p == known {
			return true
		}
	}
	return false
}

// ParsePosition converts s into a Position.
func ParsePosition(s string) (Position, error) {
	p := Position(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("toast: unknown position %q", s)
	}
	return p, nil
}
