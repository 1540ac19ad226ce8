package maze

import (
	"fmt"
	"strings"
)

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// String renders the position as "row,col".
func (cp CellPosition) String() string {
	return fmt.Sprintf("%d,%d", cp.Row, cp.Col)
}

// Manhattan returns the grid distance between two positions.
func (cp CellPosition) Manhattan(other CellPosition) int {
	return abs(cp.Row-other.Row) + abs(cp.Col-other.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Heading is one of the four cardinal directions.
// Values are ordered clockwise so turning is modular arithmetic.
type Heading uint8

const (
	North Heading = iota
	East
	South
	West
)

// Headings lists every heading in clockwise order starting at North.
var Headings = [4]Heading{North, East, South, West}

// TurnRight returns the heading after a 90° clockwise rotation.
func (h Heading) TurnRight() Heading {
	switch h {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	default:
		return North
	}
}

// TurnLeft returns the heading after a 90° counter-clockwise rotation.
func (h Heading) TurnLeft() Heading {
	switch h {
	case North:
		return West
	case West:
		return South
	case South:
		return East
	default:
		return North
	}
}

// Reverse returns the opposite heading.
func (h Heading) Reverse() Heading {
	return h.TurnRight().TurnRight()
}

// Delta returns the row and column offsets of one step in the heading.
func (h Heading) Delta() (int, int) {
	switch h {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	default:
		return 0, -1
	}
}

func (h Heading) String() string {
	switch h {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return fmt.Sprintf("Heading(%d)", uint8(h))
}

// ParseHeading accepts a heading name or its first letter, case-insensitive.
func ParseHeading(s string) (Heading, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north":
		return North, nil
	case "e", "east":
		return East, nil
	case "s", "south":
		return South, nil
	case "w", "west":
		return West, nil
	}
	return 0, fmt.Errorf("unknown heading %q", s)
}
