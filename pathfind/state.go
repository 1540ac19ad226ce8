package pathfind

import (
	"fmt"
	"strings"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
)

// State is a node of the weighted search graph: where the traveler stands
// and which way it faces.
type State struct {
	Pos     maze.CellPosition
	Heading maze.Heading
}

func (s State) String() string {
	return fmt.Sprintf("(%s %s)", s.Pos, s.Heading)
}

// Action is a single transition between two states.
type Action uint8

const (
	Forward Action = iota
	TurnLeft
	TurnRight
)

func (a Action) String() string {
	switch a {
	case Forward:
		return "F"
	case TurnLeft:
		return "L"
	case TurnRight:
		return "R"
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// Move is an action together with the heading held after it.
type Move struct {
	Action  Action
	Heading maze.Heading
}

// FormatMoves renders moves compactly, e.g. "FFRFF".
func FormatMoves(moves []Move) string {
	var b strings.Builder
	b.Grow(len(moves))
	for _, m := range moves {
		b.WriteString(m.Action.String())
	}
	return b.String()
}

// stateID packs a state into a dense index: cellIndex*4 + heading.
func stateID(g *maze.Grid, s State) int32 {
	return int32(g.Index(s.Pos)*len(maze.Headings) + int(s.Heading))
}

func stateOf(g *maze.Grid, id int32) State {
	n := len(maze.Headings)
	return State{
		Pos:     g.Position(int(id) / n),
		Heading: maze.Heading(int(id) % n),
	}
}
