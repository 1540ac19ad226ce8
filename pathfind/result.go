package pathfind

import (
	"slices"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
)

// Result is the outcome of a weighted search. It is immutable once returned.
type Result struct {
	Cost       int64 // Minimum total cost from start to end
	Iterations int   // Frontier pops performed

	grid      *maze.Grid
	start     int32
	terminals []int32   // End-cell states reached at Cost
	preds     [][]int32 // Tied-best predecessors per state id
}

// Terminals returns every end-cell state reached at the minimum cost.
func (r *Result) Terminals() []State {
	result := make([]State, len(r.terminals))
	for i, id := range r.terminals {
		result[i] = stateOf(r.grid, id)
	}
	return result
}

// Route returns one optimal route, start state first. Routes that differ
// only in tie-breaking may be chosen on different grids, but the choice is
// stable for a given grid.
func (r *Result) Route() []State {
	var ids []int32
	for id := r.terminals[0]; ; id = r.preds[id][0] {
		ids = append(ids, id)
		if id == r.start {
			break
		}
	}
	slices.Reverse(ids)

	route := make([]State, len(ids))
	for i, id := range ids {
		route[i] = stateOf(r.grid, id)
	}
	return route
}

// Moves converts the Route into the actions taken along it.
func (r *Result) Moves() []Move {
	return movesOf(r.Route())
}

// Headings returns the heading held after each action of the Route.
func (r *Result) Headings() []maze.Heading {
	moves := r.Moves()
	result := make([]maze.Heading, len(moves))
	for i, m := range moves {
		result[i] = m.Heading
	}
	return result
}

// Routes enumerates up to limit distinct optimal routes. A limit of zero or
// less enumerates them all, which can be exponential on open grids.
func (r *Result) Routes(limit int) [][]State {
	var (
		routes [][]State
		stack  []int32
	)

	var walk func(id int32) bool
	walk = func(id int32) bool {
		stack = append(stack, id)
		defer func() { stack = stack[:len(stack)-1] }()

		if id == r.start {
			route := make([]State, len(stack))
			for i := range stack {
				route[i] = stateOf(r.grid, stack[len(stack)-1-i])
			}
			routes = append(routes, route)
			return limit <= 0 || len(routes) < limit
		}
		for _, p := range r.preds[id] {
			if !walk(p) {
				return false
			}
		}
		return true
	}

	for _, t := range r.terminals {
		if !walk(t) {
			break
		}
	}
	return routes
}

// Tiles returns every distinct cell lying on at least one optimal route,
// in row-major order.
func (r *Result) Tiles() []maze.CellPosition {
	seen := make([]bool, len(r.preds))
	cells := make([]bool, r.grid.Len())
	stack := slices.Clone(r.terminals)
	for _, id := range stack {
		seen[id] = true
	}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cells[int(id)/len(maze.Headings)] = true

		for _, p := range r.preds[id] {
			if !seen[p] {
				seen[p] = true
				stack = append(stack, p)
			}
		}
	}

	var result []maze.CellPosition
	for i, ok := range cells {
		if ok {
			result = append(result, r.grid.Position(i))
		}
	}
	return result
}

func movesOf(route []State) []Move {
	if len(route) < 2 {
		return nil
	}

	moves := make([]Move, 0, len(route)-1)
	for i := 1; i < len(route); i++ {
		prev, cur := route[i-1], route[i]
		var action Action
		switch {
		case prev.Pos != cur.Pos:
			action = Forward
		case prev.Heading.TurnLeft() == cur.Heading:
			action = TurnLeft
		default:
			action = TurnRight
		}
		moves = append(moves, Move{Action: action, Heading: cur.Heading})
	}
	return moves
}
