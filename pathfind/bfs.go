package pathfind

import (
	"errors"
	"slices"
	"sort"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
)

var ErrNeverBlocked = errors.New("no prefix of the drops blocks the path")

// ShortestPath runs a breadth-first search from one cell to another over
// passable 4-neighbors. The first visit to a cell wins; the returned trail
// includes both endpoints, so its step count is len(trail)-1.
func ShortestPath(g *maze.Grid, from, to maze.CellPosition) ([]maze.CellPosition, error) {
	if !g.IsPassable(from) || !g.IsPassable(to) {
		return nil, ErrUnreachable
	}

	cameFrom := make([]int, g.Len())
	for i := range cameFrom {
		cameFrom[i] = -1
	}
	src, dst := g.Index(from), g.Index(to)
	cameFrom[src] = src

	queue := []maze.CellPosition{from}
	for len(queue) > 0 && cameFrom[dst] < 0 {
		cell := queue[0]
		queue = queue[1:]

		for _, nbr := range g.PassableNeighbors(cell) {
			i := g.Index(nbr)
			if cameFrom[i] >= 0 {
				continue
			}
			cameFrom[i] = g.Index(cell)
			queue = append(queue, nbr)
		}
	}

	if cameFrom[dst] < 0 {
		return nil, ErrUnreachable
	}

	trail := []maze.CellPosition{to}
	for i := dst; i != src; {
		i = cameFrom[i]
		trail = append(trail, g.Position(i))
	}
	slices.Reverse(trail)
	return trail, nil
}

// Distances returns the BFS step count from one cell to every cell of the
// grid, indexed by Grid.Index. Unreachable cells and walls hold -1.
func Distances(g *maze.Grid, from maze.CellPosition) []int {
	dist := make([]int, g.Len())
	for i := range dist {
		dist[i] = -1
	}
	if !g.IsPassable(from) {
		return dist
	}

	dist[g.Index(from)] = 0
	queue := []maze.CellPosition{from}
	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]
		d := dist[g.Index(cell)]

		for _, nbr := range g.PassableNeighbors(cell) {
			if i := g.Index(nbr); dist[i] < 0 {
				dist[i] = d + 1
				queue = append(queue, nbr)
			}
		}
	}
	return dist
}

// FirstBlocking finds the first cell in drops whose blocking, together with
// every drop before it, disconnects the grid's start from its end. It returns
// the index into drops.
func FirstBlocking(g *maze.Grid, drops []maze.CellPosition) (int, error) {
	blocked := func(n int) bool {
		_, err := ShortestPath(g.WithWalls(drops[:n]...), g.Start(), g.End())
		return errors.Is(err, ErrUnreachable)
	}

	// Smallest prefix length that blocks; sort.Search returns len+1 when none does.
	n := sort.Search(len(drops)+1, blocked)
	if n > len(drops) {
		return 0, ErrNeverBlocked
	}
	if n == 0 {
		// Already disconnected before any drop.
		return 0, ErrUnreachable
	}
	return n - 1, nil
}
