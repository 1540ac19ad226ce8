package pathfind

import (
	"sort"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
)

// Cheat is a jump from one passable cell to another that ignores walls for
// at most the cheat length, measured in Manhattan distance.
type Cheat struct {
	From   maze.CellPosition
	To     maze.CellPosition
	Saving int // Steps saved against the honest shortest path
}

// FindCheats returns every cheat of length at most maxLen that shortens the
// route from the grid's start to its end, ordered by descending saving and
// then by position.
func FindCheats(g *maze.Grid, maxLen int) ([]Cheat, error) {
	fromStart := Distances(g, g.Start())
	toEnd := Distances(g, g.End())

	honest := fromStart[g.Index(g.End())]
	if honest < 0 {
		return nil, ErrUnreachable
	}

	var cheats []Cheat
	for i, ds := range fromStart {
		if ds < 0 {
			continue
		}
		from := g.Position(i)

		for dr := -maxLen; dr <= maxLen; dr++ {
			span := maxLen - abs(dr)
			for dc := -span; dc <= span; dc++ {
				to := maze.CellPosition{Row: from.Row + dr, Col: from.Col + dc}
				if !g.IsPassable(to) {
					continue
				}
				de := toEnd[g.Index(to)]
				if de < 0 {
					continue
				}
				if saving := honest - (ds + abs(dr) + abs(dc) + de); saving > 0 {
					cheats = append(cheats, Cheat{From: from, To: to, Saving: saving})
				}
			}
		}
	}

	sort.Slice(cheats, func(a, b int) bool {
		ca, cb := cheats[a], cheats[b]
		if ca.Saving != cb.Saving {
			return ca.Saving > cb.Saving
		}
		if ca.From != cb.From {
			return g.Index(ca.From) < g.Index(cb.From)
		}
		return g.Index(ca.To) < g.Index(cb.To)
	})
	return cheats, nil
}

// CountCheats counts the cheats saving at least minSaving steps.
func CountCheats(cheats []Cheat, minSaving int) int {
	n := 0
	for _, c := range cheats {
		if c.Saving >= minSaving {
			n++
		}
	}
	return n
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
