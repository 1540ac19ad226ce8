// Package pathfind implements shortest-path searches over maze grids: a
// heading-aware Dijkstra where turning in place is expensive, a plain BFS for
// unweighted mazes, and the cheat analysis built on BFS distance fields.
package pathfind

import (
	"container/heap"
	"context"
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
)

// Search defaults.
const (
	DefaultStepCost      int64 = 1
	DefaultTurnCost      int64 = 1000
	DefaultMaxIterations       = 10_000_000

	// ctxCheckInterval is how many pops happen between context checks.
	ctxCheckInterval = 1024
)

var (
	ErrUnreachable     = errors.New("end is unreachable from start")
	ErrIterationBudget = errors.New("search did not converge within the iteration budget")
	ErrInvalidOptions  = errors.New("invalid search options")
)

// Options tunes the weighted search.
type Options struct {
	StepCost      int64        // Cost of moving one cell forward
	TurnCost      int64        // Cost of rotating 90° in place
	StartHeading  maze.Heading // Heading held at the start cell
	MaxIterations int          // Maximum frontier pops; 0 means unlimited
}

// DefaultOptions returns the reindeer maze rules: start facing East, steps
// cost 1, turns cost 1000.
func DefaultOptions() Options {
	return Options{
		StepCost:      DefaultStepCost,
		TurnCost:      DefaultTurnCost,
		StartHeading:  maze.East,
		MaxIterations: DefaultMaxIterations,
	}
}

func (o Options) validate() error {
	if o.StepCost <= 0 || o.TurnCost <= 0 {
		return fmt.Errorf("%w: step and turn costs must be positive", ErrInvalidOptions)
	}
	if o.MaxIterations < 0 {
		return fmt.Errorf("%w: negative iteration budget", ErrInvalidOptions)
	}
	if o.StartHeading > maze.West {
		return fmt.Errorf("%w: unknown start heading %d", ErrInvalidOptions, o.StartHeading)
	}
	return nil
}

// Search finds the minimum cost of walking from the grid's start to its end,
// where moving forward costs opts.StepCost and rotating in place costs
// opts.TurnCost. Reaching the end in any heading completes a route.
//
// Every optimal route is kept through the predecessor table of the returned
// Result. Search returns ErrUnreachable when the frontier empties without
// reaching the end and ErrIterationBudget when opts.MaxIterations pops were
// not enough.
func Search(ctx context.Context, g *maze.Grid, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if !g.IsPassable(g.Start()) || !g.IsPassable(g.End()) {
		return nil, ErrUnreachable
	}

	n := g.Len() * len(maze.Headings)
	best := make([]int64, n)
	for i := range best {
		best[i] = -1
	}
	expanded := make([]bool, n)
	preds := make([][]int32, n)

	start := stateID(g, State{Pos: g.Start(), Heading: opts.StartHeading})
	best[start] = 0

	pq := &frontier{}
	heap.Push(pq, entry{cost: 0, id: start})

	var (
		minCost   int64 = -1
		terminals []int32
		iter      int
	)

	relax := func(from, to int32, cost int64) {
		switch {
		case best[to] < 0 || cost < best[to]:
			best[to] = cost
			preds[to] = append(preds[to][:0], from)
			heap.Push(pq, entry{cost: cost, id: to})
		case cost == best[to]:
			preds[to] = append(preds[to], from)
		}
	}

	for pq.Len() > 0 {
		iter++
		if opts.MaxIterations > 0 && iter > opts.MaxIterations {
			return nil, fmt.Errorf("%w: %d pops", ErrIterationBudget, opts.MaxIterations)
		}
		if iter%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("search aborted after %d pops: %w", iter, err)
			}
		}

		cur := heap.Pop(pq).(entry)
		if minCost >= 0 && cur.cost > minCost {
			break
		}
		if cur.cost > best[cur.id] || expanded[cur.id] {
			continue
		}
		expanded[cur.id] = true

		s := stateOf(g, cur.id)
		if s.Pos == g.End() {
			minCost = cur.cost
			terminals = append(terminals, cur.id)
			continue
		}

		if next, ok := g.Neighbor(s.Pos, s.Heading); ok && g.IsPassable(next) {
			relax(cur.id, stateID(g, State{Pos: next, Heading: s.Heading}), cur.cost+opts.StepCost)
		}
		relax(cur.id, stateID(g, State{Pos: s.Pos, Heading: s.Heading.TurnLeft()}), cur.cost+opts.TurnCost)
		relax(cur.id, stateID(g, State{Pos: s.Pos, Heading: s.Heading.TurnRight()}), cur.cost+opts.TurnCost)
	}

	if minCost < 0 {
		return nil, ErrUnreachable
	}

	return &Result{
		Cost:       minCost,
		Iterations: iter,
		grid:       g,
		start:      start,
		terminals:  terminals,
		preds:      preds,
	}, nil
}
