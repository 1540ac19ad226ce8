package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/google/uuid"
)

// Solver solves a maze synchronously.
type Solver interface {
	Solve(ctx context.Context, mazeText string) (*dmn.Solution, error)
}

// JobScheduler accepts mazes for background solving and reports on them.
type JobScheduler interface {
	// Submit stores a pending job and queues it, returning the job ID.
	Submit(ctx context.Context, mazeText string) (uuid.UUID, error)

	// Status returns the job as currently stored.
	Status(ctx context.Context, id uuid.UUID) (*dmn.Solution, error)
}
