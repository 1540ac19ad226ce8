package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
)

// ResultCache stores finished solutions by maze digest.
type ResultCache interface {
	// Get returns the cached solution for digest; the bool is false on a miss.
	Get(ctx context.Context, digest string) (*dmn.Solution, bool, error)

	// Set stores a finished solution under its digest.
	Set(ctx context.Context, solution *dmn.Solution) error
}
