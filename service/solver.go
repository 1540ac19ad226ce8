package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/pathfind"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrMalformedMaze = errors.New("malformed maze")
	ErrMissingLogger = errors.New("logger is required")
)

// SolverConfig holds the dependencies and search settings of a MazeSolver.
type SolverConfig struct {
	Cache         i.ResultCache    // Optional; nil disables caching
	Logger        *zap.Logger      // Component logger
	Options       pathfind.Options // Search rules and iteration budget
	SearchTimeout time.Duration    // Per-search deadline; 0 disables it
}

// MazeSolver parses and solves reindeer mazes, caching results by digest.
type MazeSolver struct {
	cache   i.ResultCache
	logger  *zap.Logger
	opts    pathfind.Options
	timeout time.Duration
}

var _ i.Solver = &MazeSolver{}

// NewMazeSolver creates a MazeSolver from cfg.
func NewMazeSolver(cfg SolverConfig) (*MazeSolver, error) {
	if cfg.Logger == nil {
		return nil, ErrMissingLogger
	}
	return &MazeSolver{
		cache:   cfg.Cache,
		logger:  cfg.Logger,
		opts:    cfg.Options,
		timeout: cfg.SearchTimeout,
	}, nil
}

// Solve returns the solution for mazeText. Cached solutions are returned
// with their original ID; fresh ones get a new ID and are cached. Cache
// failures are logged and never fail the solve.
func (s *MazeSolver) Solve(ctx context.Context, mazeText string) (*dmn.Solution, error) {
	sol := dmn.NewSolution(uuid.New(), mazeText)
	log := s.logger.With(zap.String("digest", sol.Digest[:12]))

	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, sol.Digest)
		if err != nil {
			log.Warn("cache lookup failed", zap.Error(err))
		} else if ok {
			log.Debug("cache hit")
			return cached, nil
		}
	}

	res, err := s.search(ctx, mazeText)
	if err != nil {
		log.Info("solve failed", zap.Error(err))
		return nil, err
	}
	sol.Resolve(res)
	sol.Maze = ""

	log.Info("solved",
		zap.Int64("cost", sol.Cost),
		zap.Int("tiles", sol.Tiles),
		zap.Int("iterations", sol.Iterations),
	)

	if s.cache != nil {
		if err := s.cache.Set(ctx, sol); err != nil {
			log.Warn("cache store failed", zap.Error(err))
		}
	}
	return sol, nil
}

// search parses and runs the weighted search under the configured deadline.
func (s *MazeSolver) search(ctx context.Context, mazeText string) (*pathfind.Result, error) {
	g, err := maze.Parse(mazeText)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedMaze, err)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return pathfind.Search(ctx, g, s.opts)
}
