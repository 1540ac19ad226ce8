package service

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultQueueKey     = "pathfinder:jobs"
	defaultWorkers      = 4
	defaultPollInterval = 500 * time.Millisecond
)

// JobOptions configures a JobService.
type JobOptions struct {
	QueueKey     string        // Sorted queue key holding pending job IDs
	Workers      int           // Jobs solved concurrently per poll
	PollInterval time.Duration // Delay between polls of an empty queue
}

// JobService queues mazes for background solving and runs the worker loop.
type JobService struct {
	repo   i.SolutionRepo
	queue  i.SortedQueue
	solver i.Solver
	logger *zap.Logger
	opts   JobOptions
}

var _ i.JobScheduler = &JobService{}

// NewJobService creates a JobService, filling unset options with defaults.
func NewJobService(repo i.SolutionRepo, queue i.SortedQueue, solver i.Solver, logger *zap.Logger, opts JobOptions) (*JobService, error) {
	if logger == nil {
		return nil, ErrMissingLogger
	}
	if opts.QueueKey == "" {
		opts.QueueKey = defaultQueueKey
	}
	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = defaultPollInterval
	}

	return &JobService{
		repo:   repo,
		queue:  queue,
		solver: solver,
		logger: logger,
		opts:   opts,
	}, nil
}

// Submit stores a pending job for mazeText and queues it by submission time.
func (js *JobService) Submit(ctx context.Context, mazeText string) (uuid.UUID, error) {
	sol := dmn.NewSolution(uuid.New(), mazeText)
	if err := js.repo.Save(ctx, sol); err != nil {
		return uuid.Nil, err
	}

	score := float64(sol.CreatedAt.UnixNano())
	if err := js.queue.Enqueue(ctx, js.opts.QueueKey, score, sol.ID.String()); err != nil {
		return uuid.Nil, err
	}

	js.logger.Info("job queued", zap.Stringer("id", sol.ID))
	return sol.ID, nil
}

// Status returns the stored job.
func (js *JobService) Status(ctx context.Context, id uuid.UUID) (*dmn.Solution, error) {
	return js.repo.ByID(ctx, id)
}

// Work drains the queue until ctx is done. Each poll takes up to Workers
// jobs and solves them concurrently; the loop sleeps only when the queue
// came back empty.
func (js *JobService) Work(ctx context.Context) error {
	js.logger.Info("worker started", zap.Int("workers", js.opts.Workers))
	defer js.logger.Info("worker stopped")

	for {
		n, err := js.drain(ctx)
		if err != nil && ctx.Err() == nil {
			js.logger.Error("polling queue", zap.Error(err))
		}
		if n > 0 && err == nil {
			continue
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(js.opts.PollInterval):
		}
	}
}

// drain runs one poll and returns how many jobs it processed.
func (js *JobService) drain(ctx context.Context) (int, error) {
	queued, err := js.queue.DequeTops(ctx, js.opts.QueueKey, int64(js.opts.Workers))
	if err != nil {
		return 0, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(js.opts.Workers)
	for _, item := range queued {
		item := item
		g.Go(func() error {
			id, err := uuid.Parse(item.Member)
			if err != nil {
				js.logger.Warn("dropping malformed job id", zap.String("id", item.Member))
				return nil
			}
			js.process(gctx, id, item.Score)
			return nil
		})
	}
	return len(queued), g.Wait()
}

// process solves one job and stores the outcome. A job that cannot be
// loaded, solved to completion or saved goes back on the queue at score.
func (js *JobService) process(ctx context.Context, id uuid.UUID, score float64) {
	log := js.logger.With(zap.Stringer("id", id))

	job, err := js.repo.ByID(ctx, id)
	if err != nil {
		log.Error("loading job", zap.Error(err))
		js.requeue(ctx, id, score)
		return
	}

	sol, err := js.solver.Solve(ctx, job.Maze)
	switch {
	case err == nil:
		job.CopyResult(sol)
	case errors.Is(err, context.Canceled):
		log.Warn("job interrupted", zap.Error(err))
		js.requeue(ctx, id, score)
		return
	default:
		job.Fail(err)
	}

	if err := js.repo.Save(ctx, job); err != nil {
		log.Error("saving job", zap.Error(err))
		js.requeue(ctx, id, score)
		return
	}
	log.Info("job finished", zap.String("status", string(job.Status)))
}

// requeue puts id back on the queue even when ctx is already cancelled.
func (js *JobService) requeue(ctx context.Context, id uuid.UUID, score float64) {
	if err := js.queue.Enqueue(context.WithoutCancel(ctx), js.opts.QueueKey, score, id.String()); err != nil {
		js.logger.Error("requeueing job", zap.Stringer("id", id), zap.Error(err))
		return
	}
	js.logger.Info("job requeued", zap.Stringer("id", id))
}
