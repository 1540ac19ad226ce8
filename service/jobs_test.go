package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func newTestJobs(t *testing.T) (*JobService, *memoryRepo, *memoryQueue) {
	t.Helper()
	repo, queue := newMemoryRepo(), newMemoryQueue()
	js, err := NewJobService(repo, queue, newTestSolver(t, newMemoryCache()), zap.NewNop(), JobOptions{
		QueueKey:     "test:jobs",
		Workers:      2,
		PollInterval: 10 * time.Millisecond,
	})
	require.NoError(t, err)
	return js, repo, queue
}

func TestJobSubmit(t *testing.T) {
	js, repo, queue := newTestJobs(t)
	sample := readSample(t)

	id, err := js.Submit(context.Background(), sample)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	job, err := js.Status(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, dmn.StatusPending, job.Status)
	assert.Equal(t, sample, job.Maze)
	assert.Equal(t, int64(1), queue.Count(context.Background(), "test:jobs"))

	_, err = repo.ByID(context.Background(), uuid.New())
	assert.Error(t, err)
}

func TestJobWorker(t *testing.T) {
	defer goleak.VerifyNone(t)

	js, _, queue := newTestJobs(t)
	ctx, cancel := context.WithCancel(context.Background())

	solvable, err := js.Submit(ctx, readSample(t))
	require.NoError(t, err)
	broken, err := js.Submit(ctx, "####\n#S.#\n####")
	require.NoError(t, err)
	walled, err := js.Submit(ctx, "#######\n#S..#E#\n#######")
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, js.Work(ctx))
	}()

	finished := func(id uuid.UUID) func() bool {
		return func() bool {
			job, err := js.Status(context.Background(), id)
			return err == nil && job.Status != dmn.StatusPending
		}
	}
	require.Eventually(t, finished(solvable), 5*time.Second, 10*time.Millisecond)
	require.Eventually(t, finished(broken), 5*time.Second, 10*time.Millisecond)
	require.Eventually(t, finished(walled), 5*time.Second, 10*time.Millisecond)

	cancel()
	wg.Wait()

	job, err := js.Status(context.Background(), solvable)
	require.NoError(t, err)
	assert.Equal(t, dmn.StatusSolved, job.Status)
	assert.Equal(t, int64(7036), job.Cost)
	assert.Equal(t, solvable, job.ID, "job keeps its own ID")

	job, err = js.Status(context.Background(), broken)
	require.NoError(t, err)
	assert.Equal(t, dmn.StatusFailed, job.Status)
	assert.Contains(t, job.Error, "missing end marker")

	job, err = js.Status(context.Background(), walled)
	require.NoError(t, err)
	assert.Equal(t, dmn.StatusFailed, job.Status)
	assert.Contains(t, job.Error, "unreachable")

	assert.Zero(t, queue.Count(context.Background(), "test:jobs"))
}

func TestJobWorkerSkipsMalformedIDs(t *testing.T) {
	js, _, queue := newTestJobs(t)
	require.NoError(t, queue.Enqueue(context.Background(), "test:jobs", 1, "not-a-uuid"))

	n, err := js.drain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Zero(t, queue.Count(context.Background(), "test:jobs"))
}

func TestNewJobServiceDefaults(t *testing.T) {
	js, err := NewJobService(newMemoryRepo(), newMemoryQueue(), nil, zap.NewNop(), JobOptions{})
	require.NoError(t, err)
	assert.Equal(t, defaultQueueKey, js.opts.QueueKey)
	assert.Equal(t, defaultWorkers, js.opts.Workers)
	assert.Equal(t, defaultPollInterval, js.opts.PollInterval)

	_, err = NewJobService(newMemoryRepo(), newMemoryQueue(), nil, nil, JobOptions{})
	assert.ErrorIs(t, err, ErrMissingLogger)
}

func TestJobWorkerRequeues(t *testing.T) {
	const key = "test:jobs"

	newService := func(t *testing.T, repo i.SolutionRepo, queue i.SortedQueue, solver i.Solver) *JobService {
		t.Helper()
		js, err := NewJobService(repo, queue, solver, zap.NewNop(), JobOptions{QueueKey: key, Workers: 2})
		require.NoError(t, err)
		return js
	}

	t.Run("Job that cannot be loaded during shutdown", func(t *testing.T) {
		repo, queue := &contextRepo{memoryRepo: newMemoryRepo()}, newMemoryQueue()
		js := newService(t, repo, queue, newTestSolver(t, nil))

		id, err := js.Submit(context.Background(), readSample(t))
		require.NoError(t, err)
		before := queue.snapshot(key)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		n, err := js.drain(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		assert.Equal(t, before, queue.snapshot(key), "job keeps its place in the queue")
		job, err := js.Status(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, dmn.StatusPending, job.Status)
	})

	t.Run("Job whose outcome cannot be saved", func(t *testing.T) {
		repo, queue := &contextRepo{memoryRepo: newMemoryRepo()}, newMemoryQueue()
		js := newService(t, repo, queue, newTestSolver(t, nil))

		id, err := js.Submit(context.Background(), readSample(t))
		require.NoError(t, err)
		before := queue.snapshot(key)

		repo.saveErr = errors.New("mongo: not primary")
		_, err = js.drain(context.Background())
		require.NoError(t, err)
		assert.Equal(t, before, queue.snapshot(key))

		repo.saveErr = nil
		_, err = js.drain(context.Background())
		require.NoError(t, err)

		job, err := js.Status(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, dmn.StatusSolved, job.Status, "requeued job is solved on the next poll")
		assert.Zero(t, queue.Count(context.Background(), key))
	})

	t.Run("Interrupted solve", func(t *testing.T) {
		repo, queue := newMemoryRepo(), newMemoryQueue()
		interrupted := solverFunc(func(context.Context, string) (*dmn.Solution, error) {
			return nil, fmt.Errorf("search aborted after 1024 pops: %w", context.Canceled)
		})
		js := newService(t, repo, queue, interrupted)

		id, err := js.Submit(context.Background(), readSample(t))
		require.NoError(t, err)
		job, err := js.Status(context.Background(), id)
		require.NoError(t, err)

		_, err = js.drain(context.Background())
		require.NoError(t, err)

		queued := queue.snapshot(key)
		require.Len(t, queued, 1)
		assert.Equal(t, id.String(), queued[0].Member)
		assert.Equal(t, float64(job.CreatedAt.UnixNano()), queued[0].Score)

		job, err = js.Status(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, dmn.StatusPending, job.Status)
	})
}
