package service

import (
	"context"
	"sort"
	"sync"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
)

type memoryRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]dmn.Solution
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{items: map[uuid.UUID]dmn.Solution{}}
}

func (r *memoryRepo) Save(_ context.Context, s *dmn.Solution) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[s.ID] = *s
	return nil
}

func (r *memoryRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.Solution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.items[id]
	if !ok {
		return nil, dmn.ErrSolutionNotFound
	}
	return &s, nil
}

type memoryQueue struct {
	mu    sync.Mutex
	items map[string][]i.QueuedMember
}

func newMemoryQueue() *memoryQueue {
	return &memoryQueue{items: map[string][]i.QueuedMember{}}
}

func (q *memoryQueue) Enqueue(_ context.Context, key string, score float64, member string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items[key] = append(q.items[key], i.QueuedMember{Member: member, Score: score})
	sort.SliceStable(q.items[key], func(a, b int) bool { return q.items[key][a].Score < q.items[key][b].Score })
	return nil
}

func (q *memoryQueue) DequeTops(_ context.Context, key string, amount int64) ([]i.QueuedMember, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := min(int(amount), len(q.items[key]))
	members := append([]i.QueuedMember(nil), q.items[key][:n]...)
	q.items[key] = q.items[key][n:]
	return members, nil
}

// snapshot returns the queued members in score order.
func (q *memoryQueue) snapshot(key string) []i.QueuedMember {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]i.QueuedMember(nil), q.items[key]...)
}

func (q *memoryQueue) Count(_ context.Context, key string) int64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return int64(len(q.items[key]))
}

type memoryCache struct {
	mu      sync.Mutex
	items   map[string]dmn.Solution
	getErr  error
	setErr  error
	setHits int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[string]dmn.Solution{}}
}

func (c *memoryCache) Get(_ context.Context, digest string) (*dmn.Solution, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	s, ok := c.items[digest]
	if !ok {
		return nil, false, nil
	}
	return &s, true, nil
}

func (c *memoryCache) Set(_ context.Context, s *dmn.Solution) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setHits++
	if c.setErr != nil {
		return c.setErr
	}
	c.items[s.Digest] = *s
	return nil
}

// contextRepo fails like a database driver once its context is done, and
// can be told to fail every save.
type contextRepo struct {
	*memoryRepo
	saveErr error
}

func (r *contextRepo) Save(ctx context.Context, s *dmn.Solution) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.saveErr != nil {
		return r.saveErr
	}
	return r.memoryRepo.Save(ctx, s)
}

func (r *contextRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.memoryRepo.ByID(ctx, id)
}

type solverFunc func(ctx context.Context, mazeText string) (*dmn.Solution, error)

func (f solverFunc) Solve(ctx context.Context, mazeText string) (*dmn.Solution, error) {
	return f(ctx, mazeText)
}
