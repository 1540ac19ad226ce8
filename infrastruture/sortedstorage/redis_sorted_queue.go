// Package sortedstorage provides a Redis backed, score-ordered job queue.
// Several API instances may enqueue into the same key while workers pop
// the oldest members under a distributed lock.
package sortedstorage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const lockSuffix = ":dequeue_lock"

// RedisSortedQueue manages a sorted queue in Redis with TTL support.
type RedisSortedQueue struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

var _ i.SortedQueue = &RedisSortedQueue{}

// NewRedisSortedQueue initializes a RedisSortedQueue with the provided Redis client and TTL.
// A non-positive ttlSeconds leaves queue keys without expiry.
func NewRedisSortedQueue(client *redis.Client, ttlSeconds int) *RedisSortedQueue {
	return &RedisSortedQueue{
		client: client,
		locker: redsync.New(goredis.NewPool(client)),
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
}

// Enqueue adds a member to the sorted queue with a given score and refreshes its expiration.
func (q *RedisSortedQueue) Enqueue(ctx context.Context, queueKey string, score float64, member string) error {
	if err := q.client.ZAdd(ctx, queueKey, redis.Z{Score: score, Member: member}).Err(); err != nil {
		return fmt.Errorf("enqueue %s: %w", queueKey, err)
	}
	if q.ttl <= 0 {
		return nil
	}

	// Every enqueue pushes the deadline back, so only an idle queue expires.
	if err := q.client.Expire(ctx, queueKey, q.ttl).Err(); err != nil {
		return fmt.Errorf("expire %s: %w", queueKey, err)
	}
	return nil
}

// DequeTops removes and retrieves up to amount members with the lowest scores.
func (q *RedisSortedQueue) DequeTops(ctx context.Context, queueKey string, amount int64) ([]i.QueuedMember, error) {
	if amount <= 0 {
		return nil, nil
	}

	mutex := q.locker.NewMutex(queueKey + lockSuffix)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("lock %s: %w", queueKey, err)
	}
	defer func() {
		_, _ = mutex.UnlockContext(context.WithoutCancel(ctx))
	}()

	popped, err := q.client.ZPopMin(ctx, queueKey, amount).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("dequeue %s: %w", queueKey, err)
	}

	members := make([]i.QueuedMember, 0, len(popped))
	for _, z := range popped {
		if m, ok := z.Member.(string); ok {
			members = append(members, i.QueuedMember{Member: m, Score: z.Score})
		}
	}
	return members, nil
}

// Count returns the number of members in the sorted queue.
func (q *RedisSortedQueue) Count(ctx context.Context, queueKey string) int64 {
	return q.client.ZCard(ctx, queueKey).Val()
}
