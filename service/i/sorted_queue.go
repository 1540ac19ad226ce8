package i

import "context"

// QueuedMember is a queue entry together with its score.
type QueuedMember struct {
	Member string
	Score  float64
}

// SortedQueue is a score-ordered queue shared between API instances and workers.
type SortedQueue interface {
	// Enqueue adds member under queueKey with the given score.
	Enqueue(ctx context.Context, queueKey string, score float64, member string) error

	// DequeTops removes and returns up to amount members with the lowest scores.
	DequeTops(ctx context.Context, queueKey string, amount int64) ([]QueuedMember, error)

	// Count returns the number of queued members.
	Count(ctx context.Context, queueKey string) int64
}
