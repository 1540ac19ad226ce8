// Package domain holds the records shared by the service and its adapters.
package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/pathfind"
	"github.com/google/uuid"
)

// Status is the lifecycle stage of a solution.
type Status string

const (
	StatusPending Status = "pending"
	StatusSolved  Status = "solved"
	StatusFailed  Status = "failed"
)

var ErrSolutionNotFound = errors.New("solution not found")

// Solution represents the BSON version of a maze solve for storage and caching.
type Solution struct {
	ID         uuid.UUID `bson:"_id"`
	Digest     string    `bson:"digest"`
	Maze       string    `bson:"maze,omitempty"`
	Status     Status    `bson:"status"`
	Cost       int64     `bson:"cost"`
	Tiles      int       `bson:"tiles"`
	Moves      string    `bson:"moves"`
	Iterations int       `bson:"iterations"`
	Error      string    `bson:"error,omitempty"`
	CreatedAt  time.Time `bson:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt"`
}

// NewSolution creates a pending solution for the given maze text.
func NewSolution(id uuid.UUID, mazeText string) *Solution {
	now := time.Now().UTC()
	return &Solution{
		ID:        id,
		Digest:    Digest(mazeText),
		Maze:      mazeText,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Digest returns the hex sha256 of a maze text, used as its cache key.
func Digest(mazeText string) string {
	sum := sha256.Sum256([]byte(mazeText))
	return hex.EncodeToString(sum[:])
}

// Resolve records a successful search on the solution.
func (s *Solution) Resolve(res *pathfind.Result) {
	s.Status = StatusSolved
	s.Cost = res.Cost
	s.Tiles = len(res.Tiles())
	s.Moves = pathfind.FormatMoves(res.Moves())
	s.Iterations = res.Iterations
	s.Error = ""
	s.UpdatedAt = time.Now().UTC()
}

// Fail records a failed search on the solution.
func (s *Solution) Fail(err error) {
	s.Status = StatusFailed
	s.Error = err.Error()
	s.UpdatedAt = time.Now().UTC()
}

// CopyResult takes the outcome fields of another solution of the same maze.
func (s *Solution) CopyResult(other *Solution) {
	s.Status = other.Status
	s.Cost = other.Cost
	s.Tiles = other.Tiles
	s.Moves = other.Moves
	s.Iterations = other.Iterations
	s.Error = other.Error
	s.UpdatedAt = time.Now().UTC()
}
