// Package solveapi exposes the maze solver and the job queue over HTTP.
package solveapi

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/google/uuid"
)

// SolveRequest carries a maze in its text form.
type SolveRequest struct {
	Maze string `json:"maze" binding:"required"`
}

// JobResponse is returned when a job is accepted.
type JobResponse struct {
	ID uuid.UUID `json:"id"`
}

// SolutionResponse is the JSON view of a solution or job.
type SolutionResponse struct {
	ID         uuid.UUID `json:"id"`
	Status     string    `json:"status"`
	Cost       int64     `json:"cost"`
	Tiles      int       `json:"tiles"`
	Moves      string    `json:"moves"`
	Iterations int       `json:"iterations"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func newSolutionResponse(s *dmn.Solution) *SolutionResponse {
	return &SolutionResponse{
		ID:         s.ID,
		Status:     string(s.Status),
		Cost:       s.Cost,
		Tiles:      s.Tiles,
		Moves:      s.Moves,
		Iterations: s.Iterations,
		Error:      s.Error,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
