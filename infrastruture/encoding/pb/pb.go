// Package pb encodes solutions as protobuf Struct messages so clients can
// read them with any protobuf runtime without generated stubs.
package pb

import (
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/api/i"
	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

var ErrMissingField = errors.New("missing field")

var _ i.SolutionEncoder = &Protobuf{}

type Protobuf struct{}

// SolutionMessage implements i.SolutionEncoder.
func (p *Protobuf) SolutionMessage(s *dmn.Solution) (proto.Message, error) {
	return structFromSolution(s)
}

// MarshalSolution implements i.SolutionEncoder.
func (p *Protobuf) MarshalSolution(s *dmn.Solution) ([]byte, error) {
	msg, err := structFromSolution(s)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(msg)
}

// UnmarshalSolution implements i.SolutionEncoder.
func (p *Protobuf) UnmarshalSolution(data []byte) (*dmn.Solution, error) {
	msg := &structpb.Struct{}
	if err := proto.Unmarshal(data, msg); err != nil {
		return nil, err
	}
	return solutionFromStruct(msg)
}

func structFromSolution(s *dmn.Solution) (*structpb.Struct, error) {
	fields := map[string]any{
		"id":         s.ID.String(),
		"digest":     s.Digest,
		"status":     string(s.Status),
		"cost":       s.Cost,
		"tiles":      s.Tiles,
		"moves":      s.Moves,
		"iterations": s.Iterations,
		"createdAt":  s.CreatedAt.UTC().Format(time.RFC3339Nano),
		"updatedAt":  s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if s.Error != "" {
		fields["error"] = s.Error
	}
	return structpb.NewStruct(fields)
}

func solutionFromStruct(msg *structpb.Struct) (*dmn.Solution, error) {
	f := msg.GetFields()
	str := func(key string) (string, error) {
		v, ok := f[key]
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrMissingField, key)
		}
		return v.GetStringValue(), nil
	}

	rawID, err := str("id")
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("solution id: %w", err)
	}

	s := &dmn.Solution{
		ID:         id,
		Digest:     f["digest"].GetStringValue(),
		Status:     dmn.Status(f["status"].GetStringValue()),
		Cost:       int64(f["cost"].GetNumberValue()),
		Tiles:      int(f["tiles"].GetNumberValue()),
		Moves:      f["moves"].GetStringValue(),
		Iterations: int(f["iterations"].GetNumberValue()),
		Error:      f["error"].GetStringValue(),
	}
	for key, dst := range map[string]*time.Time{"createdAt": &s.CreatedAt, "updatedAt": &s.UpdatedAt} {
		raw := f[key].GetStringValue()
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, fmt.Errorf("solution %s: %w", key, err)
		}
		*dst = t
	}
	return s, nil
}
