package i

import (
	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"google.golang.org/protobuf/proto"
)

// SolutionEncoder converts solutions to and from a binary wire format.
type SolutionEncoder interface {
	SolutionMessage(*dmn.Solution) (proto.Message, error)
	MarshalSolution(*dmn.Solution) ([]byte, error)
	UnmarshalSolution([]byte) (*dmn.Solution, error)
}
