package maze

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedCoordinate = errors.New("malformed coordinate")

// ParseCoordinates reads one "X,Y" pair per line, where X is the column and Y
// the row. Blank lines are skipped.
func ParseCoordinates(input string) ([]CellPosition, error) {
	var result []CellPosition
	for i, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		xs, ys, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedCoordinate, i+1, line)
		}
		col, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedCoordinate, i+1, err)
		}
		row, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedCoordinate, i+1, err)
		}
		if row < 0 || col < 0 {
			return nil, fmt.Errorf("%w: line %d: negative coordinate", ErrMalformedCoordinate, i+1)
		}

		result = append(result, CellPosition{Row: row, Col: col})
	}
	return result, nil
}

// FormatCoordinate renders p back into the "X,Y" input form.
func FormatCoordinate(p CellPosition) string {
	return fmt.Sprintf("%d,%d", p.Col, p.Row)
}
