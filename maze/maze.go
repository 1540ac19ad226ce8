/*
Package maze provides the grid model shared by the pathfinding searches.

A Grid is an immutable rectangle of passable and blocked cells with a designated
start and end. Grids are built from the textual maze format ('#' wall, 'S' start,
'E' end, anything else open floor) or as an open rectangle that is later blocked
cell by cell.

Utility functions answer passability and neighbor queries and render the grid
back to ASCII, optionally with a path drawn over it.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

const (
	wallChar  = '#'
	openChar  = '.'
	startChar = 'S'
	endChar   = 'E'
)

var (
	ErrEmptyMaze       = errors.New("maze has no rows")
	ErrMissingStart    = errors.New("missing start marker")
	ErrMissingEnd      = errors.New("missing end marker")
	ErrDuplicateMarker = errors.New("duplicate start or end marker")
	ErrInvalidSize     = errors.New("invalid grid dimensions")
	ErrOutOfBounds     = errors.New("position is out of the grid")
)

// Grid is a rectangular maze of passable cells with a start and an end.
type Grid struct {
	width  int          // Number of columns
	height int          // Number of rows
	open   []bool       // Row-major passability matrix
	start  CellPosition // Start marker
	end    CellPosition // End marker
}

// Parse builds a Grid from its textual form. Rows shorter than the widest row
// are padded with walls.
func Parse(input string) (*Grid, error) {
	lines := strings.Split(strings.TrimRight(input, "\r\n"), "\n")
	if len(lines) == 1 && strings.TrimSpace(lines[0]) == "" {
		return nil, ErrEmptyMaze
	}

	width := 0
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
		width = max(width, len(lines[i]))
	}

	g := &Grid{
		width:  width,
		height: len(lines),
		open:   make([]bool, width*len(lines)),
	}

	var hasStart, hasEnd bool
	for row, line := range lines {
		for col := 0; col < len(line); col++ {
			c := line[col]
			pos := CellPosition{Row: row, Col: col}
			switch c {
			case startChar:
				if hasStart {
					return nil, fmt.Errorf("%w: second %q at %s", ErrDuplicateMarker, c, pos)
				}
				hasStart = true
				g.start = pos
			case endChar:
				if hasEnd {
					return nil, fmt.Errorf("%w: second %q at %s", ErrDuplicateMarker, c, pos)
				}
				hasEnd = true
				g.end = pos
			}
			if c != wallChar {
				g.open[g.Index(pos)] = true
			}
		}
	}

	if !hasStart {
		return nil, ErrMissingStart
	}
	if !hasEnd {
		return nil, ErrMissingEnd
	}
	return g, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(input string) *Grid {
	g, err := Parse(input)
	if err != nil {
		panic(fmt.Sprintf("maze: %v", err))
	}
	return g
}

// NewOpen returns a grid of the given size where every cell is passable.
func NewOpen(rows, cols int, start, end CellPosition) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidSize
	}

	g := &Grid{
		width:  cols,
		height: rows,
		open:   make([]bool, rows*cols),
		start:  start,
		end:    end,
	}
	if !g.InBound(start.Row, start.Col) || !g.InBound(end.Row, end.Col) {
		return nil, ErrOutOfBounds
	}
	for i := range g.open {
		g.open[i] = true
	}
	return g, nil
}

// WithWalls returns a copy of g with the given cells blocked. Positions
// outside the grid are ignored.
func (g *Grid) WithWalls(cells ...CellPosition) *Grid {
	cp := *g
	cp.open = make([]bool, len(g.open))
	copy(cp.open, g.open)
	for _, c := range cells {
		if g.InBound(c.Row, c.Col) {
			cp.open[g.Index(c)] = false
		}
	}
	return &cp
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Start returns the start position.
func (g *Grid) Start() CellPosition { return g.start }

// End returns the end position.
func (g *Grid) End() CellPosition { return g.end }

// Len returns the number of cells, passable or not.
func (g *Grid) Len() int { return len(g.open) }

// Index maps an in-bound position to its dense row-major index.
func (g *Grid) Index(p CellPosition) int {
	return p.Row*g.width + p.Col
}

// Position is the inverse of Index.
func (g *Grid) Position(i int) CellPosition {
	return CellPosition{Row: i / g.width, Col: i % g.width}
}

// InBound reports whether the coordinates lie inside the grid.
func (g *Grid) InBound(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// IsPassable reports whether p is inside the grid and not a wall.
func (g *Grid) IsPassable(p CellPosition) bool {
	return g.InBound(p.Row, p.Col) && g.open[g.Index(p)]
}

// PassableCount returns the number of passable cells.
func (g *Grid) PassableCount() int {
	n := 0
	for _, ok := range g.open {
		if ok {
			n++
		}
	}
	return n
}

// Neighbor returns the cell one step from p in heading h. The second result
// is false when the step leaves the grid; passability is not checked.
func (g *Grid) Neighbor(p CellPosition, h Heading) (CellPosition, bool) {
	dr, dc := h.Delta()
	next := CellPosition{Row: p.Row + dr, Col: p.Col + dc}
	if !g.InBound(next.Row, next.Col) {
		return CellPosition{}, false
	}
	return next, true
}

// PassableNeighbors returns the passable 4-neighbors of p in clockwise order
// starting at North.
func (g *Grid) PassableNeighbors(p CellPosition) []CellPosition {
	result := make([]CellPosition, 0, len(Headings))
	for _, h := range Headings {
		if next, ok := g.Neighbor(p, h); ok && g.IsPassable(next) {
			result = append(result, next)
		}
	}
	return result
}

// Render draws the grid as text. Cells present in marks are drawn with the
// mapped rune instead of floor; start and end markers always win.
func (g *Grid) Render(marks map[CellPosition]rune) string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)

	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			pos := CellPosition{Row: row, Col: col}
			switch {
			case pos == g.start:
				b.WriteByte(startChar)
			case pos == g.end:
				b.WriteByte(endChar)
			case !g.open[g.Index(pos)]:
				b.WriteByte(wallChar)
			default:
				if r, ok := marks[pos]; ok {
					b.WriteRune(r)
				} else {
					b.WriteByte(openChar)
				}
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// String provides a textual representation of the maze.
func (g *Grid) String() string {
	return g.Render(nil)
}
