/*
Package wilson generates random mazes in the text form read by maze.Parse.

Rooms sit on the odd coordinates of a (2*rows+1) x (2*cols+1) character grid
and are joined by carving the walls between them. The spanning tree is drawn
with Wilson's algorithm, so every perfect maze of the given size is equally
likely. Extra walls can then be knocked out to create loops, which gives the
solver several routes of different cost to choose from.

The start is placed in the bottom-left room and the end in the top-right.
*/
package wilson

import (
	"errors"
	"math/rand"
	"strings"
)

const maxDimension = 512

var ErrInvalidDimensions = errors.New("invalid maze dimensions")

// Directions in the order North, East, South, West.
var deltas = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Options configures Generate.
type Options struct {
	Rows  int   // Rooms per column
	Cols  int   // Rooms per row
	Loops int   // Extra walls knocked out after carving
	Seed  int64 // Seed of the random source
}

// Generate carves a maze and returns its text, one line per grid row.
func Generate(opts Options) (string, error) {
	if min(opts.Rows, opts.Cols) <= 0 || max(opts.Rows, opts.Cols) > maxDimension ||
		opts.Rows*opts.Cols < 2 || opts.Loops < 0 {
		return "", ErrInvalidDimensions
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	c := newCanvas(opts.Rows, opts.Cols)
	c.carve(rng)
	c.knockOut(rng, opts.Loops)

	c.cells[c.at((opts.Rows-1)*opts.Cols)] = 'S'
	c.cells[c.at(opts.Cols-1)] = 'E'
	return c.String(), nil
}

// canvas holds the character grid; rooms are addressed by row*cols+col.
type canvas struct {
	rows, cols int
	width      int
	cells      []byte
}

func newCanvas(rows, cols int) *canvas {
	c := &canvas{rows: rows, cols: cols, width: 2*cols + 1}
	c.cells = []byte(strings.Repeat("#", (2*rows+1)*c.width))
	for room := 0; room < rows*cols; room++ {
		c.cells[c.at(room)] = '.'
	}
	return c
}

// at returns the character index of a room.
func (c *canvas) at(room int) int {
	row, col := room/c.cols, room%c.cols
	return (2*row+1)*c.width + 2*col + 1
}

// wall returns the character index between room and its neighbour in dir.
func (c *canvas) wall(room, dir int) int {
	return c.at(room) + deltas[dir][0]*c.width + deltas[dir][1]
}

func (c *canvas) neighbor(room, dir int) (int, bool) {
	row := room/c.cols + deltas[dir][0]
	col := room%c.cols + deltas[dir][1]
	if row < 0 || row >= c.rows || col < 0 || col >= c.cols {
		return 0, false
	}
	return row*c.cols + col, true
}

// carve builds a uniform spanning tree with loop-erased random walks.
func (c *canvas) carve(rng *rand.Rand) {
	n := c.rows * c.cols
	inTree := make([]bool, n)
	exit := make([]int, n)
	inTree[rng.Intn(n)] = true

	for _, start := range rng.Perm(n) {
		// Overwriting exit on a revisit erases the loop just walked.
		for room := start; !inTree[room]; {
			dir := rng.Intn(len(deltas))
			next, ok := c.neighbor(room, dir)
			if !ok {
				continue
			}
			exit[room] = dir
			room = next
		}

		for room := start; !inTree[room]; {
			c.cells[c.wall(room, exit[room])] = '.'
			inTree[room] = true
			room, _ = c.neighbor(room, exit[room])
		}
	}
}

// knockOut opens up to loops random interior walls.
func (c *canvas) knockOut(rng *rand.Rand, loops int) {
	var walls []int
	for room := 0; room < c.rows*c.cols; room++ {
		for _, dir := range []int{1, 2} {
			if _, ok := c.neighbor(room, dir); ok && c.cells[c.wall(room, dir)] == '#' {
				walls = append(walls, c.wall(room, dir))
			}
		}
	}

	rng.Shuffle(len(walls), func(a, b int) { walls[a], walls[b] = walls[b], walls[a] })
	for _, w := range walls[:min(loops, len(walls))] {
		c.cells[w] = '.'
	}
}

func (c *canvas) String() string {
	var b strings.Builder
	b.Grow(len(c.cells) + len(c.cells)/c.width)
	for i := 0; i < len(c.cells); i += c.width {
		b.Write(c.cells[i : i+c.width])
		b.WriteByte('\n')
	}
	return b.String()
}
