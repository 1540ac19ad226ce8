package wilson

import (
	"context"
	"testing"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/pathfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Run("Perfect maze spans every room", func(t *testing.T) {
		text, err := Generate(Options{Rows: 8, Cols: 12, Seed: 7})
		require.NoError(t, err)

		g, err := maze.Parse(text)
		require.NoError(t, err)
		assert.Equal(t, 17, g.Height())
		assert.Equal(t, 25, g.Width())
		assert.Equal(t, maze.CellPosition{Row: 15, Col: 1}, g.Start())
		assert.Equal(t, maze.CellPosition{Row: 1, Col: 23}, g.End())

		// A tree over 96 rooms has 95 passages.
		assert.Equal(t, 2*96-1, g.PassableCount())

		dist := pathfind.Distances(g, g.Start())
		for i, d := range dist {
			if g.IsPassable(g.Position(i)) {
				assert.GreaterOrEqual(t, d, 0, "cell %v is cut off", g.Position(i))
			}
		}
	})

	t.Run("Loops open extra walls", func(t *testing.T) {
		text, err := Generate(Options{Rows: 8, Cols: 12, Loops: 10, Seed: 7})
		require.NoError(t, err)

		g, err := maze.Parse(text)
		require.NoError(t, err)
		assert.Equal(t, 2*96-1+10, g.PassableCount())
	})

	t.Run("Loops beyond the wall count open everything", func(t *testing.T) {
		text, err := Generate(Options{Rows: 3, Cols: 3, Loops: 1000, Seed: 1})
		require.NoError(t, err)

		g, err := maze.Parse(text)
		require.NoError(t, err)
		// 9 rooms and 12 passages between them.
		assert.Equal(t, 21, g.PassableCount())
	})

	t.Run("Same seed same maze", func(t *testing.T) {
		a, err := Generate(Options{Rows: 10, Cols: 10, Loops: 5, Seed: 42})
		require.NoError(t, err)
		b, err := Generate(Options{Rows: 10, Cols: 10, Loops: 5, Seed: 42})
		require.NoError(t, err)
		c, err := Generate(Options{Rows: 10, Cols: 10, Loops: 5, Seed: 43})
		require.NoError(t, err)

		assert.Equal(t, a, b)
		assert.NotEqual(t, a, c)
	})

	t.Run("Generated mazes are solvable", func(t *testing.T) {
		for seed := int64(0); seed < 20; seed++ {
			text, err := Generate(Options{Rows: 6, Cols: 9, Loops: int(seed), Seed: seed})
			require.NoError(t, err)

			res, err := pathfind.Search(context.Background(), maze.MustParse(text), pathfind.DefaultOptions())
			require.NoError(t, err, "seed %d", seed)
			assert.Positive(t, res.Cost)
		}
	})

	t.Run("Invalid dimensions", func(t *testing.T) {
		for _, opts := range []Options{
			{Rows: 0, Cols: 5},
			{Rows: 5, Cols: -1},
			{Rows: 1, Cols: 1},
			{Rows: maxDimension + 1, Cols: 2},
			{Rows: 2, Cols: 2, Loops: -1},
		} {
			_, err := Generate(opts)
			assert.ErrorIs(t, err, ErrInvalidDimensions, "%+v", opts)
		}
	})
}
