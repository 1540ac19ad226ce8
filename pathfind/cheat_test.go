package pathfind

import (
	"testing"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCheats(t *testing.T) {
	g := loadGrid(t, "race.txt")

	t.Run("Honest race length", func(t *testing.T) {
		trail, err := ShortestPath(g, g.Start(), g.End())
		require.NoError(t, err)
		assert.Equal(t, 84, len(trail)-1)
		assert.Equal(t, []maze.CellPosition{{Row: 3, Col: 1}, {Row: 2, Col: 1}, {Row: 1, Col: 1}, {Row: 1, Col: 2}}, trail[:4])
	})

	t.Run("Two step cheats", func(t *testing.T) {
		cheats, err := FindCheats(g, 2)
		require.NoError(t, err)

		bySaving := map[int]int{}
		for _, c := range cheats {
			bySaving[c.Saving]++
		}
		assert.Equal(t, map[int]int{
			2: 14, 4: 14, 6: 2, 8: 4, 10: 2, 12: 3,
			20: 1, 36: 1, 38: 1, 40: 1, 64: 1,
		}, bySaving)

		assert.Contains(t, cheats, Cheat{
			From:   maze.CellPosition{Row: 1, Col: 7},
			To:     maze.CellPosition{Row: 1, Col: 9},
			Saving: 12,
		})
		assert.Equal(t, 64, cheats[0].Saving, "largest saving first")
		assert.Equal(t, 1, CountCheats(cheats, 64))
		assert.Equal(t, 44, CountCheats(cheats, 1))
	})

	t.Run("Twenty step cheats", func(t *testing.T) {
		cheats, err := FindCheats(g, 20)
		require.NoError(t, err)

		assert.Equal(t, 3, CountCheats(cheats, 76))
		assert.Equal(t, 285, CountCheats(cheats, 50))
	})

	t.Run("Unreachable end", func(t *testing.T) {
		_, err := FindCheats(maze.MustParse("#######\n#S..#E#\n#######"), 2)
		assert.ErrorIs(t, err, ErrUnreachable)
	})
}
