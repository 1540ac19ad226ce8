package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/pathfind"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBytesCmd(a *app) *cobra.Command {
	var (
		input         string
		rows, cols    int
		steps         int
		firstBlocking bool
	)

	cmd := &cobra.Command{
		Use:   "bytes",
		Short: "Shortest route across a grid after bytes have fallen into it",
		Long: `Reads one "X,Y" coordinate per line; each marks a cell that becomes a wall.

The route runs from the top-left to the bottom-right corner. By default the
first --n-steps bytes fall and the step count is printed. With
--first-blocking the coordinate of the first byte that cuts every route is
printed instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(input)
			if err != nil {
				return err
			}
			drops, err := maze.ParseCoordinates(string(data))
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}

			g, err := maze.NewOpen(rows, cols,
				maze.CellPosition{Row: 0, Col: 0},
				maze.CellPosition{Row: rows - 1, Col: cols - 1},
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if firstBlocking {
				idx, err := pathfind.FirstBlocking(g, drops)
				if err != nil {
					return err
				}
				a.logger.Debug("first blocking byte", zap.Int("index", idx))
				fmt.Fprintln(out, maze.FormatCoordinate(drops[idx]))
				return nil
			}

			fallen := drops[:min(steps, len(drops))]
			trail, err := pathfind.ShortestPath(g.WithWalls(fallen...), g.Start(), g.End())
			if err != nil {
				return err
			}
			fmt.Fprintln(out, len(trail)-1)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "file of falling byte coordinates")
	cmd.Flags().IntVar(&rows, "n-rows", 71, "grid rows")
	cmd.Flags().IntVar(&cols, "n-cols", 71, "grid columns")
	cmd.Flags().IntVar(&steps, "n-steps", 1024, "bytes fallen before routing")
	cmd.Flags().BoolVar(&firstBlocking, "first-blocking", false, "print the first byte that blocks every route")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
