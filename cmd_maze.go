package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/vinom-pathfinder/config"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/pathfind"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const routeMark = 'O'

func newMazeCmd(a *app) *cobra.Command {
	var (
		input   string
		tiles   bool
		show    bool
		heading string
		opts    = pathfind.Options{
			StepCost:      config.Envs.StepCost,
			TurnCost:      config.Envs.TurnCost,
			MaxIterations: config.Envs.MaxIterations,
		}
	)

	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Print the minimum cost from S to E, or the count of tiles on any optimal route",
		Long: `Reads a maze of '#' walls, '.' floor, one 'S' and one 'E'.

The walker starts on S facing --heading. Each forward move costs --step-cost
and each quarter turn costs --turn-cost.

Example:
  pathfinder maze --input day16.txt
  pathfinder maze --input day16.txt --tiles --show`,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := maze.ParseHeading(heading)
			if err != nil {
				return err
			}
			opts.StartHeading = h

			g, err := readGrid(input)
			if err != nil {
				return err
			}

			res, err := pathfind.Search(cmd.Context(), g, opts)
			if err != nil {
				return err
			}
			a.logger.Debug("maze solved",
				zap.Int64("cost", res.Cost),
				zap.Int("iterations", res.Iterations),
				zap.Int("terminals", len(res.Terminals())),
			)

			out := cmd.OutOrStdout()
			onRoute := res.Tiles()
			if show {
				marks := make(map[maze.CellPosition]rune, len(onRoute))
				for _, p := range onRoute {
					marks[p] = routeMark
				}
				fmt.Fprint(out, g.Render(marks))
			}
			if tiles {
				fmt.Fprintln(out, len(onRoute))
				return nil
			}
			fmt.Fprintln(out, res.Cost)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "maze file")
	cmd.Flags().BoolVarP(&tiles, "tiles", "t", false, "print the number of tiles on any optimal route instead of the cost")
	cmd.Flags().BoolVar(&show, "show", false, "draw the optimal tiles on the maze")
	cmd.Flags().StringVar(&heading, "heading", "E", "starting heading (N, E, S, W)")
	cmd.Flags().Int64Var(&opts.StepCost, "step-cost", opts.StepCost, "cost of one forward move")
	cmd.Flags().Int64Var(&opts.TurnCost, "turn-cost", opts.TurnCost, "cost of one quarter turn")
	cmd.Flags().IntVar(&opts.MaxIterations, "max-iterations", opts.MaxIterations, "search budget in expanded states; 0 is unlimited")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

// readGrid loads and parses a maze file.
func readGrid(path string) (*maze.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	g, err := maze.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
