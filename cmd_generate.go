package main

import (
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/maze/wilson"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newGenerateCmd(a *app) *cobra.Command {
	var opts wilson.Options

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a random maze that the maze subcommand can solve",
		Long: `Carves a random maze with Wilson's algorithm. --rows and --cols count rooms,
so the printed grid is 2*rows+1 lines of 2*cols+1 characters. --loops knocks
out extra walls so that more than one route exists.

Example:
  pathfinder generate --rows 70 --cols 70 --loops 300 > big.txt
  pathfinder maze --input big.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				opts.Seed = time.Now().UnixNano()
			}

			text, err := wilson.Generate(opts)
			if err != nil {
				return err
			}
			a.logger.Debug("maze generated", zap.Int64("seed", opts.Seed))

			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Rows, "rows", 20, "rooms per column")
	cmd.Flags().IntVar(&opts.Cols, "cols", 20, "rooms per row")
	cmd.Flags().IntVar(&opts.Loops, "loops", 0, "extra walls to knock out")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "random seed; defaults to the current time")
	return cmd
}
