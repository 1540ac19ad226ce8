package main

import (
	"fmt"

	"github.com/beka-birhanu/vinom-pathfinder/pathfind"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRaceCmd(a *app) *cobra.Command {
	var (
		input     string
		cheatLen  int
		minSaving int
	)

	cmd := &cobra.Command{
		Use:   "race",
		Short: "Count cheats that save at least --min-saving steps",
		Long: `Reads a race track maze. A cheat passes through walls for at most
--cheat-len steps, measured as Manhattan distance between its two ends.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGrid(input)
			if err != nil {
				return err
			}

			cheats, err := pathfind.FindCheats(g, cheatLen)
			if err != nil {
				return err
			}
			n := pathfind.CountCheats(cheats, minSaving)
			a.logger.Debug("cheats found", zap.Int("positive", len(cheats)), zap.Int("counted", n))

			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "race track file")
	cmd.Flags().IntVar(&cheatLen, "cheat-len", 2, "longest cheat in steps")
	cmd.Flags().IntVar(&minSaving, "min-saving", 100, "smallest saving counted")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
