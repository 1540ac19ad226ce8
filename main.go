// Command pathfinder solves reindeer mazes, falling-byte grids and race
// tracks from the command line, and serves the solver over HTTP.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/beka-birhanu/vinom-pathfinder/config"
	applog "github.com/beka-birhanu/vinom-pathfinder/infrastruture/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	logLevel string
	logger   *zap.Logger
}

// newLogger creates a component logger at the invocation's level.
func (a *app) newLogger(name string) (*zap.Logger, error) {
	return applog.New(name, a.logLevel, os.Stderr)
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "pathfinder",
		Short: "Shortest-route solver for grid mazes",
		Long: `pathfinder finds minimum-cost routes through character grids.

Subcommands:
  maze     - cheapest route through a maze where turning costs extra
  bytes    - shortest route across a grid as bytes fall into it
  race     - count wall-clipping cheats on a single-track race
  batch    - solve many maze files concurrently
  generate - print a random maze
  serve    - run the HTTP API and the job worker
  token    - issue a bearer token for the job API`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := a.newLogger(applog.App)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", config.Envs.LogLevel, "minimum log level (debug, info, warn, error)")

	root.AddCommand(
		newMazeCmd(a),
		newBytesCmd(a),
		newRaceCmd(a),
		newBatchCmd(a),
		newGenerateCmd(a),
		newServeCmd(a),
		newTokenCmd(a),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
