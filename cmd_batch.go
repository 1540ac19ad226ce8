package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/vinom-pathfinder/config"
	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	applog "github.com/beka-birhanu/vinom-pathfinder/infrastruture/log"
	"github.com/beka-birhanu/vinom-pathfinder/pathfind"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newBatchCmd(a *app) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "batch FILE...",
		Short: "Solve several maze files concurrently",
		Long: `Solves each maze file with the default rules and prints one line per
file, in argument order: the path, the minimum cost and the optimal tile count.
Files that fail print their error; the command fails if any file did.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			solverLogger, err := a.newLogger(applog.Solver)
			if err != nil {
				return err
			}
			solver, err := service.NewMazeSolver(service.SolverConfig{
				Logger:        solverLogger,
				Options:       optionsFromConfig(),
				SearchTimeout: config.Envs.SearchTimeout,
			})
			if err != nil {
				return err
			}

			solutions := make([]*dmn.Solution, len(args))
			errs := make([]error, len(args))

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(max(workers, 1))
			for idx, path := range args {
				idx, path := idx, path
				g.Go(func() error {
					data, err := os.ReadFile(path)
					if err != nil {
						errs[idx] = err
						return nil
					}
					solutions[idx], errs[idx] = solver.Solve(ctx, string(data))
					return nil
				})
			}
			_ = g.Wait()

			out := cmd.OutOrStdout()
			failed := 0
			for idx, path := range args {
				if errs[idx] != nil {
					failed++
					fmt.Fprintf(out, "%s\terror: %v\n", path, errs[idx])
					continue
				}
				fmt.Fprintf(out, "%s\t%d\t%d\n", path, solutions[idx].Cost, solutions[idx].Tiles)
			}
			a.logger.Debug("batch finished", zap.Int("files", len(args)), zap.Int("failed", failed))

			if failed > 0 {
				return fmt.Errorf("%d of %d mazes failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", config.Envs.Workers, "mazes solved at once")
	return cmd
}

// optionsFromConfig returns the search options set through the environment.
func optionsFromConfig() pathfind.Options {
	opts := pathfind.DefaultOptions()
	opts.StepCost = config.Envs.StepCost
	opts.TurnCost = config.Envs.TurnCost
	opts.MaxIterations = config.Envs.MaxIterations
	return opts
}
