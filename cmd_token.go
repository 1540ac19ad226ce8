package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/config"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/token"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var ErrMissingSecret = errors.New("JWT_SECRET is not set")

func newTokenCmd(a *app) *cobra.Command {
	var (
		client string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the protected job routes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.Envs.JWTSecret == "" {
				return ErrMissingSecret
			}
			ts := token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)

			signed, err := ts.Generate(map[string]any{"client": client}, ttl)
			if err != nil {
				return err
			}
			a.logger.Info("token issued", zap.String("client", client), zap.Duration("ttl", ttl))

			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}

	cmd.Flags().StringVar(&client, "client", "", "client name stored in the token")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("client")
	return cmd
}
