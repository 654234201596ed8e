package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/newsbreak-ads-mcp/internal/config"
	"github.com/vfg2006/newsbreak-ads-mcp/internal/usecases/authenticating"
)

const defaultTokenTTL = 30 * 24 * time.Hour

func newTokenCmd() *cobra.Command {
	var (
		clientName string
		ttl        time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the HTTP transport (requires AUTH_SECRET).",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}

			authenticator, err := authenticating.NewService(cfg)
			if err != nil {
				return err
			}

			token, err := authenticator.GenerateToken(clientName, ttl)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&clientName, "client", "", "name of the client the token is issued to")
	cmd.Flags().DurationVar(&ttl, "ttl", defaultTokenTTL, "token lifetime")
	_ = cmd.MarkFlagRequired("client")

	return cmd
}
