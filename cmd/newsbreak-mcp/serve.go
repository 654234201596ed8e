package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/newsbreak-ads-mcp/infrastructure/integrator/newsbreak"
	"github.com/vfg2006/newsbreak-ads-mcp/infrastructure/integrator/newsbreak/newsbreakclient"
	"github.com/vfg2006/newsbreak-ads-mcp/internal/api"
	"github.com/vfg2006/newsbreak-ads-mcp/internal/config"
	"github.com/vfg2006/newsbreak-ads-mcp/internal/mcp"
	"github.com/vfg2006/newsbreak-ads-mcp/internal/usecases/authenticating"
	"github.com/vfg2006/newsbreak-ads-mcp/internal/usecases/reporting"
	"github.com/vfg2006/newsbreak-ads-mcp/pkg/log"
	"k8s.io/utils/clock"
)

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	// stdout é do protocolo no transporte stdio, então os logs vão para stderr
	if err := log.Configure(cfg.App.LogLevel, os.Stderr); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		_ = log.Configure("info", os.Stderr)
	}

	newsbreakclient.RegisterPrometheus()

	client, err := newsbreakclient.NewClient(cfg)
	if err != nil {
		return err
	}

	reporter := reporting.NewService(newsbreak.New(client), clock.RealClock{})
	server := mcp.NewServer(version, reporter)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logrus.WithFields(logrus.Fields{
		"version":   version,
		"transport": cfg.Server.Transport,
		"base_url":  cfg.NewsBreak.BaseURL,
	}).Info("Iniciando servidor MCP da NewsBreak")

	if cfg.Server.Transport == config.TransportHTTP {
		return serveHTTP(ctx, cfg, server)
	}
	return serveStdio(ctx, server)
}

func serveStdio(ctx context.Context, server *sdk.Server) error {
	err := server.Run(ctx, &sdk.StdioTransport{})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logrus.Info("Sessão stdio encerrada")
	return nil
}

func serveHTTP(ctx context.Context, cfg *config.Config, server *sdk.Server) error {
	var authenticator authenticating.Authenticator
	if cfg.Auth.Secret != "" {
		var err error
		authenticator, err = authenticating.NewService(cfg)
		if err != nil {
			return err
		}
	}

	httpServer, err := api.New(cfg, server, authenticator, version)
	if err != nil {
		return err
	}

	return httpServer.Run(ctx)
}
