package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/d60-Lab/comedor/internal/api"
	"github.com/d60-Lab/comedor/pkg/httpx"
	"github.com/d60-Lab/comedor/pkg/logger"
	"github.com/d60-Lab/comedor/pkg/monitoring"
	"github.com/d60-Lab/comedor/pkg/tracing"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if enabled, err := monitoring.InitSentry(cfg.Sentry); err != nil {
			logger.Warn("sentry disabled", zap.Error(err))
		} else if enabled {
			defer monitoring.Flush()
		}

		shutdownTracing, err := tracing.Init(ctx, cfg.Tracing)
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdownTracing(context.Background()); err != nil {
				logger.Warn("tracing shutdown", zap.Error(err))
			}
		}()

		a, err := newApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer a.close()

		router := api.NewRouter(cfg, a.handler())
		return httpx.NewFromConfig(cfg.Server, router).Run(ctx)
	},
}
