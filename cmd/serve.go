package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"passgen/internal/api"
	"passgen/internal/api/handler/v1handler"
	"passgen/internal/config"
	"passgen/pkg/logger"
	"passgen/pkg/metrics"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, exp *metrics.Exporter) (func(ctx context.Context), error) {
	ins, err := exp.Instruments()
	if err != nil {
		return nil, fmt.Errorf("could not create instruments: %w", err)
	}

	server := api.NewServer(api.Deps{
		Deps:    v1handler.Deps{Session: newSession(cfg, ins)},
		Metrics: exp.Handler(),
	}, api.NewOptions(cfg))

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Fatal(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}, nil
}

func serveCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Starts the local HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.Setup(cfg.Environment); err != nil {
				return fmt.Errorf("could not set up logger: %w", err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			exp, err := metrics.NewExporter()
			if err != nil {
				return err //nolint: wrapcheck
			}

			stopWebserver, err := setupServer(ctx, cfg, exp)
			if err != nil {
				return err
			}

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			if err := exp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not stop metrics exporter", zap.Error(err))
			}

			return nil
		},
	}
}
