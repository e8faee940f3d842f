package main

import (
	"context"
	"fmt"
	"os/signal"
	"passgen/internal/config"
	"passgen/internal/tui"
	"passgen/pkg/metrics"
	"syscall"

	"github.com/spf13/cobra"
)

func tuiCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Opens the interactive password generator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// the screen belongs to the UI, logs go to the log file if any
			if err := setupLogger(cfg); err != nil {
				return fmt.Errorf("could not set up logger: %w", err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
			defer stop()

			return tui.Run(ctx, newSession(cfg, metrics.Noop())) //nolint: wrapcheck
		},
	}
}
