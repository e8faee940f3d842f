// Package main provides the passgen CLI entrypoint.
// It wires subcommands (generate, tui, serve), loads configuration, and initializes logging.
package main

import (
	"context"
	"os"
	"passgen/internal/config"
	"passgen/internal/session"
	"passgen/pkg/clipboard"
	"passgen/pkg/download"
	"passgen/pkg/logger"
	"passgen/pkg/metrics"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newSession creates the session every subcommand drives, with the system
// clipboard and the configured download directory as sinks.
func newSession(cfg *config.Config, ins *metrics.Instruments) *session.Session {
	return session.New(session.Options{
		Defaults:   cfg.DefaultOptions(),
		Clipboard:  clipboard.New(),
		Downloader: download.New(cfg.Download.Dir),
		Metrics:    ins,
	})
}

// setupLogger sends logs to the configured log file, or drops them when none
// is set. Used by the subcommands that own the terminal.
func setupLogger(cfg *config.Config) error {
	if cfg.Log.File == "" {
		logger.Discard()

		return nil
	}

	return logger.Setup(cfg.Environment, cfg.Log.File)
}

func newRootCommand(cfg *config.Config) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:          "passgen",
		Short:        "Generates random passwords and estimates their strength",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err //nolint: wrapcheck
			}
			*cfg = *loaded

			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yml", "Config File Path")

	rootCmd.AddCommand(
		generateCommand(cfg),
		tuiCommand(cfg),
		serveCommand(cfg),
	)

	return rootCmd
}

// main sets up the root Cobra command and executes the CLI.
func main() {
	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync(ctx)

			panic(p)
		}
	}()

	var cfg config.Config
	err := newRootCommand(&cfg).Execute()
	logger.Sync(ctx)
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
