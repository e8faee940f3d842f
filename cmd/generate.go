package main

import (
	"fmt"
	"passgen/internal/config"
	"passgen/pkg/domain"
	"passgen/pkg/metrics"

	"github.com/spf13/cobra"
)

func generateCommand(cfg *config.Config) *cobra.Command {
	var (
		opts     domain.CharsetOptions
		count    int
		copyLast bool
		saveLast bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Prints freshly generated passwords with their entropy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogger(cfg); err != nil {
				return fmt.Errorf("could not set up logger: %w", err)
			}
			ctx := cmd.Context()

			// configured defaults, overridden by the flags actually given
			selected := cfg.DefaultOptions()
			flags := cmd.Flags()
			override := func(name string, dst *bool, v bool) {
				if flags.Changed(name) {
					*dst = v
				}
			}
			override("lower", &selected.IncludeLower, opts.IncludeLower)
			override("upper", &selected.IncludeUpper, opts.IncludeUpper)
			override("numbers", &selected.IncludeNumbers, opts.IncludeNumbers)
			override("symbols", &selected.IncludeSymbols, opts.IncludeSymbols)
			override("exclude-ambiguous", &selected.ExcludeAmbiguous, opts.ExcludeAmbiguous)
			override("readable", &selected.ReadabilityFilter, opts.ReadabilityFilter)
			if flags.Changed("length") {
				selected.Length = opts.Length
			}

			s := newSession(cfg, metrics.Noop())
			s.SetOptions(selected)

			out := cmd.OutOrStdout()
			for range max(count, 1) {
				pw, err := s.Generate(ctx)
				if err != nil {
					return err //nolint: wrapcheck
				}
				fmt.Fprintf(out, "%s  %.1f bits (%s)\n", pw.Value, pw.Score.Bits, pw.Score.Strength)
			}

			if copyLast {
				if err := s.Copy(ctx); err != nil {
					return err //nolint: wrapcheck
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "Copied!")
			}
			if saveLast {
				if err := s.Download(ctx); err != nil {
					return err //nolint: wrapcheck
				}
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.Length, "length", "l", domain.DefaultLength, "password length, clamped to [1, 256]")
	f.BoolVar(&opts.IncludeLower, "lower", true, "include lowercase letters")
	f.BoolVar(&opts.IncludeUpper, "upper", true, "include uppercase letters")
	f.BoolVar(&opts.IncludeNumbers, "numbers", true, "include digits")
	f.BoolVar(&opts.IncludeSymbols, "symbols", true, "include symbols")
	f.BoolVar(&opts.ExcludeAmbiguous, "exclude-ambiguous", false, "leave out O 0 o I l 1")
	f.BoolVar(&opts.ReadabilityFilter, "readable", false, "collapse runs of 3+ symbols to their first 2")
	f.IntVarP(&count, "count", "n", 1, "number of passwords to print")
	f.BoolVar(&copyLast, "copy", false, "copy the last password to the clipboard")
	f.BoolVar(&saveLast, "download", false, "save the last password as password.txt in the download directory")

	return cmd
}
