// Package main provides the CLI entry point for legacybridge.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/legacybridge-go/pkg/legacybridge"
	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/config"
	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/output"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "legacybridge",
		Short: "Inspect legacy command catalogs and edit sparse result tables",
		Long: `legacybridge builds searchable command catalogs from legacy menu
environments and edits xlsx result tables through a dense column view.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}
			var err error
			cfg, err = config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			level, _ := cfg.Level()
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			if cfg.File != "" {
				logger.Debug("using config file", "path", cfg.File)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./"+config.FileName+")")
	flags.StringP("format", "f", "", "Output format: json, table")
	flags.Bool("pretty", false, "Pretty-print JSON output")
	flags.String("sheet", "", "Worksheet holding the results table")
	flags.Bool("nan-empty-cells", false, "Fill appended cells with NaN instead of 0")
	flags.Bool("meta-for-ctrl", false, "Use meta instead of ctrl for accelerators")
	flags.String("log-level", "", "Log level: debug, info, warn, error")

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.FormatJSON, config.FormatTable}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newCatalogCmd())
	rootCmd.AddCommand(newFindCmd())
	rootCmd.AddCommand(newTableCmd())
	return rootCmd
}

func options() legacybridge.Options {
	return cfg.Options(logger)
}

// writeJSON prints v honoring the pretty setting.
func writeJSON(cmd *cobra.Command, v interface{}) error {
	data, err := output.ToJSON(v, cfg.Pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
