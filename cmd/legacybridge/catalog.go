package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/legacybridge-go/pkg/legacybridge"
	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/catalog"
	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/config"
	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/models"
	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/output"
)

var suggestLimit int

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog <environment>",
		Short: "List every legacy command with its menu location",
		Long: `Build the command catalog of a legacy environment.

The environment is a YAML document (.yaml, .yml) with menus and commands,
or a plugins.config file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := legacybridge.Catalog(args[0], options())
			if err != nil {
				return err
			}
			if cfg.Format == config.FormatTable {
				output.RenderCatalog(cmd.OutOrStdout(), records)
				return nil
			}
			return writeJSON(cmd, records)
		},
	}
}

func newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <environment> <command>",
		Short: "Show one legacy command",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := legacybridge.Catalog(args[0], options())
			if err != nil {
				return err
			}
			rec, ok := catalog.Lookup(records, args[1])
			if !ok {
				return notFound(args[1], catalog.Suggest(records, args[1], suggestLimit))
			}
			if cfg.Format == config.FormatTable {
				output.RenderCatalog(cmd.OutOrStdout(), []models.CommandRecord{rec})
				return nil
			}
			return writeJSON(cmd, rec)
		},
	}
	cmd.Flags().IntVar(&suggestLimit, "suggest", 3, "Number of suggestions for unknown commands")
	return cmd
}

func notFound(key string, suggestions []string) error {
	if len(suggestions) == 0 {
		return fmt.Errorf("command %q not found", key)
	}
	return fmt.Errorf("command %q not found, did you mean: %s", key, strings.Join(suggestions, ", "))
}
