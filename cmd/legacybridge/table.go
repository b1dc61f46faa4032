package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/ukaji3/legacybridge-go/pkg/legacybridge"
	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/config"
	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/output"
	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/table"
)

var createTable bool

func newTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Read and edit an xlsx results table",
		Long: `Read and edit an xlsx results table through a dense column view.

Columns are addressed by dense index (0..n-1 over the columns in use) or by
heading; rows by index or by label.`,
	}
	cmd.PersistentFlags().BoolVar(&createTable, "create", false, "Create the workbook if it does not exist")

	cmd.AddCommand(&cobra.Command{
		Use:   "show <file.xlsx>",
		Short: "Print the table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := openTable(args[0], false)
			if err != nil {
				return err
			}
			defer t.Close()
			if cfg.Format == config.FormatTable {
				output.RenderTable(cmd.OutOrStdout(), t.Facade)
				return nil
			}
			return writeJSON(cmd, output.TableRows(t.Facade))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <file.xlsx> <column> <row> <value>",
		Short: "Store a value; wrap it in double quotes to force text",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editTable(args[0], func(t *legacybridge.Table) error {
				row, err := rowIndex(t, args[2])
				if err != nil {
					return err
				}
				value := table.ParseValue(args[3])
				if col, err := strconv.Atoi(args[1]); err == nil {
					return t.Set(col, row, value)
				}
				return t.SetByHeader(args[1], row, value)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "append-column <file.xlsx> [heading]",
		Short: "Append a column filled with the empty-cell value",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editTable(args[0], func(t *legacybridge.Table) error {
				heading := table.DefaultColumnHeading
				if len(args) > 1 {
					heading = args[1]
				}
				col := t.AppendColumnWithHeader(heading)
				logger.Info("appended column", "heading", heading, "index", col.Index())
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "append-row <file.xlsx> [label]",
		Short: "Append a row filled with the empty-cell value",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editTable(args[0], func(t *legacybridge.Table) error {
				if len(args) > 1 {
					t.AppendRowWithHeader(args[1])
				} else {
					t.AppendRow()
				}
				logger.Info("appended row", "rows", t.RowCount())
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove-row <file.xlsx> <row>",
		Short: "Remove a row by index or label",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editTable(args[0], func(t *legacybridge.Table) error {
				row, err := rowIndex(t, args[1])
				if err != nil {
					return err
				}
				return t.RemoveRow(row)
			})
		},
	})

	return cmd
}

func openTable(path string, create bool) (*legacybridge.Table, error) {
	t, err := legacybridge.OpenTable(path, options())
	if create && errors.Is(err, legacybridge.ErrFileNotFound) {
		return legacybridge.CreateTable(path, options())
	}
	return t, err
}

// editTable opens path, applies edit and saves the result.
func editTable(path string, edit func(*legacybridge.Table) error) error {
	t, err := openTable(path, createTable)
	if err != nil {
		return err
	}
	defer t.Close()

	if err := edit(t); err != nil {
		return err
	}
	if err := t.Save(); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// rowIndex resolves a row given as a number or a label.
func rowIndex(t *legacybridge.Table, arg string) (int, error) {
	if row, err := strconv.Atoi(arg); err == nil {
		return row, nil
	}
	if row := t.RowIndex(arg); row >= 0 {
		return row, nil
	}
	return 0, fmt.Errorf("row %q: %w", arg, table.ErrRowOutOfRange)
}
