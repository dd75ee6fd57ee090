// Schema command shows the column metadata of one table.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/glance/internal/sqlread"
)

var schemaCmd = &cobra.Command{
	Use:   "schema <table>",
	Short: "Show column metadata for a table",
	Long: `Schema reports each column of the named table: ordinal position,
name, declared type, not-null flag, default value, and primary-key
membership, in catalog order.`,
	Args: cobra.ExactArgs(1),
	RunE: runSchema,
}

func runSchema(cmd *cobra.Command, args []string) error {
	table, err := sqlread.SanitizeTableName(args[0])
	if err != nil {
		return err
	}

	info, err := engine.TableInfo(cmd.Context(), table)
	if err != nil {
		return fmt.Errorf("table info: %w", err)
	}

	if flagJSON {
		return printJSON(info)
	}
	return renderTableInfo(info)
}
