// Rows command reads a page of rows from one table.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/glance/internal/sqlread"
	"github.com/mesh-intelligence/glance/pkg/types"
)

var (
	flagLimit  int
	flagOffset int
)

var rowsCmd = &cobra.Command{
	Use:   "rows <table>",
	Short: "Read rows from a table",
	Long: `Rows reads a page of rows from the named table as SELECT *.

The limit must be between 1 and 10000; out-of-range values are rejected,
not clamped.

Example:
  glance rows users
  glance rows users --limit 20 --offset 40`,
	Args: cobra.ExactArgs(1),
	RunE: runRows,
}

func init() {
	rowsCmd.Flags().IntVar(&flagLimit, "limit", types.DefaultLimit, "maximum rows to return (1..10000)")
	rowsCmd.Flags().IntVar(&flagOffset, "offset", 0, "rows to skip")
}

func runRows(cmd *cobra.Command, args []string) error {
	table, err := sqlread.SanitizeTableName(args[0])
	if err != nil {
		return err
	}

	page := types.Page{Limit: flagLimit, Offset: flagOffset}
	result, err := engine.ReadRows(cmd.Context(), table, page)
	if err != nil {
		return fmt.Errorf("read rows: %w", err)
	}

	if flagJSON {
		return printJSON(result)
	}
	return renderResultSet(&result.ResultSet)
}
