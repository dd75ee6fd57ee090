// Tables command lists the user-defined tables in the database.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the tables in the database",
	Long: `Tables lists the user-defined table names from the database catalog,
in the catalog's name order.`,
	Args: cobra.NoArgs,
	RunE: runTables,
}

func runTables(cmd *cobra.Command, args []string) error {
	names, err := engine.ListTables(cmd.Context())
	if err != nil {
		return fmt.Errorf("list tables: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]any{"tables": names, "count": len(names)})
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
