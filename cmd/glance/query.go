// Query command executes a validated SELECT.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/glance/internal/sqlread"
)

var queryCmd = &cobra.Command{
	Use:   "query <sql>",
	Short: "Execute a read-only SELECT query",
	Long: `Query validates and executes a SELECT (or WITH) statement.

Statements carrying write or DDL intent are rejected before reaching the
database; the rejection names the rule that was violated. No limit is
injected: a query without its own LIMIT clause may return the full
result.

Example:
  glance query "SELECT name, score FROM users WHERE score > 2 LIMIT 10"`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	q, err := sqlread.ValidateQuery(args[0])
	if err != nil {
		return err
	}

	result, err := engine.ExecuteSelect(cmd.Context(), q)
	if err != nil {
		return fmt.Errorf("execute query: %w", err)
	}

	if flagJSON {
		return printJSON(result)
	}
	return renderResultSet(result)
}
