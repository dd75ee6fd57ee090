// Shared output helpers for glance CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/mesh-intelligence/glance/pkg/types"
)

// printJSON renders v as indented JSON on stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// renderResultSet prints a result set as an aligned text table followed
// by the row count.
func renderResultSet(rs *types.ResultSet) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	for i, col := range rs.Columns {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, col)
	}
	fmt.Fprintln(w)

	for _, row := range rs.Rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, cell.String())
		}
		fmt.Fprintln(w)
	}

	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("(%d rows)\n", rs.Count)
	return nil
}

// renderTableInfo prints column metadata as an aligned text table.
func renderTableInfo(info *types.TableInfo) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "cid\tname\ttype\tnotnull\tdefault\tpk")

	for _, col := range info.Columns {
		def := ""
		if col.DefaultValue != nil {
			def = *col.DefaultValue
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%t\t%s\t%t\n",
			col.CID, col.Name, col.Type, col.NotNull, def, col.PrimaryKey)
	}

	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("(%d columns)\n", info.ColumnCount)
	return nil
}
