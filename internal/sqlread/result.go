package sqlread

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mesh-intelligence/glance/pkg/types"
)

// shapeResultSet materializes a cursor into the canonical envelope.
// Count is derived from the rows actually scanned. Row order is whatever
// the engine returned.
func shapeResultSet(rows *sql.Rows) (*types.ResultSet, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading column names: %w", err)
	}
	if cols == nil {
		cols = []string{}
	}

	rs := &types.ResultSet{Columns: cols, Rows: [][]types.Value{}}
	for rows.Next() {
		cells := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range cells {
			ptrs[i] = &cells[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		row := make([]types.Value, len(cols))
		for i, cell := range cells {
			row[i] = toValue(cell)
		}
		rs.Rows = append(rs.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rs.Count = len(rs.Rows)
	return rs, nil
}

// toValue maps a driver scalar onto the five-case variant. Blobs are
// copied because the driver may reuse its buffer between rows.
func toValue(cell any) types.Value {
	switch v := cell.(type) {
	case nil:
		return types.Null()
	case int64:
		return types.Int(v)
	case float64:
		return types.Float(v)
	case string:
		return types.Text(v)
	case []byte:
		return types.Blob(append([]byte(nil), v...))
	case bool:
		if v {
			return types.Int(1)
		}
		return types.Int(0)
	case time.Time:
		return types.Text(v.Format(time.RFC3339Nano))
	default:
		return types.Text(fmt.Sprint(v))
	}
}
