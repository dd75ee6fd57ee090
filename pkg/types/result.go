package types

// ResultSet is the canonical response envelope for a query: column names
// in tuple order, rows in engine order, and Count == len(Rows). Count is
// derived from the materialized rows, never from a separate COUNT query,
// so it cannot disagree with what the caller receives.
type ResultSet struct {
	Columns []string  `json:"columns"`
	Rows    [][]Value `json:"rows"`
	Count   int       `json:"count"`
}

// RowPage is a ResultSet for a paginated table read, echoing the
// effective limit and offset so the caller can compare them with the
// request.
type RowPage struct {
	ResultSet
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ColumnInfo describes one column of a table, in the shape reported by
// PRAGMA table_info.
type ColumnInfo struct {
	CID          int     `json:"cid"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	NotNull      bool    `json:"notnull"`
	DefaultValue *string `json:"default_value"`
	PrimaryKey   bool    `json:"pk"`
}

// TableInfo is the structured column metadata for one table, columns in
// catalog-reported order and ColumnCount == len(Columns).
type TableInfo struct {
	TableName   string       `json:"table_name"`
	Columns     []ColumnInfo `json:"columns"`
	ColumnCount int          `json:"column_count"`
}
