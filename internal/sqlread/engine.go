// Package sqlread implements the read-only SQL gatekeeper: identifier
// sanitizing, query validation, and an execution pipeline that runs
// validated reads against a SQLite database file.
package sqlread

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/glance/pkg/types"
)

// Engine executes the four read operations against one database file.
// Every operation opens its own read-only handle and closes it before
// returning; no handle outlives a single call, so a rejected or failed
// request never leaks an open file. The engine itself holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	path   string
	logger *zap.Logger
}

// NewEngine creates an engine over the already-resolved database path
// (see internal/paths). A nil logger is replaced with a no-op logger.
func NewEngine(path string, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{path: path, logger: logger}
}

// Path returns the resolved database path the engine operates on.
func (e *Engine) Path() string { return e.path }

// open acquires a per-request handle with read-only intent carried in the
// DSN, behind the validator as a second line of defense.
func (e *Engine) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite", "file:"+e.path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", e.path, err)
	}
	return db, nil
}

// newRequestID generates a UUID v7 for log correlation.
func newRequestID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// ListTables returns the user-defined table names in the catalog's name
// order (sqlite_master ORDER BY name).
func (e *Engine) ListTables(ctx context.Context) ([]string, error) {
	reqID := newRequestID()

	db, err := e.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning table name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	e.logger.Debug("listed tables",
		zap.String("request_id", reqID),
		zap.Int("count", len(names)))
	return names, nil
}

// ReadRows reads one page from table as SELECT * with the limit and
// offset bound as integer parameters, never interpolated as text. The
// table is checked against the catalog first so a missing table reports
// ErrTableNotFound instead of surfacing the engine's own error text.
func (e *Engine) ReadRows(ctx context.Context, table TableName, page types.Page) (*types.RowPage, error) {
	reqID := newRequestID()

	if err := page.Validate(); err != nil {
		return nil, err
	}

	db, err := e.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := e.checkTableExists(ctx, db, table); err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT * FROM "`+table.String()+`" LIMIT ? OFFSET ?`,
		page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("reading rows from %s: %w", table, err)
	}
	defer rows.Close()

	rs, err := shapeResultSet(rows)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("read rows",
		zap.String("request_id", reqID),
		zap.String("table", table.String()),
		zap.Int("count", rs.Count),
		zap.Int("limit", page.Limit),
		zap.Int("offset", page.Offset))
	return &types.RowPage{ResultSet: *rs, Limit: page.Limit, Offset: page.Offset}, nil
}

// ExecuteSelect runs an already-validated query as-is. No limit is
// injected: the caller's own LIMIT clause, if any, governs row count,
// and its absence may materialize the full result. An engine failure on
// a validated query passes through with the engine's own diagnostic.
func (e *Engine) ExecuteSelect(ctx context.Context, q Query) (*types.ResultSet, error) {
	reqID := newRequestID()

	db, err := e.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, q.String())
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	rs, err := shapeResultSet(rows)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("executed select",
		zap.String("request_id", reqID),
		zap.Int("count", rs.Count))
	return rs, nil
}

// TableInfo returns per-column metadata from PRAGMA table_info, in the
// catalog-reported column order.
func (e *Engine) TableInfo(ctx context.Context, table TableName) (*types.TableInfo, error) {
	reqID := newRequestID()

	db, err := e.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := e.checkTableExists(ctx, db, table); err != nil {
		return nil, err
	}

	// PRAGMA arguments cannot be bound; the identifier has passed the
	// allowlist gate.
	rows, err := db.QueryContext(ctx, `PRAGMA table_info("`+table.String()+`")`)
	if err != nil {
		return nil, fmt.Errorf("reading table info for %s: %w", table, err)
	}
	defer rows.Close()

	info := &types.TableInfo{TableName: table.String(), Columns: []types.ColumnInfo{}}
	for rows.Next() {
		var (
			col     types.ColumnInfo
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&col.CID, &col.Name, &col.Type, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("scanning column info: %w", err)
		}
		col.NotNull = notNull != 0
		col.PrimaryKey = pk != 0
		if dflt.Valid {
			col.DefaultValue = &dflt.String
		}
		info.Columns = append(info.Columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	info.ColumnCount = len(info.Columns)

	e.logger.Debug("read table info",
		zap.String("request_id", reqID),
		zap.String("table", table.String()),
		zap.Int("columns", info.ColumnCount))
	return info, nil
}

// checkTableExists reports ErrTableNotFound if table is absent from
// sqlite_master.
func (e *Engine) checkTableExists(ctx context.Context, db *sql.DB, table TableName) error {
	var name string
	err := db.QueryRowContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?",
		table.String()).Scan(&name)
	if err == sql.ErrNoRows {
		return fmt.Errorf("table %q: %w", table.String(), types.ErrTableNotFound)
	}
	if err != nil {
		return fmt.Errorf("checking table %s: %w", table, err)
	}
	return nil
}
