package types

import "errors"

// Database location errors. All four identify a configuration problem,
// not a caller mistake: the process cannot serve any request until the
// path is fixed.
var (
	ErrNoDatabasePath      = errors.New("no database path configured")
	ErrDatabaseNotFound    = errors.New("database file not found")
	ErrDatabaseNotFile     = errors.New("database path is not a regular file")
	ErrDatabaseNotReadable = errors.New("database file is not readable")
)

// Gatekeeping errors.
var (
	ErrInvalidTableName  = errors.New("invalid table name")
	ErrNotReadQuery      = errors.New("not a read query")
	ErrProhibitedKeyword = errors.New("prohibited keyword")
	ErrTableNotFound     = errors.New("table not found")
)

// Pagination errors.
var (
	ErrLimitOutOfRange  = errors.New("limit out of range")
	ErrOffsetOutOfRange = errors.New("offset out of range")
)
