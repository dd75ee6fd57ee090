package sqlread

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/glance/pkg/types"
)

// newFixtureDB creates a scratch database with two tables and two user rows.
func newFixtureDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE users (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			score REAL DEFAULT 0.5,
			avatar BLOB
		);
		CREATE TABLE orders (
			id INTEGER PRIMARY KEY,
			user_id INTEGER NOT NULL
		);
		INSERT INTO users (id, name, score, avatar) VALUES (1, 'ada', 3.5, X'DEAD');
		INSERT INTO users (id, name, score, avatar) VALUES (2, 'bob', NULL, NULL);
	`)
	require.NoError(t, err)
	return path
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(newFixtureDB(t), nil)
}

func mustTable(t *testing.T, name string) TableName {
	t.Helper()
	tn, err := SanitizeTableName(name)
	require.NoError(t, err)
	return tn
}

func TestEngine_ListTables(t *testing.T) {
	e := newTestEngine(t)

	names, err := e.ListTables(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"orders", "users"}, names)
}

func TestEngine_ReadRows(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	t.Run("two rows under a larger limit", func(t *testing.T) {
		got, err := e.ReadRows(ctx, mustTable(t, "users"), types.Page{Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, []string{"id", "name", "score", "avatar"}, got.Columns)
		assert.Equal(t, 2, got.Count)
		assert.Len(t, got.Rows, 2)
		// Echoed bounds equal the requested values.
		assert.Equal(t, 10, got.Limit)
		assert.Equal(t, 0, got.Offset)
	})

	t.Run("offset pagination", func(t *testing.T) {
		got, err := e.ReadRows(ctx, mustTable(t, "users"), types.Page{Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, 1, got.Count)
		assert.Equal(t, "bob", got.Rows[0][1].Text())
		assert.Equal(t, 1, got.Offset)
	})

	t.Run("offset beyond the table is empty not an error", func(t *testing.T) {
		got, err := e.ReadRows(ctx, mustTable(t, "users"), types.Page{Limit: 5, Offset: 50})
		require.NoError(t, err)
		assert.Equal(t, 0, got.Count)
		assert.Empty(t, got.Rows)
	})

	t.Run("default page", func(t *testing.T) {
		got, err := e.ReadRows(ctx, mustTable(t, "users"), types.DefaultPage())
		require.NoError(t, err)
		assert.Equal(t, types.DefaultLimit, got.Limit)
		assert.Equal(t, 0, got.Offset)
	})

	t.Run("scalar kinds", func(t *testing.T) {
		got, err := e.ReadRows(ctx, mustTable(t, "users"), types.Page{Limit: 10})
		require.NoError(t, err)

		ada := got.Rows[0]
		assert.Equal(t, types.KindInt, ada[0].Kind())
		assert.Equal(t, types.KindText, ada[1].Kind())
		assert.Equal(t, types.KindFloat, ada[2].Kind())
		assert.Equal(t, types.KindBlob, ada[3].Kind())
		assert.Equal(t, []byte{0xDE, 0xAD}, ada[3].Blob())

		bob := got.Rows[1]
		assert.True(t, bob[2].IsNull())
		assert.True(t, bob[3].IsNull())
	})

	t.Run("bounds rejected not clamped", func(t *testing.T) {
		_, err := e.ReadRows(ctx, mustTable(t, "users"), types.Page{Limit: 0})
		assert.ErrorIs(t, err, types.ErrLimitOutOfRange)

		_, err = e.ReadRows(ctx, mustTable(t, "users"), types.Page{Limit: 10001})
		assert.ErrorIs(t, err, types.ErrLimitOutOfRange)

		_, err = e.ReadRows(ctx, mustTable(t, "users"), types.Page{Limit: 10, Offset: -1})
		assert.ErrorIs(t, err, types.ErrOffsetOutOfRange)
	})

	t.Run("missing table", func(t *testing.T) {
		_, err := e.ReadRows(ctx, mustTable(t, "ghosts"), types.Page{Limit: 10})
		require.ErrorIs(t, err, types.ErrTableNotFound)
		assert.Contains(t, err.Error(), "ghosts")
	})
}

func TestEngine_ExecuteSelect(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	t.Run("projection", func(t *testing.T) {
		q, err := ValidateQuery("SELECT name FROM users ORDER BY id")
		require.NoError(t, err)

		got, err := e.ExecuteSelect(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, []string{"name"}, got.Columns)
		assert.Equal(t, 2, got.Count)
		assert.Equal(t, "ada", got.Rows[0][0].Text())
	})

	t.Run("expression kinds", func(t *testing.T) {
		q, err := ValidateQuery("SELECT 1 AS i, 1.5 AS f, 'x' AS s, X'00FF' AS b, NULL AS n")
		require.NoError(t, err)

		got, err := e.ExecuteSelect(ctx, q)
		require.NoError(t, err)
		require.Equal(t, 1, got.Count)
		row := got.Rows[0]
		assert.Equal(t, types.KindInt, row[0].Kind())
		assert.Equal(t, types.KindFloat, row[1].Kind())
		assert.Equal(t, types.KindText, row[2].Kind())
		assert.Equal(t, types.KindBlob, row[3].Kind())
		assert.Equal(t, types.KindNull, row[4].Kind())
	})

	t.Run("CTE", func(t *testing.T) {
		q, err := ValidateQuery("WITH ids AS (SELECT id FROM users) SELECT count(*) AS n FROM ids")
		require.NoError(t, err)

		got, err := e.ExecuteSelect(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.Rows[0][0].Int())
	})

	t.Run("engine diagnostic passes through", func(t *testing.T) {
		// Clears the gate but fails in the engine.
		q, err := ValidateQuery("SELECT * FROM no_such_table")
		require.NoError(t, err)

		_, err = e.ExecuteSelect(ctx, q)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no_such_table")
	})
}

func TestEngine_TableInfo(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	t.Run("column metadata in catalog order", func(t *testing.T) {
		got, err := e.TableInfo(ctx, mustTable(t, "users"))
		require.NoError(t, err)

		assert.Equal(t, "users", got.TableName)
		assert.Equal(t, 4, got.ColumnCount)
		require.Len(t, got.Columns, got.ColumnCount)

		id := got.Columns[0]
		assert.Equal(t, 0, id.CID)
		assert.Equal(t, "id", id.Name)
		assert.Equal(t, "INTEGER", id.Type)
		assert.True(t, id.PrimaryKey)

		name := got.Columns[1]
		assert.Equal(t, "name", name.Name)
		assert.True(t, name.NotNull)
		assert.False(t, name.PrimaryKey)

		score := got.Columns[2]
		require.NotNil(t, score.DefaultValue)
		assert.Equal(t, "0.5", *score.DefaultValue)

		avatar := got.Columns[3]
		assert.False(t, avatar.NotNull)
		assert.Nil(t, avatar.DefaultValue)
	})

	t.Run("missing table", func(t *testing.T) {
		_, err := e.TableInfo(ctx, mustTable(t, "ghosts"))
		assert.ErrorIs(t, err, types.ErrTableNotFound)
	})
}

func TestEngine_MissingDatabaseFile(t *testing.T) {
	// The resolver normally rejects a missing path before an Engine is
	// built; if one slips through, the first query reports the failure
	// instead of crashing.
	e := NewEngine(filepath.Join(t.TempDir(), "absent.db"), nil)
	_, err := e.ListTables(context.Background())
	assert.Error(t, err)
}
