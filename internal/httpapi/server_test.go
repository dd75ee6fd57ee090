package httpapi

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/glance/internal/sqlread"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE users (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL
		);
		INSERT INTO users (id, name) VALUES (1, 'ada');
		INSERT INTO users (id, name) VALUES (2, 'bob');
	`)
	require.NoError(t, err)

	return NewServer(sqlread.NewEngine(path, nil), nil)
}

// do runs one request through the router and decodes the JSON body.
func do(t *testing.T, s *Server, method, target, body string) (int, map[string]any) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec.Code, decoded
}

func errKind(t *testing.T, body map[string]any) string {
	t.Helper()
	detail, ok := body["error"].(map[string]any)
	require.True(t, ok, "expected error body, got %v", body)
	kind, _ := detail["kind"].(string)
	return kind
}

func TestServer_ListTables(t *testing.T) {
	s := newTestServer(t)

	code, body := do(t, s, http.MethodGet, "/tables", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{"users"}, body["tables"])
	assert.Equal(t, float64(1), body["count"])
}

func TestServer_ReadRows(t *testing.T) {
	s := newTestServer(t)

	t.Run("success with echoed bounds", func(t *testing.T) {
		code, body := do(t, s, http.MethodGet, "/tables/users/rows?limit=10", "")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, float64(2), body["count"])
		assert.Equal(t, float64(10), body["limit"])
		assert.Equal(t, float64(0), body["offset"])
		assert.Equal(t, []any{"id", "name"}, body["columns"])
	})

	t.Run("defaults when bounds omitted", func(t *testing.T) {
		code, body := do(t, s, http.MethodGet, "/tables/users/rows", "")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, float64(100), body["limit"])
		assert.Equal(t, float64(0), body["offset"])
	})

	t.Run("limit out of range", func(t *testing.T) {
		code, body := do(t, s, http.MethodGet, "/tables/users/rows?limit=10001", "")
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "bounds", errKind(t, body))
	})

	t.Run("non-integer limit", func(t *testing.T) {
		code, body := do(t, s, http.MethodGet, "/tables/users/rows?limit=ten", "")
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "bounds", errKind(t, body))
	})

	t.Run("unknown table", func(t *testing.T) {
		code, body := do(t, s, http.MethodGet, "/tables/ghosts/rows", "")
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "not_found", errKind(t, body))
	})

	t.Run("hostile table name", func(t *testing.T) {
		code, body := do(t, s, http.MethodGet, "/tables/users;drop/rows", "")
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "validation", errKind(t, body))
	})
}

func TestServer_TableInfo(t *testing.T) {
	s := newTestServer(t)

	code, body := do(t, s, http.MethodGet, "/tables/users/info", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "users", body["table_name"])
	assert.Equal(t, float64(2), body["column_count"])
	cols, ok := body["columns"].([]any)
	require.True(t, ok)
	assert.Len(t, cols, 2)
}

func TestServer_Query(t *testing.T) {
	s := newTestServer(t)

	t.Run("select", func(t *testing.T) {
		code, body := do(t, s, http.MethodPost, "/query",
			`{"query": "SELECT name FROM users ORDER BY id"}`)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, float64(2), body["count"])
	})

	t.Run("write intent rejected naming the keyword", func(t *testing.T) {
		code, body := do(t, s, http.MethodPost, "/query",
			`{"query": "SELECT 1; DROP TABLE users"}`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "validation", errKind(t, body))
		detail := body["error"].(map[string]any)
		assert.Contains(t, detail["message"], "DROP")
	})

	t.Run("non-select rejected", func(t *testing.T) {
		code, body := do(t, s, http.MethodPost, "/query",
			`{"query": "UPDATE users SET name = 'x'"}`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "validation", errKind(t, body))
	})

	t.Run("malformed body", func(t *testing.T) {
		code, body := do(t, s, http.MethodPost, "/query", `{"query": `)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "validation", errKind(t, body))
	})

	t.Run("engine diagnostic on validated query", func(t *testing.T) {
		code, body := do(t, s, http.MethodPost, "/query",
			`{"query": "SELECT * FROM no_such_table"}`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "engine", errKind(t, body))
	})
}
