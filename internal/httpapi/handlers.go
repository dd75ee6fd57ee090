package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mesh-intelligence/glance/internal/sqlread"
	"github.com/mesh-intelligence/glance/pkg/types"
)

// tablesResponse is the list_tables success shape.
type tablesResponse struct {
	Tables []string `json:"tables"`
	Count  int      `json:"count"`
}

// queryRequest is the execute_select request body.
type queryRequest struct {
	Query string `json:"query"`
}

func (s *Server) handleListTables(w http.ResponseWriter, r *http.Request) {
	names, err := s.engine.ListTables(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tablesResponse{Tables: names, Count: len(names)})
}

func (s *Server) handleReadRows(w http.ResponseWriter, r *http.Request) {
	table, err := sqlread.SanitizeTableName(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	page, err := pageFromQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.engine.ReadRows(r.Context(), table, page)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleTableInfo(w http.ResponseWriter, r *http.Request) {
	table, err := sqlread.SanitizeTableName(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	info, err := s.engine.TableInfo(r.Context(), table)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, fmt.Errorf("decoding request body: %w", types.ErrNotReadQuery))
		return
	}

	q, err := sqlread.ValidateQuery(req.Query)
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.engine.ExecuteSelect(r.Context(), q)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// pageFromQuery builds the page from the limit/offset query parameters.
// Omitted parameters take the defaults; a non-integer or out-of-range
// value is rejected, never coerced.
func pageFromQuery(r *http.Request) (types.Page, error) {
	page := types.DefaultPage()

	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return types.Page{}, fmt.Errorf("limit %q is not an integer: %w", raw, types.ErrLimitOutOfRange)
		}
		page.Limit = n
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return types.Page{}, fmt.Errorf("offset %q is not an integer: %w", raw, types.ErrOffsetOutOfRange)
		}
		page.Offset = n
	}
	return page, nil
}
