package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/glance/pkg/types"
)

// errorBody is the structured-error response shape.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// classify maps the error taxonomy onto a status code and kind label.
// Anything unrecognized is an engine diagnostic on an already-validated
// query.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, types.ErrNoDatabasePath),
		errors.Is(err, types.ErrDatabaseNotFound),
		errors.Is(err, types.ErrDatabaseNotFile),
		errors.Is(err, types.ErrDatabaseNotReadable):
		return http.StatusServiceUnavailable, "configuration"
	case errors.Is(err, types.ErrTableNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, types.ErrInvalidTableName),
		errors.Is(err, types.ErrNotReadQuery),
		errors.Is(err, types.ErrProhibitedKeyword):
		return http.StatusBadRequest, "validation"
	case errors.Is(err, types.ErrLimitOutOfRange),
		errors.Is(err, types.ErrOffsetOutOfRange):
		return http.StatusBadRequest, "bounds"
	default:
		return http.StatusBadRequest, "engine"
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status, kind := classify(err)
	s.logger.Debug("request rejected",
		zap.String("kind", kind),
		zap.Error(err))
	writeJSON(w, status, errorBody{Error: errorDetail{Kind: kind, Message: err.Error()}})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
