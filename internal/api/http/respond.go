package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"medrent-backend/internal/domain"
	"medrent-backend/internal/logger"
	"medrent-backend/internal/security"
	"medrent-backend/internal/service"

	"github.com/go-playground/validator/v10"
)

type errorResponse struct {
	Error string `json:"error"`
}

// listResponse is the envelope for paginated collections.
type listResponse struct {
	Items    any   `json:"items"`
	Total    int64 `json:"total"`
	Page     int32 `json:"page"`
	PageSize int32 `json:"page_size"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

// writeError maps service and domain errors onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	var persistErr *service.PersistenceError

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &validationErrs),
		errors.Is(err, errBadRequest),
		errors.Is(err, service.ErrSelfRental),
		errors.Is(err, service.ErrMissingLocation),
		errors.Is(err, service.ErrInvalidDateRange):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken),
		errors.Is(err, security.ErrWrongTokenType):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrNotFound), errors.Is(err, sql.ErrNoRows):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, domain.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.As(err, &persistErr):
		status = http.StatusInternalServerError
	}

	if status == http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
		// Do not leak internals to the client.
		writeJSON(w, status, errorResponse{Error: "internal server error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed JSON body", errBadRequest)
	}
	return nil
}

// errBadRequest marks malformed request input (bad JSON, bad path params).
var errBadRequest = errors.New("bad request")

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// pagination reads page/page_size query params with sane bounds.
func pagination(r *http.Request) (page, pageSize int32) {
	page = 1
	pageSize = defaultPageSize
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = int32(v)
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil && v > 0 {
		pageSize = int32(v)
		if pageSize > maxPageSize {
			pageSize = maxPageSize
		}
	}
	return page, pageSize
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := muxVar(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s", errBadRequest, name)
	}
	return id, nil
}
