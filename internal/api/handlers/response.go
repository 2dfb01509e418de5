package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel/trace"

	"github.com/adiii0209/Yatraa-sub000/internal/infrastructure/observability"
	apperrors "github.com/adiii0209/Yatraa-sub000/pkg/errors"
)

const maxBodyBytes = 1 << 20

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondWithAppError maps err onto a status code. Only not-found and
// validation messages reach the client; anything else is logged, recorded
// on the request span and reported as a generic 500.
func respondWithAppError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.HTTPStatus(err)
	if appErr, ok := apperrors.As(err); ok && status < http.StatusInternalServerError {
		respondWithError(w, status, appErr.Message)
		return
	}

	observability.RecordError(trace.SpanFromContext(r.Context()), err)
	observability.LoggerFromContext(r.Context()).Error().Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("Request failed")
	respondWithError(w, http.StatusInternalServerError, "internal server error")
}

// pathID parses a positive integer path parameter. Only the canonical form
// is accepted ("01" and "+1" are rejected) so every id has exactly one URL.
func pathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	if raw == "" {
		return 0, apperrors.NewValidationError(fmt.Sprintf("%s is required", name))
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 || strconv.FormatInt(id, 10) != raw {
		return 0, apperrors.NewValidationError(fmt.Sprintf("invalid %s: %s", name, raw))
	}
	return id, nil
}

// cityParam returns the optional city filter verbatim; empty means no filter
func cityParam(r *http.Request) string {
	return r.URL.Query().Get("city")
}

// decodeJSON reads a single JSON object from the request body
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return apperrors.NewValidationError("request body too large")
		}
		return apperrors.NewValidationError("invalid request payload")
	}
	return nil
}
