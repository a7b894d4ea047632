package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MariuszKam/Organizer/internal/adapters/http/dto"
	"github.com/MariuszKam/Organizer/internal/domain"
)

// errInvalidBody is reported when a request body cannot be decoded as JSON.
var errInvalidBody = fmt.Errorf("invalid JSON body: %w", domain.ErrInvalidFormat)

// pathID extracts a path parameter from the chi URL params. The raw value is
// passed to the use case untouched; id format validation lives there.
func pathID(r *http.Request, param string) string {
	return chi.URLParam(r, param)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false. Field-level validation
// is not done here; the use cases own it.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, errInvalidBody)
		return false
	}
	return true
}
