package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/social-api/internal/api/shared"
)

// ErrInvalidID is returned when a path parameter is not an integer.
var ErrInvalidID = errors.New("invalid ID")

// parsePathID extracts the integer path parameter name from the chi route.
func parsePathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, ErrInvalidID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}

// handlePathID parses the named path parameter and writes a 400 when it is
// missing or not an integer. The boolean reports whether the caller may proceed.
func handlePathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := parsePathID(r, name)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid ID", err)
		return 0, false
	}
	return id, true
}

// decodeAndValidate decodes the JSON body into v and runs struct validation.
// Writes a 400 and returns false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}, validate bool) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}
	if !validate {
		return true
	}
	if err := shared.ValidateRequest(v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return false
	}
	return true
}
