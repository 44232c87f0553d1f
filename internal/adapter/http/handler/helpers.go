package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/iho/bankview/internal/adapter/http/dto"
	"github.com/iho/bankview/internal/domain"
)

// maxRequestBodyBytes caps the size of a JSON request body.
const maxRequestBodyBytes = 64 << 10

// errTrailingData is returned when a body holds more than one JSON value.
var errTrailingData = errors.New("unexpected data after JSON body")

// decodeJSON decodes a single JSON value from a size-capped request body.
// On failure it writes the error response and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))

	err := dec.Decode(v)
	if err == nil {
		if extra := dec.Decode(&json.RawMessage{}); extra != io.EOF {
			err = errors.Join(errTrailingData, extra)
		}
	}
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large", err.Error())
		return false
	}
	writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
	return false
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	var malformed *domain.MalformedRecordError
	var fetchErr *domain.FetchError

	switch {
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	case errors.As(err, &malformed):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAmountTooLarge):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidDate):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidDisplayName):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorTitle returns the short error label for a status code.
func errorTitle(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "invalid request"
	case http.StatusNotFound:
		return "not found"
	case http.StatusBadGateway:
		return "upstream unavailable"
	default:
		return "internal error"
	}
}

// writeDomainError maps err and writes it.
func writeDomainError(w http.ResponseWriter, err error) {
	status := mapDomainError(err)
	writeError(w, status, errorTitle(status), err.Error())
}
