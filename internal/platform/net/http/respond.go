// Package http provides helpers for writing JSON responses with a consistent envelope
package http

import (
	"encoding/json"
	stdhttp "net/http"

	lumnet "roster/internal/platform/net"
	"roster/internal/platform/outcome"
)

// Envelope is the standard response body for all endpoints
type Envelope struct {
	StatusCode int    `json:"status_code"`
	Status     string `json:"status"`
	Code       string `json:"code,omitempty"`
	Error      string `json:"error,omitempty"`
	RequestID  string `json:"request_id,omitempty"`
	Data       any    `json:"data,omitempty"`
}

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONStatus writes only a status with an empty object body
func JSONStatus(w stdhttp.ResponseWriter, status int) {
	JSON(w, status, map[string]any{})
}

// outcomeStatus is the one place an outcome kind maps to an HTTP status.
// Every entity binding renders through this table; per-handler switches are
// exactly what this package exists to eliminate
var outcomeStatus = map[outcome.Status]int{
	outcome.StatusSuccess:      stdhttp.StatusOK,
	outcome.StatusCreated:      stdhttp.StatusCreated,
	outcome.StatusDeleted:      stdhttp.StatusNoContent,
	outcome.StatusNotFound:     stdhttp.StatusNotFound,
	outcome.StatusInvalidInput: stdhttp.StatusBadRequest,
	outcome.StatusUnauthorized: stdhttp.StatusUnauthorized,
	outcome.StatusForbidden:    stdhttp.StatusForbidden,
	outcome.StatusConflict:     stdhttp.StatusConflict,
	outcome.StatusError:        stdhttp.StatusInternalServerError,
}

// StatusCodeOf returns the HTTP status for an outcome kind, defaulting to 500
func StatusCodeOf(s outcome.Status) int {
	if code, ok := outcomeStatus[s]; ok {
		return code
	}
	return stdhttp.StatusInternalServerError
}

// Outcome renders a service outcome as JSON. Deleted and Forbidden write no
// body; the success family writes the payload; everything else writes a
// structured error envelope with the outcome's status name and message
func Outcome[T any](w stdhttp.ResponseWriter, r *stdhttp.Request, res outcome.Result[T]) {
	status := StatusCodeOf(res.Status())

	switch res.Status() {
	case outcome.StatusDeleted, outcome.StatusForbidden:
		w.WriteHeader(status)
		return
	}

	reqID := lumnet.RequestID(r.Context())
	if data, ok := res.Data(); ok {
		JSON(w, status, Envelope{
			StatusCode: status,
			Status:     stdhttp.StatusText(status),
			RequestID:  reqID,
			Data:       data,
		})
		return
	}

	JSON(w, status, Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		Code:       res.Status().String(),
		Error:      res.Message(),
		RequestID:  reqID,
	})
}

// RespondError routes a platform error through the same outcome table so
// middleware failures and handler failures share one rendering path
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	Outcome(w, r, outcome.FromError[struct{}](err))
}

// RespondOK writes a 200 envelope with data
func RespondOK(w stdhttp.ResponseWriter, r *stdhttp.Request, data any) {
	Outcome(w, r, outcome.OK(data))
}

// RespondCreated writes a 201 envelope with data
func RespondCreated(w stdhttp.ResponseWriter, r *stdhttp.Request, data any) {
	Outcome(w, r, outcome.Created(data))
}

// RespondNoContent writes a 204 with no body
func RespondNoContent(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
	w.WriteHeader(stdhttp.StatusNoContent)
}

// WriteError is a plain (non-envelope aware) error writer for code that only
// has a writer and an error, e.g. auth middleware wiring
func WriteError(w stdhttp.ResponseWriter, status int, body any) {
	JSON(w, status, body)
}
