package http

import (
	"net/http"

	"roster/internal/platform/net/http/bind"
	"roster/internal/platform/outcome"
)

// OutcomeHandler adapts a body-less outcome handler to a platform Handler
func OutcomeHandler[T any](fn func(*http.Request) outcome.Result[T]) Handler {
	return func(w http.ResponseWriter, r *http.Request) {
		Outcome(w, r, fn(r))
	}
}

// OutcomeJSONHandler parses and validates a JSON body, then calls fn.
// Bind failures render through the same outcome table as service failures
func OutcomeJSONHandler[In, T any](fn func(*http.Request, In) outcome.Result[T]) Handler {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := bind.ParseJSON[In](r)
		if err != nil {
			RespondError(w, r, err)
			return
		}
		Outcome(w, r, fn(r, in))
	}
}
