// Package httpkit provides handler and routing helpers that alias the platform http package
// use these from modules so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "roster/internal/platform/net/http"
	"roster/internal/platform/outcome"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router
)

// Outcome renders a service result through the shared status table
func Outcome[T any](w http.ResponseWriter, r *http.Request, res outcome.Result[T]) {
	phttp.Outcome(w, r, res)
}

// RespondError maps a platform error through the same table
func RespondError(w http.ResponseWriter, r *http.Request, err error) {
	phttp.RespondError(w, r, err)
}

// Handle adapts a body-less outcome handler if you prefer the explicit form
func Handle[T any](fn func(*http.Request) outcome.Result[T]) Handler {
	return phttp.OutcomeHandler(fn)
}
