package http

import (
	"net/http"

	"roster/internal/platform/outcome"
)

// Get mounts a body-less outcome handler for GET
func Get[T any](r Router, path string, h func(*http.Request) outcome.Result[T]) {
	r.Get(path, OutcomeHandler(h))
}

// Delete mounts a body-less outcome handler for DELETE
func Delete[T any](r Router, path string, h func(*http.Request) outcome.Result[T]) {
	r.Delete(path, OutcomeHandler(h))
}

// Post mounts a JSON-body outcome handler for POST
func Post[In, T any](r Router, path string, h func(*http.Request, In) outcome.Result[T]) {
	r.Post(path, OutcomeJSONHandler(h))
}

// Put mounts a JSON-body outcome handler for PUT
func Put[In, T any](r Router, path string, h func(*http.Request, In) outcome.Result[T]) {
	r.Put(path, OutcomeJSONHandler(h))
}

// Patch mounts a JSON-body outcome handler for PATCH
func Patch[In, T any](r Router, path string, h func(*http.Request, In) outcome.Result[T]) {
	r.Patch(path, OutcomeJSONHandler(h))
}
