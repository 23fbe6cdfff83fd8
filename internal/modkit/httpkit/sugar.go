package httpkit

import (
	"net/http"

	phttp "roster/internal/platform/net/http"
	"roster/internal/platform/outcome"
)

// Get mounts a body-less outcome handler under GET
func Get[T any](r Router, path string, h func(*http.Request) outcome.Result[T]) {
	r.Get(path, phttp.OutcomeHandler(h))
}

// Delete mounts a body-less outcome handler under DELETE
func Delete[T any](r Router, path string, h func(*http.Request) outcome.Result[T]) {
	r.Delete(path, phttp.OutcomeHandler(h))
}

// Post mounts a JSON-body outcome handler under POST
func Post[In, T any](r Router, path string, h func(*http.Request, In) outcome.Result[T]) {
	r.Post(path, phttp.OutcomeJSONHandler(h))
}

// Put mounts a JSON-body outcome handler under PUT
func Put[In, T any](r Router, path string, h func(*http.Request, In) outcome.Result[T]) {
	r.Put(path, phttp.OutcomeJSONHandler(h))
}

// Patch mounts a JSON-body outcome handler under PATCH
func Patch[In, T any](r Router, path string, h func(*http.Request, In) outcome.Result[T]) {
	r.Patch(path, phttp.OutcomeJSONHandler(h))
}
