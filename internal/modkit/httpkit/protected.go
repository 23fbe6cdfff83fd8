package httpkit

import (
	"roster/internal/platform/net/middleware"
)

// Protected groups routes under bearer auth
func Protected(r Router, p middleware.AuthPort, fn func(Router)) {
	r.Group(func(gr Router) {
		gr.Use(Auth(p))
		fn(gr)
	})
}

// ProtectedRole groups routes under bearer auth plus a role gate
func ProtectedRole(r Router, p middleware.AuthPort, roles []string, fn func(Router)) {
	r.Group(func(gr Router) {
		gr.Use(Auth(p), RequireRole(roles...))
		fn(gr)
	})
}
