// Package http provides http transport for auth
package http

import (
	stdhttp "net/http"

	"roster/internal/modkit/httpkit"
	"roster/internal/platform/outcome"
	"roster/internal/services/auth/domain"
	svc "roster/internal/services/auth/service"
	udom "roster/internal/services/users/domain"
)

// Register mounts the router. Both routes are public
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Post[domain.RegisterInput](r, "/register", h.register)
	httpkit.Post[domain.LoginInput](r, "/login", h.login)
}

type handlers struct{ svc svc.Service }

func (h *handlers) register(r *stdhttp.Request, in domain.RegisterInput) outcome.Result[udom.User] {
	return h.svc.Register(r.Context(), in)
}

func (h *handlers) login(r *stdhttp.Request, in domain.LoginInput) outcome.Result[domain.Session] {
	return h.svc.Login(r.Context(), in)
}
