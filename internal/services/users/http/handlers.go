// Package http provides http transport for user accounts
package http

import (
	stdhttp "net/http"

	"roster/internal/modkit/httpkit"
	"roster/internal/modkit/repokit"
	"roster/internal/platform/net/http/bind"
	"roster/internal/platform/outcome"
	"roster/internal/services/users/domain"
	svc "roster/internal/services/users/service"
)

// Register mounts the router. The whole surface is admin-gated by the
// module middleware; accounts are created through auth registration
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{id}", h.get)
	httpkit.Put[domain.UpdateUserInput](r, "/{id}", h.update)
	httpkit.Delete(r, "/{id}", h.remove)
}

type handlers struct{ svc svc.Service }

func (h *handlers) list(r *stdhttp.Request) outcome.Result[repokit.PagedResult[domain.User]] {
	spec, err := httpkit.ListSpec(r)
	if err != nil {
		return outcome.FromError[repokit.PagedResult[domain.User]](err)
	}
	return h.svc.List(r.Context(), domain.ListQuery{
		Email: bind.QueryStringPtr(r, "email"),
		Role:  bind.QueryStringPtr(r, "role"),
		Spec:  spec,
	})
}

func (h *handlers) get(r *stdhttp.Request) outcome.Result[domain.User] {
	id, err := httpkit.PathInt64(r, "id")
	if err != nil {
		return outcome.FromError[domain.User](err)
	}
	return h.svc.Get(r.Context(), id)
}

func (h *handlers) update(r *stdhttp.Request, in domain.UpdateUserInput) outcome.Result[domain.User] {
	id, err := httpkit.PathInt64(r, "id")
	if err != nil {
		return outcome.FromError[domain.User](err)
	}
	return h.svc.Update(r.Context(), id, in)
}

func (h *handlers) remove(r *stdhttp.Request) outcome.Result[struct{}] {
	id, err := httpkit.PathInt64(r, "id")
	if err != nil {
		return outcome.FromError[struct{}](err)
	}
	return h.svc.Delete(r.Context(), id)
}
