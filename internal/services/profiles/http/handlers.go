// Package http provides http transport for profiles
package http

import (
	stdhttp "net/http"

	"roster/internal/modkit/httpkit"
	"roster/internal/modkit/repokit"
	"roster/internal/platform/net/http/bind"
	"roster/internal/platform/outcome"
	"roster/internal/services/profiles/domain"
	svc "roster/internal/services/profiles/service"
)

// Register mounts the router. Reads are open to any authenticated caller;
// writes are grouped behind the editor/admin gate
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{id}", h.get)
	r.Group(func(w httpkit.Router) {
		w.Use(httpkit.RequireRole("editor", "admin"))
		httpkit.Post[domain.CreateProfileInput](w, "/", h.create)
		httpkit.Put[domain.UpdateProfileInput](w, "/{id}", h.update)
		httpkit.Delete(w, "/{id}", h.remove)
	})
}

type handlers struct{ svc svc.Service }

func (h *handlers) list(r *stdhttp.Request) outcome.Result[repokit.PagedResult[domain.Profile]] {
	spec, err := httpkit.ListSpec(r)
	if err != nil {
		return outcome.FromError[repokit.PagedResult[domain.Profile]](err)
	}
	return h.svc.List(r.Context(), domain.ListQuery{
		Name: bind.QueryStringPtr(r, "name"),
		Spec: spec,
	})
}

func (h *handlers) get(r *stdhttp.Request) outcome.Result[domain.Profile] {
	id, err := httpkit.PathInt64(r, "id")
	if err != nil {
		return outcome.FromError[domain.Profile](err)
	}
	return h.svc.Get(r.Context(), id)
}

func (h *handlers) create(r *stdhttp.Request, in domain.CreateProfileInput) outcome.Result[domain.Profile] {
	return h.svc.Create(r.Context(), in)
}

func (h *handlers) update(r *stdhttp.Request, in domain.UpdateProfileInput) outcome.Result[domain.Profile] {
	id, err := httpkit.PathInt64(r, "id")
	if err != nil {
		return outcome.FromError[domain.Profile](err)
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
