// Package http provides http transport for employees
package http

import (
	stdhttp "net/http"

	"roster/internal/modkit/httpkit"
	"roster/internal/modkit/repokit"
	"roster/internal/platform/net/http/bind"
	"roster/internal/platform/outcome"
	"roster/internal/services/employees/domain"
	svc "roster/internal/services/employees/service"
)

// Register mounts the router. Reads are open to any authenticated caller;
// writes are grouped behind the editor/admin gate
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{id}", h.get)
	r.Group(func(w httpkit.Router) {
		w.Use(httpkit.RequireRole("editor", "admin"))
		httpkit.Post[domain.CreateEmployeeInput](w, "/", h.create)
		httpkit.Put[domain.UpdateEmployeeInput](w, "/{id}", h.update)
		httpkit.Delete(w, "/{id}", h.remove)
	})
}

type handlers struct{ svc svc.Service }

func (h *handlers) list(r *stdhttp.Request) outcome.Result[repokit.PagedResult[domain.Employee]] {
	fail := outcome.FromError[repokit.PagedResult[domain.Employee]]

	spec, err := httpkit.ListSpec(r)
	if err != nil {
		return fail(err)
	}
	minSalary, err := bind.QueryIntPtr(r, "minSalary")
	if err != nil {
		return fail(err)
	}
	maxSalary, err := bind.QueryIntPtr(r, "maxSalary")
	if err != nil {
		return fail(err)
	}
	profileID, err := bind.QueryInt64Ptr(r, "profileId")
	if err != nil {
		return fail(err)
	}

	return h.svc.List(r.Context(), domain.ListQuery{
		FullName:  bind.QueryStringPtr(r, "fullName"),
		MinSalary: minSalary,
		MaxSalary: maxSalary,
		ProfileID: profileID,
		Spec:      spec,
	})
}

func (h *handlers) get(r *stdhttp.Request) outcome.Result[domain.Employee] {
	id, err := httpkit.PathInt64(r, "id")
	if err != nil {
		return outcome.FromError[domain.Employee](err)
	}
	return h.svc.Get(r.Context(), id)
}

func (h *handlers) create(r *stdhttp.Request, in domain.CreateEmployeeInput) outcome.Result[domain.Employee] {
	return h.svc.Create(r.Context(), in)
}

func (h *handlers) update(r *stdhttp.Request, in domain.UpdateEmployeeInput) outcome.Result[domain.Employee] {
	id, err := httpkit.PathInt64(r, "id")
	if err != nil {
		return outcome.FromError[domain.Employee](err)
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
