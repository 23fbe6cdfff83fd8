// Package module wires user accounts into the API using modkit
package module

import (
	"net/http"

	modkit "roster/internal/modkit"
	"roster/internal/modkit/httpkit"

	uhttp "roster/internal/services/users/http"
	urepo "roster/internal/services/users/repo"
	usvc "roster/internal/services/users/service"
)

// Module implements the users API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc usvc.Service
}

// Ports declares the injected collaborators and exposes the service port
type Ports struct {
	Hasher usvc.Hasher
}

// PortsOut exposes the service port for cross-module use
type PortsOut struct {
	Service usvc.Service
}

// New constructs the users module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("users"),
		modkit.WithPrefix("/users"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Hasher == nil {
		panic("users module requires Hasher port (adapters/secrets)")
	}

	svc := usvc.New(deps.PG, urepo.NewPG(), injected.Hasher)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = PortsOut{Service: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		uhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return m.name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.prefix }

// Ports returns the module port set
func (m *Module) Ports() any { return m.ports }
