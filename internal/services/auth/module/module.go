// Package module wires auth into the API using modkit
package module

import (
	"net/http"

	modkit "roster/internal/modkit"
	"roster/internal/modkit/httpkit"

	ahttp "roster/internal/services/auth/http"
	asvc "roster/internal/services/auth/service"
	urepo "roster/internal/services/users/repo"
)

// Module implements the auth API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc asvc.Service
}

// Ports declares the injected collaborators for this module
type Ports struct {
	Hasher asvc.Hasher
	Signer asvc.TokenSigner
}

// PortsOut exposes the service port for cross-module use
type PortsOut struct {
	Service asvc.Service
}

// New constructs the auth module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("auth"),
		modkit.WithPrefix("/auth"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Hasher == nil {
		panic("auth module requires Hasher port (adapters/secrets)")
	}
	if injected.Signer == nil {
		panic("auth module requires Signer port (adapters/token)")
	}

	svc := asvc.New(deps.PG, urepo.NewPG(), injected.Hasher, injected.Signer)

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
		ahttp.Register(r, m.svc)
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
