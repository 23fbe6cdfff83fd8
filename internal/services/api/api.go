// Package api provides the HTTP API for the application
package api

import (
	"roster/internal/adapters/secrets"
	"roster/internal/adapters/token"
	"roster/internal/platform/config"
	"roster/internal/platform/logger"
	phttp "roster/internal/platform/net/http"
	"roster/internal/platform/store"

	"roster/internal/modkit"
	"roster/internal/modkit/httpkit"
	"roster/internal/modkit/module"

	authmod "roster/internal/services/auth/module"
	employeesmod "roster/internal/services/employees/module"
	metamod "roster/internal/services/meta/module"
	profilesmod "roster/internal/services/profiles/module"
	udom "roster/internal/services/users/domain"
	usersmod "roster/internal/services/users/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// credential and token adapters, shared by auth and users
	hasher := secrets.NewBcrypt(opt.Config.MayInt("BCRYPT_COST", 0))
	signer := token.New(token.Options{
		Secret:   opt.Config.MustString("JWT_SECRET"),
		Issuer:   opt.Config.MayString("JWT_ISSUER", "roster"),
		Audience: opt.Config.MayString("JWT_AUDIENCE", "roster"),
		TTL:      opt.Config.MayDuration("JWT_TTL", 0),
	})

	// every protected module sits behind the same bearer parser;
	// finer write gates live inside each module's route registration
	authed := httpkit.Auth(httpkit.NewPortFunc(signer.Verify))

	mods := []module.Module{
		metamod.New(deps),
		authmod.New(deps, modkit.WithPorts(authmod.Ports{
			Hasher: hasher,
			Signer: signer,
		})),
		profilesmod.New(deps, modkit.WithMiddlewares(authed)),
		employeesmod.New(deps, modkit.WithMiddlewares(authed)),
		usersmod.New(deps,
			modkit.WithPorts(usersmod.Ports{Hasher: hasher}),
			modkit.WithMiddlewares(authed, httpkit.RequireRole(udom.RoleAdmin)),
		),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
