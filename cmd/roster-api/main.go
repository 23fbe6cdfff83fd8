package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"roster/internal/modkit/repokit"
	"roster/internal/platform/config"
	"roster/internal/platform/logger"
	phttp "roster/internal/platform/net/http"
	"roster/internal/platform/store"

	"roster/internal/services/api"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	// service-scoped config for HTTP etc (ROSTER_API_*)
	root := config.New()
	apiCfg := root.Prefix("ROSTER_API_")
	pgCfg := root.Prefix("ROSTER_PGSQL_")

	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(
		ctx,
		store.Config{
			AppName: "roster-api",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", false),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	// fail fast if the database is unreachable at startup
	repokit.MustGuard(ctx, st)

	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// http server (reads ROSTER_API_PORT / ROSTER_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	// run until the context is cancelled by a signal
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
