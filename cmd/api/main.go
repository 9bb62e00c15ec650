package main

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	server "bookingmx/internal/adapters/http_server"
	"bookingmx/internal/adapters/observability"
	redisad "bookingmx/internal/adapters/redis"
	"bookingmx/internal/app"
	"bookingmx/internal/domain"
	"bookingmx/internal/shared"
	"bookingmx/internal/storage/memory"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	// cache is optional; the services run uncached when Redis is absent
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := rc.Ping(ctx)
		cancel()
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, running without cache")
		} else {
			log.Info().Str("addr", cfg.RedisAddr).Msg("redis cache ok")
			cache = rc
		}
	}

	// deps
	store := memory.New()
	reservations := app.NewReservationService(store, cache, cfg.CacheTTL)

	data := shared.SampleGraph()
	if v := app.ValidateGraphData(data); !v.OK {
		log.Fatal().Str("reason", v.Reason).Msg("built-in city dataset is invalid")
	}
	graph, err := app.BuildGraph(data)
	if err != nil {
		log.Fatal().Err(err).Msg("building city graph failed")
	}
	cities := app.NewCityQueryService(graph, cache, cfg.CacheTTL)
	log.Info().Int("cities", len(data.Cities)).Int("edges", len(data.Edges)).Msg("city graph ready")

	// http
	srv := server.New(cfg.RateRPS)
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Res: reservations, Cities: cities})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
