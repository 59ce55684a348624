package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	server "hotelier/internal/adapters/http_server"
	"hotelier/internal/adapters/observability"
	redisad "hotelier/internal/adapters/redis"
	"hotelier/internal/adapters/uploads"
	"hotelier/internal/app"
	"hotelier/internal/domain"
	"hotelier/internal/shared"
	"hotelier/internal/storage/jsonfile"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// record store
	store := jsonfile.New(cfg.DataFile)
	if err := store.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("record store init failed")
	}
	log.Info().Str("file", cfg.DataFile).Msg("record store ready")

	// upload file area
	up, err := uploads.New(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("upload area init failed")
	}

	// optional read cache
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		log.Info().Str("addr", cfg.RedisAddr).Msg("redis cache enabled")
	}

	// deps
	q := app.NewQueryService(store, cache, cfg.CacheTTL)
	c := app.NewCommandService(store, up, cache)

	// http
	srv := server.New(cfg.AppEnv)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.Mount("/uploads/*", up.Handler())
	srv.MountHandlers(&server.Handlers{
		Q:              q,
		C:              c,
		AppEnv:         cfg.AppEnv,
		UploadLimit:    rate.NewLimiter(rate.Limit(cfg.UploadRPS), cfg.UploadRPS*2),
		MaxUploadBytes: cfg.MaxUploadBytes,
	})

	observability.Serve(cfg.MetricsAddr)

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("shutdown complete")
}
