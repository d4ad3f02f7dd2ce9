package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	httpadapter "tikkeul/internal/adapters/http"
	pg "tikkeul/internal/adapters/postgres"
	"tikkeul/internal/config"
	"tikkeul/internal/metrics"
	"tikkeul/internal/pkg/logger"
	"tikkeul/internal/ports"
	authsvc "tikkeul/internal/services/auth"
	dashsvc "tikkeul/internal/services/dashboard"
	incsvc "tikkeul/internal/services/incidents"
	lookupsvc "tikkeul/internal/services/lookups"
	uploadsvc "tikkeul/internal/services/uploads"
	workersvc "tikkeul/internal/services/workers"
	"tikkeul/internal/workers/orphansweep"
)

func main() {
	cfg, cfgErr := config.Load()
	if err := logger.Init(cfg.Env, cfg.LogLevel); err != nil {
		_ = logger.Init(cfg.Env, "info")
		logger.Warnf(context.Background(), "%v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfgErr != nil {
		logger.Fatal(ctx, cfgErr)
	}

	db, err := pg.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		logger.Fatal(ctx, err)
	}

	// Repositories behind the ports.
	var (
		_ ports.LookupRepository    = db
		_ ports.WorkerRepository    = db
		_ ports.IncidentRepository  = db
		_ ports.UserRepository      = db
		_ ports.DashboardRepository = db
		_ ports.OrphanRepository    = db
	)

	uploads, err := uploadsvc.New(cfg.Uploads.Dir, cfg.Uploads.PublicBaseURL, cfg.Uploads.URLTTL, cfg.Uploads.SigningKey)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	metrics.Register()
	srv := httpadapter.New(httpadapter.Services{
		Lookups:   lookupsvc.New(db),
		Workers:   workersvc.New(db),
		Incidents: incsvc.New(db),
		Auth:      authsvc.New(db, cfg.Auth.Key, cfg.Auth.TokenTTL()),
		Uploads:   uploads,
		Dashboard: dashsvc.New(db),
	}, cfg.CORSOrigins)

	sweeper := orphansweep.New(db, cfg.OrphanSweep.Grace, clockwork.NewRealClock())
	go func() {
		if err := sweeper.Run(ctx, cfg.OrphanSweep.Schedule); err != nil {
			logger.Errorf(ctx, "orphan sweep: %v", err)
		}
	}()

	httpSrv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()
	logger.Infof(ctx, "listening on %s", cfg.ListenAddr)

	select {
	case <-ctx.Done():
		logger.Infof(context.Background(), "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			logger.Errorf(shutdownCtx, "shutdown: %v", err)
		}
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(ctx, err)
		}
	}
}
