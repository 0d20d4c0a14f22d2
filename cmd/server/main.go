package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"swastik/internal/app"
	"swastik/internal/auth"
	"swastik/internal/catalog"
	"swastik/internal/config"
	"swastik/internal/logger"
	"swastik/internal/media"
	"swastik/internal/settings"
	"swastik/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	lg, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer lg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, lg); err != nil {
		lg.Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, lg *zap.Logger) error {
	if cfg.SessionSecret == config.DevSessionSecret {
		lg.Warn("SESSION_SECRET not set, using development secret")
	}

	stores, err := app.OpenStores(ctx, cfg.Database, lg)
	if err != nil {
		return err
	}
	defer func() {
		if err := stores.Close(context.Background()); err != nil {
			lg.Warn("close database", zap.Error(err))
		}
	}()

	host, err := app.MediaHost(cfg.Cloudinary, lg)
	if err != nil {
		return err
	}
	verifier, err := app.Verifier(ctx, cfg, lg)
	if err != nil {
		return err
	}

	router, err := web.NewRouter(web.Deps{
		Products:           catalog.NewRepository(stores.Products),
		Settings:           settings.NewService(stores.Settings, lg),
		Media:              media.NewManager(host, lg),
		Gate:               auth.NewGate(verifier, lg),
		Logger:             lg,
		SessionSecret:      cfg.SessionSecret,
		StaticDir:          cfg.StaticDir,
		LoginRatePerMinute: cfg.Admin.LoginRatePerMinute,
		SecureCookie:       cfg.Production(),
		TrustedProxies:     cfg.TrustedProxies,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		lg.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	lg.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
