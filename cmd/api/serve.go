package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/cache"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/config"
	dbpkg "github.com/AllanOliveira2022/GameZone-sub000/internal/db"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/logger"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/payment"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/routes"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/storage"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Sobe o servidor HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), migrate)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", true, "aplica migrações pendentes antes de subir")
	return cmd
}

func serve(ctx context.Context, migrate bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.OTelEndpoint, cfg.ServiceName)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			log.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	if migrate {
		applied, err := dbpkg.MigrateUp(cfg.DBUrl)
		if err != nil {
			return err
		}
		log.Info("migrations checked", "applied", applied)
	}

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		return err
	}
	defer dbpkg.Close(db)

	deps := routes.Deps{DB: db, Config: cfg, Log: log}

	// --------------------------------------------------
	// Integrações opcionais
	// --------------------------------------------------

	if cfg.RedisURL != "" {
		rc, err := cache.NewRedis(ctx, cfg.RedisURL, log)
		if err != nil {
			log.Warn("redis unavailable, game cache disabled", "error", err)
		} else {
			defer rc.Close()
			deps.GameCache = rc
		}
	}

	if cfg.S3Enabled() {
		deps.Covers = storage.NewS3CoverStore(cfg)
	}

	if cfg.PaymentsEnabled() {
		mp, err := payment.NewMercadoPago(cfg.MercadoPago.AccessToken, cfg.MercadoPago.CurrencyID)
		if err != nil {
			return fmt.Errorf("mercadopago: %w", err)
		}
		deps.Payments = mp
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running",
			"addr", cfg.Addr(),
			"cache", deps.GameCache != nil,
			"covers", deps.Covers != nil,
			"payments", deps.Payments != nil,
		)
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

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
