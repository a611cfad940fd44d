// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the GStone content API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool) and run migrations.
//  4. Connect to Redis.
//  5. Prepare upload storage.
//  6. Wire domain services and HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/gstone/internal/api"
	"github.com/taibuivan/gstone/internal/core/category"
	"github.com/taibuivan/gstone/internal/core/company"
	"github.com/taibuivan/gstone/internal/core/contact"
	"github.com/taibuivan/gstone/internal/core/gallery"
	"github.com/taibuivan/gstone/internal/core/product"
	"github.com/taibuivan/gstone/internal/core/section"
	"github.com/taibuivan/gstone/internal/core/slider"
	"github.com/taibuivan/gstone/internal/platform/config"
	"github.com/taibuivan/gstone/internal/platform/constants"
	"github.com/taibuivan/gstone/internal/platform/migration"
	pgstore "github.com/taibuivan/gstone/internal/platform/postgres"
	redisstore "github.com/taibuivan/gstone/internal/platform/redis"
	"github.com/taibuivan/gstone/internal/platform/sec"
	"github.com/taibuivan/gstone/internal/platform/storage"
	"github.com/taibuivan/gstone/internal/upload"
	"github.com/taibuivan/gstone/internal/users/account"
	"github.com/taibuivan/gstone/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("storage", cfg.StorageDriver),
	)

	// Startup deadline so a misconfigured dependency fails fast.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, cfg.DatabaseMaxConns, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Storage ────────────────────────────────────────────────────────
	store, err := storage.New(startupCtx, cfg, log)
	must(log, err, "prepare upload storage")

	var files http.Handler
	if local, ok := store.(*storage.Local); ok {
		files = local.Handler()
	}

	// ── 6. Security ───────────────────────────────────────────────────────
	tokens, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 7. Health handlers ────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	uploadService := upload.NewService(store, cfg.BaseURL, log)

	accountRepository := auth.NewAccountRepository(pool)
	authService := auth.NewService(accountRepository, auth.NewSessionRepository(rdb), tokens, log)

	if cfg.AdminEmail != "" {
		created, err := authService.EnsureAdmin(startupCtx, auth.BootstrapInput{
			Email:    cfg.AdminEmail,
			Username: cfg.AdminUsername,
			Password: cfg.AdminPassword,
		})
		must(log, err, "bootstrap administrator")
		if created {
			log.Info("admin_bootstrapped", slog.String("email", cfg.AdminEmail))
		}
	}

	var notifier contact.Notifier = contact.NewLogNotifier(log)
	if cfg.SMTPEnabled() {
		notifier = contact.NewSMTPNotifier(contact.SMTPConfig{
			Host:      cfg.SMTPHost,
			Port:      cfg.SMTPPort,
			Username:  cfg.SMTPUsername,
			Password:  cfg.SMTPPassword,
			From:      cfg.SMTPFrom,
			Recipient: cfg.ContactRecipient,
		})
	}

	galleryRepository := gallery.NewPostgresRepository(pool)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Files:     files,

		Auth:     auth.NewHandler(authService, !cfg.IsDevelopment()),
		Accounts: account.NewHandler(account.NewService(accountRepository, log)),

		Categories: category.NewHandler(category.NewService(category.NewPostgresRepository(pool), log), cfg.BaseURL),
		Companies:  company.NewHandler(company.NewService(company.NewPostgresRepository(pool), uploadService, log), cfg.BaseURL),
		Products:   product.NewHandler(product.NewService(product.NewPostgresRepository(pool), log), cfg.BaseURL),
		Gallery:    gallery.NewHandler(gallery.NewService(galleryRepository, galleryRepository, log), cfg.BaseURL),
		Sliders:    slider.NewHandler(slider.NewService(slider.NewPostgresRepository(pool), log), cfg.BaseURL),
		Sections:   section.NewHandler(section.NewService(section.NewPostgresRepository(pool), log), cfg.BaseURL),
		Contacts:   contact.NewHandler(contact.NewService(contact.NewPostgresRepository(pool), notifier, log)),
		Uploads:    upload.NewHandler(uploadService),
	}

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	server := api.NewServer(rootCtx, cfg, log, tokens, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned and
// handled explicitly.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
