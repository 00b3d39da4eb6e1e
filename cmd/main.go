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

	httpadapter "crowdvault/internal/adapter/http"
	"crowdvault/internal/adapter/memory"
	"crowdvault/internal/adapter/postgres"
	"crowdvault/internal/adapter/transfer"
	"crowdvault/internal/adapter/usecase"
	"crowdvault/internal/config"
	"crowdvault/internal/core/domain"
	"crowdvault/internal/core/port"
	"crowdvault/internal/db"
	"crowdvault/internal/metrics"
)

// main is the entry point of the crowdvault service. It loads
// configuration, optionally runs database migrations, wires the ledger
// store, the escrow transport and the HTTP server, then serves until a
// termination signal arrives and shuts the server down gracefully.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := cfg.Log.New()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var ledger port.Ledger
	switch cfg.Store.Driver {
	case "postgres":
		// Optionally run migrations if configured. We use the Psql sub‑config.
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
			} else {
				logger.Info("migrations applied successfully")
			}
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()

		if cfg.Psql.SeedDemo {
			if err = db.Seed(ctx, pool); err != nil {
				logger.Error("seed error", slog.Any("error", err))
			}
		}

		ledger = postgres.NewLedger(pool)
	case "memory":
		ledger = memory.NewLedger()
	default:
		logger.Error("unknown store driver", slog.String("driver", cfg.Store.Driver))
		os.Exit(1)
	}

	var escrow port.AssetTransfer
	switch cfg.Escrow.Driver {
	case "memory":
		escrow = transfer.NewBank(cfg.Escrow.Account)
	case "http":
		if cfg.Escrow.BaseURL == "" {
			logger.Error("escrow base url required for the http driver")
			os.Exit(1)
		}
		escrow = transfer.NewTreasuryClient(cfg.Escrow.BaseURL, cfg.Escrow.Timeout)
	default:
		logger.Error("unknown escrow driver", slog.String("driver", cfg.Escrow.Driver))
		os.Exit(1)
	}

	var auth func(http.Handler) http.Handler
	switch cfg.Auth.Mode {
	case "header":
		auth = httpadapter.HeaderAuth(cfg.Auth.Header)
	case "jwt":
		if cfg.Auth.SigningKey == "" {
			logger.Error("jwt signing key required for the jwt auth mode")
			os.Exit(1)
		}
		auth = httpadapter.JWTAuth([]byte(cfg.Auth.SigningKey))
	default:
		logger.Error("unknown auth mode", slog.String("mode", cfg.Auth.Mode))
		os.Exit(1)
	}

	svc := usecase.NewCampaignUseCase(ledger, escrow, port.ClockFunc(time.Now))
	assets := domain.NewAllowlist(cfg.Assets.Allowed)

	handler := httpadapter.NewHandler(svc, assets, auth, metrics.New(), logger)
	srv := &http.Server{
		Addr:    cfg.HTTP.Addr(),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if serveErr := srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", serveErr))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
