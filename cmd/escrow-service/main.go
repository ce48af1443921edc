package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/dinepay/escrow-service/internal/app/background"
	"github.com/dinepay/escrow-service/internal/app/setup"
	"github.com/dinepay/escrow-service/internal/config"
	deliveryhttp "github.com/dinepay/escrow-service/internal/delivery/http"
	"github.com/dinepay/escrow-service/internal/delivery/http/handlers"
	"github.com/dinepay/escrow-service/internal/delivery/http/middleware"
	"github.com/dinepay/escrow-service/internal/infrastructure/logger"
	"github.com/dinepay/escrow-service/internal/infrastructure/migrate"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	cfg := config.MustLoad()
	logger.Setup(cfg.LogConfig)

	deps := setup.InitializeDependencies(cfg)
	if cfg.EscrowDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(deps.DB, cfg.EscrowDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	usecases, err := setup.InitializeUsecases(deps)
	if err != nil {
		log.Fatalf("failed to init usecases: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	background.NewBackgroundTasks(usecases.Escrow, cfg.Escrow.ReaperInterval).StartAll(ctx)

	auth := middleware.NewAuthenticator(middleware.AuthConfig{
		HMACSecret: cfg.Auth.HMACSecret,
		Issuer:     cfg.Auth.Issuer,
	})
	router := deliveryhttp.NewRouter(handlers.NewEscrowHandler(usecases.Orchestrator), auth)

	go func() {
		slog.Info("metrics listening", "addr", cfg.Metrics.Addr)
		if err := http.ListenAndServe(cfg.Metrics.Addr, promhttp.Handler()); err != nil {
			slog.Error("metrics server stopped", "error", err)
		}
	}()

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler: router,
	}

	go func() {
		slog.Info("escrow service listening", "addr", server.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
	if deps.Publisher != nil {
		if err := deps.Publisher.Close(); err != nil {
			slog.Error("failed to close kafka publisher", "error", err)
		}
	}
}
