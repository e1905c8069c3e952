package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/veritable/veritable-go/internal/config"
	"github.com/veritable/veritable-go/internal/repository"
	"github.com/veritable/veritable-go/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()
	if cfg.IsDevelopment() {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	db, err := repository.Open(cfg.DatabaseURL, cfg.SQLitePath, cfg.IsDevelopment())
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := repository.Migrate(db); err != nil {
		slog.Error("database migration failed", "error", err)
		os.Exit(1)
	}
	created, err := repository.SeedAdmin(db)
	if err != nil {
		slog.Error("admin seeding failed", "error", err)
		os.Exit(1)
	}
	if created {
		slog.Info("default admin created", "username", "admin")
	}

	srv, err := server.New(cfg, db)
	if err != nil {
		slog.Error("server setup failed", "error", err)
		os.Exit(1)
	}

	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: srv.Router(),
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "base_url", cfg.BaseURL)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
