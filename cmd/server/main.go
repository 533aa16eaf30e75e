// Command server runs the UPI statement analyzer web application.
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

	"github.com/FACorreiaa/upi-statement-analyzer/internal/server"
	"github.com/FACorreiaa/upi-statement-analyzer/pkg/config"
	"github.com/FACorreiaa/upi-statement-analyzer/pkg/logger"
)

func main() {
	log := logger.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	if cfg.LLM.APIKey == "" {
		log.Warn("no advice service API key configured; reports will show advice failures")
	}

	deps := NewDependencies(cfg, log)

	if err := deps.Scheduler.Start(); err != nil {
		log.Error("failed to start scheduler", slog.Any("error", err))
		os.Exit(1)
	}

	srv := server.New(cfg, deps.Handler, log)

	go func() {
		log.Info("server listening",
			slog.String("addr", srv.Addr),
			slog.String("base_url", cfg.Server.BaseURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown failed", slog.Any("error", err))
	}
	<-deps.Scheduler.Stop().Done()

	log.Info("shutdown complete")
}
