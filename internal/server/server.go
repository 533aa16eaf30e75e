// Package server wires the analyzer's HTTP surface: the upload UI, the
// report exports and the operational endpoints.
package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"github.com/FACorreiaa/upi-statement-analyzer/pkg/config"
)

// New builds the http.Server with all routes and middleware attached.
func New(cfg *config.Config, handler *Handler, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", handler.Index)
	mux.HandleFunc("GET /reports/{id}/transactions.csv", handler.DownloadCSV)
	mux.HandleFunc("GET /reports/{id}/transactions.xlsx", handler.DownloadXLSX)
	mux.HandleFunc("GET /healthz", handler.Healthz)

	limiter := rate.NewLimiter(rate.Limit(cfg.Server.RateLimitPerSecond), cfg.Server.RateLimitBurst)
	mux.Handle("POST /analyze", rateLimit(limiter, http.HandlerFunc(handler.Analyze)))

	if cfg.Observability.MetricsEnabled {
		mux.Handle("GET /metrics", promhttp.Handler())
	}

	root := cors.Default().Handler(requestLogger(logger, mux))

	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           root,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       2 * time.Minute,
		WriteTimeout:      2 * time.Minute,
		IdleTimeout:       2 * time.Minute,
	}
}
