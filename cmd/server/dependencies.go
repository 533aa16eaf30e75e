package main

import (
	"log/slog"

	"github.com/FACorreiaa/upi-statement-analyzer/internal/domain/categorize"
	"github.com/FACorreiaa/upi-statement-analyzer/internal/domain/insights"
	"github.com/FACorreiaa/upi-statement-analyzer/internal/domain/report"
	"github.com/FACorreiaa/upi-statement-analyzer/internal/server"
	"github.com/FACorreiaa/upi-statement-analyzer/pkg/config"
	"github.com/FACorreiaa/upi-statement-analyzer/pkg/cron"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config *config.Config
	Logger *slog.Logger

	Engine  *categorize.Engine
	Advisor *insights.Advisor
	Store   *report.Store
	Service *report.Service

	Handler   *server.Handler
	Scheduler *cron.Scheduler
}

// NewDependencies wires the application graph from configuration.
func NewDependencies(cfg *config.Config, logger *slog.Logger) *Dependencies {
	engine := categorize.NewEngine(categorize.DefaultRules())
	advisor := insights.NewAdvisor(insights.Config{
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
		BaseURL: cfg.LLM.BaseURL,
		Timeout: cfg.LLM.Timeout,
	}, logger)
	store := report.NewStore(cfg.Report.TTL)
	svc := report.NewService(engine, advisor, store, logger)

	return &Dependencies{
		Config:    cfg,
		Logger:    logger,
		Engine:    engine,
		Advisor:   advisor,
		Store:     store,
		Service:   svc,
		Handler:   server.NewHandler(svc, store, cfg.Server, logger),
		Scheduler: cron.NewScheduler(store, logger),
	}
}
