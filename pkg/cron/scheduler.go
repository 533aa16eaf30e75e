// Package cron provides scheduled background jobs using robfig/cron.
package cron

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/FACorreiaa/upi-statement-analyzer/internal/domain/report"
)

// Scheduler manages background scheduled jobs using robfig/cron.
type Scheduler struct {
	cron   *cron.Cron
	store  *report.Store
	logger *slog.Logger
}

// NewScheduler creates a new job scheduler.
func NewScheduler(store *report.Store, logger *slog.Logger) *Scheduler {
	// Standard 5-field format, seconds disabled
	c := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelDebug))))

	return &Scheduler{
		cron:   c,
		store:  store,
		logger: logger,
	}
}

// Start begins scheduled jobs.
func (s *Scheduler) Start() error {
	// Report store purge: runs every 5 minutes
	_, err := s.cron.AddFunc("*/5 * * * *", s.purgeExpiredReports)
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("cron scheduler started",
		slog.Int("jobs", len(s.cron.Entries())),
	)
	return nil
}

// Stop gracefully stops all scheduled jobs.
func (s *Scheduler) Stop() context.Context {
	s.logger.Info("cron scheduler stopping")
	return s.cron.Stop()
}

// RunNow manually triggers the purge (for testing/admin).
func (s *Scheduler) RunNow() {
	go s.purgeExpiredReports()
}

func (s *Scheduler) purgeExpiredReports() {
	evicted := s.store.PurgeExpired()
	if evicted > 0 {
		s.logger.Info("purged expired reports",
			slog.Int("evicted", evicted),
			slog.Int("remaining", s.store.Len()),
		)
	}
}
