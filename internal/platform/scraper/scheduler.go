package scraper

import (
	"context"
	"log/slog"
	"time"

	portssvc "github.com/klearr/customs-calculator/internal/core/ports/services"
)

// Scheduler periodically refreshes the stored rates through the rate
// service. It owns no scraping logic itself; the service decides which
// business day to target and how to store the result.
type Scheduler struct {
	rateService portssvc.FXRateWriterSvc
	interval    time.Duration
	onStartup   bool
	logger      *slog.Logger
}

// NewScheduler creates a scheduler that refreshes every interval. When
// onStartup is set, one refresh runs immediately before the ticker starts.
func NewScheduler(rateService portssvc.FXRateWriterSvc, interval time.Duration, onStartup bool, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		rateService: rateService,
		interval:    interval,
		onStartup:   onStartup,
		logger:      logger,
	}
}

// Run blocks until the context is cancelled, refreshing on every tick.
// Refresh failures are logged and the loop continues; a bad scrape today
// must not stop tomorrow's.
func (s *Scheduler) Run(ctx context.Context) {
	if s.onStartup {
		s.refresh(ctx)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Rate scheduler stopping")
			return
		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

func (s *Scheduler) refresh(ctx context.Context) {
	saved, skipped, err := s.rateService.RefreshRates(ctx)
	if err != nil {
		s.logger.Warn("Scheduled rate refresh failed", slog.String("error", err.Error()))
		return
	}
	s.logger.Info("Scheduled rate refresh complete", slog.Int("saved", saved), slog.Int("skipped", skipped))
}
