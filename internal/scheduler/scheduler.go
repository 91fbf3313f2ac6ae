package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"PriceProphet/internal/forecast"
	"PriceProphet/internal/notifier"
	"PriceProphet/internal/report"
)

// Scheduler re-runs the forecast pipeline for a watchlist of tickers on a
// cron schedule and delivers each report through the notifier.
type Scheduler struct {
	Cron      *cron.Cron
	Pipeline  *forecast.Pipeline
	Notifier  *notifier.TelegramNotifier
	Watchlist []string
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, p *forecast.Pipeline, tn *notifier.TelegramNotifier, watchlist []string) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Pipeline:  p,
		Notifier:  tn,
		Watchlist: watchlist,
		Ctx:       ctx,
	}
}

// Register registers the watchlist forecast task.
func (s *Scheduler) Register(cronSpec string) error {
	if _, err := s.Cron.AddFunc(cronSpec, s.RunAll); err != nil {
		return fmt.Errorf("register forecast task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Printf("[INFO] scheduler started with %d watchlist tickers", len(s.Watchlist))
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunAll forecasts every watchlist ticker once.
func (s *Scheduler) RunAll() {
	for _, ticker := range s.Watchlist {
		select {
		case <-s.Ctx.Done():
			log.Println("[WARN] watchlist run cancelled")
			return
		default:
		}

		log.Printf("[INFO] running scheduled forecast for %s", ticker)
		rep, err := s.Pipeline.Run(ticker)
		if err != nil {
			log.Printf("[ERROR] scheduled forecast for %s: %v", ticker, err)
			s.trySend(fmt.Sprintf("❌ forecast for %s failed: %v", ticker, err))
			continue
		}
		s.trySend(report.FormatTelegram(rep))
	}
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil || !s.Notifier.Enabled() {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
