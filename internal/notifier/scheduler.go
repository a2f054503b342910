package notifier

import (
	"context"
	"log/slog"
	"time"
)

// Runner is satisfied by *Job.
type Runner interface {
	Run(ctx context.Context) (RunResult, error)
}

// Scheduler runs the notifier on a fixed interval.
type Scheduler struct {
	interval time.Duration
	job      Runner
}

func NewScheduler(interval time.Duration, job Runner) *Scheduler {
	if interval <= 0 {
		panic("notifier: scheduler interval must be positive")
	}
	if job == nil {
		panic("notifier: job must not be nil")
	}
	return &Scheduler{interval: interval, job: job}
}

// Start runs the job immediately and then on every tick until ctx is
// cancelled. A failed run is logged and retried on the next tick.
func (s *Scheduler) Start(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("[Scheduler] Starting expiration notifier", "interval", s.interval)

	s.runOnce(ctx)

	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx)
		case <-ctx.Done():
			slog.Info("[Scheduler] Stopping (context cancelled)")
			return nil
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if _, err := s.job.Run(ctx); err != nil {
		slog.Error("[Scheduler] Notifier run failed", "error", err)
	}
}
