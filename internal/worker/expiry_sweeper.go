package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// ExpiryFacade exposes the subset of application functionality required by
// the sweeper.
type ExpiryFacade interface {
	EnforceExpiry(ctx context.Context, now time.Time) (int64, error)
}

// ExpirySweeper runs the points expiry job on a cron schedule. Each run
// identifies lapsed earned entries and writes the compensating debits.
type ExpirySweeper struct {
	facade   ExpiryFacade
	schedule string
	logger   *slog.Logger

	cron   *cron.Cron
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewExpirySweeper constructs the sweeper with a standard 5-field cron
// schedule.
func NewExpirySweeper(facade ExpiryFacade, schedule string, logger *slog.Logger) *ExpirySweeper {
	return &ExpirySweeper{
		facade:   facade,
		schedule: schedule,
		logger:   logger,
		cron:     cron.New(),
	}
}

// Start registers the job and launches the scheduler. Scheduled runs are
// detached from the startup context; Stop cancels them.
func (s *ExpirySweeper) Start(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	runCtx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	if _, err := s.cron.AddFunc(s.schedule, func() { s.Run(runCtx) }); err != nil {
		cancel()
		return err
	}

	s.cron.Start()
	s.logger.Info("expiry sweeper started", slog.String("schedule", s.schedule))
	return nil
}

// Stop halts the scheduler and waits for an in-flight run to finish.
func (s *ExpirySweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	<-s.cron.Stop().Done()
	s.logger.Info("expiry sweeper stopped")
}

// Run executes a single sweep immediately. The cron job calls this on
// schedule; tests and operators may call it directly.
func (s *ExpirySweeper) Run(ctx context.Context) {
	expired, err := s.facade.EnforceExpiry(ctx, time.Now())
	if err != nil {
		s.logger.Error("expiry sweep failed", slog.String("error", err.Error()))
		return
	}
	if expired > 0 {
		s.logger.Info("expiry sweep completed", slog.Int64("points", expired))
	}
}
