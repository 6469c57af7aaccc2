package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"challengeHub/internal/repository"

	"github.com/robfig/cron/v3"
)

// StatusScheduler periodically moves challenges from notStart to onGoing and on to ended based on
// their dates. Soft-deleted challenges are never touched.
type StatusScheduler struct {
	challengeRepo repository.ChallengeRepository
	cron          *cron.Cron
	timeout       time.Duration
	now           func() time.Time
}

func NewStatusScheduler(challengeRepo repository.ChallengeRepository) *StatusScheduler {
	return &StatusScheduler{
		challengeRepo: challengeRepo,
		cron:          cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
		timeout:       time.Minute,
		now:           time.Now,
	}
}

// Start registers the job under spec (e.g. "@every 1m") and starts the cron runner.
func (s *StatusScheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return fmt.Errorf("invalid challenge status schedule %q: %w", spec, err)
	}

	s.cron.Start()
	log.Printf("challenge status scheduler started with schedule %q", spec)
	return nil
}

// Stop waits for a running job to finish or ctx to expire.
func (s *StatusScheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

func (s *StatusScheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if _, _, err := s.Advance(ctx); err != nil {
		log.Printf("challenge status scheduler: %v", err)
	}
}

// Advance applies one round of status transitions and reports how many challenges moved.
func (s *StatusScheduler) Advance(ctx context.Context) (int64, int64, error) {
	started, ended, err := s.challengeRepo.AdvanceStatuses(ctx, s.now())
	if err != nil {
		return 0, 0, fmt.Errorf("failed to advance challenge statuses: %w", err)
	}

	if started > 0 || ended > 0 {
		log.Printf("challenge statuses advanced: %d started, %d ended", started, ended)
	}

	return started, ended, nil
}
