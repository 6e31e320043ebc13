package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// DefaultSweepSpec runs the session sweep every five minutes
const DefaultSweepSpec = "0 */5 * * * *"

// SessionSweeper removes expired sessions
type SessionSweeper interface {
	SweepExpired(ctx context.Context) (int, error)
}

// Scheduler manages scheduled tasks
type Scheduler struct {
	cron    *cron.Cron
	sweeper SessionSweeper
	spec    string
	log     logrus.FieldLogger
}

// NewScheduler creates a new scheduler. spec uses the six-field cron format
// (seconds first) or a descriptor such as "@every 1m"; empty means DefaultSweepSpec.
func NewScheduler(sweeper SessionSweeper, spec string, log logrus.FieldLogger) *Scheduler {
	if spec == "" {
		spec = DefaultSweepSpec
	}
	cronLog := cron.PrintfLogger(log)
	return &Scheduler{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		sweeper: sweeper,
		spec:    spec,
		log:     log,
	}
}

// Start registers the sweep job and starts the scheduler
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		s.RunNow(ctx)
	}); err != nil {
		return fmt.Errorf("invalid sweep schedule %q: %w", s.spec, err)
	}

	s.cron.Start()
	s.log.WithField("spec", s.spec).Info("Scheduler started")
	return nil
}

// RunNow performs one sweep and returns the number of sessions removed
func (s *Scheduler) RunNow(ctx context.Context) int {
	removed, err := s.sweeper.SweepExpired(ctx)
	if err != nil {
		s.log.WithError(err).Error("Scheduled session sweep failed")
		return 0
	}
	return removed
}

// Stop stops the scheduler and waits for a running sweep to finish
func (s *Scheduler) Stop() {
	s.log.Info("Stopping scheduler...")
	<-s.cron.Stop().Done()
	s.log.Info("Scheduler stopped")
}
