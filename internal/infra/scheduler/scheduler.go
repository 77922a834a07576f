// Package scheduler runs poll cycles on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/andrewshostak/esports-notifier/config"
	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron        *cron.Cron
	pollService PollService
	logger      Logger
	config      config.Poll

	ctx    context.Context
	cancel context.CancelFunc
	// running counts first cycles started outside the cron loop.
	running sync.WaitGroup
}

func NewScheduler(pollService PollService, logger Logger, cfg config.Poll) (*Scheduler, error) {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %s: %w", cfg.Timezone, err)
	}

	cronLogger := cronLogger{logger: logger}
	c := cron.New(
		cron.WithLocation(location),
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)

	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		cron:        c,
		pollService: pollService,
		logger:      logger,
		config:      cfg,
		ctx:         ctx,
		cancel:      cancel,
	}

	if _, err := c.AddFunc(cfg.Schedule, s.run); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to schedule poll with %q: %w", cfg.Schedule, err)
	}

	return s, nil
}

// Start begins scheduling. With OnStart a first cycle runs right away through the same job
// chain, so it never overlaps with a scheduled one.
func (s *Scheduler) Start() {
	s.cron.Start()

	s.logger.Info().Str("schedule", s.config.Schedule).Str("timezone", s.config.Timezone).Msg("scheduler started")

	if s.config.OnStart {
		entries := s.cron.Entries()
		if len(entries) > 0 {
			s.running.Add(1)
			go func() {
				defer s.running.Done()
				entries[0].WrappedJob.Run()
			}()
		}
	}
}

// Stop prevents new cycles, cancels the running one and waits for it to return or for ctx to end.
func (s *Scheduler) Stop(ctx context.Context) error {
	stopped := s.cron.Stop()
	s.cancel()

	done := make(chan struct{})
	go func() {
		<-stopped.Done()
		s.running.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to wait for running poll cycle: %w", ctx.Err())
	}
}

// run is tracked by cron when scheduled and by running when started from Start.
func (s *Scheduler) run() {
	if s.ctx.Err() != nil {
		return
	}

	s.logger.Debug().Msg("scheduled poll cycle started")
	s.pollService.Poll(s.ctx)
}

type cronLogger struct {
	logger Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
