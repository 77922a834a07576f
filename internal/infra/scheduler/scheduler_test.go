package scheduler_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/andrewshostak/esports-notifier/config"
	"github.com/andrewshostak/esports-notifier/internal/app/models"
	loggerinternal "github.com/andrewshostak/esports-notifier/internal/infra/logger"
	"github.com/andrewshostak/esports-notifier/internal/infra/scheduler"
	"github.com/andrewshostak/esports-notifier/internal/infra/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewScheduler(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.Poll
		expectedErr string
	}{
		{
			name:        "it returns an error for unknown timezone",
			cfg:         config.Poll{Schedule: "@every 5m", Timezone: "Mars/Olympus"},
			expectedErr: "failed to load timezone Mars/Olympus: unknown time zone Mars/Olympus",
		},
		{
			name:        "it returns an error for invalid schedule",
			cfg:         config.Poll{Schedule: "every five minutes", Timezone: "UTC"},
			expectedErr: `failed to schedule poll with "every five minutes"`,
		},
		{
			name: "success - it accepts a cron expression",
			cfg:  config.Poll{Schedule: "*/5 * * * *", Timezone: "Europe/Kyiv"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := scheduler.NewScheduler(mocks.NewPollService(t), loggerinternal.SetupLogger(), tt.cfg)

			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				assert.Nil(t, s)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, s)
			}
		})
	}
}

func TestScheduler_StartRunsFirstCycle(t *testing.T) {
	called := make(chan struct{})

	pollService := mocks.NewPollService(t)
	pollService.On("Poll", mock.Anything).Run(func(_ mock.Arguments) {
		close(called)
	}).Return(models.CycleReport{}).Once()

	s, err := scheduler.NewScheduler(pollService, loggerinternal.SetupLogger(), config.Poll{
		Schedule: "@every 1h",
		Timezone: "UTC",
		OnStart:  true,
	})
	require.NoError(t, err)

	s.Start()

	select {
	case <-called:
	case <-time.After(2 * time.Second):
		t.Fatal("poll cycle did not run on start")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}

func TestScheduler_StopCancelsRunningCycle(t *testing.T) {
	started := make(chan struct{})

	pollService := mocks.NewPollService(t)
	pollService.On("Poll", mock.Anything).Return(func(ctx context.Context) models.CycleReport {
		close(started)
		<-ctx.Done()
		return models.CycleReport{}
	}).Once()

	s, err := scheduler.NewScheduler(pollService, loggerinternal.SetupLogger(), config.Poll{
		Schedule: "@every 1h",
		Timezone: "UTC",
		OnStart:  true,
	})
	require.NoError(t, err)

	s.Start()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}

func TestScheduler_StopRightAfterStartWaitsForFirstCycle(t *testing.T) {
	var entered, finished atomic.Bool

	pollService := mocks.NewPollService(t)
	pollService.On("Poll", mock.Anything).Return(func(_ context.Context) models.CycleReport {
		entered.Store(true)
		time.Sleep(50 * time.Millisecond)
		finished.Store(true)
		return models.CycleReport{}
	}).Maybe()

	s, err := scheduler.NewScheduler(pollService, loggerinternal.SetupLogger(), config.Poll{
		Schedule: "@every 1h",
		Timezone: "UTC",
		OnStart:  true,
	})
	require.NoError(t, err)

	s.Start()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))

	assert.Equal(t, entered.Load(), finished.Load(), "stop returned while the first cycle was still running")
}
