package poll_test

import (
	"context"
	"errors"
	"testing"

	"github.com/andrewshostak/esports-notifier/config"
	"github.com/andrewshostak/esports-notifier/errs"
	"github.com/andrewshostak/esports-notifier/internal/app/models"
	"github.com/andrewshostak/esports-notifier/internal/app/poll"
	"github.com/andrewshostak/esports-notifier/internal/app/poll/mocks"
	loggerinternal "github.com/andrewshostak/esports-notifier/internal/infra/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOrchestrator_PollTeam(t *testing.T) {
	ctx := context.Background()
	cfg := config.Poll{TeamConcurrency: 1}

	furia := models.WatchedTeam{Key: "furia", Name: "FURIA"}
	subs := []models.Subscription{{Team: "FURIA", URL: "https://hooks.example.com/1"}, {Team: "furia", URL: "https://hooks.example.com/2"}}

	seenMatch := models.MatchCandidate{ID: "1", Team1: "FURIA", Team2: "MIBR"}
	newMatch := models.MatchCandidate{ID: "2", Team1: "Imperial", Team2: "FURIA Esports"}
	otherMatch := models.MatchCandidate{ID: "3", Team1: "Astralis", Team2: "Vitality"}
	noPair := models.MatchCandidate{ID: "4"}

	unlocked := 0
	unlock := func() { unlocked++ }

	tests := []struct {
		name         string
		locker       func(t *testing.T) *mocks.Locker
		extractor    func(t *testing.T) *mocks.Extractor
		store        func(t *testing.T) *mocks.Store
		notifier     func(t *testing.T) *mocks.Notifier
		expected     models.TeamReport
		expectedErr  string
		expectUnlock bool
	}{
		{
			name: "it skips the team when the lock is not acquired",
			locker: func(t *testing.T) *mocks.Locker {
				t.Helper()
				m := mocks.NewLocker(t)
				m.On("Lock", mock.Anything, "furia").Return(nil, context.DeadlineExceeded).Once()
				return m
			},
			extractor:   func(t *testing.T) *mocks.Extractor { return mocks.NewExtractor(t) },
			store:       func(t *testing.T) *mocks.Store { return mocks.NewStore(t) },
			notifier:    func(t *testing.T) *mocks.Notifier { return mocks.NewNotifier(t) },
			expected:    models.TeamReport{Team: "FURIA"},
			expectedErr: context.DeadlineExceeded.Error(),
		},
		{
			name: "it ends the team cycle when extraction fails",
			locker: func(t *testing.T) *mocks.Locker {
				t.Helper()
				m := mocks.NewLocker(t)
				m.On("Lock", mock.Anything, "furia").Return(unlock, nil).Once()
				return m
			},
			extractor: func(t *testing.T) *mocks.Extractor {
				t.Helper()
				m := mocks.NewExtractor(t)
				m.On("Extract", ctx, "FURIA").Return(nil, errs.NewFetchError("hltv", 503, errs.ErrUnexpectedUpstreamStatusCode)).Once()
				return m
			},
			store: func(t *testing.T) *mocks.Store {
				t.Helper()
				m := mocks.NewStore(t)
				m.On("Refresh", ctx).Return(nil).Once()
				return m
			},
			notifier:     func(t *testing.T) *mocks.Notifier { return mocks.NewNotifier(t) },
			expected:     models.TeamReport{Team: "FURIA"},
			expectedErr:  "failed to extract matches: failed to fetch from hltv, status code 503",
			expectUnlock: true,
		},
		{
			name: "it skips the team when state cannot be refreshed",
			locker: func(t *testing.T) *mocks.Locker {
				t.Helper()
				m := mocks.NewLocker(t)
				m.On("Lock", mock.Anything, "furia").Return(unlock, nil).Once()
				return m
			},
			extractor: func(t *testing.T) *mocks.Extractor { return mocks.NewExtractor(t) },
			store: func(t *testing.T) *mocks.Store {
				t.Helper()
				m := mocks.NewStore(t)
				m.On("Refresh", ctx).Return(errors.New("failed to refresh state: connection refused")).Once()
				return m
			},
			notifier:     func(t *testing.T) *mocks.Notifier { return mocks.NewNotifier(t) },
			expected:     models.TeamReport{Team: "FURIA"},
			expectedErr:  "failed to refresh state: connection refused",
			expectUnlock: true,
		},
		{
			name: "success - it notifies and commits only new matching candidates",
			locker: func(t *testing.T) *mocks.Locker {
				t.Helper()
				m := mocks.NewLocker(t)
				m.On("Lock", mock.Anything, "furia").Return(unlock, nil).Once()
				return m
			},
			extractor: func(t *testing.T) *mocks.Extractor {
				t.Helper()
				m := mocks.NewExtractor(t)
				m.On("Extract", ctx, "FURIA").Return([]models.MatchCandidate{seenMatch, newMatch, otherMatch, noPair}, nil).Once()
				return m
			},
			store: func(t *testing.T) *mocks.Store {
				t.Helper()
				m := mocks.NewStore(t)
				m.On("Refresh", ctx).Return(nil).Once()
				m.On("IsNew", "furia", "1").Return(false).Once()
				m.On("IsNew", "furia", "2").Return(true).Once()
				m.On("SubscriptionsByTeam", "furia").Return(subs).Once()
				m.On("Commit", ctx, "furia", "2").Return(nil).Once()
				return m
			},
			notifier: func(t *testing.T) *mocks.Notifier {
				t.Helper()
				m := mocks.NewNotifier(t)
				m.On("FanOut", ctx, subs, newMatch).Return([]models.DeliveryResult{
					{URL: subs[0].URL, MatchID: "2", Status: models.Delivered},
					{URL: subs[1].URL, MatchID: "2", Status: models.DeliveryFailed, Err: errors.New("status code 500")},
				}).Once()
				return m
			},
			expected:     models.TeamReport{Team: "FURIA", Candidates: 4, Matched: 2, New: 1, Delivered: 1, Failed: 1},
			expectUnlock: true,
		},
		{
			name: "it reports a persistence failure and keeps processing candidates",
			locker: func(t *testing.T) *mocks.Locker {
				t.Helper()
				m := mocks.NewLocker(t)
				m.On("Lock", mock.Anything, "furia").Return(unlock, nil).Once()
				return m
			},
			extractor: func(t *testing.T) *mocks.Extractor {
				t.Helper()
				m := mocks.NewExtractor(t)
				m.On("Extract", ctx, "FURIA").Return([]models.MatchCandidate{newMatch, seenMatch}, nil).Once()
				return m
			},
			store: func(t *testing.T) *mocks.Store {
				t.Helper()
				m := mocks.NewStore(t)
				m.On("Refresh", ctx).Return(nil).Once()
				m.On("IsNew", "furia", "2").Return(true).Once()
				m.On("IsNew", "furia", "1").Return(true).Once()
				m.On("SubscriptionsByTeam", "furia").Return(subs[:1]).Twice()
				m.On("Commit", ctx, "furia", "2").Return(errors.New("failed to save state: disk full")).Once()
				m.On("Commit", ctx, "furia", "1").Return(nil).Once()
				return m
			},
			notifier: func(t *testing.T) *mocks.Notifier {
				t.Helper()
				m := mocks.NewNotifier(t)
				m.On("FanOut", ctx, subs[:1], mock.Anything).Return([]models.DeliveryResult{{Status: models.Delivered}}).Twice()
				return m
			},
			expected:     models.TeamReport{Team: "FURIA", Candidates: 2, Matched: 2, New: 2, Delivered: 2},
			expectedErr:  "failed to save state: disk full",
			expectUnlock: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unlocked = 0

			o := poll.NewOrchestrator(tt.extractor(t), tt.store(t), tt.notifier(t), tt.locker(t), loggerinternal.SetupLogger(), cfg)

			actual := o.PollTeam(ctx, furia)

			if tt.expectedErr != "" {
				assert.EqualError(t, actual.Err, tt.expectedErr)
			} else {
				assert.NoError(t, actual.Err)
			}

			actual.Err = nil
			assert.Equal(t, tt.expected, actual)

			if tt.expectUnlock {
				assert.Equal(t, 1, unlocked)
			} else {
				assert.Equal(t, 0, unlocked)
			}
		})
	}
}

func TestOrchestrator_Poll(t *testing.T) {
	ctx := context.Background()

	teams := []models.WatchedTeam{{Key: "furia", Name: "FURIA"}, {Key: "navi", Name: "NAVI"}}
	sub := models.Subscription{Team: "NAVI", URL: "https://hooks.example.com/navi"}
	candidate := models.MatchCandidate{ID: "9", Team1: "NAVI", Team2: "G2"}

	locker := mocks.NewLocker(t)
	locker.On("Lock", mock.Anything, mock.Anything).Return(func() {}, nil).Twice()

	extractor := mocks.NewExtractor(t)
	extractor.On("Extract", ctx, "FURIA").Return(nil, errs.NewFetchError("hltv", 0, errors.New("timeout"))).Once()
	extractor.On("Extract", ctx, "NAVI").Return([]models.MatchCandidate{candidate}, nil).Once()

	store := mocks.NewStore(t)
	store.On("Refresh", ctx).Return(nil).Times(3)
	store.On("WatchedTeams").Return(teams).Once()
	store.On("IsNew", "navi", "9").Return(true).Once()
	store.On("SubscriptionsByTeam", "navi").Return([]models.Subscription{sub}).Once()
	store.On("Commit", ctx, "navi", "9").Return(nil).Once()

	notifier := mocks.NewNotifier(t)
	notifier.On("FanOut", ctx, []models.Subscription{sub}, candidate).Return([]models.DeliveryResult{{URL: sub.URL, MatchID: "9", Status: models.Delivered}}).Once()

	o := poll.NewOrchestrator(extractor, store, notifier, locker, loggerinternal.SetupLogger(), config.Poll{TeamConcurrency: 2})

	report := o.Poll(ctx)

	assert.Len(t, report.Teams, 2)
	assert.Equal(t, "FURIA", report.Teams[0].Team)
	assert.Error(t, report.Teams[0].Err)
	assert.Equal(t, models.TeamReport{Team: "NAVI", Candidates: 1, Matched: 1, New: 1, Delivered: 1}, report.Teams[1])
	assert.False(t, report.FinishedAt.Before(report.StartedAt))
}
