// Package store keeps subscriptions and per-team seen sets in memory on top of a shared Storage.
// Every mutation goes to the Storage first; Refresh pulls changes made by other processes.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/andrewshostak/esports-notifier/errs"
	"github.com/andrewshostak/esports-notifier/internal/app/models"
	"github.com/andrewshostak/esports-notifier/internal/app/team"
)

type Store struct {
	mu      sync.RWMutex
	storage Storage
	logger  Logger

	subscriptions []models.Subscription
	seen          map[string][]string
	seenIndex     map[string]map[string]struct{}
}

func NewStore(storage Storage, logger Logger) *Store {
	s := &Store{storage: storage, logger: logger}
	s.reset(models.NewState())

	return s
}

// Load replaces the in-memory state with the persisted one. Corrupt data is logged and
// replaced with an empty state; any other storage failure is returned.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.storage.Load(ctx)
	if errors.As(err, &errs.CorruptStateError{}) {
		s.logger.Error().Err(err).Msg("starting from empty state")
		s.reset(models.NewState())

		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	if state == nil {
		empty := models.NewState()
		state = &empty
	}

	s.reset(*state)

	s.logger.Info().Int("subscriptions", len(state.Subscriptions)).Int("teams_seen", len(state.Seen)).Msg("state loaded")

	return nil
}

// Refresh reads the persisted state again. Subscriptions are taken as persisted. Seen sets are
// merged, so ids committed here but not yet persisted are kept.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.storage.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh state: %w", err)
	}

	if state == nil {
		return nil
	}

	local := s.seen
	s.reset(models.State{Subscriptions: state.Subscriptions, Seen: state.Seen})
	for key, ids := range local {
		for _, id := range ids {
			s.markSeen(key, id)
		}
	}

	return nil
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() models.State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot()
}

func (s *Store) reset(state models.State) {
	s.subscriptions = make([]models.Subscription, 0, len(state.Subscriptions))
	s.seen = make(map[string][]string, len(state.Seen))
	s.seenIndex = make(map[string]map[string]struct{}, len(state.Seen))

	for _, sub := range state.Subscriptions {
		if s.indexOfSubscription(team.Normalize(sub.Team), sub.URL) >= 0 {
			continue
		}
		s.subscriptions = append(s.subscriptions, sub)
	}

	for key, ids := range state.Seen {
		for _, id := range ids {
			s.markSeen(team.Normalize(key), id)
		}
	}
}

func (s *Store) snapshot() models.State {
	state := models.State{
		Subscriptions: make([]models.Subscription, len(s.subscriptions)),
		Seen:          make(map[string][]string, len(s.seen)),
	}

	copy(state.Subscriptions, s.subscriptions)
	for key, ids := range s.seen {
		state.Seen[key] = append([]string(nil), ids...)
	}

	return state
}
