// Package memory keeps state in process memory. It backs tests and STORAGE_KIND=memory deployments
// where losing dedup state on restart is acceptable.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/andrewshostak/esports-notifier/internal/app/models"
	"github.com/andrewshostak/esports-notifier/internal/app/team"
)

type Storage struct {
	mu     sync.Mutex
	state  models.State
	writes int
}

func NewStorage() *Storage {
	return &Storage{state: models.NewState()}
}

func (s *Storage) Load(_ context.Context) (*models.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := clone(s.state)
	return &state, nil
}

func (s *Storage) AddSubscription(_ context.Context, subscription models.Subscription) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(team.Normalize(subscription.Team), subscription.URL) >= 0 {
		return false, nil
	}

	s.state.Subscriptions = append(s.state.Subscriptions, subscription)
	s.writes++

	return true, nil
}

func (s *Storage) RemoveSubscription(_ context.Context, teamKey, url string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(teamKey, url)
	if i < 0 {
		return false, nil
	}

	s.state.Subscriptions = slices.Delete(s.state.Subscriptions, i, i+1)
	s.writes++

	return true, nil
}

func (s *Storage) MarkSeen(_ context.Context, teamKey, matchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.state.Seen[teamKey], matchID) {
		return nil
	}

	s.state.Seen[teamKey] = append(s.state.Seen[teamKey], matchID)
	s.writes++

	return nil
}

// Writes returns how many mutations changed the state.
func (s *Storage) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writes
}

func (s *Storage) indexOf(teamKey, url string) int {
	return slices.IndexFunc(s.state.Subscriptions, func(sub models.Subscription) bool {
		return team.Normalize(sub.Team) == teamKey && sub.URL == url
	})
}

func clone(state models.State) models.State {
	cloned := models.State{
		Subscriptions: append([]models.Subscription{}, state.Subscriptions...),
		Seen:          make(map[string][]string, len(state.Seen)),
	}

	for key, ids := range state.Seen {
		cloned.Seen[key] = append([]string{}, ids...)
	}

	return cloned
}
