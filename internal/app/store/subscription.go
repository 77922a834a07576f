package store

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/andrewshostak/esports-notifier/internal/app/models"
	"github.com/andrewshostak/esports-notifier/internal/app/team"
)

// AddSubscription stores the pair unless an equal (team key, url) pair is already persisted. It reports
// whether the pair was added. On a storage failure nothing changes.
func (s *Store) AddSubscription(ctx context.Context, subscription models.Subscription) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if subscription.CreatedAt.IsZero() {
		subscription.CreatedAt = time.Now().UTC()
	}

	subscription.Team = strings.TrimSpace(subscription.Team)

	added, err := s.storage.AddSubscription(ctx, subscription)
	if err != nil {
		return false, fmt.Errorf("failed to save state: %w", err)
	}

	if s.indexOfSubscription(team.Normalize(subscription.Team), subscription.URL) < 0 {
		s.subscriptions = append(s.subscriptions, subscription)
	}

	return added, nil
}

// RemoveSubscription deletes the pair. Removing an absent pair is a no-op reporting false.
func (s *Store) RemoveSubscription(ctx context.Context, teamName, url string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := team.Normalize(teamName)

	removed, err := s.storage.RemoveSubscription(ctx, key, url)
	if err != nil {
		return false, fmt.Errorf("failed to save state: %w", err)
	}

	if i := s.indexOfSubscription(key, url); i >= 0 {
		s.subscriptions = slices.Delete(s.subscriptions, i, i+1)
	}

	return removed, nil
}

// ListSubscriptions refreshes the state and returns all subscriptions.
func (s *Store) ListSubscriptions(ctx context.Context) ([]models.Subscription, error) {
	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}

	return s.Subscriptions(), nil
}

// Subscriptions returns all subscriptions sorted by team key, then url.
func (s *Store) Subscriptions() []models.Subscription {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := slices.Clone(s.subscriptions)
	slices.SortStableFunc(list, func(a, b models.Subscription) int {
		if c := strings.Compare(team.Normalize(a.Team), team.Normalize(b.Team)); c != 0 {
			return c
		}
		return strings.Compare(a.URL, b.URL)
	})

	return list
}

func (s *Store) SubscriptionsByTeam(teamKey string) []models.Subscription {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]models.Subscription, 0)
	for _, sub := range s.subscriptions {
		if team.Normalize(sub.Team) == teamKey {
			list = append(list, sub)
		}
	}

	return list
}

// WatchedTeams returns one entry per team key having at least one subscription, in first-subscribed order.
// The display name is taken from the earliest subscription.
func (s *Store) WatchedTeams() []models.WatchedTeam {
	s.mu.RLock()
	defer s.mu.RUnlock()

	teams := make([]models.WatchedTeam, 0)
	known := map[string]struct{}{}
	for _, sub := range s.subscriptions {
		key := team.Normalize(sub.Team)
		if _, ok := known[key]; ok {
			continue
		}
		known[key] = struct{}{}
		teams = append(teams, models.WatchedTeam{Key: key, Name: sub.Team})
	}

	return teams
}

func (s *Store) indexOfSubscription(teamKey, url string) int {
	return slices.IndexFunc(s.subscriptions, func(sub models.Subscription) bool {
		return team.Normalize(sub.Team) == teamKey && sub.URL == url
	})
}
