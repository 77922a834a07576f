package store

import (
	"context"
	"fmt"
)

// IsNew reports whether the match id was never committed for the team key. Unknown keys behave as empty sets.
func (s *Store) IsNew(teamKey, matchID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.seenIndex[teamKey][matchID]
	return !ok
}

// Commit appends the match id to the team's seen set and persists it before returning.
// Committing a known id is a no-op. If persisting fails the id stays committed in memory and
// the error is returned: the decision holds for this process but may not survive a restart.
func (s *Store) Commit(ctx context.Context, teamKey, matchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.markSeen(teamKey, matchID) {
		return nil
	}

	if err := s.storage.MarkSeen(ctx, teamKey, matchID); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	return nil
}

func (s *Store) markSeen(teamKey, matchID string) bool {
	ids, ok := s.seenIndex[teamKey]
	if !ok {
		ids = map[string]struct{}{}
		s.seenIndex[teamKey] = ids
	}

	if _, ok := ids[matchID]; ok {
		return false
	}

	ids[matchID] = struct{}{}
	s.seen[teamKey] = append(s.seen[teamKey], matchID)

	return true
}
