package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/andrewshostak/esports-notifier/errs"
	"github.com/andrewshostak/esports-notifier/internal/app/models"
	"github.com/andrewshostak/esports-notifier/internal/app/team"
)

const currentVersion = 1

// Storage keeps the whole state in one JSON file. Each mutation re-reads the file while holding
// an exclusive lock on a sidecar lock file, applies the change and writes a temp file that is
// renamed over the old one. Processes sharing the file never overwrite each other's changes.
type Storage struct {
	path string
	mu   sync.Mutex
}

func NewStorage(path string) *Storage {
	return &Storage{path: path}
}

func (s *Storage) Load(_ context.Context) (*models.State, error) {
	content, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		state := models.NewState()
		return &state, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read state file %s: %w", s.path, err)
	}

	if len(bytes.TrimSpace(content)) == 0 {
		state := models.NewState()
		return &state, nil
	}

	var file stateFile
	if err := json.Unmarshal(content, &file); err != nil {
		return nil, errs.NewCorruptStateError(fmt.Errorf("failed to decode state file %s: %w", s.path, err))
	}

	if file.Version > currentVersion {
		return nil, errs.NewCorruptStateError(fmt.Errorf("state file %s has unsupported version %d", s.path, file.Version))
	}

	state := toDomainState(file)
	return &state, nil
}

func (s *Storage) AddSubscription(ctx context.Context, subscription models.Subscription) (bool, error) {
	return s.update(ctx, func(state *models.State) bool {
		key := team.Normalize(subscription.Team)
		if slices.ContainsFunc(state.Subscriptions, func(sub models.Subscription) bool {
			return team.Normalize(sub.Team) == key && sub.URL == subscription.URL
		}) {
			return false
		}

		state.Subscriptions = append(state.Subscriptions, subscription)
		return true
	})
}

func (s *Storage) RemoveSubscription(ctx context.Context, teamKey, url string) (bool, error) {
	return s.update(ctx, func(state *models.State) bool {
		i := slices.IndexFunc(state.Subscriptions, func(sub models.Subscription) bool {
			return team.Normalize(sub.Team) == teamKey && sub.URL == url
		})
		if i < 0 {
			return false
		}

		state.Subscriptions = slices.Delete(state.Subscriptions, i, i+1)
		return true
	})
}

func (s *Storage) MarkSeen(ctx context.Context, teamKey, matchID string) error {
	_, err := s.update(ctx, func(state *models.State) bool {
		if slices.Contains(state.Seen[teamKey], matchID) {
			return false
		}

		state.Seen[teamKey] = append(state.Seen[teamKey], matchID)
		return true
	})

	return err
}

// update applies fn to the current file content and writes the result when fn reports a change.
// A corrupt file is treated as empty, the same way it is treated on startup.
func (s *Storage) update(ctx context.Context, fn func(state *models.State) bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create state directory %s: %w", filepath.Dir(s.path), err)
	}

	unlock, err := lockFile(s.path + ".lock")
	if err != nil {
		return false, fmt.Errorf("failed to lock state file %s: %w", s.path, err)
	}

	defer unlock()

	state, err := s.Load(ctx)
	if errors.As(err, &errs.CorruptStateError{}) {
		empty := models.NewState()
		state = &empty
	} else if err != nil {
		return false, err
	}

	if !fn(state) {
		return false, nil
	}

	if err := s.write(*state); err != nil {
		return false, err
	}

	return true, nil
}

func (s *Storage) write(state models.State) error {
	payload, err := json.MarshalIndent(fromDomainState(state), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	dir := filepath.Dir(s.path)

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary state file: %w", err)
	}

	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write temporary state file: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync temporary state file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary state file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace state file %s: %w", s.path, err)
	}

	return nil
}
