package store

import (
	"context"

	"github.com/andrewshostak/esports-notifier/internal/app/models"
	"github.com/rs/zerolog"
)

// Storage is the shared persisted state. Load returns an empty state when nothing was saved yet
// and errs.CorruptStateError when saved data cannot be decoded. Mutations are applied to the
// persisted state itself, so several processes may share one Storage without overwriting each other.
type Storage interface {
	Load(ctx context.Context) (*models.State, error)
	AddSubscription(ctx context.Context, subscription models.Subscription) (bool, error)
	RemoveSubscription(ctx context.Context, teamKey, url string) (bool, error)
	MarkSeen(ctx context.Context, teamKey, matchID string) error
}

type Logger interface {
	Error() *zerolog.Event
	Info() *zerolog.Event
	Debug() *zerolog.Event
}
