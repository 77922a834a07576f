package poll

import (
	"context"

	"github.com/andrewshostak/esports-notifier/internal/app/models"
	"github.com/rs/zerolog"
)

type Extractor interface {
	Extract(ctx context.Context, team string) ([]models.MatchCandidate, error)
}

// Store is the process view of the shared state. Refresh pulls changes persisted by other processes.
type Store interface {
	Refresh(ctx context.Context) error
	WatchedTeams() []models.WatchedTeam
	SubscriptionsByTeam(teamKey string) []models.Subscription
	IsNew(teamKey, matchID string) bool
	Commit(ctx context.Context, teamKey, matchID string) error
}

type Notifier interface {
	FanOut(ctx context.Context, subscriptions []models.Subscription, candidate models.MatchCandidate) []models.DeliveryResult
}

// Locker serializes cycles for one team key. The returned func releases the lock.
type Locker interface {
	Lock(ctx context.Context, key string) (func(), error)
}

type Logger interface {
	Error() *zerolog.Event
	Info() *zerolog.Event
	Debug() *zerolog.Event
}
