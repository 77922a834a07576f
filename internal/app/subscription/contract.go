package subscription

import (
	"context"

	"github.com/andrewshostak/esports-notifier/internal/app/models"
	"github.com/rs/zerolog"
)

type SubscriptionRepository interface {
	AddSubscription(ctx context.Context, subscription models.Subscription) (bool, error)
	RemoveSubscription(ctx context.Context, team, url string) (bool, error)
	ListSubscriptions(ctx context.Context) ([]models.Subscription, error)
}

type Logger interface {
	Error() *zerolog.Event
	Info() *zerolog.Event
	Debug() *zerolog.Event
}
