package notify

import (
	"context"

	"github.com/andrewshostak/esports-notifier/internal/app/models"
	"github.com/rs/zerolog"
)

// DeliveryClient sends a notification to its recipient. Any returned error is a failed delivery.
type DeliveryClient interface {
	Deliver(ctx context.Context, notification models.Notification) error
}

type Logger interface {
	Error() *zerolog.Event
	Info() *zerolog.Event
	Debug() *zerolog.Event
}
