package extract

import (
	"context"

	"github.com/andrewshostak/esports-notifier/internal/app/models"
	"github.com/rs/zerolog"
)

// Upstream returns the raw document published by the match source. Sources that cannot
// filter by team ignore the team argument.
type Upstream interface {
	Fetch(ctx context.Context, team string) (*models.Document, error)
}

type Logger interface {
	Error() *zerolog.Event
	Info() *zerolog.Event
	Debug() *zerolog.Event
}
