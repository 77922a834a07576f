package postgres

import (
	"time"

	"github.com/andrewshostak/esports-notifier/internal/app/models"
	"github.com/andrewshostak/esports-notifier/internal/app/team"
)

type Subscription struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	Team      string    `gorm:"column:team"`
	TeamKey   string    `gorm:"column:team_key"`
	URL       string    `gorm:"column:url"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

type SeenMatch struct {
	ID      uint   `gorm:"column:id;primaryKey"`
	TeamKey string `gorm:"column:team_key"`
	MatchID string `gorm:"column:match_id"`
}

func toDomainState(subscriptions []Subscription, seen []SeenMatch) models.State {
	state := models.NewState()

	for _, s := range subscriptions {
		state.Subscriptions = append(state.Subscriptions, models.Subscription{
			Team:      s.Team,
			URL:       s.URL,
			CreatedAt: s.CreatedAt.UTC(),
		})
	}

	for _, m := range seen {
		state.Seen[m.TeamKey] = append(state.Seen[m.TeamKey], m.MatchID)
	}

	return state
}

func fromDomainSubscription(s models.Subscription) Subscription {
	return Subscription{
		Team:      s.Team,
		TeamKey:   team.Normalize(s.Team),
		URL:       s.URL,
		CreatedAt: s.CreatedAt,
	}
}
