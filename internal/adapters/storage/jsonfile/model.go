package jsonfile

import (
	"time"

	"github.com/andrewshostak/esports-notifier/internal/app/models"
)

type stateFile struct {
	Version       int                 `json:"version"`
	Subscriptions []subscription      `json:"subscriptions"`
	Seen          map[string][]string `json:"seen"`
}

type subscription struct {
	Team      string    `json:"team"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

func toDomainState(file stateFile) models.State {
	state := models.NewState()

	for _, sub := range file.Subscriptions {
		state.Subscriptions = append(state.Subscriptions, models.Subscription{
			Team:      sub.Team,
			URL:       sub.URL,
			CreatedAt: sub.CreatedAt,
		})
	}

	for key, ids := range file.Seen {
		state.Seen[key] = append([]string{}, ids...)
	}

	return state
}

func fromDomainState(state models.State) stateFile {
	file := stateFile{
		Version:       currentVersion,
		Subscriptions: make([]subscription, 0, len(state.Subscriptions)),
		Seen:          make(map[string][]string, len(state.Seen)),
	}

	for _, sub := range state.Subscriptions {
		file.Subscriptions = append(file.Subscriptions, subscription{
			Team:      sub.Team,
			URL:       sub.URL,
			CreatedAt: sub.CreatedAt,
		})
	}

	for key, ids := range state.Seen {
		file.Seen[key] = ids
	}

	return file
}
