package pandascore

import (
	"strconv"
	"strings"

	"github.com/andrewshostak/esports-notifier/internal/app/models"
)

type Match struct {
	ID                int        `json:"id"`
	Name              string     `json:"name"`
	Opponents         []Opponent `json:"opponents"`
	League            Named      `json:"league"`
	Serie             Serie      `json:"serie"`
	Tournament        Named      `json:"tournament"`
	OfficialStreamURL string     `json:"official_stream_url"`
}

type Opponent struct {
	Type     string `json:"type"`
	Opponent Named  `json:"opponent"`
}

type Named struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Serie struct {
	FullName string `json:"full_name"`
}

// toDomainRawMatches links each record to linkBaseURL/<id>. The stream url is kept apart since one
// channel usually broadcasts many matches.
func toDomainRawMatches(matches []Match, linkBaseURL string) []models.RawMatch {
	records := make([]models.RawMatch, 0, len(matches))
	for _, m := range matches {
		id := strconv.Itoa(m.ID)

		record := models.RawMatch{
			ID:     id,
			Name:   m.Name,
			Event:  eventName(m),
			Stream: m.OfficialStreamURL,
		}

		if linkBaseURL != "" {
			record.URL = strings.TrimRight(linkBaseURL, "/") + "/" + id
		}

		if len(m.Opponents) > 0 {
			record.Team1 = m.Opponents[0].Opponent.Name
		}
		if len(m.Opponents) > 1 {
			record.Team2 = m.Opponents[1].Opponent.Name
		}

		records = append(records, record)
	}

	return records
}

func eventName(m Match) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{m.League.Name, m.Serie.FullName, m.Tournament.Name} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, " - ")
}
