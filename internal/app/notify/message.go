package notify

import (
	"fmt"
	"strings"

	"github.com/andrewshostak/esports-notifier/internal/app/models"
)

const unknownOpponent = "TBD"

// FormatMessage renders a one-line announcement of the match, e.g.
// "New match for FURIA: FURIA vs Imperial | IEM Rio 2026 | https://www.hltv.org/matches/12345".
func FormatMessage(teamName string, candidate models.MatchCandidate) string {
	team1 := candidate.Team1
	if team1 == "" {
		team1 = unknownOpponent
	}

	team2 := candidate.Team2
	if team2 == "" {
		team2 = unknownOpponent
	}

	parts := []string{fmt.Sprintf("New match for %s: %s vs %s", teamName, team1, team2)}

	if candidate.Event != "" {
		parts = append(parts, candidate.Event)
	}

	if candidate.Link != "" {
		parts = append(parts, candidate.Link)
	} else {
		parts = append(parts, fmt.Sprintf("match id %s", candidate.ID))
	}

	if candidate.Stream != "" {
		parts = append(parts, "stream: "+candidate.Stream)
	}

	return strings.Join(parts, " | ")
}
