// Package team canonicalizes team names and decides whether a match candidate involves a watched team.
//
// Matching is substring based, so "furia" matches "FURIA Esports". Short names can produce false positives.
package team

import (
	"strings"

	"github.com/andrewshostak/esports-notifier/internal/app/models"
)

// Normalize trims surrounding whitespace and lowercases. No locale-aware folding is applied.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Matches reports whether the normalized watched team is a substring of either normalized candidate team.
func Matches(candidate models.MatchCandidate, watched string) bool {
	key := Normalize(watched)
	if key == "" {
		return false
	}

	return strings.Contains(Normalize(candidate.Team1), key) || strings.Contains(Normalize(candidate.Team2), key)
}

// Filter keeps candidates that match the watched team, preserving order.
func Filter(candidates []models.MatchCandidate, watched string) []models.MatchCandidate {
	filtered := make([]models.MatchCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		if Matches(candidate, watched) {
			filtered = append(filtered, candidate)
		}
	}

	return filtered
}
