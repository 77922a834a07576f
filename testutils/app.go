package testutils

import (
	"strconv"
	"time"

	"github.com/andrewshostak/esports-notifier/internal/app/models"
	"github.com/brianvoe/gofakeit/v6"
)

type Option[T any] func(*T)

func applyOptions[T any](item *T, updates ...Option[T]) {
	for _, update := range updates {
		update(item)
	}
}

func FakeSubscription(options ...Option[models.Subscription]) models.Subscription {
	subscription := models.Subscription{
		Team:      gofakeit.Company(),
		URL:       gofakeit.URL(),
		CreatedAt: gofakeit.Date().UTC().Truncate(time.Second),
	}

	applyOptions(&subscription, options...)

	return subscription
}

func FakeMatchCandidate(options ...Option[models.MatchCandidate]) models.MatchCandidate {
	id := strconv.Itoa(gofakeit.IntRange(10000, 99999))

	candidate := models.MatchCandidate{
		ID:    id,
		Team1: gofakeit.Company(),
		Team2: gofakeit.Company(),
		Event: gofakeit.AppName(),
		Link:  "https://www.hltv.org/matches/" + id,
	}

	applyOptions(&candidate, options...)

	return candidate
}

func FakeTeamReport(options ...Option[models.TeamReport]) models.TeamReport {
	report := models.TeamReport{
		Team:       gofakeit.Company(),
		Candidates: gofakeit.IntRange(5, 10),
		Matched:    gofakeit.IntRange(2, 4),
		New:        gofakeit.IntRange(0, 2),
		Delivered:  gofakeit.IntRange(0, 2),
		Failed:     gofakeit.IntRange(0, 2),
	}

	applyOptions(&report, options...)

	return report
}
