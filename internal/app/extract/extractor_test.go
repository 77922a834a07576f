package extract_test

import (
	"context"
	"errors"
	"testing"

	"github.com/andrewshostak/esports-notifier/errs"
	"github.com/andrewshostak/esports-notifier/internal/app/extract"
	"github.com/andrewshostak/esports-notifier/internal/app/extract/mocks"
	"github.com/andrewshostak/esports-notifier/internal/app/models"
	loggerinternal "github.com/andrewshostak/esports-notifier/internal/infra/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const matchesPage = `<html><body>
<div class="upcomingMatches">
  <div class="match-wrapper">
    <a href="/matches/12345/furia-vs-imperial-iem-cologne" class="match">
      <div class="matchTeam team1"><div class="matchTeamName">FURIA</div></div>
      <div class="matchTeam team2"><div class="matchTeamName">Imperial</div></div>
      <div class="matchEvent"><div class="matchEventName">IEM Cologne 2026</div></div>
    </a>
  </div>
  <ul>
    <li class="result"><a href="https://www.hltv.org/matches/23456/mibr-vs-pain">MIBR vs. paiN</a> <span>Tournament: CCT South America</span></li>
    <li><a href="/matches/34567/astralis-vitality">Astralis - Vitality</a></li>
    <li><a href="/matches/45678/showmatch">Showmatch announced soon</a></li>
    <li><a href="/matches/12345/duplicate">NAVI vs G2</a></li>
    <li><a href="/news/999/furia-vs-navi">FURIA vs NAVI</a></li>
    <li><a href="/matches/56789/tbd"></a></li>
  </ul>
</div>
</body></html>`

func TestExtractor_Parse(t *testing.T) {
	logger := loggerinternal.SetupLogger()

	t.Run("it extracts candidates from an html document", func(t *testing.T) {
		e := extract.NewExtractor(mocks.NewUpstream(t), logger)

		candidates, err := e.Parse(models.Document{Source: "hltv", BaseURL: "https://www.hltv.org/matches", Body: matchesPage})
		require.NoError(t, err)
		require.Len(t, candidates, 5)

		assert.Equal(t, "12345", candidates[0].ID)
		assert.Equal(t, "FURIA", candidates[0].Team1)
		assert.Equal(t, "Imperial", candidates[0].Team2)
		assert.Equal(t, "IEM Cologne 2026", candidates[0].Event)
		assert.Equal(t, "https://www.hltv.org/matches/12345/furia-vs-imperial-iem-cologne", candidates[0].Link)

		assert.Equal(t, models.MatchCandidate{
			ID:      "23456",
			Team1:   "MIBR",
			Team2:   "paiN",
			Event:   "CCT South America",
			Link:    "https://www.hltv.org/matches/23456/mibr-vs-pain",
			Context: "MIBR vs. paiN",
		}, candidates[1])

		assert.Equal(t, models.MatchCandidate{
			ID:      "34567",
			Team1:   "Astralis",
			Team2:   "Vitality",
			Link:    "https://www.hltv.org/matches/34567/astralis-vitality",
			Context: "Astralis - Vitality",
		}, candidates[2])

		assert.Equal(t, "45678", candidates[3].ID)
		assert.Equal(t, "Showmatch announced soon", candidates[3].Team1)
		assert.Empty(t, candidates[3].Team2)

		assert.Equal(t, "56789", candidates[4].ID)
		assert.Empty(t, candidates[4].Team1)
		assert.Empty(t, candidates[4].Team2)
	})

	t.Run("it returns an empty list for a document without matches", func(t *testing.T) {
		e := extract.NewExtractor(mocks.NewUpstream(t), logger)

		candidates, err := e.Parse(models.Document{Body: "<html><body><p>No upcoming matches</p><a href=\"/news/1/x\">news</a></body></html>"})
		require.NoError(t, err)
		assert.NotNil(t, candidates)
		assert.Empty(t, candidates)
	})

	t.Run("it returns an empty list for an empty document", func(t *testing.T) {
		e := extract.NewExtractor(mocks.NewUpstream(t), logger)

		candidates, err := e.Parse(models.Document{})
		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("it extracts candidates from structured records", func(t *testing.T) {
		e := extract.NewExtractor(mocks.NewUpstream(t), logger)

		candidates, err := e.Parse(models.Document{
			BaseURL: "https://api.example.com",
			Records: []models.RawMatch{
				{ID: "1", Name: "whatever", Team1: " FURIA ", Team2: "NAVI", Event: "IEM Katowice", URL: "https://example.com/m/1", Stream: "https://twitch.tv/esl"},
				{ID: "2", Name: "FURIA vs MIBR | League: ESL Pro League", URL: "/matches/2"},
				{ID: "", Name: "Astralis vs G2"},
				{ID: "1", Name: "paiN vs MIBR"},
			},
		})
		require.NoError(t, err)
		require.Len(t, candidates, 2)

		assert.Equal(t, models.MatchCandidate{
			ID:      "1",
			Team1:   "FURIA",
			Team2:   "NAVI",
			Event:   "IEM Katowice",
			Link:    "https://example.com/m/1",
			Stream:  "https://twitch.tv/esl",
			Context: "whatever",
		}, candidates[0])

		assert.Equal(t, models.MatchCandidate{
			ID:      "2",
			Team1:   "FURIA",
			Team2:   "MIBR",
			Event:   "ESL Pro League",
			Link:    "https://api.example.com/matches/2",
			Context: "FURIA vs MIBR | League: ESL Pro League",
		}, candidates[1])
	})

	t.Run("it uses custom parsers", func(t *testing.T) {
		slash := extract.PairParserFunc(func(text string) (extract.TeamPair, bool) {
			return extract.TeamPair{Team1: "always", Team2: "custom"}, true
		})
		e := extract.NewExtractor(mocks.NewUpstream(t), logger, slash)

		candidates, err := e.Parse(models.Document{Records: []models.RawMatch{{ID: "7", Name: "A vs B"}}})
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, "always", candidates[0].Team1)
		assert.Equal(t, "custom", candidates[0].Team2)
	})
}

func TestExtractor_Extract(t *testing.T) {
	ctx := context.Background()
	logger := loggerinternal.SetupLogger()
	team := "FURIA"

	tests := []struct {
		name        string
		upstream    func(t *testing.T) *mocks.Upstream
		result      []models.MatchCandidate
		expectedErr error
	}{
		{
			name: "it returns fetch error as is",
			upstream: func(t *testing.T) *mocks.Upstream {
				t.Helper()
				m := mocks.NewUpstream(t)
				m.On("Fetch", ctx, team).Return(nil, errs.NewFetchError("hltv", 503, nil)).Once()
				return m
			},
			expectedErr: errs.NewFetchError("hltv", 503, nil),
		},
		{
			name: "it wraps other upstream errors into fetch error",
			upstream: func(t *testing.T) *mocks.Upstream {
				t.Helper()
				m := mocks.NewUpstream(t)
				m.On("Fetch", ctx, team).Return(nil, errors.New("connection refused")).Once()
				return m
			},
			expectedErr: errs.NewFetchError("upstream", 0, errors.New("connection refused")),
		},
		{
			name: "it returns an empty list when upstream has no document",
			upstream: func(t *testing.T) *mocks.Upstream {
				t.Helper()
				m := mocks.NewUpstream(t)
				m.On("Fetch", ctx, team).Return(nil, nil).Once()
				return m
			},
			result: []models.MatchCandidate{},
		},
		{
			name: "success - it parses fetched document",
			upstream: func(t *testing.T) *mocks.Upstream {
				t.Helper()
				m := mocks.NewUpstream(t)
				m.On("Fetch", ctx, team).Return(&models.Document{
					Records: []models.RawMatch{{ID: "12345", Team1: "FURIA", Team2: "Imperial"}},
				}, nil).Once()
				return m
			},
			result: []models.MatchCandidate{{ID: "12345", Team1: "FURIA", Team2: "Imperial"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := extract.NewExtractor(tt.upstream(t), logger)

			actual, err := e.Extract(ctx, team)

			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
				assert.ErrorAs(t, err, &errs.FetchError{})
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.result, actual)
		})
	}
}
