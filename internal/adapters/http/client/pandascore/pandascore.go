package pandascore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/andrewshostak/esports-notifier/config"
	"github.com/andrewshostak/esports-notifier/errs"
	"github.com/andrewshostak/esports-notifier/internal/app/models"
)

const source = "pandascore"

const pageSize = "100"

type PandaScoreClient struct {
	httpClient HTTPManager
	logger     Logger
	config     config.Upstream
}

func NewPandaScoreClient(httpClient HTTPManager, logger Logger, config config.Upstream) *PandaScoreClient {
	return &PandaScoreClient{httpClient: httpClient, logger: logger, config: config}
}

// Fetch returns upcoming matches whose name contains the team.
func (c *PandaScoreClient) Fetch(ctx context.Context, team string) (*models.Document, error) {
	url := c.config.BaseURL + c.config.Path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request to get upcoming matches: %w", err)
	}

	q := req.URL.Query()
	q.Add("search[name]", team)
	q.Add("per_page", pageSize)
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIToken)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.NewFetchError(source, 0, err)
	}

	defer func() {
		err := res.Body.Close()
		if err != nil {
			c.logger.Error().Err(err).Msg("couldn't close response body")
		}
	}()

	if res.StatusCode != http.StatusOK {
		return nil, errs.NewFetchError(source, res.StatusCode, errs.ErrUnexpectedUpstreamStatusCode)
	}

	var body []Match
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, errs.NewFetchError(source, 0, fmt.Errorf("failed to decode upcoming matches response body: %w", err))
	}

	return &models.Document{
		Source:  source,
		BaseURL: c.config.BaseURL,
		Records: toDomainRawMatches(body, c.config.LinkBaseURL),
	}, nil
}
