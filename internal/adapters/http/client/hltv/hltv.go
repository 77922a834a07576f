package hltv

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/andrewshostak/esports-notifier/config"
	"github.com/andrewshostak/esports-notifier/errs"
	"github.com/andrewshostak/esports-notifier/internal/app/models"
)

const source = "hltv"

const maxPageSize = 8 << 20

// HLTVClient downloads the public matches page. The page lists every upcoming match, so the
// team argument of Fetch is ignored.
type HLTVClient struct {
	httpClient HTTPManager
	logger     Logger
	config     config.Upstream
}

func NewHLTVClient(httpClient HTTPManager, logger Logger, config config.Upstream) *HLTVClient {
	return &HLTVClient{httpClient: httpClient, logger: logger, config: config}
}

func (c *HLTVClient) Fetch(ctx context.Context, _ string) (*models.Document, error) {
	url := c.config.BaseURL + c.config.Path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request to get matches page: %w", err)
	}

	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", "text/html")

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

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, errs.NewFetchError(source, res.StatusCode, errs.ErrUnexpectedUpstreamStatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxPageSize))
	if err != nil {
		return nil, errs.NewFetchError(source, 0, fmt.Errorf("failed to read matches page: %w", err))
	}

	return &models.Document{
		Source:  source,
		BaseURL: url,
		Body:    string(body),
	}, nil
}
