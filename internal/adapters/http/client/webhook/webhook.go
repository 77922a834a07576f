package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/andrewshostak/esports-notifier/config"
	"github.com/andrewshostak/esports-notifier/errs"
	"github.com/andrewshostak/esports-notifier/internal/app/models"
	"github.com/cenkalti/backoff/v4"
)

type WebhookClient struct {
	httpClient HTTPManager
	logger     Logger
	config     config.Delivery
}

func NewWebhookClient(httpClient HTTPManager, logger Logger, config config.Delivery) *WebhookClient {
	return &WebhookClient{httpClient: httpClient, logger: logger, config: config}
}

// Deliver posts the notification as JSON. Network errors and 5xx answers are retried up to
// MaxAttempts in total, 4xx answers are not. Each attempt has its own timeout.
func (c *WebhookClient) Deliver(ctx context.Context, notification models.Notification) error {
	payload, err := json.Marshal(fromDomainNotification(notification))
	if err != nil {
		return fmt.Errorf("failed to marshal notification body: %w", err)
	}

	attempt := 0
	operation := func() error {
		attempt++
		return c.post(ctx, notification.URL, payload)
	}

	onRetry := func(err error, wait time.Duration) {
		c.logger.Debug().Err(err).
			Str("url", notification.URL).
			Int("attempt", attempt).
			Dur("wait", wait).
			Msg("retrying notification delivery")
	}

	if err := backoff.RetryNotify(operation, c.retryPolicy(ctx), onRetry); err != nil {
		return err
	}

	return nil
}

func (c *WebhookClient) post(ctx context.Context, url string, payload []byte) error {
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return backoff.Permanent(errs.NewDeliveryError(url, 0, fmt.Errorf("failed to create request: %w", err)))
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return errs.NewDeliveryError(url, 0, err)
	}

	defer func() {
		err := res.Body.Close()
		if err != nil {
			c.logger.Error().Err(err).Msg("couldn't close response body")
		}
	}()

	if res.StatusCode >= http.StatusOK && res.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	deliveryErr := errs.NewDeliveryError(url, res.StatusCode, errs.ErrUnexpectedRecipientStatusCode)
	if res.StatusCode < http.StatusInternalServerError && res.StatusCode != http.StatusTooManyRequests {
		return backoff.Permanent(deliveryErr)
	}

	return deliveryErr
}

func (c *WebhookClient) retryPolicy(ctx context.Context) backoff.BackOffContext {
	retries := uint64(0)
	if c.config.MaxAttempts > 1 {
		retries = uint64(c.config.MaxAttempts - 1)
	}

	return backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(c.config.RetryDelay), retries), ctx)
}
