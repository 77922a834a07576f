package notify

import (
	"context"

	"github.com/andrewshostak/esports-notifier/internal/app/models"
	"golang.org/x/sync/errgroup"
)

type Notifier struct {
	client      DeliveryClient
	concurrency int
	logger      Logger
}

func NewNotifier(client DeliveryClient, concurrency int, logger Logger) *Notifier {
	if concurrency < 1 {
		concurrency = 1
	}

	return &Notifier{client: client, concurrency: concurrency, logger: logger}
}

// Notify delivers one match to one subscriber. A failure is logged and reported in the result, never returned.
func (n *Notifier) Notify(ctx context.Context, subscription models.Subscription, candidate models.MatchCandidate) models.DeliveryResult {
	result := models.DeliveryResult{URL: subscription.URL, MatchID: candidate.ID}

	err := n.client.Deliver(ctx, models.Notification{
		URL:     subscription.URL,
		Team:    subscription.Team,
		Message: FormatMessage(subscription.Team, candidate),
		Match:   candidate,
	})
	if err != nil {
		n.logger.Error().Err(err).
			Str("team", subscription.Team).
			Str("match_id", candidate.ID).
			Str("url", subscription.URL).
			Msg("failed to deliver notification")

		result.Status = models.DeliveryFailed
		result.Err = err

		return result
	}

	n.logger.Debug().
		Str("team", subscription.Team).
		Str("match_id", candidate.ID).
		Str("url", subscription.URL).
		Msg("notification delivered")

	result.Status = models.Delivered

	return result
}

// FanOut notifies every subscriber of the match, at most concurrency at a time. Results keep
// the order of subscriptions. Every subscriber gets an attempt regardless of sibling failures.
func (n *Notifier) FanOut(ctx context.Context, subscriptions []models.Subscription, candidate models.MatchCandidate) []models.DeliveryResult {
	results := make([]models.DeliveryResult, len(subscriptions))

	g := errgroup.Group{}
	g.SetLimit(n.concurrency)

	for i, sub := range subscriptions {
		g.Go(func() error {
			results[i] = n.Notify(ctx, sub, candidate)
			return nil
		})
	}

	_ = g.Wait()

	return results
}
