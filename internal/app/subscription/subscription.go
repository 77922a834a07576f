package subscription

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/andrewshostak/esports-notifier/errs"
	"github.com/andrewshostak/esports-notifier/internal/app/models"
)

type SubscriptionService struct {
	subscriptionRepository SubscriptionRepository
	logger                 Logger
}

func NewSubscriptionService(subscriptionRepository SubscriptionRepository, logger Logger) *SubscriptionService {
	return &SubscriptionService{subscriptionRepository: subscriptionRepository, logger: logger}
}

// Create subscribes the url to the team. Subscribing an existing pair again is not an error.
func (s *SubscriptionService) Create(ctx context.Context, request models.CreateSubscriptionRequest) error {
	teamName := strings.TrimSpace(request.Team)
	if teamName == "" {
		return errs.NewUnprocessableContentError(errors.New("team must not be empty"))
	}

	if err := validateURL(request.URL); err != nil {
		return errs.NewUnprocessableContentError(err)
	}

	added, err := s.subscriptionRepository.AddSubscription(ctx, models.Subscription{
		Team:      teamName,
		URL:       request.URL,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	if !added {
		s.logger.Debug().Str("team", teamName).Str("url", request.URL).Msg("subscription already exists")
		return nil
	}

	s.logger.Info().Str("team", teamName).Str("url", request.URL).Msg("subscription created")

	return nil
}

// Delete unsubscribes the url from the team. Deleting an absent pair is not an error.
func (s *SubscriptionService) Delete(ctx context.Context, request models.DeleteSubscriptionRequest) error {
	if strings.TrimSpace(request.Team) == "" || request.URL == "" {
		return errs.NewUnprocessableContentError(errors.New("team and url are required"))
	}

	removed, err := s.subscriptionRepository.RemoveSubscription(ctx, request.Team, request.URL)
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}

	if !removed {
		s.logger.Debug().Str("team", request.Team).Str("url", request.URL).Msg("subscription does not exist")
		return nil
	}

	s.logger.Info().Str("team", request.Team).Str("url", request.URL).Msg("subscription deleted")

	return nil
}

func (s *SubscriptionService) List(ctx context.Context) ([]models.Subscription, error) {
	subscriptions, err := s.subscriptionRepository.ListSubscriptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	return subscriptions, nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("url is invalid: %w", err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("url must be an absolute http or https url")
	}

	return nil
}
