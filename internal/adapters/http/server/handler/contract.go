package handler

import (
	"context"

	"github.com/andrewshostak/esports-notifier/internal/app/models"
)

type SubscriptionService interface {
	Create(ctx context.Context, request models.CreateSubscriptionRequest) error
	Delete(ctx context.Context, request models.DeleteSubscriptionRequest) error
	List(ctx context.Context) ([]models.Subscription, error)
}

type PollService interface {
	Poll(ctx context.Context) models.CycleReport
}
