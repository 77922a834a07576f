package postgres

import (
	"context"
	"fmt"

	"github.com/andrewshostak/esports-notifier/internal/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Storage struct {
	db *gorm.DB
}

func NewStorage(db *gorm.DB) *Storage {
	return &Storage{db: db}
}

func (s *Storage) Load(ctx context.Context) (*models.State, error) {
	var subscriptions []Subscription
	if err := s.db.WithContext(ctx).Order("id").Find(&subscriptions).Error; err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	var seen []SeenMatch
	if err := s.db.WithContext(ctx).Order("id").Find(&seen).Error; err != nil {
		return nil, fmt.Errorf("failed to list seen matches: %w", err)
	}

	state := toDomainState(subscriptions, seen)
	return &state, nil
}

// AddSubscription inserts the pair unless the (team_key, url) pair exists.
func (s *Storage) AddSubscription(ctx context.Context, subscription models.Subscription) (bool, error) {
	row := fromDomainSubscription(subscription)

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "team_key"}, {Name: "url"}}, DoNothing: true}).
		Create(&row)
	if result.Error != nil {
		return false, fmt.Errorf("failed to insert subscription: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (s *Storage) RemoveSubscription(ctx context.Context, teamKey, url string) (bool, error) {
	result := s.db.WithContext(ctx).Where("team_key = ? AND url = ?", teamKey, url).Delete(&Subscription{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete subscription: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (s *Storage) MarkSeen(ctx context.Context, teamKey, matchID string) error {
	row := SeenMatch{TeamKey: teamKey, MatchID: matchID}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "team_key"}, {Name: "match_id"}}, DoNothing: true}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to insert seen match: %w", err)
	}

	return nil
}
