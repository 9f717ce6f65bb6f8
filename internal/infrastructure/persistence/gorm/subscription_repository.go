package gorm

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vitabox/v1/internal/domain/subscription"
	"github.com/vitabox/v1/internal/ports/outbound"
)

// SubscriptionRepository implements the subscription repository
// interface using GORM
type SubscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *gorm.DB) outbound.SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Create persists a new subscription
func (r *SubscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	model := SubscriptionToModel(sub)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Cancel marks a subscription cancelled
func (r *SubscriptionRepository) Cancel(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&SubscriptionModel{}).
		Where("id = ? AND status = ?", id, string(subscription.StatusActive)).
		Updates(map[string]interface{}{
			"status":       string(subscription.StatusCancelled),
			"cancelled_at": &now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return subscription.ErrNotFound
	}
	return nil
}

// FindByID finds a subscription by ID
func (r *SubscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*subscription.Subscription, error) {
	var model SubscriptionModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, subscription.ErrNotFound
		}
		return nil, result.Error
	}

	return ModelToSubscription(&model), nil
}

// FindActiveByUser lists the user's active subscriptions, newest first
func (r *SubscriptionRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]subscription.Subscription, error) {
	var models []SubscriptionModel

	result := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, string(subscription.StatusActive)).
		Order("created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	subs := make([]subscription.Subscription, 0, len(models))
	for i := range models {
		subs = append(subs, *ModelToSubscription(&models[i]))
	}
	return subs, nil
}

// ActiveNames returns the display names of the user's active
// subscriptions
func (r *SubscriptionRepository) ActiveNames(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var names []string

	result := r.db.WithContext(ctx).
		Model(&SubscriptionModel{}).
		Where("user_id = ? AND status = ?", userID, string(subscription.StatusActive)).
		Pluck("supplement_name", &names)
	if result.Error != nil {
		return nil, result.Error
	}
	return names, nil
}
