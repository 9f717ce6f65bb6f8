// Package gorm provides GORM model definitions and repository
// implementations for subscription persistence.
package gorm

import (
	"time"

	"github.com/google/uuid"

	"github.com/vitabox/v1/internal/domain/subscription"
)

// SubscriptionModel represents the GORM model for supplement
// subscriptions. SupplementName carries a unique-per-user index for
// active rows because the selection rules exclude by display name.
type SubscriptionModel struct {
	ID             uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID         uuid.UUID `gorm:"type:char(36);not null;index"`
	SupplementID   string    `gorm:"type:varchar(64);not null;index"`
	SupplementName string    `gorm:"type:varchar(255);not null"`
	DailyDosage    int       `gorm:"not null;default:1"`
	MonthlyPrice   int       `gorm:"not null"`
	Status         string    `gorm:"type:varchar(20);not null;default:'active';index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	CancelledAt    *time.Time
}

// TableName overrides the table name
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// SubscriptionToModel maps a domain subscription to its GORM model.
func SubscriptionToModel(sub *subscription.Subscription) *SubscriptionModel {
	return &SubscriptionModel{
		ID:             sub.ID,
		UserID:         sub.UserID,
		SupplementID:   sub.SupplementID,
		SupplementName: sub.SupplementName,
		DailyDosage:    sub.DailyDosage,
		MonthlyPrice:   sub.MonthlyPrice,
		Status:         string(sub.Status),
		CreatedAt:      sub.CreatedAt,
		CancelledAt:    sub.CancelledAt,
	}
}

// ModelToSubscription maps a GORM model back to the domain type.
func ModelToSubscription(m *SubscriptionModel) *subscription.Subscription {
	return &subscription.Subscription{
		ID:             m.ID,
		UserID:         m.UserID,
		SupplementID:   m.SupplementID,
		SupplementName: m.SupplementName,
		DailyDosage:    m.DailyDosage,
		MonthlyPrice:   m.MonthlyPrice,
		Status:         subscription.Status(m.Status),
		CreatedAt:      m.CreatedAt,
		CancelledAt:    m.CancelledAt,
	}
}
