// Package subscription contains the user's active supplement
// subscriptions. Recommendations are excluded by subscription display
// name; the stable supplement ID is kept alongside as the true
// identity.
package subscription

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status of a subscription row.
type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

// Subscription is one subscribed supplement for one user.
type Subscription struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	SupplementID   string
	SupplementName string
	DailyDosage    int
	MonthlyPrice   int
	Status         Status
	CreatedAt      time.Time
	CancelledAt    *time.Time
}

var (
	ErrNotFound      = errors.New("subscription not found")
	ErrAlreadyActive = errors.New("supplement already subscribed")
	ErrNotActive     = errors.New("subscription is not active")
)

// New creates an active subscription for the given user and supplement.
func New(userID uuid.UUID, supplementID, supplementName string, dailyDosage, monthlyPrice int) (*Subscription, error) {
	if supplementID == "" || supplementName == "" {
		return nil, errors.New("supplement identity is required")
	}
	if dailyDosage < 1 {
		dailyDosage = 1
	}
	return &Subscription{
		ID:             uuid.New(),
		UserID:         userID,
		SupplementID:   supplementID,
		SupplementName: supplementName,
		DailyDosage:    dailyDosage,
		MonthlyPrice:   monthlyPrice,
		Status:         StatusActive,
		CreatedAt:      time.Now(),
	}, nil
}

// Cancel marks the subscription cancelled.
func (s *Subscription) Cancel() error {
	if s.Status != StatusActive {
		return ErrNotActive
	}
	now := time.Now()
	s.Status = StatusCancelled
	s.CancelledAt = &now
	return nil
}
