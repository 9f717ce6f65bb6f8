// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vitabox/v1/internal/domain/recommendation"
	"github.com/vitabox/v1/internal/domain/subscription"
)

// SubscriptionRepository persists the user's supplement subscriptions.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *subscription.Subscription) error
	Cancel(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*subscription.Subscription, error)
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]subscription.Subscription, error)

	// ActiveNames returns the display names of the user's active
	// subscriptions, the exclusion set for the selection rules.
	ActiveNames(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// SessionCache holds the transient per-user recommendation list
// between chat turns. Losing an entry is acceptable; the list is
// recomputed on the next call.
type SessionCache interface {
	SetRecommendations(ctx context.Context, userID uuid.UUID, recs []recommendation.Recommendation, ttl time.Duration) error
	GetRecommendations(ctx context.Context, userID uuid.UUID) ([]recommendation.Recommendation, error)
	DeleteRecommendations(ctx context.Context, userID uuid.UUID) error
}

// AdvisorService is the external language-model collaborator. It
// returns free text only; the engine parses it after the fact.
type AdvisorService interface {
	Chat(ctx context.Context, systemPrompt, userMessage string) (string, error)
}
