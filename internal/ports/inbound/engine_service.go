// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/vitabox/v1/internal/domain/catalog"
	"github.com/vitabox/v1/internal/domain/pricing"
	"github.com/vitabox/v1/internal/domain/profile"
	"github.com/vitabox/v1/internal/domain/recommendation"
	"github.com/vitabox/v1/internal/domain/subscription"
)

// EngineService defines the recommendation engine use cases exposed to
// HTTP handlers and other driving adapters.
type EngineService interface {
	// Recommendations
	GetRecommendations(ctx context.Context, userID uuid.UUID, p profile.HealthProfile) ([]recommendation.Recommendation, error)
	ChatWithAdvisor(ctx context.Context, cmd AdvisorChatCommand) (*AdvisorChatResult, error)
	SessionRecommendations(ctx context.Context, userID uuid.UUID) ([]recommendation.Recommendation, error)

	// Pricing
	ComparePlans(selectionCount int) []pricing.Quote
	PlanQuote(selectionCount int, plan pricing.Plan) pricing.Quote

	// Subscriptions (checkout boundary)
	Subscribe(ctx context.Context, cmd SubscribeCommand) (*subscription.Subscription, error)
	CancelSubscription(ctx context.Context, userID, subscriptionID uuid.UUID) error
	ActiveSubscriptions(ctx context.Context, userID uuid.UUID) ([]subscription.Subscription, error)

	// Catalog
	ListCatalog() []catalog.Entry
}

// AdvisorChatCommand carries one advisor chat turn.
type AdvisorChatCommand struct {
	UserID  uuid.UUID
	Profile profile.HealthProfile
	Message string
}

// AdvisorChatResult is the advisor's reply plus the merged
// recommendation list surfaced to the user.
type AdvisorChatResult struct {
	Reply           string
	Recommendations []recommendation.Recommendation
}

// SubscribeCommand converts one recommendation into a subscription.
type SubscribeCommand struct {
	UserID       uuid.UUID
	SupplementID string
	DailyDosage  int
}
