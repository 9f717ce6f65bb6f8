// Package engine provides the supplement recommendation engine: rule
// based selection, personalized dosage, intake scheduling, free-text
// backfill from advisor replies and plan pricing.
package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vitabox/v1/internal/domain/catalog"
	"github.com/vitabox/v1/internal/domain/pricing"
	"github.com/vitabox/v1/internal/domain/profile"
	"github.com/vitabox/v1/internal/domain/recommendation"
	"github.com/vitabox/v1/internal/domain/subscription"
	"github.com/vitabox/v1/internal/ports/inbound"
	"github.com/vitabox/v1/internal/ports/outbound"
	"github.com/vitabox/v1/pkg/errors"
)

// sessionTTL bounds how long a transient recommendation list survives
// between chat turns.
const sessionTTL = 30 * time.Minute

// advisorSystemPrompt asks the model to close its reply with a marked
// recommendation block the extractor can parse.
const advisorSystemPrompt = `당신은 영양제 상담 전문가입니다. 사용자의 건강 고민에 친절하게 답변하세요.
답변 마지막에 추천 영양제가 있다면 반드시 아래 형식으로 정리하세요.
[영양제 추천]
- 영양제이름 : 하루섭취량정`

// Service implements the engine use cases.
type Service struct {
	catalog   *catalog.Catalog
	selector  *RecommendationSelector
	extractor *FreeTextExtractor
	dosage    *DosageCalculator
	subs      outbound.SubscriptionRepository
	sessions  outbound.SessionCache
	advisor   outbound.AdvisorService
	logger    *zap.Logger
}

// NewService creates the engine service.
func NewService(
	cat *catalog.Catalog,
	subs outbound.SubscriptionRepository,
	sessions outbound.SessionCache,
	advisor outbound.AdvisorService,
	logger *zap.Logger,
) inbound.EngineService {
	return &Service{
		catalog:   cat,
		selector:  NewRecommendationSelector(cat, logger),
		extractor: NewFreeTextExtractor(cat),
		dosage:    NewDosageCalculator(),
		subs:      subs,
		sessions:  sessions,
		advisor:   advisor,
		logger:    logger.Named("engine-service"),
	}
}

// GetRecommendations runs the selection rules for the profile,
// excluding already-subscribed supplements, and caches the result as
// the current session list.
func (s *Service) GetRecommendations(ctx context.Context, userID uuid.UUID, p profile.HealthProfile) ([]recommendation.Recommendation, error) {
	active, err := s.subs.ActiveNames(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("load active subscriptions", err)
	}

	recs := s.selector.Select(p, active)
	s.cacheSession(ctx, userID, recs)

	s.logger.Info("Recommendations selected",
		zap.String("user_id", userID.String()),
		zap.Int("count", len(recs)),
	)
	return recs, nil
}

// ChatWithAdvisor sends one chat turn to the advisor model, extracts
// any recommendations from the free-text reply and merges them under
// the structured list, which stays authoritative.
func (s *Service) ChatWithAdvisor(ctx context.Context, cmd inbound.AdvisorChatCommand) (*inbound.AdvisorChatResult, error) {
	active, err := s.subs.ActiveNames(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewDatabaseError("load active subscriptions", err)
	}

	reply, err := s.advisor.Chat(ctx, advisorSystemPrompt, cmd.Message)
	if err != nil {
		return nil, errors.NewExternalServiceError("advisor", err)
	}

	structured := s.selector.Select(cmd.Profile, active)
	extracted := s.extractor.Extract(reply, active)
	merged := Merge(structured, extracted)
	s.cacheSession(ctx, cmd.UserID, merged)

	s.logger.Info("Advisor reply processed",
		zap.String("user_id", cmd.UserID.String()),
		zap.Int("structured", len(structured)),
		zap.Int("extracted", len(extracted)),
		zap.Int("merged", len(merged)),
	)

	return &inbound.AdvisorChatResult{
		Reply:           reply,
		Recommendations: merged,
	}, nil
}

// SessionRecommendations returns the cached recommendation list for
// the user, empty when the session has expired.
func (s *Service) SessionRecommendations(ctx context.Context, userID uuid.UUID) ([]recommendation.Recommendation, error) {
	recs, err := s.sessions.GetRecommendations(ctx, userID)
	if err != nil {
		s.logger.Debug("Session cache miss", zap.String("user_id", userID.String()), zap.Error(err))
		return []recommendation.Recommendation{}, nil
	}
	return recs, nil
}

// ComparePlans quotes all plan tiers for the selection count.
func (s *Service) ComparePlans(selectionCount int) []pricing.Quote {
	return pricing.ComparePlans(selectionCount)
}

// PlanQuote quotes one plan tier for the selection count.
func (s *Service) PlanQuote(selectionCount int, plan pricing.Plan) pricing.Quote {
	return pricing.PlanQuote(selectionCount, plan)
}

// Subscribe converts a recommendation into a persisted subscription.
func (s *Service) Subscribe(ctx context.Context, cmd inbound.SubscribeCommand) (*subscription.Subscription, error) {
	entry, ok := s.catalog.ByID(cmd.SupplementID)
	if !ok {
		return nil, errors.NewSupplementNotFoundError(cmd.SupplementID)
	}

	active, err := s.subs.ActiveNames(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewDatabaseError("load active subscriptions", err)
	}
	for _, name := range active {
		if name == entry.Name {
			return nil, errors.NewAlreadySubscribedError(entry.Name)
		}
	}

	dosage := cmd.DailyDosage
	if dosage < 1 {
		dosage = s.dosage.Compute(entry, profile.HealthProfile{})
	}

	sub, err := subscription.New(cmd.UserID, entry.ID, entry.Name, dosage, pricing.ItemMonthlyPrice(entry.PricePerUnit, dosage))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create subscription")
	}
	if err := s.subs.Create(ctx, sub); err != nil {
		return nil, errors.NewDatabaseError("create subscription", err)
	}

	// The session list no longer reflects the exclusion set.
	if err := s.sessions.DeleteRecommendations(ctx, cmd.UserID); err != nil {
		s.logger.Debug("Session invalidation failed", zap.Error(err))
	}

	s.logger.Info("Subscription created",
		zap.String("user_id", cmd.UserID.String()),
		zap.String("supplement_id", entry.ID),
	)
	return sub, nil
}

// CancelSubscription cancels one of the user's subscriptions.
func (s *Service) CancelSubscription(ctx context.Context, userID, subscriptionID uuid.UUID) error {
	sub, err := s.subs.FindByID(ctx, subscriptionID)
	if err != nil {
		return errors.NewSubscriptionNotFoundError(subscriptionID.String())
	}
	if sub.UserID != userID {
		return errors.NewForbiddenError("subscription belongs to another user")
	}
	if err := s.subs.Cancel(ctx, subscriptionID); err != nil {
		return errors.NewDatabaseError("cancel subscription", err)
	}
	return nil
}

// ActiveSubscriptions lists the user's active subscriptions.
func (s *Service) ActiveSubscriptions(ctx context.Context, userID uuid.UUID) ([]subscription.Subscription, error) {
	subs, err := s.subs.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("list subscriptions", err)
	}
	return subs, nil
}

// ListCatalog returns every catalog entry.
func (s *Service) ListCatalog() []catalog.Entry {
	return s.catalog.Entries()
}

func (s *Service) cacheSession(ctx context.Context, userID uuid.UUID, recs []recommendation.Recommendation) {
	if err := s.sessions.SetRecommendations(ctx, userID, recs, sessionTTL); err != nil {
		s.logger.Debug("Session cache write failed",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
	}
}
