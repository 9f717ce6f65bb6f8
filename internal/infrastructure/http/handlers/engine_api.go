package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vitabox/v1/internal/domain/pricing"
	"github.com/vitabox/v1/internal/ports/inbound"
	"github.com/vitabox/v1/pkg/errors"
)

type recommendationsRequest struct {
	UserID  string               `json:"user_id" validate:"required,uuid4"`
	Profile healthProfileRequest `json:"profile"`
}

// GetRecommendations handles POST /api/v1/recommendations
func (h *APIHandlers) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	var req recommendationsRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		h.writeError(w, r, errors.NewBadRequestError("invalid user_id"))
		return
	}

	recs, err := h.engine.GetRecommendations(r.Context(), userID, req.Profile.toProfile())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: recs})
}

// SessionRecommendations handles GET /api/v1/recommendations/{userID}
func (h *APIHandlers) SessionRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		h.writeError(w, r, errors.NewBadRequestError("invalid user id"))
		return
	}

	recs, err := h.engine.SessionRecommendations(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: recs})
}

type advisorChatRequest struct {
	UserID  string               `json:"user_id" validate:"required,uuid4"`
	Profile healthProfileRequest `json:"profile"`
	Message string               `json:"message" validate:"required"`
}

type advisorChatResponse struct {
	Reply           string      `json:"reply"`
	Recommendations interface{} `json:"recommendations"`
}

// ChatWithAdvisor handles POST /api/v1/advisor/chat
func (h *APIHandlers) ChatWithAdvisor(w http.ResponseWriter, r *http.Request) {
	var req advisorChatRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		h.writeError(w, r, errors.NewBadRequestError("invalid user_id"))
		return
	}

	result, err := h.engine.ChatWithAdvisor(r.Context(), inbound.AdvisorChatCommand{
		UserID:  userID,
		Profile: req.Profile.toProfile(),
		Message: req.Message,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: advisorChatResponse{
		Reply:           result.Reply,
		Recommendations: result.Recommendations,
	}})
}

// ListCatalog handles GET /api/v1/catalog
func (h *APIHandlers) ListCatalog(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: h.engine.ListCatalog()})
}

// ComparePlans handles GET /api/v1/pricing/plans
func (h *APIHandlers) ComparePlans(w http.ResponseWriter, r *http.Request) {
	count, err := strconv.Atoi(r.URL.Query().Get("count"))
	if err != nil || count < 0 {
		h.writeError(w, r, errors.NewBadRequestError("count must be a non-negative integer"))
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: h.engine.ComparePlans(count)})
}

// PlanQuote handles GET /api/v1/pricing/plans/{plan}
func (h *APIHandlers) PlanQuote(w http.ResponseWriter, r *http.Request) {
	plan := pricing.Plan(chi.URLParam(r, "plan"))
	switch plan {
	case pricing.PlanMonthly, pricing.PlanAnnual, pricing.PlanOnce:
	default:
		h.writeError(w, r, errors.NewBadRequestError("unknown plan"))
		return
	}

	count, err := strconv.Atoi(r.URL.Query().Get("count"))
	if err != nil || count < 0 {
		h.writeError(w, r, errors.NewBadRequestError("count must be a non-negative integer"))
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: h.engine.PlanQuote(count, plan)})
}

type subscribeRequest struct {
	UserID       string `json:"user_id" validate:"required,uuid4"`
	SupplementID string `json:"supplement_id" validate:"required"`
	DailyDosage  int    `json:"daily_dosage" validate:"gte=0"`
}

// Subscribe handles POST /api/v1/subscriptions
func (h *APIHandlers) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		h.writeError(w, r, errors.NewBadRequestError("invalid user_id"))
		return
	}

	sub, err := h.engine.Subscribe(r.Context(), inbound.SubscribeCommand{
		UserID:       userID,
		SupplementID: req.SupplementID,
		DailyDosage:  req.DailyDosage,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, APIResponse{Success: true, Data: sub, Message: "Subscription created"})
}

// CancelSubscription handles DELETE /api/v1/subscriptions/{id}
func (h *APIHandlers) CancelSubscription(w http.ResponseWriter, r *http.Request) {
	subID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, errors.NewBadRequestError("invalid subscription id"))
		return
	}
	userID, err := uuid.Parse(r.URL.Query().Get("user_id"))
	if err != nil {
		h.writeError(w, r, errors.NewBadRequestError("invalid user_id"))
		return
	}

	if err := h.engine.CancelSubscription(r.Context(), userID, subID); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Message: "Subscription cancelled"})
}

// ListSubscriptions handles GET /api/v1/subscriptions
func (h *APIHandlers) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.URL.Query().Get("user_id"))
	if err != nil {
		h.writeError(w, r, errors.NewBadRequestError("invalid user_id"))
		return
	}

	subs, err := h.engine.ActiveSubscriptions(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: subs})
}
