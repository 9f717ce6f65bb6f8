package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vitabox/v1/internal/application/goals"
	"github.com/vitabox/v1/pkg/errors"
)

// GoalsHandlers drives the goal selection state machine over HTTP.
type GoalsHandlers struct {
	store *goals.Store
	api   APIHandlers
}

// NewGoalsHandlers creates goal selection handlers.
func NewGoalsHandlers(store *goals.Store, logger *zap.Logger) *GoalsHandlers {
	return &GoalsHandlers{
		store: store,
		api:   APIHandlers{logger: logger, validate: validator.New()},
	}
}

// goalSessionState is the session view returned after every transition.
type goalSessionState struct {
	SessionID string   `json:"session_id"`
	Category  string   `json:"category"`
	Keywords  []string `json:"keywords"`
	Selected  []string `json:"selected"`
	AtEnd     bool     `json:"at_end"`
}

func sessionState(s *goals.Session) goalSessionState {
	current := s.Current()
	return goalSessionState{
		SessionID: s.ID().String(),
		Category:  current.Name,
		Keywords:  current.Keywords,
		Selected:  s.Selected(),
		AtEnd:     s.AtEnd(),
	}
}

func (h *GoalsHandlers) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	h.api.writeJSON(w, status, payload)
}

func (h *GoalsHandlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	h.api.writeError(w, r, err)
}

func (h *GoalsHandlers) session(r *http.Request) (*goals.Session, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return nil, errors.NewBadRequestError("invalid session id")
	}
	session, err := h.store.Get(id)
	if err != nil {
		return nil, errors.NewGoalSessionNotFoundError(id.String())
	}
	return session, nil
}

// StartSession handles POST /api/v1/goals/sessions
func (h *GoalsHandlers) StartSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Start(goals.DefaultCategories())
	if err != nil {
		h.writeError(w, r, errors.Wrap(err, "failed to start goal session"))
		return
	}
	h.writeJSON(w, http.StatusCreated, APIResponse{Success: true, Data: sessionState(session)})
}

// GetSession handles GET /api/v1/goals/sessions/{id}
func (h *GoalsHandlers) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.session(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: sessionState(session)})
}

type toggleKeywordRequest struct {
	Keyword string `json:"keyword" validate:"required"`
}

// ToggleKeyword handles POST /api/v1/goals/sessions/{id}/toggle
func (h *GoalsHandlers) ToggleKeyword(w http.ResponseWriter, r *http.Request) {
	session, err := h.session(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req toggleKeywordRequest
	if err := h.api.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := session.Toggle(req.Keyword); err != nil {
		h.writeError(w, r, errors.NewBadRequestError(err.Error()))
		return
	}
	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: sessionState(session)})
}

// NextCategory handles POST /api/v1/goals/sessions/{id}/next
func (h *GoalsHandlers) NextCategory(w http.ResponseWriter, r *http.Request) {
	session, err := h.session(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := session.Next(); err != nil {
		h.writeError(w, r, errors.NewBadRequestError(err.Error()))
		return
	}
	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: sessionState(session)})
}

// PreviousCategory handles POST /api/v1/goals/sessions/{id}/previous
func (h *GoalsHandlers) PreviousCategory(w http.ResponseWriter, r *http.Request) {
	session, err := h.session(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := session.Previous(); err != nil {
		h.writeError(w, r, errors.NewBadRequestError(err.Error()))
		return
	}
	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: sessionState(session)})
}

// CompleteSession handles POST /api/v1/goals/sessions/{id}/complete
func (h *GoalsHandlers) CompleteSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.session(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := session.Complete()
	if err != nil {
		h.writeError(w, r, errors.NewBadRequestError(err.Error()))
		return
	}
	h.store.Delete(session.ID())

	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: result, Message: "Goal selection completed"})
}
