// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/vitabox/v1/internal/domain/profile"
	"github.com/vitabox/v1/internal/ports/inbound"
	"github.com/vitabox/v1/pkg/errors"
)

// APIHandlers handles REST API requests
type APIHandlers struct {
	engine   inbound.EngineService
	logger   *zap.Logger
	validate *validator.Validate
}

// NewAPIHandlers creates a new API handlers instance
func NewAPIHandlers(engine inbound.EngineService, logger *zap.Logger) *APIHandlers {
	return &APIHandlers{
		engine:   engine,
		logger:   logger,
		validate: validator.New(),
	}
}

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// healthProfileRequest is the survey profile payload. All fields are
// optional; rules depending on a missing field are skipped.
type healthProfileRequest struct {
	Gender    string  `json:"gender"`
	Height    float64 `json:"height" validate:"gte=0"`
	Weight    float64 `json:"weight" validate:"gte=0"`
	BirthDate string  `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r healthProfileRequest) toProfile() profile.HealthProfile {
	p := profile.HealthProfile{
		Gender:   r.Gender,
		HeightCM: r.Height,
		WeightKG: r.Weight,
	}
	if t, err := time.Parse("2006-01-02", r.BirthDate); err == nil {
		p.BirthDate = t
	}
	return p
}

func (h *APIHandlers) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *APIHandlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := errors.Wrap(err, "request failed")
	if appErr.StatusCode() >= 500 {
		h.logger.Error("Request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	h.writeJSON(w, appErr.StatusCode(), errors.ToErrorResponse(appErr, chimiddleware.GetReqID(r.Context())))
}

func (h *APIHandlers) decode(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.NewBadRequestError("invalid JSON body")
	}
	if err := h.validate.Struct(dst); err != nil {
		return errors.NewValidationError(err.Error())
	}
	return nil
}
