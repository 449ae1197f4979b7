package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/nourix/protocol-coach/internal/api/validation"
	"github.com/nourix/protocol-coach/internal/domain"
	"github.com/nourix/protocol-coach/internal/service"
	"github.com/nourix/protocol-coach/pkg/problem"
)

// FeedbackHandler handles the learning-loop endpoints.
type FeedbackHandler struct {
	service service.FeedbackService
}

func NewFeedbackHandler(service service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

// Submit handles POST /v1/users/{userId}/feedback
// @Summary Submit outcome feedback
// @Description Parse natural-language feedback (or accept explicit signal deltas), atomically update the user's learned protocol weights, and return them.
// @Tags feedback
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param request body domain.FeedbackRequest true "Feedback text or explicit signals"
// @Success 200 {object} domain.FeedbackResponse
// @Failure 400 {object} problem.Problem "No recognizable signals"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/feedback [post]
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	resp, err := h.service.Submit(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrEmptyFeedback) {
			problem.BadRequest("No recognizable feedback signals in request").Write(w)
			return
		}
		problem.InternalError("Failed to apply feedback").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// GetWeights handles GET /v1/users/{userId}/weights
// @Summary Get learned protocol weights
// @Description Return the user's current learned weight table, seeded from the base table when the user has no feedback history.
// @Tags feedback
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Success 200 {object} domain.WeightsResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/weights [get]
func (h *FeedbackHandler) GetWeights(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	resp, err := h.service.Weights(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to load weights").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
