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

// RecommendationHandler handles the decision-pipeline endpoint.
type RecommendationHandler struct {
	service service.RecommendationService
}

func NewRecommendationHandler(service service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{service: service}
}

// Recommend handles POST /v1/users/{userId}/recommendations
// @Summary Generate a personalized protocol plan
// @Description Run the full pipeline: parse the raw profile, build the constraint graph, analyze state, prioritize protocols with learned weights, solve real-world constraints and derive nutrient targets.
// @Tags recommendations
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param request body domain.RecommendationRequest true "Raw self-reported profile"
// @Success 200 {object} domain.RecommendationResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid profile"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/recommendations [post]
func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	resp, err := h.service.Recommend(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to generate recommendation").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
