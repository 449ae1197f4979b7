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

// SwapHandler handles the meal substitution endpoint.
type SwapHandler struct {
	service service.SwapService
}

func NewSwapHandler(service service.SwapService) *SwapHandler {
	return &SwapHandler{service: service}
}

// Search handles POST /v1/users/{userId}/swaps
// @Summary Find substitutes for a rejected food
// @Description Resolve the rejected food (exact name or chat message), filter candidates through the optional profile's constraint graph and rank by nutrient similarity plus protocol overlap.
// @Tags swaps
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param request body domain.SwapRequest true "Rejected food plus optional profile"
// @Success 200 {object} domain.SwapResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User or food not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/swaps [post]
func (h *SwapHandler) Search(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.SwapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	resp, err := h.service.Search(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrFoodNotFound) {
			problem.NotFound("Food not found in the nutrition index").Write(w)
			return
		}
		problem.InternalError("Failed to search substitutes").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
