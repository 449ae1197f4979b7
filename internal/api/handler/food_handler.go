package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/nourix/protocol-coach/internal/domain"
	"github.com/nourix/protocol-coach/internal/service"
	"github.com/nourix/protocol-coach/pkg/problem"
)

// FoodHandler serves the nutrition catalog.
type FoodHandler struct {
	service service.FoodService
}

func NewFoodHandler(service service.FoodService) *FoodHandler {
	return &FoodHandler{service: service}
}

// List handles GET /v1/foods
// @Summary List foods
// @Description Cursor-paginated food listing with optional name and tag filters.
// @Tags foods
// @Produce json
// @Param q query string false "Substring match on food name"
// @Param tag query string false "Exact tag match (e.g. iron_rich)"
// @Param cursor query string false "Pagination cursor from a previous response"
// @Param limit query integer false "Page size" default(20) maximum(100)
// @Success 200 {object} domain.FoodListResponse
// @Failure 400 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /foods [get]
func (h *FoodHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			problem.BadRequest("limit must be a non-negative integer").Write(w)
			return
		}
		limit = parsed
	}

	filter := domain.FoodFilter{
		Query:  q.Get("q"),
		Tag:    q.Get("tag"),
		Cursor: q.Get("cursor"),
		Limit:  limit,
	}

	resp, err := h.service.List(r.Context(), filter)
	if err != nil {
		problem.InternalError("Failed to list foods").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
