package service

import (
	"context"

	"github.com/nourix/protocol-coach/internal/domain"
	"github.com/nourix/protocol-coach/internal/repository"
	"github.com/nourix/protocol-coach/pkg/pagination"
)

// FoodService serves the nutrition catalog.
type FoodService interface {
	List(ctx context.Context, filter domain.FoodFilter) (*domain.FoodListResponse, error)
}

type foodService struct {
	repo repository.FoodRepository
}

func NewFoodService(repo repository.FoodRepository) FoodService {
	return &foodService{repo: repo}
}

func (s *foodService) List(ctx context.Context, filter domain.FoodFilter) (*domain.FoodListResponse, error) {
	foods, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(foods) > limit
	if hasMore {
		foods = foods[:limit]
	}

	response := &domain.FoodListResponse{Foods: foods}
	if hasMore && len(foods) > 0 {
		cursor := &pagination.Cursor{Key: foods[len(foods)-1].Key}
		encoded := cursor.Encode()
		response.NextCursor = &encoded
	}

	return response, nil
}
