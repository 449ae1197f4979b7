package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/nourix/protocol-coach/internal/domain"
)

// MockUserService is a mock implementation of service.UserService
type MockUserService struct {
	createFunc  func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{ID: uuid.New(), Name: req.Name}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

// MockRecommendationService is a mock implementation of service.RecommendationService
type MockRecommendationService struct {
	recommendFunc func(ctx context.Context, userID uuid.UUID, req *domain.RecommendationRequest) (*domain.RecommendationResponse, error)
}

func (m *MockRecommendationService) Recommend(ctx context.Context, userID uuid.UUID, req *domain.RecommendationRequest) (*domain.RecommendationResponse, error) {
	if m.recommendFunc != nil {
		return m.recommendFunc(ctx, userID, req)
	}
	return &domain.RecommendationResponse{}, nil
}

// MockFeedbackService is a mock implementation of service.FeedbackService
type MockFeedbackService struct {
	submitFunc  func(ctx context.Context, userID uuid.UUID, req *domain.FeedbackRequest) (*domain.FeedbackResponse, error)
	weightsFunc func(ctx context.Context, userID uuid.UUID) (*domain.WeightsResponse, error)
}

func (m *MockFeedbackService) Submit(ctx context.Context, userID uuid.UUID, req *domain.FeedbackRequest) (*domain.FeedbackResponse, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, userID, req)
	}
	return &domain.FeedbackResponse{}, nil
}

func (m *MockFeedbackService) Weights(ctx context.Context, userID uuid.UUID) (*domain.WeightsResponse, error) {
	if m.weightsFunc != nil {
		return m.weightsFunc(ctx, userID)
	}
	return &domain.WeightsResponse{}, nil
}

// MockSwapService is a mock implementation of service.SwapService
type MockSwapService struct {
	searchFunc func(ctx context.Context, userID uuid.UUID, req *domain.SwapRequest) (*domain.SwapResponse, error)
}

func (m *MockSwapService) Search(ctx context.Context, userID uuid.UUID, req *domain.SwapRequest) (*domain.SwapResponse, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, userID, req)
	}
	return &domain.SwapResponse{}, nil
}

// MockFoodService is a mock implementation of service.FoodService
type MockFoodService struct {
	listFunc func(ctx context.Context, filter domain.FoodFilter) (*domain.FoodListResponse, error)
}

func (m *MockFoodService) List(ctx context.Context, filter domain.FoodFilter) (*domain.FoodListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return &domain.FoodListResponse{}, nil
}
