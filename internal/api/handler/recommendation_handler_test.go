package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/nourix/protocol-coach/internal/domain"
)

func TestRecommendationHandler_Recommend(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		userID         string
		body           string
		mockService    *MockRecommendationService
		wantStatusCode int
	}{
		{
			name:   "valid request",
			userID: userID.String(),
			body:   `{"profile": {"stress_level": "8", "goal": "fat loss"}}`,
			mockService: &MockRecommendationService{
				recommendFunc: func(ctx context.Context, id uuid.UUID, req *domain.RecommendationRequest) (*domain.RecommendationResponse, error) {
					return &domain.RecommendationResponse{
						Protocols: []domain.RankedProtocol{{Protocol: "stress_protocol", Score: 0.72}},
					}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid user ID",
			userID:         "nope",
			body:           `{"profile": {"goal": "fat loss"}}`,
			mockService:    &MockRecommendationService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			userID:         userID.String(),
			body:           `{`,
			mockService:    &MockRecommendationService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "empty profile",
			userID:         userID.String(),
			body:           `{"profile": {}}`,
			mockService:    &MockRecommendationService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:   "unknown user",
			userID: uuid.New().String(),
			body:   `{"profile": {"goal": "fat loss"}}`,
			mockService: &MockRecommendationService{
				recommendFunc: func(ctx context.Context, id uuid.UUID, req *domain.RecommendationRequest) (*domain.RecommendationResponse, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewRecommendationHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodPost, "/v1/users/"+tt.userID+"/recommendations", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("userId", tt.userID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			handler.Recommend(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Recommend() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}

			if tt.wantStatusCode == http.StatusOK {
				var response domain.RecommendationResponse
				if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}
				if len(response.Protocols) != 1 || response.Protocols[0].Protocol != "stress_protocol" {
					t.Errorf("unexpected protocols: %+v", response.Protocols)
				}
			}
		})
	}
}
