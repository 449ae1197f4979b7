package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/nourix/protocol-coach/internal/domain"
	"github.com/nourix/protocol-coach/internal/feedback"
	"github.com/nourix/protocol-coach/internal/langfuse"
	"github.com/nourix/protocol-coach/internal/repository"
)

// FeedbackService applies outcome feedback to a user's learned weights.
type FeedbackService interface {
	Submit(ctx context.Context, userID uuid.UUID, req *domain.FeedbackRequest) (*domain.FeedbackResponse, error)
	Weights(ctx context.Context, userID uuid.UUID) (*domain.WeightsResponse, error)
}

type feedbackService struct {
	userRepo repository.UserRepository
	learner  *feedback.Learner
	langfuse langfuse.Client
}

func NewFeedbackService(userRepo repository.UserRepository, learner *feedback.Learner, lf langfuse.Client) FeedbackService {
	return &feedbackService{
		userRepo: userRepo,
		learner:  learner,
		langfuse: lf,
	}
}

func (s *feedbackService) Submit(ctx context.Context, userID uuid.UUID, req *domain.FeedbackRequest) (*domain.FeedbackResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Explicit signals take precedence over text parsing.
	signals := req.Signals
	if len(signals) == 0 {
		signals = feedback.ParseSignals(req.Text)
	}
	if len(signals) == 0 {
		return nil, domain.ErrEmptyFeedback
	}

	weights, err := s.learner.Apply(ctx, user.WeightsKey(), signals)
	if err != nil {
		return nil, err
	}

	// Score the originating trace with the mean signal delta. Fire and
	// forget; the client no-ops when unconfigured.
	if req.TraceID != "" {
		var sum float64
		for _, v := range signals {
			sum += v
		}
		_ = s.langfuse.CreateScore(ctx, langfuse.ScoreInput{
			TraceID: req.TraceID,
			Name:    "protocol_feedback",
			Value:   sum / float64(len(signals)),
			Comment: req.Text,
		})
	}

	return &domain.FeedbackResponse{
		Signals: signals,
		Weights: weights,
	}, nil
}

func (s *feedbackService) Weights(ctx context.Context, userID uuid.UUID) (*domain.WeightsResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	weights, err := s.learner.Weights(ctx, user.WeightsKey())
	if err != nil {
		return nil, err
	}

	return &domain.WeightsResponse{
		UserKey: user.WeightsKey(),
		Weights: weights,
	}, nil
}
