package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/nourix/protocol-coach/internal/constraint"
	"github.com/nourix/protocol-coach/internal/domain"
	"github.com/nourix/protocol-coach/internal/profile"
	"github.com/nourix/protocol-coach/internal/repository"
	"github.com/nourix/protocol-coach/internal/swap"
)

const (
	defaultSwapLimit = 5
	maxSwapLimit     = 20
)

// SwapService finds constraint-safe substitutes for rejected foods.
type SwapService interface {
	Search(ctx context.Context, userID uuid.UUID, req *domain.SwapRequest) (*domain.SwapResponse, error)
}

type swapService struct {
	searcher *swap.Searcher
	userRepo repository.UserRepository
}

func NewSwapService(searcher *swap.Searcher, userRepo repository.UserRepository) SwapService {
	return &swapService{searcher: searcher, userRepo: userRepo}
}

func (s *swapService) Search(ctx context.Context, userID uuid.UUID, req *domain.SwapRequest) (*domain.SwapResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	// Accept either an exact food name or a chat message.
	rejected := req.Food
	if extracted, ok := swap.DetectRequest(req.Food); ok {
		rejected = extracted
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultSwapLimit
	}
	if limit > maxSwapLimit {
		limit = maxSwapLimit
	}

	// With a profile, results pass through the user's constraint graph and
	// get boosted by their active protocols.
	var graph *constraint.Graph
	var active []string
	if len(req.Profile) > 0 {
		parsed := profile.Parse(req.Profile)
		graph = constraint.NewGraph(parsed)
		active = graph.ActiveProtocols()
	}

	if _, ok := s.searcher.Resolve(rejected); !ok {
		return nil, domain.ErrFoodNotFound
	}

	results := s.searcher.Search(rejected, graph, active, limit)

	return &domain.SwapResponse{
		Rejected: rejected,
		Results:  results,
	}, nil
}
