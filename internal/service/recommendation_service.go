package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"github.com/nourix/protocol-coach/internal/constraint"
	"github.com/nourix/protocol-coach/internal/domain"
	"github.com/nourix/protocol-coach/internal/feedback"
	"github.com/nourix/protocol-coach/internal/llm"
	"github.com/nourix/protocol-coach/internal/nutrition"
	"github.com/nourix/protocol-coach/internal/profile"
	"github.com/nourix/protocol-coach/internal/protocol"
	"github.com/nourix/protocol-coach/internal/repository"
	"github.com/nourix/protocol-coach/internal/state"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// nutrientTargetTopN caps how many ranked protocols contribute nutrient
// targets.
const nutrientTargetTopN = 10

// RecommendationService runs the full decision pipeline for one profile.
type RecommendationService interface {
	Recommend(ctx context.Context, userID uuid.UUID, req *domain.RecommendationRequest) (*domain.RecommendationResponse, error)
}

type recommendationService struct {
	userRepo repository.UserRepository
	learner  *feedback.Learner
	coach    llm.CoachLLM
	index    *nutrition.Index
}

// NewRecommendationService wires the pipeline. coach may be nil; the
// explanation step is then skipped. index may be nil; the coach context
// then omits the food database section.
func NewRecommendationService(userRepo repository.UserRepository, learner *feedback.Learner, coach llm.CoachLLM, index *nutrition.Index) RecommendationService {
	return &recommendationService{
		userRepo: userRepo,
		learner:  learner,
		coach:    coach,
		index:    index,
	}
}

func (s *recommendationService) Recommend(ctx context.Context, userID uuid.UUID, req *domain.RecommendationRequest) (*domain.RecommendationResponse, error) {
	tracer := otel.Tracer("protocol-coach-api/recommendation")
	ctx, span := tracer.Start(ctx, "RecommendationService.Recommend",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.Bool("request.explain", req.Explain),
		),
	)
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Attach input payload for Langfuse
	if inputJSON, err := json.Marshal(req.Profile); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	// Stage 1: ontology parse + constraint graph. NewGraph writes the
	// forbidden sets back into the parsed profile.
	parsed := profile.Parse(req.Profile)
	graph := constraint.NewGraph(parsed)

	// Stage 2: behavioral state, independent of the graph.
	st := state.Analyze(req.Profile)
	severity := state.MapToProtocols(&st)

	// Stage 3: prioritize with the user's learned weights.
	learned, err := s.learner.Weights(ctx, user.WeightsKey())
	if err != nil {
		return nil, err
	}
	prioritized := protocol.Prioritize(severity, st.Goals, learned)

	// Stage 4: real-world constraint solving.
	cs := constraint.BuildConstraints(req.Profile)
	solve := constraint.Solve(prioritized, cs)

	// Stage 5: nutrient targets from the top-ranked protocols.
	topActive := make(map[string]float64, nutrientTargetTopN)
	for i, p := range prioritized {
		if i == nutrientTargetTopN {
			break
		}
		topActive[p.Protocol] = p.Score
	}
	targets := protocol.NutrientTargets(topActive)

	flags := append(graph.CriticalFlags(), st.ComputedFlags...)

	span.SetAttributes(
		attribute.Int("protocols.active", len(severity)),
		attribute.Int("protocols.feasible", len(solve.Feasible)),
		attribute.Int("protocols.skipped", len(solve.Skipped)),
		attribute.String("profile.summary", parsed.Summary()),
	)

	resp := &domain.RecommendationResponse{
		Profile:         *parsed,
		Protocols:       solve.Feasible,
		NutrientTargets: targets,
		Constraints: domain.ConstraintSummaryResponse{
			TimeTier:     solve.TimeTier,
			BudgetTier:   solve.BudgetTier,
			MaxProtocols: solve.MaxProtocols,
			Skipped:      solve.Skipped,
			Summary:      solve.Summary,
		},
		CriticalFlags: flags,
	}

	if req.Explain && s.coach != nil {
		planContext := llm.ConstraintBlock(parsed, graph.ActiveProtocols(), flags) +
			"\n\n" + llm.PriorityBlock(prioritized, targets, &solve)
		if foodContext := llm.FoodContextBlock(parsed, s.index); foodContext != "" {
			planContext += "\n\n" + foodContext
		}
		explanation, err := s.coach.Explain(ctx, planContext)
		if err != nil {
			// The plan itself is deterministic and complete; a coach
			// failure degrades to a plan without prose.
			log.Printf("[recommendation] coach explanation unavailable: %v", err)
		} else {
			resp.Explanation = explanation
		}
	}

	if spanCtx := span.SpanContext(); spanCtx.IsValid() {
		resp.TraceID = spanCtx.TraceID().String()
	}

	// Attach output payload for Langfuse
	if outputJSON, err := json.Marshal(resp.Protocols); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return resp, nil
}
