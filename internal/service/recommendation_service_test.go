package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/nourix/protocol-coach/internal/domain"
	"github.com/nourix/protocol-coach/internal/feedback"
	"github.com/nourix/protocol-coach/internal/nutrition"
)

func burnoutProfile() map[string]string {
	return map[string]string{
		"name":           "Jamie",
		"goal":           "fat loss",
		"diet_type":      "vegan",
		"budget":         "low",
		"cooking_access": "none",
		"sleep_schedule": "2am to 6am",
		"stress_level":   "9",
		"energy_level":   "2",
		"sleep_quality":  "poor",
	}
}

func newRecommendationFixture(t *testing.T) (RecommendationService, *MockUserRepository, *domain.User) {
	t.Helper()
	repo := NewMockUserRepository()
	user := &domain.User{ID: uuid.New(), Name: "Jamie"}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	learner := feedback.NewLearner(NewMockWeightsStore(), 0)
	return NewRecommendationService(repo, learner, nil, nil), repo, user
}

func testFoodIndex() *nutrition.Index {
	return nutrition.NewIndex([]*domain.Food{
		{Key: "pumpkin seeds", Name: "Pumpkin Seeds", Calories: 559, ProteinG: 30.2,
			MagnesiumMg: 592, ServingSize: "28 g",
			Tags: []string{"seeds", "vegan", "magnesium_rich", "stress_protocol"}},
		{Key: "lentils", Name: "Lentils", Calories: 116, ProteinG: 9.0, FiberG: 7.9,
			IronMg: 3.3, ServingSize: "130 g",
			Tags: []string{"legume", "vegan", "high_fiber", "gut_protocol", "energy_protocol"}},
		{Key: "chicken breast", Name: "Chicken Breast", Calories: 165, ProteinG: 31.0,
			ServingSize: "120 g",
			Tags: []string{"poultry", "high_protein", "stress_protocol"}},
	})
}

func TestRecommendationService_Recommend(t *testing.T) {
	svc, _, user := newRecommendationFixture(t)

	resp, err := svc.Recommend(context.Background(), user.ID, &domain.RecommendationRequest{
		Profile: burnoutProfile(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Protocols) == 0 {
		t.Fatal("expected feasible protocols")
	}
	for i := 1; i < len(resp.Protocols); i++ {
		if resp.Protocols[i].Score > resp.Protocols[i-1].Score {
			t.Fatalf("protocols not sorted descending at %d: %+v", i, resp.Protocols)
		}
	}

	found := false
	for _, p := range resp.Protocols {
		if p.Protocol == "stress_protocol" {
			found = true
			if p.Score < 0.5 {
				t.Errorf("stress_protocol score = %.4f, expected high priority", p.Score)
			}
		}
	}
	if !found {
		t.Error("expected stress_protocol among feasible protocols for stress 9/10")
	}

	// Stress 9 + energy 2 leaves mental energy 3, which caps the plan at 4.
	if resp.Constraints.MaxProtocols != 4 {
		t.Errorf("MaxProtocols = %d, want 4", resp.Constraints.MaxProtocols)
	}
	if resp.Constraints.TimeTier != "tight" {
		t.Errorf("TimeTier = %q, want %q", resp.Constraints.TimeTier, "tight")
	}
	if resp.Constraints.BudgetTier != "bare" {
		t.Errorf("BudgetTier = %q, want %q", resp.Constraints.BudgetTier, "bare")
	}

	if len(resp.NutrientTargets) == 0 {
		t.Error("expected nutrient targets")
	}
	if _, ok := resp.NutrientTargets["magnesium_mg"]; !ok {
		t.Error("expected a magnesium target from the stress protocol")
	}

	var flags []string
	flags = append(flags, resp.CriticalFlags...)
	joined := strings.Join(flags, " | ")
	if !strings.Contains(joined, "CRITICAL_STRESS") {
		t.Errorf("critical flags missing CRITICAL_STRESS: %v", flags)
	}
	if !strings.Contains(joined, "BURNOUT_IMMINENT") {
		t.Errorf("critical flags missing BURNOUT_IMMINENT: %v", flags)
	}

	// Profile echo carries the vegan forbidden set written by the graph.
	if len(resp.Profile.ForbiddenFoodKeywords) == 0 {
		t.Error("expected forbidden food keywords on the profile echo")
	}
	if resp.Explanation != "" {
		t.Errorf("expected no explanation without a coach, got %q", resp.Explanation)
	}
}

func TestRecommendationService_UserNotFound(t *testing.T) {
	svc, _, _ := newRecommendationFixture(t)

	_, err := svc.Recommend(context.Background(), uuid.New(), &domain.RecommendationRequest{
		Profile: burnoutProfile(),
	})
	if err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRecommendationService_Explain(t *testing.T) {
	repo := NewMockUserRepository()
	user := &domain.User{ID: uuid.New(), Name: "Jamie"}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	coach := &MockCoach{response: "Focus on stress first."}
	learner := feedback.NewLearner(NewMockWeightsStore(), 0)
	svc := NewRecommendationService(repo, learner, coach, testFoodIndex())

	resp, err := svc.Recommend(context.Background(), user.ID, &domain.RecommendationRequest{
		Profile: burnoutProfile(),
		Explain: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Explanation != "Focus on stress first." {
		t.Errorf("Explanation = %q", resp.Explanation)
	}
	if !strings.Contains(coach.lastContext, "HARD USER CONSTRAINTS") {
		t.Error("coach context missing the constraint block")
	}
	if !strings.Contains(coach.lastContext, "PROTOCOL PRIORITY SCORES") {
		t.Error("coach context missing the priority block")
	}
	if !strings.Contains(coach.lastContext, "NUTRITION DATABASE") {
		t.Error("coach context missing the food context block")
	}
	if !strings.Contains(coach.lastContext, "Pumpkin Seeds") {
		t.Error("food context missing stress-protocol food")
	}
	// Vegan profile: the chicken entry must be filtered out of the context.
	if strings.Contains(coach.lastContext, "Chicken Breast") {
		t.Error("food context leaked a forbidden food past the vegan constraint")
	}
}

func TestRecommendationService_ExplainWithoutIndex(t *testing.T) {
	repo := NewMockUserRepository()
	user := &domain.User{ID: uuid.New(), Name: "Jamie"}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	coach := &MockCoach{response: "ok"}
	learner := feedback.NewLearner(NewMockWeightsStore(), 0)
	svc := NewRecommendationService(repo, learner, coach, nil)

	_, err := svc.Recommend(context.Background(), user.ID, &domain.RecommendationRequest{
		Profile: burnoutProfile(),
		Explain: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(coach.lastContext, "NUTRITION DATABASE") {
		t.Error("expected no food context block without an index")
	}
}

func TestRecommendationService_CoachFailureDegrades(t *testing.T) {
	repo := NewMockUserRepository()
	user := &domain.User{ID: uuid.New(), Name: "Jamie"}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	coach := &MockCoach{err: context.DeadlineExceeded}
	learner := feedback.NewLearner(NewMockWeightsStore(), 0)
	svc := NewRecommendationService(repo, learner, coach, nil)

	resp, err := svc.Recommend(context.Background(), user.ID, &domain.RecommendationRequest{
		Profile: burnoutProfile(),
		Explain: true,
	})
	if err != nil {
		t.Fatalf("expected plan despite coach failure, got %v", err)
	}
	if resp.Explanation != "" {
		t.Errorf("expected empty explanation, got %q", resp.Explanation)
	}
	if len(resp.Protocols) == 0 {
		t.Error("expected feasible protocols despite coach failure")
	}
}
