package constraint

import (
	"strings"
	"testing"

	"github.com/nourix/protocol-coach/internal/domain"
)

func TestBuildConstraints_Defaults(t *testing.T) {
	cs := BuildConstraints(map[string]string{})

	if cs.TimeMinutes != 30 {
		t.Errorf("TimeMinutes = %d, want 30", cs.TimeMinutes)
	}
	if cs.BudgetDaily != 15.0 {
		t.Errorf("BudgetDaily = %v, want 15", cs.BudgetDaily)
	}
	if cs.KitchenLevel != "shared kitchen" {
		t.Errorf("KitchenLevel = %q, want shared kitchen", cs.KitchenLevel)
	}
	if cs.MentalEnergy != 10 {
		t.Errorf("MentalEnergy = %d, want 10 (stress 5, energy 5)", cs.MentalEnergy)
	}
	if len(cs.DietaryRestrictions) != 0 || len(cs.Allergies) != 0 {
		t.Errorf("expected empty restriction lists, got %v / %v", cs.DietaryRestrictions, cs.Allergies)
	}
}

func TestBuildConstraints_BudgetMap(t *testing.T) {
	tests := []struct {
		budget string
		want   float64
	}{
		{"low", 8.0},
		{"medium", 15.0},
		{"flexible", 30.0},
		{"whatever", 15.0},
		{"", 15.0},
	}
	for _, tt := range tests {
		cs := BuildConstraints(map[string]string{"budget": tt.budget})
		if cs.BudgetDaily != tt.want {
			t.Errorf("budget %q → %v, want %v", tt.budget, cs.BudgetDaily, tt.want)
		}
	}
}

func TestBuildConstraints_TimeHeuristic(t *testing.T) {
	tests := []struct {
		name    string
		profile map[string]string
		want    int
	}{
		{"no schedule info", map[string]string{}, 30},
		{"early waker", map[string]string{"sleep_schedule": "11pm to 6am"}, 15},
		{"early class only", map[string]string{"class_schedule": "9am lectures"}, 20},
		{"early waker with early class", map[string]string{
			"sleep_schedule": "11pm to 7am",
			"class_schedule": "8am to 5pm",
		}, 10},
		{"noon class keeps default", map[string]string{"class_schedule": "12pm seminar"}, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := BuildConstraints(tt.profile)
			if cs.TimeMinutes != tt.want {
				t.Errorf("TimeMinutes = %d, want %d", cs.TimeMinutes, tt.want)
			}
		})
	}
}

func TestBuildConstraints_MentalEnergy(t *testing.T) {
	tests := []struct {
		stress, energy string
		want           int
	}{
		{"5", "5", 10},  // no load
		{"8", "5", 7},   // stress eats 3
		{"5", "2", 7},   // low energy eats 3
		{"9", "2", 3},   // 10 - 4 - 3
		{"10", "1", 1},  // floors at 1
		{"junk", "", 10}, // unparsable falls back to 5/5
	}
	for _, tt := range tests {
		cs := BuildConstraints(map[string]string{
			"stress_level": tt.stress,
			"energy_level": tt.energy,
		})
		if cs.MentalEnergy != tt.want {
			t.Errorf("stress=%s energy=%s → mental energy %d, want %d",
				tt.stress, tt.energy, cs.MentalEnergy, tt.want)
		}
	}
}

func TestBuildConstraints_RestrictionsAndAllergies(t *testing.T) {
	cs := BuildConstraints(map[string]string{
		"diet_type": "Vegan",
		"allergies": "Peanuts, soy; shellfish",
	})
	if len(cs.DietaryRestrictions) != 1 || cs.DietaryRestrictions[0] != "vegan" {
		t.Errorf("restrictions = %v, want [vegan]", cs.DietaryRestrictions)
	}
	want := []string{"peanuts", "soy", "shellfish"}
	if len(cs.Allergies) != len(want) {
		t.Fatalf("allergies = %v, want %v", cs.Allergies, want)
	}
	for i := range want {
		if cs.Allergies[i] != want[i] {
			t.Errorf("allergy[%d] = %q, want %q", i, cs.Allergies[i], want[i])
		}
	}

	// keto is not a hard restriction for protocol filtering
	cs = BuildConstraints(map[string]string{"diet_type": "keto", "allergies": "none"})
	if len(cs.DietaryRestrictions) != 0 {
		t.Errorf("keto should not add a restriction, got %v", cs.DietaryRestrictions)
	}
	if len(cs.Allergies) != 0 {
		t.Errorf("\"none\" should yield no allergies, got %v", cs.Allergies)
	}
}

func ranked(protos ...string) []domain.RankedProtocol {
	out := make([]domain.RankedProtocol, len(protos))
	for i, p := range protos {
		out[i] = domain.RankedProtocol{Protocol: p, Score: 1.0 - float64(i)*0.05}
	}
	return out
}

func TestSolve_Tiers(t *testing.T) {
	tests := []struct {
		time       int
		budget     float64
		timeTier   string
		budgetTier string
	}{
		{10, 8, "urgent", "bare"},
		{15, 12, "tight", "tight"},
		{30, 15, "moderate", "moderate"},
		{60, 30, "comfortable", "flexible"},
	}
	for _, tt := range tests {
		res := Solve(nil, domain.ConstraintSet{
			TimeMinutes: tt.time, BudgetDaily: tt.budget,
			KitchenLevel: "full", MentalEnergy: 8,
		})
		if res.TimeTier != tt.timeTier {
			t.Errorf("time %d → tier %q, want %q", tt.time, res.TimeTier, tt.timeTier)
		}
		if res.BudgetTier != tt.budgetTier {
			t.Errorf("budget %v → tier %q, want %q", tt.budget, res.BudgetTier, tt.budgetTier)
		}
	}
}

func TestSolve_MentalEnergyCap(t *testing.T) {
	protos := ranked(
		"sleep_protocol", "stress_protocol", "energy_protocol", "mood_protocol",
		"gut_protocol", "immune_protocol", "heart_protocol", "omega_protocol",
	)
	res := Solve(protos, domain.ConstraintSet{
		TimeMinutes: 30, BudgetDaily: 15, KitchenLevel: "full", MentalEnergy: 2,
	})

	if res.MaxProtocols != 4 {
		t.Fatalf("MaxProtocols = %d, want 4", res.MaxProtocols)
	}
	if len(res.Feasible) != 4 {
		t.Errorf("feasible = %d protocols, want 4", len(res.Feasible))
	}
	if len(res.Skipped) != 4 {
		t.Fatalf("skipped = %d protocols, want 4", len(res.Skipped))
	}
	for _, s := range res.Skipped {
		if !strings.Contains(s.Reason, "mental energy cap") {
			t.Errorf("skip reason %q should mention mental energy cap", s.Reason)
		}
	}
}

func TestSolve_VeganIncompatible(t *testing.T) {
	protos := ranked("sleep_protocol", "collagen_protocol", "gut_protocol")
	res := Solve(protos, domain.ConstraintSet{
		TimeMinutes: 30, BudgetDaily: 15, KitchenLevel: "full",
		MentalEnergy: 8, DietaryRestrictions: []string{"vegan"},
	})

	for _, rp := range res.Feasible {
		if rp.Protocol == "collagen_protocol" {
			t.Fatal("collagen_protocol must be skipped for vegans")
		}
	}
	found := false
	for _, s := range res.Skipped {
		if s.Protocol == "collagen_protocol" && s.Reason == "dietary restriction: vegan" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected vegan skip reason, got %v", res.Skipped)
	}
}

func TestSolve_NoKitchenDropsCookingProtocols(t *testing.T) {
	protos := ranked("sleep_protocol", "muscle_protocol", "recovery_protocol", "gut_protocol")
	res := Solve(protos, domain.ConstraintSet{
		TimeMinutes: 30, BudgetDaily: 15, KitchenLevel: "none", MentalEnergy: 8,
	})

	if len(res.Feasible) != 2 {
		t.Fatalf("feasible = %v, want sleep + gut only", res.Feasible)
	}
	if len(res.Skipped) != 2 {
		t.Fatalf("skipped = %v, want muscle + recovery", res.Skipped)
	}
	for _, s := range res.Skipped {
		if s.Reason != "no kitchen - requires cooking equipment" {
			t.Errorf("skip reason = %q", s.Reason)
		}
	}
}

func TestSolve_SummaryMentionsConstraints(t *testing.T) {
	res := Solve(ranked("sleep_protocol"), domain.ConstraintSet{
		TimeMinutes: 15, BudgetDaily: 8, KitchenLevel: "shared",
		MentalEnergy: 6, Allergies: []string{"peanuts"},
	})
	for _, want := range []string{"15min", "tight", "$8/day", "bare", "peanuts"} {
		if !strings.Contains(res.Summary, want) {
			t.Errorf("summary missing %q:\n%s", want, res.Summary)
		}
	}
}
