package llm

import (
	"strings"
	"testing"

	"github.com/nourix/protocol-coach/internal/domain"
	"github.com/nourix/protocol-coach/internal/nutrition"
)

func veganProfile() *domain.ParsedProfile {
	hours := 4.0
	return &domain.ParsedProfile{
		Diet:                  domain.DietVegan,
		Allergens:             []domain.Allergen{domain.AllergenPeanuts},
		Goal:                  domain.GoalFatLoss,
		SleepQuality:          "poor",
		Budget:                "low",
		Kitchen:               "none",
		StressLevel:           9,
		EnergyLevel:           2,
		SleepHours:            &hours,
		ForbiddenFoodKeywords: []string{"beef", "chicken", "pork", "milk", "cheese", "eggs", "honey", "gelatin", "peanut", "peanut butter"},
	}
}

func TestConstraintBlock(t *testing.T) {
	block := ConstraintBlock(veganProfile(),
		[]string{"stress_protocol", "sleep_protocol"},
		[]string{"CRITICAL_STRESS"})

	wants := []string{
		"HARD USER CONSTRAINTS - ENFORCE BEFORE GENERATING ANYTHING",
		"DIET TYPE : VEGAN",
		"ALLERGENS : PEANUTS",
		"ABSOLUTE FOOD PROHIBITIONS",
		"CRITICAL STATES - ADDRESS THESE FIRST:",
		"    - CRITICAL_STRESS",
		"ACTIVE PROTOCOLS (priority order):",
		"stress_protocol, sleep_protocol",
		"goal=fat_loss | stress=9/10 | energy=2/10 | sleep=poor (4.0h)",
		"budget=low | kitchen=none",
	}
	for _, want := range wants {
		if !strings.Contains(block, want) {
			t.Errorf("constraint block missing %q\n%s", want, block)
		}
	}

	// Keywords are sorted and wrapped 8 per row.
	beefIdx := strings.Index(block, "beef")
	porkIdx := strings.Index(block, "pork")
	if beefIdx == -1 || porkIdx == -1 || beefIdx > porkIdx {
		t.Errorf("expected sorted prohibition keywords, got:\n%s", block)
	}
	if !strings.Contains(block, "    beef, cheese, chicken, eggs, gelatin, honey, milk, peanut\n") {
		t.Errorf("expected first prohibition row of 8, got:\n%s", block)
	}
	if !strings.Contains(block, "    peanut butter, pork\n") {
		t.Errorf("expected wrapped second prohibition row, got:\n%s", block)
	}
}

func TestConstraintBlock_NoAllergens(t *testing.T) {
	p := &domain.ParsedProfile{
		Diet:         domain.DietOmnivore,
		Goal:         domain.GoalMaintenance,
		SleepQuality: "good",
		Budget:       "moderate",
		Kitchen:      "full",
		StressLevel:  3,
		EnergyLevel:  7,
	}

	block := ConstraintBlock(p, nil, nil)

	if !strings.Contains(block, "ALLERGENS : none") {
		t.Errorf("expected none allergen line, got:\n%s", block)
	}
	if strings.Contains(block, "ABSOLUTE FOOD PROHIBITIONS") {
		t.Errorf("unexpected prohibitions section:\n%s", block)
	}
	if strings.Contains(block, "CRITICAL STATES") {
		t.Errorf("unexpected critical states section:\n%s", block)
	}
	// No sleep hours parsed: line ends at the quality word.
	if !strings.Contains(block, "sleep=good\n") {
		t.Errorf("expected sleep line without hours, got:\n%s", block)
	}
}

func TestPriorityBlock(t *testing.T) {
	prioritized := []domain.RankedProtocol{
		{Protocol: "stress_protocol", Score: 0.7225},
		{Protocol: "sleep_protocol", Score: 0.55},
		{Protocol: "gut_protocol", Score: 0.31},
	}
	targets := map[string]float64{
		"magnesium_mg":   420.0,
		"tryptophan_mg":  350.0,
		"vitamin_b12_ug": 2.4,
		"fiber_g":        38.0,
	}
	solve := &domain.SolveResult{
		Skipped: []domain.SkippedProtocol{
			{Protocol: "meal_prep_protocol", Reason: "requires kitchen access"},
		},
		Summary: "Budget tier: bare. Showing 4 of 6 protocols.",
	}

	block := PriorityBlock(prioritized, targets, solve)

	wants := []string{
		"PROTOCOL PRIORITY SCORES:",
		"   1. stress_protocol                    0.723  HIGH",
		"   2. sleep_protocol                     0.550  MODERATE",
		"   3. gut_protocol                       0.310  LOW",
		"CONSTRAINT-FILTERED (1 protocols):",
		"  - meal_prep_protocol: requires kitchen access",
		"DAILY NUTRIENT TARGETS (from active protocols):",
		"  - magnesium mg             -> 420.0mg",
		"  - vitamin b12 ug           -> 2.4ug",
		"  - fiber g                  -> 38.0g",
		"Budget tier: bare. Showing 4 of 6 protocols.",
	}
	for _, want := range wants {
		if !strings.Contains(block, want) {
			t.Errorf("priority block missing %q\n%s", want, block)
		}
	}

	// Targets render in sorted name order.
	if strings.Index(block, "fiber g") > strings.Index(block, "magnesium mg") {
		t.Errorf("expected sorted nutrient targets, got:\n%s", block)
	}
}

func TestPriorityBlock_CapsAtTen(t *testing.T) {
	prioritized := make([]domain.RankedProtocol, 0, 12)
	for _, name := range []string{
		"a_protocol", "b_protocol", "c_protocol", "d_protocol",
		"e_protocol", "f_protocol", "g_protocol", "h_protocol",
		"i_protocol", "j_protocol", "k_protocol", "l_protocol",
	} {
		prioritized = append(prioritized, domain.RankedProtocol{Protocol: name, Score: 0.5})
	}

	block := PriorityBlock(prioritized, nil, nil)

	if !strings.Contains(block, "  10. j_protocol") {
		t.Errorf("expected tenth row, got:\n%s", block)
	}
	if strings.Contains(block, "k_protocol") || strings.Contains(block, "l_protocol") {
		t.Errorf("expected cap at 10 rows, got:\n%s", block)
	}
}

func TestFoodContextBlock(t *testing.T) {
	index := nutrition.NewIndex([]*domain.Food{
		{Key: "pumpkin seeds", Name: "Pumpkin Seeds", Calories: 559, ProteinG: 30.2,
			FatG: 49.1, CarbsG: 10.7, FiberG: 6.0, MagnesiumMg: 592, ServingSize: "28 g",
			Tags: []string{"seeds", "vegan", "magnesium_rich", "stress_protocol"}},
		{Key: "lentils", Name: "Lentils", Calories: 116, ProteinG: 9.0, CarbsG: 20.1,
			FatG: 0.4, FiberG: 7.9, IronMg: 3.3, ServingSize: "130 g",
			Tags: []string{"legume", "vegan", "high_fiber", "gut_protocol", "energy_protocol"}},
		{Key: "chicken breast", Name: "Chicken Breast", Calories: 165, ProteinG: 31.0,
			ServingSize: "120 g",
			Tags: []string{"poultry", "high_protein", "stress_protocol"}},
	})

	block := FoodContextBlock(veganProfile(), index)

	wants := []string{
		"NUTRITION DATABASE (3 foods, scaled to real portions)",
		"DAILY NUTRIENT REFERENCE (for meal plan construction):",
		"Protein      deficient<40g  adequate=60g  optimal=80g",
		"Vitamin B12  deficient<1ug  adequate=1.8ug  optimal=2.4ug",
		"STRESS RELIEF (magnesium, complex carbs):",
		"ENERGY RESTORATION (iron, B12, B6):",
		"GUT HEALTH (high fiber):",
		// 28 g portion of pumpkin seeds, per-serving values.
		"Pumpkin Seeds (28g): 157 kcal | P:8.5g C:3.0g F:13.8g | Mg:165.8mg, Fiber:1.7g",
		"INSTRUCTIONS:",
	}
	for _, want := range wants {
		if !strings.Contains(block, want) {
			t.Errorf("food context missing %q\n%s", want, block)
		}
	}

	// The vegan forbidden set filters the chicken entry out of every section.
	if strings.Contains(block, "Chicken Breast") {
		t.Errorf("forbidden food leaked into the context:\n%s", block)
	}
}

func TestFoodContextBlock_NoIndex(t *testing.T) {
	if got := FoodContextBlock(veganProfile(), nil); got != "" {
		t.Errorf("expected empty block without an index, got:\n%s", got)
	}
	if got := FoodContextBlock(veganProfile(), nutrition.NewIndex(nil)); got != "" {
		t.Errorf("expected empty block for an empty index, got:\n%s", got)
	}
}

func TestSwapBlock(t *testing.T) {
	swaps := []domain.SwapResult{
		{
			Name:       "Chickpeas",
			FinalScore: 0.87,
			Why:        "similar fiber and iron, same gut protocol",
			Record: &domain.Food{
				Name: "Chickpeas", Calories: 164,
				ProteinG: 8.9, CarbsG: 27.4, FatG: 2.6, FiberG: 7.6,
			},
		},
		{
			Name:       "Black Beans",
			FinalScore: 0.81,
			Why:        "close macro profile",
			Record: &domain.Food{
				Name: "Black Beans", Calories: 132,
				ProteinG: 8.9, CarbsG: 23.7, FatG: 0.5, FiberG: 8.7,
			},
		},
	}

	block := SwapBlock("lentils", swaps, veganProfile())

	wants := []string{
		`MEAL SWAP: "lentils" -> top substitutes`,
		"Filtered for: vegan | allergen-free: peanuts",
		"1. Chickpeas  [87% match]",
		"164 kcal | P8.9g C27.4g F2.6g Fb7.6g",
		"Why: similar fiber and iron, same gut protocol",
		"2. Black Beans  [81% match]",
		"INSTRUCTION: present these options",
	}
	for _, want := range wants {
		if !strings.Contains(block, want) {
			t.Errorf("swap block missing %q\n%s", want, block)
		}
	}
}

func TestSwapBlock_NoCandidates(t *testing.T) {
	block := SwapBlock("lentils", nil, veganProfile())

	if !strings.Contains(block, `no suitable substitute found for "lentils" (within vegan constraints)`) {
		t.Errorf("expected no-candidate message, got:\n%s", block)
	}
	if !strings.Contains(block, "Ask the user what macros or protocols they want to preserve") {
		t.Errorf("expected follow-up instruction, got:\n%s", block)
	}

	// Without a profile the constraint note is dropped.
	block = SwapBlock("lentils", nil, nil)
	if strings.Contains(block, "within") {
		t.Errorf("unexpected constraint note without profile:\n%s", block)
	}
}
