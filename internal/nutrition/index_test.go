package nutrition

import (
	"testing"

	"github.com/nourix/protocol-coach/internal/domain"
)

func testFoods() []*domain.Food {
	return []*domain.Food{
		{Name: "Lentils", Calories: 116, ProteinG: 9.0, CarbsG: 20.1, FiberG: 7.9,
			IronMg: 3.3, MagnesiumMg: 36, Tags: []string{"high_fiber", "iron_rich", "gut_protocol"}},
		{Name: "Chickpeas", Calories: 164, ProteinG: 8.9, CarbsG: 27.4, FiberG: 7.6,
			IronMg: 2.9, MagnesiumMg: 48, Tags: []string{"high_fiber", "gut_protocol"}},
		{Name: "Greek Yogurt", Calories: 59, ProteinG: 10.2, CarbsG: 3.6,
			CalciumMg: 110, Tags: []string{"high_protein", "calcium_rich"}},
		{Name: "Almonds", Calories: 579, ProteinG: 21.2, FatG: 49.9, FiberG: 12.5,
			MagnesiumMg: 270, Tags: []string{"magnesium_rich", "stress_protocol"}},
		{Name: "Salmon Fillet", Calories: 208, ProteinG: 20.4, FatG: 13.4,
			VitaminB12Ug: 3.2, Tags: []string{"high_protein", "b12_rich", "energy_protocol"}},
	}
}

func TestIndex_Lookup(t *testing.T) {
	idx := NewIndex(testFoods())

	if idx.Len() != 5 {
		t.Fatalf("Len = %d, want 5", idx.Len())
	}
	f, ok := idx.Lookup("  Greek Yogurt ")
	if !ok || f.Name != "Greek Yogurt" {
		t.Errorf("Lookup failed: %v %v", f, ok)
	}
	if _, ok := idx.Lookup("pizza"); ok {
		t.Error("Lookup(pizza) should miss")
	}
}

func TestIndex_FuzzySearch(t *testing.T) {
	idx := NewIndex(testFoods())

	got := idx.FuzzySearch("lentil", 3)
	if len(got) == 0 || got[0].Name != "Lentils" {
		t.Fatalf("FuzzySearch(lentil) = %v, want Lentils first", got)
	}

	got = idx.FuzzySearch("almnods", 3) // transposition still matches
	found := false
	for _, f := range got {
		if f.Name == "Almonds" {
			found = true
		}
	}
	if !found {
		t.Errorf("FuzzySearch(almnods) = %v, want Almonds included", got)
	}

	if got := idx.FuzzySearch("zzzzqqqq", 3); len(got) != 0 {
		t.Errorf("nonsense query matched %v", got)
	}
}

func TestIndex_SearchByKeyword(t *testing.T) {
	idx := NewIndex(testFoods())

	got := idx.SearchByKeyword("yogurt", 10)
	if len(got) != 1 || got[0].Name != "Greek Yogurt" {
		t.Errorf("keyword search = %v", got)
	}
	if got := idx.SearchByKeyword("salmon", 10); len(got) != 1 {
		t.Errorf("keyword salmon = %v, want 1 hit", got)
	}
}

func TestIndex_ProtocolFoods(t *testing.T) {
	idx := NewIndex(testFoods())

	got := idx.ProtocolFoods("gut", 10)
	if len(got) != 2 {
		t.Fatalf("gut foods = %v, want 2", got)
	}
	// sorted by key: chickpeas before lentils
	if got[0].Name != "Chickpeas" || got[1].Name != "Lentils" {
		t.Errorf("gut foods order = [%s, %s]", got[0].Name, got[1].Name)
	}

	// full protocol name works without the alias table
	if got := idx.ProtocolFoods("stress_protocol", 10); len(got) != 1 || got[0].Name != "Almonds" {
		t.Errorf("stress foods = %v", got)
	}

	// rich-tag aliases
	if got := idx.ProtocolFoods("b12", 10); len(got) != 1 || got[0].Name != "Salmon Fillet" {
		t.Errorf("b12 foods = %v", got)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		key   string
		value float64
		want  NutrientStatus
	}{
		{"protein_g", 30, StatusDeficient},
		{"protein_g", 40, StatusDeficient}, // boundary is inclusive
		{"protein_g", 55, StatusAdequate},
		{"protein_g", 75, StatusOptimal},
		{"protein_g", 250, StatusExcessive},
		{"magnesium_mg", 420, StatusOptimal},
		{"magnesium_mg", 421, StatusExcessive},
		{"made_up_nutrient", 100, StatusUnknown},
	}
	for _, tt := range tests {
		if got := Classify(tt.key, tt.value); got != tt.want {
			t.Errorf("Classify(%s, %v) = %s, want %s", tt.key, tt.value, got, tt.want)
		}
	}
}

func TestPercentOfOptimal(t *testing.T) {
	if got := PercentOfOptimal("protein_g", 40); got != 0.5 {
		t.Errorf("40g protein = %v of optimal, want 0.5", got)
	}
	if got := PercentOfOptimal("protein_g", 100); got != 1.25 {
		t.Errorf("100g protein = %v of optimal, want 1.25", got)
	}
	if got := PercentOfOptimal("nope", 50); got != 0 {
		t.Errorf("unknown nutrient = %v, want 0", got)
	}
}

func TestParseServingGrams(t *testing.T) {
	tests := []struct {
		serving string
		name    string
		want    float64
	}{
		{"1 cup (240 g)", "", 240},
		{"100 g", "", 100},
		{"100g", "", 100},
		{"3 oz (85g)", "", 85},
		{"about 90 grams", "", 90},
		{"", "Chicken Breast", 120},
		{"", "Banana", 118},
		{"", "Dragon Fruit", 150}, // default
		{"half a plate", "Mystery Stew", 150},
	}
	for _, tt := range tests {
		if got := ParseServingGrams(tt.serving, tt.name); got != tt.want {
			t.Errorf("ParseServingGrams(%q, %q) = %v, want %v", tt.serving, tt.name, got, tt.want)
		}
	}
}

func TestScaleToPortion(t *testing.T) {
	f := &domain.Food{
		Name: "Oats", Calories: 389, ProteinG: 16.9, FiberG: 10.6,
		ServingSize: "40 g", Tags: []string{"high_fiber"},
	}
	got := ScaleToPortion(f, 0)

	if got.PortionG != 40 {
		t.Fatalf("PortionG = %v, want 40", got.PortionG)
	}
	if got.ScaleFactor != 0.4 {
		t.Errorf("ScaleFactor = %v, want 0.4", got.ScaleFactor)
	}
	if got.Nutrients["calories"] != 155.6 {
		t.Errorf("calories = %v, want 155.6", got.Nutrients["calories"])
	}
	if got.Nutrients["protein_g"] != 6.76 {
		t.Errorf("protein = %v, want 6.76", got.Nutrients["protein_g"])
	}

	// explicit portion overrides serving size
	got = ScaleToPortion(f, 100)
	if got.ScaleFactor != 1.0 || got.Nutrients["calories"] != 389 {
		t.Errorf("100g portion should be identity, got %+v", got)
	}
}
