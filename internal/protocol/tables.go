package protocol

import "github.com/nourix/protocol-coach/internal/domain"

// BaseWeights reflects general clinical importance per protocol. The
// feedback loop nudges a per-user copy of these; the base table itself is
// never mutated.
var BaseWeights = map[string]float64{
	"sleep_protocol":             0.90,
	"stress_protocol":            0.85,
	"energy_protocol":            0.80,
	"mood_protocol":              0.75,
	"cognitive_protocol":         0.72,
	"gut_protocol":               0.70,
	"hydration_protocol":         0.70,
	"immune_protocol":            0.65,
	"blood_sugar_protocol":       0.65,
	"heart_protocol":             0.65,
	"anti_inflammatory_protocol": 0.65,
	"electrolyte_protocol":       0.65,
	"b_complex_protocol":         0.65,
	"omega_protocol":             0.62,
	"recovery_protocol":          0.62,
	"performance_protocol":       0.60,
	"muscle_protocol":            0.60,
	"thyroid_protocol":           0.58,
	"zinc_protocol":              0.55,
	"vitamin_c_protocol":         0.55,
	"fat_loss_protocol":          0.55,
	"antioxidant_protocol":       0.55,
	"hormone_protocol":           0.55,
	"probiotic_protocol":         0.55,
	"bone_protocol":              0.50,
	"liver_protocol":             0.50,
	"detox_protocol":             0.48,
	"vision_protocol":            0.42,
	"skin_protocol":              0.40,
	"collagen_protocol":          0.40,
}

const defaultAlignmentKey = "DEFAULT"

// goalAlignment scores how well each protocol supports each goal (0-1).
// The DEFAULT entry applies to any protocol not explicitly listed.
var goalAlignment = map[string]map[string]float64{
	string(domain.GoalFatLoss): {
		"fat_loss_protocol":          1.00,
		"blood_sugar_protocol":       0.90,
		"gut_protocol":               0.75,
		"energy_protocol":            0.80,
		"sleep_protocol":             0.85,
		"stress_protocol":            0.85,
		"anti_inflammatory_protocol": 0.70,
		"hydration_protocol":         0.80,
		"probiotic_protocol":         0.65,
		"muscle_protocol":            0.50,
		"heart_protocol":             0.65,
		"mood_protocol":              0.70,
		"cognitive_protocol":         0.65,
		defaultAlignmentKey:          0.50,
	},
	string(domain.GoalMuscleGain): {
		"muscle_protocol":      1.00,
		"recovery_protocol":    0.95,
		"performance_protocol": 0.90,
		"energy_protocol":      0.85,
		"sleep_protocol":       0.85,
		"b_complex_protocol":   0.75,
		"zinc_protocol":        0.80,
		"electrolyte_protocol": 0.75,
		"fat_loss_protocol":    0.35,
		"blood_sugar_protocol": 0.70,
		"stress_protocol":      0.75,
		"mood_protocol":        0.65,
		defaultAlignmentKey:    0.55,
	},
	string(domain.GoalMaintenance): {
		"gut_protocol":               0.80,
		"immune_protocol":            0.80,
		"heart_protocol":             0.80,
		"sleep_protocol":             0.80,
		"stress_protocol":            0.80,
		"mood_protocol":              0.75,
		"cognitive_protocol":         0.75,
		"hydration_protocol":         0.75,
		"anti_inflammatory_protocol": 0.75,
		"blood_sugar_protocol":       0.70,
		defaultAlignmentKey:          0.65,
	},
	string(domain.GoalGeneralHealth): {
		"immune_protocol":            0.90,
		"gut_protocol":               0.88,
		"anti_inflammatory_protocol": 0.85,
		"sleep_protocol":             0.85,
		"stress_protocol":            0.85,
		"heart_protocol":             0.82,
		"mood_protocol":              0.80,
		"cognitive_protocol":         0.80,
		"antioxidant_protocol":       0.78,
		"hydration_protocol":         0.78,
		defaultAlignmentKey:          0.70,
	},
}

// conflicts lists protocol pairs that should not both be pushed at high
// priority (surplus vs deficit, rest vs stimulate, and so on).
var conflicts = [][2]string{
	{"fat_loss_protocol", "muscle_protocol"},
	{"detox_protocol", "muscle_protocol"},
	{"sleep_protocol", "performance_protocol"},
}

// NutrientTarget is one (nutrient, daily target) pair for a protocol.
// Targets are in the nutrient's native unit; keys match the threshold
// table in the nutrition package.
type NutrientTarget struct {
	Nutrient string
	Target   float64
}

var nutrientTargets = map[string][]NutrientTarget{
	"sleep_protocol":             {{"tryptophan_mg", 350}, {"magnesium_mg", 420}, {"calcium_mg", 1000}},
	"stress_protocol":            {{"magnesium_mg", 420}, {"vitamin_b6_mg", 1.3}, {"vitamin_c_mg", 90}},
	"energy_protocol":            {{"iron_mg", 18}, {"vitamin_b12_ug", 2.4}, {"vitamin_b6_mg", 1.3}},
	"mood_protocol":              {{"tryptophan_mg", 350}, {"vitamin_d_ug", 15}, {"vitamin_b12_ug", 2.4}},
	"cognitive_protocol":         {{"choline_mg", 550}, {"vitamin_b12_ug", 2.4}, {"zinc_mg", 11}},
	"gut_protocol":               {{"fiber_g", 38}, {"magnesium_mg", 320}},
	"immune_protocol":            {{"vitamin_c_mg", 90}, {"zinc_mg", 11}, {"vitamin_d_ug", 15}},
	"blood_sugar_protocol":       {{"fiber_g", 38}, {"magnesium_mg", 320}, {"vitamin_b6_mg", 1.3}},
	"muscle_protocol":            {{"protein_g", 80}, {"calcium_mg", 1000}, {"zinc_mg", 11}},
	"recovery_protocol":          {{"protein_g", 80}, {"magnesium_mg", 420}, {"vitamin_c_mg", 90}},
	"heart_protocol":             {{"potassium_mg", 4700}, {"fiber_g", 38}, {"magnesium_mg", 420}},
	"anti_inflammatory_protocol": {{"vitamin_c_mg", 90}, {"magnesium_mg", 420}},
	"electrolyte_protocol":       {{"sodium_mg", 1500}, {"potassium_mg", 4700}, {"magnesium_mg", 420}},
	"b_complex_protocol":         {{"vitamin_b12_ug", 2.4}, {"vitamin_b6_mg", 1.3}, {"choline_mg", 550}},
	"bone_protocol":              {{"calcium_mg", 1000}, {"vitamin_d_ug", 15}, {"magnesium_mg", 420}},
	"fat_loss_protocol":          {{"protein_g", 80}, {"fiber_g", 38}},
	"hydration_protocol":         {{"potassium_mg", 4700}, {"sodium_mg", 1500}},
	"zinc_protocol":              {{"zinc_mg", 11}},
	"vitamin_c_protocol":         {{"vitamin_c_mg", 90}},
	"omega_protocol":             {}, // tracked as food type, not isolated nutrient
	"probiotic_protocol":         {}, // tracked as food type
	"thyroid_protocol":           {{"zinc_mg", 11}, {"iron_mg", 18}},
	"performance_protocol":       {{"protein_g", 80}, {"iron_mg", 18}},
	"hormone_protocol":           {{"zinc_mg", 11}, {"vitamin_d_ug", 15}, {"choline_mg", 550}},
	"antioxidant_protocol":       {{"vitamin_c_mg", 90}},
	"liver_protocol":             {{"choline_mg", 550}, {"vitamin_b6_mg", 1.3}},
	"detox_protocol":             {{"fiber_g", 38}, {"vitamin_c_mg", 90}},
	"vision_protocol":            {},
	"skin_protocol":              {{"vitamin_c_mg", 90}, {"zinc_mg", 11}},
	"collagen_protocol":          {{"vitamin_c_mg", 90}, {"protein_g", 80}},
}
