package nutrition

import "math"

// NutrientStatus classifies a daily intake against the RDA-based bands.
type NutrientStatus string

const (
	StatusDeficient NutrientStatus = "DEFICIENT"
	StatusAdequate  NutrientStatus = "ADEQUATE"
	StatusOptimal   NutrientStatus = "OPTIMAL"
	StatusExcessive NutrientStatus = "EXCESSIVE"
	StatusUnknown   NutrientStatus = "UNKNOWN"
)

// Threshold holds the four-band daily targets for one nutrient
// (adult 19-30, NIH Dietary Reference Intakes).
type Threshold struct {
	Deficient float64
	Adequate  float64
	Optimal   float64
	Excessive float64
}

// Thresholds maps canonical nutrient keys to their daily bands.
var Thresholds = map[string]Threshold{
	"calories":       {1400, 1800, 2200, 3500},
	"protein_g":      {40, 60, 80, 200},
	"carbs_g":        {100, 200, 275, 450},
	"fat_g":          {30, 50, 78, 130},
	"fiber_g":        {15, 25, 38, 60},
	"sugar_g":        {0, 25, 36, 50},
	"iron_mg":        {8, 14, 18, 45},
	"magnesium_mg":   {200, 320, 420, 700},
	"calcium_mg":     {600, 800, 1000, 2500},
	"zinc_mg":        {6, 8, 11, 40},
	"potassium_mg":   {2000, 3000, 4700, 6000},
	"sodium_mg":      {0, 500, 1500, 2300},
	"tryptophan_mg":  {150, 250, 350, 1000},
	"vitamin_c_mg":   {30, 60, 90, 2000},
	"vitamin_b12_ug": {1.0, 1.8, 2.4, 100},
	"vitamin_d_ug":   {5, 10, 15, 100},
	"vitamin_b6_mg":  {0.5, 1.0, 1.3, 100},
	"choline_mg":     {200, 350, 550, 3500},
}

// Classify buckets a daily intake value for a nutrient. Unknown nutrient
// keys classify as UNKNOWN rather than erroring; bad data must never take
// down a recommendation.
func Classify(key string, dailyValue float64) NutrientStatus {
	t, ok := Thresholds[key]
	if !ok {
		return StatusUnknown
	}
	switch {
	case dailyValue <= t.Deficient:
		return StatusDeficient
	case dailyValue <= t.Adequate:
		return StatusAdequate
	case dailyValue <= t.Optimal:
		return StatusOptimal
	default:
		return StatusExcessive
	}
}

// PercentOfOptimal reports how far along (0-1+) a daily value is toward
// the nutrient's optimal target. Unknown keys report 0.
func PercentOfOptimal(key string, dailyValue float64) float64 {
	t, ok := Thresholds[key]
	if !ok || t.Optimal == 0 {
		return 0.0
	}
	return math.Round(dailyValue/t.Optimal*100) / 100
}
