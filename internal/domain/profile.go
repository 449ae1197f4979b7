package domain

import "fmt"

// DietType classifies the user's dietary pattern.
// @Description Dietary pattern, normalized from free text (handles common misspellings).
type DietType string

const (
	DietOmnivore    DietType = "omnivore"
	DietVegetarian  DietType = "vegetarian"
	DietVegan       DietType = "vegan"
	DietHalal       DietType = "halal"
	DietKosher      DietType = "kosher"
	DietPescatarian DietType = "pescatarian"
	DietKeto        DietType = "keto"
	DietPaleo       DietType = "paleo"
	DietGlutenFree  DietType = "gluten_free"
	DietUnknown     DietType = "unknown"
)

// Allergen is one of the recognized allergen categories (FDA top-14 plus
// common extras). AllergenNone marks an explicit "no allergies" answer.
type Allergen string

const (
	AllergenGluten    Allergen = "gluten"
	AllergenDairy     Allergen = "dairy"
	AllergenEggs      Allergen = "eggs"
	AllergenPeanuts   Allergen = "peanuts"
	AllergenTreeNuts  Allergen = "tree_nuts"
	AllergenSoy       Allergen = "soy"
	AllergenFish      Allergen = "fish"
	AllergenShellfish Allergen = "shellfish"
	AllergenWheat     Allergen = "wheat"
	AllergenSesame    Allergen = "sesame"
	AllergenLegumes   Allergen = "legumes"
	AllergenFructose  Allergen = "fructose"
	AllergenLactose   Allergen = "lactose"
	AllergenSulfites  Allergen = "sulfites"
	AllergenNone      Allergen = "none"
)

// GoalType is the user's stated nutrition goal.
type GoalType string

const (
	GoalFatLoss       GoalType = "fat_loss"
	GoalMuscleGain    GoalType = "muscle_gain"
	GoalMaintenance   GoalType = "maintenance"
	GoalGeneralHealth GoalType = "general_health"
	GoalUnknown       GoalType = "unknown"
)

// StressState buckets the 1-10 stress level.
type StressState string

const (
	StressCritical StressState = "critical" // stress >= 9
	StressHigh     StressState = "high"     // stress 7-8
	StressModerate StressState = "moderate" // stress 5-6
	StressLow      StressState = "low"      // stress <= 4
)

// EnergyState buckets the 1-10 energy level.
type EnergyState string

const (
	EnergyCriticalLow EnergyState = "critical_low" // energy <= 2
	EnergyLow         EnergyState = "low"          // energy 3-4
	EnergyModerate    EnergyState = "moderate"     // energy 5-6
	EnergyHigh        EnergyState = "high"         // energy 7-8
	EnergyOptimal     EnergyState = "optimal"      // energy 9-10
)

// SleepQuality is the normalized self-reported sleep quality.
// Unrecognized answers default to POOR: a missing or garbled answer is a
// yellow light, not a green one.
type SleepQuality string

const (
	SleepCritical SleepQuality = "critical" // poor quality AND < 5 h
	SleepPoor     SleepQuality = "poor"
	SleepOkay     SleepQuality = "okay"
	SleepGood     SleepQuality = "good"
)

// MoodState is the normalized self-reported mood.
type MoodState string

const (
	MoodCriticalLow MoodState = "critical_low" // low mood + high stress
	MoodLow         MoodState = "low"
	MoodNeutral     MoodState = "neutral"
	MoodGood        MoodState = "good"
)

// BudgetTier is the normalized food budget.
type BudgetTier string

const (
	BudgetCriticalLow BudgetTier = "critical_low" // low budget + no kitchen
	BudgetLow         BudgetTier = "low"
	BudgetMedium      BudgetTier = "medium"
	BudgetFlexible    BudgetTier = "flexible"
)

// KitchenAccess describes the cooking equipment available to the user.
type KitchenAccess string

const (
	KitchenNone          KitchenAccess = "none"
	KitchenMicrowaveOnly KitchenAccess = "microwave_only"
	KitchenShared        KitchenAccess = "shared_kitchen"
	KitchenFull          KitchenAccess = "full_kitchen"
)

// ParsedProfile is the validated, fully typed snapshot of a user profile.
// Every health-critical field is a typed entity with a defined default;
// nothing in here is ever nil except the optional numerics.
// Constructed once per request by profile.Parse and immutable afterwards,
// except the derived forbidden sets written back by the constraint graph.
type ParsedProfile struct {
	// Identity
	Name   string `json:"name"`
	Age    *int   `json:"age,omitempty"`
	Gender string `json:"gender"`

	// Typed entities
	Diet      DietType   `json:"diet_type"`
	Allergens []Allergen `json:"allergens"`
	Goal      GoalType   `json:"goal"`

	// Typed state
	Stress       StressState  `json:"stress_state"`
	Energy       EnergyState  `json:"energy_state"`
	SleepQuality SleepQuality `json:"sleep_quality"`
	Mood         MoodState    `json:"mood_state"`

	// Typed constraints
	Budget  BudgetTier    `json:"budget_tier"`
	Kitchen KitchenAccess `json:"kitchen_access"`

	// Validated numerics
	StressLevel int      `json:"stress_level"` // 1-10
	EnergyLevel int      `json:"energy_level"` // 1-10
	SleepHours  *float64 `json:"sleep_hours,omitempty"`

	// Derived constraint sets, populated by constraint.NewGraph
	ForbiddenFoodKeywords []string `json:"forbidden_food_keywords,omitempty"`
	ForbiddenCategories   []string `json:"forbidden_categories,omitempty"`

	// Original raw fields, kept for downstream heuristics
	Raw map[string]string `json:"-"`
}

// HasAllergens reports whether the profile carries any real allergen entity.
func (p *ParsedProfile) HasAllergens() bool {
	for _, a := range p.Allergens {
		if a != AllergenNone {
			return true
		}
	}
	return false
}

// IsVegetarianOrVegan reports whether the diet excludes meat.
func (p *ParsedProfile) IsVegetarianOrVegan() bool {
	return p.Diet == DietVegetarian || p.Diet == DietVegan
}

// IsCritical reports whether any state field is in a critical bucket.
func (p *ParsedProfile) IsCritical() bool {
	return p.Stress == StressCritical ||
		p.Energy == EnergyCriticalLow ||
		p.SleepQuality == SleepCritical ||
		p.Mood == MoodCriticalLow
}

// CriticalFlags returns human-readable warnings for every critical state.
func (p *ParsedProfile) CriticalFlags() []string {
	var flags []string
	if p.Stress == StressCritical {
		flags = append(flags, fmt.Sprintf("CRITICAL_STRESS: %d/10", p.StressLevel))
	}
	if p.Energy == EnergyCriticalLow {
		flags = append(flags, fmt.Sprintf("CRITICAL_ENERGY: %d/10", p.EnergyLevel))
	}
	if p.SleepQuality == SleepCritical {
		flags = append(flags, "CRITICAL_SLEEP: poor quality + <5 h sleep")
	}
	if p.Mood == MoodCriticalLow {
		flags = append(flags, "CRITICAL_MOOD: low mood under high stress")
	}
	return flags
}

// Summary renders a compact one-line description for logs and traces.
func (p *ParsedProfile) Summary() string {
	s := fmt.Sprintf("diet=%s | goal=%s | stress=%s(%d) | energy=%s(%d) | sleep=%s | mood=%s | budget=%s | kitchen=%s",
		p.Diet, p.Goal, p.Stress, p.StressLevel, p.Energy, p.EnergyLevel,
		p.SleepQuality, p.Mood, p.Budget, p.Kitchen)
	if p.HasAllergens() {
		s += " | allergens=["
		for i, a := range p.Allergens {
			if i > 0 {
				s += ","
			}
			s += string(a)
		}
		s += "]"
	}
	return "ParsedProfile(" + s + ")"
}
