package domain

// ActivityLevel is inferred from the workout_times profile field.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
)

// StateSchedule carries the raw schedule strings for downstream heuristics.
type StateSchedule struct {
	SleepWindow string `json:"sleep_window"`
	ClassBlocks string `json:"class_blocks"`
	GymTime     string `json:"gym_time"`
}

// StateConstraintsRaw carries the raw constraint strings from the profile.
type StateConstraintsRaw struct {
	Budget        string `json:"budget"`
	CookingAccess string `json:"cooking_access"`
	DietType      string `json:"diet_type"`
	Allergies     string `json:"allergies"`
}

// UserState is the behavioral state vector derived from a raw profile.
// It is independent of the constraint graph and feeds the prioritization
// engine in parallel with the graph's baseline protocols.
type UserState struct {
	SleepHours     *float64            `json:"sleep_hours,omitempty"`
	StressLevel    int                 `json:"stress_level"`
	EnergyLevel    int                 `json:"energy_level"`
	ActivityLevel  ActivityLevel       `json:"activity_level"`
	MentalState    []string            `json:"mental_state"`
	Goals          []string            `json:"goals"`
	Schedule       StateSchedule       `json:"schedule"`
	ConstraintsRaw StateConstraintsRaw `json:"constraints_raw"`
	ComputedFlags  []string            `json:"computed_flags"`
}

// HasMentalTag reports whether a behavioral tag was inferred for this state.
func (s *UserState) HasMentalTag(tag string) bool {
	for _, t := range s.MentalState {
		if t == tag {
			return true
		}
	}
	return false
}

// RankedProtocol is a protocol with its computed priority score.
type RankedProtocol struct {
	Protocol string  `json:"protocol"`
	Score    float64 `json:"score"`
}

// SkippedProtocol records a protocol eliminated by the constraint solver,
// with a human-readable reason for observability.
type SkippedProtocol struct {
	Protocol string `json:"protocol"`
	Reason   string `json:"reason"`
}

// ConstraintSet holds the typed real-world limits derived once per request
// from the raw profile.
type ConstraintSet struct {
	TimeMinutes         int      `json:"time_minutes"`
	BudgetDaily         float64  `json:"budget_daily"`
	KitchenLevel        string   `json:"kitchen_level"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	Allergies           []string `json:"allergies"`
	MentalEnergy        int      `json:"mental_energy"` // 1-10, low = decision fatigue
}

// SolveResult is the output of the constraint solver.
type SolveResult struct {
	Feasible     []RankedProtocol  `json:"feasible_protocols"`
	Skipped      []SkippedProtocol `json:"skipped_protocols"`
	Summary      string            `json:"constraint_summary"`
	TimeTier     string            `json:"time_tier"`
	BudgetTier   string            `json:"budget_tier"`
	MaxProtocols int               `json:"max_protocols"`
}
