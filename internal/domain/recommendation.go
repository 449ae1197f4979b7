package domain

// RecommendationRequest is the request body for the recommendation endpoint.
// @Description Raw self-reported profile. All values are free text; the
// @Description engine normalizes, clamps and defaults every field, so a
// @Description partial or messy profile still produces a usable plan.
type RecommendationRequest struct {
	// Flat profile mapping. Recognized keys: name, age, gender, height,
	// weight, goal, diet_type, allergies, budget, cooking_access,
	// cultural_prefs, class_schedule, sleep_schedule, workout_times,
	// stress_level, energy_level, sleep_quality, mood, extra.
	Profile map[string]string `json:"profile" validate:"required,min=1"`
	// When true and a coach model is configured, attach a conversational
	// explanation of the plan.
	Explain bool `json:"explain,omitempty"`
}

// ConstraintSummaryResponse reports the solver tiers and eliminations.
type ConstraintSummaryResponse struct {
	TimeTier     string            `json:"time_tier" example:"tight"`
	BudgetTier   string            `json:"budget_tier" example:"bare"`
	MaxProtocols int               `json:"max_protocols" example:"7"`
	Skipped      []SkippedProtocol `json:"skipped_protocols"`
	Summary      string            `json:"summary"`
}

// RecommendationResponse is the full output of the decision pipeline.
type RecommendationResponse struct {
	// Parsed profile echo, so clients can show what the engine understood.
	Profile ParsedProfile `json:"profile"`
	// Feasible protocols ranked by priority score, best first.
	Protocols []RankedProtocol `json:"protocols"`
	// Daily nutrient targets derived from the active protocols.
	NutrientTargets map[string]float64 `json:"nutrient_targets"`
	// Solver tiers plus every skipped protocol with its reason.
	Constraints ConstraintSummaryResponse `json:"constraints"`
	// Critical state warnings (empty when nothing is critical).
	CriticalFlags []string `json:"critical_flags"`
	// Optional coach explanation (requires explain=true and a configured model).
	Explanation string `json:"explanation,omitempty"`
	// Trace ID for linking feedback to this recommendation.
	TraceID string `json:"trace_id,omitempty"`
}

// FeedbackRequest is the request body for submitting outcome feedback.
// @Description Natural-language feedback ("more energetic, sleep -1") or
// @Description explicit signal deltas. At least one of the two is required.
type FeedbackRequest struct {
	Text    string             `json:"text,omitempty" validate:"max=2000"`
	Signals map[string]float64 `json:"signals,omitempty" validate:"omitempty,dive,keys,signalname,endkeys,gte=-3,lte=3"`
	// Optional trace ID from a previous recommendation response; when set
	// the feedback is also recorded as a score on that trace.
	TraceID string `json:"trace_id,omitempty"`
}

// FeedbackResponse reports the parsed signals and the updated weight table.
type FeedbackResponse struct {
	Signals map[string]float64 `json:"signals"`
	Weights map[string]float64 `json:"weights"`
}

// WeightsResponse is the current learned weight table for a user.
type WeightsResponse struct {
	UserKey string             `json:"user_key" example:"jamie_r"`
	Weights map[string]float64 `json:"weights"`
}

// SwapRequest is the request body for the substitution search.
// @Description Finds constraint-safe substitutes for a rejected food.
// @Description Food may be an exact name or a chat message like
// @Description "i hate lentils"; the engine extracts the food either way.
type SwapRequest struct {
	Food string `json:"food" validate:"required,max=200"`
	// Optional raw profile; when present the results are filtered through
	// the user's constraint graph and boosted by their active protocols.
	Profile map[string]string `json:"profile,omitempty"`
	// Maximum results to return (default 5, max 20).
	Limit int `json:"limit,omitempty" validate:"omitempty,min=1,max=20"`
}

// SwapResponse is the ranked substitute list for a rejected food.
type SwapResponse struct {
	Rejected string       `json:"rejected"`
	Results  []SwapResult `json:"results"`
}

// FoodListResponse is a cursor-paginated page of foods.
type FoodListResponse struct {
	Foods      []Food  `json:"foods"`
	NextCursor *string `json:"next_cursor,omitempty"`
}
