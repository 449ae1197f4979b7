package constraint

import "github.com/nourix/protocol-coach/internal/domain"

// dietForbidden maps each diet to the food-name keywords it excludes.
// Matching is substring-based over name+tags, which over-excludes on
// purpose: a false positive costs a suggestion, a false negative can put
// an allergen on someone's plate.
var dietForbidden = map[domain.DietType][]string{
	domain.DietVegetarian: {
		"chicken", "beef", "pork", "turkey", "salmon", "tuna", "fish",
		"lamb", "bacon", "shrimp", "crab", "lobster", "venison", "duck",
		"goose", "ham", "sausage", "pepperoni", "anchovies", "sardine",
		"tilapia", "cod", "halibut", "herring", "mackerel", "prawn",
	},
	domain.DietVegan: {
		// all meat
		"chicken", "beef", "pork", "turkey", "salmon", "tuna", "fish",
		"lamb", "bacon", "shrimp", "crab", "lobster", "venison", "duck",
		"ham", "sausage", "pepperoni", "anchovies", "sardine",
		// all animal products
		"milk", "cheese", "butter", "cream", "yogurt", "whey",
		"egg", "honey", "gelatin", "lard",
	},
	domain.DietPescatarian: {
		"chicken", "beef", "pork", "turkey", "lamb", "bacon", "duck",
		"ham", "sausage", "pepperoni", "venison", "goose",
	},
	domain.DietHalal: {
		"pork", "ham", "bacon", "lard", "pepperoni", "gelatin",
	},
	domain.DietKosher: {
		"pork", "ham", "bacon", "shrimp", "crab", "lobster",
		"clam", "oyster", "shellfish",
	},
	// keto is handled by the macro filter downstream, not by keyword
	domain.DietKeto: {},
	domain.DietPaleo: {
		"dairy", "milk", "cheese", "grain", "bread", "pasta", "rice", "oat",
	},
	domain.DietGlutenFree: {
		"wheat", "barley", "rye", "bread", "pasta", "flour",
	},
	domain.DietOmnivore: {},
	domain.DietUnknown:  {},
}

// allergenForbidden maps each allergen entity to its exclusion keywords.
var allergenForbidden = map[domain.Allergen][]string{
	domain.AllergenGluten:    {"wheat", "barley", "rye", "bread", "pasta", "flour", "gluten"},
	domain.AllergenDairy:     {"milk", "cheese", "butter", "cream", "yogurt", "whey", "dairy"},
	domain.AllergenEggs:      {"egg", "eggs", "mayonnaise"},
	domain.AllergenPeanuts:   {"peanut", "peanuts", "groundnut"},
	domain.AllergenTreeNuts:  {"almond", "walnut", "cashew", "pecan", "pistachio", "hazelnut", "macadamia", "nut"},
	domain.AllergenSoy:       {"soy", "soya", "tofu", "edamame", "tempeh"},
	domain.AllergenFish:      {"salmon", "tuna", "cod", "tilapia", "halibut", "sardine", "anchovies", "fish", "herring"},
	domain.AllergenShellfish: {"shrimp", "prawn", "crab", "lobster", "clam", "oyster", "scallop", "mussel", "shellfish"},
	domain.AllergenWheat:     {"wheat", "bread", "pasta", "flour", "cereal"},
	domain.AllergenSesame:    {"sesame", "tahini"},
	domain.AllergenLegumes:   {"legume", "lentil", "chickpea", "bean", "pea"},
	domain.AllergenLactose:   {"milk", "cream", "yogurt", "cheese", "butter"},
	domain.AllergenFructose:  {"apple", "pear", "mango", "fructose", "corn syrup"},
	domain.AllergenSulfites:  {"wine", "dried fruit", "vinegar"},
	domain.AllergenNone:      {},
}

// State-to-protocol activation tables, one per state dimension so the same
// bucket name in two dimensions (e.g. critical stress vs. critical sleep)
// can never clash. Lookups happen in the fixed priority order of
// buildActiveProtocols.
var stressProtocols = map[domain.StressState][]string{
	domain.StressCritical: {
		"stress_protocol", "magnesium_protocol", "sleep_protocol",
		"mood_protocol", "blood_sugar_protocol",
	},
	domain.StressHigh: {
		"stress_protocol", "sleep_protocol", "mood_protocol",
	},
	domain.StressModerate: {"stress_protocol"},
}

var energyProtocols = map[domain.EnergyState][]string{
	domain.EnergyCriticalLow: {
		"energy_protocol", "iron_protocol", "b_complex_protocol",
		"hydration_protocol",
	},
	domain.EnergyLow: {"energy_protocol", "b_complex_protocol"},
}

var sleepProtocols = map[domain.SleepQuality][]string{
	domain.SleepCritical: {
		"sleep_protocol", "tryptophan_protocol", "magnesium_protocol",
		"anti_caffeine_protocol",
	},
	domain.SleepPoor: {"sleep_protocol", "tryptophan_protocol"},
}

var moodProtocols = map[domain.MoodState][]string{
	domain.MoodCriticalLow: {
		"mood_protocol", "stress_protocol", "gut_protocol",
		"cognitive_protocol",
	},
	domain.MoodLow: {"mood_protocol", "gut_protocol"},
}

var goalProtocols = map[domain.GoalType][]string{
	domain.GoalFatLoss: {
		"fat_loss_protocol", "blood_sugar_protocol", "gut_protocol",
	},
	domain.GoalMuscleGain: {
		"muscle_protocol", "recovery_protocol", "performance_protocol",
	},
	domain.GoalGeneralHealth: {
		"immune_protocol", "gut_protocol", "anti_inflammatory_protocol",
	},
	domain.GoalMaintenance: {
		"gut_protocol", "heart_protocol", "immune_protocol",
	},
}

var budgetProtocols = map[domain.BudgetTier][]string{
	domain.BudgetCriticalLow: {"emergency_meals_protocol"},
}

var kitchenProtocols = map[domain.KitchenAccess][]string{
	domain.KitchenNone:          {"no_cook_protocol"},
	domain.KitchenMicrowaveOnly: {"microwave_protocol"},
}

// baselineProtocols are always present in the active list, whatever the
// profile says.
var baselineProtocols = []string{"sleep_protocol", "stress_protocol", "energy_protocol"}
