package profile

import "github.com/nourix/protocol-coach/internal/domain"

// Alias tables map normalized free text to typed entities. They include the
// misspellings and synonyms that show up in real intake forms; anything not
// listed falls back to the most conservative value for that field.

var dietAliases = map[string]domain.DietType{
	// vegetarian (+ common typos)
	"vegetarian": domain.DietVegetarian, "vegitarian": domain.DietVegetarian,
	"vegetrain": domain.DietVegetarian, "vegatarian": domain.DietVegetarian,
	"vegiterian": domain.DietVegetarian, "veg": domain.DietVegetarian,
	"veggie": domain.DietVegetarian,
	// vegan
	"vegan": domain.DietVegan, "plant based": domain.DietVegan,
	"plant-based": domain.DietVegan, "plantbased": domain.DietVegan,
	// omnivore
	"omnivore": domain.DietOmnivore, "omni": domain.DietOmnivore,
	"everything": domain.DietOmnivore, "non veg": domain.DietOmnivore,
	"non-veg": domain.DietOmnivore, "meat eater": domain.DietOmnivore,
	// halal / kosher
	"halal": domain.DietHalal, "kosher": domain.DietKosher,
	// pescatarian
	"pescatarian": domain.DietPescatarian, "pescetarian": domain.DietPescatarian,
	"pescitarian": domain.DietPescatarian,
	// other
	"keto":  domain.DietKeto,
	"paleo": domain.DietPaleo,
	"gluten free": domain.DietGlutenFree, "gluten-free": domain.DietGlutenFree,
	"gf": domain.DietGlutenFree,
}

// goalAliases is ordered: the substring fallback in mapGoal scans it front
// to back, so free text matching several aliases ("lose weight and build
// muscle") always resolves to the earliest listed goal.
var goalAliases = []struct {
	alias string
	goal  domain.GoalType
}{
	{"fat loss", domain.GoalFatLoss},
	{"lose weight", domain.GoalFatLoss},
	{"lose fat", domain.GoalFatLoss},
	{"weight loss", domain.GoalFatLoss},
	{"cutting", domain.GoalFatLoss},
	{"cut", domain.GoalFatLoss},
	{"slim down", domain.GoalFatLoss},
	{"muscle gain", domain.GoalMuscleGain},
	{"gain muscle", domain.GoalMuscleGain},
	{"build muscle", domain.GoalMuscleGain},
	{"bulking", domain.GoalMuscleGain},
	{"bulk", domain.GoalMuscleGain},
	{"gain weight", domain.GoalMuscleGain},
	{"maintenance", domain.GoalMaintenance},
	{"maintain weight", domain.GoalMaintenance},
	{"maintain", domain.GoalMaintenance},
	{"stay same", domain.GoalMaintenance},
	{"general health", domain.GoalGeneralHealth},
	{"stay healthy", domain.GoalGeneralHealth},
	{"healthy", domain.GoalGeneralHealth},
	{"health", domain.GoalGeneralHealth},
	{"wellness", domain.GoalGeneralHealth},
}

var moodAliases = map[string]domain.MoodState{
	"low": domain.MoodLow, "bad": domain.MoodLow,
	"sad": domain.MoodLow, "depressed": domain.MoodLow,
	"down": domain.MoodLow, "rough": domain.MoodLow,
	"terrible": domain.MoodLow, "awful": domain.MoodLow,
	"ok": domain.MoodNeutral, "okay": domain.MoodNeutral,
	"fine": domain.MoodNeutral, "meh": domain.MoodNeutral,
	"alright": domain.MoodNeutral, "average": domain.MoodNeutral,
	"neutral": domain.MoodNeutral, "so-so": domain.MoodNeutral,
	"good": domain.MoodGood, "great": domain.MoodGood,
	"amazing": domain.MoodGood, "awesome": domain.MoodGood,
	"happy": domain.MoodGood, "excellent": domain.MoodGood,
	"positive": domain.MoodGood,
}

var sleepQualityAliases = map[string]domain.SleepQuality{
	"terrible": domain.SleepPoor, "bad": domain.SleepPoor,
	"awful": domain.SleepPoor, "rough": domain.SleepPoor,
	"horrible": domain.SleepPoor, "poor": domain.SleepPoor,
	"not good": domain.SleepPoor,
	"ok": domain.SleepOkay, "okay": domain.SleepOkay,
	"fine": domain.SleepOkay, "alright": domain.SleepOkay,
	"decent": domain.SleepOkay, "average": domain.SleepOkay,
	"good": domain.SleepGood, "great": domain.SleepGood,
	"amazing": domain.SleepGood, "well": domain.SleepGood,
	"excellent": domain.SleepGood,
}

var budgetAliases = map[string]domain.BudgetTier{
	"low":    domain.BudgetLow,
	"medium": domain.BudgetMedium, "mid": domain.BudgetMedium,
	"moderate": domain.BudgetMedium,
	"flexible": domain.BudgetFlexible, "high": domain.BudgetFlexible,
	"no limit": domain.BudgetFlexible, "unlimited": domain.BudgetFlexible,
}

// kitchenAliases is ordered longest-match first so "full kitchen" matches
// before "kitchen" and "microwave only" before "microwave".
var kitchenAliases = []struct {
	key    string
	access domain.KitchenAccess
}{
	{"full kitchen", domain.KitchenFull},
	{"shared kitchen", domain.KitchenShared},
	{"shared", domain.KitchenShared},
	{"dorm microwave", domain.KitchenMicrowaveOnly},
	{"microwave only", domain.KitchenMicrowaveOnly},
	{"microwave", domain.KitchenMicrowaveOnly},
	{"no kitchen", domain.KitchenNone},
	{"none", domain.KitchenNone},
}

// allergenKeywords maps each allergen entity to the free-text keywords that
// trigger it. Detection is substring membership, not exact match, so one
// answer can carry several allergens ("nuts and dairy").
// Evaluated in slice order to keep detection deterministic.
var allergenKeywords = []struct {
	allergen domain.Allergen
	keywords []string
}{
	{domain.AllergenGluten, []string{"gluten", "celiac", "coeliac"}},
	{domain.AllergenDairy, []string{"dairy", "milk", "cheese", "butter", "cream", "whey"}},
	{domain.AllergenEggs, []string{"egg", "eggs"}},
	{domain.AllergenPeanuts, []string{"peanut", "peanuts", "groundnut"}},
	{domain.AllergenTreeNuts, []string{"tree nut", "tree nuts", "nut allergy",
		"almond", "walnut", "cashew", "pecan", "pistachio", "hazelnut", "macadamia"}},
	{domain.AllergenSoy, []string{"soy", "soya", "soybean", "tofu"}},
	{domain.AllergenFish, []string{"fish", "salmon", "tuna", "cod", "tilapia",
		"halibut", "sardine"}},
	{domain.AllergenShellfish, []string{"shellfish", "shrimp", "prawn", "crab",
		"lobster", "clam", "oyster", "scallop", "mussel"}},
	{domain.AllergenWheat, []string{"wheat"}},
	{domain.AllergenSesame, []string{"sesame", "tahini"}},
	{domain.AllergenLegumes, []string{"legume", "legumes", "lentil",
		"chickpea", "bean", "beans"}},
	{domain.AllergenLactose, []string{"lactose"}},
	{domain.AllergenFructose, []string{"fructose"}},
	{domain.AllergenSulfites, []string{"sulfite", "sulphite", "sulfites",
		"sulphites", "wine allergy"}},
}

// noAllergyPhrases short-circuit allergen extraction to "none".
var noAllergyPhrases = map[string]struct{}{
	"none": {}, "no": {}, "n/a": {}, "na": {}, "nope": {}, "nothing": {},
	"nil": {}, "no allergies": {}, "no allergy": {}, "no food allergies": {},
	"no known allergies": {}, "i don't have any": {}, "i have no": {},
}
