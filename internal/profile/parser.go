// Package profile turns a raw, messy intake form into a fully typed
// ParsedProfile. The pipeline has four stages: sanitize, normalize numerics,
// extract entities from free text, and map normalized strings onto the
// typed entities. Malformed input always resolves to a conservative default;
// parsing never fails.
package profile

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/nourix/protocol-coach/internal/domain"
)

const (
	// MaxFieldLen caps every sanitized profile field.
	MaxFieldLen = 500

	// ScaleMin and ScaleMax bound the 1-10 self-report scales.
	ScaleMin = 1
	ScaleMax = 10

	// shortSleepHours is the duration below which reported sleep quality
	// cannot stand: under 5 h a "good" night is downgraded to poor, and a
	// poor night escalates to critical.
	shortSleepHours = 5.0
)

var (
	numberPattern    = regexp.MustCompile(`(\d+(?:\.\d+)?)`)
	agePattern       = regexp.MustCompile(`\b(\d{1,3})\b`)
	clockPattern     = regexp.MustCompile(`(\d{1,2}(?::\d{2})?)\s*(am|pm)`)
	separatorPattern = regexp.MustCompile(`\b(to|and|until|wake\s*(?:up)?)\b`)
	dashRunPattern   = regexp.MustCompile(`-+`)
)

// Parse runs the full validation pipeline on a raw profile mapping and
// returns a typed ParsedProfile. Missing or unrecognized fields resolve to
// per-field defaults; this function never returns an error by design.
func Parse(raw map[string]string) *domain.ParsedProfile {
	s := sanitize(raw)

	// Stage 2: normalize numerics.
	stressLevel := scaleOrDefault(s["stress_level"], 5)
	energyLevel := scaleOrDefault(s["energy_level"], 5)
	sleepHours, sleepOK := ParseSleepHours(s["sleep_schedule"])

	// Stage 3: semantic extraction.
	allergens := ParseAllergens(s["allergies"])

	// Stage 4: ontology mapping.
	var hoursPtr *float64
	if sleepOK {
		hoursPtr = &sleepHours
	}

	p := &domain.ParsedProfile{
		Name:         nameOrDefault(s["name"]),
		Age:          parseAge(s["age"]),
		Gender:       valueOrDefault(s["gender"], "unknown"),
		Diet:         mapDiet(s["diet_type"]),
		Allergens:    allergens,
		Goal:         mapGoal(s["goal"]),
		Stress:       MapStress(stressLevel),
		Energy:       MapEnergy(energyLevel),
		SleepQuality: mapSleepQuality(s["sleep_quality"], hoursPtr),
		Mood:         mapMood(s["mood"], stressLevel),
		Budget:       mapBudget(s["budget"]),
		Kitchen:      mapKitchen(s["cooking_access"]),
		StressLevel:  stressLevel,
		EnergyLevel:  energyLevel,
		SleepHours:   hoursPtr,
		Raw:          raw,
	}

	// Compound escalation: broke AND no way to cook is its own emergency.
	if p.Budget == domain.BudgetLow && p.Kitchen == domain.KitchenNone {
		p.Budget = domain.BudgetCriticalLow
	}

	return p
}

// sanitize trims whitespace and caps every field at MaxFieldLen runes.
func sanitize(raw map[string]string) map[string]string {
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		v = strings.TrimSpace(v)
		if utf8.RuneCountInString(v) > MaxFieldLen {
			v = string([]rune(v)[:MaxFieldLen])
		}
		out[k] = v
	}
	return out
}

// ParseScale extracts the first numeric token from a 1-10 self-report answer
// and clamps it into range. The second return is false when the answer
// carries no digits at all; the caller decides whether to hard-reject or
// soft-default (this package defaults).
func ParseScale(raw string) (int, bool) {
	m := numberPattern.FindStringSubmatch(raw)
	if m == nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	n := int(math.Round(f))
	if n < ScaleMin {
		n = ScaleMin
	}
	if n > ScaleMax {
		n = ScaleMax
	}
	return n, true
}

func scaleOrDefault(raw string, def int) int {
	if n, ok := ParseScale(raw); ok {
		return n
	}
	return def
}

// ParseSleepHours extracts a sleep duration from a schedule string such as
// "11pm-7am", "2am to 8am" or "sleep 11pm wake 7am", accounting for the
// midnight wraparound. Returns false for strings without two clock times or
// for degenerate windows (0 h or more than 23 h).
func ParseSleepHours(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	text := strings.ToLower(raw)
	text = strings.NewReplacer("–", "-", "—", "-").Replace(text)
	text = separatorPattern.ReplaceAllString(text, "-")
	text = dashRunPattern.ReplaceAllString(text, "-")

	times := clockPattern.FindAllStringSubmatch(text, -1)
	if len(times) < 2 {
		return 0, false
	}

	bed := clockToHours(times[0][1], times[0][2])
	wake := clockToHours(times[1][1], times[1][2])

	hours := wake - bed
	if bed > wake {
		hours = 24 - bed + wake
	}
	if hours <= 0 || hours > 23 {
		return 0, false
	}
	return math.Round(hours*10) / 10, true
}

func clockToHours(t, ampm string) float64 {
	parts := strings.SplitN(t, ":", 2)
	h, _ := strconv.Atoi(parts[0])
	mins := 0
	if len(parts) > 1 {
		mins, _ = strconv.Atoi(parts[1])
	}
	if ampm == "pm" && h != 12 {
		h += 12
	}
	if ampm == "am" && h == 12 {
		h = 0
	}
	return float64(h) + float64(mins)/60.0
}

// ParseAllergens extracts allergen entities from a free-text answer.
// "nuts and dairy" yields tree nuts plus dairy; any phrase from the
// no-allergy set yields exactly [AllergenNone].
func ParseAllergens(raw string) []domain.Allergen {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return []domain.Allergen{domain.AllergenNone}
	}
	if _, ok := noAllergyPhrases[text]; ok {
		return []domain.Allergen{domain.AllergenNone}
	}

	var found []domain.Allergen
	seen := make(map[domain.Allergen]bool)
	for _, entry := range allergenKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				if !seen[entry.allergen] {
					seen[entry.allergen] = true
					found = append(found, entry.allergen)
				}
				break
			}
		}
	}

	// Bare "nuts" means tree nuts, not legumes (common ambiguity).
	if strings.Contains(text, "nuts") && !seen[domain.AllergenTreeNuts] {
		found = append(found, domain.AllergenTreeNuts)
	}

	if len(found) == 0 {
		return []domain.Allergen{domain.AllergenNone}
	}
	return found
}

func parseAge(raw string) *int {
	m := agePattern.FindStringSubmatch(raw)
	if m == nil {
		return nil
	}
	age, err := strconv.Atoi(m[1])
	if err != nil || age < 10 || age > 120 {
		return nil
	}
	return &age
}

func mapDiet(raw string) domain.DietType {
	key := strings.ToLower(strings.TrimSpace(raw))
	if d, ok := dietAliases[key]; ok {
		return d
	}
	return domain.DietUnknown
}

func mapGoal(raw string) domain.GoalType {
	key := strings.ToLower(strings.TrimSpace(raw))
	for _, entry := range goalAliases {
		if key == entry.alias {
			return entry.goal
		}
	}
	// Substring fallback in table order: "i want to lose weight and build
	// muscle" always resolves to the earliest listed alias, fat loss.
	for _, entry := range goalAliases {
		if strings.Contains(key, entry.alias) {
			return entry.goal
		}
	}
	return domain.GoalGeneralHealth
}

func mapMood(raw string, stressLevel int) domain.MoodState {
	base := domain.MoodNeutral
	if m, ok := moodAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		base = m
	}
	// Low mood under high stress is a different animal than low mood alone.
	if base == domain.MoodLow && stressLevel >= 7 {
		return domain.MoodCriticalLow
	}
	return base
}

func mapSleepQuality(raw string, sleepHours *float64) domain.SleepQuality {
	key := strings.ToLower(strings.TrimSpace(raw))
	base := domain.SleepOkay
	if key != "" {
		var ok bool
		if base, ok = sleepQualityAliases[key]; !ok {
			// Unrecognized answers read as a yellow light, not a green one.
			base = domain.SleepPoor
		}
	}
	if sleepHours != nil && *sleepHours < shortSleepHours {
		if base == domain.SleepPoor {
			return domain.SleepCritical
		}
		// Reported quality conflicts with measured duration; duration wins.
		return domain.SleepPoor
	}
	return base
}

// MapStress buckets a validated 1-10 stress level.
func MapStress(level int) domain.StressState {
	switch {
	case level >= 9:
		return domain.StressCritical
	case level >= 7:
		return domain.StressHigh
	case level >= 5:
		return domain.StressModerate
	default:
		return domain.StressLow
	}
}

// MapEnergy buckets a validated 1-10 energy level.
func MapEnergy(level int) domain.EnergyState {
	switch {
	case level <= 2:
		return domain.EnergyCriticalLow
	case level <= 4:
		return domain.EnergyLow
	case level <= 6:
		return domain.EnergyModerate
	case level <= 8:
		return domain.EnergyHigh
	default:
		return domain.EnergyOptimal
	}
}

func mapBudget(raw string) domain.BudgetTier {
	if b, ok := budgetAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return b
	}
	return domain.BudgetMedium
}

func mapKitchen(raw string) domain.KitchenAccess {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return domain.KitchenFull
	}
	for _, entry := range kitchenAliases {
		if strings.Contains(normalized, entry.key) {
			return entry.access
		}
	}
	// Something was provided but unrecognized; assume a shared kitchen.
	return domain.KitchenShared
}

func nameOrDefault(raw string) string {
	if raw == "" {
		return "User"
	}
	return raw
}

func valueOrDefault(raw, def string) string {
	if raw == "" {
		return def
	}
	return raw
}
