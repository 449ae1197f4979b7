package state

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nourix/protocol-coach/internal/domain"
	"github.com/nourix/protocol-coach/internal/profile"
)

// goalNorm maps free-text goal spellings to canonical goal keys. Unknown
// strings pass through unchanged so downstream lookups can fall back to
// their own defaults.
var goalNorm = map[string]string{
	"fat loss":     string(domain.GoalFatLoss),
	"fat_loss":     string(domain.GoalFatLoss),
	"weight loss":  string(domain.GoalFatLoss),
	"lose weight":  string(domain.GoalFatLoss),
	"cut":          string(domain.GoalFatLoss),
	"muscle gain":  string(domain.GoalMuscleGain),
	"muscle_gain":  string(domain.GoalMuscleGain),
	"bulk":         string(domain.GoalMuscleGain),
	"gain muscle":  string(domain.GoalMuscleGain),
	"build muscle": string(domain.GoalMuscleGain),
	"maintenance":  string(domain.GoalMaintenance),
	"maintain":     string(domain.GoalMaintenance),
	"general health": string(domain.GoalGeneralHealth),
	"general_health": string(domain.GoalGeneralHealth),
	"health":         string(domain.GoalGeneralHealth),
	"wellness":       string(domain.GoalGeneralHealth),
}

// Mental-state keyword groups scanned over the freetext "extra" field.
var (
	anxietyWords    = []string{"anxiety", "anxious", "panic", "worried"}
	depressionWords = []string{"depress", "sad", "hopeless", "unmotivated"}
	focusWords      = []string{"focus", "concentrate", "brain fog", "distract"}
)

func intOrDefault(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return n
}

// Analyze builds a structured user state directly from raw profile fields.
// It is deliberately independent of the constraint graph so the two can be
// cross-checked against each other.
func Analyze(raw map[string]string) domain.UserState {
	stress := intOrDefault(raw["stress_level"], 5)
	energy := intOrDefault(raw["energy_level"], 5)

	var sleepHours *float64
	if h, ok := profile.ParseSleepHours(raw["sleep_schedule"]); ok {
		sleepHours = &h
	}

	goalRaw := strings.ToLower(raw["goal"])
	if goalRaw == "" {
		goalRaw = string(domain.GoalGeneralHealth)
	}
	goal, ok := goalNorm[goalRaw]
	if !ok {
		goal = goalRaw
	}

	mental := inferMentalState(raw, stress, energy)

	var flags []string
	if sleepHours != nil && *sleepHours < 5 {
		flags = append(flags, fmt.Sprintf("SEVERE_SLEEP_DEFICIT: %.1fh (threshold 5h)", *sleepHours))
	}
	if stress >= 9 {
		flags = append(flags, "BURNOUT_IMMINENT")
	}
	if energy <= 2 && stress >= 8 {
		flags = append(flags, "CRASH_RISK: combined critical energy + critical stress")
	}
	if containsTag(mental, "anxiety") && containsTag(mental, "energy_crisis") {
		flags = append(flags, "ANXIOUS_AND_DEPLETED: combined anxiety + energy crisis")
	}

	gym := raw["workout_times"]
	if gym == "" {
		gym = "none"
	}
	cooking := raw["cooking_access"]
	if cooking == "" {
		cooking = "shared kitchen"
	}
	dietType := raw["diet_type"]
	if dietType == "" {
		dietType = "omnivore"
	}
	allergies := raw["allergies"]
	if allergies == "" {
		allergies = "none"
	}
	budget := raw["budget"]
	if budget == "" {
		budget = "medium"
	}

	return domain.UserState{
		SleepHours:    sleepHours,
		StressLevel:   stress,
		EnergyLevel:   energy,
		ActivityLevel: inferActivityLevel(raw["workout_times"]),
		MentalState:   mental,
		Goals:         []string{goal},
		Schedule: domain.StateSchedule{
			SleepWindow: raw["sleep_schedule"],
			ClassBlocks: raw["class_schedule"],
			GymTime:     gym,
		},
		ConstraintsRaw: domain.StateConstraintsRaw{
			Budget:        budget,
			CookingAccess: cooking,
			DietType:      dietType,
			Allergies:     allergies,
		},
		ComputedFlags: flags,
	}
}

// inferMentalState applies the fixed ordered rule set over numeric levels,
// mood, sleep quality, and the freetext extra notes.
func inferMentalState(raw map[string]string, stress, energy int) []string {
	var tags []string

	mood := strings.ToLower(raw["mood"])
	if mood == "" {
		mood = "neutral"
	}
	sleepQuality := strings.ToLower(raw["sleep_quality"])
	if sleepQuality == "" {
		sleepQuality = "okay"
	}
	extra := strings.ToLower(raw["extra"])

	if stress >= 8 {
		tags = append(tags, "high_stress")
	}
	if stress >= 9 {
		tags = append(tags, "burnout_risk")
	}
	if energy <= 3 {
		tags = append(tags, "energy_crisis")
	}
	if mood == "low" {
		tags = append(tags, "low_mood")
	}
	if sleepQuality == "poor" {
		tags = append(tags, "sleep_deprived")
	}
	if containsAny(extra, anxietyWords) {
		tags = append(tags, "anxiety")
	}
	if containsAny(extra, depressionWords) {
		tags = append(tags, "depression_risk")
	}
	if containsAny(extra, focusWords) {
		tags = append(tags, "low_focus")
	}
	if energy <= 4 && mood == "low" {
		tags = append(tags, "fatigue")
	}
	if energy <= 2 && stress >= 8 {
		tags = append(tags, "crash_risk")
	}
	return tags
}

func inferActivityLevel(workout string) domain.ActivityLevel {
	w := strings.ToLower(workout)
	if strings.TrimSpace(w) == "" || strings.Contains(w, "none") {
		return domain.ActivitySedentary
	}
	if containsAny(w, []string{"every day", "daily", "twice"}) {
		return domain.ActivityActive
	}
	if containsAny(w, []string{"3", "4", "5", "three", "four", "five"}) {
		return domain.ActivityModerate
	}
	return domain.ActivityLight
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
