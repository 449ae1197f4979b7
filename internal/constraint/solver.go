package constraint

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/nourix/protocol-coach/internal/domain"
)

// kitchenTiers ranks cooking access from none (0) to full kitchen (3).
var kitchenTiers = map[string]int{
	"none":           0,
	"microwave":      1,
	"dorm microwave": 1,
	"shared":         2,
	"shared kitchen": 2,
	"full":           3,
	"full kitchen":   3,
}

// budgetMap converts budget tier words to daily dollar amounts.
var budgetMap = map[string]float64{
	"low": 8.0, "medium": 15.0, "flexible": 30.0,
}

// needsCooking lists protocols that require real cooking equipment.
var needsCooking = map[string]struct{}{
	"recovery_protocol":    {},
	"muscle_protocol":      {},
	"performance_protocol": {},
}

// veganIncompatible lists protocols a vegan diet rules out.
var veganIncompatible = map[string]struct{}{
	"collagen_protocol": {},
}

var (
	earlyWakePattern  = regexp.MustCompile(`\b[67]am\b`)
	earlyClassPattern = regexp.MustCompile(`\b[89]am\b`)
	allergySplit      = regexp.MustCompile(`[,;/]`)
)

func intField(profile map[string]string, key string, def int) int {
	v, ok := profile[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

// BuildConstraints parses raw profile fields into a typed constraint set.
func BuildConstraints(profile map[string]string) domain.ConstraintSet {
	budgetStr := strings.ToLower(profile["budget"])
	budget, ok := budgetMap[budgetStr]
	if !ok {
		budget = 15.0
	}

	cooking := strings.ToLower(profile["cooking_access"])
	if cooking == "" {
		cooking = "shared kitchen"
	}

	dietType := strings.ToLower(profile["diet_type"])
	if dietType == "" {
		dietType = "omnivore"
	}
	var restrictions []string
	switch dietType {
	case "vegan", "vegetarian", "halal", "kosher":
		restrictions = []string{dietType}
	}

	allergiesRaw := profile["allergies"]
	if allergiesRaw == "" {
		allergiesRaw = "none"
	}
	var allergies []string
	switch strings.ToLower(allergiesRaw) {
	case "none", "no", "n/a", "":
	default:
		for _, a := range allergySplit.Split(allergiesRaw, -1) {
			if a = strings.ToLower(strings.TrimSpace(a)); a != "" {
				allergies = append(allergies, a)
			}
		}
	}

	// Time heuristic: early wakers and morning classes leave a tighter
	// prep window.
	timeMins := 30
	if earlyWakePattern.MatchString(strings.ToLower(profile["sleep_schedule"])) {
		timeMins = 15
	}
	if earlyClassPattern.MatchString(strings.ToLower(profile["class_schedule"])) {
		timeMins -= 10
		if timeMins < 10 {
			timeMins = 10
		}
	}

	energy := intField(profile, "energy_level", 5)
	stress := intField(profile, "stress_level", 5)

	// Mental energy is the inverse of cognitive load: high stress and low
	// energy both eat into it.
	mentalEnergy := 10 - max(0, stress-5) - max(0, 5-energy)
	if mentalEnergy < 1 {
		mentalEnergy = 1
	}
	if mentalEnergy > 10 {
		mentalEnergy = 10
	}

	return domain.ConstraintSet{
		TimeMinutes:         timeMins,
		BudgetDaily:         budget,
		KitchenLevel:        cooking,
		DietaryRestrictions: restrictions,
		Allergies:           allergies,
		MentalEnergy:        mentalEnergy,
	}
}

// Solve filters the prioritized protocol list through the real-world
// constraint set. Infeasible protocols are never dropped silently; each one
// comes back with the reason it was skipped.
func Solve(prioritized []domain.RankedProtocol, cs domain.ConstraintSet) domain.SolveResult {
	kitchenTier, ok := kitchenTiers[cs.KitchenLevel]
	if !ok {
		kitchenTier = 2
	}

	var timeTier string
	switch {
	case cs.TimeMinutes <= 10:
		timeTier = "urgent"
	case cs.TimeMinutes <= 20:
		timeTier = "tight"
	case cs.TimeMinutes <= 40:
		timeTier = "moderate"
	default:
		timeTier = "comfortable"
	}

	var budgetTier string
	switch {
	case cs.BudgetDaily <= 8:
		budgetTier = "bare"
	case cs.BudgetDaily <= 12:
		budgetTier = "tight"
	case cs.BudgetDaily <= 20:
		budgetTier = "moderate"
	default:
		budgetTier = "flexible"
	}

	// Low mental energy caps the protocol count to limit decision fatigue.
	maxProtocols := 4
	switch {
	case cs.MentalEnergy >= 7:
		maxProtocols = 10
	case cs.MentalEnergy >= 4:
		maxProtocols = 7
	}

	vegan := false
	for _, r := range cs.DietaryRestrictions {
		if r == "vegan" {
			vegan = true
		}
	}

	var feasible []domain.RankedProtocol
	var skipped []domain.SkippedProtocol
	for i, rp := range prioritized {
		if i >= maxProtocols {
			skipped = append(skipped, domain.SkippedProtocol{
				Protocol: rp.Protocol,
				Reason:   fmt.Sprintf("mental energy cap (%d/10 → max %d)", cs.MentalEnergy, maxProtocols),
			})
			continue
		}
		if vegan {
			if _, bad := veganIncompatible[rp.Protocol]; bad {
				skipped = append(skipped, domain.SkippedProtocol{
					Protocol: rp.Protocol,
					Reason:   "dietary restriction: vegan",
				})
				continue
			}
		}
		if kitchenTier == 0 {
			if _, needs := needsCooking[rp.Protocol]; needs {
				skipped = append(skipped, domain.SkippedProtocol{
					Protocol: rp.Protocol,
					Reason:   "no kitchen - requires cooking equipment",
				})
				continue
			}
		}
		feasible = append(feasible, rp)
	}

	return domain.SolveResult{
		Feasible:     feasible,
		Skipped:      skipped,
		Summary:      solveSummary(cs, timeTier, budgetTier, len(skipped)),
		TimeTier:     timeTier,
		BudgetTier:   budgetTier,
		MaxProtocols: maxProtocols,
	}
}

func solveSummary(cs domain.ConstraintSet, timeTier, budgetTier string, skippedCount int) string {
	var b strings.Builder
	b.WriteString("ACTIVE CONSTRAINTS:\n")
	fmt.Fprintf(&b, "  time available: %dmin [%s]\n", cs.TimeMinutes, timeTier)
	fmt.Fprintf(&b, "  daily budget:   $%.0f/day [%s]\n", cs.BudgetDaily, budgetTier)
	fmt.Fprintf(&b, "  kitchen level:  %s\n", cs.KitchenLevel)
	fmt.Fprintf(&b, "  mental energy:  %d/10\n", cs.MentalEnergy)
	if len(cs.DietaryRestrictions) > 0 {
		fmt.Fprintf(&b, "  restrictions:   %s\n", strings.Join(cs.DietaryRestrictions, ", "))
	}
	if len(cs.Allergies) > 0 {
		fmt.Fprintf(&b, "  allergies:      %s\n", strings.Join(cs.Allergies, ", "))
	}
	if skippedCount > 0 {
		fmt.Fprintf(&b, "  skipped protocols: %d (constraint conflicts)\n", skippedCount)
	}
	return strings.TrimRight(b.String(), "\n")
}
