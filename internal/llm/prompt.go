package llm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nourix/protocol-coach/internal/domain"
	"github.com/nourix/protocol-coach/internal/nutrition"
)

// Plan-context renderers. Deterministic plain-text blocks injected into the
// coach prompt; imperative wording so the model treats the constraints as
// hard rules, not suggestions.

const blockRule = "----------------------------------------"

// ConstraintBlock renders the hard-constraint section from a parsed profile
// (after the constraint graph has written back its forbidden sets).
func ConstraintBlock(p *domain.ParsedProfile, activeProtocols, criticalFlags []string) string {
	var b strings.Builder

	b.WriteString(blockRule + "\n")
	b.WriteString("HARD USER CONSTRAINTS - ENFORCE BEFORE GENERATING ANYTHING\n")
	fmt.Fprintf(&b, "  DIET TYPE : %s\n", strings.ToUpper(string(p.Diet)))
	if p.HasAllergens() {
		names := make([]string, 0, len(p.Allergens))
		for _, a := range p.Allergens {
			if a != domain.AllergenNone {
				names = append(names, strings.ToUpper(string(a)))
			}
		}
		fmt.Fprintf(&b, "  ALLERGENS : %s\n", strings.Join(names, ", "))
	} else {
		b.WriteString("  ALLERGENS : none\n")
	}

	if len(p.ForbiddenFoodKeywords) > 0 {
		b.WriteString("\n  ABSOLUTE FOOD PROHIBITIONS\n")
		b.WriteString("  The following must never appear in any recommendation, meal plan,\n")
		b.WriteString("  recipe, or substitution suggestion, even as options for others:\n")
		kw := append([]string(nil), p.ForbiddenFoodKeywords...)
		sort.Strings(kw)
		for i := 0; i < len(kw); i += 8 {
			end := min(i+8, len(kw))
			b.WriteString("    " + strings.Join(kw[i:end], ", ") + "\n")
		}
		b.WriteString("  If a food contains, is made from, or is derived from any of the\n")
		b.WriteString("  above, it is also forbidden.\n")
	}

	if len(criticalFlags) > 0 {
		b.WriteString("\n  CRITICAL STATES - ADDRESS THESE FIRST:\n")
		for _, flag := range criticalFlags {
			b.WriteString("    - " + flag + "\n")
		}
	}

	if len(activeProtocols) > 0 {
		b.WriteString("\n  ACTIVE PROTOCOLS (priority order):\n")
		b.WriteString("    " + strings.Join(activeProtocols, ", ") + "\n")
	}

	b.WriteString("\n  USER CONTEXT:\n")
	fmt.Fprintf(&b, "    goal=%s | stress=%d/10 | energy=%d/10 | sleep=%s",
		p.Goal, p.StressLevel, p.EnergyLevel, p.SleepQuality)
	if p.SleepHours != nil {
		fmt.Fprintf(&b, " (%.1fh)", *p.SleepHours)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "    budget=%s | kitchen=%s\n", p.Budget, p.Kitchen)
	b.WriteString(blockRule)

	return b.String()
}

// PriorityBlock renders the ranked protocols, the solver eliminations and
// the daily nutrient targets.
func PriorityBlock(prioritized []domain.RankedProtocol, targets map[string]float64, solve *domain.SolveResult) string {
	var b strings.Builder

	b.WriteString(blockRule + "\n")
	b.WriteString("PROTOCOL PRIORITY SCORES:\n")
	shown := min(len(prioritized), 10)
	for i := 0; i < shown; i++ {
		p := prioritized[i]
		tier := "LOW"
		switch {
		case p.Score >= 0.60:
			tier = "HIGH"
		case p.Score >= 0.40:
			tier = "MODERATE"
		}
		fmt.Fprintf(&b, "  %2d. %-34s %.3f  %s\n", i+1, p.Protocol, p.Score, tier)
	}

	if solve != nil && len(solve.Skipped) > 0 {
		fmt.Fprintf(&b, "\nCONSTRAINT-FILTERED (%d protocols):\n", len(solve.Skipped))
		for i, sk := range solve.Skipped {
			if i == 4 {
				break
			}
			fmt.Fprintf(&b, "  - %s: %s\n", sk.Protocol, sk.Reason)
		}
	}

	b.WriteString("\nDAILY NUTRIENT TARGETS (from active protocols):\n")
	names := make([]string, 0, len(targets))
	for n := range targets {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(&b, "  - %-24s -> %.1f%s\n", strings.ReplaceAll(n, "_", " "), targets[n], nutrientUnit(n))
	}

	if solve != nil && solve.Summary != "" {
		b.WriteString("\n" + solve.Summary + "\n")
	}
	b.WriteString(blockRule)

	return b.String()
}

// foodContextNutrients are the reference nutrients shown in the context
// block threshold table.
var foodContextNutrients = []struct {
	key   string
	label string
}{
	{"protein_g", "Protein"},
	{"fiber_g", "Fiber"},
	{"iron_mg", "Iron"},
	{"magnesium_mg", "Magnesium"},
	{"calcium_mg", "Calcium"},
	{"tryptophan_mg", "Tryptophan"},
	{"vitamin_b12_ug", "Vitamin B12"},
	{"zinc_mg", "Zinc"},
}

// foodContextMicros are the micros appended to each food line when nonzero.
var foodContextMicros = []struct {
	key   string
	label string
}{
	{"magnesium_mg", "Mg"},
	{"iron_mg", "Fe"},
	{"tryptophan_mg", "Trp"},
	{"vitamin_b12_ug", "B12"},
	{"zinc_mg", "Zn"},
	{"calcium_mg", "Ca"},
	{"vitamin_c_mg", "VitC"},
}

// FoodContextBlock renders the nutrition database section of the coach
/// context: the daily threshold reference table plus per-protocol food lists
// scaled to real portions. Foods carrying any of the profile's forbidden
// keywords are filtered out, so the block never contradicts the hard
// constraints. Returns "" when no index is loaded.
func FoodContextBlock(p *domain.ParsedProfile, index *nutrition.Index) string {
	if index == nil || index.Len() == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(blockRule + "\n")
	fmt.Fprintf(&b, "NUTRITION DATABASE (%d foods, scaled to real portions)\n", index.Len())

	b.WriteString("\n  DAILY NUTRIENT REFERENCE (for meal plan construction):\n")
	for _, n := range foodContextNutrients {
		t := nutrition.Thresholds[n.key]
		unit := nutrientUnit(n.key)
		fmt.Fprintf(&b, "    %-12s deficient<%g%s  adequate=%g%s  optimal=%g%s\n",
			n.label, t.Deficient, unit, t.Adequate, unit, t.Optimal, unit)
	}

	// Critical states first, then the goal section, then gut health always.
	type section struct {
		title    string
		protocol string
	}
	var sections []section
	if p.EnergyLevel <= 4 {
		sections = append(sections, section{"ENERGY RESTORATION (iron, B12, B6)", "energy"})
	}
	if p.StressLevel >= 7 {
		sections = append(sections, section{"STRESS RELIEF (magnesium, complex carbs)", "stress"})
	}
	if p.SleepQuality == domain.SleepPoor || p.SleepQuality == domain.SleepCritical {
		sections = append(sections, section{"SLEEP SUPPORT (tryptophan, low sugar)", "sleep"})
	}
	if p.Mood == domain.MoodLow || p.Mood == domain.MoodCriticalLow {
		sections = append(sections, section{"MOOD SUPPORT (zinc, B12, choline)", "mood"})
	}
	switch p.Goal {
	case domain.GoalFatLoss:
		sections = append(sections, section{"FAT LOSS (high protein, low calorie)", "fat_loss"})
	case domain.GoalMuscleGain:
		sections = append(sections, section{"MUSCLE GAIN (very high protein, calorie dense)", "muscle_gain"})
	default:
		sections = append(sections, section{"HIGH-PROTEIN OPTIONS", "high_protein"})
	}
	sections = append(sections, section{"GUT HEALTH (high fiber)", "gut"})

	for _, s := range sections {
		var lines []string
		for _, f := range index.ProtocolFoods(s.protocol, 10) {
			if !foodAllowed(f, p.ForbiddenFoodKeywords) {
				continue
			}
			lines = append(lines, "    - "+formatScaledFood(nutrition.ScaleToPortion(f, 0)))
			if len(lines) == 6 {
				break
			}
		}
		if len(lines) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n  %s:\n", s.title)
		for _, line := range lines {
			b.WriteString(line + "\n")
		}
	}

	b.WriteString("\n  INSTRUCTIONS:\n")
	b.WriteString("  1. Reference foods by name and their per-serving values above.\n")
	b.WriteString("  2. Use the nutrient reference to classify intake as deficient, adequate, or optimal.\n")
	b.WriteString("  3. Build toward the optimal daily targets for the flagged nutrients.\n")
	b.WriteString("  4. Explain which protocol each chosen food addresses.\n")
	b.WriteString(blockRule)

	return b.String()
}

func foodAllowed(f *domain.Food, forbidden []string) bool {
	text := f.SearchText()
	for _, kw := range forbidden {
		if strings.Contains(text, kw) {
			return false
		}
	}
	return true
}

func formatScaledFood(sf nutrition.ScaledFood) string {
	n := sf.Nutrients
	line := fmt.Sprintf("%s (%.0fg): %.0f kcal | P:%.1fg C:%.1fg F:%.1fg",
		sf.Name, sf.PortionG, n["calories"], n["protein_g"], n["carbs_g"], n["fat_g"])

	var micros []string
	for _, m := range foodContextMicros {
		if v := n[m.key]; v > 0 {
			micros = append(micros, fmt.Sprintf("%s:%.1f%s", m.label, v, nutrientUnit(m.key)))
		}
	}
	if v := n["fiber_g"]; v > 0 {
		micros = append(micros, fmt.Sprintf("Fiber:%.1fg", v))
	}
	if len(micros) > 0 {
		line += " | " + strings.Join(micros, ", ")
	}
	return line
}

// SwapBlock renders a substitution result list for the coach to present.
func SwapBlock(rejected string, swaps []domain.SwapResult, p *domain.ParsedProfile) string {
	if len(swaps) == 0 {
		note := ""
		if p != nil {
			note = fmt.Sprintf(" (within %s constraints)", p.Diet)
		}
		return fmt.Sprintf("SWAP REQUEST: no suitable substitute found for %q%s.\n"+
			"Ask the user what macros or protocols they want to preserve, then\n"+
			"suggest a manual alternative.", rejected, note)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "MEAL SWAP: %q -> top substitutes\n", rejected)
	if p != nil {
		fmt.Fprintf(&b, "  Filtered for: %s", p.Diet)
		if p.HasAllergens() {
			names := make([]string, 0, len(p.Allergens))
			for _, a := range p.Allergens {
				if a != domain.AllergenNone {
					names = append(names, string(a))
				}
			}
			fmt.Fprintf(&b, " | allergen-free: %s", strings.Join(names, ", "))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	for i, s := range swaps {
		rec := s.Record
		fmt.Fprintf(&b, "  %d. %s  [%d%% match]\n", i+1, s.Name, int(s.FinalScore*100))
		fmt.Fprintf(&b, "     %.0f kcal | P%.1fg C%.1fg F%.1fg Fb%.1fg\n",
			rec.Calories, rec.ProteinG, rec.CarbsG, rec.FatG, rec.FiberG)
		fmt.Fprintf(&b, "     Why: %s\n", s.Why)
	}
	b.WriteString("\n  INSTRUCTION: present these options with brief explanations and\n")
	b.WriteString("  ask which one fits the user's schedule and taste.")

	return b.String()
}

func nutrientUnit(name string) string {
	switch {
	case strings.HasSuffix(name, "_ug"):
		return "ug"
	case strings.HasSuffix(name, "_mg"):
		return "mg"
	case strings.HasSuffix(name, "_g"):
		return "g"
	}
	return ""
}
