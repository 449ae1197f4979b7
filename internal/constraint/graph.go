package constraint

import (
	"sort"
	"strings"

	"github.com/nourix/protocol-coach/internal/domain"
)

// Graph is the single source of truth for constraint queries. It is built
// once from a parsed profile and every downstream stage queries it instead
// of re-deriving diet and allergen rules on its own.
type Graph struct {
	Profile *domain.ParsedProfile

	forbiddenKeywords map[string]struct{}
	activeProtocols   []string
	criticalFlags     []string
}

// NewGraph builds the graph and writes the derived forbidden sets back into
// the profile so callers holding only the profile see the same exclusions.
func NewGraph(pp *domain.ParsedProfile) *Graph {
	g := &Graph{Profile: pp}
	g.forbiddenKeywords = g.buildForbiddenKeywords()
	g.activeProtocols = g.buildActiveProtocols()
	g.criticalFlags = pp.CriticalFlags()

	pp.ForbiddenFoodKeywords = g.ForbiddenKeywords()
	pp.ForbiddenCategories = nil
	for _, a := range pp.Allergens {
		if a != domain.AllergenNone {
			pp.ForbiddenCategories = append(pp.ForbiddenCategories, string(a))
		}
	}
	return g
}

func (g *Graph) buildForbiddenKeywords() map[string]struct{} {
	banned := make(map[string]struct{})
	for _, kw := range dietForbidden[g.Profile.Diet] {
		banned[kw] = struct{}{}
	}
	for _, a := range g.Profile.Allergens {
		if a == domain.AllergenNone {
			continue
		}
		for _, kw := range allergenForbidden[a] {
			banned[kw] = struct{}{}
		}
	}
	return banned
}

// buildActiveProtocols walks the state dimensions most-critical first so the
// resulting order reflects priority, deduplicating as it goes.
func (g *Graph) buildActiveProtocols() []string {
	seen := make(map[string]struct{})
	var protos []string

	add := func(list []string) {
		for _, p := range list {
			if _, ok := seen[p]; !ok {
				seen[p] = struct{}{}
				protos = append(protos, p)
			}
		}
	}

	pp := g.Profile
	add(stressProtocols[pp.Stress])
	add(energyProtocols[pp.Energy])
	add(sleepProtocols[pp.SleepQuality])
	add(moodProtocols[pp.Mood])
	add(goalProtocols[pp.Goal])
	add(budgetProtocols[pp.Budget])
	add(kitchenProtocols[pp.Kitchen])

	for _, mustHave := range baselineProtocols {
		if _, ok := seen[mustHave]; !ok {
			seen[mustHave] = struct{}{}
			protos = append(protos, mustHave)
		}
	}
	return protos
}

// AllowsFood reports whether the food passes every constraint check:
// allergens, diet exclusions, forbidden keywords. A nil record never passes.
func (g *Graph) AllowsFood(food *domain.Food) bool {
	if food == nil {
		return false
	}
	combined := food.SearchText()
	for kw := range g.forbiddenKeywords {
		if strings.Contains(combined, kw) {
			return false
		}
	}
	return true
}

// FilterFoods returns only the foods the graph allows, preserving order.
func (g *Graph) FilterFoods(foods []*domain.Food) []*domain.Food {
	out := make([]*domain.Food, 0, len(foods))
	for _, f := range foods {
		if g.AllowsFood(f) {
			out = append(out, f)
		}
	}
	return out
}

// ActiveProtocols returns the activated protocols in priority order.
func (g *Graph) ActiveProtocols() []string {
	out := make([]string, len(g.activeProtocols))
	copy(out, g.activeProtocols)
	return out
}

// ForbiddenKeywords returns the banned keywords sorted for determinism.
func (g *Graph) ForbiddenKeywords() []string {
	out := make([]string, 0, len(g.forbiddenKeywords))
	for kw := range g.forbiddenKeywords {
		out = append(out, kw)
	}
	sort.Strings(out)
	return out
}

func (g *Graph) CriticalFlags() []string {
	out := make([]string, len(g.criticalFlags))
	copy(out, g.criticalFlags)
	return out
}

func (g *Graph) IsCritical() bool { return len(g.criticalFlags) > 0 }
