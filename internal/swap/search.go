package swap

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/nourix/protocol-coach/internal/constraint"
	"github.com/nourix/protocol-coach/internal/domain"
	"github.com/nourix/protocol-coach/internal/nutrition"
)

// similarityWeights are the nutrients compared between two foods and how
// much each contributes to the similarity score. Macros dominate; micros
// fine-tune.
var similarityWeights = []struct {
	Nutrient string
	Weight   float64
}{
	{"calories", 0.20},
	{"protein_g", 0.25},
	{"carbs_g", 0.15},
	{"fat_g", 0.10},
	{"fiber_g", 0.10},
	{"iron_mg", 0.04},
	{"magnesium_mg", 0.04},
	{"calcium_mg", 0.03},
	{"tryptophan_mg", 0.04},
	{"vitamin_b12_ug", 0.03},
	{"zinc_mg", 0.02},
}

// protocolTagMarkers are the non-"_protocol" tags that still count as
// protocol-relevant for overlap scoring.
var protocolTagMarkers = map[string]struct{}{
	"high_protein": {}, "high_fiber": {}, "iron_rich": {}, "magnesium_rich": {},
	"tryptophan_rich": {}, "b12_rich": {}, "zinc_rich": {}, "calcium_rich": {},
	"low_calorie": {}, "energy_dense": {},
}

// unpracticalMarkers flag research-database entries that are nutritionally
// real but never appear in normal meal planning.
var unpracticalMarkers = []string{
	"(alaska native)", "(american indian)", "(navajo)", "(native)",
	", raw", ", headless", ", whole", ", roe", ", liver", ", organs",
	", gizzard", ", tongue", ", brain", ", heart", ", kidney",
	"native food",
}

const (
	similarityShare = 0.60
	overlapShare    = 0.40
	minFinalScore   = 0.15
)

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }

// nutrientSimilarity computes a 0-1 weighted ratio similarity between two
// per-100g records. Both-zero nutrients count as a perfect match on that
// nutrient; one-zero counts the weight with no credit.
func nutrientSimilarity(ref, cand map[string]float64) float64 {
	totalWeight := 0.0
	weightedScore := 0.0
	for _, sw := range similarityWeights {
		refVal, candVal := ref[sw.Nutrient], cand[sw.Nutrient]
		switch {
		case refVal == 0 && candVal == 0:
			weightedScore += sw.Weight
			totalWeight += sw.Weight
		case refVal == 0 || candVal == 0:
			totalWeight += sw.Weight
		default:
			ratio := math.Min(refVal, candVal) / math.Max(refVal, candVal)
			weightedScore += sw.Weight * ratio
			totalWeight += sw.Weight
		}
	}
	if totalWeight == 0 {
		return 0.0
	}
	return round3(weightedScore / totalWeight)
}

// protocolOverlap is the fraction of the reference protocol tags the
// candidate shares. A reference with no protocol tags scores neutral 0.5.
func protocolOverlap(refTags, candTags []string) float64 {
	protoTags := make(map[string]struct{})
	for _, t := range refTags {
		if strings.Contains(t, "_protocol") {
			protoTags[t] = struct{}{}
			continue
		}
		if _, ok := protocolTagMarkers[t]; ok {
			protoTags[t] = struct{}{}
		}
	}
	if len(protoTags) == 0 {
		return 0.5
	}
	shared := 0
	for _, t := range candTags {
		if _, ok := protoTags[t]; ok {
			shared++
		}
	}
	return math.Round(float64(shared)/float64(len(protoTags))*100) / 100
}

func isPracticalFood(f *domain.Food) bool {
	name := strings.ToLower(f.Name)
	for _, marker := range unpracticalMarkers {
		if strings.Contains(name, marker) {
			return false
		}
	}
	return len(f.Tags) >= 1
}

// Searcher finds constraint-safe nutritional substitutes for rejected
// foods using the in-memory nutrition index.
type Searcher struct {
	index *nutrition.Index
}

func NewSearcher(index *nutrition.Index) *Searcher {
	return &Searcher{index: index}
}

// resolve finds the reference record for a rejected food name: exact
// lookup, then fuzzy, then keyword on the first word.
// Resolve maps a free-text food mention onto an index record via the
// exact -> fuzzy -> keyword chain.
func (s *Searcher) Resolve(rejected string) (*domain.Food, bool) {
	return s.resolve(strings.ToLower(strings.TrimSpace(rejected)))
}

func (s *Searcher) resolve(rejected string) (*domain.Food, bool) {
	if f, ok := s.index.Lookup(rejected); ok {
		return f, true
	}
	if matches := s.index.FuzzySearch(rejected, 3); len(matches) > 0 {
		return matches[0], true
	}
	fields := strings.Fields(rejected)
	if len(fields) > 0 {
		if matches := s.index.SearchByKeyword(fields[0], 5); len(matches) > 0 {
			return matches[0], true
		}
	}
	return nil, false
}

// Search returns the top-n constraint-safe substitutes for a rejected
// food, best first. A nil graph skips constraint filtering. An unknown
// food yields an empty result, never an error: swaps degrade gracefully.
func (s *Searcher) Search(rejected string, graph *constraint.Graph, activeProtocols []string, n int) []domain.SwapResult {
	rejected = strings.ToLower(strings.TrimSpace(rejected))
	if rejected == "" || n <= 0 {
		return nil
	}
	ref, ok := s.resolve(rejected)
	if !ok {
		return nil
	}

	refName := strings.ToLower(ref.Name)
	refNutrients := ref.Nutrients()

	// The reference tags plus the user's top active protocols form the
	// boost set the candidates are scored against.
	boostTags := make([]string, 0, len(ref.Tags)+10)
	boostSet := make(map[string]struct{})
	addBoost := func(t string) {
		if _, dup := boostSet[t]; !dup {
			boostSet[t] = struct{}{}
			boostTags = append(boostTags, t)
		}
	}
	for _, t := range ref.Tags {
		addBoost(t)
	}
	limit := len(activeProtocols)
	if limit > 5 {
		limit = 5
	}
	for _, p := range activeProtocols[:limit] {
		addBoost(p)
		addBoost(strings.Replace(p, "_protocol", "_rich", 1))
	}

	var results []domain.SwapResult
	s.index.All(func(key string, cand *domain.Food) bool {
		// Skip the rejected food itself and close name matches.
		if strings.Contains(key, refName) || strings.Contains(refName, key) {
			return true
		}
		if strings.Contains(key, rejected) {
			return true
		}
		if !isPracticalFood(cand) {
			return true
		}
		if graph != nil && !graph.AllowsFood(cand) {
			return true
		}

		sim := nutrientSimilarity(refNutrients, cand.Nutrients())
		overlap := protocolOverlap(boostTags, cand.Tags)
		final := round3(sim*similarityShare + overlap*overlapShare)
		if final < minFinalScore {
			return true
		}

		results = append(results, domain.SwapResult{
			Name:            cand.Name,
			Similarity:      sim,
			ProtocolOverlap: overlap,
			FinalScore:      final,
			Record:          cand,
			Why:             explain(ref, cand, boostSet),
		})
		return true
	})

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].FinalScore != results[j].FinalScore {
			return results[i].FinalScore > results[j].FinalScore
		}
		return results[i].Name < results[j].Name
	})
	if len(results) > n {
		results = results[:n]
	}
	return results
}

// explain builds the human-readable reason a candidate was suggested.
func explain(ref, cand *domain.Food, boostSet map[string]struct{}) string {
	var parts []string
	if ref.Calories > 0 && cand.Calories > 0 {
		diffPct := math.Abs(ref.Calories-cand.Calories) / ref.Calories * 100
		parts = append(parts, fmt.Sprintf("~%.0f kcal/100g (%.0f%% calorie diff)", cand.Calories, diffPct))
	}
	if ref.ProteinG > 0 && cand.ProteinG > 0 {
		parts = append(parts, fmt.Sprintf("protein %.1fg vs %.1fg", cand.ProteinG, ref.ProteinG))
	}
	var shared []string
	for _, t := range cand.Tags {
		if _, ok := boostSet[t]; ok {
			label := strings.Replace(t, "_protocol", "", 1)
			label = strings.Replace(label, "_rich", " rich", 1)
			shared = append(shared, label)
		}
	}
	if len(shared) > 0 {
		if len(shared) > 3 {
			shared = shared[:3]
		}
		parts = append(parts, "matches: "+strings.Join(shared, ", "))
	}
	if len(parts) == 0 {
		return "nutritionally similar"
	}
	return strings.Join(parts, " | ")
}
