package nutrition

import (
	"context"
	"sort"
	"strings"

	"github.com/nourix/protocol-coach/internal/domain"
)

// protocolTags maps short protocol names to the tag used in the food index.
// Unlisted protocols resolve to "<name>_protocol".
var protocolTags = map[string]string{
	"stress":       "stress_protocol",
	"energy":       "energy_protocol",
	"sleep":        "sleep_protocol",
	"gut":          "gut_protocol",
	"muscle":       "muscle_protocol",
	"fat_loss":     "fat_loss_protocol",
	"muscle_gain":  "muscle_gain_protocol",
	"mood":         "mood_protocol",
	"bone":         "bone_protocol",
	"high_protein": "high_protein",
	"low_calorie":  "low_calorie",
	"high_fiber":   "high_fiber",
	"magnesium":    "magnesium_rich",
	"iron":         "iron_rich",
	"tryptophan":   "tryptophan_rich",
	"b12":          "b12_rich",
	"zinc":         "zinc_rich",
	"calcium":      "calcium_rich",
}

// FoodLister is the slice of the food repository the index needs.
type FoodLister interface {
	LoadAll(ctx context.Context) ([]*domain.Food, error)
}

// Index is the in-memory nutrition database: exact, fuzzy, keyword, and
// tag lookups over per-100g food records. Built once at startup and
// read-only afterwards, so it is safe for concurrent use without locking.
type Index struct {
	foods    map[string]*domain.Food
	keys     []string // sorted, for deterministic iteration
	tagIndex map[string][]string
}

// NewIndex builds the index from a food list.
func NewIndex(foods []*domain.Food) *Index {
	idx := &Index{
		foods:    make(map[string]*domain.Food, len(foods)),
		tagIndex: make(map[string][]string),
	}
	for _, f := range foods {
		key := strings.ToLower(strings.TrimSpace(f.Name))
		if f.Key != "" {
			key = f.Key
		}
		if _, dup := idx.foods[key]; dup {
			continue
		}
		idx.foods[key] = f
		idx.keys = append(idx.keys, key)
		for _, tag := range f.Tags {
			idx.tagIndex[tag] = append(idx.tagIndex[tag], key)
		}
	}
	sort.Strings(idx.keys)
	for _, names := range idx.tagIndex {
		sort.Strings(names)
	}
	return idx
}

// Load builds the index from the repository's full food table.
func Load(ctx context.Context, lister FoodLister) (*Index, error) {
	foods, err := lister.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return NewIndex(foods), nil
}

func (idx *Index) Len() int { return len(idx.foods) }

// Lookup is an exact case-insensitive lookup by food name.
func (idx *Index) Lookup(name string) (*domain.Food, bool) {
	f, ok := idx.foods[strings.ToLower(strings.TrimSpace(name))]
	return f, ok
}

const fuzzyCutoff = 0.45

// FuzzySearch returns up to topN foods whose names are most similar to the
// query, using bigram similarity with a 0.45 cutoff.
func (idx *Index) FuzzySearch(query string, topN int) []*domain.Food {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || topN <= 0 {
		return nil
	}

	type scored struct {
		key   string
		ratio float64
	}
	var matches []scored
	for _, key := range idx.keys {
		if r := bigramSimilarity(q, key); r >= fuzzyCutoff {
			matches = append(matches, scored{key, r})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].ratio != matches[j].ratio {
			return matches[i].ratio > matches[j].ratio
		}
		return matches[i].key < matches[j].key
	})

	if len(matches) > topN {
		matches = matches[:topN]
	}
	out := make([]*domain.Food, len(matches))
	for i, m := range matches {
		out[i] = idx.foods[m.key]
	}
	return out
}

// SearchByKeyword is a substring search across food names.
func (idx *Index) SearchByKeyword(keyword string, topN int) []*domain.Food {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" || topN <= 0 {
		return nil
	}
	var out []*domain.Food
	for _, key := range idx.keys {
		if strings.Contains(key, kw) {
			out = append(out, idx.foods[key])
			if len(out) >= topN {
				break
			}
		}
	}
	return out
}

// ProtocolFoods returns up to topN foods tagged for the given protocol.
func (idx *Index) ProtocolFoods(protocol string, topN int) []*domain.Food {
	p := strings.ToLower(protocol)
	tag, ok := protocolTags[p]
	if !ok {
		tag = p
		if !strings.HasSuffix(tag, "_protocol") {
			tag = p + "_protocol"
		}
	}
	var out []*domain.Food
	for _, key := range idx.tagIndex[tag] {
		out = append(out, idx.foods[key])
		if len(out) >= topN {
			break
		}
	}
	return out
}

// All iterates every food record in sorted key order.
func (idx *Index) All(fn func(key string, f *domain.Food) bool) {
	for _, key := range idx.keys {
		if !fn(key, idx.foods[key]) {
			return
		}
	}
}

// bigramSimilarity is the Dice coefficient over character bigrams. It
// tracks closely with sequence-matcher ratios for short food names while
// staying O(n) per candidate.
func bigramSimilarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if len(a) < 2 || len(b) < 2 {
		return 0.0
	}
	grams := make(map[string]int)
	for i := 0; i < len(a)-1; i++ {
		grams[a[i:i+2]]++
	}
	shared := 0
	for i := 0; i < len(b)-1; i++ {
		g := b[i : i+2]
		if grams[g] > 0 {
			grams[g]--
			shared++
		}
	}
	return 2.0 * float64(shared) / float64(len(a)+len(b)-2)
}
