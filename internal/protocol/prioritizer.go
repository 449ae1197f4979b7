package protocol

import (
	"math"
	"sort"

	"github.com/nourix/protocol-coach/internal/domain"
)

func round4(v float64) float64 { return math.Round(v*10000) / 10000 }

// goalAlignmentFor returns the highest alignment for a protocol across all
// of the user's goals. Unknown goals fall back to 0.50 per protocol.
func goalAlignmentFor(proto string, goals []string) float64 {
	if len(goals) == 0 {
		return 0.65
	}
	best := 0.0
	for _, goal := range goals {
		goalMap := goalAlignment[goal]
		a, ok := goalMap[proto]
		if !ok {
			if a, ok = goalMap[defaultAlignmentKey]; !ok {
				a = 0.50
			}
		}
		if a > best {
			best = a
		}
	}
	return best
}

func isConflicting(a, b string) bool {
	for _, pair := range conflicts {
		if (pair[0] == a && pair[1] == b) || (pair[0] == b && pair[1] == a) {
			return true
		}
	}
	return false
}

// ComputePriority is the core scoring formula: severity × weight ×
// goal alignment, rounded to 4 decimals. The range is 0 to slightly above
// 1.0 for a critical, perfectly aligned protocol.
func ComputePriority(severity, weight, alignment float64) float64 {
	return round4(severity * weight * alignment)
}

// Prioritize scores and ranks all active protocols.
//
// The base weight table is blended 70/30 with the per-user learned weights
// to prevent runaway drift, each protocol is scored by severity ×
// blended weight × goal alignment, the list is sorted descending, and
// lower-ranked protocols that conflict with a higher-ranked one are
// demoted by ×0.60 using the original rank order. The function is pure:
// identical inputs always produce identical output.
func Prioritize(active map[string]float64, goals []string, learned map[string]float64) []domain.RankedProtocol {
	weights := make(map[string]float64, len(BaseWeights))
	for p, w := range BaseWeights {
		weights[p] = w
	}
	for p, w := range learned {
		if base, ok := weights[p]; ok {
			weights[p] = round4(0.70*base + 0.30*w)
		}
	}

	scored := make([]domain.RankedProtocol, 0, len(active))
	for proto, severity := range active {
		w, ok := weights[proto]
		if !ok {
			w = 0.50
		}
		scored = append(scored, domain.RankedProtocol{
			Protocol: proto,
			Score:    ComputePriority(severity, w, goalAlignmentFor(proto, goals)),
		})
	}

	// Stable sort with name as tiebreaker: map iteration order must never
	// leak into the ranking.
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Protocol < scored[j].Protocol
	})

	// Conflict suppression over the original rank order: every protocol
	// marks its lower-ranked conflict partners for demotion before any
	// demoted score is looked at.
	demoted := make(map[string]struct{})
	result := make([]domain.RankedProtocol, 0, len(scored))
	for _, rp := range scored {
		score := rp.Score
		if _, hit := demoted[rp.Protocol]; hit {
			score = round4(score * 0.60)
		}
		result = append(result, domain.RankedProtocol{Protocol: rp.Protocol, Score: score})
		for _, other := range scored {
			if other.Protocol != rp.Protocol && isConflicting(rp.Protocol, other.Protocol) {
				demoted[other.Protocol] = struct{}{}
			}
		}
	}
	return result
}
