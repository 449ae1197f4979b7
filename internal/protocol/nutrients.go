package protocol

import "math"

// NutrientTargets maps active protocols to daily nutrient targets. Each
// protocol's base targets are scaled by max(0.5, severity) so urgent
// protocols dominate, and when several protocols want the same nutrient
// the maximum scaled target wins; summing would over-target.
func NutrientTargets(active map[string]float64) map[string]float64 {
	targets := make(map[string]float64)
	for proto, severity := range active {
		scale := math.Max(0.5, severity)
		for _, nt := range nutrientTargets[proto] {
			scaled := math.Round(nt.Target*scale*10) / 10
			if scaled > targets[nt.Nutrient] {
				targets[nt.Nutrient] = scaled
			}
		}
	}
	return targets
}
