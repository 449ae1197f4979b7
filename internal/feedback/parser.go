package feedback

import (
	"regexp"
	"strconv"
	"strings"
)

// SignalProtocols maps each natural-language feedback signal to the
// protocols it adjusts.
var SignalProtocols = map[string][]string{
	"energy":   {"energy_protocol", "b_complex_protocol", "electrolyte_protocol"},
	"focus":    {"cognitive_protocol", "omega_protocol", "blood_sugar_protocol"},
	"sleep":    {"sleep_protocol"},
	"stress":   {"stress_protocol", "gut_protocol", "anti_inflammatory_protocol"},
	"mood":     {"mood_protocol", "omega_protocol", "gut_protocol"},
	"gut":      {"gut_protocol", "probiotic_protocol"},
	"muscle":   {"muscle_protocol", "recovery_protocol", "performance_protocol"},
	"immune":   {"immune_protocol", "vitamin_c_protocol", "zinc_protocol"},
	"anxiety":  {"stress_protocol", "blood_sugar_protocol", "gut_protocol"},
	"hunger":   {"fat_loss_protocol", "blood_sugar_protocol"},
	"bloat":    {"gut_protocol", "probiotic_protocol"},
	"headache": {"hydration_protocol", "electrolyte_protocol"},
	"cramp":    {"electrolyte_protocol", "b_complex_protocol"},
}

var (
	explicitPattern = regexp.MustCompile(
		`\b(energy|focus|sleep|stress|mood|gut|muscle|immune|anxiety|hunger|bloat|headache|cramp)` +
			`\s*[:\-]?\s*([+-]?\d+(?:\.\d+)?)`)
	improvedPattern = regexp.MustCompile(
		`\b(?:my\s+)?(energy|focus|sleep|mood|gut|stress)\s+(?:is\s+)?(improved|better|great|good|up)\b`)
	worsenedPattern = regexp.MustCompile(
		`\b(?:my\s+)?(energy|focus|sleep|mood|gut|stress)\s+(?:is\s+)?(worse|bad|terrible|down|lower)\b`)
	posAdjPattern = regexp.MustCompile(`\b(?:more|better)\s+(energetic|focused|rested|calm|happy)\b`)
	negAdjPattern = regexp.MustCompile(`\b(?:less|worse|more)\s+(tired|stressed|anxious|bloated)\b`)
)

// adjSignal maps adjectives back to their underlying signal.
var adjSignal = map[string]string{
	"energetic": "energy", "focused": "focus", "rested": "sleep",
	"calm": "stress", "happy": "mood",
	"tired": "energy", "stressed": "stress", "anxious": "anxiety", "bloated": "bloat",
}

// ParseSignals extracts feedback signals from natural-language input.
// Explicit numeric mentions ("energy +2") win over adjective phrasing;
// later rules never overwrite a signal already set by an earlier one.
//
//	"energy +2, focus +1, sleep -1"  → {energy: 2, focus: 1, sleep: -1}
//	"I feel more energetic today"    → {energy: 1}
//	"my stress is worse"             → {stress: -1}
func ParseSignals(text string) map[string]float64 {
	signals := make(map[string]float64)
	tl := strings.ToLower(text)

	for _, m := range explicitPattern.FindAllStringSubmatch(tl, -1) {
		if v, err := strconv.ParseFloat(m[2], 64); err == nil {
			signals[m[1]] = v
		}
	}
	for _, m := range improvedPattern.FindAllStringSubmatch(tl, -1) {
		if _, ok := signals[m[1]]; !ok {
			signals[m[1]] = 1.0
		}
	}
	for _, m := range worsenedPattern.FindAllStringSubmatch(tl, -1) {
		if _, ok := signals[m[1]]; !ok {
			signals[m[1]] = -1.0
		}
	}
	for _, m := range posAdjPattern.FindAllStringSubmatch(tl, -1) {
		if key := adjSignal[m[1]]; key != "" {
			if _, ok := signals[key]; !ok {
				signals[key] = 1.0
			}
		}
	}
	for _, m := range negAdjPattern.FindAllStringSubmatch(tl, -1) {
		if key := adjSignal[m[1]]; key != "" {
			if _, ok := signals[key]; !ok {
				signals[key] = -1.0
			}
		}
	}
	return signals
}
