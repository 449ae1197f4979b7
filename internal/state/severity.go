package state

import (
	"math"
	"strings"

	"github.com/nourix/protocol-coach/internal/domain"
)

type protocolSeverity struct {
	Protocol string
	Severity float64
}

// mentalStateProtocols maps each inferred behavioral tag to the protocols
// it activates and how urgently.
var mentalStateProtocols = map[string][]protocolSeverity{
	"high_stress":     {{"stress_protocol", 0.85}, {"gut_protocol", 0.60}, {"b_complex_protocol", 0.70}},
	"burnout_risk":    {{"stress_protocol", 1.00}, {"sleep_protocol", 0.90}, {"gut_protocol", 0.70}},
	"energy_crisis":   {{"energy_protocol", 0.90}, {"b_complex_protocol", 0.75}, {"electrolyte_protocol", 0.65}},
	"low_mood":        {{"mood_protocol", 0.80}, {"omega_protocol", 0.60}, {"gut_protocol", 0.55}},
	"sleep_deprived":  {{"sleep_protocol", 0.85}, {"energy_protocol", 0.65}},
	"anxiety":         {{"stress_protocol", 0.90}, {"blood_sugar_protocol", 0.75}, {"gut_protocol", 0.65}},
	"depression_risk": {{"mood_protocol", 0.90}, {"omega_protocol", 0.70}, {"vitamin_c_protocol", 0.55}},
	"low_focus":       {{"cognitive_protocol", 0.80}, {"blood_sugar_protocol", 0.70}, {"omega_protocol", 0.65}},
	"fatigue":         {{"energy_protocol", 0.85}, {"b_complex_protocol", 0.70}},
	"crash_risk":      {{"sleep_protocol", 1.00}, {"energy_protocol", 1.00}, {"stress_protocol", 0.90}},
}

var goalStateProtocols = map[string][]protocolSeverity{
	string(domain.GoalFatLoss):       {{"fat_loss_protocol", 0.80}, {"blood_sugar_protocol", 0.70}, {"gut_protocol", 0.60}},
	string(domain.GoalMuscleGain):    {{"muscle_protocol", 0.80}, {"recovery_protocol", 0.75}, {"performance_protocol", 0.65}},
	string(domain.GoalMaintenance):   {{"gut_protocol", 0.65}, {"immune_protocol", 0.65}, {"heart_protocol", 0.60}},
	string(domain.GoalGeneralHealth): {{"immune_protocol", 0.70}, {"gut_protocol", 0.70}, {"anti_inflammatory_protocol", 0.65}},
}

var dietStateProtocols = map[string][]protocolSeverity{
	"vegan":      {{"b_complex_protocol", 0.85}, {"energy_protocol", 0.75}, {"zinc_protocol", 0.70}, {"bone_protocol", 0.65}},
	"vegetarian": {{"b_complex_protocol", 0.70}, {"energy_protocol", 0.65}},
}

// MapToProtocols converts a user state into a protocol severity map. Each
// severity expresses urgency (0-1) for that protocol given the current
// state; when multiple sources contribute, the maximum wins so stacked
// signals never inflate the score.
func MapToProtocols(s *domain.UserState) map[string]float64 {
	raw := make(map[string][]float64)
	add := func(proto string, sev float64) {
		raw[proto] = append(raw[proto], sev)
	}
	addAll := func(list []protocolSeverity) {
		for _, ps := range list {
			add(ps.Protocol, ps.Severity)
		}
	}

	if s.SleepHours != nil {
		switch h := *s.SleepHours; {
		case h < 4:
			add("sleep_protocol", 1.00)
		case h < 5:
			add("sleep_protocol", 0.90)
		case h < 6:
			add("sleep_protocol", 0.75)
		case h < 7:
			add("sleep_protocol", 0.55)
		}
	}

	switch {
	case s.StressLevel >= 9:
		add("stress_protocol", 1.00)
		add("gut_protocol", 0.70)
	case s.StressLevel >= 7:
		add("stress_protocol", 0.80)
		add("gut_protocol", 0.55)
	case s.StressLevel >= 5:
		add("stress_protocol", 0.50)
	}

	switch {
	case s.EnergyLevel <= 2:
		add("energy_protocol", 1.00)
		add("b_complex_protocol", 0.75)
	case s.EnergyLevel <= 4:
		add("energy_protocol", 0.75)
		add("b_complex_protocol", 0.55)
	case s.EnergyLevel <= 6:
		add("energy_protocol", 0.40)
	}

	for _, tag := range s.MentalState {
		addAll(mentalStateProtocols[tag])
	}

	goals := s.Goals
	if len(goals) == 0 {
		goals = []string{string(domain.GoalGeneralHealth)}
	}
	for _, goal := range goals {
		list, ok := goalStateProtocols[goal]
		if !ok {
			list = goalStateProtocols[string(domain.GoalGeneralHealth)]
		}
		addAll(list)
	}

	diet := strings.ToLower(s.ConstraintsRaw.DietType)
	addAll(dietStateProtocols[diet])

	out := make(map[string]float64, len(raw))
	for proto, scores := range raw {
		maxScore := scores[0]
		for _, sc := range scores[1:] {
			if sc > maxScore {
				maxScore = sc
			}
		}
		out[proto] = math.Round(maxScore*100) / 100
	}
	return out
}
