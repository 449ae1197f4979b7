// Runs the deterministic recommendation pipeline against a hardcoded
// demo profile and prints the plan context blocks. No database or API
// key required.
// Usage: go run scripts/recommend/main.go
package main

import (
	"fmt"

	"github.com/nourix/protocol-coach/internal/constraint"
	"github.com/nourix/protocol-coach/internal/llm"
	"github.com/nourix/protocol-coach/internal/profile"
	"github.com/nourix/protocol-coach/internal/protocol"
	"github.com/nourix/protocol-coach/internal/state"
)

func main() {
	raw := map[string]string{
		"diet_type":      "vegan",
		"allergies":      "peanuts",
		"goal":           "fat loss",
		"stress_level":   "9",
		"energy_level":   "2",
		"sleep_quality":  "poor",
		"sleep_schedule": "2am to 6am",
		"budget":         "low",
		"cooking_access": "none",
	}

	parsed := profile.Parse(raw)
	graph := constraint.NewGraph(parsed)

	st := state.Analyze(raw)
	severity := state.MapToProtocols(&st)

	prioritized := protocol.Prioritize(severity, st.Goals, nil)

	cs := constraint.BuildConstraints(raw)
	solve := constraint.Solve(prioritized, cs)

	topActive := make(map[string]float64, 10)
	for i, p := range prioritized {
		if i == 10 {
			break
		}
		topActive[p.Protocol] = p.Score
	}
	targets := protocol.NutrientTargets(topActive)

	flags := append(graph.CriticalFlags(), st.ComputedFlags...)

	fmt.Println(llm.ConstraintBlock(parsed, graph.ActiveProtocols(), flags))
	fmt.Println()
	fmt.Println(llm.PriorityBlock(prioritized, targets, &solve))
}
