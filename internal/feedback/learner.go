package feedback

import (
	"context"
	"math"

	"github.com/nourix/protocol-coach/internal/protocol"
)

// DefaultLearningRate is the weight step per unit of feedback.
const DefaultLearningRate = 0.05

// WeightsStore persists per-user learned protocol weights. Update must
// apply fn atomically so concurrent feedback for the same user cannot
// lose increments.
type WeightsStore interface {
	Get(ctx context.Context, userKey string) (map[string]float64, error)
	Update(ctx context.Context, userKey string, fn func(map[string]float64) map[string]float64) (map[string]float64, error)
}

// Learner applies feedback signals to a user's learned weight table.
type Learner struct {
	store WeightsStore
	rate  float64
}

func NewLearner(store WeightsStore, rate float64) *Learner {
	if rate <= 0 {
		rate = DefaultLearningRate
	}
	return &Learner{store: store, rate: rate}
}

// Weights returns the user's current learned weights, seeding from the
// base table when the user has no history yet.
func (l *Learner) Weights(ctx context.Context, userKey string) (map[string]float64, error) {
	w, err := l.store.Get(ctx, userKey)
	if err != nil {
		return nil, err
	}
	if len(w) == 0 {
		return seedWeights(), nil
	}
	return w, nil
}

// Apply folds feedback signals into the user's weight table and persists
// the result.
//
// A positive delta means the protocol was working, so it gets a modest
// boost (rate × 0.5). A negative delta means that area worsened and needs
// more attention, so the boost scales with the magnitude (rate × |delta|).
// Every updated weight is clamped to [0.10, 1.00].
func (l *Learner) Apply(ctx context.Context, userKey string, signals map[string]float64) (map[string]float64, error) {
	return l.store.Update(ctx, userKey, func(weights map[string]float64) map[string]float64 {
		if len(weights) == 0 {
			weights = seedWeights()
		}
		for signal, delta := range signals {
			step := l.rate * 0.5
			if delta <= 0 {
				step = l.rate * math.Abs(delta)
			}
			for _, proto := range SignalProtocols[signal] {
				if w, ok := weights[proto]; ok {
					weights[proto] = clampWeight(w + step)
				}
			}
		}
		return weights
	})
}

func seedWeights() map[string]float64 {
	w := make(map[string]float64, len(protocol.BaseWeights))
	for p, v := range protocol.BaseWeights {
		w[p] = v
	}
	return w
}

func clampWeight(w float64) float64 {
	if w < 0.10 {
		w = 0.10
	}
	if w > 1.00 {
		w = 1.00
	}
	return math.Round(w*10000) / 10000
}
