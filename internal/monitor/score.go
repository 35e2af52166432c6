package monitor

import (
	"math"
	"math/rand"

	"github.com/petro438/PM-Intel/internal/domain"
)

// timeMultipliers normalizes the velocity score to the chosen time frame.
// An unrecognized frame falls back to 1.
var timeMultipliers = map[domain.TimeFrame]float64{
	domain.TimeFrame5Min:  12,
	domain.TimeFrame1Hour: 1,
	domain.TimeFrame24H:   1.0 / 24,
	domain.TimeFrame7Day:  1.0 / 168,
}

// Scorer computes the derived activity metrics for a market. The random
// source feeds the synthetic price-change signal; tests inject a seeded one.
type Scorer struct {
	rng *rand.Rand
}

// NewScorer creates a Scorer drawing from the given random source.
func NewScorer(rng *rand.Rand) *Scorer {
	return &Scorer{rng: rng}
}

// Velocity is the activity-intensity score: round(trades * volume * mult / 100)
// for the time frame's multiplier. A relative ranking signal, not a physical
// rate. Zero trades or volume yields zero, never an error.
func (s *Scorer) Velocity(trades int64, volume float64, frame domain.TimeFrame) float64 {
	mult, ok := timeMultipliers[frame]
	if !ok {
		mult = 1
	}
	return math.Round(float64(trades) * volume * mult / 100)
}

// PriceChange returns a signed percentage in [-10, +10] rounded to two
// decimals. There is no historical price input: this is a synthetic demo
// signal drawn uniformly, standing in for a real time-windowed price delta.
func (s *Scorer) PriceChange() float64 {
	change := (s.rng.Float64() - 0.5) * 20
	return math.Round(change*100) / 100
}
