package monitor

import (
	"github.com/petro438/PM-Intel/internal/domain"
	"github.com/petro438/PM-Intel/internal/platform/kalshi"
)

// Pipeline assembles fully-populated Markets from raw venue records:
// quality filter, then normalize, classify, and score in one pass. The
// output order follows the input scan order.
type Pipeline struct {
	scorer *Scorer
}

// NewPipeline creates a Pipeline using the given Scorer.
func NewPipeline(scorer *Scorer) *Pipeline {
	return &Pipeline{scorer: scorer}
}

// Build runs every surviving raw record through the full transform for the
// chosen time frame. Records failing the quality predicate are dropped;
// everything else maps to exactly one Market.
func (p *Pipeline) Build(raw []kalshi.Market, frame domain.TimeFrame) []domain.Market {
	markets := make([]domain.Market, 0, len(raw))
	for _, r := range raw {
		if !QualityOK(r) {
			continue
		}

		m := Normalize(r)
		m.Category = Classify(m.Title)
		// Velocity intentionally uses the raw volume field, not the
		// 24h-fallback display volume.
		m.Velocity = p.scorer.Velocity(r.TradesCount, r.Volume, frame)
		m.PriceChange = p.scorer.PriceChange()
		markets = append(markets, m)
	}
	return markets
}
