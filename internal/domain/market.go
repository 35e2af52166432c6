package domain

// Category is the closed topical taxonomy for aggregated markets.
type Category string

const (
	CategorySports    Category = "sports"
	CategoryPolitics  Category = "politics"
	CategoryCrypto    Category = "crypto"
	CategoryEconomics Category = "economics"
	CategoryOther     Category = "other"
)

// Categories lists every valid Category value.
var Categories = []Category{
	CategorySports,
	CategoryPolitics,
	CategoryCrypto,
	CategoryEconomics,
	CategoryOther,
}

// LiquidityLevel buckets a market's open-interest proxy into display tiers.
type LiquidityLevel string

const (
	LiquidityLow    LiquidityLevel = "low"
	LiquidityMedium LiquidityLevel = "medium"
	LiquidityHigh   LiquidityLevel = "high"
)

// TimeFrame selects the velocity normalization window.
type TimeFrame string

const (
	TimeFrame5Min  TimeFrame = "5m"
	TimeFrame1Hour TimeFrame = "1h"
	TimeFrame24H   TimeFrame = "24h"
	TimeFrame7Day  TimeFrame = "7d"
)

// Market is the pipeline's view of a single venue listing. It is built once
// per aggregation run from one raw venue record and never mutated afterwards.
type Market struct {
	Platform    string   `json:"platform"`
	Title       string   `json:"title"`
	Price       float64  `json:"price"` // yes-side price in cents, 0-100
	Volume      float64  `json:"volume"`
	Liquidity   float64  `json:"liquidity"` // open-interest proxy
	Trades      int64    `json:"trades"`
	Category    Category `json:"category"`
	Velocity    float64  `json:"velocity"`
	PriceChange float64  `json:"priceChange"`
}

// LiquidityTier maps an open-interest figure to its display tier.
// Thresholds follow venue convention: <=1000 low, <=10000 medium, else high.
func LiquidityTier(liquidity float64) LiquidityLevel {
	switch {
	case liquidity > 10000:
		return LiquidityHigh
	case liquidity > 1000:
		return LiquidityMedium
	default:
		return LiquidityLow
	}
}

// ValidCategory reports whether s names a member of the fixed taxonomy.
func ValidCategory(s string) bool {
	for _, c := range Categories {
		if string(c) == s {
			return true
		}
	}
	return false
}
