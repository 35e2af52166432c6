package monitor

import (
	"math"
	"sort"
	"strconv"

	"github.com/petro438/PM-Intel/internal/domain"
)

// maxDisplay bounds the ranked view.
const maxDisplay = 100

// SortKey names a sortable numeric column.
type SortKey string

const (
	SortVelocity    SortKey = "velocity"
	SortPriceChange SortKey = "priceChange"
	SortLiquidity   SortKey = "liquidity"
	SortVolume      SortKey = "volume"
)

// SortDir is the sort direction.
type SortDir string

const (
	SortDesc SortDir = "desc"
	SortAsc  SortDir = "asc"
)

// ParseSortKey validates a sort key, falling back to velocity.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortVelocity, SortPriceChange, SortLiquidity, SortVolume:
		return SortKey(s)
	default:
		return SortVelocity
	}
}

// RankOptions are the user-chosen filters and ordering for the ranked view.
type RankOptions struct {
	// Category is "all" or one of the fixed category values.
	Category string
	// MinLiquidity is free text; non-numeric parses to 0, meaning no filter.
	MinLiquidity string
	SortBy       SortKey
	Dir          SortDir
}

// ParseMinLiquidity converts the free-text liquidity filter into a threshold.
// Empty, non-numeric, or non-finite input means no filter.
func ParseMinLiquidity(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Rank applies the user filters, sorts by the selected key (descending unless
// ascending is chosen), and truncates to the display budget. Equal keys keep
// their original scan order, so runs over identical input are reproducible.
// The input slice is not modified.
func Rank(markets []domain.Market, opts RankOptions) []domain.Market {
	minLiq := ParseMinLiquidity(opts.MinLiquidity)

	out := make([]domain.Market, 0, len(markets))
	for _, m := range markets {
		if opts.Category != "all" && opts.Category != "" && string(m.Category) != opts.Category {
			continue
		}
		if minLiq > 0 && m.Liquidity < minLiq {
			continue
		}
		out = append(out, m)
	}

	key := sortField(opts.SortBy)
	sort.SliceStable(out, func(i, j int) bool {
		if opts.Dir == SortAsc {
			return key(out[i]) < key(out[j])
		}
		return key(out[i]) > key(out[j])
	})

	if len(out) > maxDisplay {
		out = out[:maxDisplay]
	}
	return out
}

// sortField returns the accessor for a sort key.
func sortField(k SortKey) func(domain.Market) float64 {
	switch k {
	case SortPriceChange:
		return func(m domain.Market) float64 { return m.PriceChange }
	case SortLiquidity:
		return func(m domain.Market) float64 { return m.Liquidity }
	case SortVolume:
		return func(m domain.Market) float64 { return m.Volume }
	default:
		return func(m domain.Market) float64 { return m.Velocity }
	}
}
