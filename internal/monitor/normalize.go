// Package monitor turns raw venue records into the ranked activity view:
// normalization, quality filtering, classification, scoring, and
// filter/sort/rank, plus the polling consumer that renders the result.
package monitor

import (
	"github.com/petro438/PM-Intel/internal/domain"
	"github.com/petro438/PM-Intel/internal/platform/kalshi"
)

// platformName identifies the source venue on every normalized record.
const platformName = "kalshi"

// placeholderTitle is used when a record carries no usable display text.
const placeholderTitle = "Unknown Market"

// defaultPrice is assumed when neither a yes-side bid nor a last trade price
// is present (cents).
const defaultPrice = 50

// Normalize maps a raw venue record into the internal Market shape, filling
// defaults for missing fields. A zero numeric field counts as missing, which
// is how the venue encodes absent values. Category and the derived scores are
// attached later in the pipeline. Normalize never fails.
func Normalize(m kalshi.Market) domain.Market {
	title := m.Title
	if title == "" {
		title = m.TickerName
	}
	if title == "" {
		title = placeholderTitle
	}

	price := m.YesBid
	if price == 0 {
		price = m.LastPrice
	}
	if price == 0 {
		price = defaultPrice
	}

	volume := m.Volume
	if volume == 0 {
		volume = m.Volume24H
	}

	return domain.Market{
		Platform:  platformName,
		Title:     title,
		Price:     price,
		Volume:    volume,
		Liquidity: m.OpenInterest,
		Trades:    m.TradesCount,
	}
}
