package monitor

import (
	"strings"

	"github.com/petro438/PM-Intel/internal/platform/kalshi"
)

// minOpenInterest is the structural admission floor: records below this many
// contracts of open interest carry no usable signal.
const minOpenInterest = 100

// QualityOK reports whether a raw record is worth processing. It runs on the
// raw record, before normalization papers over missing fields: combo-market
// outcome rows (":yes"/":no" title suffixes) and records with absent, zero,
// or tiny open interest are rejected. Pure predicate, no side effects.
func QualityOK(m kalshi.Market) bool {
	title := m.Title
	if title == "" {
		title = m.TickerName
	}

	if strings.Contains(title, ":yes") || strings.Contains(title, ":no") {
		return false
	}
	if m.OpenInterest == 0 {
		return false
	}
	if m.OpenInterest < minOpenInterest {
		return false
	}
	return true
}
