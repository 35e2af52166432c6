package monitor

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/petro438/PM-Intel/internal/domain"
)

// Table holds the interactive sort state of the ranked view and renders it.
// Selecting the active column toggles direction; selecting a different column
// switches the key and resets to descending.
type Table struct {
	sortBy SortKey
	dir    SortDir
}

// NewTable creates a Table sorted by velocity, descending.
func NewTable() *Table {
	return &Table{
		sortBy: SortVelocity,
		dir:    SortDesc,
	}
}

// Select registers a click on a sortable column.
func (t *Table) Select(col SortKey) {
	if t.sortBy == col {
		if t.dir == SortDesc {
			t.dir = SortAsc
		} else {
			t.dir = SortDesc
		}
		return
	}
	t.sortBy = col
	t.dir = SortDesc
}

// SortBy returns the active sort column.
func (t *Table) SortBy() SortKey { return t.sortBy }

// Dir returns the active sort direction.
func (t *Table) Dir() SortDir { return t.dir }

// Render writes the ranked list as an aligned text table.
func (t *Table) Render(w io.Writer, markets []domain.Market) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MARKET\tCATEGORY\tVELOCITY\tCHANGE\tLIQUIDITY\tPRICE")
	for _, m := range markets {
		title := m.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%+.2f%%\t%s (%s)\t%.1fc\n",
			title,
			m.Category,
			formatNumber(m.Velocity),
			m.PriceChange,
			formatNumber(m.Liquidity),
			domain.LiquidityTier(m.Liquidity),
			m.Price,
		)
	}
	fmt.Fprintf(tw, "\n%d markets\n", len(markets))
	tw.Flush()
}

// formatNumber abbreviates large values for display (1.2K, 3.4M).
func formatNumber(n float64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", n/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", n/1_000)
	default:
		return fmt.Sprintf("%.0f", n)
	}
}
