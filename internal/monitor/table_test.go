package monitor

import (
	"strings"
	"testing"

	"github.com/petro438/PM-Intel/internal/domain"
)

func TestTableDefaults(t *testing.T) {
	tbl := NewTable()
	if tbl.SortBy() != SortVelocity {
		t.Errorf("sort = %q, want velocity", tbl.SortBy())
	}
	if tbl.Dir() != SortDesc {
		t.Errorf("dir = %q, want desc", tbl.Dir())
	}
}

func TestTableSelectTogglesSameColumn(t *testing.T) {
	tbl := NewTable()
	tbl.Select(SortVelocity)
	if tbl.Dir() != SortAsc {
		t.Errorf("dir = %q, want asc after toggle", tbl.Dir())
	}
	tbl.Select(SortVelocity)
	if tbl.Dir() != SortDesc {
		t.Errorf("dir = %q, want desc after second toggle", tbl.Dir())
	}
}

func TestTableSelectNewColumnResetsDescending(t *testing.T) {
	tbl := NewTable()
	tbl.Select(SortVelocity) // now asc
	tbl.Select(SortLiquidity)
	if tbl.SortBy() != SortLiquidity {
		t.Errorf("sort = %q, want liquidity", tbl.SortBy())
	}
	if tbl.Dir() != SortDesc {
		t.Errorf("dir = %q, want desc on column switch", tbl.Dir())
	}
}

func TestTableRender(t *testing.T) {
	tbl := NewTable()
	var sb strings.Builder
	tbl.Render(&sb, []domain.Market{
		{Title: "Bitcoin above 100k", Category: domain.CategoryCrypto, Velocity: 1500, PriceChange: 2.5, Liquidity: 12000, Price: 42},
	})
	out := sb.String()
	if !strings.Contains(out, "Bitcoin above 100k") {
		t.Error("title missing from output")
	}
	if !strings.Contains(out, "1.5K") {
		t.Error("abbreviated velocity missing")
	}
	if !strings.Contains(out, "12.0K (high)") {
		t.Error("liquidity with tier missing")
	}
	if !strings.Contains(out, "1 markets") {
		t.Error("count footer missing")
	}
}

func TestFormatNumber(t *testing.T) {
	cases := map[float64]string{
		999:       "999",
		1000:      "1.0K",
		1500:      "1.5K",
		1_000_000: "1.0M",
		2_340_000: "2.3M",
	}
	for in, want := range cases {
		if got := formatNumber(in); got != want {
			t.Errorf("formatNumber(%v) = %q, want %q", in, got, want)
		}
	}
}
