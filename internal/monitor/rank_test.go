package monitor

import (
	"fmt"
	"testing"

	"github.com/petro438/PM-Intel/internal/domain"
)

func rankedInput() []domain.Market {
	return []domain.Market{
		{Title: "a", Category: domain.CategoryCrypto, Velocity: 10, Liquidity: 500, Volume: 100, PriceChange: -2},
		{Title: "b", Category: domain.CategorySports, Velocity: 50, Liquidity: 2000, Volume: 300, PriceChange: 5},
		{Title: "c", Category: domain.CategoryCrypto, Velocity: 30, Liquidity: 15000, Volume: 200, PriceChange: 1},
		{Title: "d", Category: domain.CategoryOther, Velocity: 5, Liquidity: 50, Volume: 400, PriceChange: -8},
	}
}

func titles(ms []domain.Market) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Title
	}
	return out
}

func TestRankDefaultVelocityDescending(t *testing.T) {
	out := Rank(rankedInput(), RankOptions{Category: "all", SortBy: SortVelocity, Dir: SortDesc})
	want := []string{"b", "c", "a", "d"}
	got := titles(out)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestRankAscendingReversesDescending(t *testing.T) {
	in := rankedInput()
	desc := Rank(in, RankOptions{Category: "all", SortBy: SortVolume, Dir: SortDesc})
	asc := Rank(in, RankOptions{Category: "all", SortBy: SortVolume, Dir: SortAsc})
	if len(desc) != len(asc) {
		t.Fatalf("length mismatch %d vs %d", len(desc), len(asc))
	}
	for i := range desc {
		if desc[i].Title != asc[len(asc)-1-i].Title {
			t.Fatalf("asc is not the reverse of desc: %v vs %v", titles(desc), titles(asc))
		}
	}
}

func TestRankCategoryFilter(t *testing.T) {
	out := Rank(rankedInput(), RankOptions{Category: "crypto", SortBy: SortVelocity, Dir: SortDesc})
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	for _, m := range out {
		if m.Category != domain.CategoryCrypto {
			t.Errorf("category = %q, want crypto", m.Category)
		}
	}
}

func TestRankMinLiquidityFilter(t *testing.T) {
	out := Rank(rankedInput(), RankOptions{Category: "all", MinLiquidity: "1000", SortBy: SortVelocity, Dir: SortDesc})
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	for _, m := range out {
		if m.Liquidity < 1000 {
			t.Errorf("liquidity %v below threshold", m.Liquidity)
		}
	}
}

func TestRankNonNumericLiquidityMeansNoFilter(t *testing.T) {
	for _, s := range []string{"", "abc", "NaN", "+Inf"} {
		out := Rank(rankedInput(), RankOptions{Category: "all", MinLiquidity: s, SortBy: SortVelocity, Dir: SortDesc})
		if len(out) != 4 {
			t.Errorf("MinLiquidity %q: len = %d, want 4", s, len(out))
		}
	}
}

func TestRankTruncatesToDisplayBudget(t *testing.T) {
	in := make([]domain.Market, 250)
	for i := range in {
		in[i] = domain.Market{
			Title:    fmt.Sprintf("m%d", i),
			Category: domain.CategoryOther,
			Velocity: float64(i),
		}
	}
	out := Rank(in, RankOptions{Category: "all", SortBy: SortVelocity, Dir: SortDesc})
	if len(out) != 100 {
		t.Fatalf("len = %d, want 100", len(out))
	}
	if out[0].Velocity != 249 {
		t.Errorf("top velocity = %v, want 249", out[0].Velocity)
	}
}

func TestRankStableOnTies(t *testing.T) {
	in := []domain.Market{
		{Title: "first", Velocity: 10},
		{Title: "second", Velocity: 10},
		{Title: "third", Velocity: 10},
	}
	out := Rank(in, RankOptions{Category: "all", SortBy: SortVelocity, Dir: SortDesc})
	want := []string{"first", "second", "third"}
	for i := range want {
		if out[i].Title != want[i] {
			t.Fatalf("tie order = %v, want %v", titles(out), want)
		}
	}
}

func TestRankDoesNotModifyInput(t *testing.T) {
	in := rankedInput()
	Rank(in, RankOptions{Category: "all", SortBy: SortVelocity, Dir: SortDesc})
	if in[0].Title != "a" || in[3].Title != "d" {
		t.Error("input slice was reordered")
	}
}

func TestParseSortKey(t *testing.T) {
	cases := map[string]SortKey{
		"velocity":    SortVelocity,
		"priceChange": SortPriceChange,
		"liquidity":   SortLiquidity,
		"volume":      SortVolume,
		"bogus":       SortVelocity,
		"":            SortVelocity,
	}
	for in, want := range cases {
		if got := ParseSortKey(in); got != want {
			t.Errorf("ParseSortKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseMinLiquidity(t *testing.T) {
	cases := map[string]float64{
		"":     0,
		"abc":  0,
		"NaN":  0,
		"Inf":  0,
		"500":  500,
		"1.5":  1.5,
		"-10":  -10,
		"1e3":  1000,
	}
	for in, want := range cases {
		if got := ParseMinLiquidity(in); got != want {
			t.Errorf("ParseMinLiquidity(%q) = %v, want %v", in, got, want)
		}
	}
}
