package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestLiquidityTier(t *testing.T) {
	cases := map[float64]LiquidityLevel{
		0:     LiquidityLow,
		1000:  LiquidityLow,
		1001:  LiquidityMedium,
		10000: LiquidityMedium,
		10001: LiquidityHigh,
	}
	for in, want := range cases {
		if got := LiquidityTier(in); got != want {
			t.Errorf("LiquidityTier(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		if !ValidCategory(string(c)) {
			t.Errorf("ValidCategory(%q) = false", c)
		}
	}
	for _, s := range []string{"", "all", "Sports", "finance"} {
		if ValidCategory(s) {
			t.Errorf("ValidCategory(%q) = true", s)
		}
	}
}

func TestMarketJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(Market{Title: "x", PriceChange: 1.5})
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	if !strings.Contains(s, `"priceChange":1.5`) {
		t.Errorf("priceChange field missing or renamed: %s", s)
	}
	if !strings.Contains(s, `"platform"`) || !strings.Contains(s, `"liquidity"`) {
		t.Errorf("unexpected field names: %s", s)
	}
}
