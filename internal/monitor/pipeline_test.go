package monitor

import (
	"math/rand"
	"testing"

	"github.com/petro438/PM-Intel/internal/domain"
	"github.com/petro438/PM-Intel/internal/platform/kalshi"
)

func TestBuildDropsRejectedRecords(t *testing.T) {
	p := NewPipeline(testScorer())
	raw := []kalshi.Market{
		{Title: "Bitcoin above 100k", YesBid: 40, Volume: 200, TradesCount: 10, OpenInterest: 5000},
		{Title: "Election:yes", OpenInterest: 5000},
		{Title: "Thin market", OpenInterest: 10},
	}

	out := p.Build(raw, domain.TimeFrame1Hour)
	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}
	m := out[0]
	if m.Title != "Bitcoin above 100k" {
		t.Errorf("title = %q", m.Title)
	}
	if m.Category != domain.CategoryCrypto {
		t.Errorf("category = %q, want crypto", m.Category)
	}
	if m.Velocity != 20 {
		t.Errorf("velocity = %v, want 20", m.Velocity)
	}
	if m.PriceChange < -10 || m.PriceChange > 10 {
		t.Errorf("price change %v outside [-10, 10]", m.PriceChange)
	}
}

func TestBuildPreservesScanOrder(t *testing.T) {
	p := NewPipeline(testScorer())
	raw := []kalshi.Market{
		{Title: "one", OpenInterest: 1000},
		{Title: "two", OpenInterest: 1000},
		{Title: "three", OpenInterest: 1000},
	}
	out := p.Build(raw, domain.TimeFrame1Hour)
	want := []string{"one", "two", "three"}
	if len(out) != len(want) {
		t.Fatalf("len = %d, want %d", len(out), len(want))
	}
	for i := range want {
		if out[i].Title != want[i] {
			t.Fatalf("order = %v, want %v", titles(out), want)
		}
	}
}

func TestBuildVelocityUsesRawVolume(t *testing.T) {
	p := NewPipeline(testScorer())
	// Volume absent, 24h fallback present: the display volume falls back but
	// the velocity input stays at the raw zero.
	raw := []kalshi.Market{{Title: "x", Volume24H: 900, TradesCount: 10, OpenInterest: 1000}}
	out := p.Build(raw, domain.TimeFrame1Hour)
	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}
	if out[0].Volume != 900 {
		t.Errorf("display volume = %v, want 900", out[0].Volume)
	}
	if out[0].Velocity != 0 {
		t.Errorf("velocity = %v, want 0", out[0].Velocity)
	}
}

func TestBuildEmptyInput(t *testing.T) {
	p := NewPipeline(NewScorer(rand.New(rand.NewSource(1))))
	out := p.Build(nil, domain.TimeFrame1Hour)
	if out == nil || len(out) != 0 {
		t.Fatalf("want empty non-nil slice, got %v", out)
	}
}
