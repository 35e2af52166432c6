package handler

import (
	"encoding/json"
	"math/rand"
	"net/http/httptest"
	"testing"

	"github.com/petro438/PM-Intel/internal/aggregate"
	"github.com/petro438/PM-Intel/internal/domain"
	"github.com/petro438/PM-Intel/internal/monitor"
	"github.com/petro438/PM-Intel/internal/platform/kalshi"
)

func rankedFixture() *fakeAggregator {
	return &fakeAggregator{res: aggregate.Result{
		Markets: []kalshi.Market{
			{Title: "Bitcoin above 100k", YesBid: 40, Volume: 5000, TradesCount: 100, OpenInterest: 8000},
			{Title: "Trump wins election", YesBid: 55, Volume: 9000, TradesCount: 300, OpenInterest: 20000},
			{Title: "NFL championship winner", YesBid: 30, Volume: 2000, TradesCount: 50, OpenInterest: 3000},
		},
		Pages:         1,
		TotalScanned:  200,
		TotalReturned: 3,
	}}
}

func newRankedHandler(agg Aggregator) *RankedHandler {
	pipeline := monitor.NewPipeline(monitor.NewScorer(rand.New(rand.NewSource(1))))
	return NewRankedHandler(agg, pipeline, 500, testLogger())
}

func TestRankedDefaultOrdering(t *testing.T) {
	h := newRankedHandler(rankedFixture())

	rec := httptest.NewRecorder()
	h.Ranked(rec, httptest.NewRequest("GET", "/api/monitor/markets", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Markets       []domain.Market `json:"markets"`
		Total         int             `json:"total"`
		TotalScanned  int             `json:"total_scanned"`
		TotalReturned int             `json:"total_returned"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Total != 3 || len(body.Markets) != 3 {
		t.Fatalf("total = %d, len = %d, want 3", body.Total, len(body.Markets))
	}
	if body.TotalScanned != 200 {
		t.Errorf("total_scanned = %d, want 200", body.TotalScanned)
	}
	// Default sort is velocity descending; the politics market has the most
	// trades and volume so it ranks first.
	if body.Markets[0].Title != "Trump wins election" {
		t.Errorf("top market = %q", body.Markets[0].Title)
	}
	for i := 1; i < len(body.Markets); i++ {
		if body.Markets[i].Velocity > body.Markets[i-1].Velocity {
			t.Errorf("velocity order violated at %d", i)
		}
	}
}

func TestRankedCategoryFilter(t *testing.T) {
	h := newRankedHandler(rankedFixture())

	rec := httptest.NewRecorder()
	h.Ranked(rec, httptest.NewRequest("GET", "/api/monitor/markets?category=crypto", nil))

	var body struct {
		Markets []domain.Market `json:"markets"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Markets) != 1 {
		t.Fatalf("len = %d, want 1", len(body.Markets))
	}
	if body.Markets[0].Category != domain.CategoryCrypto {
		t.Errorf("category = %q", body.Markets[0].Category)
	}
}

func TestRankedMinLiquidityAndSortParams(t *testing.T) {
	h := newRankedHandler(rankedFixture())

	rec := httptest.NewRecorder()
	h.Ranked(rec, httptest.NewRequest("GET", "/api/monitor/markets?min_liquidity=5000&sort=liquidity&dir=asc", nil))

	var body struct {
		Markets []domain.Market `json:"markets"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Markets) != 2 {
		t.Fatalf("len = %d, want 2", len(body.Markets))
	}
	if body.Markets[0].Liquidity > body.Markets[1].Liquidity {
		t.Error("ascending liquidity order violated")
	}
}
