package aggregate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/petro438/PM-Intel/internal/platform/kalshi"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeVenue serves scripted pages keyed by request order. A nil page entry
// makes that request fail.
type fakeVenue struct {
	pages []*kalshi.MarketsPage
	calls int
}

func (f *fakeVenue) GetMarkets(ctx context.Context, limit int, status, cursor string) (kalshi.MarketsPage, error) {
	if limit != 200 {
		return kalshi.MarketsPage{}, fmt.Errorf("unexpected limit %d", limit)
	}
	if f.calls >= len(f.pages) {
		return kalshi.MarketsPage{}, errors.New("no more scripted pages")
	}
	p := f.pages[f.calls]
	f.calls++
	if p == nil {
		return kalshi.MarketsPage{}, errors.New("venue unavailable")
	}
	return *p, nil
}

// makePage builds a full page where qualifying records have open interest
// above the threshold and the rest sit below it.
func makePage(qualifying, total int, cursor string) *kalshi.MarketsPage {
	p := &kalshi.MarketsPage{Cursor: cursor}
	for i := 0; i < total; i++ {
		oi := 10.0
		if i < qualifying {
			oi = 1000
		}
		p.Markets = append(p.Markets, kalshi.Market{
			Ticker:       fmt.Sprintf("MKT-%d", i),
			OpenInterest: oi,
		})
	}
	return p
}

func TestFetchTwoPagesWithEarlyFilter(t *testing.T) {
	venue := &fakeVenue{pages: []*kalshi.MarketsPage{
		makePage(150, 200, "next"),
		makePage(100, 200, ""),
	}}
	f := NewFetcher(venue, testLogger())

	res := f.Fetch(context.Background(), "open", 500)

	if res.TotalScanned != 400 {
		t.Errorf("total_scanned = %d, want 400", res.TotalScanned)
	}
	if res.TotalReturned != 250 {
		t.Errorf("total_returned = %d, want 250", res.TotalReturned)
	}
	if len(res.Markets) != 250 {
		t.Errorf("len(markets) = %d, want 250", len(res.Markets))
	}
	if res.Err != "" {
		t.Errorf("unexpected error: %s", res.Err)
	}
	if venue.calls != 2 {
		t.Errorf("venue calls = %d, want 2", venue.calls)
	}
}

func TestFetchFirstPageFails(t *testing.T) {
	venue := &fakeVenue{pages: []*kalshi.MarketsPage{nil}}
	f := NewFetcher(venue, testLogger())

	res := f.Fetch(context.Background(), "open", 500)

	if len(res.Markets) != 0 {
		t.Errorf("len(markets) = %d, want 0", len(res.Markets))
	}
	if res.Markets == nil {
		t.Error("markets must be an empty slice, not nil")
	}
	if res.TotalScanned != 0 {
		t.Errorf("total_scanned = %d, want 0", res.TotalScanned)
	}
	if res.TotalReturned != 0 {
		t.Errorf("total_returned = %d, want 0", res.TotalReturned)
	}
	if res.Err == "" {
		t.Error("expected a diagnostic on the result")
	}
}

func TestFetchMidWalkFailureKeepsPartialResults(t *testing.T) {
	venue := &fakeVenue{pages: []*kalshi.MarketsPage{
		makePage(50, 200, "a"),
		makePage(50, 200, "b"),
		nil,
	}}
	f := NewFetcher(venue, testLogger())

	res := f.Fetch(context.Background(), "open", 500)

	if res.TotalScanned != 400 {
		t.Errorf("total_scanned = %d, want 400", res.TotalScanned)
	}
	if res.TotalReturned != 100 {
		t.Errorf("total_returned = %d, want 100", res.TotalReturned)
	}
	if res.Err == "" {
		t.Error("expected a diagnostic on the result")
	}
}

func TestFetchStopsOnMissingCursor(t *testing.T) {
	venue := &fakeVenue{pages: []*kalshi.MarketsPage{
		makePage(10, 200, ""),
	}}
	f := NewFetcher(venue, testLogger())

	res := f.Fetch(context.Background(), "open", 500)

	if venue.calls != 1 {
		t.Errorf("venue calls = %d, want 1", venue.calls)
	}
	if res.TotalScanned != 200 {
		t.Errorf("total_scanned = %d, want 200", res.TotalScanned)
	}
}

func TestFetchHonorsPageBudget(t *testing.T) {
	pages := make([]*kalshi.MarketsPage, 10)
	for i := range pages {
		pages[i] = makePage(10, 200, "more")
	}
	venue := &fakeVenue{pages: pages}
	f := NewFetcher(venue, testLogger())

	res := f.Fetch(context.Background(), "open", 500)

	if venue.calls != 5 {
		t.Errorf("venue calls = %d, want 5", venue.calls)
	}
	if res.TotalScanned != 1000 {
		t.Errorf("total_scanned = %d, want 1000", res.TotalScanned)
	}
	if res.TotalReturned != 50 {
		t.Errorf("total_returned = %d, want 50", res.TotalReturned)
	}
}

func TestFetchStopsAtRecordCap(t *testing.T) {
	pages := make([]*kalshi.MarketsPage, 5)
	for i := range pages {
		pages[i] = makePage(200, 200, "more")
	}
	venue := &fakeVenue{pages: pages}
	f := NewFetcher(venue, testLogger())

	res := f.Fetch(context.Background(), "open", 500)

	// 200 qualifying per page: the cap trips once 500 have accumulated,
	// which happens after the third page.
	if venue.calls != 3 {
		t.Errorf("venue calls = %d, want 3", venue.calls)
	}
	if res.TotalReturned != 600 {
		t.Errorf("total_returned = %d, want 600", res.TotalReturned)
	}
}
