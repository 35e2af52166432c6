// Package aggregate implements the bounded multi-page fetch-and-merge loop
// against the venue's cursor-paginated market listing.
package aggregate

import (
	"context"
	"log/slog"

	"github.com/petro438/PM-Intel/internal/platform/kalshi"
)

const (
	// pageSize is the fixed per-page limit requested from the venue.
	pageSize = 200
	// maxPages bounds the number of sequential page requests per run.
	maxPages = 5
	// maxQualityRecords stops the walk once enough filtered records have
	// accumulated.
	maxQualityRecords = 500
)

// PageFetcher retrieves one page of the venue's market listing.
type PageFetcher interface {
	GetMarkets(ctx context.Context, limit int, status, cursor string) (kalshi.MarketsPage, error)
}

// Result is the outcome of one aggregation run. It is always well-formed:
// upstream failures terminate the walk early but keep whatever accumulated.
type Result struct {
	Markets       []kalshi.Market `json:"markets"`
	Pages         int             `json:"-"`
	TotalScanned  int             `json:"total_scanned"`
	TotalReturned int             `json:"total_returned"`
	// Err carries a diagnostic when the walk ended on a failed page. The
	// records gathered before the failure are still present.
	Err string `json:"-"`
}

// Fetcher drives bounded cursor pagination with an early liquidity filter.
type Fetcher struct {
	client PageFetcher
	logger *slog.Logger
}

// NewFetcher creates a Fetcher backed by the given page client.
func NewFetcher(client PageFetcher, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		client: client,
		logger: logger,
	}
}

// Fetch walks the listing pages for the given status filter, keeping records
// whose open interest is at or above minLiquidity. The walk stops on the
// first of: a failed page request, a missing cursor, the page budget, or the
// accumulated-record cap. It never returns an error; a run where even the
// first page fails yields an empty Result.
func (f *Fetcher) Fetch(ctx context.Context, status string, minLiquidity float64) Result {
	res := Result{Markets: []kalshi.Market{}}

	cursor := ""
	for res.Pages < maxPages {
		page, err := f.client.GetMarkets(ctx, pageSize, status, cursor)
		if err != nil {
			// Partial results are better than none: stop the walk and
			// return what accumulated so far.
			f.logger.WarnContext(ctx, "aggregate: page fetch failed, returning partial results",
				slog.Int("pages_fetched", res.Pages),
				slog.Int("accumulated", len(res.Markets)),
				slog.String("error", err.Error()),
			)
			res.Err = err.Error()
			break
		}

		kept := 0
		for _, m := range page.Markets {
			if m.OpenInterest >= minLiquidity {
				res.Markets = append(res.Markets, m)
				kept++
			}
		}

		res.Pages++
		f.logger.DebugContext(ctx, "aggregate: scanned page",
			slog.Int("page", res.Pages),
			slog.Int("records", len(page.Markets)),
			slog.Int("kept", kept),
		)

		cursor = page.Cursor
		if cursor == "" {
			break
		}
		if len(res.Markets) >= maxQualityRecords {
			break
		}
	}

	res.TotalScanned = res.Pages * pageSize
	res.TotalReturned = len(res.Markets)

	f.logger.InfoContext(ctx, "aggregate: scan complete",
		slog.Int("pages", res.Pages),
		slog.Int("total_scanned", res.TotalScanned),
		slog.Int("total_returned", res.TotalReturned),
	)

	return res
}
