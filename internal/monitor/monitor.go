package monitor

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/petro438/PM-Intel/internal/aggregate"
	"github.com/petro438/PM-Intel/internal/domain"
)

// Source produces one aggregation run of raw venue records.
// *aggregate.Fetcher satisfies it.
type Source interface {
	Fetch(ctx context.Context, status string, minLiquidity float64) aggregate.Result
}

// Filters are the user-editable knobs of the ranked view. Changing any of
// them triggers a re-fetch on the next refresh.
type Filters struct {
	Category     string // "all" or one category
	MinLiquidity string // free text, non-numeric means no filter
	TimeFrame    domain.TimeFrame
}

// Config holds the monitor's fetch and refresh parameters.
type Config struct {
	// Status is the venue-side status filter for the scan.
	Status string
	// FetchMinLiquidity is the early per-page liquidity floor given to the
	// fetcher. Independent of the user-facing Filters.MinLiquidity.
	FetchMinLiquidity float64
	// Refresh is the polling interval.
	Refresh time.Duration
	Filters Filters
}

// Monitor is the polling consumer of the aggregation pipeline: on each
// refresh it runs a full scan, builds and ranks the markets, and renders the
// table. Each refresh owns its own accumulator; runs are independent.
type Monitor struct {
	source   Source
	pipeline *Pipeline
	table    *Table
	cfg      Config
	out      io.Writer
	logger   *slog.Logger
}

// New creates a Monitor writing rendered tables to out.
func New(source Source, pipeline *Pipeline, cfg Config, out io.Writer, logger *slog.Logger) *Monitor {
	return &Monitor{
		source:   source,
		pipeline: pipeline,
		table:    NewTable(),
		cfg:      cfg,
		out:      out,
		logger:   logger,
	}
}

// Table exposes the sort state so callers can re-order the view between
// refreshes.
func (m *Monitor) Table() *Table { return m.table }

// RunOnce executes a single fetch-transform-rank cycle and returns the ranked
// markets. It never fails: upstream trouble degrades to a shorter (possibly
// empty) list.
func (m *Monitor) RunOnce(ctx context.Context) []domain.Market {
	res := m.source.Fetch(ctx, m.cfg.Status, m.cfg.FetchMinLiquidity)

	markets := m.pipeline.Build(res.Markets, m.cfg.Filters.TimeFrame)
	ranked := Rank(markets, RankOptions{
		Category:     m.cfg.Filters.Category,
		MinLiquidity: m.cfg.Filters.MinLiquidity,
		SortBy:       m.table.SortBy(),
		Dir:          m.table.Dir(),
	})

	m.logger.InfoContext(ctx, "monitor: refresh complete",
		slog.Int("quality_markets", len(markets)),
		slog.Int("displayed", len(ranked)),
		slog.String("sort_by", string(m.table.SortBy())),
		slog.String("dir", string(m.table.Dir())),
	)

	return ranked
}

// Run refreshes immediately, then on every tick until the context is
// cancelled.
func (m *Monitor) Run(ctx context.Context) error {
	m.table.Render(m.out, m.RunOnce(ctx))

	ticker := time.NewTicker(m.cfg.Refresh)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("monitor: stopped")
			return ctx.Err()
		case <-ticker.C:
			m.table.Render(m.out, m.RunOnce(ctx))
		}
	}
}
