package handler

import (
	"log/slog"
	"net/http"

	"github.com/petro438/PM-Intel/internal/domain"
	"github.com/petro438/PM-Intel/internal/monitor"
)

// RankedHandler serves the fully-transformed ranked view: a fresh scan run
// through normalize, quality filter, classify, score, and filter/sort/rank.
type RankedHandler struct {
	fetcher       Aggregator
	pipeline      *monitor.Pipeline
	defaultMinLiq float64
	logger        *slog.Logger
}

// NewRankedHandler creates a RankedHandler.
func NewRankedHandler(fetcher Aggregator, pipeline *monitor.Pipeline, defaultMinLiq float64, logger *slog.Logger) *RankedHandler {
	return &RankedHandler{
		fetcher:       fetcher,
		pipeline:      pipeline,
		defaultMinLiq: defaultMinLiq,
		logger:        logger,
	}
}

// rankedResponse wraps the ranked listing.
type rankedResponse struct {
	Markets       []domain.Market `json:"markets"`
	Total         int             `json:"total"`
	TotalScanned  int             `json:"total_scanned"`
	TotalReturned int             `json:"total_returned"`
}

// Ranked runs the full pipeline and returns the ranked, truncated view.
// GET /api/monitor/markets?category=all&min_liquidity=&time_frame=1h&sort=velocity&dir=desc
func (h *RankedHandler) Ranked(w http.ResponseWriter, r *http.Request) {
	shielded(h.logger, "markets", h.ranked)(w, r)
}

func (h *RankedHandler) ranked(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	frame := domain.TimeFrame(queryDefault(r, "time_frame", "1h"))
	dir := monitor.SortDesc
	if queryDefault(r, "dir", "desc") == "asc" {
		dir = monitor.SortAsc
	}
	opts := monitor.RankOptions{
		Category:     queryDefault(r, "category", "all"),
		MinLiquidity: r.URL.Query().Get("min_liquidity"),
		SortBy:       monitor.ParseSortKey(r.URL.Query().Get("sort")),
		Dir:          dir,
	}

	res := h.fetcher.Fetch(ctx, queryDefault(r, "status", "open"), h.defaultMinLiq)
	markets := h.pipeline.Build(res.Markets, frame)
	ranked := monitor.Rank(markets, opts)

	writeJSON(w, http.StatusOK, rankedResponse{
		Markets:       ranked,
		Total:         len(ranked),
		TotalScanned:  res.TotalScanned,
		TotalReturned: res.TotalReturned,
	})
}
