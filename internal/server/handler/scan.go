package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/petro438/PM-Intel/internal/aggregate"
	"github.com/petro438/PM-Intel/internal/domain"
)

// snapshotTTL is how long an aggregated scan response stays cacheable. It
// matches the Cache-Control hint sent downstream.
const snapshotTTL = 30 * time.Second

// scanCacheControl is the hint attached to every aggregation response.
const scanCacheControl = "public, s-maxage=30, stale-while-revalidate=60"

// Aggregator runs one bounded scan of the venue listing. It is declared
// locally so the handler package does not depend on the concrete fetcher.
type Aggregator interface {
	Fetch(ctx context.Context, status string, minLiquidity float64) aggregate.Result
}

// ScanHandler serves the aggregation endpoint backed by the paged fetcher,
// with an optional short-TTL snapshot cache and scan-run audit trail.
type ScanHandler struct {
	fetcher      Aggregator
	cache        domain.SnapshotCache // nil disables caching
	scans        domain.ScanRunStore  // nil disables auditing
	defaultMinLiq float64
	logger       *slog.Logger
}

// NewScanHandler creates a ScanHandler. cache and scans may be nil.
func NewScanHandler(fetcher Aggregator, cache domain.SnapshotCache, scans domain.ScanRunStore, defaultMinLiq float64, logger *slog.Logger) *ScanHandler {
	return &ScanHandler{
		fetcher:       fetcher,
		cache:         cache,
		scans:         scans,
		defaultMinLiq: defaultMinLiq,
		logger:        logger,
	}
}

// scanResponse is the aggregation envelope. Failures never change its shape:
// clients check the error field, not the HTTP status.
type scanResponse struct {
	Markets       any    `json:"markets"`
	TotalScanned  int    `json:"total_scanned"`
	TotalReturned int    `json:"total_returned"`
	Error         string `json:"error,omitempty"`
}

// Scan aggregates the venue's market listing across up to five cursor pages,
// applying the early liquidity filter per page.
// GET /api/kalshi?limit=1000&status=open&min_liquidity=500
func (h *ScanHandler) Scan(w http.ResponseWriter, r *http.Request) {
	shielded(h.logger, "markets", h.scan)(w, r)
}

func (h *ScanHandler) scan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status := queryDefault(r, "status", "open")
	minLiq := queryFloat(r, "min_liquidity", h.defaultMinLiq)

	cacheKey := fmt.Sprintf("%s:%g", status, minLiq)
	if h.cache != nil {
		if payload, err := h.cache.Get(ctx, cacheKey); err == nil {
			h.writePayload(w, payload)
			return
		}
	}

	started := time.Now()
	res := h.fetcher.Fetch(ctx, status, minLiq)

	payload, err := json.Marshal(scanResponse{
		Markets:       res.Markets,
		TotalScanned:  res.TotalScanned,
		TotalReturned: res.TotalReturned,
		Error:         res.Err,
	})
	if err != nil {
		writeJSON(w, http.StatusOK, scanResponse{Markets: []any{}, Error: err.Error()})
		return
	}

	// Runs that ended on a failed page are not cached.
	if h.cache != nil && res.Err == "" {
		if err := h.cache.Set(ctx, cacheKey, payload, snapshotTTL); err != nil {
			h.logger.WarnContext(ctx, "handler: snapshot cache set failed",
				slog.String("key", cacheKey),
				slog.String("error", err.Error()),
			)
		}
	}

	h.recordRun(ctx, status, minLiq, res, started)
	h.writePayload(w, payload)
}

// recordRun persists the scan audit row. Best-effort: a storage failure never
// affects the response.
func (h *ScanHandler) recordRun(ctx context.Context, status string, minLiq float64, res aggregate.Result, started time.Time) {
	if h.scans == nil {
		return
	}
	run := domain.ScanRun{
		Status:        status,
		MinLiquidity:  minLiq,
		Pages:         res.Pages,
		TotalScanned:  res.TotalScanned,
		TotalReturned: res.TotalReturned,
		Duration:      time.Since(started),
		StartedAt:     started,
	}
	if err := h.scans.Insert(ctx, run); err != nil {
		h.logger.WarnContext(ctx, "handler: scan run insert failed",
			slog.String("error", err.Error()),
		)
	}
}

func (h *ScanHandler) writePayload(w http.ResponseWriter, payload []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", scanCacheControl)
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

// ScansHandler serves the scan-run audit listing.
type ScansHandler struct {
	scans  domain.ScanRunStore // nil yields an empty listing
	logger *slog.Logger
}

// NewScansHandler creates a ScansHandler. scans may be nil.
func NewScansHandler(scans domain.ScanRunStore, logger *slog.Logger) *ScansHandler {
	return &ScansHandler{scans: scans, logger: logger}
}

// ListRecent returns recent aggregation runs, newest first.
// GET /api/scans/recent?limit=50
func (h *ScansHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	if h.scans == nil {
		writeJSON(w, http.StatusOK, map[string]any{"scans": []any{}})
		return
	}

	limit := int(queryFloat(r, "limit", 50))
	runs, err := h.scans.ListRecent(r.Context(), limit)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "handler: list scan runs failed",
			slog.String("error", err.Error()),
		)
		writeJSON(w, http.StatusOK, map[string]any{"scans": []any{}, "error": "failed to list scan runs"})
		return
	}
	if runs == nil {
		runs = []domain.ScanRun{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"scans": runs})
}
