package domain

import (
	"context"
	"time"
)

// ScanRun is the operational audit record for one aggregation run against the
// venue: how many pages were walked and how many records survived the early
// liquidity filter.
type ScanRun struct {
	ID            int64         `json:"id"`
	Status        string        `json:"status"`
	MinLiquidity  float64       `json:"min_liquidity"`
	Pages         int           `json:"pages"`
	TotalScanned  int           `json:"total_scanned"`
	TotalReturned int           `json:"total_returned"`
	Duration      time.Duration `json:"duration_ms"`
	StartedAt     time.Time     `json:"started_at"`
}

// ScanRunStore persists aggregation run audit records.
type ScanRunStore interface {
	Insert(ctx context.Context, run ScanRun) error
	ListRecent(ctx context.Context, limit int) ([]ScanRun, error)
}
