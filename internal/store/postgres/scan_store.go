package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/petro438/PM-Intel/internal/domain"
)

// ScanStore implements domain.ScanRunStore using PostgreSQL.
type ScanStore struct {
	pool *pgxpool.Pool
}

// NewScanStore creates a new ScanStore backed by the given connection pool.
func NewScanStore(pool *pgxpool.Pool) *ScanStore {
	return &ScanStore{pool: pool}
}

// Insert appends an audit record for one completed aggregation run.
func (s *ScanStore) Insert(ctx context.Context, run domain.ScanRun) error {
	const query = `
		INSERT INTO scan_runs (status, min_liquidity, pages, total_scanned, total_returned, duration_ms, started_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.pool.Exec(ctx, query,
		run.Status,
		run.MinLiquidity,
		run.Pages,
		run.TotalScanned,
		run.TotalReturned,
		run.Duration.Milliseconds(),
		run.StartedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres: insert scan run: %w", err)
	}
	return nil
}

// ListRecent returns the most recent scan runs, newest first.
func (s *ScanStore) ListRecent(ctx context.Context, limit int) ([]domain.ScanRun, error) {
	if limit <= 0 {
		limit = 50
	}

	const query = `
		SELECT id, status, min_liquidity, pages, total_scanned, total_returned, duration_ms, started_at
		FROM scan_runs
		ORDER BY started_at DESC
		LIMIT $1`

	rows, err := s.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("postgres: list scan runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.ScanRun
	for rows.Next() {
		var r domain.ScanRun
		var durationMs int64
		if err := rows.Scan(&r.ID, &r.Status, &r.MinLiquidity, &r.Pages, &r.TotalScanned, &r.TotalReturned, &durationMs, &r.StartedAt); err != nil {
			return nil, fmt.Errorf("postgres: scan run row: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: iterate scan runs: %w", err)
	}

	return runs, nil
}
