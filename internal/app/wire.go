package app

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/petro438/PM-Intel/internal/aggregate"
	"github.com/petro438/PM-Intel/internal/cache/redis"
	"github.com/petro438/PM-Intel/internal/config"
	"github.com/petro438/PM-Intel/internal/domain"
	"github.com/petro438/PM-Intel/internal/monitor"
	"github.com/petro438/PM-Intel/internal/platform/kalshi"
	"github.com/petro438/PM-Intel/internal/platform/polymarket"
	"github.com/petro438/PM-Intel/internal/store/postgres"
)

// Dependencies bundles everything the application modes need to operate. It
// is constructed by Wire and torn down by the returned cleanup function.
type Dependencies struct {
	KalshiClient *kalshi.Client
	GammaClient  *polymarket.GammaClient
	DataClient   *polymarket.DataClient

	Fetcher  *aggregate.Fetcher
	Pipeline *monitor.Pipeline

	// SnapshotCache and RateLimiter are nil when Redis is disabled.
	SnapshotCache domain.SnapshotCache
	RateLimiter   domain.RateLimiter

	// ScanStore is nil when Postgres is disabled.
	ScanStore domain.ScanRunStore
}

// Wire constructs all concrete dependency implementations from the given
// configuration and returns them together with a cleanup function that
// should be called on shutdown to release resources.
func Wire(ctx context.Context, cfg *config.Config) (*Dependencies, func(), error) {
	logger := slog.Default()

	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	deps := &Dependencies{}

	// --- Venue clients ---
	deps.KalshiClient = kalshi.NewClient(kalshi.ClientConfig{
		BaseURL: cfg.Kalshi.BaseURL,
		APIKey:  cfg.Kalshi.ApiKey,
		Timeout: cfg.Kalshi.RequestTimeout.Duration,
	})
	deps.GammaClient = polymarket.NewGammaClient(cfg.Polymarket.GammaHost)
	deps.DataClient = polymarket.NewDataClient(cfg.Polymarket.DataHost)

	// --- Core pipeline ---
	deps.Fetcher = aggregate.NewFetcher(deps.KalshiClient, logger)
	scorer := monitor.NewScorer(rand.New(rand.NewSource(time.Now().UnixNano())))
	deps.Pipeline = monitor.NewPipeline(scorer)

	// --- Redis (optional) ---
	if cfg.Redis.Enabled {
		redisClient, err := redis.New(ctx, redis.ClientConfig{
			Addr:       cfg.Redis.Addr,
			Password:   cfg.Redis.Password,
			DB:         cfg.Redis.DB,
			PoolSize:   cfg.Redis.PoolSize,
			MaxRetries: cfg.Redis.MaxRetries,
			TLSEnabled: cfg.Redis.TLSEnabled,
		})
		if err != nil {
			// The cache is an optimization: run without it rather than
			// refusing to start.
			logger.WarnContext(ctx, "wire: redis unavailable, continuing without cache",
				slog.String("error", err.Error()),
			)
		} else {
			closers = append(closers, func() { _ = redisClient.Close() })
			deps.SnapshotCache = redis.NewSnapshotCache(redisClient)
			deps.RateLimiter = redis.NewRateLimiter(redisClient)
		}
	}

	// --- Postgres (optional) ---
	if cfg.Postgres.Enabled {
		pgClient, err := postgres.New(ctx, postgres.ClientConfig{
			DSN:      cfg.Postgres.DSN,
			Host:     cfg.Postgres.Host,
			Port:     cfg.Postgres.Port,
			Database: cfg.Postgres.Database,
			User:     cfg.Postgres.User,
			Password: cfg.Postgres.Password,
			SSLMode:  cfg.Postgres.SSLMode,
			MaxConns: cfg.Postgres.PoolMaxConns,
			MinConns: cfg.Postgres.PoolMinConns,
		})
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("wire: postgres: %w", err)
		}
		closers = append(closers, pgClient.Close)

		if cfg.Postgres.RunMigrations {
			if err := pgClient.RunMigrations(ctx); err != nil {
				cleanup()
				return nil, nil, fmt.Errorf("wire: postgres migrations: %w", err)
			}
		}

		deps.ScanStore = postgres.NewScanStore(pgClient.Pool())
	}

	return deps, cleanup, nil
}
