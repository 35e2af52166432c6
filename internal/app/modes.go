package app

import (
	"context"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/petro438/PM-Intel/internal/domain"
	"github.com/petro438/PM-Intel/internal/monitor"
	"github.com/petro438/PM-Intel/internal/server"
	"github.com/petro438/PM-Intel/internal/server/handler"
)

// ServerMode runs the HTTP API until the context is cancelled.
func (a *App) ServerMode(ctx context.Context, deps *Dependencies) error {
	a.logger.InfoContext(ctx, "starting server mode")

	g, ctx := errgroup.WithContext(ctx)
	a.startHTTPServer(ctx, g, deps)
	return g.Wait()
}

// MonitorMode runs the polling consumer: periodic scans rendered as a ranked
// table on stdout.
func (a *App) MonitorMode(ctx context.Context, deps *Dependencies) error {
	a.logger.InfoContext(ctx, "starting monitor mode")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.newMonitor(deps).Run(ctx)
	})
	return g.Wait()
}

// FullMode runs the HTTP API and the polling consumer together.
func (a *App) FullMode(ctx context.Context, deps *Dependencies) error {
	a.logger.InfoContext(ctx, "starting full mode")

	g, ctx := errgroup.WithContext(ctx)
	a.startHTTPServer(ctx, g, deps)
	g.Go(func() error {
		return a.newMonitor(deps).Run(ctx)
	})
	return g.Wait()
}

// newMonitor assembles the polling consumer from the configured filter set.
func (a *App) newMonitor(deps *Dependencies) *monitor.Monitor {
	return monitor.New(
		deps.Fetcher,
		deps.Pipeline,
		monitor.Config{
			Status:            a.cfg.Kalshi.Status,
			FetchMinLiquidity: a.cfg.Kalshi.MinLiquidity,
			Refresh:           a.cfg.Monitor.Refresh.Duration,
			Filters: monitor.Filters{
				Category:     a.cfg.Monitor.Category,
				MinLiquidity: a.cfg.Monitor.MinLiquidity,
				TimeFrame:    domain.TimeFrame(a.cfg.Monitor.TimeFrame),
			},
		},
		os.Stdout,
		a.logger,
	)
}

// startHTTPServer builds the handler set, starts the server in the errgroup,
// and arranges a graceful shutdown when the context is cancelled.
func (a *App) startHTTPServer(ctx context.Context, g *errgroup.Group, deps *Dependencies) {
	handlers := server.Handlers{
		Health:     handler.NewHealthHandler(a.logger),
		Scan:       handler.NewScanHandler(deps.Fetcher, deps.SnapshotCache, deps.ScanStore, a.cfg.Kalshi.MinLiquidity, a.logger),
		Ranked:     handler.NewRankedHandler(deps.Fetcher, deps.Pipeline, a.cfg.Kalshi.MinLiquidity, a.logger),
		Polymarket: handler.NewPolymarketHandler(deps.GammaClient, deps.DataClient, a.logger),
		Scans:      handler.NewScansHandler(deps.ScanStore, a.logger),
	}

	srv := server.NewServer(server.Config{
		Port:        a.cfg.Server.Port,
		CORSOrigins: a.cfg.Server.CORSOrigins,
		RateLimit:   a.cfg.Server.RateLimit,
	}, handlers, deps.RateLimiter, a.logger)

	g.Go(srv.Start)
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("server shutdown failed", slog.String("error", err.Error()))
		}
		return ctx.Err()
	})
}
