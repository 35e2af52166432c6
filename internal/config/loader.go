package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load reads a TOML configuration file at path, merges it on top of the
// built-in defaults, applies PMINTEL_* environment variable overrides, and
// returns the final Config. The returned Config has NOT been validated; the
// caller should invoke Config.Validate() after Load.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}

	// Load .env file if present (silently ignore if missing).
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// applyEnvOverrides reads well-known PMINTEL_* environment variables and
// overwrites the corresponding Config fields when a variable is set. This
// lets operators inject secrets at deploy time without touching the TOML
// file.
func applyEnvOverrides(cfg *Config) {
	// ── Kalshi ──
	setStr(&cfg.Kalshi.BaseURL, "PMINTEL_KALSHI_BASE_URL")
	setStr(&cfg.Kalshi.ApiKey, "PMINTEL_KALSHI_API_KEY")
	setDuration(&cfg.Kalshi.RequestTimeout, "PMINTEL_KALSHI_REQUEST_TIMEOUT")
	setStr(&cfg.Kalshi.Status, "PMINTEL_KALSHI_STATUS")
	setFloat64(&cfg.Kalshi.MinLiquidity, "PMINTEL_KALSHI_MIN_LIQUIDITY")

	// ── Polymarket ──
	setStr(&cfg.Polymarket.GammaHost, "PMINTEL_POLYMARKET_GAMMA_HOST")
	setStr(&cfg.Polymarket.DataHost, "PMINTEL_POLYMARKET_DATA_HOST")

	// ── Redis ──
	setBool(&cfg.Redis.Enabled, "PMINTEL_REDIS_ENABLED")
	setStr(&cfg.Redis.Addr, "PMINTEL_REDIS_ADDR")
	setStr(&cfg.Redis.Password, "PMINTEL_REDIS_PASSWORD")
	setInt(&cfg.Redis.DB, "PMINTEL_REDIS_DB")
	setInt(&cfg.Redis.PoolSize, "PMINTEL_REDIS_POOL_SIZE")
	setInt(&cfg.Redis.MaxRetries, "PMINTEL_REDIS_MAX_RETRIES")
	setBool(&cfg.Redis.TLSEnabled, "PMINTEL_REDIS_TLS_ENABLED")

	// ── Postgres ──
	setBool(&cfg.Postgres.Enabled, "PMINTEL_POSTGRES_ENABLED")
	setStr(&cfg.Postgres.DSN, "PMINTEL_POSTGRES_DSN")
	setStr(&cfg.Postgres.Host, "PMINTEL_POSTGRES_HOST")
	setInt(&cfg.Postgres.Port, "PMINTEL_POSTGRES_PORT")
	setStr(&cfg.Postgres.Database, "PMINTEL_POSTGRES_DATABASE")
	setStr(&cfg.Postgres.User, "PMINTEL_POSTGRES_USER")
	setStr(&cfg.Postgres.Password, "PMINTEL_POSTGRES_PASSWORD")
	setStr(&cfg.Postgres.SSLMode, "PMINTEL_POSTGRES_SSLMODE")
	setInt(&cfg.Postgres.PoolMaxConns, "PMINTEL_POSTGRES_POOL_MAX_CONNS")
	setInt(&cfg.Postgres.PoolMinConns, "PMINTEL_POSTGRES_POOL_MIN_CONNS")
	setBool(&cfg.Postgres.RunMigrations, "PMINTEL_POSTGRES_RUN_MIGRATIONS")

	// ── Server ──
	setInt(&cfg.Server.Port, "PMINTEL_SERVER_PORT")
	setStringSlice(&cfg.Server.CORSOrigins, "PMINTEL_SERVER_CORS_ORIGINS")
	setInt(&cfg.Server.RateLimit, "PMINTEL_SERVER_RATE_LIMIT")

	// ── Monitor ──
	setDuration(&cfg.Monitor.Refresh, "PMINTEL_MONITOR_REFRESH")
	setStr(&cfg.Monitor.Category, "PMINTEL_MONITOR_CATEGORY")
	setStr(&cfg.Monitor.MinLiquidity, "PMINTEL_MONITOR_MIN_LIQUIDITY")
	setStr(&cfg.Monitor.TimeFrame, "PMINTEL_MONITOR_TIME_FRAME")

	// ── Top-level ──
	setStr(&cfg.Mode, "PMINTEL_MODE")
	setStr(&cfg.LogLevel, "PMINTEL_LOG_LEVEL")
}

// ---------------------------------------------------------------------------
// Typed env-var helpers. Each only mutates the target when the environment
// variable is present and non-empty.
// ---------------------------------------------------------------------------

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setFloat64(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setDuration(dst *duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			dst.Duration = d
		}
	}
}

func setStringSlice(dst *[]string, key string) {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		cleaned := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				cleaned = append(cleaned, p)
			}
		}
		if len(cleaned) > 0 {
			*dst = cleaned
		}
	}
}
