package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

// GammaAPI lists markets from the second venue's discovery API.
type GammaAPI interface {
	ListMarkets(ctx context.Context, limit, active, order string) (json.RawMessage, error)
}

// DataAPI serves trade history and leaderboards for the second venue.
type DataAPI interface {
	ListTrades(ctx context.Context, user, limit string) (json.RawMessage, error)
	Leaderboard(ctx context.Context, category, timePeriod, orderBy, limit string) (json.RawMessage, error)
}

// PolymarketHandler serves the passthrough endpoints for the second venue.
// These apply query-parameter defaulting and uniform error shielding but no
// transformation: upstream failures yield 200 with an empty collection so the
// client UI never has to branch on status codes.
type PolymarketHandler struct {
	gamma  GammaAPI
	data   DataAPI
	logger *slog.Logger
}

// NewPolymarketHandler creates a PolymarketHandler.
func NewPolymarketHandler(gamma GammaAPI, data DataAPI, logger *slog.Logger) *PolymarketHandler {
	return &PolymarketHandler{
		gamma:  gamma,
		data:   data,
		logger: logger,
	}
}

// Markets proxies the venue's market listing.
// GET /api/polymarket?limit=50&active=true&order=volume24hr
func (h *PolymarketHandler) Markets(w http.ResponseWriter, r *http.Request) {
	limit := queryDefault(r, "limit", "50")
	active := queryDefault(r, "active", "true")
	order := queryDefault(r, "order", "volume24hr")

	raw, err := h.gamma.ListMarkets(r.Context(), limit, active, order)
	if err != nil {
		h.logger.WarnContext(r.Context(), "handler: polymarket markets failed",
			slog.String("error", err.Error()),
		)
		writeJSON(w, http.StatusOK, map[string]any{"markets": []any{}, "error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "public, s-maxage=30, stale-while-revalidate=60")
	w.WriteHeader(http.StatusOK)
	w.Write(raw)
}

// Trades proxies trade history for a wallet address.
// GET /api/polymarket/trades?user=0x...&limit=50
func (h *PolymarketHandler) Trades(w http.ResponseWriter, r *http.Request) {
	user := r.URL.Query().Get("user")
	if user == "" {
		writeError(w, http.StatusBadRequest, "user parameter required")
		return
	}
	limit := queryDefault(r, "limit", "50")

	raw, err := h.data.ListTrades(r.Context(), user, limit)
	if err != nil {
		h.logger.WarnContext(r.Context(), "handler: polymarket trades failed",
			slog.String("user", user),
			slog.String("error", err.Error()),
		)
		writeJSON(w, http.StatusOK, map[string]any{"trades": []any{}})
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "public, s-maxage=30")
	w.WriteHeader(http.StatusOK)
	w.Write(wrapCollection("trades", raw))
}

// Leaderboard proxies the trader leaderboard.
// GET /api/polymarket/leaderboard?category=OVERALL&timePeriod=DAY&orderBy=PNL&limit=50
func (h *PolymarketHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	category := queryDefault(r, "category", "OVERALL")
	timePeriod := queryDefault(r, "timePeriod", "DAY")
	orderBy := queryDefault(r, "orderBy", "PNL")
	limit := queryDefault(r, "limit", "50")

	raw, err := h.data.Leaderboard(r.Context(), category, timePeriod, orderBy, limit)
	if err != nil {
		h.logger.WarnContext(r.Context(), "handler: polymarket leaderboard failed",
			slog.String("error", err.Error()),
		)
		writeJSON(w, http.StatusOK, map[string]any{"traders": []any{}, "error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "public, s-maxage=60, stale-while-revalidate=120")
	w.WriteHeader(http.StatusOK)
	w.Write(wrapCollection("traders", raw))
}

// wrapCollection embeds an upstream JSON value under the given key without
// re-decoding it.
func wrapCollection(key string, raw json.RawMessage) []byte {
	out := make([]byte, 0, len(raw)+len(key)+4)
	out = append(out, '{', '"')
	out = append(out, key...)
	out = append(out, '"', ':')
	out = append(out, raw...)
	out = append(out, '}')
	return out
}
