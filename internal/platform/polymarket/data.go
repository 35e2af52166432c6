package polymarket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DataClient is the REST client for the Polymarket Data API (trade history
// and trader leaderboards).
type DataClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewDataClient creates a new Data API client.
//
// baseURL is the Data API root, e.g. "https://data-api.polymarket.com".
func NewDataClient(baseURL string) *DataClient {
	return &DataClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ListTrades returns the raw trade history for a wallet address.
func (d *DataClient) ListTrades(ctx context.Context, user, limit string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("user", user)
	params.Set("limit", limit)

	body, err := doGet(ctx, d.httpClient, d.baseURL+"/trades?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("polymarket/data: list trades: %w", err)
	}
	return body, nil
}

// Leaderboard returns the raw trader leaderboard for a category, time period,
// and ordering.
func (d *DataClient) Leaderboard(ctx context.Context, category, timePeriod, orderBy, limit string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("category", category)
	params.Set("timePeriod", timePeriod)
	params.Set("orderBy", orderBy)
	params.Set("limit", limit)

	body, err := doGet(ctx, d.httpClient, d.baseURL+"/v1/leaderboard?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("polymarket/data: leaderboard: %w", err)
	}
	return body, nil
}
