package kalshi

// --------------------------------------------------------------------------
// Kalshi API DTOs
// --------------------------------------------------------------------------

// Market represents a market as returned by the Kalshi REST API. Fields the
// venue omits decode to their zero value; the monitor pipeline treats zero as
// "absent" when applying defaults, matching the venue's sparse payloads.
type Market struct {
	Ticker       string  `json:"ticker"`
	EventTicker  string  `json:"event_ticker"`
	Title        string  `json:"title"`
	TickerName   string  `json:"ticker_name"`
	Subtitle     string  `json:"subtitle"`
	Status       string  `json:"status"` // "open", "closed", "settled"
	YesBid       float64 `json:"yes_bid"`
	YesAsk       float64 `json:"yes_ask"`
	LastPrice    float64 `json:"last_price"`
	Volume       float64 `json:"volume"`
	Volume24H    float64 `json:"volume_24h"`
	OpenInterest float64 `json:"open_interest"`
	TradesCount  int64   `json:"trades_count"`
	OpenTime     string  `json:"open_time"`
	CloseTime    string  `json:"close_time"`
}

// MarketsPage is one page of the paginated /markets listing. An empty Cursor
// means there are no further pages.
type MarketsPage struct {
	Markets []Market `json:"markets"`
	Cursor  string   `json:"cursor"`
}

// ErrorResponse represents a Kalshi API error response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
