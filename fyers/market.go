package fyers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
)

// HistoryParams controls GetHistoricalData requests. RangeFrom/RangeTo are
// interpreted per DateFormat: epoch seconds (0) or yyyy-mm-dd dates (1),
// exactly as the broker defines them.
type HistoryParams struct {
	Symbol     string
	Resolution string
	DateFormat int
	RangeFrom  string
	RangeTo    string

	// ContFlag requests continuous data for derivatives contracts.
	// Zero value sends 1, the broker's default.
	ContFlag int
}

// GetQuotes fetches the latest quotes for one or more symbols, e.g.
// "NSE:SBIN-EQ". Symbols are joined comma-separated into the request path.
func (c *Client) GetQuotes(ctx context.Context, symbols []string) (Envelope, error) {
	return c.doRequest(ctx, http.MethodGet, EndpointQuotes+strings.Join(symbols, ","), nil)
}

// GetDepth fetches the order-book depth for a single symbol.
func (c *Client) GetDepth(ctx context.Context, symbol string) (Envelope, error) {
	return c.doRequest(ctx, http.MethodGet, EndpointMarketDepth+symbol, nil)
}

// GetHistoricalData fetches historical candles for a symbol.
func (c *Client) GetHistoricalData(ctx context.Context, p HistoryParams) (Envelope, error) {
	contFlag := p.ContFlag
	if contFlag == 0 {
		contFlag = 1
	}
	params := map[string]string{
		"symbol":      p.Symbol,
		"resolution":  p.Resolution,
		"date_format": strconv.Itoa(p.DateFormat),
		"range_from":  p.RangeFrom,
		"range_to":    p.RangeTo,
		"cont_flag":   strconv.Itoa(contFlag),
	}
	return c.doRequest(ctx, http.MethodGet, EndpointHistory, &requestOptions{params: params})
}
