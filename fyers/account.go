package fyers

import (
	"context"
	"net/http"
)

// GetProfile fetches the logged-in user's profile.
func (c *Client) GetProfile(ctx context.Context) (Envelope, error) {
	return c.doRequest(ctx, http.MethodGet, EndpointProfile, nil)
}

// GetFunds fetches available margins and fund limits.
func (c *Client) GetFunds(ctx context.Context) (Envelope, error) {
	return c.doRequest(ctx, http.MethodGet, EndpointFunds, nil)
}

// GetHoldings fetches demat holdings.
func (c *Client) GetHoldings(ctx context.Context) (Envelope, error) {
	return c.doRequest(ctx, http.MethodGet, EndpointHoldings, nil)
}

// GetPositions fetches open intraday and carry-forward positions.
func (c *Client) GetPositions(ctx context.Context) (Envelope, error) {
	return c.doRequest(ctx, http.MethodGet, EndpointPositions, nil)
}
