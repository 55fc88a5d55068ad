package fyers

import (
	"context"
	"net/http"
)

// OrderParams is the order payload sent verbatim to the broker. Expected
// keys per the broker docs: symbol, qty, type, side, productType,
// limitPrice, stopPrice, disclosedQty, validity, offlineOrder. No local
// validation is performed; the remote service is authoritative.
type OrderParams map[string]any

// PlaceOrder submits a new order.
func (c *Client) PlaceOrder(ctx context.Context, params OrderParams) (Envelope, error) {
	return c.doRequest(ctx, http.MethodPost, EndpointOrders, &requestOptions{body: params})
}

// ModifyOrder amends a pending order. The order id is written into params
// under the "id" key before sending, overwriting any existing value; callers
// must not rely on the map being left unmodified.
func (c *Client) ModifyOrder(ctx context.Context, orderID string, params OrderParams) (Envelope, error) {
	params["id"] = orderID
	return c.doRequest(ctx, http.MethodPut, EndpointOrders, &requestOptions{body: params})
}

// CancelOrder cancels a pending order by id.
func (c *Client) CancelOrder(ctx context.Context, orderID string) (Envelope, error) {
	return c.doRequest(ctx, http.MethodDelete, EndpointOrders+"/"+orderID, nil)
}

// GetOrders fetches the day's order book.
func (c *Client) GetOrders(ctx context.Context) (Envelope, error) {
	return c.doRequest(ctx, http.MethodGet, EndpointOrders, nil)
}
