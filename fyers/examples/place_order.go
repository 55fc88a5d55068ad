//go:build ignore
// +build ignore

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/betbot/gofyers/fyers"
)

// Example: place a market order, then list the order book.
// Usage:
//   export FYERS_APP_ID="your_app_id"
//   export FYERS_SECRET_KEY="your_secret"
//   export FYERS_REDIRECT_URI="https://your.app/redirect"
//   export FYERS_ACCESS_TOKEN="token_from_login"
//   go run place_order.go

func main() {
	client := fyers.New(fyers.Config{
		AppID:       os.Getenv("FYERS_APP_ID"),
		SecretKey:   os.Getenv("FYERS_SECRET_KEY"),
		RedirectURI: os.Getenv("FYERS_REDIRECT_URI"),
		AccessToken: os.Getenv("FYERS_ACCESS_TOKEN"),
		Sandbox:     true, // paper trading, simulated funds
	})

	ctx := context.Background()

	resp, err := client.PlaceOrder(ctx, fyers.OrderParams{
		"symbol":       "NSE:SBIN-EQ",
		"qty":          1,
		"type":         2, // market
		"side":         1, // buy
		"productType":  "INTRADAY",
		"limitPrice":   0,
		"stopPrice":    0,
		"disclosedQty": 0,
		"validity":     "DAY",
		"offlineOrder": "False",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "place order: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("placed:", resp["id"])

	orders, err := client.GetOrders(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "get orders: %v\n", err)
		os.Exit(1)
	}
	out, _ := json.MarshalIndent(orders, "", "  ")
	fmt.Println(string(out))
}
