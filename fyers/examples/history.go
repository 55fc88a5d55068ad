//go:build ignore
// +build ignore

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/betbot/gofyers/fyers"
)

// Example: fetch daily candles for the last month and print typed bars.
// Usage:
//   export FYERS_APP_ID="your_app_id"
//   export FYERS_SECRET_KEY="your_secret"
//   export FYERS_REDIRECT_URI="https://your.app/redirect"
//   export FYERS_ACCESS_TOKEN="token_from_login"
//   go run history.go NSE:SBIN-EQ

func main() {
	symbol := "NSE:SBIN-EQ"
	if len(os.Args) > 1 {
		symbol = os.Args[1]
	}

	client := fyers.New(fyers.Config{
		AppID:       os.Getenv("FYERS_APP_ID"),
		SecretKey:   os.Getenv("FYERS_SECRET_KEY"),
		RedirectURI: os.Getenv("FYERS_REDIRECT_URI"),
		AccessToken: os.Getenv("FYERS_ACCESS_TOKEN"),
	})

	now := time.Now()
	data, err := client.GetHistoricalData(context.Background(), fyers.HistoryParams{
		Symbol:     symbol,
		Resolution: "D",
		DateFormat: 0,
		RangeFrom:  fmt.Sprint(now.AddDate(0, -1, 0).Unix()),
		RangeTo:    fmt.Sprint(now.Unix()),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "history: %v\n", err)
		os.Exit(1)
	}

	candles, err := fyers.ParseCandles(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse candles: %v\n", err)
		os.Exit(1)
	}
	for _, c := range candles {
		fmt.Printf("%s  O=%s H=%s L=%s C=%s V=%d\n",
			c.Timestamp.Format("2006-01-02"), c.Open, c.High, c.Low, c.Close, c.Volume)
	}
}
