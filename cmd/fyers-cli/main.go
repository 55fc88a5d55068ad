// fyers-cli exercises the SDK from the command line.
//
// Usage:
//
//	fyers-cli [-config fyers.yaml] [-listen :8080] <command> [args]
//
// Commands:
//
//	login                       run the OAuth flow and print the access token
//	profile|funds|holdings|positions|orders
//	quote SYMBOL...             latest quotes
//	depth SYMBOL                market depth
//	history SYMBOL RES FROM TO  historical candles (epoch seconds)
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/betbot/gofyers/fyers"
	"github.com/betbot/gofyers/pkg/callback"
	"github.com/betbot/gofyers/pkg/config"
	"github.com/betbot/gofyers/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	listenAddr := flag.String("listen", ":8080", "listen address for the OAuth redirect during login")
	loginTimeout := flag.Duration("login-timeout", 5*time.Minute, "how long to wait for the browser redirect")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(logger.Config{
		Level:      cfg.Log.Level,
		OutputFile: cfg.Log.OutputFile,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	client := fyers.New(fyers.Config{
		AppID:       cfg.AppID,
		SecretKey:   cfg.SecretKey,
		RedirectURI: cfg.RedirectURI,
		AccessToken: cfg.AccessToken,
		Sandbox:     cfg.Sandbox,
	})

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	cmd, args := flag.Arg(0), flag.Args()[1:]

	ctx := context.Background()
	if err := run(ctx, client, cfg, cmd, args, *listenAddr, *loginTimeout); err != nil {
		logger.Errorf("%s: %v", cmd, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, client *fyers.Client, cfg *config.Config, cmd string, args []string, listenAddr string, loginTimeout time.Duration) error {
	switch cmd {
	case "login":
		return login(ctx, client, cfg, listenAddr, loginTimeout)
	case "profile":
		return print(client.GetProfile(ctx))
	case "funds":
		return print(client.GetFunds(ctx))
	case "holdings":
		return print(client.GetHoldings(ctx))
	case "positions":
		return print(client.GetPositions(ctx))
	case "orders":
		return print(client.GetOrders(ctx))
	case "quote":
		if len(args) == 0 {
			return fmt.Errorf("usage: quote SYMBOL...")
		}
		return print(client.GetQuotes(ctx, args))
	case "depth":
		if len(args) != 1 {
			return fmt.Errorf("usage: depth SYMBOL")
		}
		return print(client.GetDepth(ctx, args[0]))
	case "history":
		if len(args) != 4 {
			return fmt.Errorf("usage: history SYMBOL RESOLUTION FROM TO")
		}
		return print(client.GetHistoricalData(ctx, fyers.HistoryParams{
			Symbol:     args[0],
			Resolution: args[1],
			RangeFrom:  args[2],
			RangeTo:    args[3],
		}))
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// login walks the full OAuth flow: print the login URL, wait for the broker
// to hit the local redirect listener, then exchange the auth code.
func login(ctx context.Context, client *fyers.Client, cfg *config.Config, listenAddr string, timeout time.Duration) error {
	redirect, err := url.Parse(cfg.RedirectURI)
	if err != nil {
		return fmt.Errorf("parse redirect_uri: %w", err)
	}

	state := fyers.RandomState()
	fmt.Printf("Open this URL in your browser to log in:\n\n  %s\n\n", client.AuthURL(state))

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	srv := callback.New(listenAddr, redirect.Path)
	res, err := srv.Wait(ctx)
	if err != nil {
		return fmt.Errorf("waiting for redirect: %w", err)
	}
	if res.State != "" && res.State != state {
		return fmt.Errorf("state mismatch: sent %q, got %q", state, res.State)
	}

	logger.Infof("received auth code, exchanging for access token")
	if _, err := client.GenerateAccessToken(ctx, res.AuthCode); err != nil {
		return err
	}

	fmt.Printf("Access token: %s\n", client.AccessToken())
	fmt.Println("Export it as FYERS_ACCESS_TOKEN to reuse this session.")
	return nil
}

func print(data fyers.Envelope, err error) error {
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
