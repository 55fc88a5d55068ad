//go:build ignore
// +build ignore

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/betbot/gofyers/fyers"
)

// Example: full OAuth login flow, pasting the auth code manually.
// Usage:
//   export FYERS_APP_ID="your_app_id"
//   export FYERS_SECRET_KEY="your_secret"
//   export FYERS_REDIRECT_URI="https://your.app/redirect"
//   go run login.go

func main() {
	client := fyers.New(fyers.Config{
		AppID:       os.Getenv("FYERS_APP_ID"),
		SecretKey:   os.Getenv("FYERS_SECRET_KEY"),
		RedirectURI: os.Getenv("FYERS_REDIRECT_URI"),
	})

	fmt.Println("Login here:", client.AuthURL(fyers.RandomState()))
	fmt.Print("Paste the auth_code from the redirect URL: ")

	reader := bufio.NewReader(os.Stdin)
	code, _ := reader.ReadString('\n')
	code = strings.TrimSpace(code)

	if _, err := client.GenerateAccessToken(context.Background(), code); err != nil {
		fmt.Fprintf(os.Stderr, "token exchange failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Access token:", client.AccessToken())
}
