package fyers

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	userAgent      = "gofyers/1.0 (+https://fyers.in)"
	requestTimeout = 15 * time.Second
)

// Config carries the application identity issued by the broker's developer
// console, plus the redirect target registered for the OAuth flow.
type Config struct {
	AppID       string
	SecretKey   string
	RedirectURI string

	// AccessToken resumes a previously authenticated session. Leave empty
	// and call GenerateAccessToken to log in fresh.
	AccessToken string

	// Sandbox selects the paper-trading cluster instead of production.
	Sandbox bool
}

// Client wraps the Fyers trading and market-data REST API. All methods map
// 1:1 onto a single remote endpoint; the client holds no state beyond the
// credentials and one shared transport, and stays usable after any error.
type Client struct {
	appID       string
	secretKey   string
	redirectURI string
	baseURL     string

	accessToken  string
	refreshToken string

	http *resty.Client
}

// Option customizes a Client at construction.
type Option func(*Client)

// WithHTTPClient injects a pre-built resty client, e.g. one carrying a
// proxy or custom TLS setup. The Client still applies its base URL, default
// headers, and the fixed request timeout on top of it.
func WithHTTPClient(rc *resty.Client) Option {
	return func(c *Client) { c.http = rc }
}

// New creates a Client for the host selected by cfg.Sandbox.
func New(cfg Config, opts ...Option) *Client {
	baseURL := BaseURLProduction
	if cfg.Sandbox {
		baseURL = BaseURLSandbox
	}

	c := &Client{
		appID:       cfg.AppID,
		secretKey:   cfg.SecretKey,
		redirectURI: cfg.RedirectURI,
		baseURL:     baseURL,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.http == nil {
		c.http = resty.New()
	}
	c.http.
		SetTimeout(requestTimeout).
		SetBaseURL(c.baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", userAgent)

	if cfg.AccessToken != "" {
		c.setToken(cfg.AccessToken)
	}
	return c
}

// setToken stores the token and rewrites the transport's Authorization
// header in the same call, keeping the two consistent.
func (c *Client) setToken(token string) {
	c.accessToken = token
	c.http.SetHeader("Authorization", "Bearer "+token)
}

// BaseURL returns the host this client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// AccessToken returns the current bearer token, or "" before login.
func (c *Client) AccessToken() string { return c.accessToken }

// SetAccessToken installs a token obtained elsewhere, e.g. from a saved
// session, and updates the Authorization header accordingly.
func (c *Client) SetAccessToken(token string) {
	c.setToken(token)
}
