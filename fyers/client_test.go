package fyers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		AppID:       "TESTAPP-100",
		SecretKey:   "SECRET",
		RedirectURI: "https://example.com/cb",
	}
}

// newTestClient points a client at a local test server.
func newTestClient(t *testing.T, srv *httptest.Server, cfg Config) *Client {
	t.Helper()
	c := New(cfg)
	c.baseURL = srv.URL
	c.http.SetBaseURL(srv.URL)
	return c
}

func okBody(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func TestNewHostSelection(t *testing.T) {
	prod := New(testConfig())
	assert.Equal(t, BaseURLProduction, prod.BaseURL())

	cfg := testConfig()
	cfg.Sandbox = true
	sandbox := New(cfg)
	assert.Equal(t, BaseURLSandbox, sandbox.BaseURL())
}

func TestDefaultHeaders(t *testing.T) {
	var gotContentType, gotUserAgent, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotUserAgent = r.Header.Get("User-Agent")
		gotAuth = r.Header.Get("Authorization")
		okBody(w, `{"s":"ok"}`)
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.AccessToken = "tok-abc"
	c := newTestClient(t, srv, cfg)

	_, err := c.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, userAgent, gotUserAgent)
	assert.Equal(t, "Bearer tok-abc", gotAuth)
}

func TestSetAccessTokenUpdatesHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		okBody(w, `{"s":"ok"}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, testConfig())
	c.SetAccessToken("fresh-token")

	_, err := c.GetFunds(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer fresh-token", gotAuth)
	assert.Equal(t, "fresh-token", c.AccessToken())
}

func TestWithHTTPClientAppliesDefaults(t *testing.T) {
	var gotUserAgent, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAuth = r.Header.Get("Authorization")
		okBody(w, `{"s":"ok"}`)
	}))
	defer srv.Close()

	rc := resty.New()
	cfg := testConfig()
	cfg.AccessToken = "tok-injected"
	c := New(cfg, WithHTTPClient(rc))

	// the injected transport inherits the fixed timeout and base URL
	assert.Equal(t, requestTimeout, rc.GetClient().Timeout)
	assert.Equal(t, BaseURLProduction, c.BaseURL())

	c.baseURL = srv.URL
	c.http.SetBaseURL(srv.URL)
	_, err := c.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, userAgent, gotUserAgent)
	assert.Equal(t, "Bearer tok-injected", gotAuth)
}

func TestClientReusableAfterError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		okBody(w, `{"s":"ok"}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, testConfig())

	_, err := c.GetProfile(context.Background())
	require.Error(t, err)

	_, err = c.GetProfile(context.Background())
	require.NoError(t, err)
}
