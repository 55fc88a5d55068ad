package fyers

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const defaultAuthState = "sample_state"

// AuthURL returns the URL the user must open in a browser to complete the
// login flow. After authorising, the broker redirects to the configured
// redirect URI with an auth_code query parameter; exchange that value with
// GenerateAccessToken. An empty state defaults to "sample_state".
//
// Pure function of the client's configuration; no network call is made.
func (c *Client) AuthURL(state string) string {
	if state == "" {
		state = defaultAuthState
	}
	query := strings.Join([]string{
		"client_id=" + c.appID,
		"redirect_uri=" + c.redirectURI,
		"response_type=code",
		"state=" + state,
	}, "&")
	return c.baseURL + EndpointGenerateAuthCode + "?" + query
}

// RandomState returns a fresh opaque state value for AuthURL.
func RandomState() string {
	return uuid.NewString()
}

// GenerateAccessToken exchanges the auth code obtained from the browser
// redirect for an access token. On success the token is stored and the
// transport's Authorization header updated; on failure the client's auth
// state is left untouched. The raw envelope is returned for inspection.
func (c *Client) GenerateAccessToken(ctx context.Context, authCode string) (Envelope, error) {
	payload := map[string]string{
		"appIdHash": c.appID,
		"code":      authCode,
		"secretKey": c.secretKey,
	}
	data, err := c.doRequest(ctx, http.MethodPost, EndpointValidateAuthCode, &requestOptions{body: payload})
	if err != nil {
		return nil, err
	}
	if err := c.storeTokens(data); err != nil {
		return nil, err
	}
	return data, nil
}

// RefreshAccessToken trades the longer-lived refresh token for a new access
// token. It uses the same endpoint as the initial exchange with a different
// grant type. Only available if the original exchange returned a
// refresh_token field.
func (c *Client) RefreshAccessToken(ctx context.Context) (Envelope, error) {
	if c.refreshToken == "" {
		return nil, &AuthError{Reason: "no refresh token available, call GenerateAccessToken first"}
	}
	payload := map[string]string{
		"grant_type":    "refresh_token",
		"appIdHash":     c.appID,
		"refresh_token": c.refreshToken,
		"secretKey":     c.secretKey,
	}
	data, err := c.doRequest(ctx, http.MethodPost, EndpointValidateAuthCode, &requestOptions{body: payload})
	if err != nil {
		return nil, err
	}
	if err := c.storeTokens(data); err != nil {
		return nil, err
	}
	return data, nil
}

// storeTokens pulls the access token out of a validate-authcode envelope.
// Upstream is inconsistent about field naming, so both spellings are
// accepted, snake_case winning when both are present.
func (c *Client) storeTokens(data Envelope) error {
	token := stringField(data, "access_token")
	if token == "" {
		token = stringField(data, "accessToken")
	}
	if token == "" {
		return &AuthError{Reason: "could not retrieve access token from response"}
	}
	c.setToken(token)
	if rt := stringField(data, "refresh_token"); rt != "" {
		c.refreshToken = rt
	}
	return nil
}
