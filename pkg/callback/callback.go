// Package callback runs a short-lived local HTTP server that captures the
// auth code the broker appends to the redirect URI after a successful login.
package callback

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Result is the interesting part of the redirect query string.
type Result struct {
	AuthCode string
	State    string
}

// Server listens for one OAuth redirect and hands back the auth code.
type Server struct {
	addr string
	path string
	got  chan Result
}

// New creates a Server for the given listen address and redirect path,
// e.g. ":8080" and "/fyers/redirect".
func New(addr, path string) *Server {
	if path == "" {
		path = "/"
	}
	return &Server{addr: addr, path: path, got: make(chan Result, 1)}
}

// Router builds the handler. Split out so tests can drive it directly.
func (s *Server) Router() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET(s.path, func(c *gin.Context) {
		code := c.Query("auth_code")
		if code == "" {
			code = c.Query("code")
		}
		if code == "" {
			c.String(http.StatusBadRequest, "missing auth_code parameter")
			return
		}
		c.String(http.StatusOK, "Login complete. You can close this tab.")
		select {
		case s.got <- Result{AuthCode: code, State: c.Query("state")}:
		default:
		}
	})
	return r
}

// Wait serves until one redirect arrives or ctx expires, then shuts the
// listener down.
func (s *Server) Wait(ctx context.Context) (Result, error) {
	srv := &http.Server{Addr: s.addr, Handler: s.Router()}

	errc := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
	}()

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	select {
	case res := <-s.got:
		return res, nil
	case err := <-errc:
		return Result{}, err
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}
