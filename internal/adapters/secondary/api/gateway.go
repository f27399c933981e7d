// Package api is the secondary adapter speaking HTTP+JSON to the
// platform backend. All request/response handling, auth header
// attachment and error normalization live here; core services only see
// the ports.Gateway contract and the core/errors taxonomy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/civicpulse/civicpulse-cli/internal/config"
	apperrors "github.com/civicpulse/civicpulse-cli/internal/core/errors"
	"github.com/civicpulse/civicpulse-cli/internal/core/ports"
	"github.com/civicpulse/civicpulse-cli/internal/infrastructure/logging"
)

// maxErrorBodyBytes caps how much of an error response body is kept for
// diagnostics.
const maxErrorBodyBytes = 4 << 10

// Client implements ports.Gateway over net/http.
type Client struct {
	baseURL string
	http    *http.Client
	session ports.Session
	limiter *rate.Limiter
	logger  *slog.Logger

	// onSessionExpired runs the navigation side effect after a 401
	// teardown. The session is already cleared when it fires.
	onSessionExpired func()
}

var _ ports.Gateway = (*Client)(nil)

// Config bundles the gateway dependencies.
type Config struct {
	BaseURL          string
	Timeout          time.Duration
	RateLimit        config.RateLimitConfig
	Session          ports.Session
	Logger           *slog.Logger
	OnSessionExpired func()
}

// NewClient creates a gateway client for the given backend.
func NewClient(cfg Config) *Client {
	var limiter *rate.Limiter
	if cfg.RateLimit.Enabled {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:          strings.TrimRight(cfg.BaseURL, "/"),
		http:             &http.Client{Timeout: cfg.Timeout},
		session:          cfg.Session,
		limiter:          limiter,
		logger:           logger,
		onSessionExpired: cfg.OnSessionExpired,
	}
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request with a JSON body and decodes the response
// into out.
func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	op := method + " " + path

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return apperrors.NewTransportError(op, err)
		}
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperrors.NewTransportError(op, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return apperrors.NewTransportError(op, err)
	}

	requestID := logging.GetRequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	tokenHeld := false
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
		tokenHeld = true
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("backend request failed", "op", op, "request_id", requestID, "error", err)
		return apperrors.NewTransportError(op, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("backend request",
		"op", op,
		"request_id", requestID,
		"status", resp.StatusCode,
		"duration_ms", time.Since(started).Milliseconds(),
	)

	switch {
	case resp.StatusCode == http.StatusUnauthorized && tokenHeld:
		// Session teardown is a one-shot transition: clear credentials
		// first, then run the navigation side effect. Callers get the
		// distinguished sentinel so they skip generic error rendering.
		// A 401 on a request that carried no token is not an expiry -
		// a rejected login lands in the generic branch below.
		if err := c.session.Clear(); err != nil {
			c.logger.Warn("session teardown failed", "error", err)
		}
		if c.onSessionExpired != nil {
			c.onSessionExpired()
		}
		return apperrors.ErrSessionExpired

	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", op, apperrors.ErrNotFound)

	case resp.StatusCode < 200 || resp.StatusCode > 299:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return apperrors.NewHTTPError(resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewTransportError(op, err)
	}
	return nil
}
